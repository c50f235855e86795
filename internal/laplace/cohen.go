package laplace

import (
	"math"

	"github.com/san-kum/transferanalyzer/internal/tf"
)

// Cohen sums the Fourier-series (Abate-Whitt) representation
//
//	f(t) ≈ e^(A/2)/t · [ Re F(A/2t)/2 + Σ_{k≥1} (-1)^k Re F((A + 2πik)/2t) ]
//
// and accelerates the alternating series with Algorithm 1 of Cohen,
// Rodriguez Villegas and Zagier. The discretisation error is about e^(-A).
type Cohen struct {
	Degree int
	Alpha  float64
}

func NewCohen() *Cohen {
	return &Cohen{Degree: 22, Alpha: 18.4}
}

func (c *Cohen) Invert(F tf.Func, t float64) (float64, error) {
	if err := checkTime(t); err != nil {
		return 0, err
	}

	n := c.Degree
	a := c.Alpha

	d := math.Pow(3+math.Sqrt(8), float64(n))
	d = (d + 1/d) / 2
	b := -1.0
	cc := -d
	sum := 0.0

	for k := 0; k < n; k++ {
		s := complex(a/(2*t), math.Pi*float64(k)/t)
		v, err := tf.Eval(F, s)
		if err != nil {
			return 0, err
		}
		term := real(v)
		if k == 0 {
			term /= 2
		}

		cc = b - cc
		sum += cc * term
		b = float64((k+n)*(k-n)) * b / ((float64(k) + 0.5) * float64(k+1))
	}

	return checkResult(math.Exp(a/2)/t*sum/d, t)
}
