package laplace

import (
	"math"
	"math/cmplx"

	"github.com/san-kum/transferanalyzer/internal/tf"
)

// Talbot integrates along the fixed Talbot contour of Abate and Valkó,
// s(θ) = rθ(cot θ + i), r = 2M/(5t), with M nodes.
type Talbot struct {
	M int
}

func NewTalbot() *Talbot {
	return &Talbot{M: 32}
}

func (tb *Talbot) Invert(F tf.Func, t float64) (float64, error) {
	if err := checkTime(t); err != nil {
		return 0, err
	}

	m := float64(tb.M)
	r := 2 * m / (5 * t)

	v, err := tf.Eval(F, complex(r, 0))
	if err != nil {
		return 0, err
	}
	sum := 0.5 * real(v*complex(math.Exp(r*t), 0))

	for k := 1; k < tb.M; k++ {
		theta := float64(k) * math.Pi / m
		cot := 1 / math.Tan(theta)
		s := complex(r*theta*cot, r*theta)
		sigma := theta + (theta*cot-1)*cot

		v, err := tf.Eval(F, s)
		if err != nil {
			return 0, err
		}
		sum += real(cmplx.Exp(complex(t, 0)*s) * v * complex(1, sigma))
	}

	return checkResult(r/m*sum, t)
}
