package laplace

import (
	"math"
	"math/cmplx"

	"github.com/san-kum/transferanalyzer/internal/tf"
)

// DeHoog accelerates the Fourier series of the inverse with the
// quotient-difference algorithm (de Hoog, Knight and Stokes, 1982).
// The series period is 2t and 2M+1 terms are used.
type DeHoog struct {
	M     int
	Alpha float64
	Tol   float64
}

func NewDeHoog() *DeHoog {
	return &DeHoog{M: 20, Alpha: 0, Tol: 1e-9}
}

func (dh *DeHoog) Invert(F tf.Func, t float64) (float64, error) {
	if err := checkTime(t); err != nil {
		return 0, err
	}

	m := dh.M
	period := 2 * t
	gamma := dh.Alpha - math.Log(dh.Tol)/(2*period)
	n := 2*m + 1

	a := make([]complex128, n)
	for k := range a {
		v, err := tf.Eval(F, complex(gamma, math.Pi*float64(k)/period))
		if err != nil {
			return 0, err
		}
		a[k] = v
	}
	a[0] /= 2

	// quotient-difference table, column 0 unused
	e := make([][]complex128, n)
	for i := range e {
		e[i] = make([]complex128, m+1)
	}
	q := make([][]complex128, 2*m)
	for i := range q {
		q[i] = make([]complex128, m+1)
		q[i][1] = a[i+1] / a[i]
	}
	for c := 1; c <= m; c++ {
		for i := 0; i <= 2*(m-c); i++ {
			e[i][c] = q[i+1][c] - q[i][c] + e[i+1][c-1]
		}
		if c < m {
			for i := 0; i < 2*(m-c); i++ {
				q[i][c+1] = q[i+1][c] * e[i+1][c] / e[i][c]
			}
		}
	}

	d := make([]complex128, n)
	d[0] = a[0]
	for c := 1; c <= m; c++ {
		d[2*c-1] = -q[0][c]
		d[2*c] = -e[0][c]
	}

	num := make([]complex128, 2*m+2)
	den := make([]complex128, 2*m+2)
	num[1] = d[0]
	den[0], den[1] = 1, 1
	z := cmplx.Exp(complex(0, math.Pi*t/period))
	for k := 2; k < 2*m+2; k++ {
		num[k] = num[k-1] + d[k-1]*z*num[k-2]
		den[k] = den[k-1] + d[k-1]*z*den[k-2]
	}

	// remainder estimate for the final convergent
	h := 0.5 * (1 + (d[2*m-1]-d[2*m])*z)
	r := -h * (1 - cmplx.Sqrt(1+d[2*m]*z/(h*h)))
	num[2*m+1] = num[2*m] + r*num[2*m-1]
	den[2*m+1] = den[2*m] + r*den[2*m-1]

	f := math.Exp(gamma*t) / period * real(num[2*m+1]/den[2*m+1])
	return checkResult(f, t)
}
