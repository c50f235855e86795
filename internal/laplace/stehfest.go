package laplace

import (
	"math"

	"github.com/san-kum/transferanalyzer/internal/tf"
)

// Stehfest applies the Gaver-Stehfest weights to N real-axis samples.
// N must be even; float64 arithmetic limits useful N to about 18.
type Stehfest struct {
	N int

	weights []float64
}

func NewStehfest() *Stehfest {
	return &Stehfest{N: 14}
}

func (st *Stehfest) Invert(F tf.Func, t float64) (float64, error) {
	if err := checkTime(t); err != nil {
		return 0, err
	}
	if len(st.weights) != st.N {
		st.weights = stehfestWeights(st.N)
	}

	ln2t := math.Ln2 / t
	sum := 0.0
	for k := 1; k <= st.N; k++ {
		v, err := tf.Eval(F, complex(float64(k)*ln2t, 0))
		if err != nil {
			return 0, err
		}
		sum += st.weights[k-1] * real(v)
	}

	return checkResult(ln2t*sum, t)
}

func stehfestWeights(n int) []float64 {
	half := n / 2
	w := make([]float64, n)
	for k := 1; k <= n; k++ {
		v := 0.0
		for j := (k + 1) / 2; j <= min(k, half); j++ {
			v += math.Pow(float64(j), float64(half)) * factorial(2*j) /
				(factorial(half-j) * factorial(j) * factorial(j-1) * factorial(k-j) * factorial(2*j-k))
		}
		if (k+half)%2 != 0 {
			v = -v
		}
		w[k-1] = v
	}
	return w
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}
