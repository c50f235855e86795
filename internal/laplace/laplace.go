package laplace

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/transferanalyzer/internal/tf"
)

// DefaultMethod is the method used when none is named.
const DefaultMethod = "cohen"

var (
	// ErrUnknownMethod indicates a method name with no registered algorithm.
	ErrUnknownMethod = errors.New("laplace: unknown inversion method")

	// ErrInvalidTime indicates t <= 0 or a non-finite t.
	ErrInvalidTime = errors.New("laplace: time must be positive and finite")
)

// Method approximates f(t) from the Laplace-domain function F.
type Method interface {
	Invert(F tf.Func, t float64) (float64, error)
}

var registry = map[string]func() Method{
	"cohen":    func() Method { return NewCohen() },
	"talbot":   func() Method { return NewTalbot() },
	"stehfest": func() Method { return NewStehfest() },
	"dehoog":   func() Method { return NewDeHoog() },
}

// Lookup returns the method registered under name.
func Lookup(name string) (Method, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownMethod, name, Methods())
	}
	return fn(), nil
}

// Methods lists registered method names in sorted order.
func Methods() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invert evaluates L⁻¹{F}(t) with the named method.
func Invert(F tf.Func, t float64, method string) (float64, error) {
	m, err := Lookup(method)
	if err != nil {
		return 0, err
	}
	return m.Invert(F, t)
}

func checkTime(t float64) error {
	if t <= 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidTime, t)
	}
	return nil
}

func checkResult(f, t float64) (float64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f, fmt.Errorf("%w: inverse is %v at t=%v", tf.ErrSingular, f, t)
	}
	return f, nil
}
