package tf

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Rational builds G(s) = num(s)/den(s) from polynomial coefficients ordered
// highest power first, e.g. den = {1, 2, 1} is s² + 2s + 1.
func Rational(num, den []float64) Func {
	n := append([]float64(nil), num...)
	d := append([]float64(nil), den...)
	return func(s complex128) complex128 {
		return horner(n, s) / horner(d, s)
	}
}

// WithDelay multiplies g by the dead-time term e^(-sT).
func WithDelay(g Func, delay float64) Func {
	if delay == 0 {
		return g
	}
	return func(s complex128) complex128 {
		return g(s) * cexp(-s*complex(delay, 0))
	}
}

func horner(coeffs []float64, s complex128) complex128 {
	var acc complex128
	for _, c := range coeffs {
		acc = acc*s + complex(c, 0)
	}
	return acc
}

func cexp(z complex128) complex128 {
	r := math.Exp(real(z))
	sin, cos := math.Sincos(imag(z))
	return complex(r*cos, r*sin)
}

// ParseCoeffs parses a comma or space separated coefficient list such as
// "1, 0.4, 1".
func ParseCoeffs(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("tf: no coefficients in %q", s)
	}

	coeffs := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("tf: bad coefficient %q: %w", f, err)
		}
		coeffs = append(coeffs, v)
	}
	return coeffs, nil
}

// FormatPoly renders coefficients as a polynomial in s, for log output.
func FormatPoly(coeffs []float64) string {
	var sb strings.Builder
	deg := len(coeffs) - 1
	for i, c := range coeffs {
		if c == 0 && len(coeffs) > 1 {
			continue
		}
		p := deg - i
		if sb.Len() > 0 {
			if c < 0 {
				sb.WriteString(" - ")
				c = -c
			} else {
				sb.WriteString(" + ")
			}
		}
		switch {
		case p == 0:
			sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
		case c != 1:
			sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
			sb.WriteString("s")
		default:
			sb.WriteString("s")
		}
		if p > 1 {
			sb.WriteString("^")
			sb.WriteString(strconv.Itoa(p))
		}
	}
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}
