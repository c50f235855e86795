package chart

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// columns returns n x positions spanning r, log-spaced on a log axis.
func columns(r Range, scale Scale, n int) []float64 {
	cols := make([]float64, n)
	if scale == Log {
		floats.LogSpan(cols, r.Min, r.Max)
	} else {
		floats.Span(cols, r.Min, r.Max)
	}
	return cols
}

// resample linearly interpolates ys (given at ascending xs) at each of
// cols, holding the end values outside the sampled range.
func resample(xs, ys, cols []float64) []float64 {
	out := make([]float64, len(cols))
	last := len(xs) - 1
	for i, x := range cols {
		j := sort.SearchFloat64s(xs, x)
		switch {
		case j == 0:
			out[i] = ys[0]
		case j > last:
			out[i] = ys[last]
		default:
			x0, x1 := xs[j-1], xs[j]
			f := (x - x0) / (x1 - x0)
			out[i] = ys[j-1] + f*(ys[j]-ys[j-1])
		}
	}
	return out
}

// finite replaces infinities by the nearest bound and NaN by the previous
// finite value, then clamps to [lo, hi].
func finite(ys []float64, lo, hi float64) []float64 {
	out := make([]float64, len(ys))
	prev := lo
	for i, y := range ys {
		switch {
		case math.IsNaN(y):
			y = prev
		case math.IsInf(y, -1):
			y = lo
		case math.IsInf(y, 1):
			y = hi
		}
		out[i] = math.Max(lo, math.Min(hi, y))
		prev = out[i]
	}
	return out
}

// bounds returns the finite extent of vals, skipping x <= 0 on a log axis.
func bounds(vals []float64, positive bool) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) || (positive && v <= 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
		ok = true
	}
	return lo, hi, ok
}

func pad(lo, hi float64) (float64, float64) {
	span := hi - lo
	if span == 0 {
		span = 1
	}
	return lo - span*0.1, hi + span*0.1
}
