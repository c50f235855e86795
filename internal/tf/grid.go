package tf

import (
	"fmt"
	"math"
)

// Arange returns start, start+step, ... up to but excluding stop.
// The point count is ceil((stop-start)/step) and every point is computed as
// start + i*step, so no rounding drift accumulates along the grid.
func Arange(start, stop, step float64) ([]float64, error) {
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStep, step)
	}
	if math.IsNaN(start) || math.IsNaN(stop) || math.IsInf(start, 0) || math.IsInf(stop, 0) {
		return nil, fmt.Errorf("%w: [%v, %v)", ErrInvalidRange, start, stop)
	}

	n := int(math.Ceil((stop - start) / step))
	if n <= 0 {
		return nil, fmt.Errorf("%w: [%v, %v) step %v", ErrEmptyGrid, start, stop, step)
	}

	grid := make([]float64, n)
	for i := range grid {
		grid[i] = start + float64(i)*step
	}
	return grid, nil
}
