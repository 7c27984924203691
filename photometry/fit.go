package photometry

import (
	"fmt"
	"math"
)

// degenerateEps bounds the relative variance below which x is treated as
// constant. Filtering an exactly constant channel leaves jitter around
// 1e-15 of its level, which must still count as degenerate.
const degenerateEps = 1e-12

// Fit solves the two-parameter least-squares problem y ≈ slope*x + intercept.
//
// It uses the mean-centered normal equations, which are numerically better
// behaved than the raw sum form when x carries a large DC offset (as
// fluorescence traces always do). An x with (near) zero variance makes the
// slope undefined and fails with [ErrDegenerateFit].
func Fit(x, y []float64) (slope, intercept float64, err error) {
	if len(x) != len(y) {
		return 0, 0, fmt.Errorf("%w: %d vs %d samples", errChannelMismatch, len(x), len(y))
	}

	n := len(x)
	if n < 2 {
		return 0, 0, fmt.Errorf("%w: need at least 2 samples, got %d", ErrDegenerateFit, n)
	}

	var meanX, meanY float64
	for i := range x {
		meanX += x[i]
		meanY += y[i]
	}
	meanX /= float64(n)
	meanY /= float64(n)

	var sxx, sxy float64
	for i := range x {
		dx := x[i] - meanX
		sxx += dx * dx
		sxy += dx * (y[i] - meanY)
	}

	if sxx <= degenerateEps*float64(n)*math.Max(1, meanX*meanX) {
		return 0, 0, fmt.Errorf("%w: all %d samples near %g", ErrDegenerateFit, n, meanX)
	}

	slope = sxy / sxx
	intercept = meanY - slope*meanX

	return slope, intercept, nil
}

// Detrend removes the best-fit line of v over t and returns the residual
// as a new slice. Both slices must have the same length.
func Detrend(v, t []float64) ([]float64, error) {
	slope, intercept, err := Fit(t, v)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(v))
	for i := range v {
		out[i] = v[i] - (slope*t[i] + intercept)
	}

	return out, nil
}
