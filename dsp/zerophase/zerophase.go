// Package zerophase provides forward-backward (zero-phase) filtering.
//
// Running an IIR filter once over a signal delays every frequency by the
// filter's phase response. Running it a second time over the time-reversed
// output cancels that delay exactly, leaving a squared magnitude response
// and zero net phase shift. Photometry dF/F extraction depends on the
// signal and reference channels staying sample-aligned, so all channel
// filtering goes through this package.
package zerophase

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-photometry/dsp/biquad"
	"github.com/cwbudde/algo-photometry/dsp/design"
)

var (
	// ErrInsufficientData reports an input shorter than the edge padding
	// required by the filter order.
	ErrInsufficientData = errors.New("zerophase: input too short for filter order")

	// ErrInvalidCutoff reports a cutoff outside (0, sampleRate/2).
	ErrInvalidCutoff = errors.New("zerophase: cutoff must lie in (0, nyquist)")

	// ErrInvalidOrder reports a filter order below 1.
	ErrInvalidOrder = errors.New("zerophase: filter order must be >= 1")
)

// Lowpass runs a Butterworth lowpass of the given order and cutoff over x,
// forward and backward. The result has the same length as x.
func Lowpass(x []float64, cutoffHz, sampleRate float64, order int) ([]float64, error) {
	if order < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}

	if sampleRate <= 0 || cutoffHz <= 0 || cutoffHz >= sampleRate/2 {
		return nil, fmt.Errorf("%w: cutoff %g Hz at sample rate %g Hz", ErrInvalidCutoff, cutoffHz, sampleRate)
	}

	return Apply(design.ButterworthLP(cutoffHz, order, sampleRate), x)
}

// Apply runs a pre-designed biquad cascade over x forward and backward.
//
// The input is extended on both ends by an odd reflection of
// 3*(2*len(sections)+1) samples before filtering and trimmed afterwards,
// so startup transients decay inside the padding instead of the output.
// Inputs no longer than the padding fail with [ErrInsufficientData].
func Apply(sections []biquad.Coefficients, x []float64) ([]float64, error) {
	padLen := 3 * (2*len(sections) + 1)

	n := len(x)
	if n <= padLen {
		return nil, fmt.Errorf("%w: %d samples, need > %d", ErrInsufficientData, n, padLen)
	}

	ext := make([]float64, n+2*padLen)
	copy(ext[padLen:], x)

	// Odd (point-symmetric) reflection about the first and last samples.
	first, last := x[0], x[n-1]
	for i := range padLen {
		ext[padLen-1-i] = 2*first - x[i+1]
		ext[padLen+n+i] = 2*last - x[n-2-i]
	}

	// Priming each pass to the steady state of its first sample kills the
	// startup transient the way scipy's filtfilt does with lfilter_zi; the
	// reflection padding absorbs what little remains.
	cascade := biquad.NewCascade(sections)
	cascade.PrimeSteadyState(ext[0])
	cascade.ProcessBlock(ext)
	reverse(ext)
	cascade.PrimeSteadyState(ext[0])
	cascade.ProcessBlock(ext)
	reverse(ext)

	out := make([]float64, n)
	copy(out, ext[padLen:padLen+n])

	return out, nil
}

func reverse(buf []float64) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
