// Package photometry extracts a normalized fluorescence signal (dF/F) from
// two-channel fiber-photometry recordings.
//
// The method follows Lerner et al. (Cell, 2015): both channels are lowpass
// filtered with a zero-phase Butterworth filter, the calcium-independent
// isosbestic reference channel is fitted to the calcium-dependent signal
// channel by ordinary least squares, and dF/F is the fractional deviation
// of the signal from that fitted baseline, linearly detrended and expressed
// in percent.
//
// Typical use:
//
//	rec := photometry.Recording{
//		Signal:     sig,
//		Reference:  ref,
//		SampleRate: 382,
//	}
//	res, err := photometry.Process(rec)
//
// Process is a pure one-shot computation: it holds no state between calls
// and is safe to invoke concurrently for independent recordings.
package photometry

// Recording is one fiber-photometry session as produced by an instrument
// file loader. Signal carries the calcium-dependent channel, Reference the
// isosbestic channel; both are sampled at SampleRate and must have equal
// length. Events optionally holds external trigger (TTL) onset timestamps
// in seconds, sorted ascending. The recording is treated as immutable.
type Recording struct {
	Signal     []float64
	Reference  []float64
	SampleRate float64
	Events     []float64
}

// Duration returns the recording length in seconds, or 0 when the sample
// rate is unset.
func (r Recording) Duration() float64 {
	if r.SampleRate <= 0 {
		return 0
	}

	return float64(len(r.Signal)) / r.SampleRate
}

// Result bundles every trace derived from one processed recording. All
// slices share the windowed channel length except Events. The bundle is a
// single-use output owned by the caller; nothing in this package retains it.
type Result struct {
	RawSignal         []float64 // windowed, unfiltered signal channel
	RawReference      []float64 // windowed, unfiltered reference channel
	FilteredSignal    []float64
	FilteredReference []float64
	FittedReference   []float64 // slope*FilteredReference + intercept
	Time              []float64 // seconds, starting at 0
	DFF               []float64 // detrended dF/F in percent
	Events            []float64 // trigger onsets shifted by the window start

	Slope      float64 // reference-to-signal fit slope
	Intercept  float64 // reference-to-signal fit intercept
	SampleRate float64
}
