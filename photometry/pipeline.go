package photometry

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-photometry/dsp/zerophase"
)

// trailingMargin is cut from the end of the recording when no explicit end
// time is given, discarding the acquisition shutdown artifact.
const trailingMargin = 0.5

// Process runs the full dF/F pipeline over one recording: window the two
// channels, lowpass them with a zero-phase Butterworth filter, fit the
// reference to the signal, normalize, and detrend.
//
// The recording's own sample rate wins over the configured one; the config
// value only serves recordings that do not carry a rate. Any violated
// precondition fails immediately with no partial result.
func Process(rec Recording, opts ...Option) (*Result, error) {
	cfg := ApplyOptions(opts...)

	if len(rec.Signal) != len(rec.Reference) {
		return nil, fmt.Errorf("%w: %d vs %d samples", errChannelMismatch, len(rec.Signal), len(rec.Reference))
	}

	fs := rec.SampleRate
	if fs <= 0 {
		fs = cfg.SampleRate
	}

	duration := float64(len(rec.Signal)) / fs

	t1 := cfg.StartTime
	t2 := cfg.EndTime
	if math.IsNaN(t2) {
		t2 = duration - trailingMargin
	}

	if t1 < 0 || t1 >= t2 || t2 > duration {
		return nil, fmt.Errorf("%w: [%g, %g] within %g s", ErrInvalidWindow, t1, t2, duration)
	}

	start := int(math.Round(t1 * fs))
	end := min(int(math.Round(t2*fs)), len(rec.Signal))
	if end-start < 2 {
		return nil, fmt.Errorf("%w: [%g, %g] selects %d samples", ErrInvalidWindow, t1, t2, end-start)
	}

	rawSig := append([]float64(nil), rec.Signal[start:end]...)
	rawRef := append([]float64(nil), rec.Reference[start:end]...)

	filtSig, err := zerophase.Lowpass(rawSig, cfg.CutoffHz, fs, cfg.FilterOrder)
	if err != nil {
		return nil, fmt.Errorf("signal channel: %w", err)
	}

	filtRef, err := zerophase.Lowpass(rawRef, cfg.CutoffHz, fs, cfg.FilterOrder)
	if err != nil {
		return nil, fmt.Errorf("reference channel: %w", err)
	}

	slope, intercept, err := Fit(filtRef, filtSig)
	if err != nil {
		return nil, err
	}

	n := len(filtSig)
	fitted := make([]float64, n)
	for i := range fitted {
		fitted[i] = slope*filtRef[i] + intercept
	}

	// A baseline that hits zero or changes sign passed through zero, so
	// the fractional deviation is undefined somewhere in the trace.
	delta := make([]float64, n)
	for i, f := range fitted {
		if f == 0 || (f > 0) != (fitted[0] > 0) {
			return nil, fmt.Errorf("%w: sample %d", ErrDivisionByZero, i)
		}

		delta[i] = (filtSig[i] - f) / f
	}

	t := make([]float64, n)
	for i := range t {
		t[i] = float64(i) / fs
	}

	dff, err := Detrend(delta, t)
	if err != nil {
		return nil, err
	}

	for i := range dff {
		dff[i] *= 100 // percent
	}

	var events []float64
	if len(rec.Events) > 0 {
		events = make([]float64, len(rec.Events))
		for i, ev := range rec.Events {
			events[i] = ev - t1
		}
	}

	return &Result{
		RawSignal:         rawSig,
		RawReference:      rawRef,
		FilteredSignal:    filtSig,
		FilteredReference: filtRef,
		FittedReference:   fitted,
		Time:              t,
		DFF:               dff,
		Events:            events,
		Slope:             slope,
		Intercept:         intercept,
		SampleRate:        fs,
	}, nil
}
