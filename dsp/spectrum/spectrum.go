// Package spectrum provides a one-shot power-spectrum estimate used as a
// diagnostic on processed traces (for example to verify that a dF/F trace
// carries no energy above the lowpass cutoff).
package spectrum

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ErrEmptyInput reports a trace with fewer than two samples.
var ErrEmptyInput = errors.New("spectrum: trace must have at least 2 samples")

// Power holds a one-sided power spectrum with its bin frequencies.
type Power struct {
	Freqs []float64 // Hz, bin centers from DC to Nyquist
	Power []float64 // |X[k]|^2 per bin, Hann-windowed
}

// PowerSpectrum computes the one-sided Hann-windowed power spectrum of a
// trace. The FFT size is the next power of two at or above the trace
// length; the trace is zero-padded to it.
func PowerSpectrum(trace []float64, sampleRate float64) (Power, error) {
	if len(trace) < 2 {
		return Power{}, fmt.Errorf("%w: got %d", ErrEmptyInput, len(trace))
	}

	if sampleRate <= 0 {
		return Power{}, fmt.Errorf("spectrum: sample rate must be > 0: %g", sampleRate)
	}

	n := len(trace)
	fftSize := nextPowerOf2(n)

	windowed := make([]float64, n)
	copy(windowed, trace)
	vecmath.MulBlockInPlace(windowed, hann(n))

	in := make([]complex128, fftSize)
	for i, x := range windowed {
		in[i] = complex(x, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Power{}, fmt.Errorf("spectrum: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Power{}, fmt.Errorf("spectrum: forward fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	freqs := make([]float64, bins)
	binHz := sampleRate / float64(fftSize)
	for i := range freqs {
		freqs[i] = float64(i) * binHz
	}

	return Power{Freqs: freqs, Power: power}, nil
}

// PeakFrequency returns the frequency of the strongest bin above DC.
func (p Power) PeakFrequency() float64 {
	if len(p.Power) < 2 {
		return 0
	}

	peakBin := 1
	for i := 2; i < len(p.Power); i++ {
		if p.Power[i] > p.Power[peakBin] {
			peakBin = i
		}
	}

	return p.Freqs[peakBin]
}

func hann(size int) []float64 {
	coeffs := make([]float64, size)
	if size == 1 {
		coeffs[0] = 1
		return coeffs
	}

	for i := range coeffs {
		coeffs[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(size-1)))
	}

	return coeffs
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
