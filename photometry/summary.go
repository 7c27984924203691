package photometry

import (
	"github.com/cwbudde/algo-photometry/dsp/spectrum"
	"github.com/cwbudde/algo-photometry/stats"
)

// Summary returns descriptive statistics of the dF/F trace. After
// detrending the mean is expected near zero; StdDev and Peak are the
// usual per-session activity measures.
func (r *Result) Summary() stats.Stats {
	return stats.Calculate(r.DFF)
}

// PowerSpectrum returns the Hann-windowed power spectrum of the dF/F
// trace, a quick check that no energy survived above the lowpass cutoff.
func (r *Result) PowerSpectrum() (spectrum.Power, error) {
	return spectrum.PowerSpectrum(r.DFF, r.SampleRate)
}
