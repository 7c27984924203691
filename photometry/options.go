package photometry

import "math"

// Config holds the processing parameters for one session.
//
// EndTime may be NaN, meaning "recording duration minus the trailing
// artifact margin of 0.5 s"; that is the default so recordings of unknown
// length need no explicit end time.
type Config struct {
	SampleRate  float64 // Hz, used when the recording does not carry one
	CutoffHz    float64 // lowpass cutoff for both channels
	FilterOrder int
	StartTime   float64 // seconds, skips the sensor warm-up
	EndTime     float64 // seconds, NaN selects duration-0.5
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the reference acquisition configuration:
// 382 Hz sampling, 25 Hz cutoff, 4th-order filter, window [3.0, end-0.5].
func DefaultConfig() Config {
	return Config{
		SampleRate:  382,
		CutoffHz:    25,
		FilterOrder: 4,
		StartTime:   3.0,
		EndTime:     math.NaN(),
	}
}

// WithSampleRate sets the fallback sample rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithCutoff sets the lowpass cutoff frequency in Hz.
func WithCutoff(cutoffHz float64) Option {
	return func(cfg *Config) {
		if cutoffHz > 0 {
			cfg.CutoffHz = cutoffHz
		}
	}
}

// WithFilterOrder sets the Butterworth filter order.
func WithFilterOrder(order int) Option {
	return func(cfg *Config) {
		if order > 0 {
			cfg.FilterOrder = order
		}
	}
}

// WithStartTime sets the window start in seconds.
func WithStartTime(t1 float64) Option {
	return func(cfg *Config) {
		if t1 >= 0 {
			cfg.StartTime = t1
		}
	}
}

// WithEndTime sets the window end in seconds, overriding the default
// end-of-recording margin.
func WithEndTime(t2 float64) Option {
	return func(cfg *Config) {
		if t2 > 0 {
			cfg.EndTime = t2
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
