package photometry

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Preset maps one acquisition setup from a TOML file. Pointer fields
// distinguish "absent" from an explicit zero; absent keys keep their
// defaults. Example file:
//
//	[acquisition]
//	sample-rate = 382.0
//	cutoff = 25.0
//	order = 4
//	start = 3.0
//	end = 120.0
type Preset struct {
	Acquisition AcquisitionPreset `toml:"acquisition"`
}

// AcquisitionPreset maps the per-rig processing parameters.
type AcquisitionPreset struct {
	SampleRate  *float64 `toml:"sample-rate"`
	CutoffHz    *float64 `toml:"cutoff"`
	FilterOrder *int     `toml:"order"`
	StartTime   *float64 `toml:"start"`
	EndTime     *float64 `toml:"end"`
}

// LoadPreset reads a TOML acquisition preset from the given path.
func LoadPreset(path string) (Preset, error) {
	if path == "" {
		return Preset{}, fmt.Errorf("preset path is empty")
	}

	if _, err := os.Stat(path); err != nil {
		return Preset{}, fmt.Errorf("failed to stat preset: %w", err)
	}

	var p Preset
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return Preset{}, fmt.Errorf("failed to decode preset: %w", err)
	}

	return p, nil
}

// Options converts the preset into pipeline options, one per present key.
func (p Preset) Options() []Option {
	var opts []Option

	a := p.Acquisition
	if a.SampleRate != nil {
		opts = append(opts, WithSampleRate(*a.SampleRate))
	}

	if a.CutoffHz != nil {
		opts = append(opts, WithCutoff(*a.CutoffHz))
	}

	if a.FilterOrder != nil {
		opts = append(opts, WithFilterOrder(*a.FilterOrder))
	}

	if a.StartTime != nil {
		opts = append(opts, WithStartTime(*a.StartTime))
	}

	if a.EndTime != nil {
		opts = append(opts, WithEndTime(*a.EndTime))
	}

	return opts
}
