// Package export persists a processed photometry result in self-describing
// formats: EDF+ for biosignal tooling and XLSX for tabular inspection.
// It consumes a [photometry.Result] only; the processing pipeline itself
// never touches the filesystem.
package export

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/OpenPSG/edf"

	"github.com/cwbudde/algo-photometry/photometry"
	"github.com/cwbudde/algo-photometry/stats"
)

// EDFConfig identifies the session in the EDF header.
type EDFConfig struct {
	PatientID   string
	RecordingID string
	StartTime   time.Time
}

// EDF writes the filtered channels, the fitted reference, and the dF/F
// trace as four EDF signals with one-second data records. The final record
// is padded by repeating the last sample, as the EDF format requires whole
// records.
func EDF(w io.WriteSeeker, res *photometry.Result, cfg EDFConfig) error {
	if res == nil || len(res.DFF) == 0 {
		return fmt.Errorf("export: empty result")
	}

	samplesPerRecord := int(math.Round(res.SampleRate))
	if samplesPerRecord <= 0 {
		return fmt.Errorf("export: invalid sample rate %g", res.SampleRate)
	}

	traces := [][]float64{
		res.FilteredSignal,
		res.FilteredReference,
		res.FittedReference,
		res.DFF,
	}
	labels := []string{"Signal filt", "Reference filt", "Reference fit", "dF/F"}
	dims := []string{"V", "V", "V", "%"}

	signals := make([]edf.Signal, len(traces))
	for i, trace := range traces {
		pmin, pmax := physicalRange(trace)
		signals[i] = edf.Signal{
			Label:             labels[i],
			TransducerType:    "fiber photometry",
			PhysicalDimension: dims[i],
			PhysicalMin:       pmin,
			PhysicalMax:       pmax,
			DigitalMin:        -32768,
			DigitalMax:        32767,
			SamplesPerRecord:  samplesPerRecord,
		}
	}

	start := cfg.StartTime
	if start.IsZero() {
		start = time.Now()
	}

	ew, err := edf.Create(w, edf.Header{
		Version:            edf.Version0,
		PatientID:          cfg.PatientID,
		RecordingID:        cfg.RecordingID,
		StartTime:          start,
		DataRecordDuration: time.Second,
		SignalCount:        len(signals),
		Signals:            signals,
	})
	if err != nil {
		return fmt.Errorf("export: create edf: %w", err)
	}

	n := len(res.DFF)
	records := (n + samplesPerRecord - 1) / samplesPerRecord

	record := make([][]float64, len(traces))
	for rec := range records {
		lo := rec * samplesPerRecord
		for i, trace := range traces {
			record[i] = paddedChunk(trace, lo, samplesPerRecord)
		}

		if err := ew.WriteRecord(record); err != nil {
			return fmt.Errorf("export: record %d: %w", rec, err)
		}
	}

	if err := ew.Close(); err != nil {
		return fmt.Errorf("export: close edf: %w", err)
	}

	return nil
}

// physicalRange derives the EDF physical calibration range from the data.
// A flat trace gets a unit range so the digital scaling stays invertible.
func physicalRange(trace []float64) (float64, float64) {
	s := stats.Calculate(trace)
	if s.Range == 0 {
		return s.Min, s.Min + 1
	}

	return s.Min, s.Max
}

func paddedChunk(trace []float64, lo, size int) []float64 {
	chunk := make([]float64, size)
	for i := range chunk {
		if lo+i < len(trace) {
			chunk[i] = trace[lo+i]
		} else {
			chunk[i] = trace[len(trace)-1]
		}
	}

	return chunk
}
