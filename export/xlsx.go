package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/cwbudde/algo-photometry/photometry"
)

const (
	tracesSheet = "Traces"
	eventsSheet = "Events"
)

// XLSX writes every trace of the result as one column of a "Traces" sheet,
// plus an "Events" sheet with the offset trigger timestamps.
func XLSX(path string, res *photometry.Result) error {
	if res == nil || len(res.DFF) == 0 {
		return fmt.Errorf("export: empty result")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", tracesSheet); err != nil {
		return fmt.Errorf("export: rename sheet: %w", err)
	}

	columns := []struct {
		header string
		data   []float64
	}{
		{"time", res.Time},
		{"rawSignal", res.RawSignal},
		{"rawReference", res.RawReference},
		{"filteredSignal", res.FilteredSignal},
		{"filteredReference", res.FilteredReference},
		{"fittedReference", res.FittedReference},
		{"dF", res.DFF},
	}

	for col, c := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("export: cell name: %w", err)
		}

		if err := f.SetCellValue(tracesSheet, cell, c.header); err != nil {
			return fmt.Errorf("export: header %q: %w", c.header, err)
		}

		for row, v := range c.data {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("export: cell name: %w", err)
			}

			if err := f.SetCellValue(tracesSheet, cell, v); err != nil {
				return fmt.Errorf("export: %s row %d: %w", c.header, row, err)
			}
		}
	}

	if len(res.Events) > 0 {
		if _, err := f.NewSheet(eventsSheet); err != nil {
			return fmt.Errorf("export: events sheet: %w", err)
		}

		if err := f.SetCellValue(eventsSheet, "A1", "onset"); err != nil {
			return fmt.Errorf("export: events header: %w", err)
		}

		for row, ev := range res.Events {
			cell, err := excelize.CoordinatesToCellName(1, row+2)
			if err != nil {
				return fmt.Errorf("export: cell name: %w", err)
			}

			if err := f.SetCellValue(eventsSheet, cell, ev); err != nil {
				return fmt.Errorf("export: event %d: %w", row, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("export: save: %w", err)
	}

	return nil
}
