package report

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"cell-analyzer/internal/model"
)

// WriteResultsCSV writes one row per analyzed cell to path.
// This is the primary artifact for "what happened" in an analysis.
func WriteResultsCSV(path string, results []model.AnalysisResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteResults(f, results)
}

// WriteResults streams the results as CSV to w (used for HTTP downloads).
func WriteResults(out io.Writer, results []model.AnalysisResult) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	header := []string{
		"cell_id",
		"type",
		"voltage_v",
		"current_a",
		"temperature_c",
		"capacity_wh",
		"min_voltage_v",
		"max_voltage_v",
		"voltage_range_pct",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		row := []string{
			strconv.Itoa(r.ID),
			string(r.Type),
			fmtFloat(r.VoltageV),
			fmtFloat(r.CurrentA),
			fmtFloat(r.TemperatureC),
			fmtFloat(r.CapacityWh),
			fmtFloat(r.MinVoltageV),
			fmtFloat(r.MaxVoltageV),
			fmtFloat(r.VoltageRangePct),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
