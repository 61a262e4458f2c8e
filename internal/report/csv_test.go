package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"cell-analyzer/internal/model"
)

func TestWriteResults(t *testing.T) {
	results := []model.AnalysisResult{
		{
			ID: 1, Type: model.CellTypeLFP,
			VoltageV: 3.2, CurrentA: 2, TemperatureC: 31.5, CapacityWh: 6.4,
			MinVoltageV: 2.8, MaxVoltageV: 4.0, VoltageRangePct: 33.3,
		},
		{
			ID: 2, Type: model.CellTypeMNC,
			VoltageV: 3.6, CurrentA: 0, TemperatureC: 27.1, CapacityWh: 0,
			MinVoltageV: 3.2, MaxVoltageV: 3.4, VoltageRangePct: 100,
		},
	}

	var buf bytes.Buffer
	if err := WriteResults(&buf, results); err != nil {
		t.Fatalf("WriteResults failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse output: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d rows", len(rows))
	}
	if rows[0][0] != "cell_id" || rows[0][1] != "type" {
		t.Errorf("Unexpected header: %v", rows[0])
	}
	if rows[1][1] != "LFP" || rows[1][5] != "6.4" {
		t.Errorf("Unexpected LFP row: %v", rows[1])
	}
	if rows[2][1] != "MNC" || rows[2][5] != "0" {
		t.Errorf("Unexpected MNC row: %v", rows[2])
	}
}

func TestWriteResultsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResults(&buf, nil); err != nil {
		t.Fatalf("WriteResults failed: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse output: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("Expected header only, got %d rows", len(rows))
	}
}
