package model

import (
	"errors"
	"fmt"
	"math"
)

// MaxCellsPerAnalysis caps how many cells a single analysis accepts.
const MaxCellsPerAnalysis = 8

// ChemistrySpec defines the fixed electrical parameters of a cell chemistry.
// Units:
// - Voltages: V
// - Current: A
// - Capacity: Wh
// The table is immutable and defined at startup; look entries up with
// Chemistry().
type ChemistrySpec struct {
	Type            CellType
	NominalVoltageV float64
	MinVoltageV     float64
	MaxVoltageV     float64
	Description     string
}

var chemistries = map[CellType]ChemistrySpec{
	CellTypeLFP: {
		Type:            CellTypeLFP,
		NominalVoltageV: 3.2,
		MinVoltageV:     2.8,
		MaxVoltageV:     4.0,
		Description:     "Lithium Iron Phosphate. Stable, long-lasting, safer chemistry.",
	},
	CellTypeMNC: {
		Type:            CellTypeMNC,
		NominalVoltageV: 3.6,
		MinVoltageV:     3.2,
		MaxVoltageV:     3.4,
		Description:     "Lithium Manganese Cobalt. Higher energy density, good performance.",
	},
}

// Chemistry returns the spec for a cell type.
func Chemistry(t CellType) (ChemistrySpec, error) {
	spec, ok := chemistries[t]
	if !ok {
		return ChemistrySpec{}, fmt.Errorf("unknown cell type %q", string(t))
	}
	return spec, nil
}

// Chemistries returns all specs in a stable order.
func Chemistries() []ChemistrySpec {
	return []ChemistrySpec{chemistries[CellTypeLFP], chemistries[CellTypeMNC]}
}

// VoltageRangePct reports where the nominal voltage sits within the valid
// range, as a percentage clamped to [0, 100]. A degenerate range reports 50.
func (s ChemistrySpec) VoltageRangePct() float64 {
	if s.MaxVoltageV <= s.MinVoltageV {
		return 50.0
	}
	pct := (s.NominalVoltageV - s.MinVoltageV) / (s.MaxVoltageV - s.MinVoltageV) * 100
	return Round1(clampPct(pct))
}

// CellConfig is one user-configured cell: a chemistry and a current draw.
// Created from user input, mutated only by re-submission, discarded at end
// of session.
type CellConfig struct {
	ID       int
	Type     CellType
	CurrentA float64
}

func (c CellConfig) Validate() error {
	if !c.Type.Valid() {
		return fmt.Errorf("unknown cell type %q", string(c.Type))
	}
	if math.IsNaN(c.CurrentA) || math.IsInf(c.CurrentA, 0) {
		return errors.New("CurrentA must be a finite number")
	}
	if c.CurrentA < 0 {
		return errors.New("CurrentA must be >= 0")
	}
	return nil
}

// AnalysisResult is the derived, read-only output for one cell. It is
// recomputed on every analysis request and never cached.
type AnalysisResult struct {
	ID              int
	Type            CellType
	VoltageV        float64
	CurrentA        float64
	TemperatureC    float64
	CapacityWh      float64
	MinVoltageV     float64
	MaxVoltageV     float64
	VoltageRangePct float64
}

// Round2 rounds to 2 decimal places (capacity figures).
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Round1 rounds to 1 decimal place (temperatures, percentages).
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func clampPct(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 100 {
		return 100
	}
	return x
}
