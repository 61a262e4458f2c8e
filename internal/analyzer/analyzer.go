package analyzer

import (
	"fmt"
	"math/rand"
	"time"

	"cell-analyzer/internal/model"
)

// Temperature bounds for the placeholder estimate, degrees C.
const (
	MinTempC = 25.0
	MaxTempC = 40.0
)

// TempEstimator produces a temperature estimate for a validated cell.
// The analyzer has no thermal model; estimates are a placeholder metric
// and the only non-deterministic part of an analysis.
type TempEstimator interface {
	EstimateC(cell model.CellConfig) float64
}

// UniformEstimator draws temperatures uniformly from [MinC, MaxC).
type UniformEstimator struct {
	MinC float64
	MaxC float64
	rng  *rand.Rand
}

func NewUniformEstimator(seed int64) *UniformEstimator {
	return &UniformEstimator{
		MinC: MinTempC,
		MaxC: MaxTempC,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (e *UniformEstimator) EstimateC(model.CellConfig) float64 {
	return e.MinC + e.rng.Float64()*(e.MaxC-e.MinC)
}

// FixedEstimator reports the same temperature for every cell.
type FixedEstimator float64

func (e FixedEstimator) EstimateC(model.CellConfig) float64 {
	return float64(e)
}

// Analyzer computes per-cell analysis results. It is a pure function of
// the configuration except for the temperature estimate, which comes from
// the configured estimator.
type Analyzer struct {
	temp TempEstimator
}

// New returns an analyzer with a time-seeded temperature estimator.
func New() *Analyzer {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns an analyzer whose temperature estimates are
// reproducible for a given seed.
func NewSeeded(seed int64) *Analyzer {
	return &Analyzer{temp: NewUniformEstimator(seed)}
}

// NewWithEstimator returns an analyzer using the given estimator.
func NewWithEstimator(t TempEstimator) *Analyzer {
	if t == nil {
		return New()
	}
	return &Analyzer{temp: t}
}

// Analyze validates every cell and computes one AnalysisResult per cell,
// preserving input order. Validation failures abort the whole analysis;
// there is no partial output.
func (a *Analyzer) Analyze(cells []model.CellConfig) ([]model.AnalysisResult, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("no cells")
	}
	if len(cells) > model.MaxCellsPerAnalysis {
		return nil, fmt.Errorf("too many cells: %d (max %d)", len(cells), model.MaxCellsPerAnalysis)
	}
	for i, cell := range cells {
		if err := cell.Validate(); err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
	}

	results := make([]model.AnalysisResult, 0, len(cells))
	for i, cell := range cells {
		spec, err := model.Chemistry(cell.Type)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}

		id := cell.ID
		if id == 0 {
			id = i + 1
		}

		results = append(results, model.AnalysisResult{
			ID:              id,
			Type:            cell.Type,
			VoltageV:        spec.NominalVoltageV,
			CurrentA:        cell.CurrentA,
			TemperatureC:    model.Round1(a.temp.EstimateC(cell)),
			CapacityWh:      model.Round2(spec.NominalVoltageV * cell.CurrentA),
			MinVoltageV:     spec.MinVoltageV,
			MaxVoltageV:     spec.MaxVoltageV,
			VoltageRangePct: spec.VoltageRangePct(),
		})
	}
	return results, nil
}
