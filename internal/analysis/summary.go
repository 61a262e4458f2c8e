package analysis

import (
	"math"

	"cell-analyzer/internal/model"
)

// Summary is the pack-level rollup shown above the per-cell results.
type Summary struct {
	TotalCapacityWh float64
	AvgTemperatureC float64
	PeakVoltageV    float64
	CellCount       int
	CountByType     map[model.CellType]int
}

// Summarize aggregates per-cell results. Empty input yields a zero Summary.
func Summarize(results []model.AnalysisResult) Summary {
	s := Summary{CountByType: map[model.CellType]int{}}
	if len(results) == 0 {
		return s
	}

	totalCap := 0.0
	totalTemp := 0.0
	peakV := math.Inf(-1)
	for _, r := range results {
		totalCap += r.CapacityWh
		totalTemp += r.TemperatureC
		if r.VoltageV > peakV {
			peakV = r.VoltageV
		}
		s.CountByType[r.Type]++
	}

	s.TotalCapacityWh = model.Round2(totalCap)
	s.AvgTemperatureC = model.Round1(totalTemp / float64(len(results)))
	s.PeakVoltageV = peakV
	s.CellCount = len(results)
	return s
}
