package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"cell-analyzer/internal/analysis"
	"cell-analyzer/internal/analyzer"
	"cell-analyzer/internal/api/models"
	"cell-analyzer/internal/model"
	"cell-analyzer/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AnalyzeHandler handles cell analysis requests
type AnalyzeHandler struct{}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler() *AnalyzeHandler {
	return &AnalyzeHandler{}
}

// Analyze handles POST /api/v1/analyze
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	cells, a, ok := h.parseRequest(c)
	if !ok {
		return
	}

	results, err := a.Analyze(cells)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CELL",
				Message: err.Error(),
			},
		})
		return
	}

	summary := analysis.Summarize(results)
	logrus.Infof("analyzed %d cells, total capacity %.2f Wh", summary.CellCount, summary.TotalCapacityWh)

	c.JSON(http.StatusOK, buildResponse(summary, results))
}

// ExportCSV handles POST /api/v1/analyze/export
// Same input as Analyze; the body of the response is the results table as
// a CSV attachment.
func (h *AnalyzeHandler) ExportCSV(c *gin.Context) {
	cells, a, ok := h.parseRequest(c)
	if !ok {
		return
	}

	results, err := a.Analyze(cells)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CELL",
				Message: err.Error(),
			},
		})
		return
	}

	var buf bytes.Buffer
	if err := report.WriteResults(&buf, results); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "EXPORT_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="battery_cell_analysis.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// parseRequest binds and converts the request body. On failure it writes
// the error response and returns ok=false.
func (h *AnalyzeHandler) parseRequest(c *gin.Context) ([]model.CellConfig, *analyzer.Analyzer, bool) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return nil, nil, false
	}

	if len(req.Cells) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: "cells must not be empty",
			},
		})
		return nil, nil, false
	}
	if len(req.Cells) > model.MaxCellsPerAnalysis {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "TOO_MANY_CELLS",
				Message: fmt.Sprintf("at most %d cells per analysis", model.MaxCellsPerAnalysis),
				Details: map[string]interface{}{"cell_count": len(req.Cells)},
			},
		})
		return nil, nil, false
	}

	cells := make([]model.CellConfig, 0, len(req.Cells))
	for i, in := range req.Cells {
		t, err := model.ParseCellType(in.Type)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_CELL",
					Message: err.Error(),
					Details: map[string]interface{}{"index": i},
				},
			})
			return nil, nil, false
		}
		id := in.ID
		if id == 0 {
			id = i + 1
		}
		cells = append(cells, model.CellConfig{ID: id, Type: t, CurrentA: in.CurrentA})
	}

	a := analyzer.New()
	if req.Options.Seed != nil {
		a = analyzer.NewSeeded(*req.Options.Seed)
	}
	return cells, a, true
}

func buildResponse(summary analysis.Summary, results []model.AnalysisResult) models.AnalyzeResponse {
	countByType := make(map[string]int, len(summary.CountByType))
	for t, n := range summary.CountByType {
		countByType[string(t)] = n
	}

	out := models.AnalyzeResponse{
		Status: "completed",
		Summary: models.PackSummary{
			TotalCapacityWh: summary.TotalCapacityWh,
			AvgTemperatureC: summary.AvgTemperatureC,
			PeakVoltageV:    summary.PeakVoltageV,
			CellCount:       summary.CellCount,
			CountByType:     countByType,
		},
		Results: make([]models.CellResult, 0, len(results)),
	}
	for _, r := range results {
		out.Results = append(out.Results, models.CellResult{
			ID:              r.ID,
			Type:            string(r.Type),
			VoltageV:        r.VoltageV,
			CurrentA:        r.CurrentA,
			TemperatureC:    r.TemperatureC,
			CapacityWh:      r.CapacityWh,
			MinVoltageV:     r.MinVoltageV,
			MaxVoltageV:     r.MaxVoltageV,
			VoltageRangePct: r.VoltageRangePct,
		})
	}
	return out
}
