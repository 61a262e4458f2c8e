package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cell-analyzer/internal/api/models"
	"cell-analyzer/internal/model"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAnalyzeHandler()
	router.POST("/api/v1/analyze", h.Analyze)
	router.POST("/api/v1/analyze/export", h.ExportCSV)
	router.GET("/api/v1/chemistries", NewChemistryHandler().ListChemistries)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAnalyzeEndpoint(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/v1/analyze", `{
		"cells": [
			{"type": "LFP", "current_a": 2.0},
			{"type": "MNC", "current_a": 2.5},
			{"type": "lfp", "current_a": 0}
		],
		"options": {"seed": 42}
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "completed", resp.Status)
	require.Len(t, resp.Results, 3)

	assert.Equal(t, 1, resp.Results[0].ID)
	assert.Equal(t, "LFP", resp.Results[0].Type)
	assert.Equal(t, 3.2, resp.Results[0].VoltageV)
	assert.Equal(t, 6.4, resp.Results[0].CapacityWh)

	assert.Equal(t, "MNC", resp.Results[1].Type)
	assert.Equal(t, 3.6, resp.Results[1].VoltageV)
	assert.Equal(t, 9.0, resp.Results[1].CapacityWh)

	assert.Equal(t, 0.0, resp.Results[2].CapacityWh)

	assert.Equal(t, 3, resp.Summary.CellCount)
	assert.Equal(t, 3.6, resp.Summary.PeakVoltageV)
	assert.InDelta(t, 15.4, resp.Summary.TotalCapacityWh, 1e-9)
	assert.Equal(t, 2, resp.Summary.CountByType["LFP"])
	assert.Equal(t, 1, resp.Summary.CountByType["MNC"])

	for _, r := range resp.Results {
		assert.GreaterOrEqual(t, r.TemperatureC, 25.0)
		assert.LessOrEqual(t, r.TemperatureC, 40.0)
	}
}

func TestAnalyzeEndpointSeedReproducible(t *testing.T) {
	router := newTestRouter()
	body := `{"cells": [{"type": "LFP", "current_a": 1.0}], "options": {"seed": 7}}`

	first := postJSON(t, router, "/api/v1/analyze", body)
	second := postJSON(t, router, "/api/v1/analyze", body)
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestAnalyzeEndpointRejectsBadInput(t *testing.T) {
	router := newTestRouter()

	testCases := []struct {
		name string
		body string
		code string
	}{
		{"missing cells", `{}`, "INVALID_REQUEST"},
		{"empty cells", `{"cells": []}`, "INVALID_REQUEST"},
		{"unknown type", `{"cells": [{"type": "NiCd", "current_a": 1}]}`, "INVALID_CELL"},
		{"negative current", `{"cells": [{"type": "LFP", "current_a": -1}]}`, "INVALID_CELL"},
		{"not json", `{"cells": `, "INVALID_REQUEST"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(t, router, "/api/v1/analyze", tc.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.code, resp.Error.Code)
		})
	}
}

func TestAnalyzeEndpointRejectsTooManyCells(t *testing.T) {
	router := newTestRouter()

	cells := make([]string, 0, model.MaxCellsPerAnalysis+1)
	for i := 0; i <= model.MaxCellsPerAnalysis; i++ {
		cells = append(cells, `{"type": "LFP", "current_a": 1}`)
	}
	body := `{"cells": [` + strings.Join(cells, ",") + `]}`

	w := postJSON(t, router, "/api/v1/analyze", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "TOO_MANY_CELLS", resp.Error.Code)
}

func TestExportEndpoint(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/v1/analyze/export", `{
		"cells": [
			{"type": "LFP", "current_a": 2.0},
			{"type": "MNC", "current_a": 1.0}
		],
		"options": {"seed": 42}
	}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "battery_cell_analysis.csv")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "cell_id,type,voltage_v"))
	assert.Contains(t, lines[1], "LFP")
	assert.Contains(t, lines[2], "MNC")
}

func TestChemistriesEndpoint(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/chemistries", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Chemistries []models.ChemistryInfo `json:"chemistries"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Chemistries, 2)
	assert.Equal(t, "LFP", resp.Chemistries[0].Type)
	assert.Equal(t, 3.2, resp.Chemistries[0].NominalVoltageV)
	assert.Equal(t, "MNC", resp.Chemistries[1].Type)
	assert.Equal(t, 3.6, resp.Chemistries[1].NominalVoltageV)
}

func TestPacksEndpoint(t *testing.T) {
	dir := t.TempDir()
	packYAML := `pack:
  name: Test Pack
  cells:
    - type: LFP
      current_a: 2.0
    - type: MNC
      current_a: 1.0
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1_test_pack.yaml"), []byte(packYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a pack"), 0o644))
	t.Setenv("PACK_DIR", dir)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/v1/packs", NewPackHandler().ListPacks)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/packs", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Packs []models.PackInfo `json:"packs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Packs, 1)
	assert.Equal(t, "1_test_pack", resp.Packs[0].ID)
	assert.Equal(t, "Test Pack", resp.Packs[0].Name)
	assert.Equal(t, 2, resp.Packs[0].CellCount)
	assert.Equal(t, "LFP", resp.Packs[0].Cells[0].Type)
}
