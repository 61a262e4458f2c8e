package handlers

import (
	"net/http"

	"cell-analyzer/internal/api/models"
	"cell-analyzer/internal/model"

	"github.com/gin-gonic/gin"
)

// ChemistryHandler handles chemistry-table requests
type ChemistryHandler struct{}

// NewChemistryHandler creates a new chemistry handler
func NewChemistryHandler() *ChemistryHandler {
	return &ChemistryHandler{}
}

// ListChemistries handles GET /api/v1/chemistries
func (h *ChemistryHandler) ListChemistries(c *gin.Context) {
	specs := model.Chemistries()
	chemistries := make([]models.ChemistryInfo, 0, len(specs))
	for _, s := range specs {
		chemistries = append(chemistries, models.ChemistryInfo{
			Type:            string(s.Type),
			NominalVoltageV: s.NominalVoltageV,
			MinVoltageV:     s.MinVoltageV,
			MaxVoltageV:     s.MaxVoltageV,
			VoltageRangePct: s.VoltageRangePct(),
			Description:     s.Description,
		})
	}

	c.JSON(http.StatusOK, gin.H{"chemistries": chemistries})
}
