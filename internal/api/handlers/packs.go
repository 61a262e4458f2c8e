package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"cell-analyzer/internal/api/models"
	"cell-analyzer/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PackHandler handles preset-pack requests
type PackHandler struct {
	packDir string
}

// NewPackHandler creates a new pack handler
func NewPackHandler() *PackHandler {
	dir := os.Getenv("PACK_DIR")
	if dir == "" {
		// Try to resolve relative to working directory first
		wd, err := os.Getwd()
		if err == nil {
			dir = filepath.Join(wd, "examples", "packs")
		} else {
			dir = "./examples/packs"
		}
	}

	if absDir, err := filepath.Abs(dir); err == nil {
		dir = absDir
	}

	logrus.Infof("PackHandler: using pack directory %s", dir)

	return &PackHandler{packDir: dir}
}

// PackDir returns the preset directory path (for diagnostics)
func (h *PackHandler) PackDir() string {
	return h.packDir
}

// ListPacks handles GET /api/v1/packs
func (h *PackHandler) ListPacks(c *gin.Context) {
	packs := []models.PackInfo{}

	entries, err := os.ReadDir(h.packDir)
	if err != nil {
		logrus.Warnf("PackHandler: failed to read pack directory %s: %v", h.packDir, err)
		c.JSON(http.StatusOK, gin.H{"packs": packs})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(h.packDir, entry.Name())
		info, err := h.loadPackInfo(path, entry.Name())
		if err != nil {
			logrus.Warnf("PackHandler: failed to load pack file %s: %v", path, err)
			continue // Skip invalid files
		}

		packs = append(packs, *info)
	}

	c.JSON(http.StatusOK, gin.H{"packs": packs})
}

func (h *PackHandler) loadPackInfo(path, filename string) (*models.PackInfo, error) {
	pack, err := config.LoadPackFile(path)
	if err != nil {
		return nil, err
	}

	// Extract ID from filename (e.g., "1_starter_lfp.yaml" -> "1_starter_lfp")
	id := strings.TrimSuffix(filename, ".yaml")

	name := pack.Name
	if name == "" {
		name = id
	}

	cells := make([]models.PackCell, 0, len(pack.Cells))
	for _, cell := range pack.Cells {
		cells = append(cells, models.PackCell{
			Type:     strings.ToUpper(cell.Type),
			CurrentA: cell.CurrentA,
		})
	}

	return &models.PackInfo{
		ID:        id,
		Name:      name,
		File:      path,
		CellCount: len(cells),
		Cells:     cells,
	}, nil
}
