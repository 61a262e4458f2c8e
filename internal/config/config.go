package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cell-analyzer/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load the cell pack from a separate YAML (e.g. examples/packs/*.yaml).
	// If both PackFile and Pack are provided, a non-empty Pack.Cells overrides PackFile.
	PackFile string     `yaml:"pack_file"`
	Pack     PackConfig `yaml:"pack"`
}

// PackConfig is a named set of cells to analyze together.
type PackConfig struct {
	Name  string      `yaml:"name"`
	Cells []CellEntry `yaml:"cells"`
}

// CellEntry is one configured cell as it appears in YAML.
type CellEntry struct {
	Type     string  `yaml:"type"`
	CurrentA float64 `yaml:"current_a"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If pack_file is set, load it and overlay any explicit overrides from c.Pack.
	if c.PackFile != "" {
		packPath := c.PackFile
		if !filepath.IsAbs(packPath) {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), packPath)
			if _, err := os.Stat(cand); err == nil {
				packPath = cand
			}
		}
		loaded, err := LoadPackFile(packPath)
		if err != nil {
			return nil, err
		}
		c.Pack = MergePack(loaded, c.Pack)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if _, err := c.Pack.ToModelCells(); err != nil {
		return fmt.Errorf("pack config invalid: %w", err)
	}
	return nil
}

// ToModelCells converts YAML entries to validated model cells.
// IDs are assigned by position (1-based), matching the form layout.
func (p PackConfig) ToModelCells() ([]model.CellConfig, error) {
	if len(p.Cells) == 0 {
		return nil, errors.New("pack has no cells")
	}
	if len(p.Cells) > model.MaxCellsPerAnalysis {
		return nil, fmt.Errorf("pack has %d cells (max %d)", len(p.Cells), model.MaxCellsPerAnalysis)
	}
	cells := make([]model.CellConfig, 0, len(p.Cells))
	for i, e := range p.Cells {
		t, err := model.ParseCellType(e.Type)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i+1, err)
		}
		cell := model.CellConfig{ID: i + 1, Type: t, CurrentA: e.CurrentA}
		if err := cell.Validate(); err != nil {
			return nil, fmt.Errorf("cell %d: %w", i+1, err)
		}
		cells = append(cells, cell)
	}
	return cells, nil
}

type packFileWrapper struct {
	Pack PackConfig `yaml:"pack"`
}

// LoadPackFile reads a preset pack YAML (the `pack:` wrapper shape used by
// examples/packs/*.yaml).
func LoadPackFile(path string) (PackConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return PackConfig{}, err
	}
	var w packFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return PackConfig{}, err
	}
	return w.Pack, nil
}

// MergePack overlays non-empty fields from override onto base.
// This is used when loading a pack file and then applying inline overrides.
func MergePack(base, override PackConfig) PackConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if len(override.Cells) > 0 {
		out.Cells = override.Cells
	}
	return out
}
