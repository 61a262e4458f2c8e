package model

import (
	"fmt"
	"strings"
)

// CellType identifies a battery cell chemistry.
// Keep these values stable; they are intended for CSV output and API payloads.
type CellType string

const (
	CellTypeLFP CellType = "LFP"
	CellTypeMNC CellType = "MNC"
)

// ParseCellType converts user input to a CellType. Matching is
// case-insensitive; anything outside the chemistry table is rejected.
func ParseCellType(s string) (CellType, error) {
	t := CellType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown cell type %q", s)
	}
	return t, nil
}

func (t CellType) Valid() bool {
	_, ok := chemistries[t]
	return ok
}
