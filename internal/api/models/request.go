package models

// AnalyzeRequest represents the request body for running a cell analysis
type AnalyzeRequest struct {
	Cells   []CellInput    `json:"cells" binding:"required"`
	Options AnalyzeOptions `json:"options,omitempty"`
}

// CellInput is one configured cell as submitted by the form
type CellInput struct {
	ID       int     `json:"id,omitempty"` // defaults to 1-based position
	Type     string  `json:"type" binding:"required"`
	CurrentA float64 `json:"current_a"`
}

// AnalyzeOptions contains optional analysis parameters
type AnalyzeOptions struct {
	// Seed makes the temperature estimate reproducible. Unset = time-seeded.
	Seed *int64 `json:"seed,omitempty"`
}
