package models

// AnalyzeResponse represents the response from a cell analysis
type AnalyzeResponse struct {
	Status  string       `json:"status"`
	Summary PackSummary  `json:"summary"`
	Results []CellResult `json:"results"`
}

// PackSummary contains aggregated analysis results
type PackSummary struct {
	TotalCapacityWh float64        `json:"total_capacity_wh"`
	AvgTemperatureC float64        `json:"avg_temperature_c"`
	PeakVoltageV    float64        `json:"peak_voltage_v"`
	CellCount       int            `json:"cell_count"`
	CountByType     map[string]int `json:"count_by_type"`
}

// CellResult is the per-cell analysis output
type CellResult struct {
	ID              int     `json:"id"`
	Type            string  `json:"type"`
	VoltageV        float64 `json:"voltage_v"`
	CurrentA        float64 `json:"current_a"`
	TemperatureC    float64 `json:"temperature_c"`
	CapacityWh      float64 `json:"capacity_wh"`
	MinVoltageV     float64 `json:"min_voltage_v"`
	MaxVoltageV     float64 `json:"max_voltage_v"`
	VoltageRangePct float64 `json:"voltage_range_pct"`
}

// ChemistryInfo describes one entry of the chemistry table
type ChemistryInfo struct {
	Type            string  `json:"type"`
	NominalVoltageV float64 `json:"nominal_voltage_v"`
	MinVoltageV     float64 `json:"min_voltage_v"`
	MaxVoltageV     float64 `json:"max_voltage_v"`
	VoltageRangePct float64 `json:"voltage_range_pct"`
	Description     string  `json:"description"`
}

// PackInfo represents information about a preset cell pack
type PackInfo struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	File      string     `json:"file"`
	CellCount int        `json:"cell_count"`
	Cells     []PackCell `json:"cells"`
}

// PackCell is one cell of a preset pack
type PackCell struct {
	Type     string  `json:"type"`
	CurrentA float64 `json:"current_a"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
