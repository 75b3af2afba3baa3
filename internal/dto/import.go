package dto

// ImportRowError describes one spreadsheet row that could not be imported.
type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportResultResponse summarises an XLSX import: rows created, rows
// rejected and why.
type ImportResultResponse struct {
	Succeeded int             `json:"succeeded"`
	Failed    int             `json:"failed"`
	Errors    []ImportRowError `json:"errors,omitempty"`
}
