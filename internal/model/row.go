package model

import "time"

// Row is one (equipment code, work item) pair extracted from a document.
// Item is an opaque identifier, not a number: leading zeros are significant
// and an optional ".N" suffix is part of the identifier.
type Row struct {
	BaseCode string `json:"base_code"` // e.g. "1HNX10ST"
	Item     string `json:"item"`      // e.g. "2292" or "0031.1"
}

// FullCode returns the base code and item concatenated, the merge key used
// by the ledger.
func (r Row) FullCode() string {
	return r.BaseCode + r.Item
}

// Metadata holds the per-document fields shared by every extracted row.
// Supervisor and Superintendent may be empty when the document carries no
// signature block.
type Metadata struct {
	WorkDate       time.Time `json:"work_date"`
	Supervisor     string    `json:"supervisor,omitempty"`
	Superintendent string    `json:"superintendent,omitempty"`
}
