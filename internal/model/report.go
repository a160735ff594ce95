package model

import "time"

// IngestReport summarizes one ingest run across all submitted documents.
// It mirrors the ledger counters shown to the operator: rows already in the
// master, rows after merge, and the net number added.
type IngestReport struct {
	StartedAt   time.Time     `json:"started_at"`
	FinishedAt  time.Time     `json:"finished_at"`
	AssumedYear int           `json:"assumed_year"`
	Files       []FileOutcome `json:"files"`

	RowsBefore int `json:"rows_before"`
	RowsAfter  int `json:"rows_after"`
	RowsAdded  int `json:"rows_added"`
}

// OutcomeStatus classifies how a single document fared
type OutcomeStatus string

const (
	OutcomeOK      OutcomeStatus = "ok"      // rows extracted
	OutcomeWarning OutcomeStatus = "warning" // parsed cleanly but zero rows
	OutcomeError   OutcomeStatus = "error"   // whole-document failure, skipped
)

// FileOutcome records the result of processing one document. Error holds the
// failure text for OutcomeError; Warning the reason for OutcomeWarning.
type FileOutcome struct {
	Source    string        `json:"source"`
	Status    OutcomeStatus `json:"status"`
	Rows      int           `json:"rows"`
	FromCache bool          `json:"from_cache,omitempty"`
	Warning   string        `json:"warning,omitempty"`
	Error     string        `json:"error,omitempty"`
}

// Errors returns the outcomes that failed outright
func (r *IngestReport) Errors() []FileOutcome {
	var out []FileOutcome
	for _, f := range r.Files {
		if f.Status == OutcomeError {
			out = append(out, f)
		}
	}
	return out
}

// Warnings returns the outcomes that parsed but produced no rows
func (r *IngestReport) Warnings() []FileOutcome {
	var out []FileOutcome
	for _, f := range r.Files {
		if f.Status == OutcomeWarning {
			out = append(out, f)
		}
	}
	return out
}
