// Package ledger maintains the running master ledger of extracted records:
// pure merge/dedup semantics plus file-backed stores (CSV and SQLite).
package ledger

import (
	"sort"
	"time"

	"github.com/mrovere/shiftledger/internal/model"
)

// Record is one ledger row. FullCode is the merge identity together with
// WorkDate; BaseCode and Item are kept separately for filtering.
type Record struct {
	FullCode       string    `json:"full_code"`
	BaseCode       string    `json:"base_code"`
	Item           string    `json:"item"`
	WorkDate       time.Time `json:"work_date"`
	Supervisor     string    `json:"supervisor"`
	Superintendent string    `json:"superintendent"`
	SourceFile     string    `json:"source_file"`
	IngestedAt     time.Time `json:"ingested_at"`
}

// FromRow builds a ledger record from an extracted row and its document
// metadata.
func FromRow(row model.Row, meta model.Metadata, sourceFile string, ingestedAt time.Time) Record {
	return Record{
		FullCode:       row.FullCode(),
		BaseCode:       row.BaseCode,
		Item:           row.Item,
		WorkDate:       meta.WorkDate,
		Supervisor:     meta.Supervisor,
		Superintendent: meta.Superintendent,
		SourceFile:     sourceFile,
		IngestedAt:     ingestedAt,
	}
}

// dedupKey identifies a record for merging: same full code on the same day.
func dedupKey(r Record) string {
	return r.FullCode + "|" + r.WorkDate.Format("2006-01-02")
}

// Merge appends incoming records to the existing ledger, drops duplicates by
// (full code, work date) keeping the first occurrence, and returns the
// result sorted by (work date, full code) ascending. The sort is stable, so
// surviving records with equal keys keep their arrival order. Inputs are not
// modified.
func Merge(existing, incoming []Record) []Record {
	combined := make([]Record, 0, len(existing)+len(incoming))
	combined = append(combined, existing...)
	combined = append(combined, incoming...)

	seen := make(map[string]bool, len(combined))
	merged := combined[:0]
	for _, r := range combined {
		k := dedupKey(r)
		if seen[k] {
			continue
		}
		seen[k] = true
		merged = append(merged, r)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		di, dj := merged[i].WorkDate, merged[j].WorkDate
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return merged[i].FullCode < merged[j].FullCode
	})

	return merged
}
