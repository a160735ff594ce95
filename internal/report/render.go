// Package report renders ingest run summaries to JSON, Markdown, and a
// terminal summary.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mrovere/shiftledger/internal/model"
)

// RenderJSON writes the report as indented JSON to path.
func RenderJSON(r *model.IngestReport, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report to path.
func RenderMarkdown(r *model.IngestReport, path string) error {
	var b strings.Builder

	b.WriteString("# Shift Report Ingest\n\n")
	fmt.Fprintf(&b, "- Started: %s\n", r.StartedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "- Assumed year: %d\n", r.AssumedYear)
	fmt.Fprintf(&b, "- Documents: %d\n\n", len(r.Files))

	b.WriteString("## Ledger\n\n")
	fmt.Fprintf(&b, "| Rows before | Rows after | Net added |\n")
	fmt.Fprintf(&b, "|---|---|---|\n")
	fmt.Fprintf(&b, "| %d | %d | %d |\n\n", r.RowsBefore, r.RowsAfter, r.RowsAdded)

	b.WriteString("## Documents\n\n")
	b.WriteString("| Source | Status | Rows | Notes |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, f := range r.Files {
		notes := f.Warning
		if f.Error != "" {
			notes = f.Error
		}
		if f.FromCache {
			if notes != "" {
				notes += "; "
			}
			notes += "cached"
		}
		fmt.Fprintf(&b, "| %s | %s | %d | %s |\n", f.Source, f.Status, f.Rows, notes)
	}
	b.WriteString("\n")

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderSummary prints the run outcome in the shape operators expect:
// rows before, rows after, and the net number added, plus any per-document
// warnings and errors.
func RenderSummary(w io.Writer, r *model.IngestReport) {
	fmt.Fprintf(w, "Processed %d document(s)\n", len(r.Files))
	fmt.Fprintf(w, "Rows before: %d | after: %d | net added: %d\n",
		r.RowsBefore, r.RowsAfter, r.RowsAdded)

	for _, f := range r.Warnings() {
		fmt.Fprintf(w, "  warning: %s: %s\n", f.Source, f.Warning)
	}
	for _, f := range r.Errors() {
		fmt.Fprintf(w, "  error: %s: %s\n", f.Source, f.Error)
	}
}
