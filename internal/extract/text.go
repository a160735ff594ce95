// Package extract recovers structured shift-report records from free-form
// document text: a work date, the two signatories, and the equipment-code /
// work-item pairs listed in the tasks section. All extractors are pure
// functions over the collapsed text.
package extract

import (
	"regexp"
	"strings"

	"github.com/mrovere/shiftledger/internal/docx"
)

var spaceRunRe = regexp.MustCompile(`[ \t]+`)

// cleanSpaces collapses runs of spaces and tabs to a single space and trims.
func cleanSpaces(s string) string {
	return strings.TrimSpace(spaceRunRe.ReplaceAllString(s, " "))
}

// CollapseText flattens a decoded document into one newline-joined string in
// reading order: body paragraphs first, then table cells row-major. Shift
// report templates keep most content in table cells, so tables must be
// included. Blank blocks are dropped, not kept as empty lines.
func CollapseText(doc *docx.Document) string {
	if doc == nil {
		return ""
	}

	var blocks []string

	for _, p := range doc.Paragraphs {
		if t := strings.TrimSpace(p); t != "" {
			blocks = append(blocks, t)
		}
	}

	for _, table := range doc.Tables {
		for _, row := range table.Rows {
			for _, cell := range row.Cells {
				for _, p := range cell.Paragraphs {
					if t := strings.TrimSpace(p); t != "" {
						blocks = append(blocks, t)
					}
				}
			}
		}
	}

	return strings.Join(blocks, "\n")
}
