package extract

import (
	"testing"

	"github.com/mrovere/shiftledger/internal/docx"
)

func TestCollapseText_ParagraphsThenTables(t *testing.T) {
	doc := &docx.Document{
		Paragraphs: []string{"Shift Report", "  ", "7 January 2025"},
		Tables: []docx.Table{
			{
				Rows: []docx.Row{
					{Cells: []docx.Cell{
						{Paragraphs: []string{"Today's Tasks"}},
						{Paragraphs: []string{"1HNX10ST", "2292"}},
					}},
					{Cells: []docx.Cell{
						{Paragraphs: []string{"Manpower", ""}},
					}},
				},
			},
		},
	}

	got := CollapseText(doc)
	want := "Shift Report\n7 January 2025\nToday's Tasks\n1HNX10ST\n2292\nManpower"

	if got != want {
		t.Errorf("CollapseText = %q, want %q", got, want)
	}
}

func TestCollapseText_TrimsBlocks(t *testing.T) {
	doc := &docx.Document{
		Paragraphs: []string{"  padded  ", "\t", ""},
	}
	if got := CollapseText(doc); got != "padded" {
		t.Errorf("CollapseText = %q, want %q", got, "padded")
	}
}

func TestCollapseText_Empty(t *testing.T) {
	if got := CollapseText(&docx.Document{}); got != "" {
		t.Errorf("expected empty string for empty document, got %q", got)
	}
	if got := CollapseText(nil); got != "" {
		t.Errorf("expected empty string for nil document, got %q", got)
	}
}
