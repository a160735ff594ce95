package extract

import (
	"testing"

	"github.com/mrovere/shiftledger/internal/model"
)

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"1 HNX 10 ST", "1HNX10ST", true},
		{"1HK-10SE", "1HK10SE", true},
		{"1HDD0BST", "1HDD0BST", true},
		{"1hnx10st", "1HNX10ST", true},
		{"1 HK - 10 SE", "1HK10SE", true},
		{"", "", false},
		{"no code here", "", false},
		{"HNX10ST", "", false}, // missing leading digit
	}

	for _, tt := range tests {
		got, ok := NormalizeCode(tt.raw)
		if ok != tt.ok {
			t.Errorf("NormalizeCode(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeCode(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeCode_Deterministic(t *testing.T) {
	first, _ := NormalizeCode("1 hk-10 se")
	second, _ := NormalizeCode("1 hk-10 se")
	if first != second {
		t.Errorf("normalization not deterministic: %q vs %q", first, second)
	}
	if first != "1HK10SE" {
		t.Errorf("expected uppercase output, got %q", first)
	}
}

func TestExtractRows_EndToEnd(t *testing.T) {
	rows := ExtractRows("1HNX10ST 2292 2292 blah 0031.1 1HPB0NST 5555")

	want := []model.Row{
		{BaseCode: "1HNX10ST", Item: "2292"},
		{BaseCode: "1HNX10ST", Item: "0031.1"},
		{BaseCode: "1HPB0NST", Item: "5555"},
	}

	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d: %v", len(want), len(rows), rows)
	}
	for i, w := range want {
		if rows[i] != w {
			t.Errorf("row %d = %v, want %v", i, rows[i], w)
		}
	}
}

func TestExtractRows_ChunkLocalDedup(t *testing.T) {
	// repeats inside one chunk are dropped, first-occurrence order kept
	rows := ExtractRows("1HNX10ST 2292 2292 0031.1 2292")

	want := []model.Row{
		{BaseCode: "1HNX10ST", Item: "2292"},
		{BaseCode: "1HNX10ST", Item: "0031.1"},
	}

	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d: %v", len(want), len(rows), rows)
	}
	for i, w := range want {
		if rows[i] != w {
			t.Errorf("row %d = %v, want %v", i, rows[i], w)
		}
	}
}

func TestExtractRows_NoCrossChunkDedup(t *testing.T) {
	// the same item under two different codes is two rows
	rows := ExtractRows("1HNX10ST 2292 1HPB0NST 2292")

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d: %v", len(rows), rows)
	}
	if rows[0].BaseCode != "1HNX10ST" || rows[0].Item != "2292" {
		t.Errorf("unexpected first row: %v", rows[0])
	}
	if rows[1].BaseCode != "1HPB0NST" || rows[1].Item != "2292" {
		t.Errorf("unexpected second row: %v", rows[1])
	}
}

func TestExtractRows_ZoneClipping(t *testing.T) {
	text := "Header with code 1ABC12DE item 1111\n" +
		"Today's Tasks\n" +
		"1HNX10ST 2292\n" +
		"Manpower\n" +
		"Footer with code 1XYZ34FG item 9999\n"

	rows := ExtractRows(text)

	if len(rows) != 1 {
		t.Fatalf("expected 1 row from the clipped zone, got %d: %v", len(rows), rows)
	}
	if rows[0].BaseCode != "1HNX10ST" || rows[0].Item != "2292" {
		t.Errorf("unexpected row: %v", rows[0])
	}
}

func TestExtractRows_CurlyApostropheMarker(t *testing.T) {
	text := "ignored 1ABC12DE 1111\nToday’s Tasks\n1HNX10ST 2292\nManpower\n"

	rows := ExtractRows(text)

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d: %v", len(rows), rows)
	}
	if rows[0].BaseCode != "1HNX10ST" {
		t.Errorf("unexpected row: %v", rows[0])
	}
}

func TestExtractRows_MissingMarkers(t *testing.T) {
	// no markers at all: the whole text is the zone
	rows := ExtractRows("1HNX10ST 2292")
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
}

func TestExtractRows_Empty(t *testing.T) {
	if rows := ExtractRows(""); len(rows) != 0 {
		t.Errorf("expected no rows for empty text, got %v", rows)
	}
	if rows := ExtractRows("nothing that looks like an equipment code"); len(rows) != 0 {
		t.Errorf("expected no rows for code-free text, got %v", rows)
	}
}

func TestExtractRows_ItemShapes(t *testing.T) {
	// a 5-digit run is not an item; a dotted suffix needs exactly one digit
	rows := ExtractRows("1HNX10ST 12345 2292 0031.1")

	want := []model.Row{
		{BaseCode: "1HNX10ST", Item: "2292"},
		{BaseCode: "1HNX10ST", Item: "0031.1"},
	}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d: %v", len(want), len(rows), rows)
	}
	for i, w := range want {
		if rows[i] != w {
			t.Errorf("row %d = %v, want %v", i, rows[i], w)
		}
	}
}

func TestExtractRows_CodeWithoutItems(t *testing.T) {
	// a code followed immediately by another code contributes no rows itself
	rows := ExtractRows("1HNX10ST 1HPB0NST 5555")

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d: %v", len(rows), rows)
	}
	if rows[0].BaseCode != "1HPB0NST" || rows[0].Item != "5555" {
		t.Errorf("unexpected row: %v", rows[0])
	}
}
