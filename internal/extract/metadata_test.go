package extract

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExtractMetadata_PrimaryDateWithYear(t *testing.T) {
	meta, err := ExtractMetadata("Shift report for 7th January 2024\n", 2030)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	// explicit year beats the assumed year
	if !meta.WorkDate.Equal(date(2024, time.January, 7)) {
		t.Errorf("work date = %v, want 2024-01-07", meta.WorkDate)
	}
}

func TestExtractMetadata_PrimaryDateWithoutYear(t *testing.T) {
	meta, err := ExtractMetadata("Work done on 7 January as planned", 2025)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !meta.WorkDate.Equal(date(2025, time.January, 7)) {
		t.Errorf("work date = %v, want 2025-01-07", meta.WorkDate)
	}
}

func TestExtractMetadata_OrdinalSuffixes(t *testing.T) {
	tests := []struct {
		text string
		want time.Time
	}{
		{"1st March 2025", date(2025, time.March, 1)},
		{"2nd March 2025", date(2025, time.March, 2)},
		{"3rd March 2025", date(2025, time.March, 3)},
		{"4TH MARCH 2025", date(2025, time.March, 4)},
		{"21st   december", date(2024, time.December, 21)},
	}

	for _, tt := range tests {
		meta, err := ExtractMetadata(tt.text, 2024)
		if err != nil {
			t.Errorf("ExtractMetadata(%q) error: %v", tt.text, err)
			continue
		}
		if !meta.WorkDate.Equal(tt.want) {
			t.Errorf("ExtractMetadata(%q) date = %v, want %v", tt.text, meta.WorkDate, tt.want)
		}
	}
}

func TestExtractMetadata_InvalidCalendarDate(t *testing.T) {
	_, err := ExtractMetadata("completed 31st February 2025", 2025)
	if err == nil {
		t.Fatal("expected error for 31 February")
	}

	var invalid *InvalidDateError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidDateError, got %T: %v", err, err)
	}
	if invalid.Day != 31 || invalid.Month != time.February {
		t.Errorf("unexpected error fields: %+v", invalid)
	}
}

func TestExtractMetadata_DateLabelFallback(t *testing.T) {
	meta, err := ExtractMetadata("Some header\nDate\n03/04/2025\nmore text", 2020)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	// day-first: 3 April, not 4 March
	if !meta.WorkDate.Equal(date(2025, time.April, 3)) {
		t.Errorf("work date = %v, want 2025-04-03", meta.WorkDate)
	}
}

func TestExtractMetadata_LastResort(t *testing.T) {
	meta, err := ExtractMetadata("no date anywhere in this text", 2025)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !meta.WorkDate.Equal(date(2025, time.January, 1)) {
		t.Errorf("work date = %v, want 2025-01-01", meta.WorkDate)
	}
}

func TestExtractMetadata_Signatures(t *testing.T) {
	text := "Today's Tasks\n" +
		"1HNX10ST 2292\n" +
		"Signed (Supervisor) John  O'Brien\n" +
		"Signed (Superintendent) Anna-Maria  van Dyk\n"

	meta, err := ExtractMetadata(text, 2025)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// internal whitespace collapses to single spaces
	if meta.Supervisor != "John O'Brien" {
		t.Errorf("supervisor = %q, want %q", meta.Supervisor, "John O'Brien")
	}
	if meta.Superintendent != "Anna-Maria van Dyk" {
		t.Errorf("superintendent = %q, want %q", meta.Superintendent, "Anna-Maria van Dyk")
	}
}

func TestExtractMetadata_MissingSignatures(t *testing.T) {
	meta, err := ExtractMetadata("7 January 2025", 2025)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if meta.Supervisor != "" || meta.Superintendent != "" {
		t.Errorf("expected empty signatories, got %q / %q", meta.Supervisor, meta.Superintendent)
	}
}

func TestExtractMetadata_SignatureCaseInsensitive(t *testing.T) {
	meta, err := ExtractMetadata("signed (supervisor) Maria Silva", 2025)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if meta.Supervisor != "Maria Silva" {
		t.Errorf("supervisor = %q, want %q", meta.Supervisor, "Maria Silva")
	}
}
