package ledger

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"time"
)

var csvColumns = []string{
	"FULL_CODE",
	"BASE_CODE",
	"ITEM",
	"WORK_DATE",
	"SUPERVISOR",
	"SUPERINTENDENT",
	"SOURCE_FILE",
	"INGESTED_AT",
}

const (
	workDateLayout = "2006-01-02"
)

// CSVStore persists the ledger as a CSV file with a fixed header row.
type CSVStore struct {
	path string
}

// NewCSVStore creates a CSV store at path
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Close is a no-op; the CSV store holds no open handle between calls.
func (s *CSVStore) Close() error { return nil }

// Read loads all records. A missing file is an empty ledger.
func (s *CSVStore) Read(ctx context.Context) ([]Record, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(csvColumns)

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read ledger %s: %w", s.path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] { // skip header
		rec, err := recordFromCSV(row)
		if err != nil {
			return nil, fmt.Errorf("ledger %s row %d: %w", s.path, i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Write replaces the ledger file with the given records.
func (s *CSVStore) Write(ctx context.Context, records []Record) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create ledger: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvColumns); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(recordToCSV(rec)); err != nil {
			f.Close()
			return fmt.Errorf("write record %s: %w", rec.FullCode, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush ledger: %w", err)
	}
	return f.Close()
}

func recordToCSV(r Record) []string {
	ingested := ""
	if !r.IngestedAt.IsZero() {
		ingested = r.IngestedAt.UTC().Format(time.RFC3339)
	}
	return []string{
		r.FullCode,
		r.BaseCode,
		r.Item,
		r.WorkDate.Format(workDateLayout),
		r.Supervisor,
		r.Superintendent,
		r.SourceFile,
		ingested,
	}
}

func recordFromCSV(row []string) (Record, error) {
	workDate, err := time.ParseInLocation(workDateLayout, row[3], time.UTC)
	if err != nil {
		return Record{}, fmt.Errorf("parse work date %q: %w", row[3], err)
	}

	var ingested time.Time
	if row[7] != "" {
		ingested, err = time.Parse(time.RFC3339, row[7])
		if err != nil {
			return Record{}, fmt.Errorf("parse ingested_at %q: %w", row[7], err)
		}
	}

	return Record{
		FullCode:       row[0],
		BaseCode:       row[1],
		Item:           row[2],
		WorkDate:       workDate,
		Supervisor:     row[4],
		Superintendent: row[5],
		SourceFile:     row[6],
		IngestedAt:     ingested,
	}, nil
}
