package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const ledgerSchema = `
CREATE TABLE IF NOT EXISTS ledger (
	full_code      TEXT NOT NULL,
	base_code      TEXT NOT NULL,
	item           TEXT NOT NULL,
	work_date      TEXT NOT NULL,
	supervisor     TEXT NOT NULL DEFAULT '',
	superintendent TEXT NOT NULL DEFAULT '',
	source_file    TEXT NOT NULL DEFAULT '',
	ingested_at    TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (full_code, work_date)
);`

// SQLiteStore persists the ledger in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the ledger database at path and applies the
// schema.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite ledger: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(ledgerSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create ledger schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Read loads all records ordered by (work date, full code).
func (s *SQLiteStore) Read(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT full_code, base_code, item, work_date, supervisor,
		       superintendent, source_file, ingested_at
		FROM ledger
		ORDER BY work_date ASC, full_code ASC`)
	if err != nil {
		return nil, fmt.Errorf("query ledger: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var workDate, ingested string
		if err := rows.Scan(&rec.FullCode, &rec.BaseCode, &rec.Item, &workDate,
			&rec.Supervisor, &rec.Superintendent, &rec.SourceFile, &ingested); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec.WorkDate, err = time.ParseInLocation(workDateLayout, workDate, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parse work date %q: %w", workDate, err)
		}
		if ingested != "" {
			rec.IngestedAt, err = time.Parse(time.RFC3339, ingested)
			if err != nil {
				return nil, fmt.Errorf("parse ingested_at %q: %w", ingested, err)
			}
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Write replaces the ledger contents with the given records in one
// transaction.
func (s *SQLiteStore) Write(ctx context.Context, records []Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin ledger write: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM ledger"); err != nil {
		return fmt.Errorf("clear ledger: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO ledger (full_code, base_code, item, work_date, supervisor,
		                    superintendent, source_file, ingested_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		ingested := ""
		if !rec.IngestedAt.IsZero() {
			ingested = rec.IngestedAt.UTC().Format(time.RFC3339)
		}
		if _, err := stmt.ExecContext(ctx,
			rec.FullCode, rec.BaseCode, rec.Item,
			rec.WorkDate.Format(workDateLayout),
			rec.Supervisor, rec.Superintendent, rec.SourceFile, ingested); err != nil {
			return fmt.Errorf("insert record %s: %w", rec.FullCode, err)
		}
	}

	return tx.Commit()
}
