package ledger

import (
	"context"
	"path/filepath"
	"strings"
)

// Store reads and writes a complete ledger. Merge semantics live in Merge;
// stores only persist what they are given.
type Store interface {
	Read(ctx context.Context) ([]Record, error)
	Write(ctx context.Context, records []Record) error
	Close() error
}

// Open selects a store backend from the file extension: .db/.sqlite/.sqlite3
// open a SQLite store, anything else is treated as CSV. A nonexistent file
// reads as an empty ledger in either backend.
func Open(path string) (Store, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return OpenSQLite(path)
	default:
		return NewCSVStore(path), nil
	}
}
