// Package pipeline orchestrates per-document processing: decode the
// container, collapse the text, extract metadata and rows. Each document is
// independent; a failure in one never affects another.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrovere/shiftledger/internal/cache"
	"github.com/mrovere/shiftledger/internal/docx"
	"github.com/mrovere/shiftledger/internal/extract"
	"github.com/mrovere/shiftledger/internal/model"
)

// Pipeline processes shift-report documents into extraction results.
type Pipeline struct {
	cache       cache.Cache // nil when caching is disabled
	assumedYear int
}

// Result is the full extraction output for one document.
type Result struct {
	Source    string         `json:"source"`
	Metadata  model.Metadata `json:"metadata"`
	Rows      []model.Row    `json:"rows"`
	FromCache bool           `json:"-"`
}

// New creates a pipeline from the given configuration.
func New(cfg *model.Config) *Pipeline {
	p := &Pipeline{
		assumedYear: cfg.ResolveAssumedYear(),
	}
	if cfg.Cache.Enabled {
		p.cache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}
	return p
}

// ProcessFile extracts metadata and rows from the document at path.
//
// An unreadable or malformed container and an impossible work date (e.g.
// "31 February") are whole-document failures; zero extracted rows is a
// valid result with an empty Rows slice, left to the caller's policy.
func (p *Pipeline) ProcessFile(ctx context.Context, path string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	source := filepath.Base(path)

	// Unchanged bytes produce identical results, so the content hash is a
	// safe cache key.
	var key string
	if p.cache != nil {
		key = cache.Key(data)
		if cached, found := p.cache.Get(key); found {
			var res Result
			if err := json.Unmarshal(cached, &res); err == nil {
				res.Source = source
				res.FromCache = true
				return &res, nil
			}
		}
	}

	doc, err := docx.Read(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}

	text := extract.CollapseText(doc)

	meta, err := extract.ExtractMetadata(text, p.assumedYear)
	if err != nil {
		return nil, fmt.Errorf("extract metadata from %s: %w", source, err)
	}

	res := &Result{
		Source:   source,
		Metadata: meta,
		Rows:     extract.ExtractRows(text),
	}

	if p.cache != nil {
		if encoded, err := json.Marshal(res); err == nil {
			_ = p.cache.Set(key, encoded, 0)
		}
	}

	return res, nil
}
