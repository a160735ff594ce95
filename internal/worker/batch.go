package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mrovere/shiftledger/internal/pipeline"
)

// Processor defines the interface for processing a single document
type Processor interface {
	ProcessFile(ctx context.Context, path string) (*pipeline.Result, error)
}

// DocJob represents one document to process
type DocJob struct {
	Path      string
	Processor Processor
}

// Execute executes the document job
func (j *DocJob) Execute(ctx context.Context) Result {
	result, err := j.Processor.ProcessFile(ctx, j.Path)
	return &DocResult{
		Path:   j.Path,
		Result: result,
		Error:  err,
	}
}

// DocResult represents the outcome of one document job. Exactly one of
// Result and Error is set.
type DocResult struct {
	Path   string
	Result *pipeline.Result
	Error  error
}

// GetError returns the error from the document result
func (r *DocResult) GetError() error {
	return r.Error
}

// BatchProcessor processes multiple documents concurrently with per-document
// failure isolation: a failed document is reported in its DocResult and
// never aborts the batch.
type BatchProcessor struct {
	processor   Processor
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(processor Processor, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		processor:   processor,
		concurrency: concurrency,
	}
}

// ProcessFiles processes multiple document paths concurrently
func (b *BatchProcessor) ProcessFiles(ctx context.Context, paths []string) []*DocResult {
	if len(paths) == 0 {
		return []*DocResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	// Submit from a separate goroutine so results can be drained while
	// jobs are still queuing; submitting the whole batch first would
	// fill both channel buffers and block once the batch outgrows them.
	go func() {
		for _, path := range paths {
			pool.Submit(&DocJob{
				Path:      path,
				Processor: b.processor,
			})
		}
		pool.Close()
	}()

	docResults := make([]*DocResult, 0, len(paths))
	for result := range pool.Results() {
		docResults = append(docResults, result.(*DocResult))
	}

	return docResults
}

// ReadManifest reads document paths from a manifest file (one per line).
// Blank lines and # comments are skipped and duplicate paths are dropped.
func ReadManifest(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan manifest: %w", err)
	}

	return paths, nil
}
