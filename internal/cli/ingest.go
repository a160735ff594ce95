package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrovere/shiftledger/internal/ledger"
	"github.com/mrovere/shiftledger/internal/model"
	"github.com/mrovere/shiftledger/internal/pipeline"
	"github.com/mrovere/shiftledger/internal/report"
	"github.com/mrovere/shiftledger/internal/worker"
)

var (
	masterPath   string
	outPath      string
	assumedYear  int
	concurrency  int
	manifestPath string
	noCache      bool
	reportJSON   string
	reportMD     string
)

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest [docx...]",
	Short: "Extract rows from shift reports and merge them into the master ledger",
	Long: `Ingest processes one or more shift-report documents:
- Decode each .docx and collapse its text (paragraphs and table cells)
- Extract the work date, signatories, and equipment-code/work-item rows
- Merge the rows into the master ledger, deduplicating by (code, date)
- Write the merged ledger and an ingest report

Documents are processed in parallel; a malformed document is skipped with an
error in the report and never aborts the batch. A document that parses but
yields no rows is recorded as a warning.

Example:
  shiftledger ingest reports/*.docx --master master.csv --out master.csv
  shiftledger ingest --manifest reports.txt --out ledger.db --year 2025
  shiftledger ingest shift.docx --out master.csv --report-md ingest.md`,
	Args: cobra.ArbitraryArgs,
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)

	ingestCmd.Flags().StringVar(&masterPath, "master", "", "existing master ledger to merge into (optional)")
	ingestCmd.Flags().StringVar(&outPath, "out", "master_updated.csv", "output path for the merged ledger (.csv or .db)")
	ingestCmd.Flags().IntVar(&assumedYear, "year", 0, "assumed year for dates without one (default: current UTC year)")
	ingestCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	ingestCmd.Flags().StringVar(&manifestPath, "manifest", "", "file listing document paths, one per line")
	ingestCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the extraction cache")
	ingestCmd.Flags().StringVar(&reportJSON, "report-json", "", "write the ingest report as JSON to this path")
	ingestCmd.Flags().StringVar(&reportMD, "report-md", "", "write the ingest report as Markdown to this path")
}

// dedupPaths drops repeated paths, keeping first occurrence order, so a
// document named both on the command line and in the manifest is processed
// and reported once.
func dedupPaths(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := paths[:0]
	for _, p := range paths {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	paths := append([]string{}, args...)
	if manifestPath != "" {
		fromManifest, err := worker.ReadManifest(manifestPath)
		if err != nil {
			return err
		}
		paths = append(paths, fromManifest...)
	}
	paths = dedupPaths(paths)
	if len(paths) == 0 {
		return fmt.Errorf("no documents given: pass .docx paths or --manifest")
	}

	cfg := model.DefaultConfig()
	cfg.Ingest.AssumedYear = assumedYear
	cfg.Ingest.MasterPath = masterPath
	cfg.Ingest.OutputPath = outPath
	cfg.Cache.Enabled = !noCache
	cfg.Concurrency.Workers = concurrency
	cfg.Output.Verbose = verbose

	rep := &model.IngestReport{
		StartedAt:   time.Now().UTC(),
		AssumedYear: cfg.ResolveAssumedYear(),
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Documents: %d\n", len(paths))
		fmt.Fprintf(os.Stderr, "Assumed year: %d\n", rep.AssumedYear)
		fmt.Fprintf(os.Stderr, "Workers: %d\n", cfg.Concurrency.Workers)
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.New(cfg)
	results := worker.NewBatchProcessor(p, cfg.Concurrency.Workers).ProcessFiles(ctx, paths)

	// Results arrive in completion order; report in submission order.
	byPath := make(map[string]*worker.DocResult, len(results))
	for _, res := range results {
		byPath[res.Path] = res
	}

	ingestedAt := time.Now().UTC()
	var incoming []ledger.Record

	for _, path := range paths {
		res, ok := byPath[path]
		if !ok {
			continue
		}

		if res.Error != nil {
			rep.Files = append(rep.Files, model.FileOutcome{
				Source: filepath.Base(path),
				Status: model.OutcomeError,
				Error:  res.Error.Error(),
			})
			continue
		}

		outcome := model.FileOutcome{
			Source:    res.Result.Source,
			Status:    model.OutcomeOK,
			Rows:      len(res.Result.Rows),
			FromCache: res.Result.FromCache,
		}
		if len(res.Result.Rows) == 0 {
			outcome.Status = model.OutcomeWarning
			outcome.Warning = "no equipment-code rows found"
		}
		rep.Files = append(rep.Files, outcome)

		for _, row := range res.Result.Rows {
			incoming = append(incoming, ledger.FromRow(row, res.Result.Metadata, res.Result.Source, ingestedAt))
		}
	}

	var existing []ledger.Record
	if masterPath != "" {
		store, err := ledger.Open(masterPath)
		if err != nil {
			return fmt.Errorf("open master ledger: %w", err)
		}
		existing, err = store.Read(ctx)
		store.Close()
		if err != nil {
			return err
		}
		if err := ledger.ValidateAll(existing); err != nil {
			return fmt.Errorf("master ledger %s: %w", masterPath, err)
		}
	}

	merged := ledger.Merge(existing, incoming)
	rep.RowsBefore = len(existing)
	rep.RowsAfter = len(merged)
	rep.RowsAdded = rep.RowsAfter - rep.RowsBefore
	rep.FinishedAt = time.Now().UTC()

	if len(incoming) == 0 {
		report.RenderSummary(os.Stdout, rep)
		return fmt.Errorf("no rows could be extracted from the submitted documents")
	}

	store, err := ledger.Open(outPath)
	if err != nil {
		return fmt.Errorf("open output ledger: %w", err)
	}
	defer store.Close()
	if err := store.Write(ctx, merged); err != nil {
		return fmt.Errorf("write merged ledger: %w", err)
	}

	if reportJSON != "" {
		if err := report.RenderJSON(rep, reportJSON); err != nil {
			return err
		}
	}
	if reportMD != "" {
		if err := report.RenderMarkdown(rep, reportMD); err != nil {
			return err
		}
	}

	report.RenderSummary(os.Stdout, rep)
	fmt.Printf("Wrote merged ledger: %s\n", outPath)

	return nil
}
