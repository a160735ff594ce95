package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrovere/shiftledger/internal/model"
	"github.com/mrovere/shiftledger/internal/pipeline"
)

var inspectFormat string

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <docx>",
	Short: "Extract one document and dump the result without touching any ledger",
	Long: `Inspect runs the extraction pipeline on a single document and prints
the extracted metadata and rows. Useful for checking what a report template
yields before ingesting a batch.

Example:
  shiftledger inspect shift-2025-03-01.docx
  shiftledger inspect shift-2025-03-01.docx --format yaml --year 2025`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVar(&inspectFormat, "format", "json", "output format: json or yaml")
	inspectCmd.Flags().IntVar(&assumedYear, "year", 0, "assumed year for dates without one (default: current UTC year)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg := model.DefaultConfig()
	cfg.Ingest.AssumedYear = assumedYear
	cfg.Cache.Enabled = false // always extract fresh when inspecting

	p := pipeline.New(cfg)
	result, err := p.ProcessFile(context.Background(), args[0])
	if err != nil {
		return err
	}

	switch inspectFormat {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		fmt.Print(string(data))
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", inspectFormat)
	}

	if len(result.Rows) == 0 {
		fmt.Fprintln(os.Stderr, "warning: no equipment-code rows found")
	}

	return nil
}
