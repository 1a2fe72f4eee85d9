package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ppiankov/lithium/internal/engine"
	"github.com/ppiankov/lithium/internal/model"
	"github.com/ppiankov/lithium/internal/render"
)

var (
	batchSources     []string
	batchDomain      string
	batchMode        string
	batchConcurrency int
	batchJSON        string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>...",
	Short: "Validate multiple files in parallel against shared sources",
	Long: `Batch validates each file independently against the same source set,
in parallel, then prints a per-file verdict and a summary reduction:
best and worst file, average score, risk distribution, common issues.

Example:
  lithium batch drafts/*.txt --sources src1.txt src2.txt
  lithium batch a.txt b.txt --domain consulting --concurrency 8
  lithium batch reports/*.md --json batch.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringSliceVarP(&batchSources, "sources", "s", nil, "source files shared by every validation")
	batchCmd.Flags().StringVar(&batchDomain, "domain", string(model.DomainGeneral), "domain profile (general, consulting, technical, research)")
	batchCmd.Flags().StringVar(&batchMode, "mode", string(model.ModeFull), "validation mode (quick, full, detailed)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", runtime.NumCPU(), "number of parallel validations")
	batchCmd.Flags().StringVar(&batchJSON, "json", "", "write all results as JSON to this path")
}

func runBatch(cmd *cobra.Command, args []string) error {
	contents := make([]string, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		contents = append(contents, string(data))
	}

	sources, err := readSources(batchSources)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if batchConcurrency > 0 {
		cfg.Batch.Concurrency = batchConcurrency
	}

	eng := engine.New(cfg)
	results, summary, err := eng.BatchValidate(
		context.Background(), contents, sources,
		model.Domain(batchDomain), model.Mode(batchMode),
	)
	if err != nil {
		return fmt.Errorf("batch validate: %w", err)
	}

	for i, r := range results {
		if r == nil {
			fmt.Printf("✗ %s: no result\n", args[i])
			continue
		}
		mark := "✓"
		if !r.Passed {
			mark = "✗"
		}
		fmt.Printf("%s %s: %.1f%% (risk %s)\n", mark, args[i], r.OverallScore, r.RiskTier)
	}
	fmt.Println()
	fmt.Print(render.BatchSummary(summary))

	if batchJSON != "" {
		payload := struct {
			Results []*model.ValidationResult `json:"results"`
			Summary model.BatchSummary        `json:"summary"`
		}{results, summary}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal batch results: %w", err)
		}
		if err := os.WriteFile(batchJSON, data, 0644); err != nil {
			return fmt.Errorf("write batch results: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote JSON: %s\n", batchJSON)
		}
	}

	if summary.Failed > 0 {
		os.Exit(1)
	}
	return nil
}
