package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/ppiankov/grammatika/internal/model"
	"github.com/ppiankov/grammatika/internal/render"
	"github.com/ppiankov/grammatika/internal/stats"
	"github.com/ppiankov/grammatika/internal/worker"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Check sentences from a file in parallel",
	Long: `Batch checks many sentences concurrently:
- Read sentences from the input file (one per line, # for comments)
- Check them in parallel with a configurable worker count
- Print per-sentence results in input order plus aggregate counters
- Optionally write one JSON result per sentence

Example:
  grammatika batch sentences.txt
  grammatika batch sentences.txt --concurrency 8 --output-dir ./results`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "", "write per-sentence JSON results to this directory")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 5*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().StringVar(&rulesFile, "rules", "", "extra rules YAML file (appended after builtins)")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer on analysis output")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := model.DefaultConfig()
	cfg.Concurrency.Workers = concurrency
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	if rulesFile != "" {
		cfg.Rules.File = rulesFile
	} else {
		cfg.Rules.File = viper.GetString("rules.file")
	}

	checker, err := buildChecker(cfg)
	if err != nil {
		return err
	}

	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Grammatika Batch Check\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Rules:        %d\n", len(checker.Rules()))
	fmt.Fprintf(os.Stderr, "\n")

	processor := worker.NewBatchProcessor(checker, concurrency)
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	tracker := stats.NewTracker()
	renderer := render.NewRenderer(cfg.Output.IncludeFooter)
	changed := 0

	for _, r := range results {
		categories := make([]string, 0, len(r.Result.Corrections))
		for _, corr := range r.Result.Corrections {
			categories = append(categories, corr.Category)
		}
		tracker.RecordCheck(categories)

		if r.Result.Changed() {
			changed++
			fmt.Printf("✗ %s\n  → %s\n", r.Result.Original, r.Result.Corrected)
			for _, corr := range r.Result.Corrections {
				fmt.Printf("    • %s\n", corr.Category)
			}
		} else {
			fmt.Printf("✓ %s\n", r.Result.Original)
		}

		if outputDir != "" {
			path := filepath.Join(outputDir, fmt.Sprintf("sentence-%03d.json", r.Index+1))
			if err := renderer.RenderJSON(r.Result, path); err != nil {
				fmt.Fprintf(os.Stderr, "✗ write %s: %v\n", path, err)
			}
		}
	}

	snap := tracker.Snapshot()
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Sentences:    %d\n", len(results))
	fmt.Fprintf(os.Stderr, "  Corrected:    %d\n", changed)
	fmt.Fprintf(os.Stderr, "  Corrections:  %d\n", snap.Corrections)
	for _, name := range snap.TopCategories() {
		fmt.Fprintf(os.Stderr, "    • %s: %d\n", name, snap.ByCategory[name])
	}
	if outputDir != "" {
		fmt.Fprintf(os.Stderr, "  Output:       %s\n", outputDir)
	}
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}
