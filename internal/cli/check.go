package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ppiankov/grammatika/internal/cache"
	"github.com/ppiankov/grammatika/internal/engine"
	"github.com/ppiankov/grammatika/internal/llm"
	"github.com/ppiankov/grammatika/internal/model"
	"github.com/ppiankov/grammatika/internal/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	outJSON     string
	rulesFile   string
	noFooter    bool
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <text>",
	Short: "Check one sentence and explain every correction",
	Long: `Check runs the input through the ordered rule table:
- Each rule is matched case-insensitively on whole words
- Substitutions apply to the progressively corrected text
- Every genuine change is reported with category, explanation, examples

Example:
  grammatika check "I goes to school"
  grammatika check "They was happy" --json result.json
  grammatika check "Do she like music?" --llm openai --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&outJSON, "json", "", "write result JSON to path")
	checkCmd.Flags().StringVar(&rulesFile, "rules", "", "extra rules YAML file (appended after builtins)")
	checkCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer on analysis output")

	checkCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable tutor tip generation")
	checkCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	checkCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runCheck(cmd *cobra.Command, args []string) error {
	text := args[0]

	cfg := model.DefaultConfig()
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

	if verbose {
		fmt.Fprintf(os.Stderr, "Loaded %d rules\n", len(checker.Rules()))
	}

	result := checker.Check(text)

	if llmEnabled && result.Changed() {
		if err := configureLLM(cfg); err != nil {
			return err
		}
		tipper, err := newTipper(cfg)
		if err != nil {
			return err
		}
		if tipper != nil {
			ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.LLM.Timeout)*time.Second)
			defer cancel()
			tip, err := tipper.Generate(ctx, result)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: tip generation failed: %v\n", err)
			} else {
				result.Tip = tip
			}
		}
	}

	renderer := render.NewRenderer(cfg.Output.IncludeFooter)
	fmt.Println(renderer.Reply(result))

	if outJSON != "" {
		if err := renderer.RenderJSON(result, outJSON); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote %s\n", outJSON)
		}
	}

	return nil
}

// buildChecker compiles the full rule table (builtins plus any extra
// rules file). A broken table aborts here, before any checking.
func buildChecker(cfg *model.Config) (*engine.Checker, error) {
	table, err := engine.LoadTable(cfg.Rules)
	if err != nil {
		return nil, fmt.Errorf("load rule table: %w", err)
	}
	checker, err := engine.NewWithRules(table)
	if err != nil {
		return nil, fmt.Errorf("compile rule table: %w", err)
	}
	return checker, nil
}

// configureLLM fills cfg.LLM from the flags and environment.
func configureLLM(cfg *model.Config) error {
	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel

	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}
	return nil
}

// newTipper builds the tip generator with its layered cache.
func newTipper(cfg *model.Config) (*llm.Tipper, error) {
	var tipCache cache.Cache
	if cfg.Cache.Enabled {
		dir := cfg.Cache.Dir
		if dir == "" {
			home, err := os.UserHomeDir()
			if err == nil {
				dir = filepath.Join(home, ".grammatika", "cache")
			}
		}
		if dir != "" {
			tipCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, dir, cfg.Cache.DiskTTL)
		}
	}

	return llm.NewTipper(llm.ConfigFromModel(cfg.LLM), tipCache, cfg.Cache.DiskTTL)
}
