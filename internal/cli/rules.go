package cli

import (
	"encoding/json"
	"fmt"

	"github.com/ppiankov/grammatika/internal/model"
	"github.com/ppiankov/grammatika/internal/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rulesAsJSON bool

// rulesCmd represents the rules command
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the grammar rule table",
	Long: `List every rule grouped by category, with its explanation and
example sentences. The listing is read-only; the table is fixed for the
process lifetime.

Example:
  grammatika rules
  grammatika rules --json
  grammatika rules --rules extra.yaml`,
	RunE: runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)

	rulesCmd.Flags().BoolVar(&rulesAsJSON, "json", false, "print the rule table as JSON")
	rulesCmd.Flags().StringVar(&rulesFile, "rules", "", "extra rules YAML file (appended after builtins)")
}

func runRules(cmd *cobra.Command, args []string) error {
	cfg := model.DefaultConfig()
	if rulesFile != "" {
		cfg.Rules.File = rulesFile
	} else {
		cfg.Rules.File = viper.GetString("rules.file")
	}

	checker, err := buildChecker(cfg)
	if err != nil {
		return err
	}

	if rulesAsJSON {
		data, err := json.MarshalIndent(checker.Rules(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal rules: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(render.NewRenderer(true).RulesListing(checker.Rules()))
	return nil
}
