package engine

import (
	"fmt"
	"os"
	"regexp"

	"github.com/ppiankov/grammatika/internal/model"
	"gopkg.in/yaml.v3"
)

// rulesFile is the on-disk shape of an extra-rules file.
type rulesFile struct {
	Rules []model.Rule `yaml:"rules"`
}

// LoadRulesFile reads additional rules from a YAML file. Loaded rules
// are meant to be appended after the built-in table, so file order is
// preserved. A malformed file or rule is a startup error.
func LoadRulesFile(path string) ([]model.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}

	var rf rulesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}

	for i, r := range rf.Rules {
		if err := validateRule(r); err != nil {
			return nil, fmt.Errorf("rules file %s: rule %d: %w", path, i, err)
		}
	}

	return rf.Rules, nil
}

// validateRule checks that a rule is complete and its pattern compiles.
func validateRule(r model.Rule) error {
	if r.Category == "" {
		return fmt.Errorf("missing category")
	}
	if r.Pattern == "" {
		return fmt.Errorf("missing pattern")
	}
	if r.Replacement == "" {
		return fmt.Errorf("missing replacement")
	}
	if _, err := regexp.Compile("(?i)" + r.Pattern); err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}
	return nil
}

// LoadTable builds the full rule table: builtins plus any extra rules
// from cfg, in that order.
func LoadTable(cfg model.RulesConfig) ([]model.Rule, error) {
	rules := BuiltinRules()

	if cfg.File != "" {
		extra, err := LoadRulesFile(cfg.File)
		if err != nil {
			return nil, err
		}
		rules = append(rules, extra...)
	}

	return rules, nil
}
