package engine

import (
	"fmt"
	"os"
	"regexp"

	"github.com/ppiankov/grammatika/internal/model"
)

// Checker applies an ordered, immutable rule table to input text.
// It holds no mutable state after construction and is safe for
// concurrent use.
type Checker struct {
	rules []compiledRule
}

type compiledRule struct {
	rule model.Rule
	re   *regexp.Regexp
}

// New creates a checker with the built-in rule table.
func New() (*Checker, error) {
	return NewWithRules(BuiltinRules())
}

// NewWithRules creates a checker from an explicit rule table.
// A rule that fails to compile aborts construction; a broken table is a
// startup error, never a per-check one.
func NewWithRules(rules []model.Rule) (*Checker, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for i, r := range rules {
		re, err := regexp.Compile("(?i)" + r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compile rule %d (%s): %w", i, r.Category, err)
		}
		compiled = append(compiled, compiledRule{rule: r, re: re})
	}
	return &Checker{rules: compiled}, nil
}

// Check runs one pass of the correction pipeline over text.
//
// Each rule is tested against the progressively corrected text in table
// order. A rule is recorded as a correction only when its substitution
// produced a genuine change; a match whose replacement leaves the text
// identical is discarded. A rule that fails at match or substitution
// time is logged and skipped, never surfaced to the caller.
func (c *Checker) Check(text string) model.CheckResult {
	current := text
	var corrections []model.Correction

	for _, cr := range c.rules {
		candidate, applied, err := applyRule(cr, current)
		if err != nil {
			fmt.Fprintf(os.Stderr, "grammatika: skipping rule %q: %v\n", cr.rule.Category, err)
			continue
		}
		if !applied {
			continue
		}

		current = candidate
		corrections = append(corrections, model.Correction{
			Category:    cr.rule.Category,
			Explanation: cr.rule.Explanation,
			Examples:    append([]string(nil), cr.rule.Examples...),
		})
	}

	return model.CheckResult{
		Original:    text,
		Corrected:   current,
		Corrections: corrections,
	}
}

// applyRule runs a single rule against text. applied is true only when
// the substitution produced a change. Panics from the pattern engine are
// converted into an error so one bad rule cannot abort the pipeline.
func applyRule(cr compiledRule, text string) (candidate string, applied bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			candidate, applied, err = text, false, fmt.Errorf("rule application panic: %v", r)
		}
	}()

	if !cr.re.MatchString(text) {
		return text, false, nil
	}

	candidate = cr.re.ReplaceAllString(text, cr.rule.Replacement)
	if candidate == text {
		return text, false, nil
	}
	return candidate, true, nil
}

// Rules returns a copy of the rule table for read-only enumeration.
func (c *Checker) Rules() []model.Rule {
	rules := make([]model.Rule, 0, len(c.rules))
	for _, cr := range c.rules {
		rules = append(rules, cr.rule)
	}
	return rules
}

// Categories returns the distinct rule categories in table order.
func (c *Checker) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, cr := range c.rules {
		if !seen[cr.rule.Category] {
			seen[cr.rule.Category] = true
			categories = append(categories, cr.rule.Category)
		}
	}
	return categories
}
