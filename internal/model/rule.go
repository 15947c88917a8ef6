package model

// Rule describes one grammar error class: a case-insensitive pattern with
// capture groups, a substitution template that may reference them, and the
// explanatory metadata shown to the user when the rule fires.
// Rules are immutable once loaded; table order is significant.
type Rule struct {
	Category    string   `json:"category" yaml:"category"`       // Grouping label (e.g., "Subject-Verb Agreement")
	Pattern     string   `json:"pattern" yaml:"pattern"`         // Whole-word pattern, compiled case-insensitive
	Replacement string   `json:"replacement" yaml:"replacement"` // Template; ${n} reinjects captured groups verbatim
	Explanation string   `json:"explanation" yaml:"explanation"` // Human-readable rationale
	Examples    []string `json:"examples" yaml:"examples"`       // Incorrect/correct sentence pairs
}

// Correction records one rule firing against a specific input.
// It carries the triggering rule's presentation fields and nothing else;
// corrections live only for the duration of a single check.
type Correction struct {
	Category    string   `json:"category"`
	Explanation string   `json:"explanation"`
	Examples    []string `json:"examples"`
}

// CheckResult is the outcome of one pass over the rule table.
type CheckResult struct {
	Original    string       `json:"original"`
	Corrected   string       `json:"corrected"`
	Corrections []Correction `json:"corrections"`

	Tip *TutorTip `json:"tip,omitempty"` // Optional LLM study tip (separate, never affects corrections)
}

// Changed reports whether the pipeline produced a genuine text delta.
func (r CheckResult) Changed() bool {
	return r.Corrected != r.Original && len(r.Corrections) > 0
}

// TutorTip contains an optional LLM-generated study tip.
// CRITICAL: This never affects the corrected text or the corrections list.
type TutorTip struct {
	Enabled  bool     `json:"enabled"`
	Provider string   `json:"provider,omitempty"` // openai, anthropic, ollama
	Model    string   `json:"model,omitempty"`
	Text     string   `json:"text,omitempty"`
	Warnings []string `json:"warnings,omitempty"` // e.g., tip referenced a category that did not fire
}
