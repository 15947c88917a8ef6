package engine

import (
	"reflect"
	"testing"

	"github.com/ppiankov/grammatika/internal/model"
)

func newChecker(t *testing.T) *Checker {
	t.Helper()
	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestChecker_EndToEndScenarios(t *testing.T) {
	c := newChecker(t)

	tests := []struct {
		name        string
		input       string
		corrected   string
		corrections int
		category    string
	}{
		{"subject verb agreement", "I goes to school", "I go to school", 1, "Subject-Verb Agreement"},
		{"verb forms", "They was happy", "They were happy", 1, "Verb Forms"},
		{"auxiliary verbs", "Do she like music?", "Does she like music?", 1, "Auxiliary Verbs"},
		{"tense consistency", "I am go to school", "I am going to school", 1, "Tense Consistency"},
		{"already correct", "She plays tennis", "She plays tennis", 0, ""},
		{"empty input", "", "", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := c.Check(tt.input)
			if res.Corrected != tt.corrected {
				t.Errorf("Corrected = %q, want %q", res.Corrected, tt.corrected)
			}
			if len(res.Corrections) != tt.corrections {
				t.Fatalf("got %d corrections, want %d", len(res.Corrections), tt.corrections)
			}
			if tt.corrections == 1 && res.Corrections[0].Category != tt.category {
				t.Errorf("category = %q, want %q", res.Corrections[0].Category, tt.category)
			}
			if res.Original != tt.input {
				t.Errorf("Original = %q, want %q", res.Original, tt.input)
			}
		})
	}
}

func TestChecker_NoTriggerReturnsInputUnchanged(t *testing.T) {
	c := newChecker(t)

	inputs := []string{
		"The weather is nice today.",
		"   ",
		"12345 !?",
		"Привет, как дела?",
	}

	for _, input := range inputs {
		res := c.Check(input)
		if res.Corrected != input {
			t.Errorf("Check(%q) corrected = %q, want unchanged", input, res.Corrected)
		}
		if len(res.Corrections) != 0 {
			t.Errorf("Check(%q) recorded %d corrections, want 0", input, len(res.Corrections))
		}
	}
}

func TestChecker_CasePreservation(t *testing.T) {
	c := newChecker(t)

	tests := []struct {
		input string
		want  string
	}{
		{"he go home", "he goes home"},
		{"He go home", "He goes home"},
		{"SHE eat lunch", "SHE eats lunch"},
		{"do she like music?", "does she like music?"},
		{"Do she like music?", "Does she like music?"},
		{"they was late", "they were late"},
		{"They was late", "They were late"},
	}

	for _, tt := range tests {
		if got := c.Check(tt.input).Corrected; got != tt.want {
			t.Errorf("Check(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestChecker_Idempotence(t *testing.T) {
	c := newChecker(t)

	// A corrected sentence must not re-trigger the rule that fixed it.
	inputs := []string{
		"I goes to school",
		"He go home",
		"She eat lunch",
		"I am go to school",
		"They was happy",
		"Do she like music?",
	}

	for _, input := range inputs {
		first := c.Check(input)
		second := c.Check(first.Corrected)
		if second.Corrected != first.Corrected {
			t.Errorf("Check(%q) not idempotent: %q then %q", input, first.Corrected, second.Corrected)
		}
		if len(second.Corrections) != 0 {
			t.Errorf("Check(%q): corrected text re-triggered %d rules", input, len(second.Corrections))
		}
	}
}

func TestChecker_SequentialApplication(t *testing.T) {
	c := newChecker(t)

	// Two independent errors fix in one pass, each recorded once.
	res := c.Check("I goes to school and they was happy")
	want := "I go to school and they were happy"
	if res.Corrected != want {
		t.Errorf("Corrected = %q, want %q", res.Corrected, want)
	}
	if len(res.Corrections) != 2 {
		t.Fatalf("got %d corrections, want 2", len(res.Corrections))
	}
	// Corrections are reported in table order.
	if res.Corrections[0].Category != "Subject-Verb Agreement" {
		t.Errorf("first category = %q", res.Corrections[0].Category)
	}
	if res.Corrections[1].Category != "Verb Forms" {
		t.Errorf("second category = %q", res.Corrections[1].Category)
	}
}

func TestChecker_OrderSensitivity(t *testing.T) {
	// A later rule sees the text produced by an earlier one, not the
	// original input.
	rules := []model.Rule{
		{Category: "A", Pattern: `\bfoo\b`, Replacement: "bar", Explanation: "a"},
		{Category: "B", Pattern: `\bbar\b`, Replacement: "baz", Explanation: "b"},
	}
	c, err := NewWithRules(rules)
	if err != nil {
		t.Fatalf("NewWithRules: %v", err)
	}

	res := c.Check("foo")
	if res.Corrected != "baz" {
		t.Errorf("Corrected = %q, want %q (sequential application)", res.Corrected, "baz")
	}
	if len(res.Corrections) != 2 {
		t.Errorf("got %d corrections, want 2", len(res.Corrections))
	}
}

func TestChecker_NoOpReplacementNotRecorded(t *testing.T) {
	// Pattern matches but the substitution reproduces the input exactly.
	rules := []model.Rule{
		{Category: "Echo", Pattern: `\b(hello)\b`, Replacement: "${1}", Explanation: "no-op"},
	}
	c, err := NewWithRules(rules)
	if err != nil {
		t.Fatalf("NewWithRules: %v", err)
	}

	res := c.Check("hello world")
	if res.Corrected != "hello world" {
		t.Errorf("Corrected = %q, want input unchanged", res.Corrected)
	}
	if len(res.Corrections) != 0 {
		t.Errorf("no-op replacement recorded %d corrections, want 0", len(res.Corrections))
	}
	if res.Changed() {
		t.Error("Changed() = true for a no-op result")
	}
}

func TestChecker_AllMatchesReplaced(t *testing.T) {
	c := newChecker(t)

	// All non-overlapping matches in one pass.
	res := c.Check("he go home and she go away")
	want := "he goes home and she goes away"
	if res.Corrected != want {
		t.Errorf("Corrected = %q, want %q", res.Corrected, want)
	}
	// One rule firing, regardless of how many sites it replaced.
	if len(res.Corrections) != 1 {
		t.Errorf("got %d corrections, want 1", len(res.Corrections))
	}
}

func TestChecker_CorrectionCopiesRuleMetadata(t *testing.T) {
	c := newChecker(t)

	res := c.Check("They was happy")
	if len(res.Corrections) != 1 {
		t.Fatalf("got %d corrections, want 1", len(res.Corrections))
	}

	corr := res.Corrections[0]
	var rule model.Rule
	for _, r := range c.Rules() {
		if r.Category == "Verb Forms" {
			rule = r
			break
		}
	}

	if corr.Explanation != rule.Explanation {
		t.Errorf("explanation = %q, want %q", corr.Explanation, rule.Explanation)
	}
	if !reflect.DeepEqual(corr.Examples, rule.Examples) {
		t.Errorf("examples = %v, want %v", corr.Examples, rule.Examples)
	}
}

func TestChecker_WordBoundaries(t *testing.T) {
	c := newChecker(t)

	// Substrings inside larger words must not match.
	inputs := []string{
		"Indigo goes well with blue", // "I goes" not present as words... "Indigo goes" must not trigger the "I" rule
		"The cargo was heavy",        // "go was" inside words
		"She goes to work",           // already inflected
	}

	for _, input := range inputs {
		res := c.Check(input)
		if res.Corrected != input {
			t.Errorf("Check(%q) = %q, want unchanged", input, res.Corrected)
		}
	}
}

func TestNewWithRules_InvalidPattern(t *testing.T) {
	rules := []model.Rule{
		{Category: "Broken", Pattern: `\b(unclosed`, Replacement: "x", Explanation: "bad"},
	}
	if _, err := NewWithRules(rules); err == nil {
		t.Fatal("expected error for invalid pattern, got nil")
	}
}

func TestChecker_RulesEnumeration(t *testing.T) {
	c := newChecker(t)

	rules := c.Rules()
	if len(rules) != len(BuiltinRules()) {
		t.Fatalf("got %d rules, want %d", len(rules), len(BuiltinRules()))
	}

	for i, r := range rules {
		if r.Category == "" || r.Pattern == "" || r.Explanation == "" {
			t.Errorf("rule %d incomplete: %+v", i, r)
		}
		if len(r.Examples) != 2 {
			t.Errorf("rule %d: got %d examples, want incorrect/correct pair", i, len(r.Examples))
		}
	}

	wantCategories := []string{"Subject-Verb Agreement", "Tense Consistency", "Verb Forms", "Auxiliary Verbs"}
	if got := c.Categories(); !reflect.DeepEqual(got, wantCategories) {
		t.Errorf("Categories() = %v, want %v", got, wantCategories)
	}
}
