package render

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ppiankov/grammatika/internal/engine"
	"github.com/ppiankov/grammatika/internal/model"
	"github.com/ppiankov/grammatika/internal/stats"
)

func checkResult(t *testing.T, text string) model.CheckResult {
	t.Helper()
	c, err := engine.New()
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	return c.Check(text)
}

func TestReply_Analysis(t *testing.T) {
	r := NewRenderer(true)
	out := r.Reply(checkResult(t, "I goes to school"))

	for _, want := range []string{
		"Grammar Analysis",
		"I goes to school",
		"I go to school",
		"Subject-Verb Agreement",
		"1 error(s) fixed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("analysis missing %q:\n%s", want, out)
		}
	}
}

func TestReply_AnalysisNoFooter(t *testing.T) {
	r := NewRenderer(false)
	out := r.Reply(checkResult(t, "I goes to school"))

	if strings.Contains(out, "error(s) fixed") {
		t.Errorf("footer present with includeFooter=false:\n%s", out)
	}
}

func TestReply_Perfect(t *testing.T) {
	r := NewRenderer(true)
	out := r.Reply(checkResult(t, "She plays tennis"))

	if !strings.Contains(out, "Perfect Grammar") {
		t.Errorf("expected perfect-grammar confirmation:\n%s", out)
	}
	if strings.Contains(out, "Corrections Made") {
		t.Errorf("perfect reply contains corrections section:\n%s", out)
	}
}

func TestReply_NumbersCorrections(t *testing.T) {
	r := NewRenderer(true)
	out := r.Reply(checkResult(t, "I goes to school and they was happy"))

	if !strings.Contains(out, "1. **Subject-Verb Agreement**") {
		t.Errorf("first correction not numbered:\n%s", out)
	}
	if !strings.Contains(out, "2. **Verb Forms**") {
		t.Errorf("second correction not numbered:\n%s", out)
	}
}

func TestReply_IncludesTip(t *testing.T) {
	r := NewRenderer(true)
	res := checkResult(t, "They was happy")
	res.Tip = &model.TutorTip{Enabled: true, Text: "Pair plural subjects with were."}

	out := r.Reply(res)
	if !strings.Contains(out, "Tutor Tip") || !strings.Contains(out, "Pair plural subjects") {
		t.Errorf("tip not rendered:\n%s", out)
	}
}

func TestRulesListing_GroupsByCategory(t *testing.T) {
	c, err := engine.New()
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}

	out := NewRenderer(true).RulesListing(c.Rules())

	for _, category := range c.Categories() {
		if !strings.Contains(out, "🔹 **"+category+"**") {
			t.Errorf("listing missing category header %q:\n%s", category, out)
		}
	}
	// Category headers appear once even when several rules share one.
	if n := strings.Count(out, "🔹 **Subject-Verb Agreement**"); n != 1 {
		t.Errorf("Subject-Verb Agreement header appears %d times, want 1", n)
	}
}

func TestStatsText(t *testing.T) {
	tracker := stats.NewTracker()
	tracker.RecordCheck([]string{"Verb Forms"})
	tracker.RecordCheck(nil)

	out := NewRenderer(true).StatsText(tracker.Snapshot())

	if !strings.Contains(out, "Sentences checked: 2") {
		t.Errorf("stats missing check count:\n%s", out)
	}
	if !strings.Contains(out, "Verb Forms: 1") {
		t.Errorf("stats missing category breakdown:\n%s", out)
	}
}

func TestRenderJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")
	res := checkResult(t, "Do she like music?")

	if err := NewRenderer(true).RenderJSON(res, path); err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read JSON: %v", err)
	}

	var decoded model.CheckResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Corrected != "Does she like music?" {
		t.Errorf("corrected = %q", decoded.Corrected)
	}
	if len(decoded.Corrections) != 1 || decoded.Corrections[0].Category != "Auxiliary Verbs" {
		t.Errorf("corrections = %+v", decoded.Corrections)
	}
}
