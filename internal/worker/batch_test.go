package worker

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ppiankov/grammatika/internal/engine"
)

func newTestChecker(t *testing.T) *engine.Checker {
	t.Helper()
	c, err := engine.New()
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	return c
}

func TestBatchProcessor_ResultsInInputOrder(t *testing.T) {
	processor := NewBatchProcessor(newTestChecker(t), 4)

	sentences := []string{
		"I goes to school",
		"She plays tennis",
		"They was happy",
		"Do she like music?",
	}

	results := processor.ProcessSentences(context.Background(), sentences)

	if len(results) != len(sentences) {
		t.Fatalf("got %d results, want %d", len(results), len(sentences))
	}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("result %d has index %d", i, r.Index)
		}
		if r.Result.Original != sentences[i] {
			t.Errorf("result %d original = %q, want %q", i, r.Result.Original, sentences[i])
		}
	}

	if results[0].Result.Corrected != "I go to school" {
		t.Errorf("first corrected = %q", results[0].Result.Corrected)
	}
	if results[1].Result.Changed() {
		t.Error("already-correct sentence reported as changed")
	}
}

func TestBatchProcessor_EmptyInput(t *testing.T) {
	processor := NewBatchProcessor(newTestChecker(t), 2)
	results := processor.ProcessSentences(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

func TestReadSentencesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sentences.txt")
	content := `# practice sentences
I goes to school

They was happy
I goes to school
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	sentences, err := ReadSentencesFromFile(path)
	if err != nil {
		t.Fatalf("ReadSentencesFromFile: %v", err)
	}

	want := []string{"I goes to school", "They was happy"}
	if len(sentences) != len(want) {
		t.Fatalf("got %d sentences, want %d (comments, blanks, duplicates skipped)", len(sentences), len(want))
	}
	for i := range want {
		if sentences[i] != want[i] {
			t.Errorf("sentence %d = %q, want %q", i, sentences[i], want[i])
		}
	}
}

func TestReadSentencesFromFile_Missing(t *testing.T) {
	if _, err := ReadSentencesFromFile("/nonexistent/sentences.txt"); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestBatchProcessor_ProcessFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sentences.txt")
	if err := os.WriteFile(path, []byte("He go home\n"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	processor := NewBatchProcessor(newTestChecker(t), 2)
	results, err := processor.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Result.Corrected != "He goes home" {
		t.Errorf("corrected = %q, want %q", results[0].Result.Corrected, "He goes home")
	}
}
