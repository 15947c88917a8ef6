package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ppiankov/grammatika/internal/model"
)

// Checker defines the interface for checking a sentence
type Checker interface {
	Check(text string) model.CheckResult
}

// CheckJob represents one sentence to check
type CheckJob struct {
	Index    int // Line position in the input file
	Sentence string
	Checker  Checker
}

// Execute executes the check job
func (j *CheckJob) Execute(ctx context.Context) Result {
	return &CheckJobResult{
		Index:  j.Index,
		Result: j.Checker.Check(j.Sentence),
	}
}

// CheckJobResult represents the result of a check job
type CheckJobResult struct {
	Index  int
	Result model.CheckResult
	Error  error
}

// GetError returns the error from the check result
func (r *CheckJobResult) GetError() error {
	return r.Error
}

// BatchProcessor checks many sentences concurrently
type BatchProcessor struct {
	checker     Checker
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(checker Checker, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		checker:     checker,
		concurrency: concurrency,
	}
}

// ProcessSentences checks sentences concurrently. Results come back in
// input order regardless of completion order.
func (b *BatchProcessor) ProcessSentences(ctx context.Context, sentences []string) []*CheckJobResult {
	if len(sentences) == 0 {
		return []*CheckJobResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for i, sentence := range sentences {
		pool.Submit(&CheckJob{
			Index:    i,
			Sentence: sentence,
			Checker:  b.checker,
		})
	}

	results := pool.Wait()

	checkResults := make([]*CheckJobResult, 0, len(results))
	for _, result := range results {
		checkResults = append(checkResults, result.(*CheckJobResult))
	}
	sort.Slice(checkResults, func(i, j int) bool {
		return checkResults[i].Index < checkResults[j].Index
	})

	return checkResults
}

// ProcessFile reads sentences from a file and checks them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*CheckJobResult, error) {
	sentences, err := ReadSentencesFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read sentences: %w", err)
	}

	return b.ProcessSentences(ctx, sentences), nil
}

// ReadSentencesFromFile reads sentences from a file (one per line).
// Empty lines, comments, and duplicates are skipped.
func ReadSentencesFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var sentences []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			sentences = append(sentences, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return sentences, nil
}
