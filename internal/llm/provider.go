package llm

import (
	"context"
	"fmt"

	"github.com/ppiankov/grammatika/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Tip generates a short study tip for a check result
	Tip(ctx context.Context, req TipRequest) (*TipResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// TipRequest contains the input for tip generation
type TipRequest struct {
	// Result is the grammar check result to explain
	Result model.CheckResult

	// Categories is the STRICT allowlist of rule categories that fired.
	// The tip must not teach rules the user did not trip over.
	Categories []string

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// TipResponse contains the LLM's tip output
type TipResponse struct {
	// Tip is the generated study tip text
	Tip string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   30,
		MaxTokens: 300,
	}
}

// BuildPrompt constructs the default prompt for tip generation.
// The prompt pins the tip to the rules that actually fired; the tip is
// presentation only and never feeds back into the correction pipeline.
func BuildPrompt(result model.CheckResult, categories []string) string {
	prompt := fmt.Sprintf(`You are an English tutor reviewing one automatically corrected sentence.

RULES:
1. ONLY discuss these grammar topics: %s
2. DO NOT introduce other grammar rules or re-correct the sentence.
3. Keep it to 1-2 encouraging sentences a beginner can act on.

Original:  %s
Corrected: %s

Mistakes found:
`, joinCategories(categories), result.Original, result.Corrected)

	for _, corr := range result.Corrections {
		prompt += fmt.Sprintf("- %s: %s\n", corr.Category, corr.Explanation)
	}

	prompt += "\nWrite the study tip."
	return prompt
}

func joinCategories(categories []string) string {
	if len(categories) == 0 {
		return "(none)"
	}
	result := ""
	for i, c := range categories {
		if i > 0 {
			result += ", "
		}
		result += c
	}
	return result
}
