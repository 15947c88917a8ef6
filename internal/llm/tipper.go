package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ppiankov/grammatika/internal/cache"
	"github.com/ppiankov/grammatika/internal/model"
)

// Tipper generates optional study tips for check results. It sits
// strictly after the correction pipeline: whatever it produces is
// attached to the result as presentation and never changes the
// corrected text or the corrections list.
type Tipper struct {
	provider Provider
	cache    cache.Cache
	ttl      time.Duration
}

// NewTipper creates a tipper for the configured provider. Returns
// (nil, nil) when no provider is configured. tipCache may be nil to
// disable caching.
func NewTipper(config Config, tipCache cache.Cache, ttl time.Duration) (*Tipper, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}

	return &Tipper{
		provider: provider,
		cache:    tipCache,
		ttl:      ttl,
	}, nil
}

// Generate produces a tip for a result that had corrections. Results
// without corrections get no tip.
func (t *Tipper) Generate(ctx context.Context, result model.CheckResult) (*model.TutorTip, error) {
	if len(result.Corrections) == 0 {
		return nil, nil
	}

	categories := firedCategories(result)

	key := ""
	if t.cache != nil {
		key = cache.TipKey(result.Original, t.provider.Name(), "")
		if data, found := t.cache.Get(key); found {
			var tip model.TutorTip
			if err := json.Unmarshal(data, &tip); err == nil {
				return &tip, nil
			}
		}
	}

	resp, err := t.provider.Tip(ctx, TipRequest{
		Result:     result,
		Categories: categories,
	})
	if err != nil {
		return nil, fmt.Errorf("generate tip: %w", err)
	}

	tip := &model.TutorTip{
		Enabled:  true,
		Provider: t.provider.Name(),
		Model:    resp.Model,
		Text:     resp.Tip,
		Warnings: checkCategoryLeaks(resp.Tip, categories),
	}

	if t.cache != nil && key != "" {
		if data, err := json.Marshal(tip); err == nil {
			_ = t.cache.Set(key, data, t.ttl)
		}
	}

	return tip, nil
}

// firedCategories returns the distinct categories of the corrections,
// in firing order.
func firedCategories(result model.CheckResult) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, corr := range result.Corrections {
		if !seen[corr.Category] {
			seen[corr.Category] = true
			categories = append(categories, corr.Category)
		}
	}
	return categories
}

// knownCategories is the closed set of rule categories the leak check
// scans for. A tip naming a category that did not fire gets a warning;
// the tip is still shown since the corrections themselves are untouched.
var knownCategories = []string{
	"Subject-Verb Agreement",
	"Tense Consistency",
	"Verb Forms",
	"Auxiliary Verbs",
}

func checkCategoryLeaks(tip string, fired []string) []string {
	firedSet := make(map[string]bool, len(fired))
	for _, c := range fired {
		firedSet[strings.ToLower(c)] = true
	}

	var warnings []string
	lower := strings.ToLower(tip)
	for _, known := range knownCategories {
		if firedSet[strings.ToLower(known)] {
			continue
		}
		if strings.Contains(lower, strings.ToLower(known)) {
			warnings = append(warnings, fmt.Sprintf("tip references category that did not fire: %s", known))
		}
	}
	return warnings
}
