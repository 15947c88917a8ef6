package stats

import (
	"sort"

	gocache "github.com/patrickmn/go-cache"
)

const (
	keyChecks      = "checks"
	keyCorrections = "corrections"
	categoryPrefix = "category:"
)

// Tracker keeps process-wide aggregate counters: total checks, total
// corrections, and corrections per rule category. Nothing is persisted
// and no per-user history is kept.
type Tracker struct {
	counters *gocache.Cache
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		counters: gocache.New(gocache.NoExpiration, 0),
	}
}

// RecordCheck records one engine invocation and the categories of the
// corrections it produced.
func (t *Tracker) RecordCheck(categories []string) {
	t.increment(keyChecks, 1)
	if len(categories) > 0 {
		t.increment(keyCorrections, int64(len(categories)))
	}
	for _, category := range categories {
		t.increment(categoryPrefix+category, 1)
	}
}

func (t *Tracker) increment(key string, n int64) {
	// Add is a no-op when the key exists, so the pair is safe under
	// concurrent callers.
	_ = t.counters.Add(key, int64(0), gocache.NoExpiration)
	_, _ = t.counters.IncrementInt64(key, n)
}

// Snapshot is a point-in-time view of the counters.
type Snapshot struct {
	Checks      int64            `json:"checks"`
	Corrections int64            `json:"corrections"`
	ByCategory  map[string]int64 `json:"by_category"`
}

// Snapshot returns the current counter values.
func (t *Tracker) Snapshot() Snapshot {
	snap := Snapshot{ByCategory: make(map[string]int64)}

	for key, item := range t.counters.Items() {
		value, ok := item.Object.(int64)
		if !ok {
			continue
		}
		switch {
		case key == keyChecks:
			snap.Checks = value
		case key == keyCorrections:
			snap.Corrections = value
		case len(key) > len(categoryPrefix) && key[:len(categoryPrefix)] == categoryPrefix:
			snap.ByCategory[key[len(categoryPrefix):]] = value
		}
	}

	return snap
}

// TopCategories returns category names ordered by correction count
// (descending), ties broken alphabetically.
func (s Snapshot) TopCategories() []string {
	names := make([]string, 0, len(s.ByCategory))
	for name := range s.ByCategory {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if s.ByCategory[names[i]] != s.ByCategory[names[j]] {
			return s.ByCategory[names[i]] > s.ByCategory[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}
