package cache

import (
	"golang.org/x/sync/singleflight"

	"github.com/ppiankov/lithium/internal/model"
)

// Memoizer wraps a Cache with single-writer-per-key semantics: concurrent
// calls for the same fingerprint share one computation instead of racing
// to produce (identical, but redundant) entries.
type Memoizer struct {
	store Cache
	group singleflight.Group
}

// NewMemoizer creates a memoizer over the given store
func NewMemoizer(store Cache) *Memoizer {
	return &Memoizer{store: store}
}

// Do returns the cached result for key, computing and retaining it once
// if absent. The pipeline is deterministic, so the retained result equals
// whatever any discarded concurrent computation would have produced.
func (m *Memoizer) Do(key string, compute func() *model.ValidationResult) *model.ValidationResult {
	if v, ok := m.store.Get(key); ok {
		return v
	}

	v, _, _ := m.group.Do(key, func() (interface{}, error) {
		if cached, ok := m.store.Get(key); ok {
			return cached, nil
		}
		result := compute()
		m.store.Set(key, result)
		return result, nil
	})
	return v.(*model.ValidationResult)
}

// Clear drops every retained result
func (m *Memoizer) Clear() {
	m.store.Clear()
}
