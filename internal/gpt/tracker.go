package gpt

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Keys used by the app for in-flight tracking.
const (
	KeyNutrition   = "nutrition"
	KeySuggestions = "suggestions"
)

// SubstitutionKey returns the in-flight key for an ingredient lookup.
func SubstitutionKey(ingredient string) string {
	return "sub:" + ingredient
}

// Tracker runs at most one AI call per key at a time and reports which
// keys are busy. Concurrent callers with the same key share the result.
type Tracker struct {
	group singleflight.Group

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{inFlight: make(map[string]struct{})}
}

// Do runs fn under key. The busy flag is cleared however fn returns,
// including a panic, which is re-raised in the caller.
func (t *Tracker) Do(ctx context.Context, key string, fn func(context.Context) (any, error)) (any, error) {
	v, err, _ := t.group.Do(key, func() (any, error) {
		t.set(key, true)
		defer t.set(key, false)
		return fn(ctx)
	})
	return v, err
}

// Acquire marks key busy ahead of Do so callers can refuse duplicates
// before spawning work. Returns false when key is already busy. The
// holder must call Release.
func (t *Tracker) Acquire(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.inFlight[key]; ok {
		return false
	}
	t.inFlight[key] = struct{}{}
	return true
}

// Release clears a key taken with Acquire.
func (t *Tracker) Release(key string) {
	t.set(key, false)
}

// InFlight reports whether a call for key is running.
func (t *Tracker) InFlight(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.inFlight[key]
	return ok
}

// Busy reports whether any call is running.
func (t *Tracker) Busy() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.inFlight) > 0
}

func (t *Tracker) set(key string, busy bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if busy {
		t.inFlight[key] = struct{}{}
	} else {
		delete(t.inFlight, key)
	}
}
