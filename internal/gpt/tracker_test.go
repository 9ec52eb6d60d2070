package gpt

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerInFlight(t *testing.T) {
	tr := NewTracker()
	started := make(chan struct{})
	release := make(chan struct{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = tr.Do(context.Background(), KeyNutrition, func(context.Context) (any, error) {
			close(started)
			<-release
			return "ok", nil
		})
	}()

	<-started
	assert.True(t, tr.InFlight(KeyNutrition))
	assert.False(t, tr.InFlight(KeySuggestions))
	assert.True(t, tr.Busy())

	close(release)
	<-done
	assert.False(t, tr.InFlight(KeyNutrition))
	assert.False(t, tr.Busy())
}

func TestTrackerSharesConcurrentCalls(t *testing.T) {
	tr := NewTracker()
	key := SubstitutionKey("sal")
	started := make(chan struct{})
	release := make(chan struct{})

	var mu sync.Mutex
	calls := 0

	first := make(chan any, 1)
	go func() {
		v, _ := tr.Do(context.Background(), key, func(context.Context) (any, error) {
			mu.Lock()
			calls++
			mu.Unlock()
			close(started)
			<-release
			return "shared", nil
		})
		first <- v
	}()
	<-started

	second := make(chan any, 1)
	go func() {
		v, _ := tr.Do(context.Background(), key, func(context.Context) (any, error) {
			mu.Lock()
			calls++
			mu.Unlock()
			return "own", nil
		})
		second <- v
	}()

	close(release)
	assert.Equal(t, "shared", <-first)
	v := <-second
	// The second caller either joined the first call or ran after it
	// finished; it never ran concurrently with it.
	assert.Contains(t, []any{"shared", "own"}, v)

	mu.Lock()
	defer mu.Unlock()
	assert.LessOrEqual(t, calls, 2)
}

func TestTrackerReleasesOnError(t *testing.T) {
	tr := NewTracker()
	boom := errors.New("boom")

	_, err := tr.Do(context.Background(), KeySuggestions, func(context.Context) (any, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, tr.InFlight(KeySuggestions))
}

func TestTrackerReleasesOnPanic(t *testing.T) {
	tr := NewTracker()

	require.Panics(t, func() {
		_, _ = tr.Do(context.Background(), KeySuggestions, func(context.Context) (any, error) {
			panic("kaboom")
		})
	})
	assert.False(t, tr.InFlight(KeySuggestions))
}

func TestSubstitutionKey(t *testing.T) {
	assert.Equal(t, "sub:Ovo", SubstitutionKey("Ovo"))
}

func TestTrackerAcquireRelease(t *testing.T) {
	tr := NewTracker()

	assert.True(t, tr.Acquire(KeyNutrition))
	assert.True(t, tr.InFlight(KeyNutrition))
	assert.False(t, tr.Acquire(KeyNutrition), "second acquire is refused")
	assert.True(t, tr.Acquire(KeySuggestions), "keys are independent")

	// Do under an acquired key still runs.
	v, err := tr.Do(context.Background(), KeyNutrition, func(context.Context) (any, error) {
		return "ok", nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "ok", v)

	tr.Release(KeyNutrition)
	tr.Release(KeySuggestions)
	assert.False(t, tr.Busy())
	assert.True(t, tr.Acquire(KeyNutrition))
}
