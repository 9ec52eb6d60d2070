package app

import (
	"context"

	"github.com/hammamikhairi/cozinha/internal/domain"
	"github.com/hammamikhairi/cozinha/internal/gpt"
)

// PanelKind says what the AI panel is showing.
type PanelKind int

const (
	PanelNone PanelKind = iota
	PanelSubstitution
	PanelNutrition
)

// Panel is the AI text panel on the detail view.
type Panel struct {
	Kind    PanelKind
	Subject string // ingredient name or recipe title
	Text    string
	Seq     uint64 // bumped for every reply shown, even an identical one
}

// Open reports whether the panel has anything to show.
func (p Panel) Open() bool {
	return p.Kind != PanelNone
}

// AIEnabled reports whether an assistant is configured.
func (s *State) AIEnabled() bool {
	return s.assistant != nil
}

// LookupSubstitutions asks for substitutes for an ingredient in the
// background. Returns false when AI is off or the same lookup is
// already running. The panel opens only if the reply lands while the
// user is still on the same view.
func (s *State) LookupSubstitutions(ctx context.Context, ingredient string) bool {
	key := gpt.SubstitutionKey(ingredient)
	return s.launch(ctx, key, func(ctx context.Context) (Panel, error) {
		text, err := s.assistant.Substitutions(ctx, ingredient)
		return Panel{Kind: PanelSubstitution, Subject: ingredient, Text: text}, err
	})
}

// LookupNutrition asks for a nutrition summary of the selected recipe.
func (s *State) LookupNutrition(ctx context.Context) bool {
	r, ok := s.Selected()
	if !ok {
		return false
	}
	return s.launch(ctx, gpt.KeyNutrition, func(ctx context.Context) (Panel, error) {
		text, err := s.assistant.NutritionSummary(ctx, r.Title, gpt.IngredientsSummary(r))
		return Panel{Kind: PanelNutrition, Subject: r.Title, Text: text}, err
	})
}

// Suggest asks for recipe ideas from on-hand ingredients. The previous
// suggestions are cleared immediately.
func (s *State) Suggest(ctx context.Context, ingredients []string) bool {
	if s.assistant == nil || !s.tracker.Acquire(gpt.KeySuggestions) {
		return false
	}

	s.mu.Lock()
	gen := s.gen
	s.suggestions = []domain.Suggestion{}
	s.mu.Unlock()

	s.goTracked(ctx, gpt.KeySuggestions, func(ctx context.Context) {
		got := s.assistant.SuggestFromIngredients(ctx, ingredients)

		s.mu.Lock()
		stale := gen != s.gen
		if !stale {
			s.suggestions = got
		}
		s.mu.Unlock()

		if stale {
			s.log.Debug("dropping %d stale suggestions", len(got))
			return
		}
		s.changed()
	})
	return true
}

// Panel returns the AI text panel.
func (s *State) Panel() Panel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.panel
}

// ClosePanel hides the AI text panel.
func (s *State) ClosePanel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.panel = Panel{}
}

// Suggestions returns the latest recipe suggestions.
func (s *State) Suggestions() []domain.Suggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Suggestion, len(s.suggestions))
	copy(out, s.suggestions)
	return out
}

// Busy reports whether an AI call for key is outstanding.
func (s *State) Busy(key string) bool {
	return s.tracker.InFlight(key)
}

// Wait blocks until every background AI call has finished.
func (s *State) Wait() {
	s.wg.Wait()
}

// launch runs a panel-producing call in the background under key.
func (s *State) launch(ctx context.Context, key string, call func(context.Context) (Panel, error)) bool {
	if s.assistant == nil || !s.tracker.Acquire(key) {
		return false
	}

	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()

	s.goTracked(ctx, key, func(ctx context.Context) {
		p, err := call(ctx)
		if err != nil {
			// Already logged by the gateway; the panel just stays closed.
			s.log.Debug("%s: no panel: %v", key, err)
			return
		}

		s.mu.Lock()
		stale := gen != s.gen
		if !stale {
			s.panelSeq++
			p.Seq = s.panelSeq
			s.panel = p
		}
		s.mu.Unlock()

		if stale {
			s.log.Debug("%s: dropping stale reply", key)
			return
		}
		s.changed()
	})
	return true
}

// goTracked runs fn on its own goroutine under a key the caller has
// already acquired. The key is released on every exit path. A panic
// inside fn is logged and swallowed.
func (s *State) goTracked(ctx context.Context, key string, fn func(context.Context)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.tracker.Release(key)
		defer func() {
			if r := recover(); r != nil {
				s.log.Error("%s: recovered from panic: %v", key, r)
				s.changed()
			}
		}()

		_, _ = s.tracker.Do(ctx, key, func(ctx context.Context) (any, error) {
			fn(ctx)
			return nil, nil
		})
	}()
}

// Thinking reports whether any AI call is outstanding.
func (s *State) Thinking() bool {
	return s.tracker.Busy()
}
