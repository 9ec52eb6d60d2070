// Package catalog holds the authoritative in-memory recipe collection.
package catalog

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/hammamikhairi/cozinha/internal/domain"
	"github.com/hammamikhairi/cozinha/internal/logger"
)

// PlaceholderImageBase is the image source used when a new recipe has no
// image reference. A random token is appended so each recipe gets a
// distinct picture.
const PlaceholderImageBase = "https://picsum.photos/800/600?random="

// DefaultAuthor is credited on authored recipes that leave the field blank.
const DefaultAuthor = "Você"

// Option configures the store.
type Option func(*Store)

// WithSeed controls whether the built-in recipes are loaded. Default true.
func WithSeed(seed bool) Option {
	return func(s *Store) {
		s.seed = seed
	}
}

// WithRecipes preloads the store with the given recipes (after the seed,
// if any). Used by tests and fixtures.
func WithRecipes(recipes ...domain.Recipe) Option {
	return func(s *Store) {
		s.extra = append(s.extra, recipes...)
	}
}

// WithIDGenerator overrides the id source. Default is a random UUID.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// Store holds the catalog. Writers never mutate a recipe in place: every
// change builds a new slice and swaps it in, so snapshots handed out by
// All stay valid.
type Store struct {
	mu      sync.RWMutex
	recipes []domain.Recipe
	log     *logger.Logger
	newID   func() string
	valid   *draftValidator

	seed  bool
	extra []domain.Recipe
}

// NewStore creates a catalog store. Seeded with the built-in recipes
// unless WithSeed(false) is passed.
func NewStore(log *logger.Logger, opts ...Option) *Store {
	s := &Store{
		log:   log,
		newID: uuid.NewString,
		valid: newDraftValidator(),
		seed:  true,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.seed {
		s.recipes = append(s.recipes, seedRecipes()...)
	}
	for _, r := range s.extra {
		s.recipes = append(s.recipes, r.Clone())
	}
	s.extra = nil

	s.log.Debug("catalog ready, count=%d", len(s.recipes))
	return s
}

// All returns the current catalog snapshot in display order.
func (s *Store) All() []domain.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// snapshotLocked copies the slice header's elements so callers can't
// write through to the store. Ingredient and step slices are shared;
// nothing in the store ever writes to them after creation.
func (s *Store) snapshotLocked() []domain.Recipe {
	out := make([]domain.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out
}

// Len returns the number of recipes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recipes)
}

// Get returns a copy of the recipe with the given id.
func (s *Store) Get(id string) (domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.recipes {
		if r.ID == id {
			return r.Clone(), nil
		}
	}
	s.log.Debug("recipe not found: %s", id)
	return domain.Recipe{}, domain.ErrNotFound
}

// ToggleFavorite flips the favorite flag of the recipe with the given id
// and returns the updated catalog. An unknown id leaves the catalog
// untouched.
func (s *Store) ToggleFavorite(id string) []domain.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, r := range s.recipes {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.log.Debug("toggle favorite: no recipe %s", id)
		return s.snapshotLocked()
	}

	next := make([]domain.Recipe, len(s.recipes))
	copy(next, s.recipes)
	next[idx].IsFavorite = !next[idx].IsFavorite
	s.recipes = next

	s.log.Debug("recipe %s favorite=%t", id, next[idx].IsFavorite)
	return s.snapshotLocked()
}

// Add validates the draft, assigns an id and prepends the new recipe.
func (s *Store) Add(d domain.Draft) (domain.Recipe, error) {
	if err := s.valid.check(d); err != nil {
		return domain.Recipe{}, err
	}

	r := s.fromDraft(d)

	s.mu.Lock()
	next := make([]domain.Recipe, 0, len(s.recipes)+1)
	next = append(next, r)
	next = append(next, s.recipes...)
	s.recipes = next
	s.mu.Unlock()

	s.log.Info("recipe added: %q (%s, %d steps)", r.Title, r.ID, len(r.Steps))
	return r.Clone(), nil
}

// Favorites returns how many recipes are marked favorite.
func (s *Store) Favorites() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, r := range s.recipes {
		if r.IsFavorite {
			n++
		}
	}
	return n
}

// AuthoredBy counts recipes credited to the given author.
func (s *Store) AuthoredBy(author string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, r := range s.recipes {
		if strings.EqualFold(r.Author, author) {
			n++
		}
	}
	return n
}

func (s *Store) fromDraft(d domain.Draft) domain.Recipe {
	id := s.newID()

	r := domain.Recipe{
		ID:              id,
		Title:           strings.TrimSpace(d.Title),
		Description:     strings.TrimSpace(d.Description),
		ImageURL:        strings.TrimSpace(d.ImageURL),
		PrepTimeMinutes: d.PrepTimeMinutes,
		Difficulty:      d.Difficulty,
		Category:        d.Category,
		Author:          strings.TrimSpace(d.Author),
		IsFavorite:      false,
	}
	if d.Calories != nil {
		c := *d.Calories
		r.Calories = &c
	}
	if r.ImageURL == "" {
		r.ImageURL = PlaceholderImageBase + s.newID()
	}
	if r.Author == "" {
		r.Author = DefaultAuthor
	}

	r.Ingredients = make([]domain.Ingredient, 0, len(d.Ingredients))
	for i, in := range d.Ingredients {
		r.Ingredients = append(r.Ingredients, domain.Ingredient{
			ID:     fmt.Sprintf("%s-i%d", id, i+1),
			Name:   strings.TrimSpace(in.Name),
			Amount: in.Amount,
			Unit:   strings.TrimSpace(in.Unit),
		})
	}

	r.Steps = make([]domain.Step, 0, len(d.Steps))
	for i, st := range d.Steps {
		r.Steps = append(r.Steps, domain.Step{
			ID:           fmt.Sprintf("%s-s%d", id, i+1),
			Description:  strings.TrimSpace(st.Description),
			TimerSeconds: st.TimerSeconds,
		})
	}
	return r
}
