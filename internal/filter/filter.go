// Package filter derives the visible recipe list from the catalog and the
// user's search criteria. Everything here is pure: inputs are never
// modified and nothing is cached.
package filter

import (
	"strings"

	"github.com/hammamikhairi/cozinha/internal/domain"
)

// DefaultMaxPrepTime is the upper bound of the prep-time slider.
const DefaultMaxPrepTime = 120

// CategorySelector is either a specific category or "all".
type CategorySelector struct {
	cat domain.Category
}

// AllCategories matches every category.
var AllCategories = CategorySelector{}

// OnlyCategory matches a single category.
func OnlyCategory(c domain.Category) CategorySelector {
	return CategorySelector{cat: c}
}

// All reports whether the selector matches every category.
func (s CategorySelector) All() bool { return s.cat == 0 }

// Category returns the selected category and false when the selector is "all".
func (s CategorySelector) Category() (domain.Category, bool) {
	return s.cat, s.cat != 0
}

// Match reports whether c passes the selector.
func (s CategorySelector) Match(c domain.Category) bool {
	return s.All() || s.cat == c
}

func (s CategorySelector) String() string {
	if s.All() {
		return "Todos"
	}
	return s.cat.Label()
}

// DifficultySelector is either a specific difficulty or "all".
type DifficultySelector struct {
	diff domain.Difficulty
}

// AllDifficulties matches every difficulty.
var AllDifficulties = DifficultySelector{}

// OnlyDifficulty matches a single difficulty.
func OnlyDifficulty(d domain.Difficulty) DifficultySelector {
	return DifficultySelector{diff: d}
}

// All reports whether the selector matches every difficulty.
func (s DifficultySelector) All() bool { return s.diff == 0 }

// Difficulty returns the selected difficulty and false when the selector is "all".
func (s DifficultySelector) Difficulty() (domain.Difficulty, bool) {
	return s.diff, s.diff != 0
}

// Match reports whether d passes the selector.
func (s DifficultySelector) Match(d domain.Difficulty) bool {
	return s.All() || s.diff == d
}

func (s DifficultySelector) String() string {
	if s.All() {
		return "Todos"
	}
	return s.diff.Label()
}

// Criteria is the set of user-chosen filters.
type Criteria struct {
	Query       string
	Category    CategorySelector
	Difficulty  DifficultySelector
	MaxPrepTime int
}

// DefaultCriteria returns the criteria the browser starts with.
func DefaultCriteria() Criteria {
	return Criteria{
		Category:    AllCategories,
		Difficulty:  AllDifficulties,
		MaxPrepTime: DefaultMaxPrepTime,
	}
}

// Active reports whether any filter differs from the defaults.
func (c Criteria) Active() bool {
	return strings.TrimSpace(c.Query) != "" ||
		!c.Category.All() ||
		!c.Difficulty.All() ||
		c.MaxPrepTime != DefaultMaxPrepTime
}

// Reset returns the default criteria.
func (c Criteria) Reset() Criteria {
	return DefaultCriteria()
}

// Apply returns the recipes that satisfy every criterion and, in the
// favorites view, are marked favorite. Input order is preserved. The
// result is never nil: an empty slice means nothing matched.
func Apply(recipes []domain.Recipe, c Criteria, view domain.View) []domain.Recipe {
	q := strings.ToLower(strings.TrimSpace(c.Query))

	out := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if Match(r, q, c, view) {
			out = append(out, r)
		}
	}
	return out
}

// Match is the per-recipe predicate behind Apply. lowerQuery must already
// be trimmed and lower-cased.
func Match(r domain.Recipe, lowerQuery string, c Criteria, view domain.View) bool {
	return textMatch(r, lowerQuery) &&
		c.Category.Match(r.Category) &&
		c.Difficulty.Match(r.Difficulty) &&
		r.PrepTimeMinutes <= c.MaxPrepTime &&
		viewMatch(r, view)
}

func textMatch(r domain.Recipe, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Title), q) ||
		strings.Contains(strings.ToLower(r.Description), q)
}

func viewMatch(r domain.Recipe, view domain.View) bool {
	switch view {
	case domain.ViewFavorites:
		return r.IsFavorite
	default:
		return true
	}
}
