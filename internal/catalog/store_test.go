package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/cozinha/internal/domain"
	"github.com/hammamikhairi/cozinha/internal/logger"
)

func newTestStore(opts ...Option) *Store {
	return NewStore(logger.New(logger.LevelOff, nil), opts...)
}

func validDraft() domain.Draft {
	return domain.Draft{
		Title:           "  Omelete simples ",
		Description:     "Ovos batidos na frigideira.",
		PrepTimeMinutes: 10,
		Difficulty:      domain.DifficultyEasy,
		Category:        domain.CategorySavory,
		Ingredients: []domain.DraftIngredient{
			{Name: "Ovo", Amount: 2, Unit: "unid"},
		},
		Steps: []domain.DraftStep{
			{Description: "Bata os ovos."},
			{Description: "Frite por 3 minutos.", TimerSeconds: 180},
		},
	}
}

func TestSeedCatalog(t *testing.T) {
	s := newTestStore()
	all := s.All()
	require.Len(t, all, 3)

	assert.Equal(t, []string{"1", "2", "3"}, []string{all[0].ID, all[1].ID, all[2].ID})
	assert.Equal(t, []int{20, 15, 30}, []int{all[0].PrepTimeMinutes, all[1].PrepTimeMinutes, all[2].PrepTimeMinutes})
	assert.True(t, all[0].IsFavorite)
	assert.Equal(t, 1, s.Favorites())
	for _, r := range all {
		assert.True(t, r.Cookable(), r.Title)
		require.NotNil(t, r.Calories)
	}
}

func TestEmptyStore(t *testing.T) {
	s := newTestStore(WithSeed(false))
	assert.Empty(t, s.All())
	assert.Equal(t, 0, s.Len())
}

func TestGet(t *testing.T) {
	s := newTestStore()

	tests := []struct {
		id      string
		wantErr error
	}{
		{"1", nil},
		{"3", nil},
		{"nonexistent", domain.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			r, err := s.Get(tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, r.ID)
		})
	}
}

func TestGetReturnsCopy(t *testing.T) {
	s := newTestStore()
	r, err := s.Get("1")
	require.NoError(t, err)

	r.Steps[0].Description = "changed"
	r.Title = "changed"

	again, err := s.Get("1")
	require.NoError(t, err)
	assert.NotEqual(t, "changed", again.Title)
	assert.NotEqual(t, "changed", again.Steps[0].Description)
}

func TestToggleFavoriteTwiceRestores(t *testing.T) {
	s := newTestStore()
	before := s.All()

	after := s.ToggleFavorite("2")
	assert.True(t, after[1].IsFavorite)
	assert.False(t, before[1].IsFavorite, "earlier snapshot must not change")

	restored := s.ToggleFavorite("2")
	assert.Equal(t, before, restored)
}

func TestToggleFavoriteUnknownID(t *testing.T) {
	s := newTestStore()
	before := s.All()
	after := s.ToggleFavorite("nope")
	assert.Equal(t, before, after)
}

func TestAllSnapshotIsIsolated(t *testing.T) {
	s := newTestStore()
	snap := s.All()
	snap[0].Title = "mutated"

	assert.Equal(t, "Pasta à Carbonara Autêntica", s.All()[0].Title)
}

func TestAddPrepends(t *testing.T) {
	ids := []string{"abc", "img"}
	s := newTestStore(WithIDGenerator(func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}))

	r, err := s.Add(validDraft())
	require.NoError(t, err)

	assert.Equal(t, "abc", r.ID)
	assert.Equal(t, "Omelete simples", r.Title)
	assert.Equal(t, PlaceholderImageBase+"img", r.ImageURL)
	assert.Equal(t, DefaultAuthor, r.Author)
	assert.False(t, r.IsFavorite)
	require.Len(t, r.Steps, 2)
	assert.Equal(t, "abc-s2", r.Steps[1].ID)
	assert.Equal(t, 180, r.Steps[1].TimerSeconds)
	assert.Equal(t, "abc-i1", r.Ingredients[0].ID)

	all := s.All()
	require.Len(t, all, 4)
	assert.Equal(t, "abc", all[0].ID)
	assert.Equal(t, "1", all[1].ID)
	assert.Equal(t, 1, s.AuthoredBy("você"))
}

func TestAddDefaultIDIsUUID(t *testing.T) {
	s := newTestStore(WithSeed(false))
	d := validDraft()
	d.ImageURL = "https://example.com/omelete.jpg"
	d.Author = "Ana"

	r, err := s.Add(d)
	require.NoError(t, err)
	assert.Len(t, r.ID, 36)
	assert.Equal(t, "https://example.com/omelete.jpg", r.ImageURL)
	assert.Equal(t, "Ana", r.Author)
}

func TestAddRejectsInvalidDraft(t *testing.T) {
	zero := 0

	tests := []struct {
		name  string
		edit  func(*domain.Draft)
		field string
	}{
		{"blank title", func(d *domain.Draft) { d.Title = "   " }, "Title"},
		{"zero prep time", func(d *domain.Draft) { d.PrepTimeMinutes = 0 }, "PrepTimeMinutes"},
		{"no category", func(d *domain.Draft) { d.Category = 0 }, "Category"},
		{"bad difficulty", func(d *domain.Draft) { d.Difficulty = 42 }, "Difficulty"},
		{"no steps", func(d *domain.Draft) { d.Steps = nil }, "Steps"},
		{"empty step", func(d *domain.Draft) { d.Steps[0].Description = "" }, "Steps[0].Description"},
		{"negative timer", func(d *domain.Draft) { d.Steps[1].TimerSeconds = -5 }, "TimerSeconds"},
		{"zero calories", func(d *domain.Draft) { d.Calories = &zero }, "Calories"},
		{"bad image", func(d *domain.Draft) { d.ImageURL = "not a url" }, "ImageURL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore()
			d := validDraft()
			tt.edit(&d)

			_, err := s.Add(d)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidDraft))
			assert.True(t, strings.Contains(err.Error(), tt.field), err.Error())
			assert.Equal(t, 3, s.Len())
		})
	}
}

func TestAuthoredBy(t *testing.T) {
	s := newTestStore()
	assert.Equal(t, 1, s.AuthoredBy("chef giovanni"))
	assert.Equal(t, 0, s.AuthoredBy(DefaultAuthor))
}
