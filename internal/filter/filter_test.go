package filter

import (
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/cozinha/internal/domain"
)

func sample() []domain.Recipe {
	return []domain.Recipe{
		{ID: "1", Title: "Pasta Carbonara", Description: "Cremosa", PrepTimeMinutes: 20,
			Category: domain.CategoryPasta, Difficulty: domain.DifficultyMedium, IsFavorite: true},
		{ID: "2", Title: "Salmon Bowl", Description: "Fresco e leve", PrepTimeMinutes: 15,
			Category: domain.CategoryFitness, Difficulty: domain.DifficultyEasy},
		{ID: "3", Title: "Chocolate Mousse", Description: "Sobremesa aerada", PrepTimeMinutes: 30,
			Category: domain.CategoryDessert, Difficulty: domain.DifficultyHard},
	}
}

func ids(rs []domain.Recipe) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Criteria)
		view domain.View
		want []string
	}{
		{"defaults", func(*Criteria) {}, domain.ViewHome, []string{"1", "2", "3"}},
		{"max prep time 18", func(c *Criteria) { c.MaxPrepTime = 18 }, domain.ViewHome, []string{"2"}},
		{"max prep time inclusive", func(c *Criteria) { c.MaxPrepTime = 20 }, domain.ViewHome, []string{"1", "2"}},
		{"query in title", func(c *Criteria) { c.Query = "MOUSSE" }, domain.ViewHome, []string{"3"}},
		{"query in description", func(c *Criteria) { c.Query = "leve" }, domain.ViewHome, []string{"2"}},
		{"whitespace query", func(c *Criteria) { c.Query = "   " }, domain.ViewHome, []string{"1", "2", "3"}},
		{"category", func(c *Criteria) { c.Category = OnlyCategory(domain.CategoryDessert) }, domain.ViewHome, []string{"3"}},
		{"difficulty", func(c *Criteria) { c.Difficulty = OnlyDifficulty(domain.DifficultyEasy) }, domain.ViewHome, []string{"2"}},
		{"favorites view", func(*Criteria) {}, domain.ViewFavorites, []string{"1"}},
		{"favorites and category", func(c *Criteria) { c.Category = OnlyCategory(domain.CategoryFitness) }, domain.ViewFavorites, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultCriteria()
			tt.edit(&c)
			assert.Equal(t, tt.want, ids(Apply(sample(), c, tt.view)))
		})
	}
}

func TestApplyEmptyIsNotNil(t *testing.T) {
	c := DefaultCriteria()
	c.Query = "nothing matches this"

	got := Apply(sample(), c, domain.ViewHome)
	require.NotNil(t, got)
	assert.Empty(t, got)

	got = Apply(nil, DefaultCriteria(), domain.ViewHome)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	in := sample()
	before := sample()
	c := DefaultCriteria()
	c.MaxPrepTime = 10
	_ = Apply(in, c, domain.ViewFavorites)
	assert.Equal(t, before, in)
}

func TestCriteriaActiveAndReset(t *testing.T) {
	c := DefaultCriteria()
	assert.False(t, c.Active())

	c.Difficulty = OnlyDifficulty(domain.DifficultyHard)
	assert.True(t, c.Active())

	c = c.Reset()
	assert.Equal(t, DefaultCriteria(), c)
	assert.Equal(t, "Todos", c.Category.String())

	c.MaxPrepTime = 60
	assert.True(t, c.Active())
}

func randomCatalog(f *gofakeit.Faker, n int) []domain.Recipe {
	cats := domain.Categories()
	diffs := domain.Difficulties()

	out := make([]domain.Recipe, n)
	for i := range out {
		out[i] = domain.Recipe{
			ID:              f.UUID(),
			Title:           f.Sentence(3),
			Description:     f.Sentence(8),
			PrepTimeMinutes: f.Number(1, 180),
			Category:        cats[f.Number(0, len(cats)-1)],
			Difficulty:      diffs[f.Number(0, len(diffs)-1)],
			IsFavorite:      f.Bool(),
		}
	}
	return out
}

func randomCriteria(f *gofakeit.Faker) Criteria {
	c := DefaultCriteria()
	if f.Bool() {
		c.Query = f.Word()
	}
	if f.Bool() {
		cats := domain.Categories()
		c.Category = OnlyCategory(cats[f.Number(0, len(cats)-1)])
	}
	if f.Bool() {
		diffs := domain.Difficulties()
		c.Difficulty = OnlyDifficulty(diffs[f.Number(0, len(diffs)-1)])
	}
	c.MaxPrepTime = f.Number(0, 200)
	return c
}

// wantIncluded restates the filter rules directly, without going
// through Match.
func wantIncluded(r domain.Recipe, c Criteria, view domain.View) bool {
	q := strings.ToLower(strings.TrimSpace(c.Query))
	if q != "" &&
		!strings.Contains(strings.ToLower(r.Title), q) &&
		!strings.Contains(strings.ToLower(r.Description), q) {
		return false
	}
	if cat, ok := c.Category.Category(); ok && r.Category != cat {
		return false
	}
	if diff, ok := c.Difficulty.Difficulty(); ok && r.Difficulty != diff {
		return false
	}
	if r.PrepTimeMinutes > c.MaxPrepTime {
		return false
	}
	return view != domain.ViewFavorites || r.IsFavorite
}

// Every result satisfies the predicate, every rejected recipe fails it,
// and the result is an order-preserving subsequence of the input.
func TestApplyProperties(t *testing.T) {
	f := gofakeit.New(2024)

	for round := 0; round < 200; round++ {
		recipes := randomCatalog(f, f.Number(0, 25))
		c := randomCriteria(f)
		view := domain.ViewHome
		if f.Bool() {
			view = domain.ViewFavorites
		}

		got := Apply(recipes, c, view)
		require.NotNil(t, got)

		q := strings.ToLower(strings.TrimSpace(c.Query))
		j := 0
		for _, r := range recipes {
			want := wantIncluded(r, c, view)
			require.Equal(t, want, Match(r, q, c, view), "Match disagrees on %s", r.ID)
			if j < len(got) && got[j].ID == r.ID {
				require.True(t, want, "included recipe %s fails the rules", r.ID)
				j++
				continue
			}
			require.False(t, want, "matching recipe %s missing from result", r.ID)
		}
		require.Equal(t, len(got), j, "result is not a subsequence of the input")

		for _, r := range got {
			assert.LessOrEqual(t, r.PrepTimeMinutes, c.MaxPrepTime)
			if view == domain.ViewFavorites {
				assert.True(t, r.IsFavorite)
			}
			if cat, ok := c.Category.Category(); ok {
				assert.Equal(t, cat, r.Category)
			}
			if diff, ok := c.Difficulty.Difficulty(); ok {
				assert.Equal(t, diff, r.Difficulty)
			}
			if q != "" {
				assert.True(t,
					strings.Contains(strings.ToLower(r.Title), q) || strings.Contains(strings.ToLower(r.Description), q),
					"%q not in %q", q, r.Title)
			}
		}

		// Filtering the result again changes nothing.
		assert.Equal(t, got, Apply(got, c, view))
	}
}
