package display

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/hammamikhairi/cozinha/internal/cooking"
	"github.com/hammamikhairi/cozinha/internal/domain"
	"github.com/hammamikhairi/cozinha/internal/filter"
)

func plain(s string) string { return ansi.Strip(s) }

func TestProgressBar(t *testing.T) {
	tests := []struct {
		frac float64
		want string
	}{
		{0, "░░░░░░░░░░"},
		{0.5, "█████░░░░░"},
		{1, "██████████"},
		{1.7, "██████████"},
		{-1, "░░░░░░░░░░"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, plain(ProgressBar(tt.frac, 10)))
	}
	assert.Equal(t, "", ProgressBar(0.5, 0))
}

func TestTimerLabel(t *testing.T) {
	assert.Equal(t, "", TimerLabel(cooking.State{}))
	assert.Contains(t, plain(TimerLabel(cooking.State{HasTimer: true, Remaining: 300})), "5:00")
	assert.Contains(t, plain(TimerLabel(cooking.State{HasTimer: true, Remaining: 65, Running: true})), "1:05")
	assert.Contains(t, plain(TimerLabel(cooking.State{HasTimer: true, TimeUp: true})), "Tempo esgotado")
}

func TestRecipeMeta(t *testing.T) {
	kcal := 650
	r := domain.Recipe{PrepTimeMinutes: 20, Difficulty: domain.DifficultyMedium, Category: domain.CategoryPasta, Calories: &kcal}
	assert.Equal(t, "20 min · Médio · Massas · 650 kcal", RecipeMeta(r))

	r.Calories = nil
	assert.Equal(t, "20 min · Médio · Massas", RecipeMeta(r))
}

func TestRecipeList(t *testing.T) {
	recipes := []domain.Recipe{
		{ID: "1", Title: "Carbonara", PrepTimeMinutes: 20, IsFavorite: true, Difficulty: domain.DifficultyMedium, Category: domain.CategoryPasta},
		{ID: "2", Title: "Bowl", PrepTimeMinutes: 15, Difficulty: domain.DifficultyEasy, Category: domain.CategoryFitness},
	}
	out := plain(RecipeList(recipes, filter.DefaultCriteria(), domain.ViewHome))
	assert.Contains(t, out, "Receitas (2)")
	assert.Contains(t, out, " 1. Carbonara")
	assert.Contains(t, out, " 2. Bowl")
	assert.NotContains(t, out, "filtros")

	c := filter.DefaultCriteria()
	c.MaxPrepTime = 18
	c.Category = filter.OnlyCategory(domain.CategoryFitness)
	out = plain(RecipeList(nil, c, domain.ViewFavorites))
	assert.Contains(t, out, "Favoritos (0)")
	assert.Contains(t, out, "filtros: Fitness, até 18 min")
	assert.Contains(t, out, "Nenhuma receita")
}

func TestStepView(t *testing.T) {
	st := cooking.State{
		RecipeTitle: "Carbonara",
		StepIndex:   4,
		TotalSteps:  5,
		Step:        domain.Step{Description: "Misture tudo."},
		Progress:    1,
		IsLast:      true,
	}
	out := plain(StepView(st))
	assert.Contains(t, out, "Passo 5 de 5")
	assert.Contains(t, out, "Misture tudo.")
	assert.Contains(t, out, "finish")
	assert.NotContains(t, out, "timer")
}

func TestShoppingListAndSuggestions(t *testing.T) {
	assert.Contains(t, plain(ShoppingList(nil)), "vazia")
	out := plain(ShoppingList([]string{"2 unid tomate", "1 kg arroz"}))
	assert.True(t, strings.Index(out, "tomate") < strings.Index(out, "arroz"))

	assert.Contains(t, plain(Suggestions(nil)), "Nenhuma")
	out = plain(Suggestions([]domain.Suggestion{{Title: "Omelete", Description: "Rápida", Time: "10 min"}}))
	assert.Contains(t, out, "Omelete · 10 min")
}

func TestRenderBanner(t *testing.T) {
	out := plain(renderBanner(120))
	assert.Contains(t, out, Tagline)
	for _, l := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if l == "" {
			continue
		}
		assert.True(t, strings.HasPrefix(l, " "), "line %q is not centred", l)
	}
	// Narrow terminals get no padding rather than a negative one.
	assert.NotPanics(t, func() { renderBanner(10) })
}
