package display

import (
	"fmt"
	"strings"

	"github.com/hammamikhairi/cozinha/internal/cooking"
	"github.com/hammamikhairi/cozinha/internal/domain"
	"github.com/hammamikhairi/cozinha/internal/filter"
)

// RecipeList renders the browse list. Numbers are 1-based positions the
// user can type to open a recipe.
func RecipeList(recipes []domain.Recipe, c filter.Criteria, view domain.View) string {
	var b strings.Builder

	title := "Receitas"
	if view == domain.ViewFavorites {
		title = "Favoritos"
	}
	b.WriteString(stepStyle.Render("  "+title) + secondaryStyle.Render(fmt.Sprintf(" (%d)", len(recipes))))
	if c.Active() {
		b.WriteString(secondaryStyle.Render("  filtros: " + CriteriaSummary(c)))
	}
	b.WriteByte('\n')

	if len(recipes) == 0 {
		b.WriteString(secondaryStyle.Render("  Nenhuma receita encontrada. Tente \"limpar filtros\"."))
		b.WriteByte('\n')
		return b.String()
	}

	for i, r := range recipes {
		fav := " "
		if r.IsFavorite {
			fav = "♥"
		}
		b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
			urgentOutputStyle.Render(fav),
			labelStyle.Render(fmt.Sprintf("%2d.", i+1)),
			primaryStyle.Render(r.Title),
			secondaryStyle.Render(RecipeMeta(r)),
		))
	}
	return b.String()
}

// RecipeMeta renders "20 min · Médio · Massas · 650 kcal".
func RecipeMeta(r domain.Recipe) string {
	parts := []string{
		fmt.Sprintf("%d min", r.PrepTimeMinutes),
		r.Difficulty.Label(),
		r.Category.Label(),
	}
	if r.Calories != nil {
		parts = append(parts, fmt.Sprintf("%d kcal", *r.Calories))
	}
	return strings.Join(parts, " · ")
}

// CriteriaSummary describes the non-default filters.
func CriteriaSummary(c filter.Criteria) string {
	var parts []string
	if q := strings.TrimSpace(c.Query); q != "" {
		parts = append(parts, fmt.Sprintf("%q", q))
	}
	if !c.Category.All() {
		parts = append(parts, c.Category.String())
	}
	if !c.Difficulty.All() {
		parts = append(parts, c.Difficulty.String())
	}
	if c.MaxPrepTime != filter.DefaultMaxPrepTime {
		parts = append(parts, fmt.Sprintf("até %d min", c.MaxPrepTime))
	}
	return strings.Join(parts, ", ")
}

// RecipeDetail renders the detail view with numbered ingredients.
func RecipeDetail(r domain.Recipe) string {
	var b strings.Builder

	fav := ""
	if r.IsFavorite {
		fav = " ♥"
	}
	b.WriteString(stepStyle.Render("  "+r.Title) + urgentOutputStyle.Render(fav) + "\n")
	b.WriteString(secondaryStyle.Render("  "+RecipeMeta(r)+" · por "+r.Author) + "\n")
	if r.Description != "" {
		b.WriteString(primaryStyle.Render("  "+r.Description) + "\n")
	}

	b.WriteString("\n" + labelStyle.Render("  Ingredientes") + "\n")
	for i, in := range r.Ingredients {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%2d.", i+1)),
			primaryStyle.Render(in.ShoppingLine())))
	}

	b.WriteString("\n" + labelStyle.Render("  Modo de preparo") + "\n")
	for i, st := range r.Steps {
		line := fmt.Sprintf("  %2d. %s", i+1, st.Description)
		if st.HasTimer() {
			line += secondaryStyle.Render(" (" + cooking.FormatClock(st.TimerSeconds) + ")")
		}
		b.WriteString(primaryStyle.Render(line) + "\n")
	}

	b.WriteString("\n" + secondaryStyle.Render(
		"  cook · fav · shop <n> · sub <n> · nutrition · back") + "\n")
	return b.String()
}

// StepView renders the current cooking step.
func StepView(st cooking.State) string {
	var b strings.Builder
	b.WriteString(stepStyle.Render(fmt.Sprintf("  %s · Passo %d de %d", st.RecipeTitle, st.StepIndex+1, st.TotalSteps)))
	b.WriteString("  " + ProgressBar(st.Progress, 20) + "\n")
	b.WriteString(primaryStyle.Render("  "+st.Step.Description) + "\n")
	if t := TimerLabel(st); t != "" {
		b.WriteString("  " + t + "\n")
	}
	b.WriteString(secondaryStyle.Render("  Dica: "+st.Hint()) + "\n")

	keys := "next · prev · stop"
	if st.HasTimer {
		keys = "timer · reset timer · " + keys
	}
	if st.IsLast {
		keys = strings.Replace(keys, "next", "finish", 1)
	}
	b.WriteString(secondaryStyle.Render("  "+keys) + "\n")
	return b.String()
}

// Suggestions renders AI recipe suggestions.
func Suggestions(items []domain.Suggestion) string {
	if len(items) == 0 {
		return secondaryStyle.Render("  Nenhuma sugestão.") + "\n"
	}
	var b strings.Builder
	for _, s := range items {
		b.WriteString(chatStyle.Render("  "+s.Title) + secondaryStyle.Render(" · "+s.Time) + "\n")
		b.WriteString(primaryStyle.Render("    "+s.Description) + "\n")
	}
	return b.String()
}

// ShoppingList renders the shopping list.
func ShoppingList(items []string) string {
	if len(items) == 0 {
		return secondaryStyle.Render("  Lista de compras vazia.") + "\n"
	}
	var b strings.Builder
	b.WriteString(stepStyle.Render(fmt.Sprintf("  Lista de compras (%d)", len(items))) + "\n")
	for _, it := range items {
		b.WriteString(primaryStyle.Render("  • "+it) + "\n")
	}
	return b.String()
}

// Help lists the commands.
func Help() string {
	lines := []string{
		"Navegar:   list · favorites · <n> · back · search <texto> · cat <categoria>",
		"           diff <dificuldade> · time <min> · reset · fav [n] · profile",
		"Criar:     " + "new <título> | <min> | <categoria> | <dificuldade> | <passos> [| <ingredientes>]",
		"Cozinhar:  cook [n] · next · prev · timer · reset timer · finish · stop · status",
		"Compras:   shop · shop <n|item> · shop clear",
		"IA:        sub <n|ingrediente> · nutrition · suggest <ovo, arroz, ...>",
		"Sair:      quit",
	}
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(secondaryStyle.Render("  "+l) + "\n")
	}
	return b.String()
}
