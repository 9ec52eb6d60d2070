// Package domain defines the core types and interfaces for the recipe
// browser and cooking assistant. All other packages depend on domain;
// domain depends on nothing outside the standard library.
package domain

import (
	"strconv"
	"strings"
)

// Recipe represents a complete recipe in the catalog.
type Recipe struct {
	ID              string
	Title           string
	Description     string
	ImageURL        string
	PrepTimeMinutes int
	Difficulty      Difficulty
	Category        Category
	Author          string
	Calories        *int // nil when unknown
	IsFavorite      bool
	Ingredients     []Ingredient
	Steps           []Step
}

// Cookable reports whether the recipe can be entered into cooking mode.
func (r Recipe) Cookable() bool {
	return len(r.Steps) > 0
}

// Clone returns a deep copy so callers can never alias another
// recipe's ingredient or step storage.
func (r Recipe) Clone() Recipe {
	out := r
	if r.Calories != nil {
		c := *r.Calories
		out.Calories = &c
	}
	out.Ingredients = append([]Ingredient(nil), r.Ingredients...)
	out.Steps = append([]Step(nil), r.Steps...)
	return out
}

// Ingredient is a single ingredient line of a recipe.
type Ingredient struct {
	ID     string
	Name   string
	Amount float64
	Unit   string
	IsUsed bool // reserved
}

// ShoppingLine renders the ingredient the way it is added to the
// shopping list: "<amount> <unit> <name>".
func (i Ingredient) ShoppingLine() string {
	parts := make([]string, 0, 3)
	if amt := FormatAmount(i.Amount); amt != "" {
		parts = append(parts, amt)
	}
	if i.Unit != "" {
		parts = append(parts, i.Unit)
	}
	parts = append(parts, i.Name)
	return strings.Join(parts, " ")
}

// FormatAmount prints a quantity without trailing zeros (0.5, 2, 1.25).
// Zero renders as an empty string.
func FormatAmount(a float64) string {
	if a == 0 {
		return ""
	}
	return strconv.FormatFloat(a, 'f', -1, 64)
}

// Step is a single cooking step. Order within Recipe.Steps is the
// cooking-mode progression order.
type Step struct {
	ID           string
	Description  string
	TimerSeconds int // 0 means no timer
}

// HasTimer reports whether the step carries a countdown timer.
func (s Step) HasTimer() bool {
	return s.TimerSeconds > 0
}

// Suggestion is a recipe idea returned by the AI gateway.
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
}
