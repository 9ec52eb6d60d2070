package domain

import (
	"fmt"
	"strings"
)

// Category classifies a recipe. The set is closed: every switch over
// Category must list all values.
type Category int

const (
	CategorySweet Category = iota + 1
	CategorySavory
	CategoryFitness
	CategoryVegetarian
	CategoryPasta
	CategoryDessert
)

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{
		CategorySweet,
		CategorySavory,
		CategoryFitness,
		CategoryVegetarian,
		CategoryPasta,
		CategoryDessert,
	}
}

// String returns the identifier form used in config and commands.
func (c Category) String() string {
	switch c {
	case CategorySweet:
		return "sweet"
	case CategorySavory:
		return "savory"
	case CategoryFitness:
		return "fitness"
	case CategoryVegetarian:
		return "vegetarian"
	case CategoryPasta:
		return "pasta"
	case CategoryDessert:
		return "dessert"
	default:
		return "unknown"
	}
}

// Label returns the display label.
func (c Category) Label() string {
	switch c {
	case CategorySweet:
		return "Doce"
	case CategorySavory:
		return "Salgado"
	case CategoryFitness:
		return "Fitness"
	case CategoryVegetarian:
		return "Vegetariano"
	case CategoryPasta:
		return "Massas"
	case CategoryDessert:
		return "Sobremesa"
	default:
		return "?"
	}
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	return c >= CategorySweet && c <= CategoryDessert
}

// ParseCategory accepts either the identifier or the label,
// case-insensitively.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(s, c.String()) || strings.EqualFold(s, c.Label()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// Difficulty grades how demanding a recipe is. Closed set.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota + 1
	DifficultyMedium
	DifficultyHard
)

// Difficulties returns every difficulty in declaration order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// String returns the identifier form.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// Label returns the display label.
func (d Difficulty) Label() string {
	switch d {
	case DifficultyEasy:
		return "Fácil"
	case DifficultyMedium:
		return "Médio"
	case DifficultyHard:
		return "Difícil"
	default:
		return "?"
	}
}

// Valid reports whether d is one of the declared difficulties.
func (d Difficulty) Valid() bool {
	return d >= DifficultyEasy && d <= DifficultyHard
}

// ParseDifficulty accepts either the identifier or the label.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.TrimSpace(s)
	for _, d := range Difficulties() {
		if strings.EqualFold(s, d.String()) || strings.EqualFold(s, d.Label()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// View is the active browsing tab. It gates the favorites-only filter.
type View int

const (
	ViewHome View = iota
	ViewFavorites
)

// String returns a human-readable view name.
func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewFavorites:
		return "favorites"
	default:
		return "unknown"
	}
}
