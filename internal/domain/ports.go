package domain

import "context"

// Notifier delivers messages to the user. Implementations can write to
// the terminal, play a sound, or both.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}

// Assistant is the AI collaborator as seen by the application layer.
// Failures surface as the neutral value; the error return on the text
// operations exists only so callers can skip opening an empty panel.
type Assistant interface {
	Substitutions(ctx context.Context, ingredient string) (string, error)
	NutritionSummary(ctx context.Context, title, ingredientsSummary string) (string, error)
	SuggestFromIngredients(ctx context.Context, ingredients []string) []Suggestion
}
