package domain

// Draft carries every Recipe field except ID and IsFavorite. It is what
// the authoring form produces; the catalog assigns the rest.
type Draft struct {
	Title           string            `validate:"required,max=120"`
	Description     string            `validate:"max=1000"`
	ImageURL        string            `validate:"omitempty,url"`
	PrepTimeMinutes int               `validate:"min=1,max=1440"`
	Difficulty      Difficulty        `validate:"difficulty"`
	Category        Category          `validate:"category"`
	Author          string            `validate:"max=80"`
	Calories        *int              `validate:"omitempty,min=1"`
	Ingredients     []DraftIngredient `validate:"dive"`
	Steps           []DraftStep       `validate:"min=1,dive"`
}

// DraftIngredient is an ingredient line on the authoring form.
type DraftIngredient struct {
	Name   string  `validate:"required"`
	Amount float64 `validate:"gte=0"`
	Unit   string
}

// DraftStep is a step on the authoring form.
type DraftStep struct {
	Description  string `validate:"required"`
	TimerSeconds int    `validate:"gte=0"`
}
