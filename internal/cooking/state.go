package cooking

import (
	"fmt"

	"github.com/hammamikhairi/cozinha/internal/domain"
)

const (
	hintLongStep  = "Certifique-se de seguir as medidas exatas para um resultado perfeito."
	hintShortStep = "Mantenha o foco nesta etapa, ela é crucial para a textura final."

	// Step descriptions longer than this get the long-step hint.
	hintThreshold = 50
)

// State is a read-only view of a session at one instant.
type State struct {
	SessionID   string
	RecipeID    string
	RecipeTitle string

	StepIndex  int
	TotalSteps int
	Step       domain.Step

	Remaining int // seconds; meaningless unless HasTimer
	HasTimer  bool
	Running   bool
	TimeUp    bool

	Progress float64
	IsLast   bool
	Closed   bool
}

// Clock renders the remaining time as M:SS.
func (st State) Clock() string {
	return FormatClock(st.Remaining)
}

// Hint returns the tip shown under the current step.
func (st State) Hint() string {
	if len([]rune(st.Step.Description)) > hintThreshold {
		return hintLongStep
	}
	return hintShortStep
}

// FormatClock renders seconds as M:SS. Minutes are not wrapped into hours.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
