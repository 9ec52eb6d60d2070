package conversation

// IntentType classifies what the user wants to do.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentHelp
	IntentQuit

	// Browsing
	IntentList
	IntentFavorites
	IntentSearch
	IntentCategory
	IntentDifficulty
	IntentMaxTime
	IntentResetFilters
	IntentSelect
	IntentBack
	IntentToggleFavorite
	IntentNewRecipe
	IntentProfile

	// Cooking mode
	IntentStartCooking
	IntentNext
	IntentPrev
	IntentToggleTimer
	IntentResetTimer
	IntentFinish
	IntentStopCooking
	IntentStatus

	// Shopping list
	IntentShopAdd
	IntentShopList
	IntentShopClear

	// AI
	IntentSubstitute
	IntentNutrition
	IntentSuggest
)

// String returns a human-readable intent type.
func (i IntentType) String() string {
	switch i {
	case IntentHelp:
		return "help"
	case IntentQuit:
		return "quit"
	case IntentList:
		return "list"
	case IntentFavorites:
		return "favorites"
	case IntentSearch:
		return "search"
	case IntentCategory:
		return "category"
	case IntentDifficulty:
		return "difficulty"
	case IntentMaxTime:
		return "max_time"
	case IntentResetFilters:
		return "reset_filters"
	case IntentSelect:
		return "select"
	case IntentBack:
		return "back"
	case IntentToggleFavorite:
		return "toggle_favorite"
	case IntentNewRecipe:
		return "new_recipe"
	case IntentProfile:
		return "profile"
	case IntentStartCooking:
		return "start_cooking"
	case IntentNext:
		return "next"
	case IntentPrev:
		return "prev"
	case IntentToggleTimer:
		return "toggle_timer"
	case IntentResetTimer:
		return "reset_timer"
	case IntentFinish:
		return "finish"
	case IntentStopCooking:
		return "stop_cooking"
	case IntentStatus:
		return "status"
	case IntentShopAdd:
		return "shop_add"
	case IntentShopList:
		return "shop_list"
	case IntentShopClear:
		return "shop_clear"
	case IntentSubstitute:
		return "substitute"
	case IntentNutrition:
		return "nutrition"
	case IntentSuggest:
		return "suggest"
	default:
		return "unknown"
	}
}

// Intent represents a parsed user action.
type Intent struct {
	Type    IntentType
	Payload string // optional argument, e.g. a recipe number or search text
}
