package domain

// IntentType classifies what the player wants to do.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentListRecipes
	IntentSelectRecipe
	IntentStartCooking
	IntentScore     // payload is the score text, e.g. "85"
	IntentAutoScore // let the kitchen pick a score for the step
	IntentRepeat
	IntentStatus
	IntentWallet
	IntentStars
	IntentAbandon
	IntentQuit
	IntentHelp
)

// String returns a human-readable intent type.
func (i IntentType) String() string {
	switch i {
	case IntentListRecipes:
		return "list_recipes"
	case IntentSelectRecipe:
		return "select_recipe"
	case IntentStartCooking:
		return "start_cooking"
	case IntentScore:
		return "score"
	case IntentAutoScore:
		return "auto_score"
	case IntentRepeat:
		return "repeat"
	case IntentStatus:
		return "status"
	case IntentWallet:
		return "wallet"
	case IntentStars:
		return "stars"
	case IntentAbandon:
		return "abandon"
	case IntentQuit:
		return "quit"
	case IntentHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Intent represents a parsed player action.
type Intent struct {
	Type    IntentType
	Payload string // optional context, e.g. recipe number for select
}
