package domain

// Phase tracks the lifecycle of a cooking session.
type Phase int

const (
	PhaseLoading Phase = iota
	PhasePlaying
	PhaseTransitioning
	PhaseComplete
	// PhaseAbandoned marks a session the player walked away from.
	PhaseAbandoned
)

// String returns a human-readable phase.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhasePlaying:
		return "playing"
	case PhaseTransitioning:
		return "transitioning"
	case PhaseComplete:
		return "complete"
	case PhaseAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions can happen.
func (p Phase) Terminal() bool {
	return p == PhaseComplete || p == PhaseAbandoned
}

// SessionState is the mutable state of one cooking attempt.
//
// While Playing or Transitioning, len(Scores) == CurrentIndex.
// At Complete, len(Scores) == len(Steps).
type SessionState struct {
	Steps        []CookingStep
	CurrentIndex int
	Scores       []int
	Phase        Phase
}

// Reward is what a finished session pays out.
type Reward struct {
	Stars int
	Coins int
	XP    int
}

// RewardEvent is handed to the persistence collaborator once per
// completed session.
type RewardEvent struct {
	RecipeID string
	Stars    int
	Coins    int
	XP       int
}

// Wallet is the player's running currency and experience totals.
type Wallet struct {
	Coins int
	XP    int
}
