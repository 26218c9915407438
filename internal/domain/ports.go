package domain

import "context"

// RecipeSource provides recipes. Implementations can be in-memory
// (built-in), loaded from a catalog file, or served remotely.
type RecipeSource interface {
	List(ctx context.Context) ([]RecipeSummary, error)
	Get(ctx context.Context, id string) (*Recipe, error)
	Search(ctx context.Context, query string) ([]RecipeSummary, error)
}

// ProgressStore is the narrow view of the player's save the kitchen is
// allowed to touch.
type ProgressStore interface {
	// ApplyReward pays the event's coins and xp and raises the recipe's
	// best stars to event.Stars if that is higher. Either every change is
	// applied or none is. It returns the best rating after the write.
	ApplyReward(ctx context.Context, event RewardEvent) (int, error)
	BestStars(ctx context.Context, recipeID string) (int, error)
	Wallet(ctx context.Context) (Wallet, error)
}

// RewardSink receives the reward of a completed session. It is called
// exactly once per completed session and never for an abandoned one.
type RewardSink interface {
	Record(ctx context.Context, event RewardEvent) error
}

// Minigame plays one step and reports a score in [0,100]. Implementations
// live in the presentation layer; the kitchen only sees the score.
type Minigame interface {
	Play(ctx context.Context, index int, step CookingStep) (int, error)
}

// Presenter is told what the player should see. Implementations can
// render to a terminal, a game scene, or nothing at all.
type Presenter interface {
	StepStarted(ctx context.Context, index, total int, step CookingStep)
	Encourage(ctx context.Context, message string)
	Completed(ctx context.Context, recipeID string, reward Reward)
}

// IntentParser converts raw player input into structured intents.
type IntentParser interface {
	Parse(ctx context.Context, input string) (*Intent, error)
}
