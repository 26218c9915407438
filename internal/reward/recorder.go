package reward

import (
	"context"
	"fmt"

	"github.com/hammamikhairi/sproutchef/internal/domain"
	"github.com/hammamikhairi/sproutchef/internal/logger"
)

// Compile-time interface check.
var _ domain.RewardSink = (*Recorder)(nil)

// Recorder is the persistence collaborator: it pays a completed session's
// reward into a ProgressStore, which ratchets the recipe's best rating.
type Recorder struct {
	store domain.ProgressStore
	log   *logger.Logger
}

// NewRecorder creates a recorder writing to store.
func NewRecorder(store domain.ProgressStore, log *logger.Logger) *Recorder {
	return &Recorder{store: store, log: log}
}

// Record applies one reward event. The store writes it atomically, so a
// failure leaves the player's progress untouched.
func (r *Recorder) Record(ctx context.Context, event domain.RewardEvent) error {
	best, err := r.store.ApplyReward(ctx, event)
	if err != nil {
		return fmt.Errorf("applying reward for %s: %w", event.RecipeID, err)
	}
	if Ratchet(best, event.Stars) != best {
		r.log.Warn("store kept %d best stars for %s below the %d just earned", best, event.RecipeID, event.Stars)
	}

	r.log.Info("recorded %s: %d stars (best %d), +%d coins, +%d xp",
		event.RecipeID, event.Stars, best, event.Coins, event.XP)
	return nil
}
