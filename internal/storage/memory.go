// Package storage provides player progress implementations.
package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/hammamikhairi/sproutchef/internal/domain"
	"github.com/hammamikhairi/sproutchef/internal/logger"
)

// Compile-time interface check.
var _ domain.ProgressStore = (*MemoryStore)(nil)

// MemoryStore keeps player progress in memory. Safe for concurrent access.
type MemoryStore struct {
	mu     sync.RWMutex
	wallet domain.Wallet
	best   map[string]int
	log    *logger.Logger
}

// NewMemoryStore creates an empty in-memory progress store.
func NewMemoryStore(log *logger.Logger) *MemoryStore {
	return &MemoryStore{
		best: make(map[string]int),
		log:  log,
	}
}

// ApplyReward pays a reward and ratchets the recipe's best stars under a
// single lock.
func (s *MemoryStore) ApplyReward(ctx context.Context, event domain.RewardEvent) (int, error) {
	if event.RecipeID == "" {
		return 0, fmt.Errorf("recipe id is required")
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.wallet.Coins += event.Coins
	s.wallet.XP += event.XP
	best := max(s.best[event.RecipeID], event.Stars)
	s.best[event.RecipeID] = best
	s.log.Debug("wallet %+d coins %+d xp -> %+v, best stars for %s = %d",
		event.Coins, event.XP, s.wallet, event.RecipeID, best)
	return best, nil
}

// BestStars returns the stored best rating, 0 if never completed.
func (s *MemoryStore) BestStars(ctx context.Context, recipeID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.best[recipeID], nil
}

// Wallet returns the current totals.
func (s *MemoryStore) Wallet(ctx context.Context) (domain.Wallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wallet, nil
}
