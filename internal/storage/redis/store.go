// Package redis provides a Redis-backed player progress store.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	goredis "github.com/go-redis/redis/v8"

	"github.com/hammamikhairi/sproutchef/internal/domain"
	"github.com/hammamikhairi/sproutchef/internal/logger"
)

// Compile-time interface check.
var _ domain.ProgressStore = (*Store)(nil)

const (
	defaultPrefix = "sprout"
	maxTxRetries  = 3
)

// Option configures the store.
type Option func(*Store)

// WithPrefix namespaces every key, so several players or test runs can
// share one Redis.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// Store persists player progress in two hashes: the wallet counters and
// the best stars per recipe.
type Store struct {
	client *goredis.Client
	prefix string
	log    *logger.Logger
}

// Open connects to Redis and checks the connection.
func Open(ctx context.Context, addr string, db int, log *logger.Logger, opts ...Option) (*Store, error) {
	if addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}
	client := goredis.NewClient(&goredis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	s := &Store{client: client, prefix: defaultPrefix, log: log}
	for _, opt := range opts {
		opt(s)
	}
	log.Info("progress store connected to redis %s/%d (prefix %s)", addr, db, s.prefix)
	return s, nil
}

// Close releases the client.
func (s *Store) Close() error {
	return s.client.Close()
}

// ApplyReward pays a reward and ratchets the recipe's best stars in one
// MULTI/EXEC block. The best-stars hash is watched; a concurrent change
// retries the whole block.
func (s *Store) ApplyReward(ctx context.Context, event domain.RewardEvent) (int, error) {
	if event.RecipeID == "" {
		return 0, fmt.Errorf("recipe id is required")
	}

	var best int
	apply := func(tx *goredis.Tx) error {
		prev, err := tx.HGet(ctx, s.bestKey(), event.RecipeID).Int()
		if err != nil && !errors.Is(err, goredis.Nil) {
			return err
		}
		best = max(prev, event.Stars)

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.HIncrBy(ctx, s.walletKey(), "coins", int64(event.Coins))
			pipe.HIncrBy(ctx, s.walletKey(), "xp", int64(event.XP))
			if best != prev {
				pipe.HSet(ctx, s.bestKey(), event.RecipeID, best)
			}
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := s.client.Watch(ctx, apply, s.bestKey())
		if errors.Is(err, goredis.TxFailedErr) {
			s.log.Debug("apply reward for %s: best stars changed, retrying", event.RecipeID)
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("failed to apply reward: %w", err)
		}
		s.log.Debug("applied reward for %s: +%d coins, +%d xp, best %d", event.RecipeID, event.Coins, event.XP, best)
		return best, nil
	}
	return 0, fmt.Errorf("failed to apply reward after %d attempts: %w", maxTxRetries, goredis.TxFailedErr)
}

// BestStars returns the stored best rating, 0 if never completed.
func (s *Store) BestStars(ctx context.Context, recipeID string) (int, error) {
	n, err := s.client.HGet(ctx, s.bestKey(), recipeID).Int()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get best stars: %w", err)
	}
	return n, nil
}

// Wallet returns the current totals.
func (s *Store) Wallet(ctx context.Context) (domain.Wallet, error) {
	vals, err := s.client.HGetAll(ctx, s.walletKey()).Result()
	if err != nil {
		return domain.Wallet{}, fmt.Errorf("failed to get wallet: %w", err)
	}

	var w domain.Wallet
	if w.Coins, err = atoiOrZero(vals["coins"]); err != nil {
		return domain.Wallet{}, fmt.Errorf("bad coins value: %w", err)
	}
	if w.XP, err = atoiOrZero(vals["xp"]); err != nil {
		return domain.Wallet{}, fmt.Errorf("bad xp value: %w", err)
	}
	return w, nil
}

// Reset deletes every key the store owns.
func (s *Store) Reset(ctx context.Context) error {
	return s.client.Del(ctx, s.walletKey(), s.bestKey()).Err()
}

func (s *Store) walletKey() string {
	return fmt.Sprintf("%s:wallet", s.prefix)
}

func (s *Store) bestKey() string {
	return fmt.Sprintf("%s:best_stars", s.prefix)
}

func atoiOrZero(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}
