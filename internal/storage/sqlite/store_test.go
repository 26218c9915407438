package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hammamikhairi/sproutchef/internal/domain"
	"github.com/hammamikhairi/sproutchef/internal/logger"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "progress.db"), logger.New(logger.LevelOff, nil))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open("  ", logger.New(logger.LevelOff, nil)); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestWalletStartsEmpty(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	w, err := store.Wallet(context.Background())
	if err != nil {
		t.Fatalf("wallet: %v", err)
	}
	if w.Coins != 0 || w.XP != 0 {
		t.Fatalf("expected empty wallet, got %+v", w)
	}
}

func TestWalletAccumulates(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()

	for _, ev := range []domain.RewardEvent{
		{RecipeID: "garden-salad", Stars: 3, Coins: 50, XP: 45},
		{RecipeID: "garden-salad", Stars: 2, Coins: 40, XP: 35},
		{RecipeID: "cinnamon-toast", Stars: 1, Coins: 30, XP: 25},
	} {
		if _, err := store.ApplyReward(ctx, ev); err != nil {
			t.Fatalf("apply reward: %v", err)
		}
	}

	w, err := store.Wallet(ctx)
	if err != nil {
		t.Fatalf("wallet: %v", err)
	}
	if w.Coins != 120 || w.XP != 105 {
		t.Fatalf("wallet = %+v, want 120 coins / 105 xp", w)
	}
}

func TestBestStarsRatchet(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()

	stars, err := store.BestStars(ctx, "garden-salad")
	if err != nil {
		t.Fatalf("best stars: %v", err)
	}
	if stars != 0 {
		t.Fatalf("stars = %d, want 0", stars)
	}

	tests := []struct {
		earned int
		want   int
	}{
		{2, 2},
		{3, 3},
		{1, 3},
	}
	for _, tt := range tests {
		best, err := store.ApplyReward(ctx, domain.RewardEvent{RecipeID: "garden-salad", Stars: tt.earned})
		if err != nil {
			t.Fatalf("apply reward: %v", err)
		}
		if best != tt.want {
			t.Fatalf("after earning %d best = %d, want %d", tt.earned, best, tt.want)
		}
	}
	if stars, _ = store.BestStars(ctx, "garden-salad"); stars != 3 {
		t.Fatalf("stars = %d, want 3", stars)
	}

	if _, err := store.ApplyReward(ctx, domain.RewardEvent{RecipeID: " ", Stars: 1}); err == nil {
		t.Fatal("expected error for empty recipe id")
	}
}

func TestApplyRewardRollsBack(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()

	// The wallet update succeeds, then the best-stars write fails.
	if _, err := store.sqlDB.Exec(`DROP TABLE best_stars`); err != nil {
		t.Fatalf("drop table: %v", err)
	}
	_, err := store.ApplyReward(ctx, domain.RewardEvent{RecipeID: "garden-salad", Stars: 3, Coins: 50, XP: 45})
	if err == nil {
		t.Fatal("expected best stars write to fail")
	}

	w, err := store.Wallet(ctx)
	if err != nil {
		t.Fatalf("wallet: %v", err)
	}
	if w.Coins != 0 || w.XP != 0 {
		t.Fatalf("failed reward still paid: %+v", w)
	}
}

func TestApplyRewardCancelledContext(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.ApplyReward(ctx, domain.RewardEvent{RecipeID: "garden-salad", Stars: 3, Coins: 50, XP: 45}); err == nil {
		t.Fatal("expected error for cancelled context")
	}
	w, _ := store.Wallet(context.Background())
	if w.Coins != 0 {
		t.Fatalf("cancelled reward still paid: %+v", w)
	}
}

func TestReopenKeepsProgress(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "progress.db")
	log := logger.New(logger.LevelOff, nil)
	ctx := context.Background()

	first, err := Open(path, log)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := first.ApplyReward(ctx, domain.RewardEvent{RecipeID: "cinnamon-toast", Stars: 1, Coins: 30, XP: 25}); err != nil {
		t.Fatalf("apply reward: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Migrations must not run twice or reset the wallet.
	second, err := Open(path, log)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()

	w, _ := second.Wallet(ctx)
	stars, _ := second.BestStars(ctx, "cinnamon-toast")
	if w.Coins != 30 || stars != 1 {
		t.Fatalf("after reopen wallet=%+v stars=%d", w, stars)
	}
}

func TestExtractUp(t *testing.T) {
	t.Parallel()

	in := "-- +migrate Up\nCREATE TABLE a (x INT);\n-- +migrate Down\nDROP TABLE a;\n"
	if got := extractUp(in); got != "\nCREATE TABLE a (x INT);\n" {
		t.Fatalf("extractUp = %q", got)
	}
	if got := extractUp("SELECT 1;"); got != "SELECT 1;" {
		t.Fatalf("extractUp without markers = %q", got)
	}
}
