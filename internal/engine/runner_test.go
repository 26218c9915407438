package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hammamikhairi/sproutchef/internal/domain"
)

// scriptedGame returns scores from a fixed list.
type scriptedGame struct {
	mu     sync.Mutex
	scores []int
	played []int
	// onPlay runs before the score is returned.
	onPlay func(index int)
}

func (g *scriptedGame) Play(_ context.Context, index int, _ domain.CookingStep) (int, error) {
	g.mu.Lock()
	g.played = append(g.played, index)
	score := g.scores[index]
	hook := g.onPlay
	g.mu.Unlock()

	if hook != nil {
		hook(index)
	}
	return score, nil
}

func TestRunToCompletion(t *testing.T) {
	s, sink := newTestSession(t, fourStepSalad(), WithDwell(5*time.Millisecond))
	ctx := context.Background()
	if err := s.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}

	game := &scriptedGame{scores: []int{100, 80, 60, 40}}
	r, err := Run(ctx, s, game)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if r != (domain.Reward{Stars: 2, Coins: 40, XP: 35}) {
		t.Fatalf("unexpected reward %+v", r)
	}
	if len(game.played) != 4 {
		t.Fatalf("expected 4 steps played, got %v", game.played)
	}
	for i, idx := range game.played {
		if idx != i {
			t.Fatalf("steps played out of order: %v", game.played)
		}
	}
	if sink.count() != 1 {
		t.Fatalf("expected one reward event, got %d", sink.count())
	}
}

func TestRunAbandoned(t *testing.T) {
	s, sink := newTestSession(t, fourStepSalad(), WithDwell(time.Hour))
	ctx := context.Background()
	s.Start(ctx)

	game := &scriptedGame{
		scores: []int{100, 100, 100, 100},
		onPlay: func(index int) {
			if index == 0 {
				go func() {
					time.Sleep(10 * time.Millisecond)
					s.Abandon(context.Background())
				}()
			}
		},
	}

	_, err := Run(ctx, s, game)
	if !errors.Is(err, domain.ErrSessionAbandoned) {
		t.Fatalf("expected ErrSessionAbandoned, got %v", err)
	}
	if sink.count() != 0 {
		t.Fatal("abandoned run paid a reward")
	}
}

func TestRunContextCancelled(t *testing.T) {
	s, _ := newTestSession(t, fourStepSalad(), WithDwell(time.Hour))
	s.Start(context.Background())
	defer s.Abandon(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	game := &scriptedGame{
		scores: []int{100, 100, 100, 100},
		onPlay: func(int) { cancel() },
	}

	_, err := Run(ctx, s, game)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
