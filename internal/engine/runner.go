package engine

import (
	"context"
	"fmt"

	"github.com/hammamikhairi/sproutchef/internal/domain"
)

// Run drives a started session to the end with game supplying a score
// for every step. It returns the reward once the session completes,
// domain.ErrSessionAbandoned if the session is torn down, or ctx.Err().
func Run(ctx context.Context, s *Session, game domain.Minigame) (domain.Reward, error) {
	for {
		snap := s.Snapshot()

		switch snap.Phase {
		case domain.PhaseComplete:
			return snap.Reward, nil
		case domain.PhaseAbandoned:
			return domain.Reward{}, domain.ErrSessionAbandoned
		case domain.PhasePlaying:
			score, err := game.Play(ctx, snap.Index, *snap.Step)
			if err != nil {
				return domain.Reward{}, fmt.Errorf("playing step %d: %w", snap.Index, err)
			}
			if err := s.ReportScore(ctx, snap.Index, score); err != nil {
				// The session may have moved on under us (abandoned
				// mid-game); the next snapshot says how.
				if s.Phase() == domain.PhaseComplete {
					r, _ := s.Reward()
					return r, err
				}
				if s.Phase() != domain.PhaseAbandoned {
					return domain.Reward{}, err
				}
			}
			continue
		}

		select {
		case <-ctx.Done():
			return domain.Reward{}, ctx.Err()
		case <-snap.Changed:
		}
	}
}
