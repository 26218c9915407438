// Package reward maps a session's aggregate score to stars, coins and xp,
// and applies earned rewards to the player's progress.
package reward

import "github.com/hammamikhairi/sproutchef/internal/domain"

// Score bounds for a single step.
const (
	MinScore = 0
	MaxScore = 100
)

type tier struct {
	min   int
	stars int
	coins int
	xp    int
}

// tiers are checked from the top; the first whose min the average
// reaches wins.
var tiers = []tier{
	{min: 85, stars: 3, coins: 50, xp: 45},
	{min: 60, stars: 2, coins: 40, xp: 35},
	{min: MinScore, stars: 1, coins: 30, xp: 25},
}

// Calculate returns the reward for an average score. Out-of-range input
// is clamped first, so every int has a reward.
func Calculate(average int) domain.Reward {
	average = Clamp(average)
	for _, t := range tiers {
		if average >= t.min {
			return domain.Reward{Stars: t.stars, Coins: t.coins, XP: t.xp}
		}
	}
	last := tiers[len(tiers)-1]
	return domain.Reward{Stars: last.stars, Coins: last.coins, XP: last.xp}
}

// Clamp limits a step score to [MinScore, MaxScore].
func Clamp(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// Average is floor(sum/len) for non-negative scores, and 0 for none.
func Average(scores []int) int {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return sum / len(scores)
}

// Ratchet returns the stored best rating after earning a new one. It
// never goes down.
func Ratchet(previous, earned int) int {
	if earned > previous {
		return earned
	}
	return previous
}
