package sound

import (
	"context"

	"github.com/hammamikhairi/sproutchef/internal/domain"
)

// Compile-time interface check.
var _ domain.Presenter = (*ChimingPresenter)(nil)

// ChimingPresenter wraps a text presenter and rings a chime for every
// kitchen event. Text is shown immediately; the chime is queued.
type ChimingPresenter struct {
	text domain.Presenter
	bell *Bell
}

// NewChimingPresenter creates a presenter that both shows and chimes.
func NewChimingPresenter(text domain.Presenter, bell *Bell) *ChimingPresenter {
	return &ChimingPresenter{text: text, bell: bell}
}

// StepStarted shows the step and rings the step chime.
func (p *ChimingPresenter) StepStarted(ctx context.Context, index, total int, step domain.CookingStep) {
	p.text.StepStarted(ctx, index, total, step)
	p.bell.Ring(ChimeStep, 0)
}

// Encourage shows the cheer and rings the cheer chime.
func (p *ChimingPresenter) Encourage(ctx context.Context, message string) {
	p.text.Encourage(ctx, message)
	p.bell.Ring(ChimeCheer, 0)
}

// Completed shows the reward and plays one note per star.
func (p *ChimingPresenter) Completed(ctx context.Context, recipeID string, reward domain.Reward) {
	p.text.Completed(ctx, recipeID, reward)
	p.bell.Ring(ChimeReward, reward.Stars)
}
