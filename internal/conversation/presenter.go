package conversation

import (
	"context"
	"fmt"

	"github.com/hammamikhairi/sproutchef/internal/domain"
	"github.com/hammamikhairi/sproutchef/internal/lines"
	"github.com/hammamikhairi/sproutchef/internal/logger"
)

// Compile-time interface check.
var _ domain.Presenter = (*CLIPresenter)(nil)

// ANSI escape codes for terminal formatting.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)

// PrintFunc is a function used to print formatted output.
// Matches the signature of both fmt.Printf and display.UI.Printf.
type PrintFunc func(format string, a ...interface{})

// CLIPresenter writes kitchen events to the terminal with ANSI formatting.
type CLIPresenter struct {
	log     *logger.Logger
	printFn PrintFunc
}

// NewCLIPresenter creates a terminal presenter.
// If printFn is nil, fmt.Printf is used.
func NewCLIPresenter(log *logger.Logger, printFn PrintFunc) *CLIPresenter {
	if printFn == nil {
		printFn = func(format string, a ...interface{}) {
			fmt.Printf(format+"\n", a...)
		}
	}
	return &CLIPresenter{log: log, printFn: printFn}
}

// StepStarted shows the step header, the instruction and its flavor hint.
func (p *CLIPresenter) StepStarted(ctx context.Context, index, total int, step domain.CookingStep) {
	p.log.Debug("present step %d/%d: %s", index+1, total, step.Type)
	p.printFn("%s%s%s%s  %s%s%s", cyan, bold, lines.Step(index, total), reset, dim, step.Type, reset)
	p.printFn("  %s", step.Instruction)
	if step.Flavor != "" {
		p.printFn("  %s%s%s", yellow, step.Flavor, reset)
	}
}

// Encourage prints a cheer between steps.
func (p *CLIPresenter) Encourage(ctx context.Context, message string) {
	p.log.Debug("present encouragement: %s", message)
	p.printFn("%s%s%s", green, message, reset)
}

// Completed announces the final reward.
func (p *CLIPresenter) Completed(ctx context.Context, recipeID string, reward domain.Reward) {
	p.log.Debug("present reward for %s: %+v", recipeID, reward)
	p.printFn("%s%sAll done! %s%s", green, bold, lines.Reward(reward), reset)
}
