package engine

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/hammamikhairi/sproutchef/internal/compiler"
	"github.com/hammamikhairi/sproutchef/internal/domain"
	"github.com/hammamikhairi/sproutchef/internal/lines"
	"github.com/hammamikhairi/sproutchef/internal/logger"
	"github.com/hammamikhairi/sproutchef/internal/reward"
	"github.com/hammamikhairi/sproutchef/internal/timer"
)

// SessionOption configures a session.
type SessionOption func(*Session)

// WithDwell sets how long the session lingers between steps. Zero moves
// on immediately.
func WithDwell(d time.Duration) SessionOption {
	return func(s *Session) {
		s.dwellFor = d
	}
}

// WithRand sets the source used to pick encouragement messages.
func WithRand(r *rand.Rand) SessionOption {
	return func(s *Session) {
		s.rnd = r
	}
}

// WithPresenter sets who is told about step changes and the final reward.
func WithPresenter(p domain.Presenter) SessionOption {
	return func(s *Session) {
		s.presenter = p
	}
}

// WithCompiler replaces the default step compiler.
func WithCompiler(c *compiler.Compiler) SessionOption {
	return func(s *Session) {
		s.compiler = c
	}
}

// WithID sets the session identifier.
func WithID(id string) SessionOption {
	return func(s *Session) {
		s.id = id
	}
}

// Snapshot is a consistent copy of a session's state.
type Snapshot struct {
	ID       string
	RecipeID string
	Title    string
	Phase    domain.Phase
	Index    int
	Total    int
	Scores   []int
	// Step is the active step while Playing, nil otherwise.
	Step *domain.CookingStep
	// Encouragement is the last message shown between steps.
	Encouragement string
	Reward        domain.Reward
	// Changed is closed on the next phase change.
	Changed <-chan struct{}
}

// Session is the state machine for one cooking attempt:
// Loading, then Playing and Transitioning in turn, then Complete.
// Abandon may end it early from any non-terminal phase.
type Session struct {
	id        string
	recipe    domain.Recipe
	sink      domain.RewardSink
	presenter domain.Presenter
	compiler  *compiler.Compiler
	log       *logger.Logger
	dwellFor  time.Duration
	rnd       *rand.Rand
	dwell     *timer.Dwell

	mu            sync.Mutex
	state         domain.SessionState
	started       bool
	reward        domain.Reward
	encouragement string
	changed       chan struct{}
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewSession creates a session in the Loading phase. Nothing is compiled
// until Start.
func NewSession(recipe domain.Recipe, sink domain.RewardSink, log *logger.Logger, opts ...SessionOption) *Session {
	s := &Session{
		id:        recipe.ID,
		recipe:    recipe,
		sink:      sink,
		presenter: nopPresenter{},
		compiler:  compiler.New(),
		log:       log,
		dwellFor:  timer.DefaultDwell,
		state:     domain.SessionState{Phase: domain.PhaseLoading},
		changed:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.dwell = timer.NewDwell(log)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Recipe returns the recipe being cooked.
func (s *Session) Recipe() domain.Recipe { return s.recipe }

// Start compiles the recipe and enters Playing at step 0. A recipe that
// compiles to no steps completes at once with an average of 0.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return domain.ErrAlreadyStarted
	}
	s.started = true
	s.ctx, s.cancel = context.WithCancel(ctx)
	context.AfterFunc(s.ctx, s.teardown)

	for _, pt := range s.compiler.Trace(s.recipe) {
		s.log.Debug("compile %s: %s emitted=%d suppressed=%t", s.recipe.ID, pt.Name, pt.Emitted, pt.Suppressed)
	}
	s.state.Steps = s.compiler.Compile(s.recipe)
	s.state.Scores = make([]int, 0, len(s.state.Steps))
	s.log.Info("session %s: %q compiled to %d steps", s.id, s.recipe.Title, len(s.state.Steps))

	if len(s.state.Steps) == 0 {
		ev := s.completeLocked()
		r := s.reward
		s.mu.Unlock()
		err := s.record(ctx, ev)
		s.presenter.Completed(ctx, s.recipe.ID, r)
		return err
	}

	step := s.enterPlayingLocked()
	total := len(s.state.Steps)
	s.mu.Unlock()

	s.presenter.StepStarted(ctx, 0, total, step)
	return nil
}

// ReportScore records the minigame score for the step at index. The
// value is clamped to [0,100]. Reports that do not match the active step
// are ignored and return an error describing why.
func (s *Session) ReportScore(ctx context.Context, index, value int) error {
	s.mu.Lock()

	switch s.state.Phase {
	case domain.PhasePlaying, domain.PhaseTransitioning:
	default:
		phase := s.state.Phase
		s.mu.Unlock()
		return fmt.Errorf("score for step %d while %s: %w", index, phase, domain.ErrSessionNotPlaying)
	}

	if index >= 0 && index < len(s.state.Scores) {
		s.mu.Unlock()
		return fmt.Errorf("step %d: %w", index, domain.ErrDuplicateScore)
	}
	if s.state.Phase != domain.PhasePlaying || index != s.state.CurrentIndex {
		cur := s.state.CurrentIndex
		s.mu.Unlock()
		return fmt.Errorf("step %d (active %d): %w", index, cur, domain.ErrStepNotActive)
	}

	score := reward.Clamp(value)
	s.state.Scores = append(s.state.Scores, score)
	s.state.CurrentIndex++
	s.log.Debug("session %s: step %d scored %d", s.id, index, score)

	if s.state.CurrentIndex == len(s.state.Steps) {
		ev := s.completeLocked()
		r := s.reward
		s.mu.Unlock()
		err := s.record(ctx, ev)
		s.presenter.Completed(ctx, s.recipe.ID, r)
		return err
	}

	s.encouragement = lines.Encouragement(s.rnd)
	msg := s.encouragement
	s.setPhaseLocked(domain.PhaseTransitioning)

	if s.dwellFor <= 0 {
		step := s.enterPlayingLocked()
		next, total := s.state.CurrentIndex, len(s.state.Steps)
		s.mu.Unlock()
		s.presenter.Encourage(ctx, msg)
		s.presenter.StepStarted(ctx, next, total, step)
		return nil
	}

	s.dwell.Start(s.ctx, s.dwellFor, s.endDwell)
	s.mu.Unlock()

	s.presenter.Encourage(ctx, msg)
	return nil
}

// endDwell moves a Transitioning session on to its next step.
func (s *Session) endDwell() {
	s.mu.Lock()
	if s.state.Phase != domain.PhaseTransitioning {
		s.mu.Unlock()
		return
	}
	step := s.enterPlayingLocked()
	next, total := s.state.CurrentIndex, len(s.state.Steps)
	ctx := s.ctx
	s.mu.Unlock()

	s.presenter.StepStarted(ctx, next, total, step)
}

// Abandon tears the session down. Scores are discarded and no reward is
// paid.
func (s *Session) Abandon(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state.Phase {
	case domain.PhaseComplete:
		return domain.ErrSessionComplete
	case domain.PhaseAbandoned:
		return domain.ErrSessionAbandoned
	}

	s.abandonLocked()
	return nil
}

// teardown abandons a session whose context ended before it finished.
func (s *Session) teardown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Phase.Terminal() {
		return
	}
	s.log.Warn("session %s: context ended while %s", s.id, s.state.Phase)
	s.abandonLocked()
}

func (s *Session) abandonLocked() {
	s.dwell.Stop()
	if s.cancel != nil {
		s.cancel()
	}
	s.state.Scores = nil
	s.setPhaseLocked(domain.PhaseAbandoned)
	s.log.Info("session %s abandoned at step %d of %d", s.id, s.state.CurrentIndex, len(s.state.Steps))
}

// Current returns the active step. It fails unless the session is Playing.
func (s *Session) Current() (int, domain.CookingStep, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Phase != domain.PhasePlaying {
		return 0, domain.CookingStep{}, domain.ErrSessionNotPlaying
	}
	return s.state.CurrentIndex, s.state.Steps[s.state.CurrentIndex], nil
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() domain.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Phase
}

// Reward returns the final reward once the session is Complete.
func (s *Session) Reward() (domain.Reward, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reward, s.state.Phase == domain.PhaseComplete
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:            s.id,
		RecipeID:      s.recipe.ID,
		Title:         s.recipe.Title,
		Phase:         s.state.Phase,
		Index:         s.state.CurrentIndex,
		Total:         len(s.state.Steps),
		Scores:        append([]int(nil), s.state.Scores...),
		Encouragement: s.encouragement,
		Reward:        s.reward,
		Changed:       s.changed,
	}
	if s.state.Phase == domain.PhasePlaying {
		step := s.state.Steps[s.state.CurrentIndex]
		snap.Step = &step
	}
	return snap
}

// State returns a copy of the raw state machine fields.
func (s *Session) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	st.Steps = append([]domain.CookingStep(nil), s.state.Steps...)
	st.Scores = append([]int(nil), s.state.Scores...)
	return st
}

func (s *Session) enterPlayingLocked() domain.CookingStep {
	s.setPhaseLocked(domain.PhasePlaying)
	return s.state.Steps[s.state.CurrentIndex]
}

// completeLocked computes the reward and enters Complete. The caller
// passes the returned event to record after unlocking.
func (s *Session) completeLocked() domain.RewardEvent {
	avg := reward.Average(s.state.Scores)
	s.reward = reward.Calculate(avg)

	s.setPhaseLocked(domain.PhaseComplete)
	if s.cancel != nil {
		s.cancel()
	}
	s.log.Info("session %s complete: average %d, %d stars", s.id, avg, s.reward.Stars)

	return domain.RewardEvent{
		RecipeID: s.recipe.ID,
		Stars:    s.reward.Stars,
		Coins:    s.reward.Coins,
		XP:       s.reward.XP,
	}
}

// record hands the reward to the sink, exactly once per session and
// outside the lock. A sink failure is returned but the session stays
// Complete.
func (s *Session) record(ctx context.Context, ev domain.RewardEvent) error {
	if s.sink == nil {
		return nil
	}
	if err := s.sink.Record(ctx, ev); err != nil {
		s.log.Error("session %s: recording reward: %v", s.id, err)
		return fmt.Errorf("recording reward: %w", err)
	}
	return nil
}

func (s *Session) setPhaseLocked(p domain.Phase) {
	s.log.Debug("session %s: %s -> %s", s.id, s.state.Phase, p)
	s.state.Phase = p
	close(s.changed)
	s.changed = make(chan struct{})
}

type nopPresenter struct{}

func (nopPresenter) StepStarted(context.Context, int, int, domain.CookingStep) {}
func (nopPresenter) Encourage(context.Context, string)                         {}
func (nopPresenter) Completed(context.Context, string, domain.Reward)          {}
