// Package engine implements the cooking session state machine and the
// façade the host shell drives it through.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/hammamikhairi/sproutchef/internal/domain"
	"github.com/hammamikhairi/sproutchef/internal/logger"
)

// Option configures the engine.
type Option func(*Engine)

// WithSessionOptions sets options applied to every session the engine
// creates.
func WithSessionOptions(opts ...SessionOption) Option {
	return func(e *Engine) {
		e.sessionOpts = append(e.sessionOpts, opts...)
	}
}

// Engine owns the live cooking sessions. It depends only on interfaces
// and is fully testable with mocks.
type Engine struct {
	recipes     domain.RecipeSource
	sink        domain.RewardSink
	log         *logger.Logger
	sessionOpts []SessionOption

	mu       sync.RWMutex
	sessions map[string]*Session
}

// New creates a cooking engine with the given dependencies and options.
func New(recipes domain.RecipeSource, sink domain.RewardSink, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		recipes:  recipes,
		sink:     sink,
		log:      log,
		sessions: make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ListRecipes returns all available recipes.
func (e *Engine) ListRecipes(ctx context.Context) ([]domain.RecipeSummary, error) {
	return e.recipes.List(ctx)
}

// GetRecipe returns a full recipe by ID.
func (e *Engine) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	return e.recipes.Get(ctx, id)
}

// StartSession begins a new cooking session for the given recipe.
func (e *Engine) StartSession(ctx context.Context, recipeID string, opts ...SessionOption) (*Session, error) {
	recipe, err := e.recipes.Get(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("getting recipe: %w", err)
	}

	all := make([]SessionOption, 0, len(e.sessionOpts)+len(opts)+1)
	all = append(all, WithID(uuid.NewString()))
	all = append(all, e.sessionOpts...)
	all = append(all, opts...)
	s := NewSession(*recipe, e.sink, e.log, all...)

	e.mu.Lock()
	e.sessions[s.ID()] = s
	e.mu.Unlock()

	if err := s.Start(ctx); err != nil {
		// A failed reward write still leaves a completed session behind.
		e.log.Warn("session %s started with error: %v", s.ID(), err)
		return s, err
	}

	e.log.Info("started session %s for recipe %q", s.ID(), recipe.Title)
	return s, nil
}

// Session returns a live session by ID.
func (e *Engine) Session(id string) (*Session, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	s, ok := e.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	return s, nil
}

// ReportScore forwards a minigame score to a session.
func (e *Engine) ReportScore(ctx context.Context, sessionID string, index, value int) error {
	s, err := e.Session(sessionID)
	if err != nil {
		return err
	}
	return s.ReportScore(ctx, index, value)
}

// Abandon tears down a session and forgets it.
func (e *Engine) Abandon(ctx context.Context, sessionID string) error {
	s, err := e.Session(sessionID)
	if err != nil {
		return err
	}
	if err := s.Abandon(ctx); err != nil {
		return err
	}

	e.mu.Lock()
	delete(e.sessions, sessionID)
	e.mu.Unlock()
	return nil
}

// Finish forgets a completed session and returns its final snapshot.
func (e *Engine) Finish(sessionID string) (Snapshot, error) {
	s, err := e.Session(sessionID)
	if err != nil {
		return Snapshot{}, err
	}

	snap := s.Snapshot()
	if !snap.Phase.Terminal() {
		return snap, fmt.Errorf("session %s is %s: %w", sessionID, snap.Phase, domain.ErrSessionActive)
	}

	e.mu.Lock()
	delete(e.sessions, sessionID)
	e.mu.Unlock()
	return snap, nil
}

// Active returns the number of sessions the engine is tracking.
func (e *Engine) Active() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.sessions)
}
