package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"sync"

	"github.com/hammamikhairi/sproutchef/internal/display"
	"github.com/hammamikhairi/sproutchef/internal/domain"
	"github.com/hammamikhairi/sproutchef/internal/engine"
	"github.com/hammamikhairi/sproutchef/internal/lines"
	"github.com/hammamikhairi/sproutchef/internal/logger"
)

// output is where the shell writes lines that aren't step events.
// *display.UI and plainOutput satisfy it.
type output interface {
	Println(a ...interface{})
	PrintChat(text string)
	PrintStep(text string)
	PrintInstruction(text string)
	PrintHint(text string)
	PrintReward(text string)
	PrintUrgent(text string)
}

type cliApp struct {
	engine *engine.Engine
	parser domain.IntentParser
	store  domain.ProgressStore
	out    output
	log    *logger.Logger
	rnd    *rand.Rand

	mu       sync.Mutex
	menu     []domain.RecipeSummary // last listing, numbered from 1
	selected string                 // recipe chosen before typing 'start'
	session  *engine.Session        // nil when nothing is cooking
	wallet   domain.Wallet          // cached for the status bar
}

func (a *cliApp) run(ctx context.Context, input <-chan string) {
	a.refreshWallet(ctx)
	a.out.PrintChat(lines.Welcome())
	a.out.Println("")
	a.showRecipes(ctx)

	for {
		var text string
		var ok bool

		select {
		case <-ctx.Done():
			return
		case text, ok = <-input:
			if !ok {
				a.quit(ctx)
				return
			}
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		intent, err := a.parser.Parse(ctx, text)
		if err != nil {
			a.log.Error("parsing input: %v", err)
			continue
		}

		a.log.Debug("intent: %s (payload=%q)", intent.Type, intent.Payload)
		if intent.Type == domain.IntentQuit {
			a.quit(ctx)
			return
		}
		a.handleIntent(ctx, intent)
	}
}

func (a *cliApp) handleIntent(ctx context.Context, intent *domain.Intent) {
	switch intent.Type {
	case domain.IntentHelp:
		a.showHelp()
	case domain.IntentListRecipes:
		a.showRecipes(ctx)
	case domain.IntentSelectRecipe:
		// While a step is playing a bare number is the player's score.
		if s := a.current(); s != nil && s.Phase() == domain.PhasePlaying {
			a.score(ctx, intent.Payload)
			return
		}
		a.selectRecipe(ctx, intent.Payload)
	case domain.IntentStartCooking:
		a.startCooking(ctx)
	case domain.IntentScore:
		a.score(ctx, intent.Payload)
	case domain.IntentAutoScore:
		a.score(ctx, strconv.Itoa(autoScore(a.rnd)))
	case domain.IntentRepeat:
		a.repeat()
	case domain.IntentStatus:
		a.showStatus()
	case domain.IntentWallet:
		a.showWallet(ctx)
	case domain.IntentStars:
		a.showStars(ctx)
	case domain.IntentAbandon:
		a.abandon(ctx)
	default:
		a.out.PrintHint(lines.Unknown(intent.Payload))
	}
}

// ── Recipes ──────────────────────────────────────────────────────

func (a *cliApp) showHelp() {
	a.out.PrintChat("Here's what you can say:")
	a.out.PrintHint("list            show the recipes")
	a.out.PrintHint("pick N          choose recipe number N")
	a.out.PrintHint("start           start cooking")
	a.out.PrintHint("N / score N     play the step and score N (0-100)")
	a.out.PrintHint("auto            let the kitchen play the step")
	a.out.PrintHint("repeat          show the step again")
	a.out.PrintHint("status          where are we?")
	a.out.PrintHint("wallet / stars  your coins, xp and best stars")
	a.out.PrintHint("abandon         stop this recipe")
	a.out.PrintHint("quit            leave the kitchen")
}

func (a *cliApp) showRecipes(ctx context.Context) {
	list, err := a.engine.ListRecipes(ctx)
	if err != nil {
		a.out.PrintUrgent(fmt.Sprintf("Couldn't load recipes: %v", err))
		return
	}

	a.mu.Lock()
	a.menu = list
	a.mu.Unlock()

	for i, r := range list {
		a.out.PrintInstruction(fmt.Sprintf("%d. %s (%s)", i+1, r.Title, r.Difficulty))
		if r.Description != "" {
			a.out.PrintHint("   " + r.Description)
		}
	}
}

func (a *cliApp) selectRecipe(ctx context.Context, payload string) {
	if a.cooking() {
		a.out.PrintChat(lines.AlreadyCooking())
		return
	}

	id, ok := a.resolveRecipe(payload)
	if !ok {
		a.out.PrintChat(lines.InvalidSelection(payload))
		return
	}
	r, err := a.engine.GetRecipe(ctx, id)
	if err != nil {
		a.out.PrintChat(lines.InvalidSelection(payload))
		return
	}

	a.mu.Lock()
	a.selected = r.ID
	a.mu.Unlock()

	a.out.PrintChat(lines.RecipeSelected(r.Title, ingredientNames(r)))
}

// resolveRecipe accepts a menu number or a recipe ID.
func (a *cliApp) resolveRecipe(payload string) (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if n, err := strconv.Atoi(payload); err == nil {
		if n < 1 || n > len(a.menu) {
			return "", false
		}
		return a.menu[n-1].ID, true
	}
	for _, r := range a.menu {
		if strings.EqualFold(r.ID, payload) || strings.EqualFold(r.Title, payload) {
			return r.ID, true
		}
	}
	return "", false
}

func ingredientNames(r *domain.Recipe) []string {
	names := make([]string, 0, len(r.Garden)+len(r.Pantry))
	for _, v := range r.Garden {
		names = append(names, strings.ToLower(v.DisplayName()))
	}
	for _, p := range r.Pantry {
		names = append(names, strings.ToLower(p.DisplayName()))
	}
	return names
}

// ── Cooking ──────────────────────────────────────────────────────

func (a *cliApp) startCooking(ctx context.Context) {
	if a.cooking() {
		a.out.PrintChat(lines.AlreadyCooking())
		return
	}

	a.mu.Lock()
	id := a.selected
	a.mu.Unlock()
	if id == "" {
		a.out.PrintChat(lines.PickRecipeFirst())
		return
	}

	r, err := a.engine.GetRecipe(ctx, id)
	if err != nil {
		a.out.PrintUrgent(fmt.Sprintf("Couldn't find that recipe: %v", err))
		return
	}
	a.out.PrintChat(lines.CookingStart(r.Title))

	s, err := a.engine.StartSession(ctx, id)
	if s == nil {
		a.out.PrintUrgent(fmt.Sprintf("Couldn't start cooking: %v", err))
		return
	}
	if err != nil {
		a.log.Error("start session: %v", err)
	}

	a.mu.Lock()
	a.session = s
	a.mu.Unlock()

	if s.Snapshot().Total == 0 {
		a.out.PrintChat(lines.NothingToCook())
	}
	go a.watch(ctx, s)
}

// watch waits for s to end, then refreshes the wallet and forgets it.
func (a *cliApp) watch(ctx context.Context, s *engine.Session) {
	for {
		snap := s.Snapshot()
		if snap.Phase.Terminal() {
			// Abandon already forgot the session; everything else is
			// still registered.
			if _, err := a.engine.Finish(s.ID()); err != nil && !errors.Is(err, domain.ErrNotFound) {
				a.log.Warn("finish session %s: %v", s.ID(), err)
			}
			a.refreshWallet(ctx)

			a.mu.Lock()
			if a.session == s {
				a.session = nil
			}
			a.mu.Unlock()
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-snap.Changed:
		}
	}
}

func (a *cliApp) score(ctx context.Context, payload string) {
	s := a.current()
	if s == nil {
		a.out.PrintChat(lines.NoSession())
		return
	}
	value, err := strconv.Atoi(payload)
	if err != nil {
		a.out.PrintChat(lines.BadScore(payload))
		return
	}

	snap := s.Snapshot()
	switch snap.Phase {
	case domain.PhasePlaying:
	case domain.PhaseTransitioning:
		a.out.PrintChat(lines.WaitForNextStep())
		return
	default:
		a.out.PrintChat(lines.NoSession())
		return
	}

	err = s.ReportScore(ctx, snap.Index, value)
	if s.Phase() == domain.PhaseComplete {
		// The reward is written by the time ReportScore returns.
		a.refreshWallet(ctx)
	}
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateScore), errors.Is(err, domain.ErrStepNotActive):
			a.out.PrintChat(lines.WaitForNextStep())
		default:
			a.log.Error("report score: %v", err)
			a.out.PrintUrgent(fmt.Sprintf("Something went wrong: %v", err))
		}
	}
}

func (a *cliApp) repeat() {
	s := a.current()
	if s == nil {
		a.out.PrintChat(lines.NoSession())
		return
	}
	index, step, err := s.Current()
	if err != nil {
		a.out.PrintChat(lines.WaitForNextStep())
		return
	}
	a.out.PrintStep(lines.Step(index, s.Snapshot().Total))
	a.out.PrintInstruction(step.Instruction)
	if step.Flavor != "" {
		a.out.PrintHint(step.Flavor)
	}
}

func (a *cliApp) showStatus() {
	s := a.current()
	if s == nil {
		a.out.PrintChat(lines.NoSession())
		return
	}
	snap := s.Snapshot()
	a.out.PrintChat(fmt.Sprintf("%s: %s, %d of %d steps scored.", snap.Title, snap.Phase, len(snap.Scores), snap.Total))
	if len(snap.Scores) > 0 {
		parts := make([]string, len(snap.Scores))
		for i, v := range snap.Scores {
			parts[i] = strconv.Itoa(v)
		}
		a.out.PrintHint("Scores: " + strings.Join(parts, ", "))
	}
}

func (a *cliApp) abandon(ctx context.Context) {
	s := a.current()
	if s == nil {
		a.out.PrintChat(lines.NoSession())
		return
	}
	if err := a.engine.Abandon(ctx, s.ID()); err != nil {
		a.log.Warn("abandon session %s: %v", s.ID(), err)
		a.out.PrintChat(lines.NoSession())
		return
	}
	a.out.PrintChat(lines.Abandoned())
}

func (a *cliApp) quit(ctx context.Context) {
	if a.cooking() {
		a.abandon(ctx)
	}
	a.out.PrintChat(lines.Bye())
}

// ── Progress ─────────────────────────────────────────────────────

func (a *cliApp) showWallet(ctx context.Context) {
	w, err := a.refreshWallet(ctx)
	if err != nil {
		a.out.PrintUrgent(fmt.Sprintf("Couldn't open your wallet: %v", err))
		return
	}
	a.out.PrintReward(lines.WalletLine(w))
}

func (a *cliApp) showStars(ctx context.Context) {
	list, err := a.engine.ListRecipes(ctx)
	if err != nil {
		a.out.PrintUrgent(fmt.Sprintf("Couldn't load recipes: %v", err))
		return
	}
	for _, r := range list {
		stars, err := a.store.BestStars(ctx, r.ID)
		if err != nil {
			a.log.Warn("best stars for %s: %v", r.ID, err)
			continue
		}
		a.out.PrintReward(lines.BestStarsLine(r.Title, stars))
	}
}

func (a *cliApp) refreshWallet(ctx context.Context) (domain.Wallet, error) {
	w, err := a.store.Wallet(ctx)
	if err != nil {
		a.log.Warn("load wallet: %v", err)
		return domain.Wallet{}, err
	}
	a.mu.Lock()
	a.wallet = w
	a.mu.Unlock()
	return w, nil
}

// ── State ────────────────────────────────────────────────────────

func (a *cliApp) current() *engine.Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session
}

func (a *cliApp) cooking() bool {
	s := a.current()
	return s != nil && !s.Phase().Terminal()
}

// status feeds the UI status bar. It only reads cached state.
func (a *cliApp) status() display.Status {
	a.mu.Lock()
	s := a.session
	st := display.Status{Wallet: a.wallet}
	a.mu.Unlock()

	if s != nil {
		snap := s.Snapshot()
		st.Title = snap.Title
		st.Phase = snap.Phase
		st.Index = snap.Index
		st.Total = snap.Total
	}
	return st
}

// ── Plain terminal ───────────────────────────────────────────────

// plainOutput writes straight to stdout for -plain mode.
type plainOutput struct{}

func (plainOutput) Println(a ...interface{})     { fmt.Println(a...) }
func (plainOutput) PrintChat(text string)        { fmt.Println("  " + text) }
func (plainOutput) PrintStep(text string)        { fmt.Println("  " + text) }
func (plainOutput) PrintInstruction(text string) { fmt.Println("  " + text) }
func (plainOutput) PrintHint(text string)        { fmt.Println("    " + text) }
func (plainOutput) PrintReward(text string)      { fmt.Println("  * " + text) }
func (plainOutput) PrintUrgent(text string)      { fmt.Println("  ! " + text) }

// readLines streams r line by line until EOF or ctx ends.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case ch <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}
