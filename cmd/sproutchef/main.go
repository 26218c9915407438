// Sprout Chef is a terminal kitchen for little cooks.
//
// Usage:
//
//	sproutchef [-verbose] [-quiet] [-plain] [-autoplay recipe-id]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/hammamikhairi/sproutchef/internal/config"
	"github.com/hammamikhairi/sproutchef/internal/conversation"
	"github.com/hammamikhairi/sproutchef/internal/display"
	"github.com/hammamikhairi/sproutchef/internal/domain"
	"github.com/hammamikhairi/sproutchef/internal/engine"
	"github.com/hammamikhairi/sproutchef/internal/lines"
	"github.com/hammamikhairi/sproutchef/internal/logger"
	"github.com/hammamikhairi/sproutchef/internal/recipe"
	"github.com/hammamikhairi/sproutchef/internal/reward"
	"github.com/hammamikhairi/sproutchef/internal/sound"
	"github.com/hammamikhairi/sproutchef/internal/storage"
	"github.com/hammamikhairi/sproutchef/internal/storage/redis"
	"github.com/hammamikhairi/sproutchef/internal/storage/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", cfg.LogFile, "file to write logs to (use \"stderr\" to log to console)")
	noSound := flag.Bool("no-sound", !cfg.Sound, "disable chimes")
	plain := flag.Bool("plain", false, "read commands line by line from stdin without the full-screen UI")
	autoplay := flag.String("autoplay", "", "cook the given recipe with random scores and exit")
	flag.Parse()

	// Configure logger.
	logLevel := logger.LevelNormal
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the kitchen stays clean.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		dir := filepath.Dir(*logFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)
	defer log.Sync()

	// Cancelled when the UI quits.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire dependencies.
	recipes := recipe.NewMemorySource(log)
	if cfg.CatalogPath != "" {
		n, err := recipe.LoadCatalogFile(ctx, cfg.CatalogPath, recipes)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		log.Info("loaded %d recipes from %s", n, cfg.CatalogPath)
	}

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	// Chimes are optional; a missing audio device only costs the sound.
	var bell *sound.Bell
	if !*noSound {
		player, err := sound.NewPlayer(log)
		if err != nil {
			log.Error("audio player init failed, chimes disabled: %v", err)
		} else {
			bell = sound.NewBell(player, log)
			bell.Start(ctx)
		}
	}
	withChimes := func(p domain.Presenter) domain.Presenter {
		if bell == nil {
			return p
		}
		return sound.NewChimingPresenter(p, bell)
	}

	recorder := reward.NewRecorder(store, log)
	parser := conversation.NewKeywordParser(log)

	if *autoplay != "" {
		presenter := withChimes(conversation.NewCLIPresenter(log, nil))
		eng := engine.New(recipes, recorder, log,
			engine.WithSessionOptions(engine.WithDwell(cfg.Dwell), engine.WithPresenter(presenter)))
		if err := autoPlay(ctx, eng, *autoplay); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	app := &cliApp{
		parser: parser,
		store:  store,
		log:    log,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if *plain {
		app.out = plainOutput{}
		presenter := withChimes(conversation.NewCLIPresenter(log, nil))
		app.engine = engine.New(recipes, recorder, log,
			engine.WithSessionOptions(engine.WithDwell(cfg.Dwell), engine.WithPresenter(presenter)))
		app.run(ctx, readLines(ctx, os.Stdin))
		return
	}

	ui := display.NewUI(app.status)
	app.out = ui
	app.engine = engine.New(recipes, recorder, log,
		engine.WithSessionOptions(engine.WithDwell(cfg.Dwell), engine.WithPresenter(withChimes(ui))))

	wallet, err := store.Wallet(ctx)
	if err != nil {
		log.Warn("reading wallet for banner: %v", err)
	}
	fmt.Println(display.RenderBanner(wallet))
	fmt.Println(display.BannerStyle.Render("  Type 'help' for commands, 'quit' to exit."))
	fmt.Println()

	// Run app logic in a background goroutine.
	go func() {
		ui.WaitReady()
		app.run(ctx, ui.InputChan())
		ui.Quit()
	}()

	// Bubble Tea owns the terminal and blocks until quit.
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
	}
	cancel()
}

// openStore builds the configured progress store. The returned func
// releases it.
func openStore(ctx context.Context, cfg config.Config, log *logger.Logger) (domain.ProgressStore, func(), error) {
	switch cfg.Store {
	case config.StoreSQLite:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		s, err := sqlite.Open(cfg.SQLitePath, log)
		if err != nil {
			return nil, nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return s, func() { closeQuietly(s, log) }, nil
	case config.StoreRedis:
		s, err := redis.Open(ctx, cfg.RedisAddr, cfg.RedisDB, log)
		if err != nil {
			return nil, nil, fmt.Errorf("opening redis store: %w", err)
		}
		return s, func() { closeQuietly(s, log) }, nil
	default:
		return storage.NewMemoryStore(log), func() {}, nil
	}
}

func closeQuietly(c io.Closer, log *logger.Logger) {
	if err := c.Close(); err != nil {
		log.Warn("closing progress store: %v", err)
	}
}

// autoPlay cooks one recipe start to finish with random minigame scores.
func autoPlay(ctx context.Context, eng *engine.Engine, recipeID string) error {
	s, err := eng.StartSession(ctx, recipeID)
	if err != nil {
		return err
	}
	game := randomGame{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
	if _, err := engine.Run(ctx, s, game); err != nil && !errors.Is(err, domain.ErrSessionAbandoned) {
		return err
	}
	if _, err := eng.Finish(s.ID()); err != nil {
		return err
	}
	fmt.Println(lines.Bye())
	return nil
}

// randomGame stands in for a minigame by rolling a score.
type randomGame struct {
	rnd *rand.Rand
}

func (g randomGame) Play(_ context.Context, _ int, _ domain.CookingStep) (int, error) {
	return autoScore(g.rnd), nil
}

// autoScore rolls a score skewed toward success.
func autoScore(r *rand.Rand) int {
	return 50 + r.Intn(51)
}
