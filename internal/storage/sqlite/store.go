// Package sqlite provides a SQLite-backed player progress store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hammamikhairi/sproutchef/internal/domain"
	"github.com/hammamikhairi/sproutchef/internal/logger"
	"github.com/hammamikhairi/sproutchef/internal/storage/sqlite/migrations"
)

// Compile-time interface check.
var _ domain.ProgressStore = (*Store)(nil)

const migrationTable = "schema_migrations"

// Store persists player progress in SQLite.
type Store struct {
	sqlDB *sql.DB
	log   *logger.Logger
}

// Open opens a SQLite progress store and applies embedded migrations.
func Open(path string, log *logger.Logger) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	log.Info("progress store opened at %s", cleanPath)
	return &Store{sqlDB: sqlDB, log: log}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// ApplyReward pays a reward and ratchets the recipe's best stars in one
// transaction.
func (s *Store) ApplyReward(ctx context.Context, event domain.RewardEvent) (int, error) {
	recipeID := strings.TrimSpace(event.RecipeID)
	if recipeID == "" {
		return 0, fmt.Errorf("recipe id is required")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin apply reward: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`UPDATE wallet SET coins = coins + ?, xp = xp + ? WHERE id = 1`,
		event.Coins, event.XP,
	); err != nil {
		return 0, fmt.Errorf("update wallet: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO best_stars (recipe_id, stars, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(recipe_id) DO UPDATE SET stars = MAX(stars, excluded.stars), updated_at = excluded.updated_at`,
		recipeID, event.Stars, time.Now().UTC().UnixMilli(),
	); err != nil {
		return 0, fmt.Errorf("upsert best stars: %w", err)
	}

	var best int
	if err := tx.QueryRowContext(ctx,
		`SELECT stars FROM best_stars WHERE recipe_id = ?`, recipeID,
	).Scan(&best); err != nil {
		return 0, fmt.Errorf("read best stars: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit apply reward: %w", err)
	}

	s.log.Debug("applied reward for %s: +%d coins, +%d xp, best %d", recipeID, event.Coins, event.XP, best)
	return best, nil
}

// BestStars returns the stored best rating, 0 if never completed.
func (s *Store) BestStars(ctx context.Context, recipeID string) (int, error) {
	var stars int
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT stars FROM best_stars WHERE recipe_id = ?`, recipeID,
	).Scan(&stars)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get best stars: %w", err)
	}
	return stars, nil
}

// Wallet returns the current totals.
func (s *Store) Wallet(ctx context.Context) (domain.Wallet, error) {
	var w domain.Wallet
	err := s.sqlDB.QueryRowContext(ctx, `SELECT coins, xp FROM wallet WHERE id = 1`).Scan(&w.Coins, &w.XP)
	if err != nil {
		return domain.Wallet{}, fmt.Errorf("get wallet: %w", err)
	}
	return w, nil
}

// applyMigrations executes every embedded .sql file at most once, in name
// order, recording each in the migration table.
func applyMigrations(sqlDB *sql.DB, migrationFS fs.FS) error {
	entries, err := fs.ReadDir(migrationFS, ".")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	var sqlFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			sqlFiles = append(sqlFiles, entry.Name())
		}
	}
	sort.Strings(sqlFiles)

	createSQL := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
);
`, migrationTable)
	if _, err := sqlDB.Exec(createSQL); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	for _, file := range sqlFiles {
		applied, err := isApplied(sqlDB, file)
		if err != nil {
			return fmt.Errorf("check migration %s: %w", file, err)
		}
		if applied {
			continue
		}

		content, err := fs.ReadFile(migrationFS, file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}
		upSQL := extractUp(string(content))
		if strings.TrimSpace(upSQL) == "" {
			continue
		}

		tx, err := sqlDB.BeginTx(context.Background(), nil)
		if err != nil {
			return fmt.Errorf("begin migration transaction %s: %w", file, err)
		}
		if _, err := tx.Exec(upSQL); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("exec migration %s: %w", file, err)
		}
		if _, err := tx.Exec(
			fmt.Sprintf("INSERT OR IGNORE INTO %s (name, applied_at) VALUES (?, ?)", migrationTable),
			file,
			time.Now().UTC().UnixMilli(),
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %s: %w", file, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", file, err)
		}
	}
	return nil
}

// extractUp returns the SQL in the -- +migrate Up section.
func extractUp(content string) string {
	upIdx := strings.Index(content, "-- +migrate Up")
	if upIdx == -1 {
		return content
	}
	downIdx := strings.Index(content, "-- +migrate Down")
	if downIdx == -1 {
		return content[upIdx+len("-- +migrate Up"):]
	}
	return content[upIdx+len("-- +migrate Up") : downIdx]
}

func isApplied(sqlDB *sql.DB, name string) (bool, error) {
	var found int
	err := sqlDB.QueryRow("SELECT 1 FROM "+migrationTable+" WHERE name = ?", name).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
