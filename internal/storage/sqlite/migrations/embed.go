package migrations

import "embed"

// FS contains embedded SQLite migrations for player progress.
//
//go:embed *.sql
var FS embed.FS
