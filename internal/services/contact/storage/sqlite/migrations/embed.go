package migrations

import "embed"

// FS contains embedded SQLite migrations for contact submission storage.
//
//go:embed *.sql
var FS embed.FS
