// Package migrations embeds SQL migration files for the index database.
package migrations

import "embed"

// FS contains the versioned .up.sql and .down.sql files.
//
//go:embed *.sql
var FS embed.FS
