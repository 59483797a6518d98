// Package migrations embeds the goose SQL migrations of the explorer schema.
package migrations

import "embed"

// FS holds the versioned SQL files applied by goose.
//
//go:embed *.sql
var FS embed.FS
