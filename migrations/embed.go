// Package migrations holds the goose SQL migrations for the schema.
package migrations

import "embed"

// FS contains every *.sql migration, ordered by goose version prefix.
//
//go:embed *.sql
var FS embed.FS
