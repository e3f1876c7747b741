// Package migrations embeds the SQL schema migrations for the registry database.
package migrations

import "embed"

// FS holds the golang-migrate migration files.
//
//go:embed *.sql
var FS embed.FS
