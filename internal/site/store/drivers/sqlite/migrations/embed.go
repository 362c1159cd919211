// Package migrations embeds the schema migration files so the binary carries
// them.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
