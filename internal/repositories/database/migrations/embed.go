// Package migrations embeds the schema of both storage backends.
package migrations

import "embed"

// FS holds one migration directory per backend.
//
//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)
