// Package migrations embeds the item schema migrations for both supported
// store dialects. The api process applies them at startup; this package only
// exposes the embedded filesystem.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS

// Per-dialect migration directories within FS.
const (
	SQLiteDir   = "sqlite"
	PostgresDir = "postgres"
)
