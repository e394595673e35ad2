package migrations

import "embed"

// FS holds the SQL migrations shipped with the binary
//
//go:embed postgres/*.sql
var FS embed.FS

// PostgresDir is the directory inside FS holding postgres migrations
const PostgresDir = "postgres"
