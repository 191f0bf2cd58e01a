package postgres

import "embed"

// MigrationsFS holds the goose SQL migrations embedded in the binary so the
// server can apply them without a migrations directory on disk.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS

// MigrationsDir is the path of the migration files inside MigrationsFS.
const MigrationsDir = "migrations"
