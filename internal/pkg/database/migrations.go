package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/somanmedha/banking-application/internal/pkg/logging"
)

const PgxDriverName = "pgx"

// MigrateDatabase applies every pending migration found at the root of
// migrations. It keeps no goose global state, so several databases can be
// migrated at once.
func MigrateDatabase(ctx context.Context, databaseUrl string, migrations fs.FS, logger logging.Logger) error {
	db, err := sql.Open(PgxDriverName, databaseUrl)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	for _, result := range results {
		logger.Info("migration applied",
			"version", result.Source.Version,
			"path", result.Source.Path,
			"duration", result.Duration.String(),
		)
	}

	return nil
}
