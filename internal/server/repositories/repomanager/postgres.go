// Package repomanager provides concrete RepositoryManagers for PostgreSQL and
// SQLite, wiring together repository constructors and database migrations
// (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/satstream/internal/dbx"
	"github.com/dmitrijs2005/satstream/internal/server/migrations"
	"github.com/dmitrijs2005/satstream/internal/server/repositories/streams"
	"github.com/dmitrijs2005/satstream/internal/server/repositories/templates"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// Streams returns a streams.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Streams(db dbx.DBTX) streams.Repository {
	return streams.NewPostgresRepository(db)
}

// Templates returns a templates.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Templates(db dbx.DBTX) templates.Repository {
	return templates.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db, "pgx")
}

func runMigrations(ctx context.Context, db *sql.DB, dialect string) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager(db *sql.DB) (RepositoryManager, error) {
	return &PostgresRepositoryManager{}, nil
}
