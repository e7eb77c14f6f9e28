package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/satstream/internal/dbx"
	"github.com/dmitrijs2005/satstream/internal/server/repositories/streams"
	"github.com/dmitrijs2005/satstream/internal/server/repositories/templates"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager vends SQLite-backed repositories. It is meant for
// single-node deployments and tests.
type SQLiteRepositoryManager struct{}

func (m *SQLiteRepositoryManager) Streams(db dbx.DBTX) streams.Repository {
	return streams.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Templates(db dbx.DBTX) templates.Repository {
	return templates.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, db, "sqlite3")
}

func NewSQLiteRepositoryManager(db *sql.DB) (RepositoryManager, error) {
	return &SQLiteRepositoryManager{}, nil
}
