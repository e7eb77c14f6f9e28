package repomanager

import (
	"database/sql"
	"fmt"
	"strings"
)

// sqlOpen is a seam for testing sql.Open.
var sqlOpen = sql.Open

// Open connects to the database named by dsn and returns a matching manager.
//
//	postgres://... or postgresql://...  pgx
//	sqlite://<path>                     SQLite file at <path>
//	file:...                            SQLite URI, passed through
func Open(dsn string) (*sql.DB, RepositoryManager, error) {
	var (
		driver string
		source string
	)
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		driver, source = "pgx", dsn
	case strings.HasPrefix(dsn, "sqlite://"):
		driver, source = "sqlite", strings.TrimPrefix(dsn, "sqlite://")
	case strings.HasPrefix(dsn, "file:"):
		driver, source = "sqlite", dsn
	default:
		return nil, nil, fmt.Errorf("unsupported database dsn %q", dsn)
	}

	db, err := sqlOpen(driver, source)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", driver, err)
	}

	var m RepositoryManager
	if driver == "pgx" {
		m, err = NewPostgresRepositoryManager(db)
	} else {
		// SQLite allows one writer; a single connection also keeps
		// in-memory databases alive for the lifetime of db.
		db.SetMaxOpenConns(1)
		m, err = NewSQLiteRepositoryManager(db)
	}
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return db, m, nil
}
