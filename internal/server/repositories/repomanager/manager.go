package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/satstream/internal/dbx"
	"github.com/dmitrijs2005/satstream/internal/server/repositories/streams"
	"github.com/dmitrijs2005/satstream/internal/server/repositories/templates"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Streams(db dbx.DBTX) streams.Repository
	Templates(db dbx.DBTX) templates.Repository
}
