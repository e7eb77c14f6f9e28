package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/satstream/internal/dbx"
	"github.com/dmitrijs2005/satstream/internal/logging"
	"github.com/dmitrijs2005/satstream/internal/server/models"
	"github.com/dmitrijs2005/satstream/internal/server/repositories/repomanager"
)

// SnapshotSource is the in-memory state that gets persisted.
type SnapshotSource interface {
	Snapshot() models.Snapshot
	Restore(models.Snapshot)
}

// SnapshotService copies the ledger to and from the snapshot store.
type SnapshotService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	source      SnapshotSource
	logger      logging.Logger
}

func NewSnapshotService(db *sql.DB, rm repomanager.RepositoryManager, source SnapshotSource, logger logging.Logger) *SnapshotService {
	return &SnapshotService{db: db, repomanager: rm, source: source, logger: logger.With("module", "snapshot_service")}
}

// Save writes every stream and template in one transaction.
func (s *SnapshotService) Save(ctx context.Context) error {
	snap := s.source.Snapshot()

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		streamsRepo := s.repomanager.Streams(tx)
		for i := range snap.Streams {
			if err := streamsRepo.Upsert(ctx, &snap.Streams[i]); err != nil {
				return fmt.Errorf("save stream %d: %w", snap.Streams[i].ID, err)
			}
		}
		templatesRepo := s.repomanager.Templates(tx)
		for i := range snap.Templates {
			if err := templatesRepo.Upsert(ctx, &snap.Templates[i]); err != nil {
				return fmt.Errorf("save template %d: %w", snap.Templates[i].ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug(ctx, "snapshot saved", "streams", len(snap.Streams), "templates", len(snap.Templates))
	return nil
}

// Load reads the stored state and restores it into the source. Next ids
// continue after the highest stored id.
func (s *SnapshotService) Load(ctx context.Context) error {
	streams, err := s.repomanager.Streams(s.db).SelectAll(ctx)
	if err != nil {
		return fmt.Errorf("load streams: %w", err)
	}
	templates, err := s.repomanager.Templates(s.db).SelectAll(ctx)
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	snap := models.Snapshot{Streams: streams, Templates: templates}
	for _, st := range streams {
		snap.NextStreamID = max(snap.NextStreamID, st.ID+1)
	}
	for _, t := range templates {
		snap.NextTemplateID = max(snap.NextTemplateID, t.ID+1)
	}
	s.source.Restore(snap)

	s.logger.Info(ctx, "snapshot loaded", "streams", len(streams), "templates", len(templates))
	return nil
}
