// Package templates persists stream templates in a SQL database.
package templates

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/satstream/internal/dbx"
	"github.com/dmitrijs2005/satstream/internal/server/models"
)

type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewPostgresRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, dialect: dbx.Postgres}
}

func NewSQLiteRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, dialect: dbx.SQLite}
}

// Upsert writes t. Only the usage counter changes after creation.
func (r *SQLRepository) Upsert(ctx context.Context, t *models.StreamTemplate) error {
	query := `
		INSERT INTO stream_templates (id, name, description, duration_secs, sats_per_sec, creator, created_at, usage_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET usage_count = excluded.usage_count
	`
	_, err := r.db.ExecContext(ctx, dbx.Rebind(r.dialect, query),
		dbx.U64(t.ID), t.Name, t.Description, dbx.U64(t.DurationSecs), dbx.U64(t.SatsPerSec),
		string(t.Creator), dbx.U64(t.CreatedAt), dbx.U64(t.UsageCount),
	)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

func (r *SQLRepository) SelectAll(ctx context.Context) ([]models.StreamTemplate, error) {
	query := `
		SELECT id, name, description, duration_secs, sats_per_sec, creator, created_at, usage_count
		FROM stream_templates
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, dbx.Rebind(r.dialect, query))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.StreamTemplate, 0)
	for rows.Next() {
		var (
			t                                  models.StreamTemplate
			id, duration, rate, created, usage int64
			creator                            string
		)
		if err := rows.Scan(&id, &t.Name, &t.Description, &duration, &rate, &creator, &created, &usage); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		t.ID = dbx.FromU64(id)
		t.DurationSecs = dbx.FromU64(duration)
		t.SatsPerSec = dbx.FromU64(rate)
		t.Creator = models.Principal(creator)
		t.CreatedAt = dbx.FromU64(created)
		t.UsageCount = dbx.FromU64(usage)
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}
