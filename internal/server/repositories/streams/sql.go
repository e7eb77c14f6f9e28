// Package streams persists stream snapshots in a SQL database. Queries are
// shared by PostgreSQL and SQLite and rebound per dialect.
package streams

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/satstream/internal/dbx"
	"github.com/dmitrijs2005/satstream/internal/server/models"
)

// SQLRepository stores streams over dbx.DBTX (satisfied by *sql.DB or *sql.Tx).
type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

// NewPostgresRepository constructs a repository for a pgx-backed database.
func NewPostgresRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, dialect: dbx.Postgres}
}

// NewSQLiteRepository constructs a repository for a SQLite database.
func NewSQLiteRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db, dialect: dbx.SQLite}
}

// Upsert writes s, replacing any stored row with the same id.
func (r *SQLRepository) Upsert(ctx context.Context, s *models.Stream) error {
	query := `
		INSERT INTO streams (id, sender, recipient, sats_per_sec, start_time, end_time, status,
			total_locked, total_released, last_release_time, buffered, last_claim_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			status = excluded.status,
			total_locked = excluded.total_locked,
			total_released = excluded.total_released,
			last_release_time = excluded.last_release_time,
			buffered = excluded.buffered,
			last_claim_time = excluded.last_claim_time
	`
	_, err := r.db.ExecContext(ctx, dbx.Rebind(r.dialect, query),
		dbx.U64(s.ID), string(s.Sender), string(s.Recipient),
		dbx.U64(s.SatsPerSec), dbx.U64(s.StartTime), dbx.U64(s.EndTime), string(s.Status),
		dbx.U64(s.TotalLocked), dbx.U64(s.TotalReleased), dbx.U64(s.LastReleaseTime),
		dbx.U64(s.Buffer), dbx.U64(s.LastClaimTime),
	)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

// SelectAll returns every stored stream ordered by id.
func (r *SQLRepository) SelectAll(ctx context.Context) ([]models.Stream, error) {
	query := `
		SELECT id, sender, recipient, sats_per_sec, start_time, end_time, status,
			total_locked, total_released, last_release_time, buffered, last_claim_time
		FROM streams
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, dbx.Rebind(r.dialect, query))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Stream, 0)
	for rows.Next() {
		var (
			s                                      models.Stream
			id, rate, start, end, locked, released int64
			lastRelease, buffered, lastClaim       int64
			sender, recipient, status              string
		)
		if err := rows.Scan(&id, &sender, &recipient, &rate, &start, &end, &status,
			&locked, &released, &lastRelease, &buffered, &lastClaim); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		s.ID = dbx.FromU64(id)
		s.Sender = models.Principal(sender)
		s.Recipient = models.Principal(recipient)
		s.SatsPerSec = dbx.FromU64(rate)
		s.StartTime = dbx.FromU64(start)
		s.EndTime = dbx.FromU64(end)
		s.Status = models.StreamStatus(status)
		s.TotalLocked = dbx.FromU64(locked)
		s.TotalReleased = dbx.FromU64(released)
		s.LastReleaseTime = dbx.FromU64(lastRelease)
		s.Buffer = dbx.FromU64(buffered)
		s.LastClaimTime = dbx.FromU64(lastClaim)
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}
