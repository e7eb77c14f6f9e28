package streams

import (
	"context"

	"github.com/dmitrijs2005/satstream/internal/server/models"
)

type Repository interface {
	Upsert(ctx context.Context, s *models.Stream) error
	SelectAll(ctx context.Context) ([]models.Stream, error)
}
