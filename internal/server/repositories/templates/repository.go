package templates

import (
	"context"

	"github.com/dmitrijs2005/satstream/internal/server/models"
)

type Repository interface {
	Upsert(ctx context.Context, t *models.StreamTemplate) error
	SelectAll(ctx context.Context) ([]models.StreamTemplate, error)
}
