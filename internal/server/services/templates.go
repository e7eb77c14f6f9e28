package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/satstream/internal/common"
	"github.com/dmitrijs2005/satstream/internal/server/models"
)

// CreateTemplate saves a rate/duration bundle owned by the caller.
func (s *StreamService) CreateTemplate(ctx context.Context, name, description string, durationSecs, satsPerSec uint64) (uint64, error) {
	creator, now, err := s.caller(ctx)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	id := s.templates.Create(name, description, durationSecs, satsPerSec, creator, now)
	s.mu.Unlock()

	s.logger.Info(ctx, "template created", "template_id", id, "name", name)
	return id, nil
}

// CreateStreamFromTemplate opens a stream from the caller using the
// template's rate and duration. An unknown template is reported as
// common.ErrorNotFound and leaves every usage counter untouched.
func (s *StreamService) CreateStreamFromTemplate(ctx context.Context, templateID uint64, recipient models.Principal, totalLocked uint64) (uint64, error) {
	sender, now, err := s.caller(ctx)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	tpl, ok := s.templates.Get(templateID)
	if !ok {
		s.mu.Unlock()
		return 0, fmt.Errorf("%w: template %d", common.ErrorNotFound, templateID)
	}
	id := s.ledger.Create(sender, recipient, tpl.SatsPerSec, tpl.DurationSecs, totalLocked, now)
	s.templates.MarkUsed(templateID)
	s.mu.Unlock()

	s.logger.Info(ctx, "stream created from template", "template_id", templateID, "stream_id", id)
	return id, nil
}

// ListTemplates returns copies of all templates.
func (s *StreamService) ListTemplates(ctx context.Context) []models.StreamTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.templates.List()
}
