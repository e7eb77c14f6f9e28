// Package services contains server-side business logic. StreamService holds
// the operation handlers of the streaming ledger; SnapshotService persists
// its state; StatementService exports per-user statements to object storage.
package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/satstream/internal/common"
	"github.com/dmitrijs2005/satstream/internal/logging"
	"github.com/dmitrijs2005/satstream/internal/server/config"
	"github.com/dmitrijs2005/satstream/internal/server/ledger"
	"github.com/dmitrijs2005/satstream/internal/server/models"
	"github.com/dmitrijs2005/satstream/internal/server/templates"
	"github.com/dmitrijs2005/satstream/internal/timex"
)

// IdentityResolver supplies the authenticated caller of an operation.
type IdentityResolver interface {
	CurrentIdentity(ctx context.Context) (models.Principal, error)
}

// StreamService owns the stream ledger and the template registry. A single
// mutex serialises every operation and every sweep, so each call is atomic:
// it either fails before mutating anything or applies all of its effects.
type StreamService struct {
	mu        sync.Mutex
	ledger    *ledger.Ledger
	templates *templates.Registry

	identity IdentityResolver
	clock    timex.Clock
	logger   logging.Logger

	feeBasisPoints uint64
	reclaimTimeout uint64
}

func NewStreamService(l *ledger.Ledger, r *templates.Registry, id IdentityResolver, clock timex.Clock, logger logging.Logger, cfg *config.Config) *StreamService {
	return &StreamService{
		ledger:         l,
		templates:      r,
		identity:       id,
		clock:          clock,
		logger:         logger.With("module", "stream_service"),
		feeBasisPoints: cfg.FeeBasisPoints,
		reclaimTimeout: uint64(cfg.ReclaimTimeout.Seconds()),
	}
}

func (s *StreamService) caller(ctx context.Context) (models.Principal, uint64, error) {
	p, err := s.identity.CurrentIdentity(ctx)
	if err != nil {
		return "", 0, err
	}
	return p, timex.Unix(s.clock), nil
}

func notFound(id uint64) error {
	return fmt.Errorf("%w: stream %d", common.ErrorNotFound, id)
}

// CreateStream opens a stream from the caller to recipient starting now.
func (s *StreamService) CreateStream(ctx context.Context, recipient models.Principal, satsPerSec, durationSecs, totalLocked uint64) (uint64, error) {
	sender, now, err := s.caller(ctx)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	id := s.ledger.Create(sender, recipient, satsPerSec, durationSecs, totalLocked, now)
	s.mu.Unlock()

	s.logger.Info(ctx, "stream created", "stream_id", id, "sender", sender, "recipient", recipient,
		"sats_per_sec", satsPerSec, "duration_secs", durationSecs, "total_locked", totalLocked)
	return id, nil
}

// ClaimStream moves the whole buffer to the recipient.
func (s *StreamService) ClaimStream(ctx context.Context, id uint64) (uint64, error) {
	p, now, err := s.caller(ctx)
	if err != nil {
		return 0, err
	}

	var claimed uint64

	s.mu.Lock()
	found, err := s.ledger.Update(id, func(st *models.Stream) error {
		if !models.IsAuthorized(p, models.RoleRecipient, st) {
			return fmt.Errorf("%w: only the recipient can claim", common.ErrorUnauthorized)
		}
		if st.Buffer == 0 {
			return fmt.Errorf("%w: no funds to claim", common.ErrNothingToDo)
		}
		claimed = st.Buffer
		st.Buffer = 0
		st.LastClaimTime = now
		return nil
	})
	s.mu.Unlock()

	if !found {
		return 0, notFound(id)
	}
	if err != nil {
		return 0, err
	}

	s.logger.Info(ctx, "stream claimed", "stream_id", id, "amount", claimed)
	return claimed, nil
}

// TopUpStream adds amount to the locked value of an active stream. The end
// time does not move.
func (s *StreamService) TopUpStream(ctx context.Context, id uint64, amount uint64) error {
	p, _, err := s.caller(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	found, err := s.ledger.Update(id, func(st *models.Stream) error {
		if !models.IsAuthorized(p, models.RoleSender, st) {
			return fmt.Errorf("%w: only the sender can top up", common.ErrorUnauthorized)
		}
		if st.Status != models.StreamActive {
			return fmt.Errorf("%w: stream is %s", common.ErrInvalidState, st.Status)
		}
		st.TotalLocked = models.SatAdd(st.TotalLocked, amount)
		return nil
	})
	s.mu.Unlock()

	if !found {
		return notFound(id)
	}
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "stream topped up", "stream_id", id, "amount", amount)
	return nil
}

// CancelStream stops accrual and reports the refund and fee owed on the
// unreleased value. The buffer is left for the normal claim/reclaim rules.
func (s *StreamService) CancelStream(ctx context.Context, id uint64) (models.CancelResult, error) {
	p, _, err := s.caller(ctx)
	if err != nil {
		return models.CancelResult{}, err
	}

	var res models.CancelResult

	s.mu.Lock()
	found, err := s.ledger.Update(id, func(st *models.Stream) error {
		if !models.IsAuthorized(p, models.RoleSender, st) {
			return fmt.Errorf("%w: only the sender can cancel", common.ErrorUnauthorized)
		}
		if st.Status != models.StreamActive {
			return fmt.Errorf("%w: stream is %s", common.ErrInvalidState, st.Status)
		}
		unused := st.Unused()
		res.Fee = models.Fee(unused, s.feeBasisPoints)
		res.Refund = unused - res.Fee
		st.Status = models.StreamCancelled
		return nil
	})
	s.mu.Unlock()

	if !found {
		return models.CancelResult{}, notFound(id)
	}
	if err != nil {
		return models.CancelResult{}, err
	}

	s.logger.Info(ctx, "stream cancelled", "stream_id", id, "refund", res.Refund, "fee", res.Fee)
	return res, nil
}

// ReclaimUnclaimed returns the buffer to the sender once the recipient has
// been inactive for the reclaim timeout past max(end time, last claim).
func (s *StreamService) ReclaimUnclaimed(ctx context.Context, id uint64) (uint64, error) {
	p, now, err := s.caller(ctx)
	if err != nil {
		return 0, err
	}

	var reclaimed uint64

	s.mu.Lock()
	found, err := s.ledger.Update(id, func(st *models.Stream) error {
		if !models.IsAuthorized(p, models.RoleSender, st) {
			return fmt.Errorf("%w: only the sender can reclaim", common.ErrorUnauthorized)
		}
		if st.Buffer == 0 {
			return fmt.Errorf("%w: no unclaimed funds to reclaim", common.ErrNothingToDo)
		}
		deadline := models.SatAdd(max(st.EndTime, st.LastClaimTime), s.reclaimTimeout)
		if now < deadline {
			return fmt.Errorf("%w: %d seconds left", common.ErrTimeoutNotReached, deadline-now)
		}
		reclaimed = st.Buffer
		st.Buffer = 0
		return nil
	})
	s.mu.Unlock()

	if !found {
		return 0, notFound(id)
	}
	if err != nil {
		return 0, err
	}

	s.logger.Info(ctx, "unclaimed funds reclaimed", "stream_id", id, "amount", reclaimed)
	return reclaimed, nil
}

// GetStream returns a copy of the stream, if it exists.
func (s *StreamService) GetStream(ctx context.Context, id uint64) (models.Stream, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Get(id)
}

// ListStreamsForUser returns the caller's streams in unspecified order.
func (s *StreamService) ListStreamsForUser(ctx context.Context) ([]models.Stream, error) {
	p, err := s.identity.CurrentIdentity(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.ListFor(p), nil
}

// Tick is the scheduler hook: it runs the accrual sweep at the current time.
func (s *StreamService) Tick(ctx context.Context) ledger.SweepResult {
	now := timex.Unix(s.clock)

	s.mu.Lock()
	res := s.ledger.Sweep(now)
	s.mu.Unlock()

	if res.Advanced > 0 {
		s.logger.Debug(ctx, "accrual sweep", "now", now, "advanced", res.Advanced, "released", res.Released)
	}
	for _, id := range res.Completed {
		s.logger.Info(ctx, "stream completed", "stream_id", id)
	}
	return res
}
