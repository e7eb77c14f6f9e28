package services

import (
	"context"

	"github.com/dmitrijs2005/satstream/internal/server/models"
)

// UserStats summarises the caller's outgoing and incoming streams.
func (s *StreamService) UserStats(ctx context.Context) (models.UserStats, error) {
	p, err := s.identity.CurrentIdentity(ctx)
	if err != nil {
		return models.UserStats{}, err
	}

	s.mu.Lock()
	streams := s.ledger.ListFor(p)
	s.mu.Unlock()

	var st models.UserStats
	for i := range streams {
		str := &streams[i]
		active := str.Status == models.StreamActive
		if models.IsAuthorized(p, models.RoleSender, str) {
			st.StreamsSent++
			if active {
				st.ActiveSent++
			}
			st.TotalLockedOutgoing = models.SatAdd(st.TotalLockedOutgoing, str.TotalLocked)
			st.TotalReleasedOutgoing = models.SatAdd(st.TotalReleasedOutgoing, str.TotalReleased)
		}
		if models.IsAuthorized(p, models.RoleRecipient, str) {
			st.StreamsReceived++
			if active {
				st.ActiveReceived++
			}
			st.ClaimableIncoming = models.SatAdd(st.ClaimableIncoming, str.Buffer)
		}
	}
	return st, nil
}

// GlobalStats summarises the whole ledger.
func (s *StreamService) GlobalStats(ctx context.Context) models.GlobalStats {
	s.mu.Lock()
	streams := s.ledger.All()
	templateCount := s.templates.Len()
	s.mu.Unlock()

	st := models.GlobalStats{
		TotalStreams:   uint64(len(streams)),
		TotalTemplates: uint64(templateCount),
	}
	for i := range streams {
		str := &streams[i]
		switch str.Status {
		case models.StreamActive:
			st.Active++
		case models.StreamCompleted:
			st.Completed++
		case models.StreamCancelled:
			st.Cancelled++
		}
		st.TotalLocked = models.SatAdd(st.TotalLocked, str.TotalLocked)
		st.TotalReleased = models.SatAdd(st.TotalReleased, str.TotalReleased)
		st.TotalBuffered = models.SatAdd(st.TotalBuffered, str.Buffer)
	}
	return st
}

// Snapshot returns a consistent copy of the ledger and the registry.
func (s *StreamService) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.Snapshot{
		Streams:        s.ledger.All(),
		Templates:      s.templates.List(),
		NextStreamID:   s.ledger.NextID(),
		NextTemplateID: s.templates.NextID(),
	}
}

// Restore replaces all state with snap. It is meant for startup, before the
// service takes traffic.
func (s *StreamService) Restore(snap models.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger.Restore(snap.Streams, snap.NextStreamID)
	s.templates.Restore(snap.Templates, snap.NextTemplateID)
}
