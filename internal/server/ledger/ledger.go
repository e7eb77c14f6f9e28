// Package ledger owns every Stream record and advances accrual over time.
//
// A Ledger is not safe for concurrent use. Its owner (services.StreamService)
// serialises every call behind one mutex, so each operation and each sweep
// runs to completion before the next one starts.
package ledger

import (
	"sort"

	"github.com/dmitrijs2005/satstream/internal/server/models"
)

type Ledger struct {
	streams map[uint64]*models.Stream
	nextID  uint64
}

func New() *Ledger {
	return &Ledger{streams: make(map[uint64]*models.Stream)}
}

// Create allocates the next id and records an active stream starting at now.
// No argument is validated: zero rates, durations and amounts are accepted.
func (l *Ledger) Create(sender, recipient models.Principal, satsPerSec, durationSecs, totalLocked, now uint64) uint64 {
	id := l.nextID
	l.nextID++

	l.streams[id] = &models.Stream{
		ID:              id,
		Sender:          sender,
		Recipient:       recipient,
		SatsPerSec:      satsPerSec,
		StartTime:       now,
		EndTime:         models.SatAdd(now, durationSecs),
		TotalLocked:     totalLocked,
		LastReleaseTime: now,
		LastClaimTime:   now,
		Status:          models.StreamActive,
	}

	return id
}

// Get returns a copy of the stream with the given id.
func (l *Ledger) Get(id uint64) (models.Stream, bool) {
	s, ok := l.streams[id]
	if !ok {
		return models.Stream{}, false
	}
	return *s, true
}

// Update runs fn against the live record. fn must check its preconditions
// before touching the record and return an error without mutating anything
// when they fail. Update reports false if the id is unknown.
func (l *Ledger) Update(id uint64, fn func(s *models.Stream) error) (bool, error) {
	s, ok := l.streams[id]
	if !ok {
		return false, nil
	}
	return true, fn(s)
}

// ListFor returns copies of all streams where p is sender or recipient.
// The order is unspecified.
func (l *Ledger) ListFor(p models.Principal) []models.Stream {
	out := make([]models.Stream, 0)
	for _, s := range l.streams {
		if models.Involves(p, s) {
			out = append(out, *s)
		}
	}
	return out
}

// All returns copies of every stream ordered by id.
func (l *Ledger) All() []models.Stream {
	out := make([]models.Stream, 0, len(l.streams))
	for _, s := range l.streams {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (l *Ledger) Len() int { return len(l.streams) }

func (l *Ledger) NextID() uint64 { return l.nextID }

// Restore replaces the ledger content. nextID is raised above every restored
// id if needed.
func (l *Ledger) Restore(streams []models.Stream, nextID uint64) {
	l.streams = make(map[uint64]*models.Stream, len(streams))
	for i := range streams {
		s := streams[i]
		l.streams[s.ID] = &s
		if s.ID >= nextID {
			nextID = s.ID + 1
		}
	}
	l.nextID = nextID
}
