// Package templates owns the StreamTemplate records. Like ledger.Ledger, a
// Registry relies on its owner for mutual exclusion.
package templates

import (
	"sort"

	"github.com/dmitrijs2005/satstream/internal/server/models"
)

type Registry struct {
	templates map[uint64]*models.StreamTemplate
	nextID    uint64
}

func NewRegistry() *Registry {
	return &Registry{templates: make(map[uint64]*models.StreamTemplate)}
}

func (r *Registry) Create(name, description string, durationSecs, satsPerSec uint64, creator models.Principal, now uint64) uint64 {
	id := r.nextID
	r.nextID++

	r.templates[id] = &models.StreamTemplate{
		ID:           id,
		Name:         name,
		Description:  description,
		DurationSecs: durationSecs,
		SatsPerSec:   satsPerSec,
		Creator:      creator,
		CreatedAt:    now,
	}
	return id
}

func (r *Registry) Get(id uint64) (models.StreamTemplate, bool) {
	t, ok := r.templates[id]
	if !ok {
		return models.StreamTemplate{}, false
	}
	return *t, true
}

// MarkUsed bumps the usage counter of a template after a successful
// instantiation.
func (r *Registry) MarkUsed(id uint64) bool {
	t, ok := r.templates[id]
	if !ok {
		return false
	}
	t.UsageCount = models.SatAdd(t.UsageCount, 1)
	return true
}

// List returns copies of all templates ordered by id.
func (r *Registry) List() []models.StreamTemplate {
	out := make([]models.StreamTemplate, 0, len(r.templates))
	for _, t := range r.templates {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *Registry) Len() int { return len(r.templates) }

func (r *Registry) NextID() uint64 { return r.nextID }

func (r *Registry) Restore(templates []models.StreamTemplate, nextID uint64) {
	r.templates = make(map[uint64]*models.StreamTemplate, len(templates))
	for i := range templates {
		t := templates[i]
		r.templates[t.ID] = &t
		if t.ID >= nextID {
			nextID = t.ID + 1
		}
	}
	r.nextID = nextID
}
