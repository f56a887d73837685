// Package directory builds point-in-time window snapshots on top of
// the query backend and resolves per-window attributes on demand.
package directory

import (
	"strings"

	"github.com/rs/zerolog"

	"winctl/internal/backend"
	"winctl/internal/model"
)

// Query selects windows by case-sensitive substring match. Class and
// Title each match their own field; Any matches class OR title. Empty
// fields do not constrain.
type Query struct {
	Class string
	Title string
	Any   string
}

// Directory resolves window state from the backend. Nothing is cached
// across calls: every Snapshot re-enumerates and every Resolve
// re-queries each attribute.
type Directory struct {
	enum backend.Enumerator
	insp backend.Inspector
	log  zerolog.Logger
}

func New(enum backend.Enumerator, insp backend.Inspector, log zerolog.Logger) *Directory {
	return &Directory{enum: enum, insp: insp, log: log}
}

// Snapshot captures the ordered id set at this instant.
func (d *Directory) Snapshot() ([]model.WindowID, error) {
	raw, err := d.enum.ListWindowIDs()
	if err != nil {
		return nil, err
	}
	ids := make([]model.WindowID, len(raw))
	for i, id := range raw {
		ids[i] = model.WindowID(id)
	}
	return ids, nil
}

// Resolve fetches each attribute independently. A failed query leaves
// the field unavailable; it never aborts the record. Attributes may
// disagree in freshness with each other within one call.
func (d *Directory) Resolve(id model.WindowID) model.WindowRecord {
	rec := model.WindowRecord{ID: id}
	wid := string(id)

	if v, err := d.insp.Class(wid); err == nil {
		rec.Class = model.Some(v)
	}
	if v, err := d.insp.Title(wid); err == nil {
		rec.Title = model.Some(v)
	}
	if v, err := d.insp.Desktop(wid); err == nil {
		rec.Desktop = model.Some(v)
	}
	if v, err := d.insp.Geometry(wid); err == nil {
		rec.Geometry = model.Some(v)
	}
	if v, err := d.insp.Minimized(wid); err == nil {
		rec.Minimized = model.Some(v)
	}
	if v, err := d.insp.Maximized(wid); err == nil {
		rec.Maximized = model.Some(v)
	}
	if v, err := d.insp.Fullscreen(wid); err == nil {
		rec.Fullscreen = model.Some(v)
	}
	return rec
}

// Find materializes a fresh snapshot, resolves every window and
// filters by q. Windows with neither class nor title are excluded.
func (d *Directory) Find(q Query) ([]model.WindowRecord, error) {
	ids, err := d.Snapshot()
	if err != nil {
		return nil, err
	}

	var out []model.WindowRecord
	for _, id := range ids {
		rec := d.Resolve(id)
		if !rec.Identified() {
			continue
		}
		if matches(rec, q) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func matches(rec model.WindowRecord, q Query) bool {
	if q.Any != "" {
		return strings.Contains(rec.Class.Or(""), q.Any) ||
			strings.Contains(rec.Title.Or(""), q.Any)
	}
	if q.Class != "" && !strings.Contains(rec.Class.Or(""), q.Class) {
		return false
	}
	if q.Title != "" && !strings.Contains(rec.Title.Or(""), q.Title) {
		return false
	}
	return true
}
