// Package monitor detects window lifecycle events by polling. The
// backend offers no push channel, so the monitor re-enumerates at a
// fixed period and reports id-set differences.
package monitor

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"winctl/internal/model"
)

// EventType classifies a monitor emission.
type EventType string

const (
	// EventSnapshot is the initial baseline observation.
	EventSnapshot EventType = "snapshot"
	// EventAppeared is a window id present now but not before.
	EventAppeared EventType = "appeared"
	// EventDisappeared is a window id present before but not now.
	EventDisappeared EventType = "disappeared"
)

// Event is one monitor observation. Appeared events carry a resolved
// record; disappeared windows can no longer be queried, so they are
// reported by id alone.
type Event struct {
	Type   EventType           `json:"type"`
	TS     int64               `json:"ts"`
	Count  int                 `json:"count,omitempty"`
	ID     model.WindowID      `json:"id,omitempty"`
	Window *model.WindowRecord `json:"window,omitempty"`
}

// Source is the directory surface the monitor needs.
type Source interface {
	Snapshot() ([]model.WindowID, error)
	Resolve(id model.WindowID) model.WindowRecord
}

// Monitor polls a Source and emits lifecycle events until cancelled.
type Monitor struct {
	src      Source
	interval time.Duration
	log      zerolog.Logger
}

func New(src Source, interval time.Duration, log zerolog.Logger) *Monitor {
	if interval <= 0 {
		interval = time.Second
	}
	return &Monitor{src: src, interval: interval, log: log}
}

// Run takes the baseline snapshot, emits it as the initial
// observation, then loops: sleep, re-snapshot, emit one event per
// appeared and disappeared id, replace the baseline. Each iteration is
// read-only, so cancellation between iterations needs no cleanup.
func (m *Monitor) Run(ctx context.Context, emit func(Event)) error {
	baseline, err := m.src.Snapshot()
	if err != nil {
		return err
	}
	emit(Event{Type: EventSnapshot, TS: time.Now().Unix(), Count: len(baseline)})
	m.log.Debug().Int("windows", len(baseline)).Msg("monitor baseline")

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		current, err := m.src.Snapshot()
		if err != nil {
			// Transient enumeration failure; keep the old baseline and
			// try again next tick.
			m.log.Debug().Err(err).Msg("monitor snapshot failed")
			continue
		}

		appeared, disappeared := model.Diff(baseline, current)
		now := time.Now().Unix()
		for _, id := range appeared {
			rec := m.src.Resolve(id)
			emit(Event{Type: EventAppeared, TS: now, ID: id, Window: &rec})
		}
		for _, id := range disappeared {
			emit(Event{Type: EventDisappeared, TS: now, ID: id})
		}
		baseline = current
	}
}
