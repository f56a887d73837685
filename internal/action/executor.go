// Package action issues state-changing commands against a window id.
package action

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"winctl/internal/backend"
	"winctl/internal/model"
)

// ErrWindowNotFound means the referenced id was absent from a fresh
// enumeration; no compositor call was made.
var ErrWindowNotFound = errors.New("window not found")

// Executor validates ids against a fresh enumeration before
// delegating to the controller. Actions are fire-and-forget and never
// retried; the controller's own error is the only success signal.
type Executor struct {
	enum backend.Enumerator
	ctl  backend.Controller
	log  zerolog.Logger
}

func NewExecutor(enum backend.Enumerator, ctl backend.Controller, log zerolog.Logger) *Executor {
	return &Executor{enum: enum, ctl: ctl, log: log}
}

func (e *Executor) Activate(id model.WindowID) error {
	return e.perform(id, "activate", e.ctl.Activate)
}

func (e *Executor) Minimize(id model.WindowID) error {
	return e.perform(id, "minimize", e.ctl.Minimize)
}

func (e *Executor) Unminimize(id model.WindowID) error {
	return e.perform(id, "unminimize", e.ctl.Unminimize)
}

func (e *Executor) Maximize(id model.WindowID) error {
	return e.perform(id, "maximize", e.ctl.Maximize)
}

func (e *Executor) Close(id model.WindowID) error {
	return e.perform(id, "close", e.ctl.Close)
}

// SetFullscreen is a setter, not a toggle: callers wanting toggle
// semantics read the current state first and pass the negation.
func (e *Executor) SetFullscreen(id model.WindowID, on bool) error {
	return e.perform(id, "fullscreen", func(wid string) error {
		return e.ctl.SetFullscreen(wid, on)
	})
}

func (e *Executor) perform(id model.WindowID, name string, fn func(string) error) error {
	if err := e.check(id); err != nil {
		return err
	}
	e.log.Debug().Str("id", string(id)).Str("action", name).Msg("window action")
	return fn(string(id))
}

func (e *Executor) check(id model.WindowID) error {
	ids, err := e.enum.ListWindowIDs()
	if err != nil {
		return err
	}
	for _, known := range ids {
		if known == string(id) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrWindowNotFound, id)
}
