// Package toggle decides, for a saved application, whether to launch,
// activate, or minimize it based on observed window state.
package toggle

import (
	"github.com/rs/zerolog"

	"winctl/internal/directory"
	"winctl/internal/model"
	"winctl/internal/registry"
)

// Apps is the registry surface the engine needs.
type Apps interface {
	Find(name string) (registry.SavedApp, error)
}

// Windows supplies the current window state.
type Windows interface {
	Find(q directory.Query) ([]model.WindowRecord, error)
}

// Actions is the executor surface the engine needs.
type Actions interface {
	Activate(id model.WindowID) error
	Minimize(id model.WindowID) error
	Unminimize(id model.WindowID) error
}

// Launcher starts an application from its desktop entry.
type Launcher interface {
	Launch(desktopFile string) error
}

// Action names the branch the engine took.
type Action string

const (
	ActionLaunched  Action = "launched"
	ActionActivated Action = "activated"
	ActionMinimized Action = "minimized"
)

// Result reports what LaunchOrToggle did.
type Result struct {
	App      string         `yaml:"app"                 json:"app"`
	Action   Action         `yaml:"action"              json:"action"`
	WindowID model.WindowID `yaml:"window_id,omitempty" json:"window_id,omitempty"`
}

// Engine composes registry, directory, executor and launcher.
type Engine struct {
	apps     Apps
	windows  Windows
	actions  Actions
	launcher Launcher
	log      zerolog.Logger
}

func NewEngine(apps Apps, windows Windows, actions Actions, launcher Launcher, log zerolog.Logger) *Engine {
	return &Engine{apps: apps, windows: windows, actions: actions, launcher: launcher, log: log}
}

// LaunchOrToggle resolves name through the registry and scans fresh
// window state for the first record whose class exactly equals the
// saved class (exact, not substring; later same-class siblings are
// ignored). A minimized match is unminimized and activated; a visible
// match is minimized, so a second invocation hides what the first
// revealed. With no match the stored desktop entry is launched.
// Maximized and fullscreen state play no part in the decision.
func (e *Engine) LaunchOrToggle(name string) (Result, error) {
	app, err := e.apps.Find(name)
	if err != nil {
		return Result{}, err
	}

	records, err := e.windows.Find(directory.Query{})
	if err != nil {
		// Enumeration failure degrades to "no windows found": fall
		// through to launch.
		e.log.Debug().Err(err).Msg("window scan failed, treating as no match")
		records = nil
	}

	for _, rec := range records {
		if !rec.Class.Known || rec.Class.Value != app.Class {
			continue
		}
		if rec.Minimized.Or(false) {
			if err := e.actions.Unminimize(rec.ID); err != nil {
				return Result{}, err
			}
			if err := e.actions.Activate(rec.ID); err != nil {
				return Result{}, err
			}
			e.log.Info().Str("app", name).Str("id", string(rec.ID)).Msg("activated")
			return Result{App: name, Action: ActionActivated, WindowID: rec.ID}, nil
		}
		if err := e.actions.Minimize(rec.ID); err != nil {
			return Result{}, err
		}
		e.log.Info().Str("app", name).Str("id", string(rec.ID)).Msg("minimized")
		return Result{App: name, Action: ActionMinimized, WindowID: rec.ID}, nil
	}

	if err := e.launcher.Launch(app.DesktopFile); err != nil {
		return Result{}, err
	}
	e.log.Info().Str("app", name).Str("entry", app.DesktopFile).Msg("launched")
	return Result{App: name, Action: ActionLaunched}, nil
}
