// Package backend talks to the compositor. The primary source is the
// GNOME Shell window-introspection extension on the session D-Bus;
// xdotool and wmctrl serve as enumeration fallbacks when the primary
// returns nothing.
package backend

import "errors"

var (
	// ErrBackendUnavailable means no enumeration source produced data.
	ErrBackendUnavailable = errors.New("no window enumeration source available")

	// ErrUnavailable means a single property query failed. Callers
	// degrade the affected field rather than aborting.
	ErrUnavailable = errors.New("window property unavailable")
)

// Enumerator returns the full set of window ids known to one source.
type Enumerator interface {
	ListWindowIDs() ([]string, error)
	Name() string
}

// Inspector reads per-window properties. Property queries always go to
// the primary source; a failed call returns ErrUnavailable and is not
// retried.
type Inspector interface {
	Class(id string) (string, error)
	Title(id string) (string, error)
	Desktop(id string) (int, error)
	Geometry(id string) (string, error)
	Minimized(id string) (bool, error)
	Maximized(id string) (bool, error)
	Fullscreen(id string) (bool, error)
}

// Controller issues state-changing commands against a window id. Calls
// are fire-and-forget: success means the compositor accepted the
// command, not that the state change is confirmed.
type Controller interface {
	Activate(id string) error
	Minimize(id string) error
	Unminimize(id string) error
	Maximize(id string) error
	SetFullscreen(id string, on bool) error
	Close(id string) error
}
