package backend

import "fmt"

// Null stands in for the primary backend when the session bus cannot
// be reached. Enumeration falls through to the next source in the
// chain; every property query degrades to unavailable; actions fail.
type Null struct{}

func (Null) Name() string                      { return "null" }
func (Null) ListWindowIDs() ([]string, error)  { return nil, ErrBackendUnavailable }
func (Null) Class(string) (string, error)      { return "", ErrUnavailable }
func (Null) Title(string) (string, error)      { return "", ErrUnavailable }
func (Null) Desktop(string) (int, error)       { return 0, ErrUnavailable }
func (Null) Geometry(string) (string, error)   { return "", ErrUnavailable }
func (Null) Minimized(string) (bool, error)    { return false, ErrUnavailable }
func (Null) Maximized(string) (bool, error)    { return false, ErrUnavailable }
func (Null) Fullscreen(string) (bool, error)   { return false, ErrUnavailable }
func (Null) Activate(string) error             { return errNoPrimary("activate") }
func (Null) Minimize(string) error             { return errNoPrimary("minimize") }
func (Null) Unminimize(string) error           { return errNoPrimary("unminimize") }
func (Null) Maximize(string) error             { return errNoPrimary("maximize") }
func (Null) SetFullscreen(string, bool) error  { return errNoPrimary("fullscreen") }
func (Null) Close(string) error                { return errNoPrimary("close") }

func errNoPrimary(action string) error {
	return fmt.Errorf("%s: compositor backend unavailable", action)
}
