package backend

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog"
)

// D-Bus endpoints of the window-introspection shell extension.
const (
	shellDest  = "org.gnome.Shell"
	shellPath  = "/org/gnome/Shell/Extensions/Windows"
	shellIface = "org.gnome.Shell.Extensions.Windows"
)

// Shell is the primary backend: window enumeration, property queries
// and window actions through the compositor's D-Bus extension.
type Shell struct {
	obj dbus.BusObject
	log zerolog.Logger
}

// NewShell connects to the session bus. The connection itself does not
// verify the extension is installed; a missing extension surfaces as
// empty enumerations and unavailable properties.
func NewShell(log zerolog.Logger) (*Shell, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("session bus: %w", err)
	}
	return &Shell{
		obj: conn.Object(shellDest, shellPath),
		log: log,
	}, nil
}

func (s *Shell) Name() string { return "shell" }

// ListWindowIDs asks the extension for the full window list. The
// extension answers with a JSON array of window objects; only the ids
// are kept, stringified in decimal.
func (s *Shell) ListWindowIDs() ([]string, error) {
	var raw string
	if err := s.call("List").Store(&raw); err != nil {
		s.log.Debug().Err(err).Msg("shell window list failed")
		return nil, fmt.Errorf("shell list: %w", err)
	}

	ids, err := parseWindowList(raw)
	if err != nil {
		return nil, fmt.Errorf("shell list: %w", err)
	}
	return ids, nil
}

// parseWindowList extracts ids from the extension's JSON window array.
func parseWindowList(raw string) ([]string, error) {
	var windows []struct {
		ID uint64 `json:"id"`
	}
	if err := json.Unmarshal([]byte(raw), &windows); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	ids := make([]string, 0, len(windows))
	for _, w := range windows {
		ids = append(ids, strconv.FormatUint(w.ID, 10))
	}
	return ids, nil
}

func (s *Shell) Class(id string) (string, error) {
	return s.stringProp("GetClass", id)
}

func (s *Shell) Title(id string) (string, error) {
	return s.stringProp("GetTitle", id)
}

func (s *Shell) Desktop(id string) (int, error) {
	wid, err := parseID(id)
	if err != nil {
		return 0, ErrUnavailable
	}
	var ws int32
	if err := s.call("GetWorkspace", wid).Store(&ws); err != nil {
		return 0, ErrUnavailable
	}
	return int(ws), nil
}

// Geometry returns the frame rectangle in X geometry notation
// (WxH+X+Y).
func (s *Shell) Geometry(id string) (string, error) {
	wid, err := parseID(id)
	if err != nil {
		return "", ErrUnavailable
	}
	var raw string
	if err := s.call("GetFrameRect", wid).Store(&raw); err != nil {
		return "", ErrUnavailable
	}
	var rect struct {
		X      int `json:"x"`
		Y      int `json:"y"`
		Width  int `json:"width"`
		Height int `json:"height"`
	}
	if err := json.Unmarshal([]byte(raw), &rect); err != nil {
		return "", ErrUnavailable
	}
	return fmt.Sprintf("%dx%d%+d%+d", rect.Width, rect.Height, rect.X, rect.Y), nil
}

func (s *Shell) Minimized(id string) (bool, error) {
	return s.boolProp("IsMinimized", id)
}

func (s *Shell) Maximized(id string) (bool, error) {
	return s.boolProp("IsMaximized", id)
}

func (s *Shell) Fullscreen(id string) (bool, error) {
	return s.boolProp("IsFullscreen", id)
}

func (s *Shell) Activate(id string) error   { return s.action("Activate", id) }
func (s *Shell) Minimize(id string) error   { return s.action("Minimize", id) }
func (s *Shell) Unminimize(id string) error { return s.action("Unminimize", id) }
func (s *Shell) Maximize(id string) error   { return s.action("Maximize", id) }
func (s *Shell) Close(id string) error      { return s.action("Close", id) }

func (s *Shell) SetFullscreen(id string, on bool) error {
	wid, err := parseID(id)
	if err != nil {
		return fmt.Errorf("shell SetFullscreen: bad window id %q", id)
	}
	if err := s.call("SetFullscreen", wid, on).Err; err != nil {
		return fmt.Errorf("shell SetFullscreen %s: %w", id, err)
	}
	return nil
}

func (s *Shell) call(member string, args ...interface{}) *dbus.Call {
	return s.obj.Call(shellIface+"."+member, 0, args...)
}

func (s *Shell) stringProp(member, id string) (string, error) {
	wid, err := parseID(id)
	if err != nil {
		return "", ErrUnavailable
	}
	var v string
	if err := s.call(member, wid).Store(&v); err != nil {
		s.log.Debug().Err(err).Str("id", id).Str("member", member).Msg("property query failed")
		return "", ErrUnavailable
	}
	return v, nil
}

func (s *Shell) boolProp(member, id string) (bool, error) {
	wid, err := parseID(id)
	if err != nil {
		return false, ErrUnavailable
	}
	var v bool
	if err := s.call(member, wid).Store(&v); err != nil {
		s.log.Debug().Err(err).Str("id", id).Str("member", member).Msg("property query failed")
		return false, ErrUnavailable
	}
	return v, nil
}

func (s *Shell) action(member, id string) error {
	wid, err := parseID(id)
	if err != nil {
		return fmt.Errorf("shell %s: bad window id %q", member, id)
	}
	if err := s.call(member, wid).Err; err != nil {
		return fmt.Errorf("shell %s %s: %w", member, id, err)
	}
	return nil
}

func parseID(id string) (uint64, error) {
	return strconv.ParseUint(id, 10, 64)
}
