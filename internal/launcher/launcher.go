// Package launcher starts applications from desktop entries.
package launcher

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"winctl/internal/backend"
)

// ErrLaunchFailed means the desktop-entry launcher reported failure.
// There is no alternate launch path and no retry.
var ErrLaunchFailed = errors.New("launch failed")

// Launcher invokes the external desktop-entry launcher, which expects
// the entry's base name without the .desktop extension.
type Launcher struct {
	run  backend.Runner
	tool string
	log  zerolog.Logger
}

func New(run backend.Runner, tool string, log zerolog.Logger) *Launcher {
	if tool == "" {
		tool = "gtk-launch"
	}
	return &Launcher{run: run, tool: tool, log: log}
}

// Launch starts the application behind desktopFile.
func (l *Launcher) Launch(desktopFile string) error {
	name := strings.TrimSuffix(desktopFile, ".desktop")
	if name == "" {
		return fmt.Errorf("%w: empty desktop file", ErrLaunchFailed)
	}
	l.log.Debug().Str("entry", name).Msg("launching desktop entry")
	if _, err := l.run.Run(l.tool, name); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrLaunchFailed, name, err)
	}
	return nil
}
