package backend

import (
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes an external command and returns its stdout. It
// exists so tests can substitute canned output for real processes.
type Runner interface {
	Run(name string, args ...string) (string, error)
}

// ExecRunner runs commands through os/exec. Calls block with no
// timeout; a hung tool hangs the calling operation.
type ExecRunner struct{}

func (ExecRunner) Run(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		var stderr string
		if ee, ok := err.(*exec.ExitError); ok {
			stderr = strings.TrimSpace(string(ee.Stderr))
		}
		if stderr != "" {
			return "", fmt.Errorf("%s: %s (%w)", name, stderr, err)
		}
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return string(out), nil
}
