package backend

import "strings"

// Xdotool enumerates windows with `xdotool search`, restricted to
// visible, named windows. It is the first fallback when the shell
// extension yields nothing. xdotool already prints decimal ids, which
// is the canonical form.
type Xdotool struct {
	run Runner
}

func NewXdotool(run Runner) *Xdotool {
	return &Xdotool{run: run}
}

func (x *Xdotool) Name() string { return "xdotool" }

func (x *Xdotool) ListWindowIDs() ([]string, error) {
	out, err := x.run.Run("xdotool", "search", "--onlyvisible", "--name", ".")
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ids = append(ids, line)
	}
	return ids, nil
}
