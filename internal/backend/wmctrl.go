package backend

import (
	"strconv"
	"strings"
)

// Wmctrl enumerates windows with `wmctrl -l`, the last-resort fallback.
// The leading token of each line is the window id in hex (0x...);
// it is normalized to decimal so ids from every source share one
// canonical representation.
type Wmctrl struct {
	run Runner
}

func NewWmctrl(run Runner) *Wmctrl {
	return &Wmctrl{run: run}
}

func (w *Wmctrl) Name() string { return "wmctrl" }

func (w *Wmctrl) ListWindowIDs() ([]string, error) {
	out, err := w.run.Run("wmctrl", "-l")
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		id, ok := normalizeID(fields[0])
		if !ok {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// normalizeID reparses a raw window id token into canonical decimal.
// Accepts hex with 0x prefix and plain decimal.
func normalizeID(tok string) (string, bool) {
	base := 10
	s := tok
	if strings.HasPrefix(tok, "0x") || strings.HasPrefix(tok, "0X") {
		base = 16
		s = tok[2:]
	}
	v, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return "", false
	}
	return strconv.FormatUint(v, 10), true
}
