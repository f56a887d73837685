package output

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"

	"winctl/internal/model"
)

// unavailable is how unknown attributes render in human output. Data
// formats (yaml/json) carry null instead, so this string can never be
// confused with a real value there.
const unavailable = "n/a"

var headerColor = color.New(color.FgCyan, color.Bold)

// PrintWindowTable renders records as an aligned human table on
// stdout. noColor disables the header color (also honored
// automatically when stdout is not a terminal, via fatih/color).
func PrintWindowTable(records []model.WindowRecord, noColor bool) error {
	if noColor {
		color.NoColor = true
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, headerColor.Sprint("ID\tCLASS\tTITLE\tDESKTOP\tGEOMETRY\tSTATE"))
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			rec.ID,
			rec.Class.Or(unavailable),
			rec.Title.Or(unavailable),
			optInt(rec.Desktop),
			rec.Geometry.Or(unavailable),
			stateLabel(rec),
		)
	}
	return w.Flush()
}

func optInt(o model.Opt[int]) string {
	if !o.Known {
		return unavailable
	}
	return strconv.Itoa(o.Value)
}

func stateLabel(rec model.WindowRecord) string {
	switch {
	case rec.Fullscreen.Or(false):
		return "fullscreen"
	case rec.Minimized.Or(false):
		return "minimized"
	case rec.Maximized.Or(false):
		return "maximized"
	default:
		return "normal"
	}
}
