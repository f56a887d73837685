package cmd

import (
	"github.com/spf13/cobra"

	"winctl/internal/model"
	"winctl/internal/output"
)

// ActionResult is the output of a window action command.
type ActionResult struct {
	OK     bool           `yaml:"ok"     json:"ok"`
	Action string         `yaml:"action" json:"action"`
	ID     model.WindowID `yaml:"id"     json:"id"`
}

func init() {
	rootCmd.AddCommand(
		newActionCmd("activate", "Bring a window to the foreground",
			func(c *components, id model.WindowID) error { return c.exec.Activate(id) }),
		newActionCmd("minimize", "Minimize a window",
			func(c *components, id model.WindowID) error { return c.exec.Minimize(id) }),
		newActionCmd("maximize", "Maximize a window",
			func(c *components, id model.WindowID) error { return c.exec.Maximize(id) }),
		newActionCmd("fullscreen", "Toggle a window's fullscreen state",
			runFullscreen),
		newActionCmd("close", "Close a window",
			func(c *components, id model.WindowID) error { return c.exec.Close(id) }),
	)
}

func newActionCmd(name, short string, fn func(*components, model.WindowID) error) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := model.WindowID(args[0])
			c := newComponents()
			if err := fn(c, id); err != nil {
				return err
			}
			return output.Print(ActionResult{OK: true, Action: name, ID: id})
		},
	}
}

// runFullscreen reads the current fullscreen state and sets the
// negation; the executor itself is only a setter. An unreadable state
// counts as not-fullscreen, so the command enters fullscreen.
func runFullscreen(c *components, id model.WindowID) error {
	rec := c.dir.Resolve(id)
	return c.exec.SetFullscreen(id, !rec.Fullscreen.Or(false))
}
