package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"winctl/internal/action"
	"winctl/internal/model"
	"winctl/internal/output"
)

var infoCmd = &cobra.Command{
	Use:   "info <id>",
	Short: "Show one window's attributes",
	Long:  "Resolve and print every attribute of the window with the given id.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	id := model.WindowID(args[0])
	c := newComponents()

	ids, err := c.dir.Snapshot()
	if err != nil {
		return err
	}
	present := false
	for _, known := range ids {
		if known == id {
			present = true
			break
		}
	}
	if !present {
		return fmt.Errorf("%w: %s", action.ErrWindowNotFound, id)
	}

	rec := c.dir.Resolve(id)
	if output.OutputFormat == output.FormatTable {
		return output.PrintWindowTable([]model.WindowRecord{rec}, cfg.NoColor)
	}
	return output.Print(rec)
}
