package cmd

import (
	"github.com/spf13/cobra"

	"winctl/internal/directory"
	"winctl/internal/model"
	"winctl/internal/output"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all windows",
	Long:  "List every enumerable window with its id, class, title, desktop, geometry and state.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	c := newComponents()
	records, err := c.dir.Find(directory.Query{})
	if err != nil {
		return err
	}
	return printWindows(records)
}

// printWindows renders window records in the selected output format.
// Shared by list, search and class.
func printWindows(records []model.WindowRecord) error {
	if records == nil {
		records = []model.WindowRecord{}
	}
	if output.OutputFormat == output.FormatTable {
		return output.PrintWindowTable(records, cfg.NoColor)
	}
	return output.Print(records)
}
