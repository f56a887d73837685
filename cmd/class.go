package cmd

import (
	"github.com/spf13/cobra"

	"winctl/internal/directory"
)

var classCmd = &cobra.Command{
	Use:   "class [filter]",
	Short: "List windows by class",
	Long:  "List windows whose class contains the filter substring; with no filter, list all.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runClass,
}

func init() {
	rootCmd.AddCommand(classCmd)
}

func runClass(cmd *cobra.Command, args []string) error {
	var filter string
	if len(args) == 1 {
		filter = args[0]
	}
	c := newComponents()
	records, err := c.dir.Find(directory.Query{Class: filter})
	if err != nil {
		return err
	}
	return printWindows(records)
}
