package cmd

import (
	"github.com/spf13/cobra"

	"winctl/internal/directory"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Find windows by class or title substring",
	Long:  "List windows whose class or title contains the term (case-sensitive).",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	c := newComponents()
	records, err := c.dir.Find(directory.Query{Any: args[0]})
	if err != nil {
		return err
	}
	return printWindows(records)
}
