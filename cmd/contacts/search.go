package main

import (
	"os"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Find contacts by name",
	Long: `Find contacts whose name matches exactly, ignoring case and
surrounding whitespace.

Examples:
  contacts search alice`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeNames,
	RunE:              runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	m, cleanup, err := openManager()
	if err != nil {
		return err
	}
	defer cleanup()

	matches, err := m.Search(args[0])
	if err != nil {
		return reportOutcome(err)
	}
	printFound(os.Stdout, args[0], matches)
	return nil
}
