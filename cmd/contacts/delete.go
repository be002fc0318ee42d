package main

import (
	"os"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a contact by name",
	Long: `Delete every contact with the given name (ignoring case).

Examples:
  contacts delete Alice`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeNames,
	RunE:              runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	m, cleanup, err := openManager()
	if err != nil {
		return err
	}
	defer cleanup()

	n, err := m.Delete(args[0])
	if err != nil {
		return reportOutcome(err)
	}
	printDeleted(os.Stdout, n, args[0])
	return nil
}
