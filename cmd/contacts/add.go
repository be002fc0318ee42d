package main

import (
	"os"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <name> <phone> <email>",
	Short: "Add a new contact",
	Long: `Add a new contact.

All three fields are required. Surrounding whitespace is trimmed. If a
contact with the same name (ignoring case) already exists, it is kept
unchanged.

Examples:
  contacts add "Alice Smith" 555-1111 alice@example.com
  contacts add Bob "+44 20 7946 0000" bob@example.co.uk`,
	Args: cobra.ExactArgs(3),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	m, cleanup, err := openManager()
	if err != nil {
		return err
	}
	defer cleanup()

	c, err := m.Add(args[0], args[1], args[2])
	if err != nil {
		return err
	}
	printAdded(os.Stdout, c)
	return nil
}
