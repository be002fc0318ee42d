package main

import (
	"os"

	"github.com/jacksmith/contacts/internal/cli"
	"github.com/jacksmith/contacts/internal/ops"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update <name>",
	Short: "Change a contact's phone or email",
	Long: `Change the phone number and/or email address of a contact.

Fields that are not given, or given as blank, keep their current value.
The name itself cannot be changed.

Examples:
  contacts update Alice --phone 555-9999
  contacts update alice --email alice@work.example.com`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeNames,
	RunE:              runUpdate,
}

var (
	updatePhone string
	updateEmail string
)

func init() {
	updateCmd.Flags().StringVar(&updatePhone, "phone", "", "new phone number")
	updateCmd.Flags().StringVar(&updateEmail, "email", "", "new email address")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("phone") && !cmd.Flags().Changed("email") {
		return &cli.UsageError{Message: "nothing to update: use --phone and/or --email"}
	}

	m, cleanup, err := openManager()
	if err != nil {
		return err
	}
	defer cleanup()

	c, err := m.Update(args[0], ops.ContactChanges{Phone: &updatePhone, Email: &updateEmail})
	if err != nil {
		return reportOutcome(err)
	}
	printUpdated(os.Stdout, c)
	return nil
}
