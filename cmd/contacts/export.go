package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/contacts/internal/cli"
	"github.com/jacksmith/contacts/internal/export"
	"github.com/jacksmith/contacts/internal/model"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file.xlsx>",
	Short: "Export contacts to a spreadsheet",
	Long: `Write all contacts to an Excel workbook with one row per contact.

The workbook has a single "Contacts" sheet with Name, Phone and Email
columns. An existing file at the destination is overwritten.

Examples:
  contacts export contacts.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	m, cleanup, err := openManager()
	if err != nil {
		return err
	}
	defer cleanup()

	contacts := m.Collection().Contacts()
	if err := writeExport(args[0], contacts); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%s %d contact(s) to %s\n", cli.Green("Exported"), len(contacts), args[0])
	return nil
}

func writeExport(path string, contacts []model.Contact) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := export.WriteXLSX(f, contacts); err != nil {
		f.Close()
		return fmt.Errorf("failed to export to %s: %w", path, err)
	}
	return f.Close()
}
