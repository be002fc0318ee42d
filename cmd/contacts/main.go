// Package main is the entry point for the contacts CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/contacts/internal/cli"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.Red(cli.FormatError(err)))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "contacts",
	Short: "contacts - a small local address book",
	Long: `contacts keeps a personal list of names, phone numbers and email
addresses in a single file.

Run without a subcommand to start the interactive menu, or use the
subcommands below for one-shot operations. Every change is written to
the backing file immediately.`,
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var (
	flagFile      string
	flagConfig    string
	flagLogLevel  string
	flagLogFormat string
	flagNoColor   bool
)

func init() {
	// Assigned here to avoid an initialization cycle through openManager.
	rootCmd.RunE = runShell

	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "backing file (default \"contacts.dat\")")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default \".contacts.yaml\" if present)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "diagnostic level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "diagnostic format: console or json")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("contacts version {{.Version}}\n")
}
