package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jacksmith/contacts/internal/cli"
	"github.com/jacksmith/contacts/internal/ops"
	"github.com/spf13/cobra"
)

// shellCommands are the interactive commands in menu order.
var shellCommands = []string{"add", "update", "delete", "list", "search", "exit"}

const menu = `
=== Contact Manager ===
1) Add Contact
2) Update Contact
3) Delete Contact
4) View Contacts
5) Search Contact
6) Exit`

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive menu",
	Long: `Start the interactive menu.

Choose an option by number, by name, or by any unique prefix of a name
(for example "4", "list" or "l"). End input or choose exit to quit.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	m, cleanup, err := openManager()
	if err != nil {
		return err
	}
	defer cleanup()

	// Echo answers when input is piped.
	echo := !cli.IsTerminal(os.Stdin) && cli.IsTerminal(os.Stdout)
	return shell(os.Stdin, os.Stdout, m, echo)
}

// shell runs the menu loop until exit or end of input.
// Operation errors are reported and never end the loop.
func shell(in io.Reader, out io.Writer, m *ops.Manager, echo bool) error {
	p := cli.NewPrompter(in, out, echo)

	for {
		fmt.Fprintln(out, menu)
		choice, err := p.Ask("Choose an option [1-6]: ")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}
		if err != nil {
			return err
		}

		command, err := cli.ResolveChoice(choice, shellCommands)
		if err != nil {
			cli.Report(out, err)
			continue
		}
		if command == "exit" {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}

		err = runShellCommand(command, p, out, m)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}
		cli.Report(out, err)
	}
}

func runShellCommand(command string, p *cli.Prompter, out io.Writer, m *ops.Manager) error {
	switch command {
	case "add":
		answers, err := askAll(p, "Name: ", "Phone: ", "Email: ")
		if err != nil {
			return err
		}
		c, err := m.Add(answers[0], answers[1], answers[2])
		if err != nil {
			return err
		}
		printAdded(out, c)

	case "update":
		answers, err := askAll(p, "Name to update: ", "New phone (leave blank to keep): ", "New email (leave blank to keep): ")
		if err != nil {
			return err
		}
		c, err := m.Update(answers[0], ops.ContactChanges{Phone: &answers[1], Email: &answers[2]})
		if err != nil {
			return err
		}
		printUpdated(out, c)

	case "delete":
		name, err := p.Ask("Name to delete: ")
		if err != nil {
			return err
		}
		n, err := m.Delete(name)
		if err != nil {
			return err
		}
		printDeleted(out, n, name)

	case "list":
		printList(out, m.List())

	case "search":
		name, err := p.Ask("Name to search: ")
		if err != nil {
			return err
		}
		matches, err := m.Search(name)
		if err != nil {
			return err
		}
		printFound(out, name, matches)
	}
	return nil
}

func askAll(p *cli.Prompter, labels ...string) ([]string, error) {
	answers := make([]string, 0, len(labels))
	for _, label := range labels {
		answer, err := p.Ask(label)
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}
	return answers, nil
}
