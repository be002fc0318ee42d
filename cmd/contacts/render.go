package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jacksmith/contacts/internal/cli"
	"github.com/jacksmith/contacts/internal/model"
)

func printAdded(w io.Writer, c model.Contact) {
	fmt.Fprintln(w, cli.Green("Added: ")+c.String())
}

func printUpdated(w io.Writer, c model.Contact) {
	fmt.Fprintln(w, cli.Green("Updated: ")+c.String())
}

func printDeleted(w io.Writer, count int, name string) {
	fmt.Fprintf(w, "%s %d contact(s) named '%s'.\n", cli.Green("Deleted"), count, strings.TrimSpace(name))
}

func printList(w io.Writer, contacts []model.Contact) {
	if len(contacts) == 0 {
		fmt.Fprintln(w, cli.Yellow(cli.FormatInfo("No contacts to display.")))
		return
	}
	fmt.Fprintf(w, "All contacts (%d):\n", len(contacts))
	cli.ContactTable(" - ", contacts).Render(w)
}

func printFound(w io.Writer, name string, matches []model.Contact) {
	fmt.Fprintf(w, "Found %d contact(s) named '%s':\n", len(matches), strings.TrimSpace(name))
	cli.ContactTable(" * ", matches).Render(w)
}
