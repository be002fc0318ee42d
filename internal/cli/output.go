package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/jacksmith/contacts/internal/model"
	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// colorEnabled tracks whether color output is enabled.
// It is set based on terminal detection but can be overridden.
var colorEnabled = true

func init() {
	// Disable colors if stdout is not a terminal
	colorEnabled = IsTerminal(os.Stdout)
}

// SetColorEnabled allows overriding the color output setting.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled returns whether color output is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// IsTerminal returns true if f is a terminal.
func IsTerminal(f interface{}) bool {
	if fd, ok := f.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fd.Fd()))
	}
	return false
}

func paint(color, s string) string {
	if !colorEnabled {
		return s
	}
	return color + s + colorReset
}

// Green returns s wrapped in green ANSI codes if colors are enabled.
func Green(s string) string { return paint(colorGreen, s) }

// Red returns s wrapped in red ANSI codes if colors are enabled.
func Red(s string) string { return paint(colorRed, s) }

// Yellow returns s wrapped in yellow ANSI codes if colors are enabled.
func Yellow(s string) string { return paint(colorYellow, s) }

// Gray returns s wrapped in gray ANSI codes if colors are enabled.
func Gray(s string) string { return paint(colorGray, s) }

// DefaultMaxColumnWidth caps each contact column in tables.
const DefaultMaxColumnWidth = 40

// Table formats columnar output with automatic column width calculation.
type Table struct {
	indent    string
	rows      [][]string
	colWidths []int
	maxWidth  int
}

// NewTable creates a new empty table. Every rendered row starts with indent.
func NewTable(indent string) *Table {
	return &Table{indent: indent}
}

// SetMaxWidth sets the maximum width for every column.
// Content exceeding the limit is truncated with "...".
func (t *Table) SetMaxWidth(maxWidth int) {
	t.maxWidth = maxWidth
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	for len(t.colWidths) < len(cols) {
		t.colWidths = append(t.colWidths, 0)
	}
	for i, col := range cols {
		width := utf8.RuneCountInString(col)
		if t.maxWidth > 0 && width > t.maxWidth {
			width = t.maxWidth
		}
		if width > t.colWidths[i] {
			t.colWidths[i] = width
		}
	}
	t.rows = append(t.rows, cols)
}

// Render writes the table to w with columns separated by two spaces.
func (t *Table) Render(w io.Writer) {
	for _, row := range t.rows {
		parts := make([]string, 0, len(row))
		for i, col := range row {
			if t.maxWidth > 0 {
				col = Truncate(col, t.maxWidth)
			}
			if i < len(row)-1 {
				col += strings.Repeat(" ", t.colWidths[i]-utf8.RuneCountInString(col))
			}
			parts = append(parts, col)
		}
		fmt.Fprintln(w, t.indent+strings.Join(parts, "  "))
	}
}

// Truncate returns s cut to maxWidth characters, ending in "..." when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxWidth {
		return s
	}
	runes := []rune(s)
	const ellipsis = "..."
	if maxWidth <= len(ellipsis) {
		return string(runes[:maxWidth])
	}
	return string(runes[:maxWidth-len(ellipsis)]) + ellipsis
}

// ContactTable builds a table with one row per contact.
func ContactTable(indent string, contacts []model.Contact) *Table {
	table := NewTable(indent)
	table.SetMaxWidth(DefaultMaxColumnWidth)
	for _, c := range contacts {
		table.AddRow(c.Name(), c.Phone(), c.Email())
	}
	return table
}
