// Package cli provides CLI infrastructure for the contacts shell and commands.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MatchCommand finds a unique command from a prefix.
// Returns the matched command or an error if ambiguous or no match.
func MatchCommand(prefix string, commands []string) (string, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return "", &UsageError{Message: "no command given"}
	}

	for _, cmd := range commands {
		if strings.ToLower(cmd) == prefix {
			return cmd, nil
		}
	}

	var matches []string
	for _, cmd := range commands {
		if strings.HasPrefix(strings.ToLower(cmd), prefix) {
			matches = append(matches, cmd)
		}
	}

	switch len(matches) {
	case 0:
		return "", &UsageError{Message: fmt.Sprintf("unknown command %q", prefix)}
	case 1:
		return matches[0], nil
	default:
		return "", &UsageError{Message: fmt.Sprintf("ambiguous command %q matches: %s", prefix, strings.Join(matches, ", "))}
	}
}

// ResolveChoice maps a menu selection to a command. The selection is either
// a 1-based menu number or a command name or unique prefix.
func ResolveChoice(choice string, commands []string) (string, error) {
	choice = strings.TrimSpace(choice)
	if n, err := strconv.Atoi(choice); err == nil {
		if n < 1 || n > len(commands) {
			return "", &UsageError{Message: fmt.Sprintf("invalid choice %d (expected 1-%d)", n, len(commands))}
		}
		return commands[n-1], nil
	}
	return MatchCommand(choice, commands)
}

// Prompter reads one line of input per question.
type Prompter struct {
	in   *bufio.Reader
	out  io.Writer
	echo bool
}

// NewPrompter returns a Prompter reading from in and writing labels to out.
// When echo is true each answer is written back to out after its label,
// which keeps transcripts readable when input is piped.
func NewPrompter(in io.Reader, out io.Writer, echo bool) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, echo: echo}
}

// Ask writes label and returns the next input line without its line ending.
// Returns io.EOF once input is exhausted.
func (p *Prompter) Ask(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		if err == io.EOF {
			fmt.Fprintln(p.out)
		}
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")
	if p.echo {
		fmt.Fprintln(p.out, line)
	}
	return line, nil
}
