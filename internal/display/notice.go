// Package display renders user-facing notices, the results summary, and the
// verbose preview lists.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Notice is a user-facing error or guidance block. Lines are printed with a
// two-space indent under the title; Suggestion, if present, closes the block.
type Notice struct {
	Title      string
	Lines      []string
	Suggestion string
}

// Display writes the notice to out. The title is rendered in red when out is
// a color-capable terminal.
func (n Notice) Display(out io.Writer) {
	var b strings.Builder

	title := n.Title
	if useColor(out) {
		title = color.New(color.FgRed, color.Bold).Sprint(title)
	}
	b.WriteString("Error: ")
	b.WriteString(title)
	b.WriteString("\n")

	for _, line := range n.Lines {
		if line == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	if n.Suggestion != "" {
		b.WriteString("  ")
		b.WriteString(n.Suggestion)
		b.WriteString("\n")
	}

	fmt.Fprint(out, b.String())
}

// useColor reports whether out is a terminal that supports color output.
func useColor(out io.Writer) bool {
	if color.NoColor {
		return false
	}
	if out == os.Stdout {
		return isatty.IsTerminal(os.Stdout.Fd())
	}
	if out == os.Stderr {
		return isatty.IsTerminal(os.Stderr.Fd())
	}
	return false
}
