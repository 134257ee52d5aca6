package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/harrison/followcheck/internal/diff"
	"github.com/harrison/followcheck/internal/report"
)

// previewLimit caps the verbose preview lists.
const previewLimit = 10

// Summary is the end-of-run results block.
type Summary struct {
	Result diff.Result
	Paths  report.Paths
}

// Display writes the summary block with both counts and the written file
// paths. Counts are highlighted when out is a color-capable terminal.
func (s Summary) Display(out io.Writer) {
	notBack := fmt.Sprintf("%d", len(s.Result.NotFollowingBack))
	dontFollow := fmt.Sprintf("%d", len(s.Result.YouDontFollowBack))
	if useColor(out) {
		notBack = color.New(color.FgYellow, color.Bold).Sprint(notBack)
		dontFollow = color.New(color.FgCyan, color.Bold).Sprint(dontFollow)
	}

	fmt.Fprintf(out, "\n")
	fmt.Fprintf(out, "Results\n")
	fmt.Fprintf(out, "-------\n")
	fmt.Fprintf(out, "People you follow who don't follow you back: %s\n", notBack)
	fmt.Fprintf(out, "People who follow you that you don't follow back: %s\n", dontFollow)
	fmt.Fprintf(out, "\n")
	fmt.Fprintf(out, "Written to:\n")
	fmt.Fprintf(out, "  %s\n", s.Paths.NotFollowingBack)
	fmt.Fprintf(out, "  %s\n", s.Paths.YouDontFollowBack)
}

// Preview writes a "Top 10" list of handles under the given heading, with an
// overflow line when the list is longer than the preview limit. Writes
// nothing for an empty list.
func Preview(out io.Writer, heading string, usernames []string) {
	if len(usernames) == 0 {
		return
	}

	fmt.Fprintf(out, "\n")
	fmt.Fprintf(out, "Top %d preview — %s:\n", previewLimit, heading)
	shown := usernames
	if len(shown) > previewLimit {
		shown = shown[:previewLimit]
	}
	for _, u := range shown {
		fmt.Fprintf(out, "  @%s\n", u)
	}
	if rest := len(usernames) - previewLimit; rest > 0 {
		fmt.Fprintf(out, "  ... and %d more\n", rest)
	}
}
