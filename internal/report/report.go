// Package report renders the diff result and writes the two output files.
package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/harrison/followcheck/internal/diff"
	"github.com/harrison/followcheck/internal/filelock"
)

// Format selects the output file format.
type Format string

const (
	// FormatText writes one username per line.
	FormatText Format = "txt"
	// FormatCSV writes a "username" header followed by one username per line.
	FormatCSV Format = "csv"
)

// ParseFormat validates a format string from a flag or config file.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatText:
		return FormatText, nil
	case FormatCSV:
		return FormatCSV, nil
	}
	return "", fmt.Errorf("invalid format %q (valid: txt, csv)", s)
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	return string(f)
}

// Paths holds the locations of the two written output files.
type Paths struct {
	NotFollowingBack  string
	YouDontFollowBack string
}

// Write renders the result in the given format and atomically overwrites
// not_following_back.<ext> and you_dont_follow_back.<ext> under outDir,
// creating the directory if needed. Write failures are fatal to the run and
// propagate to the caller.
func Write(outDir string, result diff.Result, format Format) (Paths, error) {
	paths := Paths{
		NotFollowingBack:  filepath.Join(outDir, "not_following_back."+format.Ext()),
		YouDontFollowBack: filepath.Join(outDir, "you_dont_follow_back."+format.Ext()),
	}

	if err := filelock.AtomicWrite(paths.NotFollowingBack, render(result.NotFollowingBack, format)); err != nil {
		return Paths{}, fmt.Errorf("failed to write %s: %w", paths.NotFollowingBack, err)
	}
	if err := filelock.AtomicWrite(paths.YouDontFollowBack, render(result.YouDontFollowBack, format)); err != nil {
		return Paths{}, fmt.Errorf("failed to write %s: %w", paths.YouDontFollowBack, err)
	}

	return paths, nil
}

// render produces the file contents for one username list.
// Text: newline-joined with a single trailing newline, empty when the list
// is empty. CSV: header line then one username per line; usernames are
// restricted to the validator alphabet, so no quoting is needed.
func render(usernames []string, format Format) []byte {
	var b strings.Builder
	if format == FormatCSV {
		b.WriteString("username\n")
	}
	for _, u := range usernames {
		b.WriteString(u)
		b.WriteString("\n")
	}
	return []byte(b.String())
}
