package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/followcheck/internal/discover"
)

// NewScanCommand creates the scan command
func NewScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <export-dir>",
		Short: "List the followers/following files discovery would use",
		Long: `Scan an export directory and print the candidate JSON files for each
role with their relevance scores, without extracting usernames or writing
any output.

Discovery is heuristic: any .json file whose path mentions a role keyword is
a candidate, and files under the canonical followers_and_following folder
score higher. Use scan to debug why an export layout is not being picked up
by check.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(args[0], cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	return cmd
}

// runScan implements the scan command logic.
func runScan(dataDir string, out io.Writer) error {
	info, err := os.Stat(dataDir)
	if err != nil || !info.IsDir() {
		notDirectoryNotice(dataDir).Display(out)
		return nil
	}

	found, err := discover.Discover(dataDir)
	if err != nil {
		return err
	}

	printCandidates(out, "Followers candidates", found.Followers)
	printCandidates(out, "Following candidates", found.Following)

	return nil
}

func printCandidates(out io.Writer, heading string, candidates []discover.Candidate) {
	fmt.Fprintf(out, "%s:\n", heading)
	if len(candidates) == 0 {
		fmt.Fprintf(out, "  (none)\n")
		return
	}
	for _, c := range candidates {
		fmt.Fprintf(out, "  [score %2d] %s\n", c.Score, c.Path)
	}
}
