package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harrison/followcheck/internal/aggregate"
	"github.com/harrison/followcheck/internal/config"
	"github.com/harrison/followcheck/internal/diff"
	"github.com/harrison/followcheck/internal/discover"
	"github.com/harrison/followcheck/internal/display"
	"github.com/harrison/followcheck/internal/filelock"
	"github.com/harrison/followcheck/internal/logger"
	"github.com/harrison/followcheck/internal/report"
)

// lockFileName guards the output directory against concurrent runs.
const lockFileName = ".followcheck.lock"

// checkOptions holds the resolved flag values for the check command.
type checkOptions struct {
	outDir     string
	format     string
	configPath string
	verbose    bool
}

// NewCheckCommand creates the check command
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <export-dir>",
		Short: "Compare followers and following and write the difference lists",
		Long: `Scan an unzipped Instagram data export for followers and following JSON
files, extract the usernames, and write two files with the asymmetric
differences:

  not_following_back.<ext>   accounts you follow that don't follow you back
  you_dont_follow_back.<ext> accounts that follow you that you don't follow back

Configuration is loaded from .followcheck/config.yaml if present.
CLI flags override configuration file settings.

Examples:
  followcheck check ~/Downloads/instagram-export
  followcheck check --format csv --out results/ ./export
  followcheck check --verbose ./export   # per-file diagnostics and previews`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := checkOptions{}
			opts.outDir, _ = cmd.Flags().GetString("out")
			opts.format, _ = cmd.Flags().GetString("format")
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.verbose, _ = cmd.Flags().GetBool("verbose")
			return runCheck(args[0], opts, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	cmd.Flags().String("out", "", "Output directory (default: current directory)")
	cmd.Flags().String("format", "", "Output format: txt or csv (default: txt)")
	cmd.Flags().String("config", "", "Path to config file (default: .followcheck/config.yaml)")
	cmd.Flags().Bool("verbose", false, "Show per-file diagnostics and top 10 previews")

	return cmd
}

// runCheck implements the check command logic.
//
// Bad export paths and discovery failures print guidance and return nil:
// they are expected user mistakes, not program failures. Only output
// write/lock errors propagate.
func runCheck(dataDir string, opts checkOptions, out io.Writer) error {
	configPath := opts.configPath
	if configPath == "" {
		configPath = config.DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	cfg.MergeFlags(opts.outDir, opts.format, opts.verbose)

	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	info, err := os.Stat(dataDir)
	if err != nil || !info.IsDir() {
		notDirectoryNotice(dataDir).Display(out)
		return nil
	}

	log := logger.NewConsoleLogger(out, cfg.LogLevel)
	log.LogDebug(fmt.Sprintf("Scanning: %s", dataDir))
	log.LogDebug("Looking for followers and following JSON files...")

	found, err := discover.Discover(dataDir)
	if err != nil {
		return err
	}
	if notice, failed := discoveryNotice(found.FollowersFound(), found.FollowingFound()); failed {
		notice.Display(out)
		return nil
	}

	followers := aggregate.Usernames(discover.Paths(found.Followers), log)
	following := aggregate.Usernames(discover.Paths(found.Following), log)

	// Candidate files existed but none produced usernames: same three-way
	// guidance as when no files were found.
	if notice, failed := discoveryNotice(followers.Len() > 0, following.Len() > 0); failed {
		notice.Display(out)
		return nil
	}

	result := diff.Compute(followers, following)

	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", cfg.OutDir, err)
	}

	lock := filelock.NewFileLock(filepath.Join(cfg.OutDir, lockFileName))
	acquired, err := lock.TryLock()
	if err != nil {
		return err
	}
	if !acquired {
		return fmt.Errorf("another followcheck run is writing to %s", cfg.OutDir)
	}
	defer lock.Unlock()

	paths, err := report.Write(cfg.OutDir, result, format)
	if err != nil {
		return err
	}

	display.Summary{Result: result, Paths: paths}.Display(out)

	if cfg.LogLevel == "debug" {
		display.Preview(out, "not following you back", result.NotFollowingBack)
		display.Preview(out, "you don't follow back", result.YouDontFollowBack)
	}

	return nil
}

// discoveryNotice maps per-role availability to the three guidance messages.
// The second return value is false when both roles are available.
func discoveryNotice(followersFound, followingFound bool) (display.Notice, bool) {
	switch {
	case !followersFound && !followingFound:
		return noDataNotice(), true
	case !followersFound:
		return noFollowersNotice(), true
	case !followingFound:
		return noFollowingNotice(), true
	}
	return display.Notice{}, false
}

func notDirectoryNotice(dataDir string) display.Notice {
	return display.Notice{
		Title: fmt.Sprintf("export path is not a directory: %s", dataDir),
		Lines: []string{
			"Make sure you've unzipped your Instagram export and point to the top-level folder.",
		},
	}
}

func noDataNotice() display.Notice {
	return display.Notice{
		Title: "Could not find or parse any followers/following data.",
		Lines: []string{
			"",
			"Expected folder structure:",
			"  connections/",
			"    followers_and_following/",
			"      followers_1.json",
			"      followers_2.json   (if you have many followers)",
			"      following.json",
			"",
			"Make sure you requested JSON format when downloading from Instagram.",
			"(Settings → Accounts Center → Download your information → JSON)",
		},
	}
}

func noFollowersNotice() display.Notice {
	return display.Notice{
		Title: "No followers data found.",
		Lines: []string{
			"Look for JSON files under connections/followers_and_following/ containing 'followers' in the path.",
		},
		Suggestion: "Confirm your export is in JSON format and includes connections data.",
	}
}

func noFollowingNotice() display.Notice {
	return display.Notice{
		Title: "No following data found.",
		Lines: []string{
			"Look for following.json under connections/followers_and_following/.",
		},
		Suggestion: "Confirm your export is in JSON format and includes connections data.",
	}
}
