package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for followcheck
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "followcheck",
		Short: "Find who doesn't follow you back using your Instagram data export",
		Long: `Followcheck compares the followers and following lists inside a local
Instagram data export and reports the asymmetric differences: accounts you
follow that don't follow you back, and accounts that follow you that you
don't follow back.

It works entirely on the unzipped export folder. No login, no API, no
network. Ever.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	// Add subcommands
	cmd.AddCommand(NewCheckCommand())
	cmd.AddCommand(NewScanCommand())

	return cmd
}
