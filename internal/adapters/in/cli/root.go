// Package cli implements the CLI adapter for pkgvault.
// This package provides Cobra commands that delegate to the app layer.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/bnema/pkgvault/pkg/version"
)

// NewRootCmd creates the root command for the pkgvault CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pkgvault",
		Short: "pkgvault - application package and extension catalog",
		Long: `pkgvault stores nightly and stable builds of applications and their
extensions, names and places each upload under its release, and keeps
per-platform download statistics.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command with the given build information.
func Execute(v, commit, date string) error {
	version.Set(v, commit, date)
	return NewRootCmd().Execute()
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info := version.Get()
			cmd.Printf("pkgvault %s\n", info.Version)
			cmd.Printf("Commit: %s\n", info.Commit)
			cmd.Printf("Built: %s\n", info.BuildDate)
		},
	}
}
