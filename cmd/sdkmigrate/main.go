// Package main provides the entry point for the sdkmigrate CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/applauseoss/sdkmigrate/cmd/sdkmigrate/commands"
	"github.com/applauseoss/sdkmigrate/pkg/version"
)

func main() {
	version.InitBinaryVersion()

	rootCmd := &cobra.Command{
		Use:   "sdkmigrate",
		Short: "Applause Java SDK migration helper",
		Long: `sdkmigrate rewrites Java test-automation projects for newer SDK APIs.

Commands:
  convert   Rewrite .java sources and pom.xml files from the v5.0.x API to v6.0.x
  caps      Rewrite device-capability JSON files to the appium-prefixed naming`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewConvertCommand())
	rootCmd.AddCommand(commands.NewCapsCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "sdkmigrate %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
