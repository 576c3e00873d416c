// Package commands implements CLI command handlers for sdkmigrate.
package commands

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/applauseoss/sdkmigrate/internal/config"
	"github.com/applauseoss/sdkmigrate/internal/discover"
	"github.com/applauseoss/sdkmigrate/internal/javamod"
	"github.com/applauseoss/sdkmigrate/internal/pommod"
	"github.com/applauseoss/sdkmigrate/internal/run"
)

const convertUsage = `Usage: sdkmigrate convert [<path-to-java-file> | <path-to-pom> | <path-to-directory>]+
Converts files from the v5.0.x API to the v6.0.x API. NOTE: Overwrites files in place.
This conversion is not a guaranteed fix for all issues and may generate bad code.
Please review all changes before committing.
   <path-to-java-file>    :  relative or absolute path to a java file to convert
   <path-to-pom>          :  relative or absolute path to a pom.xml file to convert
   <path-to-directory>    :  relative or absolute path to a directory with .java or pom.xml files to convert
`

// ConvertCommand holds configuration and dependencies for the Java/POM
// conversion command.
type ConvertCommand struct {
	configPath string
	sdkVersion string
	javaFrom   string
	javaTo     string
	diff       bool
	dryRun     bool
	noColor    bool

	fs afero.Fs
}

// NewConvertCommand creates the convert command against the OS
// filesystem.
func NewConvertCommand() *cobra.Command {
	return newConvertCommandWithDeps(afero.NewOsFs())
}

func newConvertCommandWithDeps(fsys afero.Fs) *cobra.Command {
	cc := &ConvertCommand{fs: fsys}

	cmd := &cobra.Command{
		Use:   "convert [path]...",
		Short: "Rewrite .java and pom.xml files from the v5.0.x API to v6.0.x",
		Args:  cobra.ArbitraryArgs,
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.configPath, "config", "", "Config file path (default: .sdkmigrate.yaml in CWD or $HOME)")
	cmd.Flags().StringVar(&cc.sdkVersion, "sdk-version", "", "Target SDK version written into pom.xml (default from config)")
	cmd.Flags().StringVar(&cc.javaFrom, "java-release-from", "", "Java language level being migrated away from")
	cmd.Flags().StringVar(&cc.javaTo, "java-release-to", "", "Java language level written in its place")
	cmd.Flags().BoolVar(&cc.diff, "diff", false, "Print a change preview before writing")
	cmd.Flags().BoolVar(&cc.dryRun, "dry-run", false, "Print the change preview and skip the write")
	cmd.Flags().BoolVar(&cc.noColor, "no-color", false, "Disable colored output")

	return cmd
}

func (cc *ConvertCommand) run(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()

	if len(args) == 0 {
		fmt.Fprint(stdout, convertUsage)

		return nil
	}

	cfg, err := config.LoadConfig(cc.configPath)
	if err != nil {
		return err
	}

	cc.applyFlagOverrides(cmd, cfg)
	applyColorMode(cfg)

	pipeline := &run.Pipeline{
		Fs:        cc.fs,
		Profile:   discover.JavaSources(),
		Transform: convertTransform(cfg),
		Stdout:    stdout,
		DryRun:    cfg.Output.DryRun,
		ShowDiff:  cfg.Output.Diff,
	}

	summary, err := pipeline.Run(args)
	if err != nil {
		return err
	}

	summary.Render(stdout)

	return nil
}

// applyFlagOverrides lets explicit flags win over config file values.
func (cc *ConvertCommand) applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("sdk-version") {
		cfg.Pom.SDKVersion = cc.sdkVersion
	}

	if cmd.Flags().Changed("java-release-from") {
		cfg.Pom.JavaReleaseFrom = cc.javaFrom
	}

	if cmd.Flags().Changed("java-release-to") {
		cfg.Pom.JavaReleaseTo = cc.javaTo
	}

	if cmd.Flags().Changed("diff") {
		cfg.Output.Diff = cc.diff
	}

	if cmd.Flags().Changed("dry-run") {
		cfg.Output.DryRun = cc.dryRun
	}

	if cmd.Flags().Changed("no-color") {
		cfg.Output.NoColor = cc.noColor
	}
}

// convertTransform routes build descriptors to the POM engine and
// everything else to the Java engine.
func convertTransform(cfg *config.Config) run.Transform {
	opts := pommod.Options{
		SDKVersion:      cfg.Pom.SDKVersion,
		JavaReleaseFrom: cfg.Pom.JavaReleaseFrom,
		JavaReleaseTo:   cfg.Pom.JavaReleaseTo,
	}

	return func(path, content string) (string, []string) {
		if filepath.Base(path) == "pom.xml" {
			return pommod.Convert(content, opts), nil
		}

		result := javamod.Convert(content)

		return result.Content, result.Warnings
	}
}

func applyColorMode(cfg *config.Config) {
	if cfg.Output.NoColor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}
}
