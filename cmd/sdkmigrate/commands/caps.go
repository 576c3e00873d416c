package commands

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/applauseoss/sdkmigrate/internal/capsmod"
	"github.com/applauseoss/sdkmigrate/internal/config"
	"github.com/applauseoss/sdkmigrate/internal/discover"
	"github.com/applauseoss/sdkmigrate/internal/run"
)

const capsUsage = `Usage: sdkmigrate caps [<path-to-json-file> | <path-to-directory>]+
Rewrites device-capability JSON files to the appium-prefixed capability naming
required by SDK 6.1.0 and later. NOTE: Overwrites files in place.
   <path-to-json-file>    :  relative or absolute path to a capability json file to convert
   <path-to-directory>    :  relative or absolute path to a directory with .json files to convert
`

// CapsCommand holds configuration and dependencies for the capability
// conversion command.
type CapsCommand struct {
	configPath string
	diff       bool
	dryRun     bool
	noColor    bool

	fs afero.Fs
}

// NewCapsCommand creates the caps command against the OS filesystem.
func NewCapsCommand() *cobra.Command {
	return newCapsCommandWithDeps(afero.NewOsFs())
}

func newCapsCommandWithDeps(fsys afero.Fs) *cobra.Command {
	cc := &CapsCommand{fs: fsys}

	cmd := &cobra.Command{
		Use:   "caps [path]...",
		Short: "Rewrite device-capability JSON files to appium-prefixed naming",
		Args:  cobra.ArbitraryArgs,
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.configPath, "config", "", "Config file path (default: .sdkmigrate.yaml in CWD or $HOME)")
	cmd.Flags().BoolVar(&cc.diff, "diff", false, "Print a change preview before writing")
	cmd.Flags().BoolVar(&cc.dryRun, "dry-run", false, "Print the change preview and skip the write")
	cmd.Flags().BoolVar(&cc.noColor, "no-color", false, "Disable colored output")

	return cmd
}

func (cc *CapsCommand) run(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()

	if len(args) == 0 {
		fmt.Fprint(stdout, capsUsage)

		return nil
	}

	cfg, err := config.LoadConfig(cc.configPath)
	if err != nil {
		return err
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

	applyColorMode(cfg)

	pipeline := &run.Pipeline{
		Fs:        cc.fs,
		Profile:   discover.CapabilityFiles(),
		Transform: capsTransform(stdout),
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

// capsTransform adapts the capability engine, whose per-decision
// diagnostics stream to the run's output as they happen.
func capsTransform(diag io.Writer) run.Transform {
	return func(path, content string) (string, []string) {
		return capsmod.Convert(path, content, diag), nil
	}
}
