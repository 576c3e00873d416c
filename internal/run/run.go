// Package run drives one conversion invocation: discovery, load,
// transform, persist, report. Files are processed strictly one at a
// time; an interrupted run leaves already-written files modified and the
// rest untouched.
package run

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/google/renameio/v2"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/afero"

	"github.com/applauseoss/sdkmigrate/internal/discover"
	"github.com/applauseoss/sdkmigrate/pkg/textutil"
)

// Transform rewrites one file buffer and returns the new content plus
// advisory warnings for the report.
type Transform func(path, content string) (newContent string, warnings []string)

// Pipeline holds the dependencies and options of one conversion run.
type Pipeline struct {
	Fs        afero.Fs
	Profile   discover.Profile
	Transform Transform
	Stdout    io.Writer

	// DryRun prints the change preview and skips the write.
	DryRun bool

	// ShowDiff prints a change preview before writing.
	ShowDiff bool
}

// fileWarnings groups a file's advisory warnings for the report.
type fileWarnings struct {
	path     string
	warnings []string
}

// Summary aggregates the outcome of a run.
type Summary struct {
	Converted int
	Skipped   int
	Bytes     int64

	warnings []fileWarnings
}

// WarningCount returns the total number of advisory warnings collected.
func (s *Summary) WarningCount() int {
	total := 0
	for _, fw := range s.warnings {
		total += len(fw.warnings)
	}

	return total
}

// Run converts every eligible file reachable from args. Invalid
// arguments and binary files produce diagnostics and are skipped; an
// I/O failure on an eligible file aborts the run.
func (p *Pipeline) Run(args []string) (*Summary, error) {
	files := discover.Collect(p.Fs, args, p.Profile, p.Stdout)
	summary := &Summary{}

	for _, path := range files {
		err := p.convertFile(path, summary)
		if err != nil {
			return summary, err
		}
	}

	p.reportWarnings(summary)

	return summary, nil
}

func (p *Pipeline) convertFile(path string, summary *Summary) error {
	data, err := afero.ReadFile(p.Fs, path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if textutil.IsBinary(data) {
		fmt.Fprintf(p.Stdout, "skipping binary file %s\n", path)
		summary.Skipped++

		return nil
	}

	content := string(data)
	converted, warnings := p.Transform(path, content)

	if p.ShowDiff || p.DryRun {
		p.printDiff(path, content, converted)
	}

	if !p.DryRun {
		err = p.writeFile(path, []byte(converted))
		if err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	fmt.Fprintf(p.Stdout, "Converted %s\n", path)

	summary.Converted++
	summary.Bytes += int64(len(data))

	if len(warnings) > 0 {
		summary.warnings = append(summary.warnings, fileWarnings{path: path, warnings: warnings})
	}

	return nil
}

// writeFile persists in place. On the real filesystem the write goes
// through a temp file and rename so an interrupted run never leaves a
// half-written file; other afero backends write directly.
func (p *Pipeline) writeFile(path string, data []byte) error {
	mode := os.FileMode(0o644)

	info, err := p.Fs.Stat(path)
	if err == nil {
		mode = info.Mode().Perm()
	}

	if _, isOsFs := p.Fs.(*afero.OsFs); isOsFs {
		return renameio.WriteFile(path, data, mode)
	}

	return afero.WriteFile(p.Fs, path, data, mode)
}

func (p *Pipeline) printDiff(path, oldContent, newContent string) {
	if oldContent == newContent {
		return
	}

	fmt.Fprintf(p.Stdout, "diff %s:\n", path)

	dmp := diffmatchpatch.New()

	if color.NoColor {
		fmt.Fprint(p.Stdout, dmp.PatchToText(dmp.PatchMake(oldContent, newContent)))

		return
	}

	fmt.Fprintln(p.Stdout, dmp.DiffPrettyText(dmp.DiffMain(oldContent, newContent, false)))
}

// reportWarnings prints per-file warnings grouped under a header, after
// all files are written. Warnings are advisory: the files on disk are
// already converted.
func (p *Pipeline) reportWarnings(summary *Summary) {
	header := color.New(color.FgYellow)

	for _, fw := range summary.warnings {
		_, _ = header.Fprintf(p.Stdout, "%s warnings:\n", fw.path)

		for _, warning := range fw.warnings {
			fmt.Fprintf(p.Stdout, "  - %s\n", warning)
		}
	}
}
