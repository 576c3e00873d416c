package run

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/applauseoss/sdkmigrate/internal/discover"
)

// upperTransform is a trivial stand-in for the real rewriters.
func upperTransform(_, content string) (string, []string) {
	return strings.ToUpper(content), nil
}

func newTestPipeline(fsys afero.Fs, stdout *bytes.Buffer) *Pipeline {
	return &Pipeline{
		Fs:        fsys,
		Profile:   discover.JavaSources(),
		Transform: upperTransform,
		Stdout:    stdout,
	}
}

func TestRun_ConvertsFileInPlace(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "Page.java", []byte("class page {}"), 0o644))

	var stdout bytes.Buffer

	summary, err := newTestPipeline(fsys, &stdout).Run([]string{"Page.java"})
	require.NoError(t, err)

	written, err := afero.ReadFile(fsys, "Page.java")
	require.NoError(t, err)
	assert.Equal(t, "CLASS PAGE {}", string(written))

	assert.Equal(t, 1, summary.Converted)
	assert.Equal(t, 0, summary.Skipped)
	assert.Equal(t, int64(len("class page {}")), summary.Bytes)
	assert.Contains(t, stdout.String(), "Converted Page.java\n")
}

func TestRun_DryRunLeavesFileUntouched(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "Page.java", []byte("class page {}"), 0o644))

	var stdout bytes.Buffer
	pipeline := newTestPipeline(fsys, &stdout)
	pipeline.DryRun = true

	summary, err := pipeline.Run([]string{"Page.java"})
	require.NoError(t, err)

	written, err := afero.ReadFile(fsys, "Page.java")
	require.NoError(t, err)
	assert.Equal(t, "class page {}", string(written))

	// A dry run still counts the file and prints the preview.
	assert.Equal(t, 1, summary.Converted)
	assert.Contains(t, stdout.String(), "diff Page.java:\n")
}

func TestRun_BinaryFileSkippedWithDiagnostic(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "Blob.java", []byte("class\x00blob"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "Page.java", []byte("class page {}"), 0o644))

	var stdout bytes.Buffer

	summary, err := newTestPipeline(fsys, &stdout).Run([]string{"Blob.java", "Page.java"})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Converted)
	assert.Equal(t, 1, summary.Skipped)
	assert.Contains(t, stdout.String(), "skipping binary file Blob.java\n")

	untouched, err := afero.ReadFile(fsys, "Blob.java")
	require.NoError(t, err)
	assert.Equal(t, "class\x00blob", string(untouched))
}

func TestRun_InvalidArgumentDoesNotAbortRun(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "Page.java", []byte("class page {}"), 0o644))

	var stdout bytes.Buffer

	summary, err := newTestPipeline(fsys, &stdout).Run([]string{"missing.java", "Page.java"})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Converted)
	assert.Contains(t, stdout.String(), "missing.java is not a valid Java file, pom.xml, or directory.")
}

func TestRun_WarningsGroupedPerFile(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "A.java", []byte("a"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "B.java", []byte("b"), 0o644))

	var stdout bytes.Buffer
	pipeline := newTestPipeline(fsys, &stdout)
	pipeline.Transform = func(path, content string) (string, []string) {
		if path == "A.java" {
			return content, []string{"first warning", "second warning"}
		}

		return content, nil
	}

	summary, err := pipeline.Run([]string{"A.java", "B.java"})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.WarningCount())
	assert.Contains(t, stdout.String(), "A.java warnings:\n")
	assert.Contains(t, stdout.String(), "  - first warning\n")
	assert.Contains(t, stdout.String(), "  - second warning\n")
	assert.NotContains(t, stdout.String(), "B.java warnings:")
}

func TestRun_DiffPreviewSkippedForUnchangedContent(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "Page.java", []byte("ALREADY UPPER"), 0o644))

	var stdout bytes.Buffer
	pipeline := newTestPipeline(fsys, &stdout)
	pipeline.ShowDiff = true

	_, err := pipeline.Run([]string{"Page.java"})
	require.NoError(t, err)

	assert.NotContains(t, stdout.String(), "diff Page.java:")
	assert.Contains(t, stdout.String(), "Converted Page.java\n")
}

func TestRun_DirectoryArgumentConvertsEveryEligibleFile(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "proj/pom.xml", []byte("<project/>"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "proj/src/Page.java", []byte("class page {}"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "proj/README.md", []byte("docs"), 0o644))

	var stdout bytes.Buffer

	summary, err := newTestPipeline(fsys, &stdout).Run([]string{"proj"})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Converted)
	assert.Equal(t, int64(len("<project/>")+len("class page {}")), summary.Bytes)
}

func TestSummary_Render(t *testing.T) {
	t.Parallel()

	summary := &Summary{Converted: 3, Skipped: 1, Bytes: 2048}
	summary.warnings = append(summary.warnings, fileWarnings{
		path:     "A.java",
		warnings: []string{"w1", "w2"},
	})

	var out bytes.Buffer
	summary.Render(&out)

	rendered := out.String()
	assert.Contains(t, rendered, "files converted")
	assert.Contains(t, rendered, "files skipped")
	assert.Contains(t, rendered, "bytes processed")
	assert.Contains(t, rendered, "2.0 kB")
}

func TestSummary_WarningCount(t *testing.T) {
	t.Parallel()

	summary := &Summary{}
	assert.Equal(t, 0, summary.WarningCount())

	summary.warnings = append(summary.warnings,
		fileWarnings{path: "A.java", warnings: []string{"w1"}},
		fileWarnings{path: "B.java", warnings: []string{"w2", "w3"}},
	)
	assert.Equal(t, 3, summary.WarningCount())
}
