package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJava = `package com.demo.pages;

import org.testng.annotations.Test;

public class DemoPage {

    @Locate(css = ".submit")
    private Button submit;
}
`

const samplePom = `<project>
    <properties>
        <com.applause.sdk.java.version>5.0.5</com.applause.sdk.java.version>
    </properties>
</project>
`

// emptyConfigPath returns a valid, empty config file so tests never pick
// up a stray .sdkmigrate.yaml from the environment.
func emptyConfigPath(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".sdkmigrate.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	return path
}

func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	require.NoError(t, cmd.Execute())

	return out.String()
}

func TestConvertCommand_NoArgsPrintsUsage(t *testing.T) {
	cmd := newConvertCommandWithDeps(afero.NewMemMapFs())

	out := executeCommand(t, cmd)

	assert.Contains(t, out, "Usage: sdkmigrate convert")
	assert.Contains(t, out, "Overwrites files in place")
}

func TestCapsCommand_NoArgsPrintsUsage(t *testing.T) {
	cmd := newCapsCommandWithDeps(afero.NewMemMapFs())

	out := executeCommand(t, cmd)

	assert.Contains(t, out, "Usage: sdkmigrate caps")
}

func TestConvertCommand_RewritesJavaFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "DemoPage.java", []byte(sampleJava), 0o644))

	cmd := newConvertCommandWithDeps(fsys)
	out := executeCommand(t, cmd, "--config", emptyConfigPath(t), "DemoPage.java")

	written, err := afero.ReadFile(fsys, "DemoPage.java")
	require.NoError(t, err)

	assert.Contains(t, string(written), `@Locate(using = Strategy.CSS, value = ".submit")`)
	assert.Contains(t, string(written), "import com.applause.auto.pageobjectmodel.base.Strategy;")
	assert.Contains(t, out, "Converted DemoPage.java\n")
	assert.Contains(t, out, "files converted")
}

func TestConvertCommand_RoutesPomToDescriptorEngine(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "proj/pom.xml", []byte(samplePom), 0o644))

	cmd := newConvertCommandWithDeps(fsys)
	executeCommand(t, cmd, "--config", emptyConfigPath(t), "proj/pom.xml")

	written, err := afero.ReadFile(fsys, "proj/pom.xml")
	require.NoError(t, err)

	assert.Contains(t, string(written), "<com.applause.sdk.java.version>6.0.0</com.applause.sdk.java.version>")
	assert.NotContains(t, string(written), "5.0.5")
}

func TestConvertCommand_SDKVersionFlagOverridesConfig(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "pom.xml", []byte(samplePom), 0o644))

	cmd := newConvertCommandWithDeps(fsys)
	executeCommand(t, cmd, "--config", emptyConfigPath(t), "--sdk-version", "6.2.0", "pom.xml")

	written, err := afero.ReadFile(fsys, "pom.xml")
	require.NoError(t, err)

	assert.Contains(t, string(written), "<com.applause.sdk.java.version>6.2.0</com.applause.sdk.java.version>")
}

func TestConvertCommand_DryRunLeavesFileUntouched(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "DemoPage.java", []byte(sampleJava), 0o644))

	cmd := newConvertCommandWithDeps(fsys)
	out := executeCommand(t, cmd, "--config", emptyConfigPath(t), "--dry-run", "--no-color", "DemoPage.java")

	written, err := afero.ReadFile(fsys, "DemoPage.java")
	require.NoError(t, err)

	assert.Equal(t, sampleJava, string(written))
	assert.Contains(t, out, "diff DemoPage.java:")
}

func TestCapsCommand_RewritesCapabilityFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	content := "{\n  \"isStrict\": \"true\",\n  \"app\": \"demo.apk\"\n}\n"
	require.NoError(t, afero.WriteFile(fsys, "caps.json", []byte(content), 0o644))

	cmd := newCapsCommandWithDeps(fsys)
	out := executeCommand(t, cmd, "--config", emptyConfigPath(t), "caps.json")

	written, err := afero.ReadFile(fsys, "caps.json")
	require.NoError(t, err)

	assert.NotContains(t, string(written), "isStrict")
	assert.Contains(t, string(written), "\"appium:app\": \"demo.apk\"")
	assert.Contains(t, out, "Removing unused option: isStrict with value: true from caps.json")
	assert.Contains(t, out, "Updating capability: app in caps.json")
}

func TestCapsCommand_InvalidPathDiagnosed(t *testing.T) {
	cmd := newCapsCommandWithDeps(afero.NewMemMapFs())

	out := executeCommand(t, cmd, "--config", emptyConfigPath(t), "missing.json")

	assert.Contains(t, out, "missing.json is not a valid json file or directory.")
}
