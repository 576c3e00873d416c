// Package config loads sdkmigrate settings from file, environment, and
// defaults.
package config

import "errors"

// Defaults for the v5-to-v6 migration targets.
const (
	DefaultSDKVersion      = "6.0.0"
	DefaultJavaReleaseFrom = "17"
	DefaultJavaReleaseTo   = "21"
)

// ErrEmptySDKVersion indicates a config file cleared the target SDK
// version.
var ErrEmptySDKVersion = errors.New("pom.sdk_version must not be empty")

// ErrEmptyJavaRelease indicates a blank Java language-level token.
var ErrEmptyJavaRelease = errors.New("pom.java_release_from and pom.java_release_to must not be empty")

// Config is the top-level configuration struct for sdkmigrate.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Pom    PomConfig    `mapstructure:"pom"`
	Output OutputConfig `mapstructure:"output"`
}

// PomConfig holds the version tokens written into build descriptors.
type PomConfig struct {
	SDKVersion      string `mapstructure:"sdk_version"`
	JavaReleaseFrom string `mapstructure:"java_release_from"`
	JavaReleaseTo   string `mapstructure:"java_release_to"`
}

// OutputConfig holds terminal output defaults. Command-line flags
// override these per run.
type OutputConfig struct {
	Diff    bool `mapstructure:"diff"`
	DryRun  bool `mapstructure:"dry_run"`
	NoColor bool `mapstructure:"no_color"`
}

// Validate checks config invariants after unmarshalling.
func (c *Config) Validate() error {
	if c.Pom.SDKVersion == "" {
		return ErrEmptySDKVersion
	}

	if c.Pom.JavaReleaseFrom == "" || c.Pom.JavaReleaseTo == "" {
		return ErrEmptyJavaRelease
	}

	return nil
}
