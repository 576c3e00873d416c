// Package discover classifies command-line path arguments and collects
// eligible files for a conversion run. Directories are walked
// recursively; invalid arguments produce a diagnostic line and never
// abort the run.
package discover

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Profile describes the file eligibility rules of one pipeline.
type Profile struct {
	// Name labels the profile in diagnostics.
	Name string

	// Match reports whether the base name of a file is eligible.
	Match func(base string) bool

	// InvalidMessage is printed after the offending path when an
	// argument is neither an eligible file nor a directory.
	InvalidMessage string
}

// JavaSources matches the Java/POM rewriter inputs: *.java files (exact
// case) and files named exactly pom.xml.
func JavaSources() Profile {
	return Profile{
		Name: "java",
		Match: func(base string) bool {
			return strings.HasSuffix(base, ".java") || base == "pom.xml"
		},
		InvalidMessage: "is not a valid Java file, pom.xml, or directory.",
	}
}

// CapabilityFiles matches the capability rewriter inputs: *.json files.
func CapabilityFiles() Profile {
	return Profile{
		Name: "caps",
		Match: func(base string) bool {
			return strings.HasSuffix(base, ".json")
		},
		InvalidMessage: "is not a valid json file or directory.",
	}
}

// Collect resolves each argument to zero or more eligible files. Files
// appear in argument order; directory walks are depth-first in lexical
// order. Diagnostics for invalid arguments go to diag.
func Collect(fsys afero.Fs, args []string, profile Profile, diag io.Writer) []string {
	var files []string

	for _, arg := range args {
		info, err := fsys.Stat(arg)

		switch {
		case err == nil && !info.IsDir() && profile.Match(filepath.Base(arg)):
			files = append(files, arg)
		case err == nil && info.IsDir():
			files = append(files, walk(fsys, arg, profile, diag)...)
		default:
			fmt.Fprintf(diag, "%s %s\n", arg, profile.InvalidMessage)
		}
	}

	return files
}

func walk(fsys afero.Fs, root string, profile Profile, diag io.Writer) []string {
	var files []string

	walkErr := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			fmt.Fprintf(diag, "skipping %s: %v\n", path, err)

			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if info.IsDir() {
			return nil
		}

		if profile.Match(filepath.Base(path)) {
			files = append(files, path)
		}

		return nil
	})
	if walkErr != nil {
		fmt.Fprintf(diag, "skipping %s: %v\n", root, walkErr)
	}

	return files
}
