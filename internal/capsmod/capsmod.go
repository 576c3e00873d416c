// Package capsmod rewrites device-capability JSON files to the
// appium-prefixed capability naming required by the v6.1+ SDK. The
// document is treated as opaque text: keys are renamed by literal quoted
// substring replacement, never by parsing the JSON.
package capsmod

import (
	"fmt"
	"io"
	"strings"
)

// scopeAll renames a capability unconditionally.
const scopeAll = "all"

// Convert strips obsolete option pairs and prefixes known capability
// keys with "appium:". Every removal, update, and skip decision is
// reported as a line on diag; that audit trail is the run's only log.
func Convert(path, content string, diag io.Writer) string {
	content = removeObsoleteOptions(path, content, diag)

	for _, entry := range capabilityTable {
		content = applyCapability(path, content, entry, diag)
	}

	return content
}

// applyCapability renames one capability if the document carries it and
// a scope entry matches. A malformed or unmatched scope token skips that
// entry with a diagnostic; it never aborts the file.
func applyCapability(path, content string, entry capability, diag io.Writer) string {
	if !strings.Contains(content, `"`+entry.name+`"`) {
		return content
	}

	if containsScope(entry.scopes, scopeAll) {
		return renameCapability(path, content, entry.name, diag)
	}

	for _, scope := range entry.scopes {
		parts := strings.Split(scope, "_")
		if len(parts) != 2 {
			fmt.Fprintf(diag, "Warning: Scope %s for capability %s is not recognized. Skipping.\n", scope, entry.name)

			continue
		}

		driverType, driverScope := parts[0], parts[1]

		// Gating matches against the lower-cased document, rebuilt each
		// pass since earlier renames may have changed it.
		lowered := strings.ToLower(content)

		if !strings.Contains(lowered, driverType) {
			fmt.Fprintf(diag, "Driver type %s for capability %s not found in %s. Skipping.\n", driverType, entry.name, path)

			continue
		}

		if driverScope == scopeAll || strings.Contains(lowered, driverScope) {
			content = renameCapability(path, content, entry.name, diag)

			continue
		}

		fmt.Fprintf(diag, "Warning: Scope %s for capability %s not found in %s. Skipping.\n", driverScope, entry.name, path)
	}

	return content
}

// removeObsoleteOptions deletes exact `"key": "value",` pairs, checking
// both colon-spacing variants.
func removeObsoleteOptions(path, content string, diag io.Writer) string {
	for _, opt := range obsoleteOptions {
		for _, value := range opt.values {
			tight := fmt.Sprintf("%q: %q,", opt.key, value)
			spaced := fmt.Sprintf("%q : %q,", opt.key, value)

			switch {
			case strings.Contains(content, tight):
				fmt.Fprintf(diag, "Removing unused option: %s with value: %s from %s\n", opt.key, value, path)
				content = strings.ReplaceAll(content, tight, "")
			case strings.Contains(content, spaced):
				fmt.Fprintf(diag, "Removing unused option: %s with value: %s from %s\n", opt.key, value, path)
				content = strings.ReplaceAll(content, spaced, "")
			}
		}
	}

	return content
}

// renameCapability prefixes every literal occurrence of the quoted key.
// The leading quote in the search string keeps an already-prefixed key
// from being prefixed twice.
func renameCapability(path, content, name string, diag io.Writer) string {
	fmt.Fprintf(diag, "Updating capability: %s in %s\n", name, path)

	return strings.ReplaceAll(content, `"`+name+`"`, `"appium:`+name+`"`)
}

func containsScope(scopes []string, want string) bool {
	for _, scope := range scopes {
		if scope == want {
			return true
		}
	}

	return false
}
