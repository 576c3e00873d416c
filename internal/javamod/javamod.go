// Package javamod rewrites Java test-automation sources from the v5.0.x
// SDK API to the v6.0.x API. The rewrite is purely textual: an ordered
// sequence of passes over the whole file buffer, no parsing.
package javamod

// Result holds the transformed source and any advisory warnings produced
// while converting a single file.
type Result struct {
	Content  string
	Warnings []string
}

// Convert applies all rewrite passes to one Java source buffer.
// Pass order is load-bearing: import remapping must run before
// deduplication, locator migration before the accessor and factory
// rewrites, and advisories scan the final text.
func Convert(content string) Result {
	content = remapImports(content)
	content = dedupeImports(content)
	content = migrateLocators(content)
	content = rewriteSingletonAccessors(content)
	content = rewriteFactoryCalls(content)

	var warnings []string

	for _, check := range advisoryChecks {
		if warning := check(content); warning != "" {
			warnings = append(warnings, warning)
		}
	}

	return Result{Content: content, Warnings: warnings}
}
