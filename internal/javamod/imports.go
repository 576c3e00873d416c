package javamod

import "strings"

// importPrefix classifies a line as an import statement. The test is a
// plain prefix check on the raw line: indented imports are deliberately
// not recognized.
const importPrefix = "import"

// trailingWhitespace is the cutset stripped from line ends during import
// insertion.
const trailingWhitespace = " \t\r\n\f\v"

// remapImports replaces every occurrence of each old fully-qualified
// identifier with its v6.x replacement, anywhere in the buffer, in
// declared table order.
func remapImports(content string) string {
	for _, remap := range identifierRemaps {
		content = strings.ReplaceAll(content, remap.old, remap.new)
	}

	return content
}

// dedupeImports drops any import line byte-identical to one already seen.
// Non-import lines are kept unconditionally, duplicates included.
func dedupeImports(content string) string {
	lines := strings.Split(content, "\n")
	seen := make(map[string]struct{})
	kept := make([]string, 0, len(lines))

	for _, line := range lines {
		if _, dup := seen[line]; dup {
			continue
		}

		if strings.HasPrefix(line, importPrefix) {
			seen[line] = struct{}{}
		}

		kept = append(kept, line)
	}

	return strings.Join(kept, "\n")
}

// insertImport makes sure statement is present as an import line. Every
// line is right-trimmed as a side effect, duplicate import lines are
// dropped, and a missing statement is inserted at the index of the last
// import line seen during the scan (index 1 when the buffer has none).
func insertImport(statement, content string) string {
	lines := strings.Split(content, "\n")
	seen := make(map[string]struct{})
	kept := make([]string, 0, len(lines)+1)

	lastImport := 1
	present := false

	for i, line := range lines {
		// Membership is tested on the raw line against trimmed entries.
		if _, dup := seen[line]; dup {
			continue
		}

		if strings.HasPrefix(line, importPrefix) {
			trimmed := strings.TrimRight(line, trailingWhitespace)
			seen[trimmed] = struct{}{}
			lastImport = i

			if strings.HasSuffix(trimmed, statement) {
				present = true
			}
		}

		kept = append(kept, strings.TrimRight(line, trailingWhitespace))
	}

	if !present {
		idx := lastImport
		if idx > len(kept) {
			idx = len(kept)
		}

		kept = append(kept, "")
		copy(kept[idx+1:], kept[idx:])
		kept[idx] = statement
	}

	return strings.Join(kept, "\n")
}
