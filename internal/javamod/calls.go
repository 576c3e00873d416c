package javamod

import (
	"regexp"
	"strings"
)

// factoryCallPattern matches a SdkHelper.create call terminated by a
// statement separator. The class argument is matched lazily so a line
// holding two statements never collapses into one match.
var factoryCallPattern = regexp.MustCompile(`SdkHelper\.create\((.+?)\.class\);`)

// maxFactoryRewrites bounds the rewrite loop. The replacement text never
// re-matches the pattern, so the cap only guards against pathological
// inputs where an argument expands into further matches.
const maxFactoryRewrites = 1000

// rewriteSingletonAccessors rewrites configuration-accessor calls to the
// explicit-singleton-instance form, every occurrence in the buffer.
func rewriteSingletonAccessors(content string) string {
	for _, accessor := range singletonAccessors {
		content = strings.ReplaceAll(content, accessor.old, accessor.new)
	}

	return content
}

// rewriteFactoryCalls rewrites SdkHelper.create(X.class); calls into the
// PageObjectBuilder chain, one match at a time against the already
// mutated buffer, inserting the builder import after each rewrite.
func rewriteFactoryCalls(content string) string {
	for i := 0; i < maxFactoryRewrites; i++ {
		loc := factoryCallPattern.FindStringSubmatchIndex(content)
		if loc == nil {
			break
		}

		className := content[loc[2]:loc[3]]
		replacement := "PageObjectBuilder.withContext(SdkHelper.getDriverContext()).forBaseComponent(" + className + ".class).initialize();"

		next := content[:loc[0]] + replacement + content[loc[1]:]
		if next == content {
			break
		}

		content = insertImport(builderImport, next)
	}

	return content
}
