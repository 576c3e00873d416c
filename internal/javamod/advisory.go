package javamod

import (
	"regexp"
	"strings"
)

// locateAnnotationPattern captures a whole @Locate annotation span on one
// line for the post-conversion advisory scan.
var locateAnnotationPattern = regexp.MustCompile(`@Locate\(.*\)`)

// warnMissingLocator is emitted when a @Locate annotation survives the
// conversion without a using= strategy argument.
const warnMissingLocator = "@Locate annotation found without an underlying locator. " +
	"If no locator is tied to the element, please add the @SubComponent annotation."

// warnGetWebElement is emitted when the removed v5.x element accessor is
// still referenced.
const warnGetWebElement = "getWebElement() method found. Please replace with getUnderlyingWebElement()"

// advisoryChecks run against the final buffer. Each returns one warning
// string or empty; a file collects at most one warning per check.
var advisoryChecks = []func(string) string{
	checkSubComponents,
	checkGetWebElement,
}

// checkSubComponents scans every @Locate span and reports the first one
// missing the canonical "using" marker. The scan short-circuits: one
// warning per file, not per occurrence.
func checkSubComponents(content string) string {
	for _, span := range locateAnnotationPattern.FindAllString(content, -1) {
		if !strings.Contains(span, "using") {
			return warnMissingLocator
		}
	}

	return ""
}

func checkGetWebElement(content string) string {
	if strings.Contains(content, "getWebElement") {
		return warnGetWebElement
	}

	return ""
}
