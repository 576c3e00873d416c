package javamod

// migrateLocators rewrites legacy single-attribute @Locate spellings to
// the canonical @Locate(using = Strategy.X, value = ...) form. When any
// legacy spelling is present the Strategy import is ensured first; all
// rules then run unconditionally in table order.
func migrateLocators(content string) string {
	for _, rule := range locatorRules {
		if rule.pattern.MatchString(content) {
			content = insertImport(strategyImport, content)

			break
		}
	}

	for _, rule := range locatorRules {
		content = rule.pattern.ReplaceAllString(content, "@Locate(using = Strategy."+rule.strategy+", value = ")
	}

	return content
}
