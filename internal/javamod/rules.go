package javamod

import "regexp"

// strategyImport is inserted when any legacy locator spelling is found.
const strategyImport = "import com.applause.auto.pageobjectmodel.base.Strategy;"

// builderImport is inserted alongside every factory-call rewrite.
const builderImport = "import com.applause.auto.pageobjectmodel.builder.PageObjectBuilder;"

// identifierRemap maps one fully-qualified v5.x identifier to its v6.x home.
type identifierRemap struct {
	old string
	new string
}

// identifierRemaps is applied in declared order against the whole buffer.
// More specific identifiers must stay listed before their package prefixes
// (e.g. jira.annotations.scanner before jira.annotations); a misordered
// table silently produces wrong output.
var identifierRemaps = []identifierRemap{
	{old: "com.applause.auto.pageobjectmodel.elements.BaseElement", new: "com.applause.auto.pageobjectmodel.base.BaseElement"},
	{old: "com.applause.allure.appenders", new: "com.applause.auto.helpers.allure.appenders"},
	{old: "com.applause.allure", new: "com.applause.auto.helpers.allure"},
	{old: "com.applause.email", new: "com.applause.auto.helpers.email"},
	{old: "com.applause.google", new: "com.applause.auto.helpers.google"},
	{old: "com.applause.http.mapping", new: "com.applause.auto.helpers.http.mapping"},
	{old: "com.applause.http.restassured.client", new: "com.applause.auto.helpers.http.restassured.client"},
	{old: "com.applause.http.restassured", new: "com.applause.auto.helpers.http.restassured"},
	{old: "com.applause.jira.annotations.scanner", new: "com.applause.auto.helpers.jira.annotations.scanner"},
	{old: "com.applause.jira.annotations", new: "com.applause.auto.helpers.jira.annotations"},
	{old: "com.applause.jira.clients.modules.jira", new: "com.applause.auto.helpers.jira.clients.modules.jira"},
	{old: "com.applause.jira.clients.modules.xray", new: "com.applause.auto.helpers.jira.clients.modules.xray"},
	{old: "com.applause.jira.clients", new: "com.applause.auto.helpers.jira.clients"},
	{old: "com.applause.jira.constants", new: "com.applause.auto.helpers.jira.constants"},
	{old: "com.applause.jira.dto.jql", new: "com.applause.auto.helpers.jira.dto.jql"},
	{old: "com.applause.jira.dto.requestmappers", new: "com.applause.auto.helpers.jira.dto.requestmappers"},
	{old: "com.applause.jira.dto.responsemappers.iteration", new: "com.applause.auto.helpers.jira.dto.responsemappers.iteration"},
	{old: "com.applause.jira.dto.responsemappers.steps", new: "com.applause.auto.helpers.jira.dto.responsemappers.steps"},
	{old: "com.applause.jira.dto.responsemappers", new: "com.applause.auto.helpers.jira.dto.responsemappers"},
	{old: "com.applause.jira.dto.shared", new: "com.applause.auto.helpers.jira.dto.shared"},
	{old: "com.applause.jira.exceptions", new: "com.applause.auto.helpers.jira.exceptions"},
	{old: "com.applause.jira.helper", new: "com.applause.auto.helpers.jira.helper"},
	{old: "com.applause.jira.listeners", new: "com.applause.auto.testng.listeners"},
	{old: "com.applause.jira.restclient", new: "com.applause.auto.helpers.jira.restclient"},
	{old: "com.applause.mobile.deeplinks", new: "com.applause.auto.helpers.mobile.deeplinks"},
	{old: "com.applause.mobile.file_uploading.SauceLabs", new: "com.applause.auto.helpers.mobile.fileuploading.saucelabs"},
	{old: "com.applause.mobile", new: "com.applause.auto.helpers.mobile"},
	{old: "com.applause.testdata.yaml", new: "com.applause.auto.helpers.testdata.yaml"},
	{old: "com.applause.testdata", new: "com.applause.auto.helpers.testdata"},
	{old: "com.applause.util", new: "com.applause.auto.helpers.util"},
	{old: "com.applause.web", new: "com.applause.auto.helpers.web"},
}

// locatorRule rewrites one legacy @Locate attribute spelling to the
// canonical two-argument form.
type locatorRule struct {
	attr     string
	strategy string
	pattern  *regexp.Regexp
}

var locatorRules = buildLocatorRules()

func buildLocatorRules() []locatorRule {
	table := []struct {
		attr     string
		strategy string
	}{
		{attr: "id", strategy: "ID"},
		{attr: "css", strategy: "CSS"},
		{attr: "xpath", strategy: "XPATH"},
		{attr: "className", strategy: "CLASSNAME"},
		{attr: "name", strategy: "NAME"},
		{attr: "tagName", strategy: "TAGNAME"},
		{attr: "linkText", strategy: "LINKTEXT"},
		{attr: "accessibilityId", strategy: "ACCESSIBILITYID"},
		{attr: "androidUIAutomator", strategy: "ANDROID_UIAUTOMATOR"},
		{attr: "iOSClassChain", strategy: "IOS_CLASSCHAIN"},
		{attr: "iOSNsPredicate", strategy: "IOS_NSPREDICATE"},
		{attr: "appiumClassName", strategy: "APPIUM_CLASSNAME"},
		{attr: "jQuery", strategy: "JQUERY"},
		{attr: "javascript", strategy: "JAVASCRIPT"},
	}

	rules := make([]locatorRule, 0, len(table))
	for _, entry := range table {
		rules = append(rules, locatorRule{
			attr:     entry.attr,
			strategy: entry.strategy,
			pattern:  regexp.MustCompile(`@Locate\(\s*` + entry.attr + ` = `),
		})
	}

	return rules
}

// singletonAccessors rewrites configuration-accessor calls to the
// explicit-singleton form. The Applause variant must stay first: its
// accessor contains the plain variant as a suffix, and rewriting it
// first keeps the shorter pattern from matching inside it.
var singletonAccessors = []identifierRemap{
	{old: "ApplauseEnvironmentConfigurationManager.get()", new: "ApplauseEnvironmentConfigurationManager.INSTANCE.get()"},
	{old: "EnvironmentConfigurationManager.get()", new: "EnvironmentConfigurationManager.INSTANCE.get()"},
}
