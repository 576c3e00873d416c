// Package pommod rewrites Maven build descriptors (pom.xml) for the
// v6.0.x SDK: version bumps, Java language-level bumps, and dependency
// block replacement. The document is edited as raw text with multi-line
// regexes; dependency blocks only match when their child tags appear in
// the exact declared order.
package pommod

import "regexp"

// Options control the target versions written into the descriptor.
type Options struct {
	// SDKVersion is the value written into the
	// com.applause.sdk.java.version property.
	SDKVersion string

	// JavaReleaseFrom is the source/target language level being migrated
	// away from.
	JavaReleaseFrom string

	// JavaReleaseTo is the language level written in its place.
	JavaReleaseTo string
}

// DefaultOptions returns the stock v5-to-v6 migration targets.
func DefaultOptions() Options {
	return Options{
		SDKVersion:      "6.0.0",
		JavaReleaseFrom: "17",
		JavaReleaseTo:   "21",
	}
}

// substitution is one ordered regex rewrite over the whole document.
type substitution struct {
	pattern     *regexp.Regexp
	replacement string
}

// sdkBOMPattern matches the v5.x SDK bill-of-materials import block.
// Child tags must appear in exactly this order; a semantically identical
// but reordered block is skipped.
var sdkBOMPattern = regexp.MustCompile(`(?s)<dependency>\s+<groupId>com\.applause</groupId>\s+` +
	`<artifactId>auto\.sdk\.java</artifactId>\s+<version>.*</version>\s+` +
	`<type>pom</type>\s+<scope>import</scope>\s+</dependency>`)

// helperRepositoryPattern matches the legacy helper-sdk package
// repository declaration for removal.
var helperRepositoryPattern = regexp.MustCompile(`(?s)\s*<repository>\s*<id>github</id>\s*` +
	`<name>GitHub OWNER Apache Maven Packages</name>\s*` +
	`<url>https://maven\.pkg\.github\.com/ApplauseAuto/helper-sdk\.auto</url>\s*` +
	`<releases>\s*<enabled>true</enabled>\s*<updatePolicy>always</updatePolicy>\s*</releases>\s*` +
	`<snapshots>\s*<enabled>true</enabled>\s*</snapshots>\s*</repository>\s*`)

// helperDependencyPattern matches the legacy helper-sdk dependency for
// removal.
var helperDependencyPattern = regexp.MustCompile(`(?s)\s*<dependency>\s*<artifactId>helper-sdk</artifactId>\s*` +
	`<groupId>com\.applause</groupId>\s*<version>\$\{helper\.sdk\.version\}</version>\s*</dependency>\s*`)

// dependenciesClosePattern anchors insertion of the helpers dependency
// immediately before the closing container tag.
var dependenciesClosePattern = regexp.MustCompile(`(</dependencies>)`)

const sdkBOMReplacement = `<dependency>
                <groupId>com.applause</groupId>
                <artifactId>auto-sdk-java-page-object</artifactId>
                <version>${com.applause.sdk.java.version}</version>
            </dependency>
            <dependency>
                <groupId>com.applause</groupId>
                <artifactId>auto-sdk-java-testng</artifactId>
                <version>${com.applause.sdk.java.version}</version>
            </dependency>`

const helpersDependencyInsert = `<dependency>
                    <groupId>com.applause</groupId>
                    <artifactId>auto-sdk-java-helpers</artifactId>
                    <version>${com.applause.sdk.java.version}</version>
                </dependency>
$1`

// sdkVersionPattern matches the SDK version property. Greedy across
// newlines; descriptors declare the property once.
var sdkVersionPattern = regexp.MustCompile(`(?s)<com\.applause\.sdk\.java\.version>.+</com\.applause\.sdk\.java\.version>`)

// Convert applies every substitution in declared order and returns the
// rewritten descriptor. The conversion never produces warnings.
func Convert(content string, opts Options) string {
	for _, sub := range buildSubstitutions(opts) {
		content = sub.pattern.ReplaceAllString(content, sub.replacement)
	}

	return content
}

func buildSubstitutions(opts Options) []substitution {
	return []substitution{
		{
			pattern:     sdkVersionPattern,
			replacement: "<com.applause.sdk.java.version>" + opts.SDKVersion + "</com.applause.sdk.java.version>",
		},
		{
			pattern:     regexp.MustCompile(`<source>` + regexp.QuoteMeta(opts.JavaReleaseFrom) + `</source>`),
			replacement: "<source>" + opts.JavaReleaseTo + "</source>",
		},
		{
			pattern:     regexp.MustCompile(`<target>` + regexp.QuoteMeta(opts.JavaReleaseFrom) + `</target>`),
			replacement: "<target>" + opts.JavaReleaseTo + "</target>",
		},
		{pattern: sdkBOMPattern, replacement: sdkBOMReplacement},
		{pattern: helperRepositoryPattern, replacement: ""},
		{pattern: helperDependencyPattern, replacement: ""},
		{pattern: dependenciesClosePattern, replacement: helpersDependencyInsert},
	}
}
