// Package classify implements the pluggable file-category and
// commit-message classifiers consumed by the metric calculators.
package classify

import (
	"path/filepath"
	"strings"

	"github.com/pbaettig/gitpulse/internal/contract"
	"github.com/pbaettig/gitpulse/schema"
)

// ExtensionClassifier assigns file categories from path and extension
// rules. It is the default contract.FileClassifier implementation.
type ExtensionClassifier struct{}

var _ contract.FileClassifier = &ExtensionClassifier{} // Compile-time check

// NewExtensionClassifier creates the default file classifier.
func NewExtensionClassifier() *ExtensionClassifier {
	return &ExtensionClassifier{}
}

// applicationExts are source extensions counted as application code.
var applicationExts = map[string]struct{}{
	".go": {}, ".py": {}, ".js": {}, ".jsx": {}, ".ts": {}, ".tsx": {},
	".java": {}, ".kt": {}, ".rb": {}, ".rs": {}, ".c": {}, ".h": {},
	".cc": {}, ".cpp": {}, ".hpp": {}, ".cs": {}, ".php": {}, ".swift": {},
	".scala": {}, ".sh": {}, ".sql": {}, ".css": {}, ".scss": {}, ".html": {},
	".vue": {}, ".svelte": {},
}

// documentationExts are extensions counted as documentation.
var documentationExts = map[string]struct{}{
	".md": {}, ".rst": {}, ".txt": {}, ".adoc": {},
}

// buildFiles are exact file names counted as build machinery.
var buildFiles = map[string]struct{}{
	"makefile": {}, "dockerfile": {}, "justfile": {}, "rakefile": {},
	"go.mod": {}, "go.sum": {}, "package.json": {}, "package-lock.json": {},
	"yarn.lock": {}, "pnpm-lock.yaml": {}, "cargo.toml": {}, "cargo.lock": {},
	"requirements.txt": {}, "pyproject.toml": {}, "pom.xml": {},
	"build.gradle": {}, "cmakelists.txt": {}, "composer.json": {},
}

// buildExts are extensions counted as build machinery when not matched
// by name.
var buildExts = map[string]struct{}{
	".yml": {}, ".yaml": {}, ".toml": {}, ".gradle": {}, ".cmake": {},
}

// Classify maps a repository-relative path to a reporting category.
// Test detection runs before extension lookup so that _test.go files and
// test/ trees never count as application code.
func (c *ExtensionClassifier) Classify(path string) schema.FileCategory {
	lower := strings.ToLower(path)
	base := filepath.Base(lower)
	ext := filepath.Ext(base)

	if isTestPath(lower, base) {
		return schema.CategoryTest
	}
	if _, ok := buildFiles[base]; ok {
		return schema.CategoryBuild
	}
	if strings.HasPrefix(lower, ".github/") || strings.Contains(lower, "/.github/") {
		return schema.CategoryBuild
	}
	if _, ok := documentationExts[ext]; ok {
		return schema.CategoryDocumentation
	}
	if strings.HasPrefix(lower, "docs/") || strings.Contains(lower, "/docs/") {
		return schema.CategoryDocumentation
	}
	if _, ok := buildExts[ext]; ok {
		return schema.CategoryBuild
	}
	if _, ok := applicationExts[ext]; ok {
		return schema.CategoryApplication
	}
	return schema.CategoryOther
}

// isTestPath reports whether a path looks like test code.
func isTestPath(lower, base string) bool {
	if strings.HasSuffix(base, "_test.go") {
		return true
	}
	if strings.HasPrefix(base, "test_") && strings.HasSuffix(base, ".py") {
		return true
	}
	if strings.Contains(base, ".spec.") || strings.Contains(base, ".test.") {
		return true
	}
	for _, dir := range []string{"test/", "tests/", "__tests__/", "spec/"} {
		if strings.HasPrefix(lower, dir) || strings.Contains(lower, "/"+dir) {
			return true
		}
	}
	return false
}
