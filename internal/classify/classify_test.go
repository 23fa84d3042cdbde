package classify

import (
	"testing"

	"github.com/pbaettig/gitpulse/schema"
	"github.com/stretchr/testify/assert"
)

// TestClassifyFiles checks category assignment for representative paths.
func TestClassifyFiles(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected schema.FileCategory
	}{
		{"go source", "internal/server/server.go", schema.CategoryApplication},
		{"go test", "internal/server/server_test.go", schema.CategoryTest},
		{"python test prefix", "test_parser.py", schema.CategoryTest},
		{"jest spec", "src/app.spec.ts", schema.CategoryTest},
		{"tests dir", "tests/fixtures/load.rb", schema.CategoryTest},
		{"makefile", "Makefile", schema.CategoryBuild},
		{"dockerfile", "Dockerfile", schema.CategoryBuild},
		{"ci workflow", ".github/workflows/ci.yml", schema.CategoryBuild},
		{"go mod", "go.mod", schema.CategoryBuild},
		{"yaml config", "deploy/values.yaml", schema.CategoryBuild},
		{"readme", "README.md", schema.CategoryDocumentation},
		{"docs tree", "docs/guide/index.html", schema.CategoryDocumentation},
		{"typescript", "web/src/index.tsx", schema.CategoryApplication},
		{"binary blob", "assets/logo.png", schema.CategoryOther},
		{"no extension", "LICENSE", schema.CategoryOther},
	}

	c := NewExtensionClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Classify(tt.path))
		})
	}
}

// TestClassifyCommits checks merge and automation detection.
func TestClassifyCommits(t *testing.T) {
	c := NewMessageClassifier()

	t.Run("merges", func(t *testing.T) {
		assert.True(t, c.IsMerge("Merge branch 'main' into develop"))
		assert.True(t, c.IsMerge("Merge pull request #42 from fork/fix"))
		assert.False(t, c.IsMerge("Fix merge conflict handling in parser"))
	})

	t.Run("automated", func(t *testing.T) {
		assert.True(t, c.IsAutomated("Bump version to 1.4.2"))
		assert.True(t, c.IsAutomated("chore(release): 2.0.0"))
		assert.True(t, c.IsAutomated("Update deps (dependabot)"))
		assert.False(t, c.IsAutomated("Add release notes for 1.4"))
	})
}
