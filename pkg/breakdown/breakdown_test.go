package breakdown

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, body := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	return root
}

func TestWalkAggregatesByLanguage(t *testing.T) {
	root := writeTree(t, map[string]string{
		"APKBUILD":       "pkgname=foo\n",
		"pizza.purs":     "module Pizza where\n",
		"a.es":           "'use strict';\nmodule.exports = {};\n",
		"vendor/skip.es": "'use strict';\nmodule.exports = {};\n",
	})

	b, err := Walk(root, Options{})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Alpine Abuild", "PureScript", "JavaScript"}, b.Languages())
	assert.Len(t, b.ByLanguage["JavaScript"], 1)
	assert.Contains(t, b.ByLanguage["JavaScript"][0], "a.es")
	assert.NotContains(t, b.Files, FileResult{Path: filepath.Join(root, "vendor/skip.es")})
}

func TestWalkSkipsIgnoredDirectories(t *testing.T) {
	root := writeTree(t, map[string]string{
		"node_modules/pkg/index.es": "'use strict';\n",
		"real.es":                   "'use strict';\n",
	})

	b, err := Walk(root, Options{})
	require.NoError(t, err)

	for _, path := range b.ByLanguage["JavaScript"] {
		assert.NotContains(t, path, "node_modules")
	}
}

func TestWalkSkipsDocumentationDirectories(t *testing.T) {
	root := writeTree(t, map[string]string{
		"docs/guide.es":   "'use strict';\n",
		"examples/demo.es": "'use strict';\n",
		"real.es":          "'use strict';\n",
	})

	b, err := Walk(root, Options{})
	require.NoError(t, err)

	assert.Len(t, b.ByLanguage["JavaScript"], 1)
	assert.Contains(t, b.ByLanguage["JavaScript"][0], "real.es")
}

func TestWalkSkipsDocumentationFiles(t *testing.T) {
	root := writeTree(t, map[string]string{
		"README.md":    "# hi\n",
		"CHANGELOG.md": "# changes\n",
		"a.es":         "'use strict';\n",
	})

	b, err := Walk(root, Options{})
	require.NoError(t, err)

	assert.Len(t, b.ByLanguage["JavaScript"], 1)
	assert.NotContains(t, b.Languages(), "Markdown")
}

func TestWalkHonorsExtraIgnorePatterns(t *testing.T) {
	root := writeTree(t, map[string]string{
		"internal-only/secret.es": "'use strict';\n",
		"real.es":                 "'use strict';\n",
	})

	b, err := Walk(root, Options{ExtraIgnore: []string{"**/internal-only/**"}})
	require.NoError(t, err)

	assert.Len(t, b.ByLanguage["JavaScript"], 1)
	assert.Contains(t, b.ByLanguage["JavaScript"][0], "real.es")
}

func TestWalkRecordsUnrecognizedFiles(t *testing.T) {
	root := writeTree(t, map[string]string{
		"mystery.kasdjf": "whatever\n",
	})

	b, err := Walk(root, Options{})
	require.NoError(t, err)

	require.Len(t, b.UnrecognizedAt, 1)
	assert.Contains(t, b.UnrecognizedAt[0], "mystery.kasdjf")
}

func TestWalkEmptyDirectory(t *testing.T) {
	root := t.TempDir()

	b, err := Walk(root, Options{})
	require.NoError(t, err)
	assert.Empty(t, b.Files)
	assert.Empty(t, b.Languages())
}

func TestWorkerCountHonorsEnvOverride(t *testing.T) {
	t.Setenv(threadsEnvVar, "3")
	assert.Equal(t, 3, workerCount(0))
}

func TestWorkerCountPrefersConfiguredValue(t *testing.T) {
	t.Setenv(threadsEnvVar, "3")
	assert.Equal(t, 7, workerCount(7))
}

func TestWorkerCountIgnoresInvalidEnvOverride(t *testing.T) {
	t.Setenv(threadsEnvVar, "not-a-number")
	assert.Greater(t, workerCount(0), 0)
}

func TestIsIgnoredMatchesNestedVendor(t *testing.T) {
	assert.True(t, isIgnored("a/vendor/b/c.go", ignoredPatterns))
	assert.False(t, isIgnored("a/vendored-thing/c.go", ignoredPatterns))
}

func TestIsIgnoredMatchesDocumentationFiles(t *testing.T) {
	assert.True(t, isIgnored("README.md", ignoredPatterns))
	assert.True(t, isIgnored("a/b/LICENSE", ignoredPatterns))
	assert.False(t, isIgnored("a/b/REALLY.go", ignoredPatterns))
}

func TestLanguagesSortedByCountThenName(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.es":   "'use strict';\n",
		"b.es":   "'use strict';\n",
		"c.purs": "module C where\n",
	})

	b, err := Walk(root, Options{})
	require.NoError(t, err)

	langs := b.Languages()
	require.Len(t, langs, 2)
	assert.Equal(t, "JavaScript", langs[0])
}
