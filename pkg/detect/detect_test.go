package detect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDetectFilenameMatch(t *testing.T) {
	path := writeFile(t, "APKBUILD", "pkgname=foo\n")
	d, err := Detect(path)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "Filename", d.Variant())
	assert.Equal(t, "Alpine Abuild", d.Language())
}

func TestDetectExtensionMatch(t *testing.T) {
	path := writeFile(t, "pizza.purs", "module Pizza where\n")
	d, err := Detect(path)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "Extension", d.Variant())
	assert.Equal(t, "PureScript", d.Language())
}

func TestDetectShebangPython(t *testing.T) {
	path := writeFile(t, "script", "#!/usr/bin/python\nprint('hi')\n")
	d, err := Detect(path)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "Shebang", d.Variant())
	assert.Equal(t, "Python", d.Language())
}

func TestDetectShebangShExecHack(t *testing.T) {
	path := writeFile(t, "sh_exec", "#!/bin/sh\nexec scala \"$0\" \"$@\"\n!#\n")
	d, err := Detect(path)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "Shebang", d.Variant())
	assert.Equal(t, "Scala", d.Language())
}

func TestDetectHeuristicsJavaScript(t *testing.T) {
	path := writeFile(t, "a.es", "'use strict';\nmodule.exports = {};\n")
	d, err := Detect(path)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "Heuristics", d.Variant())
	assert.Equal(t, "JavaScript", d.Language())
}

func TestDetectClassifierRust(t *testing.T) {
	body := `fn main() {
	let result = match optional {
		Some(x) => x,
		None => 0,
	};
}`
	path := writeFile(t, "peep.rs", body)
	d, err := Detect(path)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "Classifier", d.Variant())
	assert.Equal(t, "Rust", d.Language())
}

func TestDetectHeuristicsCppHeader(t *testing.T) {
	path := writeFile(t, "a.h", "std::cout << x;\n")
	d, err := Detect(path)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "Heuristics", d.Variant())
	assert.Equal(t, "C++", d.Language())
}

func TestDetectHeuristicsCHeaderDefault(t *testing.T) {
	path := writeFile(t, "a.h", "typedef struct point { int x; int y; } point;\n")
	d, err := Detect(path)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "Heuristics", d.Variant())
	assert.Equal(t, "C", d.Language())
}

func TestDetectExtensionCaseInsensitive(t *testing.T) {
	lower := writeFile(t, "f.h", "std::cout << x;\n")
	upper := writeFile(t, "F.H", "std::cout << x;\n")

	dLower, err := Detect(lower)
	require.NoError(t, err)
	dUpper, err := Detect(upper)
	require.NoError(t, err)

	assert.Equal(t, dLower.Language(), dUpper.Language())
}

func TestDetectFilenameBeatsExtension(t *testing.T) {
	path := writeFile(t, "Makefile.rs", "all:\n\techo hi\n")
	d, err := Detect(path)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "Filename", d.Variant())
	assert.Equal(t, "Makefile", d.Language())
}

func TestDetectMultiSegmentExtensionPrefersLongestSuffix(t *testing.T) {
	path := writeFile(t, "example.cmake.in", "set(FOO bar)\n")
	d, err := Detect(path)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "Extension", d.Variant())
	assert.Equal(t, "CMake", d.Language())
}

func TestDetectUnknownReturnsNilDetection(t *testing.T) {
	path := writeFile(t, "mystery.kasdjf", "whatever content\n")
	d, err := Detect(path)
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestFilterCandidatesEmptyPrevReturnsNew(t *testing.T) {
	got := filterCandidates(nil, []string{"Go"})
	assert.Equal(t, []string{"Go"}, got)
}

func TestFilterCandidatesEmptyNextReturnsPrev(t *testing.T) {
	got := filterCandidates([]string{"Go", "C"}, nil)
	assert.Equal(t, []string{"Go", "C"}, got)
}

func TestFilterCandidatesIntersects(t *testing.T) {
	got := filterCandidates([]string{"Go", "C", "Rust"}, []string{"Rust", "C"})
	assert.ElementsMatch(t, []string{"C", "Rust"}, got)
}

func TestFilterCandidatesRefusesToEmptyOut(t *testing.T) {
	got := filterCandidates([]string{"Go", "C"}, []string{"Rust"})
	assert.Equal(t, []string{"Go", "C"}, got)
}

func TestLanguagesFromShebangEnv(t *testing.T) {
	assert.Equal(t, []string{"JavaScript"}, languagesFromShebang("#!/usr/bin/env node\n"))
}

func TestLanguagesFromShebangMinorVersion(t *testing.T) {
	assert.Equal(t, []string{"Python"}, languagesFromShebang("#!/usr/bin/python2.6\n"))
}

func TestLanguagesFromShebangEnvWithNothing(t *testing.T) {
	assert.Nil(t, languagesFromShebang("#!/usr/bin/env\n"))
}

func TestLanguagesFromShebangBare(t *testing.T) {
	assert.Nil(t, languagesFromShebang("#!\n"))
}

func TestLanguagesFromShebangNoMatch(t *testing.T) {
	assert.Nil(t, languagesFromShebang("aslkdfjas;ldk\n"))
}

func TestLanguagesFromShebangLeadingWhitespaceDisqualifies(t *testing.T) {
	assert.Nil(t, languagesFromShebang(" #!/usr/bin/python\n"))
}
