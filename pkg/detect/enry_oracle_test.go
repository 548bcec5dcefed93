package detect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/src-d/enry/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDetectAgreesWithEnry cross-validates a handful of unambiguous samples
// against src-d/enry, the Go port of GitHub's own Linguist, rather than
// against hand-picked expectations: if this cascade and Linguist's own
// reference implementation disagree on a file this plain, one of the two
// knowledge bases has drifted.
func TestDetectAgreesWithEnry(t *testing.T) {
	samples := map[string]string{
		"main.go":     "package main\n\nfunc main() {}\n",
		"script.py":   "def main():\n    pass\n",
		"index.js":    "'use strict';\nmodule.exports = {};\n",
		"style.css":   "body { margin: 0; }\n",
		"Makefile":    "all:\n\techo hi\n",
		"README.md":   "# Title\n\nSome text.\n",
	}

	for name, content := range samples {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			got, err := Detect(path)
			require.NoError(t, err)
			require.NotNil(t, got, "expected a detection for %s", name)

			want := enry.GetLanguage(name, []byte(content))
			assert.Equal(t, want, got.Language(), "cascade and enry disagree on %s", name)
		})
	}
}
