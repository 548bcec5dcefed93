// Package trainer builds the token log-probability tables pkg/langs ships
// as a generated file. It walks a samples directory laid out as
// samples/<language>/<file>, tokenizes every sample with pkg/tokenizer, and
// reduces the key-token counts down to per-language log probabilities the
// classifier can sum directly.
package trainer

import (
	"fmt"
	"go/format"
	"math"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/monkslc/hyperpolyglot/pkg/tokenizer"
)

// maxTokenBytes mirrors the cap pkg/classifier applies when scoring, so a
// token that could never contribute to a score never occupies a slot in the
// trained table either.
const maxTokenBytes = 32

// fstarDirName is the on-disk directory name for F*: a literal "*" isn't a
// portable filename character, so the samples tree spells it "Fstar" and
// training renames it back to the display name.
const fstarDirName = "Fstar"
const fstarDisplayName = "F*"

// Model holds every language's raw token counts during accumulation.
type Model struct {
	counts map[string]map[string]int
	totals map[string]int
}

// NewModel returns an empty Model ready for accumulation.
func NewModel() *Model {
	return &Model{
		counts: make(map[string]map[string]int),
		totals: make(map[string]int),
	}
}

// Train walks samplesDir and accumulates key-token counts for every
// language subdirectory it finds. Files that aren't valid UTF-8 are
// tokenized as empty content rather than failing the whole run, matching
// the tolerant behavior expected of an offline, best-effort training pass.
func Train(samplesDir string) (*Model, error) {
	entries, err := os.ReadDir(samplesDir)
	if err != nil {
		return nil, fmt.Errorf("read samples dir: %w", err)
	}

	model := NewModel()

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		language := entry.Name()
		if language == fstarDirName {
			language = fstarDisplayName
		}

		languageDir := filepath.Join(samplesDir, entry.Name())
		if err := model.trainLanguage(language, languageDir); err != nil {
			return nil, err
		}
	}

	return model, nil
}

func (m *Model) trainLanguage(language, dir string) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read language dir %s: %w", dir, err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		path := filepath.Join(dir, file.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read sample %s: %w", path, err)
		}

		content := string(raw)
		if !utf8.Valid(raw) {
			content = ""
		}
		m.accumulate(language, content)
	}

	return nil
}

func (m *Model) accumulate(language, content string) {
	for _, text := range tokenizer.KeyTokens(content) {
		if len(text) > maxTokenBytes {
			continue
		}

		if m.counts[language] == nil {
			m.counts[language] = make(map[string]int)
		}

		m.counts[language][text]++
		m.totals[language]++
	}
}

// TotalTokens returns the number of key tokens accumulated for language,
// before reduction to log-probabilities. Useful for reporting training
// corpus size without recomputing LogProbs.
func (m *Model) TotalTokens(language string) int {
	return m.totals[language]
}

// LogProbs reduces the accumulated counts down to log(count/total) per
// token, the exact quantity pkg/classifier sums when scoring a candidate.
func (m *Model) LogProbs() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(m.counts))

	for language, tokenCounts := range m.counts {
		total := float64(m.totals[language])
		probs := make(map[string]float64, len(tokenCounts))
		for token, count := range tokenCounts {
			probs[token] = math.Log(float64(count) / total)
		}
		out[language] = probs
	}

	return out
}

// WriteGoSource renders the trained table as a Go source file declaring
// tokenLogProbTable, gofmt'd the same way any generated table in pkg/langs
// is expected to look. pkgName is the package clause to emit.
func (m *Model) WriteGoSource(path, pkgName string) error {
	logProbs := m.LogProbs()

	languages := make([]string, 0, len(logProbs))
	for language := range logProbs {
		languages = append(languages, language)
	}
	sort.Strings(languages)

	src := fmt.Sprintf("// Code generated by hyply-train. DO NOT EDIT.\n\npackage %s\n\nvar tokenLogProbTable = map[string]map[string]float64{\n", pkgName)
	for _, language := range languages {
		src += fmt.Sprintf("\t%q: {\n", language)

		tokens := make([]string, 0, len(logProbs[language]))
		for token := range logProbs[language] {
			tokens = append(tokens, token)
		}
		sort.Strings(tokens)

		for _, token := range tokens {
			src += fmt.Sprintf("\t\t%q: %#v,\n", token, logProbs[language][token])
		}
		src += "\t},\n"
	}
	src += "}\n"

	formatted, err := format.Source([]byte(src))
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}

	return os.WriteFile(path, formatted, 0o644)
}
