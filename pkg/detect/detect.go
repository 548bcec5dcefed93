// Package detect orchestrates the filename → extension → shebang →
// heuristics → classifier cascade, narrowing a file's candidate language
// set one stage at a time until exactly one language remains or every
// stage has spoken.
package detect

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/monkslc/hyperpolyglot/pkg/classifier"
	"github.com/monkslc/hyperpolyglot/pkg/heuristics"
	"github.com/monkslc/hyperpolyglot/pkg/langs"
)

// maxContentBytes bounds how much of a file the heuristics and classifier
// stages read, on a UTF-8 boundary, matching the cap pkg/classifier applies
// independently when invoked directly.
const maxContentBytes = 51_200

// Strategy names which pipeline stage decided a Detection.
type Strategy string

const (
	FilenameStrategy   Strategy = "Filename"
	ExtensionStrategy  Strategy = "Extension"
	ShebangStrategy    Strategy = "Shebang"
	HeuristicsStrategy Strategy = "Heuristics"
	ClassifierStrategy Strategy = "Classifier"
)

// Detection is the winning language plus the strategy that decided it.
type Detection struct {
	strategy Strategy
	language string
}

// Language returns the detected language's display name.
func (d Detection) Language() string { return d.language }

// Variant returns the name of the strategy that produced this Detection.
func (d Detection) Variant() string { return string(d.strategy) }

func detection(strategy Strategy, language string) *Detection {
	return &Detection{strategy: strategy, language: language}
}

// Detect runs the full cascade against the file at path. A nil Detection
// with a nil error means no strategy could decide; a non-nil error means
// the file could not be read.
func Detect(path string) (*Detection, error) {
	base := filepath.Base(path)

	if language, ok := langs.Filenames()[base]; ok {
		return detection(FilenameStrategy, language), nil
	}

	ext, candidates := languagesByExtension(base)
	if len(candidates) == 1 {
		return detection(ExtensionStrategy, candidates[0]), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	content := string(raw)

	shebangLangs := languagesFromShebang(content)
	candidates = filterCandidates(candidates, shebangLangs)
	if len(candidates) == 1 {
		return detection(ShebangStrategy, candidates[0]), nil
	}

	truncated := truncateUTF8(content, maxContentBytes)
	heuristicLangs := heuristics.GetLanguagesFromHeuristics(ext, candidates, truncated)
	candidates = filterCandidates(candidates, heuristicLangs)

	switch len(candidates) {
	case 0:
		return nil, nil
	case 1:
		return detection(HeuristicsStrategy, candidates[0]), nil
	default:
		return detection(ClassifierStrategy, classifier.ClassifyOne(truncated, candidates)), nil
	}
}

// filterCandidates narrows prev by new: an empty side means that stage had
// no opinion, so the other side passes through unchanged. A non-empty,
// disjoint intersection is refused — losing every candidate to a single
// faulty stage would make downstream stages unable to recover.
func filterCandidates(prev, next []string) []string {
	if len(prev) == 0 {
		return next
	}
	if len(next) == 0 {
		return prev
	}

	nextSet := make(map[string]struct{}, len(next))
	for _, lang := range next {
		nextSet[lang] = struct{}{}
	}

	intersection := make([]string, 0, len(prev))
	for _, lang := range prev {
		if _, ok := nextSet[lang]; ok {
			intersection = append(intersection, lang)
		}
	}

	if len(intersection) == 0 {
		return prev
	}
	return intersection
}

// languagesByExtension lowercases base, strips one leading dot if present,
// then tries every registered suffix starting at a '.' boundary from
// longest to shortest, so "example.cmake.in" matches ".cmake.in" before
// ".in". It returns the matched extension key (for the heuristics
// resolver) and its candidate languages; an unmatched file returns ("", nil).
func languagesByExtension(base string) (string, []string) {
	name := strings.ToLower(base)
	if strings.HasPrefix(name, ".") {
		name = name[1:]
	}

	extensions := langs.Extensions()
	for i := 0; i < len(name); i++ {
		if name[i] != '.' {
			continue
		}
		suffix := name[i:]
		if candidates, ok := extensions[suffix]; ok {
			return suffix, candidates
		}
	}

	return "", nil
}

// truncateUTF8 caps content at n bytes, walking back to a valid rune
// boundary so a multi-byte character is never split.
func truncateUTF8(content string, n int) string {
	if len(content) <= n {
		return content
	}
	end := n
	for end > 0 && !utf8.RuneStart(content[end]) {
		end--
	}
	return content[:end]
}
