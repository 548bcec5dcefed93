// Package classifier picks a single language out of a candidate set using a
// Naive Bayes model trained offline by pkg/trainer: the candidate whose
// trained token log-probabilities sum highest over the file's key tokens
// wins.
package classifier

import (
	"math"
	"sort"
	"unicode/utf8"

	"github.com/monkslc/hyperpolyglot/pkg/langs"
	"github.com/monkslc/hyperpolyglot/pkg/tokenizer"
)

const (
	// maxTokenBytes discards identifiers/symbols longer than this before
	// scoring. Long tokens are usually machine-generated (hashes, minified
	// bundles, base64 blobs) and carry little language signal.
	maxTokenBytes = 32

	// defaultLogProb is the smoothing floor applied to a key token that a
	// trained language's model never saw during training.
	defaultLogProb = -19.0

	// maxContentBytes caps how much of a file is tokenized. Classification
	// accuracy plateaus well before this, and capping keeps a single huge
	// generated file from dominating a breakdown's wall-clock time.
	maxContentBytes = 51_200
)

// Score pairs a candidate language with its summed log-probability.
type Score struct {
	Language string
	Value    float64
}

// Classify scores every candidate against content's key tokens and returns
// them sorted by descending score, most likely first. An empty candidates
// slice scores every known language. A candidate with no trained model
// scores negative infinity, so it always sorts last.
func Classify(content string, candidates []string) []Score {
	if len(candidates) == 0 {
		candidates = langs.All()
	}

	keys := tokenizer.KeyTokens(truncate(content))

	scores := make([]Score, len(candidates))
	for i, language := range candidates {
		scores[i] = Score{Language: language, Value: score(language, keys)}
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Value > scores[j].Value
	})

	return scores
}

// ClassifyOne is a convenience wrapper around Classify returning only the
// winning language.
func ClassifyOne(content string, candidates []string) string {
	scores := Classify(content, candidates)
	return scores[0].Language
}

func score(language string, keys []string) float64 {
	tokenLogProbs, trained := langs.TokenLogProbs(language)
	if !trained {
		return math.Inf(-1)
	}

	sum := 0.0
	for _, key := range keys {
		if len(key) > maxTokenBytes {
			continue
		}
		if logProb, ok := tokenLogProbs[key]; ok {
			sum += logProb
		} else {
			sum += defaultLogProb
		}
	}
	return sum
}

// truncate returns content capped at maxContentBytes, cut on a valid UTF-8
// boundary so the tail of a multi-byte rune is never tokenized as garbage.
func truncate(content string) string {
	if len(content) <= maxContentBytes {
		return content
	}

	end := maxContentBytes
	for end > 0 && !utf8.RuneStart(content[end]) {
		end--
	}
	return content[:end]
}
