// Package pattern provides the small composable regex engine the heuristics
// resolver builds its disambiguation rules from: a positive or negative
// literal match, or an And/Or of sub-patterns. Every leaf pattern is
// compiled once into a process-wide cache and is safe for concurrent use by
// the parallel tree walker.
package pattern

import (
	"regexp"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Pattern reports whether content satisfies it. Implementations are
// immutable once built and safe for concurrent use.
type Pattern interface {
	Match(content string) bool
}

var (
	regexCacheMu sync.RWMutex
	regexCache   = make(map[string]*regexp.Regexp)
	compileGroup singleflight.Group
)

// compile returns the compiled form of expr, reusing a previously compiled
// instance when expr has been seen before. It runs when Positive or
// Negative builds a leaf, not when a pattern is matched; pkg/heuristics
// builds every leaf once at package init. When leaves are built from
// several goroutines at once, singleflight collapses concurrent
// first-compiles of the same expr onto one regexp.Compile call. Patterns
// are always matched in multiline mode (^/$
// match at line boundaries, not just string boundaries), mirroring the
// line-oriented heuristics rules they back.
func compile(expr string) *regexp.Regexp {
	regexCacheMu.RLock()
	if re, ok := regexCache[expr]; ok {
		regexCacheMu.RUnlock()
		return re
	}
	regexCacheMu.RUnlock()

	result, _, _ := compileGroup.Do(expr, func() (any, error) {
		re := regexp.MustCompile(`(?m)` + expr)

		regexCacheMu.Lock()
		regexCache[expr] = re
		regexCacheMu.Unlock()

		return re, nil
	})

	return result.(*regexp.Regexp)
}

// normalizeNewlines folds CRLF line endings down to LF before matching, so
// a rule written against Unix line endings behaves the same against a file
// checked out with Windows line endings.
func normalizeNewlines(content string) string {
	if !strings.Contains(content, "\r\n") {
		return content
	}
	return strings.ReplaceAll(content, "\r\n", "\n")
}

type positive struct{ re *regexp.Regexp }

// Positive builds a Pattern that matches when expr matches content.
func Positive(expr string) Pattern {
	return positive{re: compile(expr)}
}

func (p positive) Match(content string) bool {
	return p.re.MatchString(normalizeNewlines(content))
}

type negative struct{ re *regexp.Regexp }

// Negative builds a Pattern that matches when expr does NOT match content.
func Negative(expr string) Pattern {
	return negative{re: compile(expr)}
}

func (n negative) Match(content string) bool {
	return !n.re.MatchString(normalizeNewlines(content))
}

type and struct{ patterns []Pattern }

// And builds a Pattern that matches only when every sub-pattern matches.
func And(patterns ...Pattern) Pattern {
	return and{patterns: patterns}
}

func (a and) Match(content string) bool {
	for _, p := range a.patterns {
		if !p.Match(content) {
			return false
		}
	}
	return true
}

type or struct{ patterns []Pattern }

// Or builds a Pattern that matches when any sub-pattern matches.
func Or(patterns ...Pattern) Pattern {
	return or{patterns: patterns}
}

func (o or) Match(content string) bool {
	for _, p := range o.patterns {
		if p.Match(content) {
			return true
		}
	}
	return false
}
