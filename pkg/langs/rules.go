package langs

// PatternKind tags the shape of a PatternSpec the way pkg/pattern's Pattern
// type tags a compiled pattern. RuleSpec/PatternSpec are the generated,
// uncompiled form; pkg/heuristics compiles them once at package init.
type PatternKind int

const (
	PatternPositive PatternKind = iota
	PatternNegative
	PatternAnd
	PatternOr
)

// PatternSpec is the generated-table form of a pkg/pattern.Pattern. Regex is
// populated for Positive/Negative leaves; Children is populated for And/Or
// combinators. A zero-value PatternSpec (Kind defaults to PatternPositive
// with an empty Regex) is the sentinel the heuristics resolver treats as
// "always matches". gentables emits it for a rule with no pattern at all,
// and also for a named_pattern whose name has no entry under named_patterns.
type PatternSpec struct {
	Kind     PatternKind
	Regex    string
	Children []PatternSpec
}

// HasPattern reports whether the spec carries a real pattern, as opposed to
// being the zero-value sentinel for an unconditional rule.
func (p PatternSpec) HasPattern() bool {
	return p.Regex != "" || len(p.Children) > 0
}

// RuleSpec is one entry of a disambiguation rule list: if Pattern matches
// (or is absent, meaning "always"), the file is one of Languages. Disjoint
// from Languages having len > 1, which means the rule narrows the candidate
// set without picking a single winner.
type RuleSpec struct {
	Languages []string
	Pattern   PatternSpec
}

// DisambiguationRules returns the rule list gentables recorded for ext, the
// lowercase, dotted extension (e.g. ".h"). The result is the shared table
// entry; callers must not modify it.
func DisambiguationRules(ext string) ([]RuleSpec, bool) {
	rules, ok := disambiguationTable[ext]
	return rules, ok
}

// DisambiguatedExtensions returns every extension gentables recorded a rule
// list for, so callers can enumerate the full disambiguation table instead
// of hardcoding the extension set it happens to cover today.
func DisambiguatedExtensions() []string {
	exts := make([]string, 0, len(disambiguationTable))
	for ext := range disambiguationTable {
		exts = append(exts, ext)
	}
	return exts
}

// Filenames returns the filename-exact-match table. The caller owns nothing
// mutable — callers must not write through the returned map.
func Filenames() map[string]string { return filenameTable }

// Extensions returns the extension table. See Filenames for ownership.
func Extensions() map[string][]string { return extensionTable }

// Interpreters returns the interpreter table. See Filenames for ownership.
func Interpreters() map[string][]string { return interpreterTable }
