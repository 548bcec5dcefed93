// Package heuristics resolves an ambiguous extension's candidate languages
// down to a narrower set (or none at all, meaning "ask the classifier")
// using the content-based disambiguation rules recorded in pkg/langs.
package heuristics

import (
	"sync"

	"github.com/monkslc/hyperpolyglot/pkg/langs"
	"github.com/monkslc/hyperpolyglot/pkg/pattern"
)

// Rule is one compiled disambiguation rule: if Pattern matches (or is nil,
// meaning "always"), the file is one of Languages.
type Rule struct {
	Languages []string
	Pattern   pattern.Pattern // nil means unconditional
}

var (
	compileOnce sync.Once
	rulesByExt  map[string][]Rule
)

// hExtensionDefault is appended to the .h rule list at package init: if no
// Objective-C or C++ pattern matched, Linguist's own heuristics.yml falls
// back to plain C rather than leaving the file unresolved.
const hExtensionDefault = "C"

func compileRules() map[string][]Rule {
	compileOnce.Do(func() {
		rulesByExt = make(map[string][]Rule)
		for ext, specs := range allDisambiguations() {
			rulesByExt[ext] = compileRuleSpecs(specs)
		}
	})
	return rulesByExt
}

func allDisambiguations() map[string][]langs.RuleSpec {
	exts := langs.DisambiguatedExtensions()
	out := make(map[string][]langs.RuleSpec, len(exts))
	for _, ext := range exts {
		if rules, ok := langs.DisambiguationRules(ext); ok {
			out[ext] = rules
		}
	}
	return out
}

func compileRuleSpecs(specs []langs.RuleSpec) []Rule {
	rules := make([]Rule, 0, len(specs))
	for _, spec := range specs {
		rules = append(rules, Rule{
			Languages: spec.Languages,
			Pattern:   compilePatternSpec(spec.Pattern),
		})
	}
	return rules
}

func compilePatternSpec(spec langs.PatternSpec) pattern.Pattern {
	if !spec.HasPattern() {
		return nil
	}

	switch spec.Kind {
	case langs.PatternPositive:
		return pattern.Positive(spec.Regex)
	case langs.PatternNegative:
		return pattern.Negative(spec.Regex)
	case langs.PatternAnd:
		children := make([]pattern.Pattern, 0, len(spec.Children))
		for _, c := range spec.Children {
			children = append(children, compilePatternSpec(c))
		}
		return pattern.And(children...)
	case langs.PatternOr:
		children := make([]pattern.Pattern, 0, len(spec.Children))
		for _, c := range spec.Children {
			children = append(children, compilePatternSpec(c))
		}
		return pattern.Or(children...)
	default:
		return nil
	}
}

// GetLanguagesFromHeuristics walks the rule list for ext against content
// and returns the Languages of the first rule that both matches and whose
// Languages are covered by candidates (an empty candidates means "no
// restriction", consistent with filterCandidates treating an empty set as
// "this stage has no opinion"). If ext has no rules, or no rule matches, it
// returns nil: the caller should fall through to the classifier (or, if the
// original candidate set had exactly one entry, to filterCandidates
// short-circuiting before heuristics ever runs).
func GetLanguagesFromHeuristics(ext string, candidates []string, content string) []string {
	rules := compileRules()[ext]
	if rules == nil {
		return nil
	}

	candidateSet := toSet(candidates)
	for _, rule := range rules {
		if len(candidateSet) > 0 && !isSubset(rule.Languages, candidateSet) {
			continue
		}
		if rule.Pattern == nil || rule.Pattern.Match(content) {
			return rule.Languages
		}
	}

	return nil
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

func isSubset(items []string, set map[string]struct{}) bool {
	for _, item := range items {
		if _, ok := set[item]; !ok {
			return false
		}
	}
	return true
}

func init() {
	compileRules()
	rulesByExt[".h"] = append(rulesByExt[".h"], Rule{Languages: []string{hExtensionDefault}})
}
