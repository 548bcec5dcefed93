// Package main builds pkg/langs' generated knowledge-base tables from two
// YAML sources: a languages file mapping each language to its filenames,
// extensions, interpreters, and display metadata, and a heuristics file
// listing the content-based disambiguation rules for ambiguous extensions.
package main

import (
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	languagesPath  string
	heuristicsPath string
	outDir         string
	packageName    string
)

func main() {
	flag.StringVar(&languagesPath, "languages", "languages.yml", "Path to the languages YAML source")
	flag.StringVar(&heuristicsPath, "heuristics", "heuristics.yml", "Path to the heuristics YAML source")
	flag.StringVar(&outDir, "o", "pkg/langs", "Output directory for generated Go source")
	flag.StringVar(&packageName, "package", "langs", "Package name to emit")
	flag.Parse()

	languages, err := loadLanguages(languagesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load languages: %v\n", err)
		os.Exit(1)
	}

	heuristics, err := loadHeuristics(heuristicsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load heuristics: %v\n", err)
		os.Exit(1)
	}

	src, err := format.Source([]byte(generateSource(languages, heuristics)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "format generated source: %v\n", err)
		os.Exit(1)
	}

	out := filepath.Join(outDir, "tables_generated.go")
	if err := os.WriteFile(out, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", out, err)
		os.Exit(1)
	}

	fmt.Printf("generated %s from %d languages and %d disambiguation sets\n", out, len(languages), len(heuristics.Disambiguations))
}

// languageDTO is one entry of languages.yml.
type languageDTO struct {
	Filenames    []string `yaml:"filenames"`
	Interpreters []string `yaml:"interpreters"`
	Extensions   []string `yaml:"extensions"`
	Type         string   `yaml:"type"`
	Color        string   `yaml:"color"`
	Group        string   `yaml:"group"`
}

func loadLanguages(path string) (map[string]languageDTO, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var languages map[string]languageDTO
	if err := yaml.Unmarshal(data, &languages); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return languages, nil
}

// heuristicsDTO is the top-level shape of heuristics.yml.
type heuristicsDTO struct {
	Disambiguations []disambiguationDTO `yaml:"disambiguations"`
	NamedPatterns   map[string]any      `yaml:"named_patterns"`
}

type disambiguationDTO struct {
	Extensions []string  `yaml:"extensions"`
	Rules      []ruleDTO `yaml:"rules"`
}

type ruleDTO struct {
	Language        stringOrSlice `yaml:"language"`
	Pattern         stringOrSlice `yaml:"pattern"`
	NegativePattern string        `yaml:"negative_pattern"`
	NamedPattern    string        `yaml:"named_pattern"`
	And             []ruleDTO     `yaml:"and"`
}

// stringOrSlice accepts either a scalar or a sequence in YAML, matching
// heuristics.yml's "one value, or a list of values" convention for a rule's
// language and pattern fields.
type stringOrSlice []string

func (s *stringOrSlice) UnmarshalYAML(value *yaml.Node) error {
	var many []string
	if err := value.Decode(&many); err == nil {
		*s = many
		return nil
	}

	var one string
	if err := value.Decode(&one); err != nil {
		return err
	}
	*s = []string{one}
	return nil
}

func loadHeuristics(path string) (*heuristicsDTO, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var heuristics heuristicsDTO
	if err := yaml.Unmarshal(data, &heuristics); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &heuristics, nil
}

func generateSource(languages map[string]languageDTO, heuristics *heuristicsDTO) string {
	var b strings.Builder

	b.WriteString("// Code generated by tools/gentables. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", packageName)

	writeLanguageCatalog(&b, languages)
	writeFilenameTable(&b, languages)
	writeExtensionTable(&b, languages)
	writeInterpreterTable(&b, languages)
	writeDisambiguationTable(&b, heuristics)

	return b.String()
}

func sortedNames(languages map[string]languageDTO) []string {
	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func writeLanguageCatalog(b *strings.Builder, languages map[string]languageDTO) {
	b.WriteString("var languageCatalog = map[string]Language{\n")
	for _, name := range sortedNames(languages) {
		lang := languages[name]
		fmt.Fprintf(b, "\t%q: {Name: %q, Type: %s, Color: %q, Group: %q},\n",
			name, name, typeConstant(lang.Type), lang.Color, lang.Group)
	}
	b.WriteString("}\n\n")
}

func typeConstant(languageType string) string {
	switch languageType {
	case "markup":
		return "TypeMarkup"
	case "prose":
		return "TypeProse"
	case "data":
		return "TypeData"
	default:
		return "TypeProgramming"
	}
}

func writeFilenameTable(b *strings.Builder, languages map[string]languageDTO) {
	b.WriteString("var filenameTable = map[string]string{\n")
	for _, name := range sortedNames(languages) {
		for _, filename := range languages[name].Filenames {
			fmt.Fprintf(b, "\t%q: %q,\n", filename, name)
		}
	}
	b.WriteString("}\n\n")
}

func writeExtensionTable(b *strings.Builder, languages map[string]languageDTO) {
	extensionLanguages := make(map[string][]string)
	for _, name := range sortedNames(languages) {
		for _, ext := range languages[name].Extensions {
			ext = strings.ToLower(ext)
			extensionLanguages[ext] = append(extensionLanguages[ext], name)
		}
	}

	exts := make([]string, 0, len(extensionLanguages))
	for ext := range extensionLanguages {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	b.WriteString("var extensionTable = map[string][]string{\n")
	for _, ext := range exts {
		fmt.Fprintf(b, "\t%q: {%s},\n", ext, quotedList(extensionLanguages[ext]))
	}
	b.WriteString("}\n\n")
}

func writeInterpreterTable(b *strings.Builder, languages map[string]languageDTO) {
	interpreterLanguages := make(map[string][]string)
	for _, name := range sortedNames(languages) {
		for _, interpreter := range languages[name].Interpreters {
			interpreterLanguages[interpreter] = append(interpreterLanguages[interpreter], name)
		}
	}

	interpreters := make([]string, 0, len(interpreterLanguages))
	for interpreter := range interpreterLanguages {
		interpreters = append(interpreters, interpreter)
	}
	sort.Strings(interpreters)

	b.WriteString("var interpreterTable = map[string][]string{\n")
	for _, interpreter := range interpreters {
		fmt.Fprintf(b, "\t%q: {%s},\n", interpreter, quotedList(interpreterLanguages[interpreter]))
	}
	b.WriteString("}\n\n")
}

func writeDisambiguationTable(b *strings.Builder, heuristics *heuristicsDTO) {
	b.WriteString("var disambiguationTable = map[string][]RuleSpec{\n")

	for _, dis := range heuristics.Disambiguations {
		rules := make([]string, 0, len(dis.Rules))
		for _, rule := range dis.Rules {
			rules = append(rules, ruleSpecLiteral(rule, heuristics.NamedPatterns))
		}

		for _, ext := range dis.Extensions {
			fmt.Fprintf(b, "\t%q: {%s},\n", strings.ToLower(ext), strings.Join(rules, ", "))
		}
	}

	b.WriteString("}\n")
}

func ruleSpecLiteral(rule ruleDTO, namedPatterns map[string]any) string {
	pattern := patternSpecLiteral(rule, namedPatterns)
	return fmt.Sprintf("{Languages: []string{%s}, Pattern: %s}", quotedList(rule.Language), pattern)
}

func patternSpecLiteral(rule ruleDTO, namedPatterns map[string]any) string {
	switch {
	case rule.NegativePattern != "":
		return fmt.Sprintf("PatternSpec{Kind: PatternNegative, Regex: %q}", rule.NegativePattern)

	case len(rule.And) > 0:
		children := make([]string, 0, len(rule.And))
		for _, child := range rule.And {
			children = append(children, patternSpecLiteral(child, namedPatterns))
		}
		return fmt.Sprintf("PatternSpec{Kind: PatternAnd, Children: []PatternSpec{%s}}", strings.Join(children, ", "))

	case rule.NamedPattern != "":
		switch raw := namedPatterns[rule.NamedPattern].(type) {
		case string:
			return fmt.Sprintf("PatternSpec{Kind: PatternPositive, Regex: %q}", raw)
		case []any:
			children := make([]string, 0, len(raw))
			for _, p := range raw {
				if s, ok := p.(string); ok {
					children = append(children, fmt.Sprintf("PatternSpec{Kind: PatternPositive, Regex: %q}", s))
				}
			}
			return fmt.Sprintf("PatternSpec{Kind: PatternOr, Children: []PatternSpec{%s}}", strings.Join(children, ", "))
		}
		return "PatternSpec{}"

	case len(rule.Pattern) == 1:
		return fmt.Sprintf("PatternSpec{Kind: PatternPositive, Regex: %q}", rule.Pattern[0])

	case len(rule.Pattern) > 1:
		children := make([]string, 0, len(rule.Pattern))
		for _, p := range rule.Pattern {
			children = append(children, fmt.Sprintf("PatternSpec{Kind: PatternPositive, Regex: %q}", p))
		}
		return fmt.Sprintf("PatternSpec{Kind: PatternOr, Children: []PatternSpec{%s}}", strings.Join(children, ", "))

	default:
		return "PatternSpec{}"
	}
}

func quotedList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}
