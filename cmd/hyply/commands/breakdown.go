// Package commands implements the hyply root command's flags and the
// report printers for its breakdown output.
package commands

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/monkslc/hyperpolyglot/pkg/breakdown"
	"github.com/monkslc/hyperpolyglot/pkg/config"
	"github.com/monkslc/hyperpolyglot/pkg/langs"
	"github.com/monkslc/hyperpolyglot/pkg/observability"
)

var (
	fileBreakdown     bool
	strategyBreakdown bool
	condensed         bool
	noColor           bool
	filterPatterns    []string

	cfg     *config.Config
	metrics *observability.BreakdownMetrics
	logger  *slog.Logger
)

// Configure injects the configuration, metrics, and logger the root
// command's PersistentPreRunE builds, so RunBreakdown sources its worker
// count and ignore patterns from one loaded config instead of reaching for
// os.Getenv directly.
func Configure(c *config.Config, m *observability.BreakdownMetrics, l *slog.Logger) {
	cfg = c
	metrics = m
	logger = l
}

// RegisterBreakdownFlags attaches the flags RunBreakdown reads to cmd.
func RegisterBreakdownFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&fileBreakdown, "breakdown", "b", false,
		"Print the language detected for each file visited")
	cmd.Flags().BoolVarP(&strategyBreakdown, "strategies", "s", false,
		"Print each detection strategy used and the files it decided")
	cmd.Flags().BoolVarP(&condensed, "condensed", "c", false,
		"Condense the breakdowns to only show headers")
	cmd.Flags().StringArrayVarP(&filterPatterns, "filter", "f", nil,
		"A regex filtering which headers get printed for the file and strategy breakdowns")
	cmd.Flags().BoolVarP(&noColor, "no-color", "n", false,
		"Disable colored output, useful when piping hyply's output")
}

// languageGroup is one row of the percentage/file breakdown: a language and
// every file it was attributed to.
type languageGroup struct {
	language string
	files    []breakdown.FileResult
}

// RunBreakdown is the hyply root command's RunE: walk path, print the
// percentage split, then optionally the file and strategy breakdowns.
func RunBreakdown(_ *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	opts := breakdown.Options{Metrics: metrics}
	if cfg != nil {
		opts.Workers = cfg.Breakdown.Workers
		opts.ExtraIgnore = cfg.Breakdown.Ignore
	}

	if logger != nil {
		logger.Debug("walking tree", "path", path, "workers", opts.Workers)
	}

	result, err := breakdown.Walk(path, opts)
	if err != nil {
		return fmt.Errorf("walk %s: %w", path, err)
	}

	filters, err := compileFilters(filterPatterns)
	if err != nil {
		return err
	}

	groups := countableLanguageGroups(result)

	if err := printLanguageSplit(groups); err != nil {
		return err
	}

	if fileBreakdown {
		fmt.Println()
		if err := printFileBreakdown(groups, filters); err != nil {
			return err
		}
	}

	if strategyBreakdown {
		fmt.Println()
		if err := printStrategyBreakdown(groups, filters); err != nil {
			return err
		}
	}

	return nil
}

func compileFilters(patterns []string) ([]*regexp.Regexp, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid filter %q: %w", pattern, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

func matchesFilter(filters []*regexp.Regexp, header string) bool {
	if len(filters) == 0 {
		return true
	}
	for _, re := range filters {
		if re.MatchString(header) {
			return true
		}
	}
	return false
}

// countableLanguageGroups keeps only Markup and Programming languages, the
// two types Linguist-style tools treat as "source" for the purposes of a
// breakdown, sorted by descending file count then language name.
func countableLanguageGroups(result *breakdown.Breakdown) []languageGroup {
	groups := make([]languageGroup, 0, len(result.ByLanguage))
	for language, paths := range result.ByLanguage {
		info, ok := langs.Get(language)
		if !ok || (info.Type != langs.TypeMarkup && info.Type != langs.TypeProgramming) {
			continue
		}

		files := make([]breakdown.FileResult, 0, len(paths))
		for _, r := range result.Files {
			if r.Language == language {
				files = append(files, r)
			}
		}

		groups = append(groups, languageGroup{language: language, files: files})
	}

	sort.Slice(groups, func(i, j int) bool {
		if len(groups[i].files) != len(groups[j].files) {
			return len(groups[i].files) > len(groups[j].files)
		}
		return groups[i].language < groups[j].language
	})

	return groups
}

func printLanguageSplit(groups []languageGroup) error {
	total := 0
	for _, g := range groups {
		total += len(g.files)
	}
	if total == 0 {
		return nil
	}

	for _, g := range groups {
		percentage := float64(len(g.files)) * 100 / float64(total)
		fmt.Printf("%.2f%% %s\n", percentage, g.language)
	}
	return nil
}

func printFileBreakdown(groups []languageGroup, filters []*regexp.Regexp) error {
	title, _, def := reportColors()

	for _, g := range groups {
		if !matchesFilter(filters, g.language) {
			continue
		}

		title.Printf("%s", g.language)
		def.Printf(" (%d)\n", len(g.files))

		if !condensed {
			for _, file := range g.files {
				fmt.Println(stripRelativePrefix(file.Path))
			}
			fmt.Println()
		}
	}
	return nil
}

func printStrategyBreakdown(groups []languageGroup, filters []*regexp.Regexp) error {
	type strategyEntry struct {
		language string
		path     string
	}
	byStrategy := make(map[string][]strategyEntry)

	for _, g := range groups {
		for _, file := range g.files {
			byStrategy[file.Strategy] = append(byStrategy[file.Strategy], strategyEntry{language: g.language, path: file.Path})
		}
	}

	strategies := make([]string, 0, len(byStrategy))
	for strategy := range byStrategy {
		strategies = append(strategies, strategy)
	}
	sort.Slice(strategies, func(i, j int) bool {
		if len(byStrategy[strategies[i]]) != len(byStrategy[strategies[j]]) {
			return len(byStrategy[strategies[i]]) > len(byStrategy[strategies[j]])
		}
		return strategies[i] < strategies[j]
	})

	title, lang, def := reportColors()

	for _, strategy := range strategies {
		if !matchesFilter(filters, strategy) {
			continue
		}

		entries := byStrategy[strategy]
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].language != entries[j].language {
				return entries[i].language < entries[j].language
			}
			return entries[i].path < entries[j].path
		})

		title.Printf("%s", strategy)
		def.Printf(" (%d)\n", len(entries))

		if !condensed {
			for _, entry := range entries {
				def.Printf("%s", stripRelativePrefix(entry.path))
				lang.Printf(" (%s)\n", entry.language)
			}
			fmt.Println()
		}
	}
	return nil
}

func reportColors() (title, lang, def *color.Color) {
	color.NoColor = noColor //nolint:reassign // intentional override of library global

	return color.New(color.FgMagenta), color.New(color.FgGreen), color.New(color.Reset)
}

func stripRelativePrefix(path string) string {
	return strings.TrimPrefix(path, "./")
}
