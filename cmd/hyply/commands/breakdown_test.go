package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monkslc/hyperpolyglot/pkg/breakdown"
)

func TestCompileFiltersRejectsInvalidRegex(t *testing.T) {
	_, err := compileFilters([]string{"("})
	require.Error(t, err)
}

func TestCompileFiltersEmptyMeansNoFilter(t *testing.T) {
	filters, err := compileFilters(nil)
	require.NoError(t, err)
	assert.Nil(t, filters)
	assert.True(t, matchesFilter(filters, "anything"))
}

func TestMatchesFilterHonorsAnyMatch(t *testing.T) {
	filters, err := compileFilters([]string{"^Go$", "^Rust$"})
	require.NoError(t, err)

	assert.True(t, matchesFilter(filters, "Rust"))
	assert.False(t, matchesFilter(filters, "Python"))
}

func TestStripRelativePrefixRemovesDotSlash(t *testing.T) {
	assert.Equal(t, "main.go", stripRelativePrefix("./main.go"))
	assert.Equal(t, "pkg/main.go", stripRelativePrefix("pkg/main.go"))
}

func TestCountableLanguageGroupsDropsDataLanguages(t *testing.T) {
	result := &breakdown.Breakdown{
		ByLanguage: map[string][]string{
			"JSON": {"a.json"},
			"Rust": {"a.rs"},
		},
		Files: []breakdown.FileResult{
			{Path: "a.json", Language: "JSON", Strategy: "Extension"},
			{Path: "a.rs", Language: "Rust", Strategy: "Extension"},
		},
	}

	groups := countableLanguageGroups(result)

	require.Len(t, groups, 1)
	assert.Equal(t, "Rust", groups[0].language)
}
