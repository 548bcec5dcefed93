// Package langs holds the static, compile-time knowledge base the detection
// pipeline is built on: the language catalog plus the filename, extension,
// interpreter, and disambiguation lookup tables. Everything here has process
// lifetime. It is produced by tools/gentables and pkg/trainer and is never
// mutated once the program starts, so it is safe to share across goroutines
// without synchronization.
package langs

import "fmt"

// Type classifies a Language the way GitHub's Linguist does, which in turn
// drives what the CLI considers worth counting in a breakdown.
type Type int

// The four buckets every known language falls into.
const (
	TypeData Type = iota
	TypeMarkup
	TypeProgramming
	TypeProse
)

// String renders the type the way it appears in languages.yml.
func (t Type) String() string {
	switch t {
	case TypeData:
		return "data"
	case TypeMarkup:
		return "markup"
	case TypeProgramming:
		return "programming"
	case TypeProse:
		return "prose"
	default:
		return "unknown"
	}
}

// Language describes one entry of the knowledge base. Color and Group are
// optional display metadata carried straight through from languages.yml.
type Language struct {
	Name  string
	Type  Type
	Color string
	Group string
}

// Get looks up a language by its display name. The returned value is owned
// by the caller; the knowledge base itself never changes after init.
func Get(name string) (Language, bool) {
	lang, ok := languageCatalog[name]

	return lang, ok
}

// MustGet panics if name is not a known language. It exists for call sites
// that build literal candidate sets from table data and can never pass an
// unknown name — a panic there means the tables themselves are inconsistent.
func MustGet(name string) Language {
	lang, ok := Get(name)
	if !ok {
		panic(fmt.Sprintf("langs: unknown language %q", name))
	}

	return lang
}

// Known reports whether name is present in the language catalog.
func Known(name string) bool {
	_, ok := languageCatalog[name]

	return ok
}

// All returns every language name known to the catalog. The slice is a
// fresh copy; callers are free to sort or mutate it.
func All() []string {
	names := make([]string, 0, len(languageCatalog))
	for name := range languageCatalog {
		names = append(names, name)
	}

	return names
}
