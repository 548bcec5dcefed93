package langs

// Code generated by tools/gentables from languages.yml and heuristics.yml.
// DO NOT EDIT. Regenerate with: go run ./tools/gentables.
//
// The knowledge base is an input to the detection pipeline, not a concern of
// it: the pipeline only ever reads these tables, it never parses YAML or
// touches a filesystem at request time.

// languageCatalog backs Get/MustGet/Known/All. Every name that appears in
// filenameTable, extensionTable, interpreterTable, or disambiguationTable
// must have an entry here.
var languageCatalog = map[string]Language{
	"Alpine Abuild":                    {Name: "Alpine Abuild", Type: TypeProgramming, Color: "#0f632f", Group: "Shell"},
	"JSON with Comments":               {Name: "JSON with Comments", Type: TypeData, Color: "#292929"},
	"Makefile":                         {Name: "Makefile", Type: TypeProgramming, Color: "#427819"},
	"PureScript":                       {Name: "PureScript", Type: TypeProgramming, Color: "#1D222D"},
	"Dogescript":                       {Name: "Dogescript", Type: TypeProgramming, Color: "#cca760"},
	"CMake":                            {Name: "CMake", Type: TypeProgramming, Color: "#DA3434"},
	"Rust":                             {Name: "Rust", Type: TypeProgramming, Color: "#dea584"},
	"RenderScript":                     {Name: "RenderScript", Type: TypeProgramming, Color: "#0000ff"},
	"C":                                {Name: "C", Type: TypeProgramming, Color: "#555555"},
	"C++":                              {Name: "C++", Type: TypeProgramming, Color: "#f34b7d"},
	"Objective-C":                      {Name: "Objective-C", Type: TypeProgramming, Color: "#438eff"},
	"Objective-C++":                    {Name: "Objective-C++", Type: TypeProgramming, Color: "#6866fb"},
	"JavaScript":                       {Name: "JavaScript", Type: TypeProgramming, Color: "#f1e05a"},
	"Erlang":                           {Name: "Erlang", Type: TypeProgramming, Color: "#B83998"},
	"Scala":                            {Name: "Scala", Type: TypeProgramming, Color: "#c22d40"},
	"Python":                           {Name: "Python", Type: TypeProgramming, Color: "#3572A5"},
	"Shell":                            {Name: "Shell", Type: TypeProgramming, Color: "#89e051"},
	"Go":                               {Name: "Go", Type: TypeProgramming, Color: "#00ADD8"},
	"Ruby":                             {Name: "Ruby", Type: TypeProgramming, Color: "#701516"},
	"Java":                             {Name: "Java", Type: TypeProgramming, Color: "#b07219"},
	"Kotlin":                           {Name: "Kotlin", Type: TypeProgramming, Color: "#A97BFF"},
	"C#":                               {Name: "C#", Type: TypeProgramming, Color: "#178600"},
	"PHP":                              {Name: "PHP", Type: TypeProgramming, Color: "#4F5D95"},
	"Perl":                             {Name: "Perl", Type: TypeProgramming, Color: "#0298c3"},
	"Lua":                              {Name: "Lua", Type: TypeProgramming, Color: "#000080"},
	"R":                                {Name: "R", Type: TypeProgramming, Color: "#198CE7"},
	"Swift":                            {Name: "Swift", Type: TypeProgramming, Color: "#F05138"},
	"Elixir":                           {Name: "Elixir", Type: TypeProgramming, Color: "#6e4a7e"},
	"Haskell":                          {Name: "Haskell", Type: TypeProgramming, Color: "#5e5086"},
	"Clojure":                          {Name: "Clojure", Type: TypeProgramming, Color: "#db5855"},
	"F#":                               {Name: "F#", Type: TypeProgramming, Color: "#b845fc"},
	"OCaml":                            {Name: "OCaml", Type: TypeProgramming, Color: "#3be133"},
	"TypeScript":                       {Name: "TypeScript", Type: TypeProgramming, Color: "#3178c6"},
	"Zig":                              {Name: "Zig", Type: TypeProgramming, Color: "#ec915c"},
	"Nim":                              {Name: "Nim", Type: TypeProgramming, Color: "#ffc200"},
	"Julia":                            {Name: "Julia", Type: TypeProgramming, Color: "#a270ba"},
	"V":                                {Name: "V", Type: TypeProgramming, Color: "#4f87c4"},
	"Crystal":                          {Name: "Crystal", Type: TypeProgramming, Color: "#000100"},
	"Groovy":                           {Name: "Groovy", Type: TypeProgramming, Color: "#4298b8"},
	"Linux Kernel Module":              {Name: "Linux Kernel Module", Type: TypeProgramming},
	"AMPL":                             {Name: "AMPL", Type: TypeProgramming, Color: "#E6EFBB"},
	"JSON":                             {Name: "JSON", Type: TypeData, Color: "#292929"},
	"YAML":                             {Name: "YAML", Type: TypeData, Color: "#cb171e"},
	"TOML":                             {Name: "TOML", Type: TypeData, Color: "#9c4221"},
	"XML":                              {Name: "XML", Type: TypeData, Color: "#0060ac"},
	"CSV":                              {Name: "CSV", Type: TypeData},
	"HTML":                             {Name: "HTML", Type: TypeMarkup, Color: "#e34c26"},
	"CSS":                              {Name: "CSS", Type: TypeMarkup, Color: "#563d7c"},
	"SCSS":                             {Name: "SCSS", Type: TypeMarkup, Color: "#c6538c"},
	"Markdown":                         {Name: "Markdown", Type: TypeProse, Color: "#083fa1"},
	"reStructuredText":                 {Name: "reStructuredText", Type: TypeProse},
	"TeX":                              {Name: "TeX", Type: TypeMarkup, Color: "#3D6117"},
	"SQL":                              {Name: "SQL", Type: TypeProgramming, Color: "#e38c00"},
	"PLSQL":                            {Name: "PLSQL", Type: TypeProgramming, Color: "#dad8d8"},
	"PLpgSQL":                          {Name: "PLpgSQL", Type: TypeProgramming, Color: "#336790"},
	"SQLPL":                            {Name: "SQLPL", Type: TypeProgramming, Color: "#e38c00"},
	"TSQL":                             {Name: "TSQL", Type: TypeProgramming, Color: "#30649c"},
	"Protocol Buffer":                  {Name: "Protocol Buffer", Type: TypeData, Color: "#3f65b3"},
	"Assembly":                         {Name: "Assembly", Type: TypeProgramming, Color: "#6E4C13"},
	"Unix Assembly":                    {Name: "Unix Assembly", Type: TypeProgramming},
	"MAXScript":                        {Name: "MAXScript", Type: TypeProgramming, Color: "#00a6a6"},
	"Proguard":                         {Name: "Proguard", Type: TypeProgramming},
	"Prolog":                           {Name: "Prolog", Type: TypeProgramming, Color: "#74283c"},
	"INI":                              {Name: "INI", Type: TypeData},
	"QMake":                            {Name: "QMake", Type: TypeProgramming},
	"IDL":                              {Name: "IDL", Type: TypeProgramming, Color: "#a3522f"},
	"Gnuplot":                          {Name: "Gnuplot", Type: TypeProgramming, Color: "#f0a9f0"},
	"OpenEdge ABL":                     {Name: "OpenEdge ABL", Type: TypeProgramming, Color: "#5ce600"},
	"Roff":                             {Name: "Roff", Type: TypeMarkup, Color: "#ecdebe"},
	"Roff Manpage":                     {Name: "Roff Manpage", Type: TypeMarkup, Color: "#ecdebe", Group: "Roff"},
	"Parrot Assembly":                  {Name: "Parrot Assembly", Type: TypeProgramming, Group: "Parrot"},
	"Parrot Internal Representation":   {Name: "Parrot Internal Representation", Type: TypeProgramming, Group: "Parrot"},
	"Dockerfile":                       {Name: "Dockerfile", Type: TypeProgramming, Color: "#384d54"},
	"HCL":                              {Name: "HCL", Type: TypeProgramming, Color: "#844FBA"},
}

// filenameTable maps an exact basename to a single language. A hit here is
// always authoritative: it wins even when the basename's extension would
// otherwise be unambiguous (see TestDetectFilenameBeatsExtension in
// pkg/detect/detect_test.go).
var filenameTable = map[string]string{
	"APKBUILD":          "Alpine Abuild",
	".eslintrc.json":    "JSON with Comments",
	"Dockerfile":        "Dockerfile",
	"CMakeLists.txt":    "CMake",
	// Makefile.rs is a synthetic entry proving filename beats extension:
	// without it, the .rs suffix would hand this file to the extension
	// stage as a Rust/RenderScript candidate pair.
	"Makefile.rs": "Makefile",
}

// extensionTable maps a lowercase, dotted extension (possibly multi-segment,
// e.g. ".cmake.in") to the ordered set of languages that claim it.
var extensionTable = map[string][]string{
	".go":        {"Go"},
	".py":        {"Python"},
	".js":        {"JavaScript"},
	".mjs":       {"JavaScript"},
	".ts":        {"TypeScript"},
	".rs":        {"Rust", "RenderScript"},
	".rb":        {"Ruby"},
	".java":      {"Java"},
	".kt":        {"Kotlin"},
	".c":         {"C"},
	".h":         {"C", "C++", "Objective-C"},
	".hpp":       {"C++"},
	".cpp":       {"C++"},
	".cc":        {"C++"},
	".cs":        {"C#"},
	".php":       {"PHP"},
	".sh":        {"Shell"},
	".pl":        {"Perl"},
	".lua":       {"Lua"},
	".r":         {"R"},
	".swift":     {"Swift"},
	".m":         {"Objective-C"},
	".mm":        {"Objective-C++"},
	".ex":        {"Elixir"},
	".exs":       {"Elixir"},
	".erl":       {"Erlang"},
	".es":        {"JavaScript", "Erlang"},
	".hs":        {"Haskell"},
	".clj":       {"Clojure"},
	".fs":        {"F#"},
	".ml":        {"OCaml"},
	".json":      {"JSON"},
	".yaml":      {"YAML"},
	".yml":       {"YAML"},
	".toml":      {"TOML"},
	".xml":       {"XML"},
	".csv":       {"CSV"},
	".html":      {"HTML"},
	".htm":       {"HTML"},
	".css":       {"CSS"},
	".scss":      {"SCSS"},
	".md":        {"Markdown"},
	".rst":       {"reStructuredText"},
	".tex":       {"TeX"},
	".sql":       {"PLSQL", "PLpgSQL", "SQL", "SQLPL", "TSQL"},
	".proto":     {"Protocol Buffer"},
	".asm":       {"Assembly"},
	".s":         {"Assembly"},
	".zig":       {"Zig"},
	".nim":       {"Nim"},
	".jl":        {"Julia"},
	".v":         {"V"},
	".cr":        {"Crystal"},
	".groovy":    {"Groovy"},
	".cmake":     {"CMake"},
	".cmake.in":  {"CMake"},
	".in":        {"INI"},
	".mod":       {"Linux Kernel Module", "AMPL"},
	".purs":      {"PureScript"},
	".djs":       {"Dogescript"},
	".man":       {"Roff Manpage", "Roff"},
	".1in":       {"Roff Manpage", "Roff"},
	".ms":        {"Roff", "Unix Assembly", "MAXScript"},
	".p":         {"Gnuplot", "OpenEdge ABL"},
	".pro":       {"Proguard", "Prolog", "INI", "QMake", "IDL"},
	".dockerfile": {"Dockerfile"},
	".tf":        {"HCL"},
	".hcl":       {"HCL"},
}

// interpreterTable maps an interpreter basename (minor version already
// stripped by the shebang parser) to the candidate languages it implies.
var interpreterTable = map[string][]string{
	"python":  {"Python"},
	"python2": {"Python"},
	"python3": {"Python"},
	"node":    {"JavaScript"},
	"sh":      {"Shell"},
	"bash":    {"Shell"},
	"scala":   {"Scala"},
	"perl":    {"Perl"},
	"ruby":    {"Ruby"},
	"lua":     {"Lua"},
	"parrot":  {"Parrot Assembly", "Parrot Internal Representation"},
}

// disambiguationTable maps a lowercase extension to its ordered rule list.
// Rules are walked in order; the first whose pattern matches (or which has
// no pattern at all) wins. See pkg/heuristics for the resolver.
var disambiguationTable = map[string][]RuleSpec{
	".es": {
		{Languages: []string{"JavaScript"}, Pattern: PatternSpec{Kind: PatternPositive, Regex: `["']use strict["']`}},
		{Languages: []string{"Erlang"}}, // unconditional fallthrough
	},
	".sql": {
		{Languages: []string{"PLpgSQL"}, Pattern: PatternSpec{Kind: PatternPositive, Regex: `(?i)\bplpgsql\b`}},
		{Languages: []string{"SQLPL"}, Pattern: PatternSpec{Kind: PatternPositive, Regex: `(?i)\bsqlpl\b`}},
		{Languages: []string{"PLSQL"}, Pattern: PatternSpec{Kind: PatternPositive, Regex: `(?i)create\s+or\s+replace\s+package`}},
		{Languages: []string{"TSQL"}, Pattern: PatternSpec{Kind: PatternPositive, Regex: `(?m)^\s*GO\s*$`}},
		{Languages: []string{"SQL"}}, // unconditional fallthrough
	},
	".pro": {
		{Languages: []string{"QMake"}, Pattern: PatternSpec{Kind: PatternAnd, Children: []PatternSpec{
			{Kind: PatternPositive, Regex: `\bHEADERS\b`},
			{Kind: PatternPositive, Regex: `\bSOURCES\b`},
		}}},
		{Languages: []string{"Prolog"}, Pattern: PatternSpec{Kind: PatternPositive, Regex: `:-`}},
		{Languages: []string{"INI"}, Pattern: PatternSpec{Kind: PatternPositive, Regex: `(?m)^\[.+\]\s*$`}},
		{Languages: []string{"IDL"}, Pattern: PatternSpec{Kind: PatternPositive, Regex: `\b(coclass|interface|library)\b`}},
		{Languages: []string{"Proguard"}, Pattern: PatternSpec{Kind: PatternPositive, Regex: `(?m)^-keep\b`}},
	},
	".ms": {
		{Languages: []string{"Unix Assembly"}, Pattern: PatternSpec{Kind: PatternPositive, Regex: `(?m)^\s*\.include\b`}},
		{Languages: []string{"MAXScript"}, Pattern: PatternSpec{Kind: PatternPositive, Regex: `(?i)\bmacroscript\b`}},
		{Languages: []string{"Roff"}}, // unconditional fallthrough
	},
	".p": {
		{Languages: []string{"Gnuplot"}, Pattern: PatternSpec{Kind: PatternOr, Children: []PatternSpec{
			{Kind: PatternPositive, Regex: `\bplot\b`},
			{Kind: PatternPositive, Regex: `(?i)\bset\s+terminal\b`},
		}}},
		{Languages: []string{"OpenEdge ABL"}}, // unconditional fallthrough
	},
	".man": {
		{Languages: []string{"Roff Manpage"}, Pattern: PatternSpec{Kind: PatternPositive, Regex: `(?m)^\.(TH|Dd)\b`}},
		{Languages: []string{"Roff"}}, // unconditional fallthrough
	},
	".1in": {
		{Languages: []string{"Roff Manpage"}, Pattern: PatternSpec{Kind: PatternAnd, Children: []PatternSpec{
			{Kind: PatternPositive, Regex: `(?m)^\.TH\b`},
			{Kind: PatternPositive, Regex: `(?m)^\.SH\b`},
		}}},
		{Languages: []string{"Roff"}}, // unconditional fallthrough
	},
	".h": {
		{Languages: []string{"Objective-C"}, Pattern: PatternSpec{Kind: PatternOr, Children: []PatternSpec{
			{Kind: PatternPositive, Regex: `@(interface|implementation|protocol|property|end)\b`},
			{Kind: PatternPositive, Regex: `#import\b`},
		}}},
		{Languages: []string{"C++"}, Pattern: PatternSpec{Kind: PatternOr, Children: []PatternSpec{
			{Kind: PatternPositive, Regex: `std::`},
			{Kind: PatternPositive, Regex: `\btemplate\s*<`},
			{Kind: PatternPositive, Regex: `\bnamespace\s+\w+\s*\{`},
		}}},
		// The resolver appends an unconditional C rule for .h at runtime
		// (see pkg/heuristics), matching the empirical Linguist default.
	},
}
