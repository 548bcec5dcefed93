// Package breakdown walks a directory tree, classifies every eligible file
// with pkg/detect, and aggregates the results by language and by detection
// strategy. File classification is parallelized across a worker pool sized
// like the fast devs analyzer: chunk the file list across min(NumCPU, len)
// workers rather than spawning one goroutine per file.
package breakdown

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/monkslc/hyperpolyglot/pkg/detect"
	"github.com/monkslc/hyperpolyglot/pkg/observability"
)

// threadsEnvVar overrides the worker count that would otherwise default to
// runtime.NumCPU(). Read only when no configured worker count is passed in
// through Options, so a library caller wiring pkg/config through still wins
// over this fallback.
const threadsEnvVar = "HYPLY_THREADS"

// ignoredPatterns are doublestar globs matched against a path relative to
// the walk root. Anything matching is skipped entirely, directories
// included (their subtrees are never descended into): vendored dependency
// trees, then the documentation directories and files a language breakdown
// shouldn't attribute to a project's own source mix.
var ignoredPatterns = []string{
	"**/.git",
	"**/.git/**",
	"**/vendor/**",
	"**/node_modules/**",
	"**/dist/**",
	"**/build/**",
	"**/third_party/**",
	"**/.svn/**",
	"**/.hg/**",

	"**/docs/**",
	"**/doc/**",
	"**/documentation/**",
	"**/javadoc/**",
	"**/groovydoc/**",
	"**/man/**",
	"**/examples/**",
	"**/demo/**",
	"**/demos/**",
	"**/samples/**",
	"**/inst/doc/**",

	"**/CHANGELOG*",
	"**/CONTRIBUTING*",
	"**/COPYING*",
	"**/INSTALL*",
	"**/LICENSE*",
	"**/README*",
}

// Options configures a Walk call. The zero value walks with the built-in
// ignore patterns, runtime.NumCPU (or HYPLY_THREADS) workers, and no metrics
// recording.
type Options struct {
	// Workers overrides the worker pool size. Zero defers to HYPLY_THREADS,
	// then runtime.NumCPU().
	Workers int
	// ExtraIgnore adds doublestar globs on top of the built-in ignore list,
	// the way BreakdownConfig.Ignore lets a config file extend it.
	ExtraIgnore []string
	// Metrics, if non-nil, records per-file classification outcomes and a
	// count of paths skipped by the ignore rules.
	Metrics *observability.BreakdownMetrics
}

// FileResult is one file's classification outcome. Language and Strategy are
// empty when no strategy could decide.
type FileResult struct {
	Path     string
	Language string
	Strategy string
}

// Breakdown aggregates classification results across an entire tree.
type Breakdown struct {
	Files          []FileResult
	ByLanguage     map[string][]string
	ByStrategy     map[string]int
	UnrecognizedAt []string
}

// Walk classifies every regular file under root (skipping ignored
// directories) and returns the aggregated breakdown. Classification runs in
// parallel; walking the directory tree does not.
func Walk(root string, opts Options) (*Breakdown, error) {
	paths, err := collectPaths(root, opts)
	if err != nil {
		return nil, err
	}

	results := classifyAll(paths, opts)
	return aggregate(results), nil
}

// collectPaths returns every regular file under root, in lexical order,
// skipping anything matched by the built-in ignore patterns plus
// opts.ExtraIgnore.
func collectPaths(root string, opts Options) ([]string, error) {
	patterns := ignoredPatterns
	if len(opts.ExtraIgnore) > 0 {
		patterns = append(append([]string{}, ignoredPatterns...), opts.ExtraIgnore...)
	}

	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}

		if rel != "." && isIgnored(rel, patterns) {
			if opts.Metrics != nil {
				opts.Metrics.RecordSkipped(context.Background())
			}
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}

func isIgnored(rel string, patterns []string) bool {
	slashed := filepath.ToSlash(rel)
	for _, pattern := range patterns {
		if matched, _ := doublestar.Match(pattern, slashed); matched {
			return true
		}
	}
	return false
}

// classifyAll runs detect.Detect across paths using a bounded worker pool,
// chunked the way the fast devs analyzer splits commit ranges: each worker
// claims a contiguous slice rather than pulling one path at a time, which
// keeps scheduling overhead flat regardless of tree size.
func classifyAll(paths []string, opts Options) []FileResult {
	if len(paths) == 0 {
		return nil
	}

	numWorkers := max(1, min(workerCount(opts.Workers), len(paths)))
	chunkSize := (len(paths) + numWorkers - 1) / numWorkers

	results := make(chan []FileResult, numWorkers)
	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := min(start+chunkSize, len(paths))
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(chunk []string) {
			defer wg.Done()
			results <- classifyChunk(chunk, opts.Metrics)
		}(paths[start:end])
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var out []FileResult
	for chunk := range results {
		out = append(out, chunk...)
	}
	return out
}

func classifyChunk(paths []string, metrics *observability.BreakdownMetrics) []FileResult {
	out := make([]FileResult, 0, len(paths))
	for _, path := range paths {
		start := time.Now()
		d, err := detect.Detect(path)
		if err != nil {
			continue
		}
		if d == nil {
			out = append(out, FileResult{Path: path})
			continue
		}
		out = append(out, FileResult{Path: path, Language: d.Language(), Strategy: d.Variant()})
		if metrics != nil {
			metrics.RecordFile(context.Background(), d.Variant(), d.Language(), time.Since(start))
		}
	}
	return out
}

// workerCount returns configured if positive, otherwise HYPLY_THREADS if set
// to a positive integer, otherwise runtime.NumCPU().
func workerCount(configured int) int {
	if configured > 0 {
		return configured
	}
	if raw := os.Getenv(threadsEnvVar); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return runtime.NumCPU()
}

func aggregate(results []FileResult) *Breakdown {
	b := &Breakdown{
		Files:      results,
		ByLanguage: make(map[string][]string),
		ByStrategy: make(map[string]int),
	}

	for _, r := range results {
		if r.Language == "" {
			b.UnrecognizedAt = append(b.UnrecognizedAt, r.Path)
			continue
		}
		b.ByLanguage[r.Language] = append(b.ByLanguage[r.Language], r.Path)
		b.ByStrategy[r.Strategy]++
	}

	for _, paths := range b.ByLanguage {
		sort.Strings(paths)
	}
	sort.Strings(b.UnrecognizedAt)

	return b
}

// Languages returns the languages present in b sorted by descending file
// count, breaking ties alphabetically for a stable, deterministic report.
func (b *Breakdown) Languages() []string {
	langs := make([]string, 0, len(b.ByLanguage))
	for lang := range b.ByLanguage {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool {
		ci, cj := len(b.ByLanguage[langs[i]]), len(b.ByLanguage[langs[j]])
		if ci != cj {
			return ci > cj
		}
		return langs[i] < langs[j]
	})
	return langs
}
