package microdfa

import (
	"runtime"
	"sync"

	"github.com/projectdiscovery/gologger"

	"github.com/lexforge/microdfa/parse"
)

// Config controls the batch entry point. Build one with DefaultConfig
// and override only the fields that need to change.
type Config struct {
	// MaxDepth bounds parser recursion depth. Default: parse.DefaultMaxDepth.
	MaxDepth int

	// Workers sizes the worker pool BuildSyntaxTrees fans patterns out
	// across. 0 or 1 means sequential, no goroutines spawned.
	// Default: runtime.GOMAXPROCS(0).
	Workers int

	// Verbose makes BuildSyntaxTrees emit one gologger.Verbose() message
	// with the number of patterns. It does not change gologger's level:
	// the Debug() and Verbose() calls in the other stages are made either
	// way, and gologger's own max level decides what is printed.
	// Default: false.
	Verbose bool
}

// DefaultConfig returns the default Config: the full parser recursion
// budget, one worker per logical CPU, and Verbose off.
func DefaultConfig() Config {
	return Config{
		MaxDepth: parse.DefaultMaxDepth,
		Workers:  runtime.GOMAXPROCS(0),
		Verbose:  false,
	}
}

// Entry is one (pattern, category) pair to build a syntax tree for.
type Entry struct {
	Pattern  string
	Category string
}

// Result is the syntax tree built for one Entry, alongside the category
// it came from, preserving the input order.
type Result struct {
	Pattern  string
	Category string
	Tree     *parse.RegEx
}

// BuildSyntaxTrees parses every entry's pattern, in order, returning one
// Result per entry. On the first parse failure it returns that error and
// no results; patterns after a Workers > 1 fan-out still report the
// lowest-indexed error deterministically, never a race winner.
func BuildSyntaxTrees(entries []Entry, cfg Config) ([]Result, error) {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = parse.DefaultMaxDepth
	}
	if cfg.Verbose {
		gologger.Verbose().Msgf("microdfa: building %d syntax trees", len(entries))
	}

	if cfg.Workers <= 1 || len(entries) <= 1 {
		return buildSequential(entries, cfg)
	}
	return buildParallel(entries, cfg)
}

func buildSequential(entries []Entry, cfg Config) ([]Result, error) {
	results := make([]Result, len(entries))
	for i, e := range entries {
		tree, err := parse.BuildSyntaxTreeWithDepth(e.Pattern, cfg.MaxDepth)
		if err != nil {
			return nil, err
		}
		results[i] = Result{Pattern: e.Pattern, Category: e.Category, Tree: tree}
	}
	return results, nil
}

// buildParallel fans parsing out across cfg.Workers goroutines — the
// parser stage is pure and per-pattern, so patterns have no shared
// mutable state. Errors are collected by index so the lowest-indexed
// failure is reported regardless of which goroutine finishes first.
func buildParallel(entries []Entry, cfg Config) ([]Result, error) {
	results := make([]Result, len(entries))
	errs := make([]error, len(entries))

	jobs := make(chan int)
	var wg sync.WaitGroup

	workers := cfg.Workers
	if workers > len(entries) {
		workers = len(entries)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				tree, err := parse.BuildSyntaxTreeWithDepth(entries[i].Pattern, cfg.MaxDepth)
				if err != nil {
					errs[i] = err
					continue
				}
				results[i] = Result{Pattern: entries[i].Pattern, Category: entries[i].Category, Tree: tree}
			}
		}()
	}
	for i := range entries {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			gologger.Debug().Msgf("microdfa: entry %d (%q) failed: %v", i, entries[i].Pattern, err)
			return nil, err
		}
	}
	return results, nil
}
