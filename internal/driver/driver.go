// Package driver orchestrates rule runs over serialized tree files. It owns
// everything the core leaves to collaborators: file discovery, per-file
// diagnostic sinks, lint-versus-apply mode, and parallelism.
package driver

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"reshape/internal/config"
	"reshape/internal/diag"
	"reshape/internal/rewrite"
	"reshape/internal/rules"
	"reshape/internal/syntax"
	"reshape/internal/treeio"
)

// Options configures a run.
type Options struct {
	// Apply writes rewritten trees back to disk. When false the rewrite is
	// discarded and only diagnostics are kept (lint mode).
	Apply bool
	// Jobs bounds the number of files processed concurrently; <=0 means
	// GOMAXPROCS.
	Jobs int
	// Config gates rules and sets their severity; nil means defaults.
	Config *config.Config
}

// Result is the outcome for one tree file.
type Result struct {
	Path      string
	Root      *syntax.Node
	Rewritten *syntax.Node
	Changed   bool
	Bag       *diag.Bag
	Err       error
}

// listTreeFiles expands a path into a sorted list of tree files: a file maps
// to itself, a directory to every *.rtree file beneath it.
func listTreeFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, treeio.FileExt) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// activeRules instantiates every enabled rule at its configured severity.
func activeRules(cfg *config.Config) []rewrite.Rule {
	if cfg == nil {
		cfg = config.Default()
	}
	active := make([]rewrite.Rule, 0, len(rules.Names()))
	for _, name := range rules.Names() {
		if !cfg.RuleEnabled(name) {
			continue
		}
		factory, ok := rules.Lookup(name)
		if !ok {
			continue
		}
		active = append(active, factory(cfg.RuleSeverity(name)))
	}
	return active
}

// ProcessPaths runs the enabled rules over every tree file reachable from
// paths. Files are processed concurrently; each gets its own diagnostic
// sink, and results come back in deterministic (sorted input) order.
func ProcessPaths(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	var files []string
	seen := make(map[string]bool)
	for _, p := range paths {
		expanded, err := listTreeFiles(p)
		if err != nil {
			return nil, fmt.Errorf("driver: %w", err)
		}
		for _, f := range expanded {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}
	if len(files) == 0 {
		return nil, nil
	}

	active := activeRules(opts.Config)

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = processFile(path, active, opts.Apply)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func processFile(path string, active []rewrite.Rule, apply bool) Result {
	res := Result{Path: path, Bag: diag.NewBag(16)}

	root, err := treeio.Load(path)
	if err != nil {
		res.Err = err
		return res
	}
	res.Root = root

	rctx := rewrite.NewContext(res.Bag)
	rewritten := root
	for _, rule := range active {
		rewritten = rewrite.Rewrite(rewritten, rule, rctx)
	}
	res.Rewritten = rewritten
	res.Changed = rewritten != root

	if apply && res.Changed {
		if err := treeio.Save(path, rewritten); err != nil {
			res.Err = err
		}
	}
	return res
}
