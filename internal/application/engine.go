package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"prospector/internal/domain"
	"prospector/internal/ports"
)

// Options control a single discovery run
type Options struct {
	// Roots are the configured root folders, in configuration order
	Roots []string

	// TTL is the maximum age a cached classification is trusted. Zero or
	// negative means nothing is trusted. The value comes from configuration,
	// never from the engine.
	TTL time.Duration

	// ForceRescan bypasses every freshness check and rescans all roots
	ForceRescan bool
}

// Engine orchestrates scanner, classifier, and cache store into discovery
// runs. Construct once and share; the engine holds no per-run state.
type Engine struct {
	registry *domain.Registry
	scanner  ports.Scanner
	cache    ports.ProjectCache
	logger   *log.Logger
}

// NewEngine creates a discovery engine. A nil logger discards output.
func NewEngine(registry *domain.Registry, scanner ports.Scanner, cache ports.ProjectCache, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{
		registry: registry,
		scanner:  scanner,
		cache:    cache,
		logger:   logger,
	}
}

// Discover returns every classified project under the configured roots,
// ordered lexicographically by path regardless of scan order.
//
// Cache entries fresh within the TTL are reused without rescanning their
// paths; stale or unknown subtrees are rescanned and their entries
// overwritten. Freshness is decided per entry, so one root can mix fresh and
// stale subtrees left by interrupted runs. Entries belonging to roots no
// longer configured are pruned.
//
// The cache flush at the end is mandatory. When it fails the discovered
// projects are still returned, together with a DiscoveryError.
func (e *Engine) Discover(ctx context.Context, opts Options) ([]domain.Project, error) {
	if len(opts.Roots) == 0 {
		return nil, ErrNoFolders
	}

	roots := make([]string, 0, len(opts.Roots))
	for _, root := range opts.Roots {
		roots = append(roots, filepath.Clean(root))
	}

	now := time.Now()
	e.cache.Prune(roots)

	// Roots are independent subtrees; scan them concurrently. All cache
	// mutation is serialized behind the store's lock, and the flush below
	// happens only after every worker has joined.
	var wg sync.WaitGroup
	rootErrs := make([]error, len(roots))
	for i, root := range roots {
		wg.Add(1)
		go func(i int, root string) {
			defer wg.Done()
			rootErrs[i] = e.scanRoot(root, opts, now)
		}(i, root)
	}
	wg.Wait()

	// An unreadable configured root is fatal; unreadable directories deeper
	// down were already degraded to warnings.
	if err := errors.Join(rootErrs...); err != nil {
		return nil, err
	}

	var projects []domain.Project
	seen := make(map[string]struct{})
	for _, root := range roots {
		for _, entry := range e.cache.EntriesUnder(root) {
			if !entry.IsProject() {
				continue
			}
			if _, dup := seen[entry.Path]; dup {
				continue
			}
			seen[entry.Path] = struct{}{}
			projects = append(projects, entry.Project())
		}
	}
	domain.SortProjects(projects)

	if err := e.cache.Flush(); err != nil {
		return projects, &DiscoveryError{Op: "flush", Err: err}
	}
	return projects, nil
}

// scanRoot decides, per cached path under the root, what can be trusted and
// what must be rescanned. The root keeps its own cache entry (possibly with
// empty kinds) recording when its subtree was last walked, so a quiet root
// is distinguishable from a never-scanned one.
func (e *Engine) scanRoot(root string, opts Options, now time.Time) error {
	if !opts.ForceRescan {
		if rootEntry, ok := e.cache.Lookup(root); ok && rootEntry.IsFresh(opts.TTL, now) {
			// The subtree walk itself is still trusted; only individually
			// stale entries (left by interrupted or older runs) need work.
			var stale []string
			for _, entry := range e.cache.EntriesUnder(root) {
				if entry.Path == root || entry.IsFresh(opts.TTL, now) {
					continue
				}
				stale = append(stale, entry.Path)
			}
			sort.Strings(stale)

			var origins []string
			for _, path := range stale {
				if coveredBy(path, origins) {
					continue
				}
				origins = append(origins, path)
				e.rescan(path, root, opts, now)
			}
			return nil
		}
	}
	return e.rescan(root, root, opts, now)
}

// rescan walks the subtree at origin. Fresh project entries met along the
// way are reused and not descended into; everything else is classified and
// upserted. Entries under origin that the walk does not re-find have
// vanished from disk (or fell behind a new exclusion) and are dropped.
//
// A warning on the origin itself means the whole subtree was inaccessible;
// that is returned as an error when the origin is a configured root. A
// vanished interior origin just has its entries dropped.
func (e *Engine) rescan(origin, root string, opts Options, now time.Time) error {
	before := e.cache.EntriesUnder(origin)
	seen := make(map[string]struct{})

	warnings := e.scanner.Scan(origin, depthBelow(root, origin), func(dir string, names []string) bool {
		seen[dir] = struct{}{}

		if !opts.ForceRescan {
			if entry, ok := e.cache.Lookup(dir); ok && entry.IsFresh(opts.TTL, now) {
				return !entry.IsProject()
			}
		}

		kinds := e.registry.Classify(names)
		e.cache.Upsert(domain.CacheEntry{
			Path:      dir,
			Kinds:     kinds,
			ScannedAt: now,
			Root:      root,
		})

		// A project's internals are never scanned for nested projects
		return len(kinds) == 0
	})

	var rootErr error
	for _, w := range warnings {
		if w.Path == origin && origin == root {
			rootErr = fmt.Errorf("cannot scan root folder %q: %w", root, w.Err)
			continue
		}
		e.logger.Warn("skipped during scan", "path", w.Path, "err", w.Err)
	}

	for _, entry := range before {
		if _, ok := seen[entry.Path]; !ok {
			e.cache.Remove(entry.Path)
		}
	}
	return rootErr
}

// depthBelow returns how many levels path sits below root, so a rescan that
// starts partway down the tree charges the scanner's depth limit the same
// way a full walk from the root would.
func depthBelow(root, path string) int {
	if path == root {
		return 0
	}
	rel := strings.TrimPrefix(path, root+string(filepath.Separator))
	return strings.Count(rel, string(filepath.Separator)) + 1
}

// coveredBy reports whether path sits inside any of the given subtree origins
func coveredBy(path string, origins []string) bool {
	for _, origin := range origins {
		if path == origin || strings.HasPrefix(path, origin+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
