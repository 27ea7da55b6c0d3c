package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"prospector/internal/domain"
	"prospector/internal/ports"
)

// fileID identifies a directory by device and inode so a walk revisits
// nothing even when paths differ.
type fileID struct {
	dev uint64
	ino uint64
}

// Scanner implements ports.Scanner with a depth-first walk that visits
// directories before their children. Symbolic links are never followed and
// each directory identity is visited at most once per call.
type Scanner struct {
	maxDepth int // levels below the root; 0 means unbounded
	exclude  []string
}

// NewScanner creates a scanner. Exclude patterns are doublestar globs
// matched against the entry name and the root-relative path.
func NewScanner(maxDepth int, exclude []string) *Scanner {
	return &Scanner{
		maxDepth: maxDepth,
		exclude:  exclude,
	}
}

// Scan walks the subtree at dir, handing each readable directory and its
// entry names to fn. depth is dir's depth below the configured root; the
// depth limit counts from the root even when the walk starts partway down.
// Unreadable or vanished directories are recorded as warnings and skipped.
// The walk is finite and restartable; every call starts from a clean
// visited set.
func (s *Scanner) Scan(dir string, depth int, fn ports.ScanFunc) []domain.ScanWarning {
	var warnings []domain.ScanWarning

	info, err := os.Lstat(dir)
	if err != nil {
		warnings = append(warnings, domain.ScanWarning{Path: dir, Err: err})
		return warnings
	}
	if !info.IsDir() {
		warnings = append(warnings, domain.ScanWarning{Path: dir, Err: fmt.Errorf("not a directory")})
		return warnings
	}

	visited := make(map[fileID]struct{})
	s.walk(dir, dir, depth, visited, fn, &warnings)
	return warnings
}

func (s *Scanner) walk(
	root, dir string,
	depth int,
	visited map[fileID]struct{},
	fn ports.ScanFunc,
	warnings *[]domain.ScanWarning,
) {
	if info, err := os.Stat(dir); err != nil {
		*warnings = append(*warnings, domain.ScanWarning{Path: dir, Err: err})
		return
	} else if id, ok := fileIdentity(info); ok {
		if _, seen := visited[id]; seen {
			return
		}
		visited[id] = struct{}{}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		*warnings = append(*warnings, domain.ScanWarning{Path: dir, Err: err})
		return
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	if !fn(dir, names) {
		return
	}
	if s.maxDepth > 0 && depth+1 > s.maxDepth {
		return
	}

	for _, e := range entries {
		// IsDir is false for symlinks, which keeps link cycles out of the walk
		if !e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		child := filepath.Join(dir, name)
		if s.excluded(name, relPath(root, child)) {
			continue
		}
		s.walk(root, child, depth+1, visited, fn, warnings)
	}
}

// excluded reports whether a directory matches an exclude pattern, by base
// name or by root-relative path
func (s *Scanner) excluded(name, rel string) bool {
	for _, pattern := range s.exclude {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
