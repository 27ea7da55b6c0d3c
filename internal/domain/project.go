package domain

import (
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// Project is a discovered directory classified as one or more kinds. Values
// are derived from cache entries and classifier output; a new scan produces a
// new value, never an in-place update.
type Project struct {
	Path         string    // absolute path, unique within one discovery run
	Kinds        []string  // non-empty set of matched kind names
	LastVerified time.Time // when the classification was last confirmed
}

// Name returns the project's directory name
func (p Project) Name() string {
	return filepath.Base(p.Path)
}

// KindList returns the matched kinds joined for display
func (p Project) KindList() string {
	return strings.Join(p.Kinds, ",")
}

// SortProjects sorts projects lexicographically by path. Scan order depends
// on filesystem iteration order, so output ordering must not.
func SortProjects(projects []Project) {
	slices.SortFunc(projects, func(a, b Project) int {
		if a.Path < b.Path {
			return -1
		}
		if a.Path > b.Path {
			return 1
		}
		return 0
	})
}
