package domain

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Classify evaluates a directory's entry names against every registered kind
// and returns the names of all matching kinds, in registry order. A directory
// matches a kind when any entry equals or glob-matches one of the kind's
// project files, or when any entry's extension is one of the kind's language
// extensions. An empty result marks a non-project directory and is not an
// error.
//
// This is a pure function of the entry names: the same input always yields
// the same output, so cached classifications never diverge from a cold run.
func (r *Registry) Classify(names []string) []string {
	var kinds []string
	for _, kind := range r.kinds {
		if matchesKind(kind, names) {
			kinds = append(kinds, kind.Name)
		}
	}
	return kinds
}

func matchesKind(kind ProjectKind, names []string) bool {
	for _, name := range names {
		for _, pattern := range kind.ProjectFiles {
			if matchName(pattern, name) {
				return true
			}
		}
		if len(kind.LanguageExts) == 0 {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		if ext == "" {
			continue
		}
		for _, kindExt := range kind.LanguageExts {
			if ext == kindExt {
				return true
			}
		}
	}
	return false
}

// matchName compares an entry name against a project-file pattern. Literal
// patterns compare case-insensitively; patterns with glob metacharacters go
// through doublestar.
func matchName(pattern, name string) bool {
	if !strings.ContainsAny(pattern, "*?[{") {
		return strings.EqualFold(pattern, name)
	}
	ok, err := doublestar.Match(pattern, name)
	return err == nil && ok
}
