package domain

import "time"

// CacheEntry is a persisted classification record. Exactly one entry exists
// per distinct path. Entries with empty kinds mark scanned non-project
// directories (each configured root keeps one so a quiet root is
// distinguishable from a never-scanned one).
type CacheEntry struct {
	Path      string    `json:"path"`
	Kinds     []string  `json:"kinds,omitempty"`
	ScannedAt time.Time `json:"scanned_at"`
	Root      string    `json:"root"` // configured root it was found under
}

// IsFresh reports whether the entry is still inside its time-to-live
func (e CacheEntry) IsFresh(ttl time.Duration, now time.Time) bool {
	return now.Sub(e.ScannedAt) <= ttl
}

// IsProject reports whether the entry describes a classified project
func (e CacheEntry) IsProject() bool {
	return len(e.Kinds) > 0
}

// Project derives an independent Project value from the entry, so callers
// cannot mutate cache state through the returned slice.
func (e CacheEntry) Project() Project {
	kinds := make([]string, len(e.Kinds))
	copy(kinds, e.Kinds)
	return Project{
		Path:         e.Path,
		Kinds:        kinds,
		LastVerified: e.ScannedAt,
	}
}
