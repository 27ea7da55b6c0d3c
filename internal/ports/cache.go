package ports

import "prospector/internal/domain"

// ProjectCache provides access to the persisted discovery snapshot. The
// in-memory state is mutated during a run and written back atomically by
// Flush; implementations must serialize concurrent mutation.
type ProjectCache interface {
	// Lookup returns the entry for a path, if any
	Lookup(path string) (domain.CacheEntry, bool)

	// EntriesUnder returns all entries whose path is the given directory or
	// inside it
	EntriesUnder(dir string) []domain.CacheEntry

	// Upsert replaces any existing entry for the entry's path
	Upsert(entry domain.CacheEntry)

	// Remove drops the entry for a path, if any
	Remove(path string)

	// Prune removes entries whose recorded root is no longer configured
	Prune(validRoots []string)

	// Len returns the number of entries
	Len() int

	// Flush writes the snapshot to durable storage atomically: a crash or a
	// concurrent reader never observes a partially written file
	Flush() error
}
