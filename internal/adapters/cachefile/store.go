package cachefile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"prospector/internal/domain"
)

// Version is the cache schema tag. A file carrying any other version is
// treated as absent so newer schemas degrade to a cold start instead of
// crashing older binaries.
const Version = 1

// DefaultFileName is the snapshot file name inside the app cache directory
const DefaultFileName = "cache.json"

// snapshot is the on-disk shape of the store
type snapshot struct {
	Version     int                 `json:"version"`
	GeneratedAt time.Time           `json:"generated_at"`
	Entries     []domain.CacheEntry `json:"entries"`
}

// Store implements ports.ProjectCache as a versioned JSON snapshot, loaded
// once per run and written back atomically. The file is plain JSON so users
// can inspect or hand-edit it.
type Store struct {
	path string

	mu      sync.Mutex
	entries map[string]domain.CacheEntry
}

// DefaultPath returns the snapshot location in the user's cache directory
func DefaultPath() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user cache dir: %w", err)
	}
	return filepath.Join(base, "prospector", DefaultFileName), nil
}

// Load reads the snapshot at path. A missing, unreadable, corrupt, or
// unrecognized-version file yields an empty current-version store; cache
// trouble is never fatal.
func Load(path string) *Store {
	s := &Store{
		path:    path,
		entries: make(map[string]domain.CacheEntry),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return s
	}
	if snap.Version != Version {
		return s
	}

	for _, e := range snap.Entries {
		if e.Path == "" {
			continue
		}
		s.entries[e.Path] = e
	}
	return s
}

// Path returns the snapshot file location
func (s *Store) Path() string {
	return s.path
}

// Lookup returns the entry for a path, if any
func (s *Store) Lookup(path string) (domain.CacheEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[path]
	return e, ok
}

// EntriesUnder returns all entries located at dir or inside it
func (s *Store) EntriesUnder(dir string) []domain.CacheEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.CacheEntry
	for path, e := range s.entries {
		if underDir(path, dir) {
			out = append(out, e)
		}
	}
	return out
}

// Upsert replaces any existing entry for the entry's path
func (s *Store) Upsert(entry domain.CacheEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.Path] = entry
}

// Remove drops the entry for a path, if any
func (s *Store) Remove(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, path)
}

// Prune removes entries whose recorded root is no longer configured
func (s *Store) Prune(validRoots []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	valid := make(map[string]struct{}, len(validRoots))
	for _, root := range validRoots {
		valid[root] = struct{}{}
	}
	for path, e := range s.entries {
		if _, ok := valid[e.Root]; !ok {
			delete(s.entries, path)
		}
	}
}

// Len returns the number of entries
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Flush serializes the store to its file. The snapshot is written to a
// temporary file in the same directory and renamed into place, so a crash
// mid-write leaves the previous valid file intact.
func (s *Store) Flush() error {
	s.mu.Lock()
	entries := make([]domain.CacheEntry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	s.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})

	snap := snapshot{
		Version:     Version,
		GeneratedAt: time.Now(),
		Entries:     entries,
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize cache: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, DefaultFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp cache file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp cache file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace cache file: %w", err)
	}
	return nil
}

// Clean deletes the snapshot file. A missing file is not an error.
func (s *Store) Clean() error {
	s.mu.Lock()
	s.entries = make(map[string]domain.CacheEntry)
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove cache file: %w", err)
	}
	return nil
}

// GeneratedAt reads the last write timestamp from the file on disk, for
// cache inspection. Returns the zero time when the file is absent or
// unreadable.
func GeneratedAt(path string) time.Time {
	data, err := os.ReadFile(path)
	if err != nil {
		return time.Time{}
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return time.Time{}
	}
	return snap.GeneratedAt
}

func underDir(path, dir string) bool {
	return path == dir || strings.HasPrefix(path, dir+string(filepath.Separator))
}
