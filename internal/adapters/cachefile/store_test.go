package cachefile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"prospector/internal/domain"
)

func testEntry(path, root string, scannedAt time.Time, kinds ...string) domain.CacheEntry {
	return domain.CacheEntry{
		Path:      path,
		Kinds:     kinds,
		ScannedAt: scannedAt,
		Root:      root,
	}
}

func TestLoad_MissingFileIsEmptyStore(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "cache.json"))
	if s.Len() != 0 {
		t.Errorf("expected empty store, got %d entries", s.Len())
	}
}

func TestLoad_CorruptFileIsEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	s := Load(path)
	if s.Len() != 0 {
		t.Errorf("expected cold start on corrupt file, got %d entries", s.Len())
	}
}

func TestLoad_UnknownVersionIsEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	future := `{"version": 99, "generated_at": "2026-01-01T00:00:00Z", "entries": [{"path": "/x", "root": "/x"}]}`
	if err := os.WriteFile(path, []byte(future), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	s := Load(path)
	if s.Len() != 0 {
		t.Errorf("expected newer-version file to read as absent, got %d entries", s.Len())
	}
}

func TestFlushLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	now := time.Now().Truncate(time.Second)

	s := Load(path)
	s.Upsert(testEntry("/src/a", "/src", now, "go"))
	s.Upsert(testEntry("/src/b", "/src", now, "rust", "node"))
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	reloaded := Load(path)
	if reloaded.Len() != 2 {
		t.Fatalf("expected 2 entries after reload, got %d", reloaded.Len())
	}
	e, ok := reloaded.Lookup("/src/b")
	if !ok {
		t.Fatal("entry /src/b missing after reload")
	}
	if len(e.Kinds) != 2 || e.Kinds[0] != "rust" {
		t.Errorf("kinds not preserved: %v", e.Kinds)
	}
	if !e.ScannedAt.Equal(now) {
		t.Errorf("scanned_at not preserved: %v != %v", e.ScannedAt, now)
	}
}

func TestUpsert_ReplacesExistingEntry(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "cache.json"))
	old := time.Now().Add(-time.Hour)

	s.Upsert(testEntry("/src/a", "/src", old, "rust"))
	s.Upsert(testEntry("/src/a", "/src", time.Now(), "go"))

	if s.Len() != 1 {
		t.Fatalf("expected 1 entry per path, got %d", s.Len())
	}
	e, _ := s.Lookup("/src/a")
	if len(e.Kinds) != 1 || e.Kinds[0] != "go" {
		t.Errorf("upsert did not replace entry: %v", e.Kinds)
	}
}

func TestPrune_RemovedRoot(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "cache.json"))
	now := time.Now()

	s.Upsert(testEntry("/work/a", "/work", now, "go"))
	s.Upsert(testEntry("/home/b", "/home", now, "rust"))

	s.Prune([]string{"/home"})

	if _, ok := s.Lookup("/work/a"); ok {
		t.Error("entry under removed root survived prune")
	}
	if _, ok := s.Lookup("/home/b"); !ok {
		t.Error("entry under valid root was pruned")
	}
}

func TestEntriesUnder(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "cache.json"))
	now := time.Now()

	s.Upsert(testEntry("/src", "/src", now))
	s.Upsert(testEntry("/src/a", "/src", now, "go"))
	s.Upsert(testEntry("/srcother/b", "/srcother", now, "go"))

	under := s.EntriesUnder("/src")
	if len(under) != 2 {
		t.Fatalf("expected 2 entries under /src, got %d", len(under))
	}
	for _, e := range under {
		if strings.HasPrefix(e.Path, "/srcother") {
			t.Errorf("prefix sibling /srcother leaked into EntriesUnder(/src)")
		}
	}
}

func TestFlush_AtomicReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache.json")
	now := time.Now()

	s := Load(path)
	s.Upsert(testEntry("/src/a", "/src", now, "go"))
	if err := s.Flush(); err != nil {
		t.Fatalf("first Flush failed: %v", err)
	}

	// An interrupted second run never touches the previous snapshot until
	// rename; the file on disk stays valid JSON throughout.
	s2 := Load(path)
	s2.Upsert(testEntry("/src/b", "/src", now, "rust"))
	if err := s2.Flush(); err != nil {
		t.Fatalf("second Flush failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	var snap map[string]any
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("snapshot not valid JSON after replace: %v", err)
	}

	// No temp files left behind
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	for _, de := range entries {
		if strings.Contains(de.Name(), ".tmp-") {
			t.Errorf("temp file left behind: %s", de.Name())
		}
	}
}

func TestIsFresh(t *testing.T) {
	now := time.Now()
	ttl := 5 * time.Minute

	fresh := testEntry("/a", "/a", now, "go")
	if !fresh.IsFresh(ttl, now) {
		t.Error("entry scanned now must be fresh")
	}

	stale := testEntry("/a", "/a", now.Add(-ttl-time.Second), "go")
	if stale.IsFresh(ttl, now) {
		t.Error("entry older than ttl must be stale")
	}

	boundary := testEntry("/a", "/a", now.Add(-ttl), "go")
	if !boundary.IsFresh(ttl, now) {
		t.Error("entry exactly at ttl must still be fresh")
	}
}
