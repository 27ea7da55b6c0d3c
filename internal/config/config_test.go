package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"prospector/internal/domain"
)

func TestLoad_CreatesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config file not written: %v", err)
	}
	if len(cfg.Folders) == 0 {
		t.Error("default config has no folders")
	}
	ttl, err := cfg.ParseTTL()
	if err != nil {
		t.Fatalf("ParseTTL failed: %v", err)
	}
	if ttl != DefaultTTL {
		t.Errorf("expected default ttl %v, got %v", DefaultTTL, ttl)
	}
}

func TestLoad_ParsesUserConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
folders = ["/src", "/work"]
ttl = "30m"
exclude = [".git", "build-*"]
max_depth = 4

[[kinds]]
name = "zig"
language_exts = [".zig"]
project_files = ["build.zig"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cfg.Folders) != 2 || cfg.Folders[0] != "/src" {
		t.Errorf("folders not parsed: %v", cfg.Folders)
	}
	ttl, _ := cfg.ParseTTL()
	if ttl != 30*time.Minute {
		t.Errorf("expected 30m ttl, got %v", ttl)
	}
	if cfg.MaxDepth != 4 {
		t.Errorf("expected max_depth 4, got %d", cfg.MaxDepth)
	}
	if len(cfg.Kinds) != 1 || cfg.Kinds[0].Name != "zig" {
		t.Errorf("user kind not parsed: %+v", cfg.Kinds)
	}
}

func TestBuildRegistry_BuiltinsThenUserKinds(t *testing.T) {
	cfg := &Config{
		Kinds: []KindConfig{{Name: "zig", ProjectFiles: []string{"build.zig"}}},
	}

	reg, err := cfg.BuildRegistry()
	if err != nil {
		t.Fatalf("BuildRegistry failed: %v", err)
	}

	kinds := reg.All()
	if kinds[0].Name != domain.BuiltinKinds()[0].Name {
		t.Errorf("built-ins not first: %v", kinds[0].Name)
	}
	if kinds[len(kinds)-1].Name != "zig" {
		t.Errorf("user kind not last: %v", kinds[len(kinds)-1].Name)
	}
}

func TestBuildRegistry_DuplicateUserKindReported(t *testing.T) {
	cfg := &Config{
		Kinds: []KindConfig{
			{Name: "rust", ProjectFiles: []string{"shadow.toml"}},
			{Name: "zig", ProjectFiles: []string{"build.zig"}},
		},
	}

	reg, err := cfg.BuildRegistry()
	if err == nil {
		t.Fatal("expected duplicate kind to be reported")
	}
	var dup *domain.DuplicateKindError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateKindError, got %v", err)
	}

	// The non-offending kind still registered
	found := false
	for _, k := range reg.All() {
		if k.Name == "zig" {
			found = true
		}
	}
	if !found {
		t.Error("valid kind after the duplicate was dropped")
	}
}

func TestExpandPath_Home(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	got, err := ExpandPath("~/src")
	if err != nil {
		t.Fatalf("ExpandPath failed: %v", err)
	}
	if got != filepath.Join(home, "src") {
		t.Errorf("expected %s, got %s", filepath.Join(home, "src"), got)
	}
}

func TestExpandPath_EnvVar(t *testing.T) {
	t.Setenv("PROSPECTOR_TEST_BASE", "/data")

	got, err := ExpandPath("${PROSPECTOR_TEST_BASE}/src")
	if err != nil {
		t.Fatalf("ExpandPath failed: %v", err)
	}
	if got != "/data/src" {
		t.Errorf("expected /data/src, got %s", got)
	}
}

func TestExpandPath_UndefinedEnvVarFails(t *testing.T) {
	if _, err := ExpandPath("${PROSPECTOR_TEST_UNDEFINED_VAR}/src"); err == nil {
		t.Fatal("expected undefined variable to fail")
	}
}
