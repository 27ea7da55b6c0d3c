package domain

import (
	"fmt"
	"strings"
)

// ProjectKind is a named classification rule: a directory belongs to this
// kind when it contains one of the ProjectFiles (exact name or glob) or any
// file with one of the LanguageExts extensions.
type ProjectKind struct {
	Name         string   // unique key, e.g. "rust"
	LanguageExts []string // e.g. ".rs"
	ProjectFiles []string // e.g. "Cargo.toml", "*.csproj"
}

// BuiltinKinds returns the built-in classification rules in their fixed
// declaration order. This order determines tie-break order during
// classification, ahead of any user-defined kinds.
func BuiltinKinds() []ProjectKind {
	return []ProjectKind{
		{Name: "rust", LanguageExts: []string{".rs"}, ProjectFiles: []string{"Cargo.toml", "Cargo.lock"}},
		{Name: "node", LanguageExts: []string{".js", ".ts"}, ProjectFiles: []string{"package.json", "package-lock.json"}},
		{Name: "maven", LanguageExts: []string{".java"}, ProjectFiles: []string{"pom.xml"}},
		{Name: "go", LanguageExts: []string{".go"}, ProjectFiles: []string{"go.mod"}},
		{Name: "python", LanguageExts: []string{".py"}, ProjectFiles: []string{"pyproject.toml", "setup.py", "requirements.txt"}},
		{Name: "dotnet", LanguageExts: []string{".cs", ".fs"}, ProjectFiles: []string{"*.csproj", "*.fsproj", "*.sln"}},
		{Name: "other", ProjectFiles: []string{"README.md", "LICENSE.md", "CONTRIBUTING.md"}},
	}
}

// DuplicateKindError reports a kind registered under an already-taken name
type DuplicateKindError struct {
	Name string
}

func (e *DuplicateKindError) Error() string {
	return fmt.Sprintf("project kind %q is already registered", e.Name)
}

// Registry holds the full set of classification rules. Kinds are immutable
// once registered; registration order is preserved and drives classification
// order. Built from built-ins plus user configuration at startup.
type Registry struct {
	kinds  []ProjectKind
	byName map[string]struct{}
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]struct{})}
}

// Register adds a kind to the registry. Extensions are normalized to a
// leading dot and lower case. A duplicate name is rejected, not overwritten.
func (r *Registry) Register(kind ProjectKind) error {
	if kind.Name == "" {
		return fmt.Errorf("project kind name must not be empty")
	}
	if _, taken := r.byName[kind.Name]; taken {
		return &DuplicateKindError{Name: kind.Name}
	}

	exts := make([]string, 0, len(kind.LanguageExts))
	for _, ext := range kind.LanguageExts {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	kind.LanguageExts = exts

	r.byName[kind.Name] = struct{}{}
	r.kinds = append(r.kinds, kind)
	return nil
}

// All returns the registered kinds in registration order
func (r *Registry) All() []ProjectKind {
	out := make([]ProjectKind, len(r.kinds))
	copy(out, r.kinds)
	return out
}

// Len returns the number of registered kinds
func (r *Registry) Len() int {
	return len(r.kinds)
}
