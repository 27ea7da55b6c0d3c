package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"prospector/internal/domain"
)

// DefaultTTL is how long a cached classification is trusted when the config
// file does not say otherwise
const DefaultTTL = 5 * time.Minute

const (
	appDir   = "prospector"
	fileName = "config.toml"
)

// KindConfig is a user-defined project kind as written in the config file
type KindConfig struct {
	Name         string   `toml:"name"`
	LanguageExts []string `toml:"language_exts"`
	ProjectFiles []string `toml:"project_files"`
}

// Config is the user configuration. It is loaded here and handed to the
// discovery engine as plain data; the engine never reads files itself.
type Config struct {
	Folders  []string     `toml:"folders"`
	TTL      string       `toml:"ttl"` // duration string, e.g. "5m"
	Exclude  []string     `toml:"exclude"`
	MaxDepth int          `toml:"max_depth"` // 0 means unbounded
	Kinds    []KindConfig `toml:"kinds,omitempty"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		Folders: []string{"~"},
		TTL:     DefaultTTL.String(),
		Exclude: domain.DefaultExcludes,
	}
}

// DefaultPath returns the config file location in the user's config directory
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDir, fileName), nil
}

// Load reads the configuration at path, creating it with defaults when
// absent. Folder paths are expanded; an undefined environment variable in a
// folder path is a configuration error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := Default()
		if werr := write(path, cfg); werr != nil {
			return nil, werr
		}
		return expand(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	return expand(&cfg)
}

func write(path string, cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize default config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to create config file %q: %w", path, err)
	}
	return nil
}

func expand(cfg *Config) (*Config, error) {
	folders := make([]string, 0, len(cfg.Folders))
	for _, folder := range cfg.Folders {
		expanded, err := ExpandPath(folder)
		if err != nil {
			return nil, err
		}
		folders = append(folders, filepath.Clean(expanded))
	}
	cfg.Folders = folders
	return cfg, nil
}

// ParseTTL returns the configured cache TTL, falling back to DefaultTTL
func (c *Config) ParseTTL() (time.Duration, error) {
	if c.TTL == "" {
		return DefaultTTL, nil
	}
	ttl, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 0, fmt.Errorf("invalid ttl %q: %w", c.TTL, err)
	}
	return ttl, nil
}

// BuildRegistry constructs the kind registry: built-ins first in declaration
// order, then user kinds in file order. A user kind shadowing an existing
// name is rejected and reported; the remaining kinds still register.
func (c *Config) BuildRegistry() (*domain.Registry, error) {
	reg := domain.NewRegistry()
	for _, kind := range domain.BuiltinKinds() {
		if err := reg.Register(kind); err != nil {
			return nil, err
		}
	}

	var errs []error
	for _, k := range c.Kinds {
		err := reg.Register(domain.ProjectKind{
			Name:         k.Name,
			LanguageExts: k.LanguageExts,
			ProjectFiles: k.ProjectFiles,
		})
		if err != nil {
			errs = append(errs, err)
		}
	}
	return reg, errors.Join(errs...)
}

// ExpandPath resolves a leading ~ to the home directory and interpolates
// ${VAR} environment references. An undefined variable is an error rather
// than an empty substitution.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home dir: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}

	for {
		start := strings.Index(path, "${")
		if start < 0 {
			break
		}
		end := strings.Index(path[start+2:], "}")
		if end < 0 {
			break
		}
		name := path[start+2 : start+2+end]
		val, ok := os.LookupEnv(name)
		if !ok {
			return "", fmt.Errorf("%s: environment variable %q is undefined", path, name)
		}
		path = path[:start] + val + path[start+2+end+1:]
	}
	return path, nil
}
