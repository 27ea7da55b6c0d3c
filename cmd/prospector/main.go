package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"prospector/internal/adapters/cachefile"
	"prospector/internal/adapters/editor"
	"prospector/internal/adapters/filesystem"
	"prospector/internal/adapters/tui"
	"prospector/internal/application"
	"prospector/internal/config"
)

func main() {
	engine, opts, err := bootstrap()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app := tui.NewApp(engine, opts, editor.NewOpener())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func bootstrap() (*application.Engine, application.Options, error) {
	configFile, err := config.DefaultPath()
	if err != nil {
		return nil, application.Options{}, err
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, application.Options{}, err
	}

	// A duplicate user kind is rejected and reported, but the remaining
	// kinds are usable; only a registry-less failure is fatal.
	registry, err := cfg.BuildRegistry()
	if err != nil {
		if registry == nil {
			return nil, application.Options{}, err
		}
		fmt.Fprintf(os.Stderr, "Warning: ignoring invalid project kinds: %v\n", err)
	}
	ttl, err := cfg.ParseTTL()
	if err != nil {
		return nil, application.Options{}, err
	}

	cachePath, err := cachefile.DefaultPath()
	if err != nil {
		return nil, application.Options{}, err
	}
	store := cachefile.Load(cachePath)

	scanner := filesystem.NewScanner(cfg.MaxDepth, cfg.Exclude)

	// Scan warnings would corrupt the alternate screen, so they are dropped
	// here; the CLI surfaces them instead.
	engine := application.NewEngine(registry, scanner, store, log.New(io.Discard))

	opts := application.Options{Roots: cfg.Folders, TTL: ttl}
	return engine, opts, nil
}
