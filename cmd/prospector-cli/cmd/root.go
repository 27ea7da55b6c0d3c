package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"prospector/internal/adapters/cachefile"
	"prospector/internal/adapters/filesystem"
	"prospector/internal/adapters/render"
	"prospector/internal/application"
	"prospector/internal/config"
	"prospector/internal/domain"
)

var (
	configPath  string
	format      string
	forceRescan bool
	noCache     bool

	engine   *application.Engine
	opts     application.Options
	store    *cachefile.Store
	registry *domain.Registry
)

var rootCmd = &cobra.Command{
	Use:   "prospector-cli",
	Short: "CLI for finding projects on disk",
	Long: `prospector-cli scans your configured folders for projects, classifies
them by kind (rust, node, go, ...), and caches the results so repeated
lookups stay fast.

Folders, project kinds, and the cache lifetime are read from the config
file, created with defaults on first run.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		return bootstrap()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the config file")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "text", "output format: "+renderFormats())
	rootCmd.PersistentFlags().BoolVar(&forceRescan, "force-rescan", false, "ignore cached results and rescan all folders")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "alias for --force-rescan; the refreshed results are still persisted")
}

func bootstrap() error {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	logger := log.New(os.Stderr)

	// A duplicate user kind is rejected and reported, but the remaining
	// kinds are usable; only a registry-less failure is fatal.
	registry, err = cfg.BuildRegistry()
	if err != nil {
		if registry == nil {
			return err
		}
		logger.Warn("ignoring invalid project kinds", "err", err)
	}

	ttl, err := cfg.ParseTTL()
	if err != nil {
		return err
	}

	cachePath, err := cachefile.DefaultPath()
	if err != nil {
		return err
	}
	store = cachefile.Load(cachePath)

	scanner := filesystem.NewScanner(cfg.MaxDepth, cfg.Exclude)
	engine = application.NewEngine(registry, scanner, store, logger)
	opts = application.Options{
		Roots:       cfg.Folders,
		TTL:         ttl,
		ForceRescan: forceRescan || noCache,
	}
	return nil
}

func renderFormats() string {
	return strings.Join(render.Formats(), "|")
}
