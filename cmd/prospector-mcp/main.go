package main

import (
	"context"
	"flag"
	"io"
	stdlog "log"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"prospector/internal/adapters/cachefile"
	"prospector/internal/adapters/filesystem"
	mcpadapter "prospector/internal/adapters/mcp"
	"prospector/internal/application"
	"prospector/internal/config"
)

func main() {
	configFlag := flag.String("config", "", "path to the config file")
	flag.Parse()

	configFile := *configFlag
	if configFile == "" {
		var err error
		configFile, err = config.DefaultPath()
		if err != nil {
			stdlog.Fatalf("prospector-mcp: %v", err)
		}
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		stdlog.Fatalf("prospector-mcp: %v", err)
	}
	// A duplicate user kind is rejected and reported, but the remaining
	// kinds are usable; only a registry-less failure is fatal.
	registry, err := cfg.BuildRegistry()
	if err != nil {
		if registry == nil {
			stdlog.Fatalf("prospector-mcp: %v", err)
		}
		stdlog.Printf("prospector-mcp: ignoring invalid project kinds: %v", err)
	}
	ttl, err := cfg.ParseTTL()
	if err != nil {
		stdlog.Fatalf("prospector-mcp: %v", err)
	}

	cachePath, err := cachefile.DefaultPath()
	if err != nil {
		stdlog.Fatalf("prospector-mcp: %v", err)
	}
	store := cachefile.Load(cachePath)

	scanner := filesystem.NewScanner(cfg.MaxDepth, cfg.Exclude)

	// Stdout carries the protocol; keep scan warnings off it.
	logger := charmlog.New(io.Discard)
	if os.Getenv("PROSPECTOR_MCP_DEBUG") != "" {
		logger = charmlog.New(os.Stderr)
	}
	engine := application.NewEngine(registry, scanner, store, logger)
	opts := application.Options{Roots: cfg.Folders, TTL: ttl}

	mcpServer := server.NewMCPServer(
		"prospector-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterDiscoveryTools(mcpServer, engine, opts)
	mcpadapter.RegisterKindTools(mcpServer, registry)

	if err := server.ServeStdio(mcpServer); err != nil {
		stdlog.Fatalf("prospector-mcp: %v", err)
	}
}
