package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"prospector/internal/adapters/render"
	"prospector/internal/application"
	"prospector/internal/application/commands"
	"prospector/internal/domain"
)

// RegisterDiscoveryTools adds the project discovery tools to the MCP server.
func RegisterDiscoveryTools(s *server.MCPServer, engine *application.Engine, opts application.Options) {
	s.AddTool(discoverTool(), discoverHandler(engine, opts))
}

// RegisterKindTools adds the kind inspection tools to the MCP server.
func RegisterKindTools(s *server.MCPServer, registry *domain.Registry) {
	s.AddTool(kindsTool(), kindsHandler(registry))
}

// --- discover ---

func discoverTool() mcp.Tool {
	return mcp.NewTool("discover",
		mcp.WithDescription("Discover projects under the configured folders. Without arguments returns every project; with a query returns only matching ones."),
		mcp.WithString("query",
			mcp.Description("Wildcard filter on project names: ? optional char, _ required char, # digit run, * any run. Omit to list everything."),
		),
		mcp.WithString("format",
			mcp.Description(fmt.Sprintf("Output format: %s. Defaults to text.", strings.Join(render.Formats(), ", "))),
		),
		mcp.WithBoolean("force_rescan",
			mcp.Description("Ignore cached results and rescan all folders."),
		),
	)
}

func discoverHandler(engine *application.Engine, base application.Options) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		opts := base
		opts.ForceRescan = req.GetBool("force_rescan", false)

		renderer, err := render.New(render.Format(req.GetString("format", "")))
		if err != nil {
			return toolError(err)
		}

		query := domain.Query{}
		if expr := req.GetString("query", ""); expr != "" {
			query, err = domain.ParseQuery(expr)
			if err != nil {
				return toolError(err)
			}
		}

		cmd := commands.NewFindCommand(engine, query, opts)
		projects, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		if err := renderer.Render(&sb, projects); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- kinds ---

func kindsTool() mcp.Tool {
	return mcp.NewTool("kinds",
		mcp.WithDescription("List the registered project kinds with the project files and language extensions each one matches."),
	)
}

func kindsHandler(registry *domain.Registry) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var sb strings.Builder
		for _, kind := range registry.All() {
			fmt.Fprintf(&sb, "%s\n  project files: %s\n  extensions: %s\n",
				kind.Name,
				orNone(kind.ProjectFiles),
				orNone(kind.LanguageExts),
			)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func orNone(values []string) string {
	if len(values) == 0 {
		return "(none)"
	}
	return strings.Join(values, ", ")
}
