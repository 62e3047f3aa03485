package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"pagesync/internal/application/commands"
	"pagesync/internal/domain"
)

// RegisterWriteTools adds the tools that create pages to the MCP server.
func RegisterWriteTools(s *server.MCPServer, deps Deps) {
	s.AddTool(syncTool(), syncHandler(deps))
}

// --- sync ---

func syncTool() mcp.Tool {
	return mcp.NewTool("sync",
		mcp.WithDescription("Create a child page for every configured source file under every configured parent, skipping titles that already exist. Returns the run report."),
	)
}

func syncHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		opts := []commands.SyncOption{
			commands.WithParents(deps.Parents),
			commands.WithFiles(deps.Files),
			commands.WithSampleSize(deps.SampleSize),
		}
		if deps.Logger != nil {
			opts = append(opts, commands.WithLogger(deps.Logger))
		}
		if deps.Ledger != nil {
			opts = append(opts, commands.WithLedger(deps.Ledger))
		}

		result, err := commands.NewSyncCommand(deps.Service, deps.Reader, deps.Pacer, opts...).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		report := domain.RenderReport(result.Summary)
		if result.RunID != "" {
			report += "Run: " + result.RunID + "\n"
		}
		return mcp.NewToolResultText(report), nil
	}
}
