package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"pagesync/internal/application/commands"
	"pagesync/internal/domain"
	"pagesync/internal/ports"
)

// Deps holds the adapters and configuration shared by the tools
type Deps struct {
	Service    ports.PageService
	Reader     ports.SourceReader
	Pacer      ports.Pacer
	Ledger     ports.RunLedger // Optional
	Parents    []domain.ParentPageRef
	Files      []domain.SourceFile
	SampleSize int
	Logger     *zap.Logger
}

// RegisterReadTools adds all read-only tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, deps Deps) {
	s.AddTool(parentsTool(), parentsHandler(deps))
	s.AddTool(childrenTool(), childrenHandler(deps))
	s.AddTool(historyTool(), historyHandler(deps))
}

// --- parents ---

func parentsTool() mcp.Tool {
	return mcp.NewTool("parents",
		mcp.WithDescription("List the configured parent pages that sync creates child pages under."),
	)
}

func parentsHandler(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		parents := commands.NewListParentsCommand(deps.Parents).Execute()
		return formatEntities(parents, formatParent)
	}
}

// --- children ---

func childrenTool() mcp.Tool {
	return mcp.NewTool("children",
		mcp.WithDescription("List the child pages of a parent page with their titles and URLs."),
		mcp.WithString("parent_id",
			mcp.Description("Parent page ID (dashed or undashed)"),
			mcp.Required(),
		),
	)
}

func childrenHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		parentID := req.GetString("parent_id", "")
		if parentID == "" {
			return toolError(fmt.Errorf("parent_id is required"))
		}

		children, err := commands.NewListChildrenCommand(deps.Service, parentID).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(children, formatChild)
	}
}

// --- history ---

func historyTool() mcp.Tool {
	return mcp.NewTool("history",
		mcp.WithDescription("List recent sync runs. With a run ID, show that run's outcomes."),
		mcp.WithString("run_id",
			mcp.Description("Run ID to show. Omit to list recent runs."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of runs to list (default 10)"),
		),
	)
}

func historyHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		runID := req.GetString("run_id", "")

		if runID == "" {
			limit := req.GetInt("limit", commands.DefaultHistoryLimit)
			runs, err := commands.NewListRunsCommand(deps.Ledger, limit).Execute(ctx)
			if err != nil {
				return toolError(err)
			}
			return formatEntities(runs, formatRun)
		}

		run, err := commands.NewShowRunCommand(deps.Ledger, runID).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		var sb strings.Builder
		sb.WriteString(formatRun(*run))
		sb.WriteByte('\n')
		for _, o := range run.Outcomes {
			sb.WriteString(formatOutcome(o))
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatParent(p domain.ParentPageRef) string {
	if p.Dir == "" {
		return fmt.Sprintf("%s  %s", p.Label(), p.ID)
	}
	return fmt.Sprintf("%s  %s  %s", p.Label(), p.ID, p.Dir)
}

func formatChild(c domain.ChildPage) string {
	return fmt.Sprintf("%s  %s", c.Title, c.URL)
}

func formatRun(r domain.RunRecord) string {
	return fmt.Sprintf("%s  %s  created=%d skipped=%d errored=%d",
		r.ID, r.StartedAt.Format("2006-01-02 15:04:05"), r.Created, r.Skipped, r.Errored)
}

func formatOutcome(o domain.SyncOutcome) string {
	switch o.Kind {
	case domain.OutcomeCreated:
		return fmt.Sprintf("%s  %s  %s", o.Key(), o.Kind, o.URL)
	case domain.OutcomeErrored:
		return fmt.Sprintf("%s  %s  %s", o.Key(), o.Kind, o.Err)
	default:
		return fmt.Sprintf("%s  %s", o.Key(), o.Kind)
	}
}
