package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"pagesync/internal/adapters/filesystem"
	mcpadapter "pagesync/internal/adapters/mcp"
	"pagesync/internal/adapters/notion"
	"pagesync/internal/adapters/pacing"
	"pagesync/internal/adapters/sqlite"
	"pagesync/internal/config"
	"pagesync/internal/logging"
)

func main() {
	configFlag := flag.String("config", "", "config file (.toml or .yaml)")
	workspaceFlag := flag.String("workspace", "", "workspace directory holding the source files")
	verboseFlag := flag.Bool("verbose", false, "log every service call")
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("pagesync-mcp: %v", err)
	}
	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("pagesync-mcp: %v", err)
	}
	if *workspaceFlag != "" {
		cfg.Workspace = *workspaceFlag
	}
	if err := cfg.RequireToken(); err != nil {
		log.Fatalf("pagesync-mcp: %v", err)
	}

	logger, err := logging.New(*verboseFlag)
	if err != nil {
		log.Fatalf("pagesync-mcp: %v", err)
	}
	defer logger.Sync()

	client, err := notion.NewClient(cfg.Token,
		notion.WithBaseURL(cfg.BaseURL),
		notion.WithVersion(cfg.NotionVersion),
		notion.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("pagesync-mcp: %v", err)
	}

	deps := mcpadapter.Deps{
		Service:    client,
		Reader:     filesystem.NewSourceReader(cfg.Workspace),
		Pacer:      pacing.NewFixed(cfg.Delay),
		Parents:    cfg.Parents,
		Files:      cfg.Files,
		SampleSize: cfg.SampleSize,
		Logger:     logger,
	}

	if cfg.LedgerPath != "" {
		ledger := sqlite.NewLedger()
		if err := ledger.Open(cfg.LedgerPath); err != nil {
			logger.Warn("run ledger unavailable", zap.String("path", cfg.LedgerPath), zap.Error(err))
		} else {
			defer ledger.Close()
			deps.Ledger = ledger
		}
	}

	mcpServer := server.NewMCPServer(
		"pagesync-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, deps)
	mcpadapter.RegisterWriteTools(mcpServer, deps)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("pagesync-mcp: %v", err)
	}
}
