// Command options-mcp serves the option payoff tools (call_option,
// put_option) over the Model Context Protocol on stdio.
//
// Configuration comes from the environment, optionally via a .env file:
//
//	OPTIONS_MCP_SERVER_NAME  advertised server name (default "options-payoff")
//	OPTIONS_MCP_LOG_LEVEL    DEBUG, INFO, WARN, ERROR (default INFO)
//
// Logs go to stderr; stdout belongs to the protocol.
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/leofalp/options-mcp/providers/mcp"
	obslog "github.com/leofalp/options-mcp/providers/observability/slog"
	"github.com/leofalp/options-mcp/providers/tool"
	"github.com/leofalp/options-mcp/providers/tool/options"
)

const (
	defaultServerName = "options-payoff"
	serverVersion     = "0.1.0"
)

func main() {
	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: obslog.GetLogLevelFromEnv(),
	}))
	observer := obslog.New(logger)

	name := os.Getenv("OPTIONS_MCP_SERVER_NAME")
	if name == "" {
		name = defaultServerName
	}

	catalog := tool.NewCatalogWithTools(
		options.NewCallTool(),
		options.NewPutTool(),
	)

	srv, err := mcp.New(name, serverVersion, catalog, mcp.WithObserver(observer))
	if err != nil {
		logger.Error("building server", "error", err)
		os.Exit(1)
	}

	logger.Info("registered tools", "tools", catalog.Names())
	if err := srv.ServeStdio(); err != nil {
		logger.Error("serve", "error", err)
		os.Exit(1)
	}
}
