package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/leofalp/options-mcp/providers/observability"
	obslog "github.com/leofalp/options-mcp/providers/observability/slog"
	"github.com/leofalp/options-mcp/providers/tool"
)

// Server bridges a tool catalog onto an MCP server.
type Server struct {
	name      string
	version   string
	toolCount int
	mcp       *server.MCPServer
	observer  observability.Provider
}

// Option configures a Server created via [New].
type Option func(*Server)

// WithObserver sets the observability provider used for spans and logging.
// Defaults to a slog-backed observer on the default logger.
func WithObserver(observer observability.Provider) Option {
	return func(s *Server) {
		s.observer = observer
	}
}

// New builds a Server advertising every tool in the catalog. Tool names,
// descriptions, and parameter schemas are taken from each tool's ToolInfo.
// Returns an error if a tool's parameter schema cannot be serialized.
func New(name, version string, catalog *tool.Catalog, options ...Option) (*Server, error) {
	s := &Server{
		name:    name,
		version: version,
		mcp: server.NewMCPServer(name, version,
			server.WithToolCapabilities(false),
		),
	}
	for _, option := range options {
		option(s)
	}
	if s.observer == nil {
		s.observer = obslog.New(nil)
	}

	for _, registered := range catalog.Tools() {
		info := registered.ToolInfo()

		rawSchema, err := json.Marshal(info.Parameters)
		if err != nil {
			return nil, fmt.Errorf("serializing parameter schema for tool %s: %w", info.Name, err)
		}

		s.mcp.AddTool(
			mcpgo.NewToolWithRawSchema(info.Name, info.Description, rawSchema),
			s.handler(registered),
		)
		s.toolCount++

		s.observer.Debug(context.Background(), "tool registered",
			observability.String(observability.AttrToolName, info.Name),
			observability.String(observability.AttrToolDescription, info.Description),
		)
	}

	return s, nil
}

// handler adapts a GenericTool to the MCP tool handler signature. Arguments
// arrive as a decoded JSON object and are re-serialized so the tool's own
// lenient decoding and required-parameter validation apply uniformly.
func (s *Server) handler(t tool.GenericTool) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
		args, err := json.Marshal(req.GetArguments())
		if err != nil {
			return mcpgo.NewToolResultError(fmt.Sprintf("serializing arguments: %v", err)), nil
		}

		ctx, span := s.observer.StartSpan(ctx, "tool.call",
			observability.String(observability.AttrToolName, req.Params.Name),
		)
		defer span.End()

		output, err := t.Call(ctx, string(args))
		if err != nil {
			span.SetStatus(observability.StatusError, err.Error())
			// Invalid input is the caller's problem: report it inside the
			// protocol result rather than failing the transport.
			return mcpgo.NewToolResultError(err.Error()), nil
		}

		span.SetStatus(observability.StatusOK, "")
		return mcpgo.NewToolResultText(output), nil
	}
}

// ServeStdio serves the MCP protocol over stdin/stdout until the host
// disconnects.
func (s *Server) ServeStdio() error {
	ctx := context.Background()
	s.observer.Info(ctx, observability.EventServerStart,
		observability.String(observability.AttrServerName, s.name),
		observability.String(observability.AttrServerVersion, s.version),
		observability.String(observability.AttrServerTransport, "stdio"),
		observability.Int(observability.AttrToolsCount, s.toolCount),
	)

	err := server.ServeStdio(s.mcp)
	if err != nil {
		s.observer.Error(ctx, observability.EventServerStop,
			observability.String(observability.AttrServerName, s.name),
			observability.Error(err),
		)
		return fmt.Errorf("stdio server: %w", err)
	}

	s.observer.Info(ctx, observability.EventServerStop,
		observability.String(observability.AttrServerName, s.name),
	)
	return nil
}
