package mcp

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"

	obslog "github.com/leofalp/options-mcp/providers/observability/slog"
	"github.com/leofalp/options-mcp/providers/tool"
	"github.com/leofalp/options-mcp/providers/tool/options"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	catalog := tool.NewCatalogWithTools(options.NewCallTool(), options.NewPutTool())
	srv, err := New("options-payoff", "0.1.0", catalog)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return srv
}

func callRequest(name string, args map[string]any) mcpgo.CallToolRequest {
	req := mcpgo.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func textContent(t *testing.T, result *mcpgo.CallToolResult) string {
	t.Helper()
	if len(result.Content) != 1 {
		t.Fatalf("expected single content item, got %d", len(result.Content))
	}
	text, ok := result.Content[0].(mcpgo.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func TestHandler_CallOption(t *testing.T) {
	srv := newTestServer(t)
	callTool, ok := tool.NewCatalogWithTools(options.NewCallTool()).Get(options.CallToolName)
	if !ok {
		t.Fatal("missing call tool")
	}

	result, err := srv.handler(callTool)(context.Background(),
		callRequest(options.CallToolName, map[string]any{"strike": 100.0, "premium": 5.0}))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", textContent(t, result))
	}

	expected := `{"breakeven":105,"max_profit":"infinite","max_loss":5}`
	if got := textContent(t, result); got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}
}

func TestHandler_PutOptionDegenerate(t *testing.T) {
	srv := newTestServer(t)
	putTool, ok := tool.NewCatalogWithTools(options.NewPutTool()).Get(options.PutToolName)
	if !ok {
		t.Fatal("missing put tool")
	}

	result, err := srv.handler(putTool)(context.Background(),
		callRequest(options.PutToolName, map[string]any{"strike": 50.0, "premium": 60.0}))
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}

	expected := `{"breakeven":-10,"max_profit":-10,"max_loss":60}`
	if got := textContent(t, result); got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}
}

func TestHandler_MissingArgumentIsToolError(t *testing.T) {
	srv := newTestServer(t)
	callTool, _ := tool.NewCatalogWithTools(options.NewCallTool()).Get(options.CallToolName)

	result, err := srv.handler(callTool)(context.Background(),
		callRequest(options.CallToolName, map[string]any{"strike": 100.0}))
	if err != nil {
		t.Fatalf("invalid input must not fail the transport: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected tool error result")
	}
	if got := textContent(t, result); !strings.Contains(got, "premium") {
		t.Errorf("error should name the missing parameter: %s", got)
	}
}

func TestNew_RegistersCatalogTools(t *testing.T) {
	catalog := tool.NewCatalogWithTools(options.NewCallTool(), options.NewPutTool())
	srv, err := New("options-payoff", "0.1.0", catalog)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if srv.mcp == nil {
		t.Fatal("expected underlying MCP server")
	}
	if srv.observer == nil {
		t.Fatal("expected default observer")
	}
	if srv.toolCount != catalog.Size() {
		t.Errorf("expected tool count %d, got %d", catalog.Size(), srv.toolCount)
	}
}

func TestNew_LogsRegisteredTools(t *testing.T) {
	var buf bytes.Buffer
	observer := obslog.New(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	catalog := tool.NewCatalogWithTools(options.NewCallTool(), options.NewPutTool())
	if _, err := New("options-payoff", "0.1.0", catalog, WithObserver(observer)); err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logged := buf.String()
	for _, name := range []string{options.CallToolName, options.PutToolName} {
		if !strings.Contains(logged, "tool.name="+name) {
			t.Errorf("registration log should carry tool.name=%s:\n%s", name, logged)
		}
	}
	if !strings.Contains(logged, "tool.description=") {
		t.Errorf("registration log should carry the tool description:\n%s", logged)
	}
}
