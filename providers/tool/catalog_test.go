package tool

import (
	"context"
	"sync"
	"testing"

	"github.com/leofalp/options-mcp/core/cost"
)

// mockTool is a simple mock implementation of GenericTool for testing
type mockTool struct {
	name   string
	result string
}

func (m *mockTool) ToolInfo() ToolDescription {
	return ToolDescription{
		Name:        m.name,
		Description: "Mock tool for testing",
		Parameters:  nil,
	}
}

func (m *mockTool) Call(ctx context.Context, inputJson string) (string, error) {
	return m.result, nil
}

func (m *mockTool) GetMetrics() *cost.ToolMetrics {
	return nil // Mock tool has no metrics
}

func TestNewCatalog(t *testing.T) {
	catalog := NewCatalog()
	if catalog == nil {
		t.Fatal("NewCatalog returned nil")
	}
	if catalog.Size() != 0 {
		t.Errorf("New catalog should be empty, got size %d", catalog.Size())
	}
}

func TestNewCatalogWithTools(t *testing.T) {
	tool1 := &mockTool{name: "call_option", result: "result1"}
	tool2 := &mockTool{name: "put_option", result: "result2"}

	catalog := NewCatalogWithTools(tool1, tool2)

	if catalog.Size() != 2 {
		t.Errorf("Expected catalog size 2, got %d", catalog.Size())
	}

	if !catalog.Has("call_option") {
		t.Error("Catalog should contain call_option")
	}
	if !catalog.Has("put_option") {
		t.Error("Catalog should contain put_option")
	}
}

func TestCatalogGet_CaseInsensitive(t *testing.T) {
	catalog := NewCatalogWithTools(&mockTool{name: "Call_Option", result: "ok"})

	for _, name := range []string{"call_option", "CALL_OPTION", "Call_Option"} {
		got, ok := catalog.Get(name)
		if !ok {
			t.Fatalf("expected lookup %q to succeed", name)
		}
		out, err := got.Call(context.Background(), "{}")
		if err != nil || out != "ok" {
			t.Errorf("unexpected call result: %s, %v", out, err)
		}
	}
}

func TestCatalogGet_Missing(t *testing.T) {
	catalog := NewCatalog()
	if _, ok := catalog.Get("unknown"); ok {
		t.Error("expected lookup of unknown tool to fail")
	}
}

func TestCatalogRemove(t *testing.T) {
	catalog := NewCatalogWithTools(&mockTool{name: "call_option"})

	if !catalog.Remove("CALL_OPTION") {
		t.Error("expected removal to report success")
	}
	if catalog.Has("call_option") {
		t.Error("tool should be gone after removal")
	}
	if catalog.Remove("call_option") {
		t.Error("second removal should report failure")
	}
}

func TestCatalogNames_Sorted(t *testing.T) {
	catalog := NewCatalogWithTools(
		&mockTool{name: "put_option"},
		&mockTool{name: "call_option"},
	)

	names := catalog.Names()
	if len(names) != 2 || names[0] != "call_option" || names[1] != "put_option" {
		t.Errorf("unexpected names: %v", names)
	}
}

func TestCatalogTools_ReturnsCopy(t *testing.T) {
	catalog := NewCatalogWithTools(&mockTool{name: "call_option"})

	tools := catalog.Tools()
	delete(tools, "call_option")

	if !catalog.Has("call_option") {
		t.Error("modifying the returned map should not affect the catalog")
	}
}

func TestCatalogConcurrentAccess(t *testing.T) {
	catalog := NewCatalog()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			catalog.AddTools(&mockTool{name: "call_option"})
		}()
		go func() {
			defer wg.Done()
			catalog.Get("call_option")
			catalog.Size()
		}()
	}
	wg.Wait()

	if !catalog.Has("call_option") {
		t.Error("expected tool after concurrent adds")
	}
}
