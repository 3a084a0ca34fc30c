package observability

import (
	"context"
	"testing"
)

// noopSpan is a minimal Span implementation for context tests.
type noopSpan struct{}

func (noopSpan) End()                                  {}
func (noopSpan) SetAttributes(attrs ...Attribute)      {}
func (noopSpan) SetStatus(code StatusCode, msg string) {}
func (noopSpan) RecordError(err error)                 {}
func (noopSpan) AddEvent(name string, a ...Attribute)  {}

func TestSpanFromContext_Empty(t *testing.T) {
	if span := SpanFromContext(context.Background()); span != nil {
		t.Errorf("expected nil span, got %v", span)
	}
	if span := SpanFromContext(nil); span != nil {
		t.Errorf("expected nil span for nil context, got %v", span)
	}
}

func TestContextWithSpan_RoundTrip(t *testing.T) {
	span := noopSpan{}
	ctx := ContextWithSpan(context.Background(), span)

	got := SpanFromContext(ctx)
	if got == nil {
		t.Fatal("expected span in context")
	}
	if _, ok := got.(noopSpan); !ok {
		t.Errorf("unexpected span type: %T", got)
	}
}

func TestContextWithSpan_NilContext(t *testing.T) {
	ctx := ContextWithSpan(nil, noopSpan{})
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}
	if SpanFromContext(ctx) == nil {
		t.Error("expected span in context built from nil")
	}
}
