package observability

import "context"

// contextKey is unexported so other packages cannot collide with our keys.
type contextKey struct{}

var spanContextKey = contextKey{}

// SpanFromContext returns the active span carried by ctx, or nil when the
// caller was invoked outside of a traced tool execution.
func SpanFromContext(ctx context.Context) Span {
	if ctx == nil {
		return nil
	}
	span, _ := ctx.Value(spanContextKey).(Span)
	return span
}

// ContextWithSpan attaches span to ctx so downstream tool code can record
// attributes and events against it via SpanFromContext.
func ContextWithSpan(ctx context.Context, span Span) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, spanContextKey, span)
}
