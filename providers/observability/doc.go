// Package observability defines the tracing and logging abstractions used
// throughout the server. A [Provider] combines a [Tracer] for span-based
// tracing of tool executions with a structured [Logger]. Spans travel through
// a context.Context via [ContextWithSpan] and [SpanFromContext], so tool code
// can emit events without depending on a concrete backend.
//
// Attribute name constants live in semconv.go to keep span and log output
// consistent across packages.
package observability
