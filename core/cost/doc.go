// Package cost defines the pricing metadata attached to tools so that hosts
// can surface what a tool invocation costs and how it performs.
//
// The main type is [ToolMetrics], which carries per-call cost and quality
// metadata. Local, in-process tools typically advertise a zero cost.
package cost
