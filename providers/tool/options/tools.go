package options

import (
	"github.com/leofalp/options-mcp/core/cost"
	"github.com/leofalp/options-mcp/providers/tool"
)

// Tool names the host dispatches on.
const (
	CallToolName = "call_option"
	PutToolName  = "put_option"
)

// localMetrics annotates the option tools as free in-process computation.
func localMetrics() cost.ToolMetrics {
	return cost.ToolMetrics{
		Amount:                  0.0, // Free - local execution
		Currency:                "USD",
		CostDescription:         "local computation",
		Accuracy:                1.0, // Closed-form arithmetic
		AverageDurationInMillis: 1,
	}
}

// NewCallTool returns a [tool.Tool] exposing [EvaluateCall] under the name
// "call_option".
func NewCallTool() *tool.Tool[Input, Result] {
	return tool.NewTool(
		CallToolName,
		EvaluateCall,
		tool.WithDescription("Computes breakeven price and potential payoffs for a Call Option given its strike price and premium. Max profit is unbounded and serialized as the string \"infinite\"; max loss equals the premium paid."),
		tool.WithMetrics(localMetrics()),
	)
}

// NewPutTool returns a [tool.Tool] exposing [EvaluatePut] under the name
// "put_option".
func NewPutTool() *tool.Tool[Input, Result] {
	return tool.NewTool(
		PutToolName,
		EvaluatePut,
		tool.WithDescription("Computes breakeven price and potential payoffs for a Put Option given its strike price and premium. Max profit is strike minus premium, realized if the underlying falls to zero; max loss equals the premium paid."),
		tool.WithMetrics(localMetrics()),
	)
}
