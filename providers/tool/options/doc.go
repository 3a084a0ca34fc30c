// Package options provides payoff evaluation for single-leg option contracts
// and the tools that expose it to a host.
//
// [EvaluateCall] and [EvaluatePut] are pure functions from a strike/premium
// pair to a [Result] holding breakeven price, maximum profit, and maximum
// loss. A call's maximum profit is unbounded, which [Payoff] models as a
// tagged variant rather than a numeric sentinel; the literal "infinite"
// appears only in the JSON encoding.
//
// [NewCallTool] and [NewPutTool] wrap the evaluators as tools registered
// under the names "call_option" and "put_option".
package options
