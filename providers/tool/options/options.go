package options

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput marks evaluation inputs the arithmetic cannot proceed on.
var ErrInvalidInput = errors.New("invalid input")

// Input holds the two parameters every option tool takes.
type Input struct {
	Strike  float64 `json:"strike"  jsonschema:"description=Strike price of the option contract,required"`
	Premium float64 `json:"premium" jsonschema:"description=Premium paid to acquire the option contract,required"`
}

// Contract is the transient value record an evaluation works on. One Result
// is derived deterministically from one Contract plus the contract kind.
type Contract struct {
	Strike  float64
	Premium float64
}

// Validate rejects values the payoff arithmetic cannot handle. Only
// non-finite values fail: negative or zero strike and premium are accepted
// on purpose, producing degenerate-but-computable results uncorrected.
func (c Contract) Validate() error {
	if math.IsNaN(c.Strike) || math.IsInf(c.Strike, 0) {
		return fmt.Errorf("strike must be finite, got %v: %w", c.Strike, ErrInvalidInput)
	}
	if math.IsNaN(c.Premium) || math.IsInf(c.Premium, 0) {
		return fmt.Errorf("premium must be finite, got %v: %w", c.Premium, ErrInvalidInput)
	}
	return nil
}

// Result is the evaluation outcome returned to the host.
type Result struct {
	Breakeven float64 `json:"breakeven"  jsonschema:"description=Underlying price at which the position breaks even"`
	MaxProfit Payoff  `json:"max_profit" jsonschema:"description=Maximum achievable profit; serialized as the string infinite when unbounded"`
	MaxLoss   float64 `json:"max_loss"   jsonschema:"description=Maximum achievable loss; equals the premium paid"`
}

// EvaluateCall computes the payoff profile of a long call option.
// Breakeven is strike plus premium. Profit scales with the underlying price
// without an upper limit, so max profit is unbounded. Loss is capped at the
// premium paid, realized when the underlying stays at or below strike at
// expiry. The function is pure: no state, no side effects, identical inputs
// give identical results.
func EvaluateCall(ctx context.Context, in Input) (Result, error) {
	contract := Contract{Strike: in.Strike, Premium: in.Premium}
	if err := contract.Validate(); err != nil {
		return Result{}, err
	}

	return Result{
		Breakeven: contract.Strike + contract.Premium,
		MaxProfit: UnboundedPayoff(),
		MaxLoss:   contract.Premium,
	}, nil
}

// EvaluatePut computes the payoff profile of a long put option.
// Breakeven is strike minus premium. Max profit is also strike minus premium,
// the theoretical ceiling realized if the underlying falls to zero. Loss is
// capped at the premium paid. When premium >= strike the max profit comes out
// zero or negative; the value is returned as computed, never clamped.
func EvaluatePut(ctx context.Context, in Input) (Result, error) {
	contract := Contract{Strike: in.Strike, Premium: in.Premium}
	if err := contract.Validate(); err != nil {
		return Result{}, err
	}

	return Result{
		Breakeven: contract.Strike - contract.Premium,
		MaxProfit: FinitePayoff(contract.Strike - contract.Premium),
		MaxLoss:   contract.Premium,
	}, nil
}
