package options

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// unboundedWire is the sentinel hosts receive in place of a number when a
// payoff has no upper limit.
const unboundedWire = "infinite"

// Payoff represents a profit bound that is either a finite amount or
// unbounded. The zero value is a finite payoff of 0.
type Payoff struct {
	value     float64
	unbounded bool
}

// FinitePayoff returns a payoff capped at v.
func FinitePayoff(v float64) Payoff {
	return Payoff{value: v}
}

// UnboundedPayoff returns a payoff with no upper limit.
func UnboundedPayoff() Payoff {
	return Payoff{unbounded: true}
}

// IsUnbounded reports whether the payoff has no upper limit.
func (p Payoff) IsUnbounded() bool {
	return p.unbounded
}

// Value returns the finite payoff amount. It is meaningful only when
// IsUnbounded reports false.
func (p Payoff) Value() float64 {
	return p.value
}

// String returns the wire representation: the amount, or "infinite".
func (p Payoff) String() string {
	if p.unbounded {
		return unboundedWire
	}
	return strconv.FormatFloat(p.value, 'f', -1, 64)
}

// MarshalJSON encodes the payoff as a number, or as the literal string
// "infinite" when unbounded.
func (p Payoff) MarshalJSON() ([]byte, error) {
	if p.unbounded {
		return json.Marshal(unboundedWire)
	}
	return json.Marshal(p.value)
}

// UnmarshalJSON accepts either a number or the "infinite" marker.
func (p *Payoff) UnmarshalJSON(data []byte) error {
	var marker string
	if err := json.Unmarshal(data, &marker); err == nil {
		if marker != unboundedWire {
			return fmt.Errorf("payoff: unknown marker %q", marker)
		}
		*p = UnboundedPayoff()
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("payoff: expected number or %q: %w", unboundedWire, err)
	}
	*p = FinitePayoff(v)
	return nil
}
