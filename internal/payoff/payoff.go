// Package payoff provides terminal payoff value objects.
package payoff

import (
	"math"

	"fxbarrier-pricer/internal/models"
)

// Vanilla is a plain vanilla payoff: (S-K)+ for a call, (K-S)+ for a put.
type Vanilla struct {
	Type   models.OptionType
	Strike float64
}

// ValueAt evaluates the payoff at a terminal price.
func (v Vanilla) ValueAt(terminal float64) float64 {
	if v.Type == models.OptionCall {
		return math.Max(terminal-v.Strike, 0)
	}
	return math.Max(v.Strike-terminal, 0)
}

// CashOrNothing is a digital payoff paying a fixed cash amount when the
// terminal price is beyond the trigger: above for a call, below for a put.
// At the trigger itself the call pays and the put does not.
type CashOrNothing struct {
	Type    models.OptionType
	Trigger float64
	Cash    float64
}

// ValueAt evaluates the payoff at a terminal price.
func (c CashOrNothing) ValueAt(terminal float64) float64 {
	if c.Type == models.OptionCall {
		if terminal >= c.Trigger {
			return c.Cash
		}
		return 0
	}
	if terminal < c.Trigger {
		return c.Cash
	}
	return 0
}
