// Package replication decomposes a European single-barrier FX option into a
// signed portfolio of vanilla and cash-or-nothing digital legs.
//
// The decomposition is exact for European barrier monitoring. Writing K for
// the strike and B for the barrier level, the selected legs are:
//
//	Call
//	  UpIn / DownOut
//	    B > K:  +Vanilla(B), +Digital(B, B-K)
//	    B <= K: +Vanilla(K)
//	  UpOut / DownIn
//	    B > K:  +Vanilla(K), -Vanilla(B), -Digital(B, B-K)
//	    B <= K: (no legs)
//	Put
//	  UpIn / DownOut
//	    B > K:  (no legs)
//	    B <= K: +Vanilla(K), -Vanilla(B), -Digital(B, K-B)
//	  UpOut / DownIn
//	    B > K:  +Vanilla(K)
//	    B <= K: +Vanilla(B), +Digital(B, K-B)
//
// The rebate is a separate digital leg at B paying the rebate amount:
// Put-style for UpIn/DownOut barriers, Call-style for UpOut/DownIn.
package replication

import (
	"fxbarrier-pricer/internal/errors"
	"fxbarrier-pricer/internal/models"
	"fxbarrier-pricer/internal/payoff"
)

// LegKind identifies a replication leg.
type LegKind string

const (
	// VanillaAtStrike is a vanilla option struck at the trade strike K.
	VanillaAtStrike LegKind = "VANILLA_AT_STRIKE"
	// VanillaAtBarrier is a vanilla option struck at the barrier level B.
	VanillaAtBarrier LegKind = "VANILLA_AT_BARRIER"
	// DigitalAtBarrier is a cash-or-nothing digital triggered at B paying |B-K|.
	DigitalAtBarrier LegKind = "DIGITAL_AT_BARRIER"
)

// Leg is one signed component of the replicating portfolio.
type Leg struct {
	Kind    LegKind
	Sign    float64
	Vanilla payoff.Vanilla       // set for vanilla legs
	Digital payoff.CashOrNothing // set for the digital leg
}

// legSpec is a row fragment of the decision table: a kind and its sign.
type legSpec struct {
	kind LegKind
	sign float64
}

// tableKey indexes the decision table by option type, barrier type and the
// B > K comparison. B == K resolves to aboveStrike == false.
type tableKey struct {
	optionType  models.OptionType
	barrierType models.BarrierType
	aboveStrike bool
}

var decompositionTable = map[tableKey][]legSpec{
	{models.OptionCall, models.BarrierUpIn, true}:     {{VanillaAtBarrier, 1}, {DigitalAtBarrier, 1}},
	{models.OptionCall, models.BarrierUpIn, false}:    {{VanillaAtStrike, 1}},
	{models.OptionCall, models.BarrierDownOut, true}:  {{VanillaAtBarrier, 1}, {DigitalAtBarrier, 1}},
	{models.OptionCall, models.BarrierDownOut, false}: {{VanillaAtStrike, 1}},
	{models.OptionCall, models.BarrierUpOut, true}:    {{VanillaAtStrike, 1}, {VanillaAtBarrier, -1}, {DigitalAtBarrier, -1}},
	{models.OptionCall, models.BarrierUpOut, false}:   {},
	{models.OptionCall, models.BarrierDownIn, true}:   {{VanillaAtStrike, 1}, {VanillaAtBarrier, -1}, {DigitalAtBarrier, -1}},
	{models.OptionCall, models.BarrierDownIn, false}:  {},
	{models.OptionPut, models.BarrierUpIn, true}:      {},
	{models.OptionPut, models.BarrierUpIn, false}:     {{VanillaAtStrike, 1}, {VanillaAtBarrier, -1}, {DigitalAtBarrier, -1}},
	{models.OptionPut, models.BarrierDownOut, true}:   {},
	{models.OptionPut, models.BarrierDownOut, false}:  {{VanillaAtStrike, 1}, {VanillaAtBarrier, -1}, {DigitalAtBarrier, -1}},
	{models.OptionPut, models.BarrierUpOut, true}:     {{VanillaAtStrike, 1}},
	{models.OptionPut, models.BarrierUpOut, false}:    {{VanillaAtBarrier, 1}, {DigitalAtBarrier, 1}},
	{models.OptionPut, models.BarrierDownIn, true}:    {{VanillaAtStrike, 1}},
	{models.OptionPut, models.BarrierDownIn, false}:   {{VanillaAtBarrier, 1}, {DigitalAtBarrier, 1}},
}

// Select returns the rebate digital leg and the signed main legs replicating
// a European single-barrier option. It is pure and deterministic: no I/O, no
// state. Unknown barrier types yield an UnsupportedBarrierTypeError.
func Select(optionType models.OptionType, barrierType models.BarrierType, strike, level, rebate float64) (payoff.CashOrNothing, []Leg, error) {
	rebateLeg, err := rebatePayoff(barrierType, level, rebate)
	if err != nil {
		return payoff.CashOrNothing{}, nil, err
	}

	specs, ok := decompositionTable[tableKey{optionType, barrierType, level > strike}]
	if !ok {
		// The barrier type is already vetted, so a miss means a bad option type.
		return payoff.CashOrNothing{}, nil, errors.NewValidationError("optionType", optionType, "must be CALL or PUT", nil)
	}

	legs := make([]Leg, 0, len(specs))
	for _, s := range specs {
		leg := Leg{Kind: s.kind, Sign: s.sign}
		switch s.kind {
		case VanillaAtStrike:
			leg.Vanilla = payoff.Vanilla{Type: optionType, Strike: strike}
		case VanillaAtBarrier:
			leg.Vanilla = payoff.Vanilla{Type: optionType, Strike: level}
		case DigitalAtBarrier:
			leg.Digital = payoff.CashOrNothing{Type: optionType, Trigger: level, Cash: abs(level - strike)}
		}
		legs = append(legs, leg)
	}
	return rebateLeg, legs, nil
}

// rebatePayoff returns the digital paying the rebate at the barrier level.
// The trigger side monitors the non-knock region and is fixed protocol:
// UpIn/DownOut barriers pay the rebate as a Put digital, UpOut/DownIn as a
// Call digital.
func rebatePayoff(barrierType models.BarrierType, level, rebate float64) (payoff.CashOrNothing, error) {
	switch barrierType {
	case models.BarrierUpIn, models.BarrierDownOut:
		return payoff.CashOrNothing{Type: models.OptionPut, Trigger: level, Cash: rebate}, nil
	case models.BarrierUpOut, models.BarrierDownIn:
		return payoff.CashOrNothing{Type: models.OptionCall, Trigger: level, Cash: rebate}, nil
	default:
		return payoff.CashOrNothing{}, errors.NewUnsupportedBarrierTypeError(string(barrierType))
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
