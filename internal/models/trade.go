package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PremiumPayment represents a single premium cash payment attached to the
// option trade.
type PremiumPayment struct {
	Amount   float64
	Currency string
	PayDate  time.Time
}

// OptionSpec describes the vanilla option part of the trade.
type OptionSpec struct {
	Type          OptionType
	Style         ExerciseStyle
	ExerciseDates []time.Time
	LongShort     PositionType
	Premiums      []PremiumPayment
}

// BarrierSpec describes the single barrier attached to the option.
// Style is empty or "European"; an empty style means European monitoring.
type BarrierSpec struct {
	Levels []float64
	Type   BarrierType
	Style  ExerciseStyle
	Rebate float64
}

// FxLegAmounts holds the exchanged amounts of the FX pair. The implied
// strike is SoldAmount / BoughtAmount.
type FxLegAmounts struct {
	BoughtCurrency string
	SoldCurrency   string
	BoughtAmount   float64
	SoldAmount     float64
}

// Pair returns the currency pair of the FX amounts.
func (a FxLegAmounts) Pair() CurrencyPair {
	return CurrencyPair{Bought: a.BoughtCurrency, Sold: a.SoldCurrency}
}

// Strike returns the strike implied by the exchanged amounts.
func (a FxLegAmounts) Strike() float64 {
	return a.SoldAmount / a.BoughtAmount
}

// BarrierTrade is a validated single-barrier FX option trade, the inbound
// boundary of the pricing engine.
type BarrierTrade struct {
	ID      string
	Option  OptionSpec
	Barrier BarrierSpec
	Amounts FxLegAmounts
	// Actions carries trade actions from the envelope; the engine rejects
	// trades that have any.
	Actions []string
}

// TradeOutputs holds the reporting fields derived from a priced trade.
type TradeOutputs struct {
	NPV              decimal.Decimal
	NPVCurrency      string
	Notional         decimal.Decimal
	NotionalCurrency string
	Maturity         time.Time
	Annotations      map[string]interface{}
}
