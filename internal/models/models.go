// Package models provides domain models for the barrier option pricer.
package models

// OptionType represents the call/put flavour of an option.
type OptionType string

const (
	OptionCall OptionType = "CALL"
	OptionPut  OptionType = "PUT"
)

// BarrierType represents the direction and knock behaviour of a barrier.
type BarrierType string

const (
	BarrierUpIn    BarrierType = "UP_IN"
	BarrierUpOut   BarrierType = "UP_OUT"
	BarrierDownIn  BarrierType = "DOWN_IN"
	BarrierDownOut BarrierType = "DOWN_OUT"
)

// PositionType represents the direction of a position.
type PositionType string

const (
	PositionLong  PositionType = "LONG"
	PositionShort PositionType = "SHORT"
)

// ExerciseStyle represents the exercise style of an option.
type ExerciseStyle string

const (
	StyleEuropean ExerciseStyle = "European"
)

// InstrumentKind identifies the pricing capability a leg requires.
type InstrumentKind string

const (
	KindFxOption        InstrumentKind = "FxOption"
	KindFxDigitalOption InstrumentKind = "FxDigitalOption"
	KindCash            InstrumentKind = "Cash"
)

// CurrencyPair identifies an FX pair by its bought (foreign) and sold
// (domestic) currencies. The sold currency is the pricing currency.
type CurrencyPair struct {
	Bought string
	Sold   string
}

// String returns the pair in BOUGHT/SOLD notation.
func (p CurrencyPair) String() string {
	return p.Bought + "/" + p.Sold
}
