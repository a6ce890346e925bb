package pricing

import (
	"time"

	"github.com/rs/zerolog"

	"fxbarrier-pricer/internal/models"
	"fxbarrier-pricer/internal/replication"
)

// Engine prices European single-barrier FX options by static replication.
// It holds no per-trade state: concurrent Price calls are safe as long as
// the registered pricers are.
type Engine struct {
	registry *Registry
	logger   zerolog.Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine(registry *Registry) *Engine {
	return &Engine{registry: registry, logger: zerolog.Nop()}
}

// NewEngineWithLogger creates an engine that logs through the given logger.
func NewEngineWithLogger(registry *Registry, logger zerolog.Logger) *Engine {
	return &Engine{registry: registry, logger: logger}
}

// Price validates the trade, selects the replicating legs, assembles and
// values the composite, attaches premium legs and projects the reporting
// outputs. It either returns fully formed outputs or an error; never a
// partial composite.
func (e *Engine) Price(trade models.BarrierTrade) (*models.TradeOutputs, error) {
	if err := Validate(trade); err != nil {
		return nil, err
	}

	pair := trade.Amounts.Pair()
	strike := trade.Amounts.Strike()
	level := trade.Barrier.Levels[0]
	expiry := trade.Option.ExerciseDates[0]

	rebatePayoff, mainLegs, err := replication.Select(
		trade.Option.Type, trade.Barrier.Type, strike, level, trade.Barrier.Rebate)
	if err != nil {
		return nil, err
	}

	vanillaPricer, err := e.registry.Vanilla(pair)
	if err != nil {
		return nil, err
	}
	digitalPricer, err := e.registry.Digital(pair)
	if err != nil {
		return nil, err
	}

	composite := NewComposite()
	composite.Add(NewDigitalLeg(rebatePayoff, expiry, digitalPricer))
	for _, leg := range mainLegs {
		switch leg.Kind {
		case replication.DigitalAtBarrier:
			composite.AddWithMultiplier(NewDigitalLeg(leg.Digital, expiry, digitalPricer), leg.Sign)
		default:
			composite.AddWithMultiplier(NewVanillaLeg(leg.Vanilla, expiry, vanillaPricer), leg.Sign)
		}
	}

	bsInd := 1.0
	if trade.Option.LongShort == models.PositionShort {
		bsInd = -1.0
	}
	mult := trade.Amounts.BoughtAmount * bsInd

	// The notional/direction scaling applies to the whole replication
	// composite; premium legs carry their own -bsInd sign.
	wrapper := NewComposite()
	wrapper.AddWithMultiplier(composite, mult)
	latest, err := e.attachPremiums(wrapper, trade.Option.Premiums, -bsInd, expiry)
	if err != nil {
		return nil, err
	}

	npv, err := wrapper.PresentValue()
	if err != nil {
		return nil, err
	}

	e.logger.Debug().
		Str("trade_id", trade.ID).
		Str("pair", pair.String()).
		Str("barrier_type", string(trade.Barrier.Type)).
		Int("main_legs", len(mainLegs)).
		Float64("npv", npv).
		Msg("Trade priced")

	outputs := projectOutputs(trade, npv, expiry, latest)
	return &outputs, nil
}

// attachPremiums appends one cash leg per premium payment, signed by
// scaleSign, and folds each payment date into the latest date. Leg order is
// preserved for reporting.
func (e *Engine) attachPremiums(composite *Composite, premiums []models.PremiumPayment, scaleSign float64, latest time.Time) (time.Time, error) {
	for _, p := range premiums {
		cashPricer, err := e.registry.Cash(p.Currency)
		if err != nil {
			return time.Time{}, err
		}
		composite.AddWithMultiplier(NewCashLeg(p, cashPricer), scaleSign)
		if p.PayDate.After(latest) {
			latest = p.PayDate
		}
	}
	return latest, nil
}
