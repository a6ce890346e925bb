// Package analytics provides closed-form Garman-Kohlhagen pricers for the
// vanilla and digital FX legs of the replicating portfolio.
package analytics

import (
	"math"
	"time"

	"github.com/chobie/go-gaussian"

	"fxbarrier-pricer/internal/errors"
	"fxbarrier-pricer/internal/models"
	"fxbarrier-pricer/internal/termstructure"
)

const daysPerYear = 365.0

// MarketInputs holds the market state for one currency pair. Rates are
// continuously compounded; the domestic rate discounts the sold currency,
// the foreign rate the bought currency.
type MarketInputs struct {
	Spot          float64
	DomesticRate  float64
	ForeignRate   float64
	Vol           termstructure.VolSurface
	ValuationDate time.Time
}

// Pricer prices vanilla and cash-or-nothing digital FX options on a single
// pair with Garman-Kohlhagen closed forms. Values are in the sold (domestic)
// currency per unit of bought notional. Safe for concurrent use.
type Pricer struct {
	pair   models.CurrencyPair
	market MarketInputs
	norm   *gaussian.Gaussian
}

// NewPricer creates an analytic pricer for a pair.
func NewPricer(pair models.CurrencyPair, market MarketInputs) (*Pricer, error) {
	if market.Spot <= 0 {
		return nil, errors.NewValidationError("market.spot", market.Spot, "spot must be positive", nil)
	}
	if market.Vol == nil {
		return nil, errors.NewValidationError("market.vol", nil, "vol surface required", nil)
	}
	return &Pricer{pair: pair, market: market, norm: gaussian.NewGaussian(0, 1)}, nil
}

// Pair returns the currency pair this pricer serves.
func (p *Pricer) Pair() models.CurrencyPair { return p.pair }

func (p *Pricer) yearFraction(expiry time.Time) float64 {
	return expiry.Sub(p.market.ValuationDate).Hours() / 24.0 / daysPerYear
}

func (p *Pricer) forward(t float64) float64 {
	return p.market.Spot * math.Exp((p.market.DomesticRate-p.market.ForeignRate)*t)
}

// d1d2 returns the Black d1/d2 terms. ok is false when the total standard
// deviation is zero; the price is then the discounted forward intrinsic.
func (p *Pricer) d1d2(t, strike float64) (d1, d2 float64, ok bool) {
	v := p.market.Vol.Vol(t, strike)
	stdDev := v * math.Sqrt(t)
	if stdDev <= 0 {
		return 0, 0, false
	}
	d1 = (math.Log(p.market.Spot/strike) + (p.market.DomesticRate-p.market.ForeignRate+0.5*v*v)*t) / stdDev
	return d1, d1 - stdDev, true
}

// PriceVanilla returns the Garman-Kohlhagen value of a vanilla FX option.
// At or past expiry the intrinsic value is returned.
func (p *Pricer) PriceVanilla(expiry time.Time, strike float64, optionType models.OptionType) (float64, error) {
	if strike <= 0 {
		return 0, errors.NewValidationError("strike", strike, "strike must be positive", nil)
	}
	t := p.yearFraction(expiry)
	if t <= 0 {
		if optionType == models.OptionCall {
			return math.Max(p.market.Spot-strike, 0), nil
		}
		return math.Max(strike-p.market.Spot, 0), nil
	}
	dfDom := math.Exp(-p.market.DomesticRate * t)
	dfFor := math.Exp(-p.market.ForeignRate * t)
	d1, d2, ok := p.d1d2(t, strike)
	if !ok {
		if optionType == models.OptionCall {
			return dfDom * math.Max(p.forward(t)-strike, 0), nil
		}
		return dfDom * math.Max(strike-p.forward(t), 0), nil
	}
	if optionType == models.OptionCall {
		return p.market.Spot*dfFor*p.norm.Cdf(d1) - strike*dfDom*p.norm.Cdf(d2), nil
	}
	return strike*dfDom*p.norm.Cdf(-d2) - p.market.Spot*dfFor*p.norm.Cdf(-d1), nil
}

// PriceDigital returns the value of a cash-or-nothing digital paying cash
// when the terminal spot is beyond the trigger.
func (p *Pricer) PriceDigital(expiry time.Time, trigger, cash float64, optionType models.OptionType) (float64, error) {
	if trigger <= 0 {
		return 0, errors.NewValidationError("trigger", trigger, "trigger must be positive", nil)
	}
	t := p.yearFraction(expiry)
	if t <= 0 {
		if (optionType == models.OptionCall) == (p.market.Spot >= trigger) {
			return cash, nil
		}
		return 0, nil
	}
	dfDom := math.Exp(-p.market.DomesticRate * t)
	_, d2, ok := p.d1d2(t, trigger)
	if !ok {
		if (optionType == models.OptionCall) == (p.forward(t) >= trigger) {
			return cash * dfDom, nil
		}
		return 0, nil
	}
	if optionType == models.OptionCall {
		return cash * dfDom * p.norm.Cdf(d2), nil
	}
	return cash * dfDom * p.norm.Cdf(-d2), nil
}
