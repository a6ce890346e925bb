// Package pricing assembles and prices the replicating portfolio of a
// European single-barrier FX option.
package pricing

import (
	"time"

	"fxbarrier-pricer/internal/errors"
	"fxbarrier-pricer/internal/models"
)

// VanillaPricer prices a vanilla FX option leg. Implementations must be
// deterministic for identical inputs and safe for concurrent use.
type VanillaPricer interface {
	PriceVanilla(expiry time.Time, strike float64, optionType models.OptionType) (float64, error)
}

// DigitalPricer prices a cash-or-nothing digital FX option leg.
type DigitalPricer interface {
	PriceDigital(expiry time.Time, trigger, cash float64, optionType models.OptionType) (float64, error)
}

// CashPricer values a fixed cash amount paid on a date, in its own currency.
type CashPricer interface {
	PriceCash(amount float64, payDate time.Time) (float64, error)
}

// Registry holds the leg pricers available to the engine, keyed by
// instrument kind and currency pair (or currency, for cash legs). It is
// built by the composition root and passed in explicitly; the engine never
// reaches into global state.
type Registry struct {
	vanilla map[models.CurrencyPair]VanillaPricer
	digital map[models.CurrencyPair]DigitalPricer
	cash    map[string]CashPricer
}

// NewRegistry creates an empty pricer registry.
func NewRegistry() *Registry {
	return &Registry{
		vanilla: make(map[models.CurrencyPair]VanillaPricer),
		digital: make(map[models.CurrencyPair]DigitalPricer),
		cash:    make(map[string]CashPricer),
	}
}

// RegisterVanilla registers a vanilla option pricer for a pair.
func (r *Registry) RegisterVanilla(pair models.CurrencyPair, p VanillaPricer) {
	r.vanilla[pair] = p
}

// RegisterDigital registers a digital option pricer for a pair.
func (r *Registry) RegisterDigital(pair models.CurrencyPair, p DigitalPricer) {
	r.digital[pair] = p
}

// RegisterCash registers a cash discounting pricer for a currency.
func (r *Registry) RegisterCash(currency string, p CashPricer) {
	r.cash[currency] = p
}

// Vanilla looks up the vanilla pricer for a pair.
func (r *Registry) Vanilla(pair models.CurrencyPair) (VanillaPricer, error) {
	p, ok := r.vanilla[pair]
	if !ok {
		return nil, errors.NewConfigurationError(string(models.KindFxOption), pair.String())
	}
	return p, nil
}

// Digital looks up the digital pricer for a pair.
func (r *Registry) Digital(pair models.CurrencyPair) (DigitalPricer, error) {
	p, ok := r.digital[pair]
	if !ok {
		return nil, errors.NewConfigurationError(string(models.KindFxDigitalOption), pair.String())
	}
	return p, nil
}

// Cash looks up the cash pricer for a currency.
func (r *Registry) Cash(currency string) (CashPricer, error) {
	p, ok := r.cash[currency]
	if !ok {
		return nil, errors.NewConfigurationError(string(models.KindCash), currency)
	}
	return p, nil
}
