package pricing

import (
	"time"

	"fxbarrier-pricer/internal/models"
	"fxbarrier-pricer/internal/payoff"
)

// Priceable is a payoff bound to an exercise date and a pricer. It is the
// unit the composite combines. PresentValue delegates entirely to the
// supplied pricer; legs do no numerical modeling themselves.
type Priceable interface {
	PresentValue() (float64, error)
}

// VanillaLeg is a vanilla payoff bound to a vanilla pricer.
type VanillaLeg struct {
	Payoff payoff.Vanilla
	Expiry time.Time
	pricer VanillaPricer
}

// NewVanillaLeg binds a vanilla payoff and expiry to a pricer.
func NewVanillaLeg(p payoff.Vanilla, expiry time.Time, pricer VanillaPricer) *VanillaLeg {
	return &VanillaLeg{Payoff: p, Expiry: expiry, pricer: pricer}
}

// PresentValue implements Priceable.
func (l *VanillaLeg) PresentValue() (float64, error) {
	return l.pricer.PriceVanilla(l.Expiry, l.Payoff.Strike, l.Payoff.Type)
}

// DigitalLeg is a cash-or-nothing payoff bound to a digital pricer.
type DigitalLeg struct {
	Payoff payoff.CashOrNothing
	Expiry time.Time
	pricer DigitalPricer
}

// NewDigitalLeg binds a digital payoff and expiry to a pricer.
func NewDigitalLeg(p payoff.CashOrNothing, expiry time.Time, pricer DigitalPricer) *DigitalLeg {
	return &DigitalLeg{Payoff: p, Expiry: expiry, pricer: pricer}
}

// PresentValue implements Priceable.
func (l *DigitalLeg) PresentValue() (float64, error) {
	return l.pricer.PriceDigital(l.Expiry, l.Payoff.Trigger, l.Payoff.Cash, l.Payoff.Type)
}

// CashLeg is a fixed cash payment valued in its own currency.
type CashLeg struct {
	Premium models.PremiumPayment
	pricer  CashPricer
}

// NewCashLeg binds a premium payment to a cash pricer.
func NewCashLeg(premium models.PremiumPayment, pricer CashPricer) *CashLeg {
	return &CashLeg{Premium: premium, pricer: pricer}
}

// PresentValue implements Priceable.
func (l *CashLeg) PresentValue() (float64, error) {
	return l.pricer.PriceCash(l.Premium.Amount, l.Premium.PayDate)
}
