package analytics

import (
	"math"
	"time"
)

// DiscountingCashPricer values fixed cash amounts in one currency by
// discounting at a flat continuously compounded rate.
type DiscountingCashPricer struct {
	Currency      string
	Rate          float64
	ValuationDate time.Time
}

// NewDiscountingCashPricer creates a cash pricer for a currency.
func NewDiscountingCashPricer(currency string, rate float64, valuationDate time.Time) *DiscountingCashPricer {
	return &DiscountingCashPricer{Currency: currency, Rate: rate, ValuationDate: valuationDate}
}

// PriceCash returns the discounted value of the amount. Amounts paying on
// or before the valuation date are returned undiscounted.
func (p *DiscountingCashPricer) PriceCash(amount float64, payDate time.Time) (float64, error) {
	t := payDate.Sub(p.ValuationDate).Hours() / 24.0 / daysPerYear
	if t <= 0 {
		return amount, nil
	}
	return amount * math.Exp(-p.Rate*t), nil
}
