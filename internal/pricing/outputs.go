package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"fxbarrier-pricer/internal/models"
)

// projectOutputs derives the trade reporting fields. The sold currency is
// the domestic leg of the pair and is always the reporting currency; the
// maturity is the latest of the expiry and all premium dates.
func projectOutputs(trade models.BarrierTrade, npv float64, expiry, latestPremium time.Time) models.TradeOutputs {
	maturity := expiry
	if latestPremium.After(maturity) {
		maturity = latestPremium
	}
	return models.TradeOutputs{
		NPV:              decimal.NewFromFloat(npv),
		NPVCurrency:      trade.Amounts.SoldCurrency,
		Notional:         decimal.NewFromFloat(trade.Amounts.SoldAmount),
		NotionalCurrency: trade.Amounts.SoldCurrency,
		Maturity:         maturity,
		Annotations: map[string]interface{}{
			"boughtCurrency": trade.Amounts.BoughtCurrency,
			"boughtAmount":   decimal.NewFromFloat(trade.Amounts.BoughtAmount),
			"soldCurrency":   trade.Amounts.SoldCurrency,
			"soldAmount":     decimal.NewFromFloat(trade.Amounts.SoldAmount),
		},
	}
}
