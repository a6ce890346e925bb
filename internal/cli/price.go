package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"fxbarrier-pricer/internal/analytics"
	"fxbarrier-pricer/internal/logging"
	"fxbarrier-pricer/internal/marketdata"
	"fxbarrier-pricer/internal/models"
	"fxbarrier-pricer/internal/pricing"
	"fxbarrier-pricer/internal/store"
)

// newPriceCmd creates the price command.
func newPriceCmd(app *App) *cobra.Command {
	var tradePath string

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Price a barrier option trade from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			trade, err := loadTrade(tradePath, app.Calendar)
			if err != nil {
				return err
			}
			logger := logging.WithTradeID(app.Logger, trade.ID)

			snapshot, err := app.loadSnapshot()
			if err != nil {
				return err
			}

			registry, err := buildRegistry(snapshot, trade.Amounts.Pair())
			if err != nil {
				return err
			}

			engine := pricing.NewEngineWithLogger(registry, logger)
			outputs, err := engine.Price(trade)
			if err != nil {
				logger.Error().Err(err).Msg("Pricing failed")
				return err
			}

			npv, _ := outputs.NPV.Float64()
			logging.LogPriced(logger, trade.ID, trade.Amounts.Pair().String(), npv, outputs.NPVCurrency)
			printOutputs(cmd.OutOrStdout(), trade, outputs)

			if app.Store != nil {
				notional, _ := outputs.Notional.Float64()
				record := &store.PricingRecord{
					TradeID:          trade.ID,
					Pair:             trade.Amounts.Pair().String(),
					BarrierType:      string(trade.Barrier.Type),
					NPV:              npv,
					NPVCurrency:      outputs.NPVCurrency,
					Notional:         notional,
					NotionalCurrency: outputs.NotionalCurrency,
					Maturity:         outputs.Maturity,
					PricedAt:         time.Now().UTC(),
				}
				if err := app.Store.SaveResult(context.Background(), record); err != nil {
					logger.Warn().Err(err).Msg("Failed to persist pricing result")
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&tradePath, "trade", "t", "", "path to the trade JSON file")
	_ = cmd.MarkFlagRequired("trade")
	return cmd
}

// buildRegistry wires analytic pricers for the trade's pair from the market
// snapshot: Garman-Kohlhagen for vanilla and digital legs, flat discounting
// for cash legs in either currency.
func buildRegistry(snapshot *marketdata.Snapshot, pair models.CurrencyPair) (*pricing.Registry, error) {
	data, err := snapshot.Pair(pair)
	if err != nil {
		return nil, err
	}
	vol, err := data.VolSurface()
	if err != nil {
		return nil, err
	}

	pricer, err := analytics.NewPricer(pair, analytics.MarketInputs{
		Spot:          data.Spot,
		DomesticRate:  data.DomesticRate,
		ForeignRate:   data.ForeignRate,
		Vol:           vol,
		ValuationDate: snapshot.AsOf,
	})
	if err != nil {
		return nil, err
	}

	registry := pricing.NewRegistry()
	registry.RegisterVanilla(pair, pricer)
	registry.RegisterDigital(pair, pricer)
	registry.RegisterCash(pair.Sold, analytics.NewDiscountingCashPricer(pair.Sold, data.DomesticRate, snapshot.AsOf))
	registry.RegisterCash(pair.Bought, analytics.NewDiscountingCashPricer(pair.Bought, data.ForeignRate, snapshot.AsOf))
	return registry, nil
}
