package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"fxbarrier-pricer/internal/calendar"
	"fxbarrier-pricer/internal/models"
)

const dateLayout = "2006-01-02"

// tradeFile is the JSON representation of a barrier trade.
type tradeFile struct {
	ID     string `json:"id"`
	Option struct {
		Type          string        `json:"type"`
		Style         string        `json:"style"`
		ExerciseDates []string      `json:"exerciseDates"`
		LongShort     string        `json:"longShort"`
		Premiums      []premiumFile `json:"premiums"`
	} `json:"option"`
	Barrier struct {
		Type   string    `json:"type"`
		Levels []float64 `json:"levels"`
		Style  string    `json:"style"`
		Rebate float64   `json:"rebate"`
	} `json:"barrier"`
	Amounts struct {
		BoughtCurrency string  `json:"boughtCurrency"`
		SoldCurrency   string  `json:"soldCurrency"`
		BoughtAmount   float64 `json:"boughtAmount"`
		SoldAmount     float64 `json:"soldAmount"`
	} `json:"amounts"`
	Actions []string `json:"actions"`
}

type premiumFile struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	PayDate  string  `json:"payDate"`
}

// loadTrade reads a trade JSON file and converts it to the domain model.
// Premium payment dates are rolled to business days on the paying
// currency's calendar.
func loadTrade(path string, adj *calendar.AdjustmentConfig) (models.BarrierTrade, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.BarrierTrade{}, fmt.Errorf("failed to read trade file %s: %w", path, err)
	}

	var tf tradeFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return models.BarrierTrade{}, fmt.Errorf("failed to parse trade file %s: %w", path, err)
	}

	trade := models.BarrierTrade{
		ID:      tf.ID,
		Actions: tf.Actions,
		Option: models.OptionSpec{
			Type:      models.OptionType(tf.Option.Type),
			Style:     models.ExerciseStyle(tf.Option.Style),
			LongShort: models.PositionType(tf.Option.LongShort),
		},
		Barrier: models.BarrierSpec{
			Type:   models.BarrierType(tf.Barrier.Type),
			Levels: tf.Barrier.Levels,
			Style:  models.ExerciseStyle(tf.Barrier.Style),
			Rebate: tf.Barrier.Rebate,
		},
		Amounts: models.FxLegAmounts{
			BoughtCurrency: tf.Amounts.BoughtCurrency,
			SoldCurrency:   tf.Amounts.SoldCurrency,
			BoughtAmount:   tf.Amounts.BoughtAmount,
			SoldAmount:     tf.Amounts.SoldAmount,
		},
	}

	for _, s := range tf.Option.ExerciseDates {
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return models.BarrierTrade{}, fmt.Errorf("invalid exercise date %q: %w", s, err)
		}
		trade.Option.ExerciseDates = append(trade.Option.ExerciseDates, d)
	}

	for _, p := range tf.Option.Premiums {
		d, err := time.Parse(dateLayout, p.PayDate)
		if err != nil {
			return models.BarrierTrade{}, fmt.Errorf("invalid premium date %q: %w", p.PayDate, err)
		}
		if adj != nil {
			d = adj.AdjustFollowing(p.Currency, d)
		}
		trade.Option.Premiums = append(trade.Option.Premiums, models.PremiumPayment{
			Amount:   p.Amount,
			Currency: p.Currency,
			PayDate:  d,
		})
	}

	return trade, nil
}
