package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"fxbarrier-pricer/internal/models"
	"fxbarrier-pricer/internal/store"
)

var (
	headerColor   = color.New(color.FgCyan, color.Bold)
	positiveColor = color.New(color.FgGreen)
	negativeColor = color.New(color.FgRed)
)

// FormatMoney formats an amount with its currency.
func FormatMoney(amount float64, currency string) string {
	return fmt.Sprintf("%.2f %s", amount, currency)
}

// FormatSigned colors an amount green or red by sign.
func FormatSigned(amount float64, currency string) string {
	s := FormatMoney(amount, currency)
	if amount < 0 {
		return negativeColor.Sprint(s)
	}
	return positiveColor.Sprint(s)
}

// FormatDate formats a date in ISO layout.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// printOutputs prints the reporting fields of a priced trade.
func printOutputs(w io.Writer, trade models.BarrierTrade, outputs *models.TradeOutputs) {
	npv, _ := outputs.NPV.Float64()
	notional, _ := outputs.Notional.Float64()

	headerColor.Fprintf(w, "Trade %s (%s %s, barrier %s)\n",
		trade.ID, trade.Option.LongShort, trade.Option.Type, trade.Barrier.Type)
	fmt.Fprintf(w, "  NPV:      %s\n", FormatSigned(npv, outputs.NPVCurrency))
	fmt.Fprintf(w, "  Notional: %s\n", FormatMoney(notional, outputs.NotionalCurrency))
	fmt.Fprintf(w, "  Maturity: %s\n", FormatDate(outputs.Maturity))
	for key, value := range outputs.Annotations {
		fmt.Fprintf(w, "  %-14s %v\n", key+":", value)
	}
}

// printRecords prints persisted pricing results.
func printRecords(w io.Writer, records []store.PricingRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No pricing results found.")
		return
	}
	headerColor.Fprintf(w, "%-20s %-10s %-10s %18s %12s %12s\n",
		"TRADE", "PAIR", "BARRIER", "NPV", "MATURITY", "PRICED AT")
	for _, r := range records {
		fmt.Fprintf(w, "%-20s %-10s %-10s %18s %12s %12s\n",
			r.TradeID, r.Pair, r.BarrierType,
			FormatSigned(r.NPV, r.NPVCurrency),
			FormatDate(r.Maturity), FormatDate(r.PricedAt))
	}
}
