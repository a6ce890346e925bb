package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"fxbarrier-pricer/internal/store"
)

// newResultsCmd creates the results command.
func newResultsCmd(app *App) *cobra.Command {
	var (
		tradeID string
		pair    string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "results",
		Short: "List persisted pricing results",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Store == nil {
				return fmt.Errorf("result store unavailable")
			}
			records, err := app.Store.GetResults(context.Background(), store.ResultFilter{
				TradeID: tradeID,
				Pair:    pair,
				Limit:   limit,
			})
			if err != nil {
				return err
			}
			printRecords(cmd.OutOrStdout(), records)
			return nil
		},
	}

	cmd.Flags().StringVar(&tradeID, "trade-id", "", "filter by trade ID")
	cmd.Flags().StringVar(&pair, "pair", "", "filter by currency pair")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of results")
	return cmd
}
