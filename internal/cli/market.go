package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newMarketCmd creates the market command.
func newMarketCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "market",
		Short: "Show the loaded market snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := app.loadSnapshot()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			headerColor.Fprintf(w, "Market snapshot as of %s\n", FormatDate(snapshot.AsOf))
			headerColor.Fprintf(w, "%-10s %10s %10s %10s %8s\n", "PAIR", "SPOT", "DOM RATE", "FOR RATE", "ATM VOL")
			for _, pair := range snapshot.Pairs() {
				data, err := snapshot.Pair(pair)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%-10s %10.4f %9.2f%% %9.2f%% %7.2f%%\n",
					pair, data.Spot, data.DomesticRate*100, data.ForeignRate*100, data.AtmVol*100)
			}
			return nil
		},
	}
	return cmd
}
