package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"wheel-journal/internal/engine"
	"wheel-journal/internal/store"
)

// newChartCmd creates the chart command: cumulative P&L over closed trades.
func newChartCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Cumulative P&L series",
		Long: `Print the cumulative profit-and-loss series over closed trades,
ordered by expiry. Each row shows the trade's gross cash contribution
and the running total.`,
		Example: `  journal chart
  journal chart --month 2026-08`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			stock, _ := cmd.Flags().GetString("stock")

			trades, err := app.Store.ListTrades(ctx, store.TradeFilter{Stock: stock})
			if err != nil {
				return err
			}

			windowed, err := applyWindow(cmd, engine.EnrichAll(trades))
			if err != nil {
				return err
			}

			points := engine.PnLSeries(windowed)
			if output.IsJSON() {
				return output.JSON(points)
			}

			if len(points) == 0 {
				output.Info("No closed trades to chart.")
				return nil
			}

			table := NewTable(output, "Date", "Stock", "P&L", "Cumulative")
			for _, p := range points {
				table.AddRow(
					FormatDate(p.Date),
					p.Stock,
					output.FormatPnL(p.Value),
					output.FormatPnL(p.Cumulative),
				)
			}
			table.Render()
			output.Println()
			final := points[len(points)-1].Cumulative
			output.Printf("Net: %s over %d closed trades\n", output.FormatPnL(final), len(points))
			return nil
		},
	}

	cmd.Flags().String("stock", "", "restrict to a stock symbol")
	addWindowFlags(cmd)
	return cmd
}
