package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"wheel-journal/internal/engine"
	"wheel-journal/internal/models"
	"wheel-journal/internal/store"
)

// newStatsCmd creates the stats command.
func newStatsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Portfolio statistics",
		Long: `Show portfolio statistics: premium collected, win rate, largest
win/loss, open risk and wheel phase composition.`,
		Example: `  journal stats
  journal stats --month 2026-08
  journal stats --from 2026-01-01 --to 2026-06-30`,
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

			stats := engine.Aggregate(windowed)
			if output.IsJSON() {
				return output.JSON(stats)
			}

			output.Bold("═══ Portfolio Statistics ═══")
			output.Println()
			output.Printf("  Total Trades:   %d\n", stats.TotalTrades)
			output.Printf("  Total Premium:  %s\n", FormatIndianCurrency(stats.TotalPremium))
			output.Printf("  Win Rate:       %d%% (%d wins / %d losses)\n",
				stats.WinRate, stats.Wins, stats.Losses)
			output.Printf("  Largest Win:    %s\n", output.FormatPnL(stats.LargestWin))
			output.Printf("  Largest Loss:   %s\n", output.FormatPnL(stats.LargestLoss))
			output.Printf("  Open Risk:      %s\n", FormatIndianCurrency(stats.OpenRisk))
			output.Println()

			output.Bold("═══ Wheel Phases ═══")
			output.Println()
			for _, phase := range []models.Phase{models.PhasePut, models.PhaseAssigned, models.PhaseCall, models.PhaseOther} {
				count := stats.PhaseCounts[phase]
				if count == 0 {
					continue
				}
				output.Printf("  %-10s %s\n", phase, phaseBar(count, stats.TotalTrades))
			}
			return nil
		},
	}

	cmd.Flags().String("stock", "", "restrict to a stock symbol")
	addWindowFlags(cmd)
	return cmd
}

// phaseBar renders a count as a proportional bar with the raw number.
func phaseBar(count, total int) string {
	const width = 20
	filled := 0
	if total > 0 {
		filled = count * width / total
	}
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return fmt.Sprintf("%s %d", bar, count)
}
