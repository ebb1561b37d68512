// Package cli provides the command-line interface for the wheel journal.
package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"wheel-journal/internal/engine"
	"wheel-journal/internal/errors"
	"wheel-journal/internal/logging"
	"wheel-journal/internal/models"
	"wheel-journal/internal/store"
)

// addTradeCommands adds the trade command group.
func addTradeCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "trade",
		Short: "Trade log management",
		Long:  "Add, list, edit, close and delete trades in the journal.",
	}

	cmd.AddCommand(newTradeAddCmd(app))
	cmd.AddCommand(newTradeListCmd(app))
	cmd.AddCommand(newTradeEditCmd(app))
	cmd.AddCommand(newTradeCloseCmd(app))
	cmd.AddCommand(newTradeDeleteCmd(app))

	rootCmd.AddCommand(cmd)
}

// addTradeFieldFlags registers the shared trade field flags.
func addTradeFieldFlags(cmd *cobra.Command) {
	cmd.Flags().String("stock", "", "stock symbol (e.g. RELIANCE)")
	cmd.Flags().String("strategy", "", "strategy: cash-secured-put, covered-call, stock-buy")
	cmd.Flags().String("strike", "", "strike price")
	cmd.Flags().String("premium", "", "premium per share")
	cmd.Flags().Int("qty", 0, "quantity (shares)")
	cmd.Flags().String("expiry", "", "expiry date YYYY-MM-DD")
	cmd.Flags().String("date", "", "trade date YYYY-MM-DD (default: today)")
	cmd.Flags().String("status", "", "status: open, closed, exercised")
	cmd.Flags().String("entry", "", "entry price")
	cmd.Flags().String("exit", "", "exit price")
	cmd.Flags().String("notes", "", "free-text notes")
}

// optionalPrice reads a numeric flag as an optional value. An empty flag is
// absent; a malformed number is treated as absent too, with a warning, so it
// can never poison downstream sums as NaN.
func optionalPrice(cmd *cobra.Command, output *Output, name string) *float64 {
	raw, _ := cmd.Flags().GetString(name)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		output.Warning("Ignoring %s %q: not a number", name, raw)
		return nil
	}
	return &v
}

// optionalDate reads a date flag as an optional value, same policy as
// optionalPrice: malformed means absent.
func optionalDate(cmd *cobra.Command, output *Output, name string) *time.Time {
	raw, _ := cmd.Flags().GetString(name)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	d, err := ParseDate(raw)
	if err != nil {
		output.Warning("Ignoring %s %q: want YYYY-MM-DD", name, raw)
		return nil
	}
	return &d
}

func newTradeAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new trade",
		Long: `Record a new trade in the journal.

Required fields depend on the strategy: option strategies need strike,
premium and expiry; covered calls and stock buys need an entry price.`,
		Example: `  journal trade add --stock RELIANCE --strategy cash-secured-put \
      --strike 2500 --premium 50 --qty 10 --expiry 2026-09-25
  journal trade add --stock TCS --strategy stock-buy --entry 3200 --qty 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			stock, _ := cmd.Flags().GetString("stock")
			strategy, _ := cmd.Flags().GetString("strategy")
			qty, _ := cmd.Flags().GetInt("qty")
			status, _ := cmd.Flags().GetString("status")
			notes, _ := cmd.Flags().GetString("notes")
			if status == "" {
				status = string(models.StatusOpen)
			}

			trade := models.Trade{
				Stock:       models.NormalizeSymbol(stock),
				Strategy:    models.Strategy(strategy),
				StrikePrice: optionalPrice(cmd, output, "strike"),
				Premium:     optionalPrice(cmd, output, "premium"),
				Quantity:    qty,
				Expiry:      optionalDate(cmd, output, "expiry"),
				TradeDate:   optionalDate(cmd, output, "date"),
				Status:      models.Status(status),
				EntryPrice:  optionalPrice(cmd, output, "entry"),
				ExitPrice:   optionalPrice(cmd, output, "exit"),
				Notes:       notes,
			}
			if trade.TradeDate == nil {
				now := time.Now()
				today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
				trade.TradeDate = &today
			}

			if !trade.Strategy.Valid() {
				return errors.NewValidationError("strategy", strategy,
					"must be one of cash-secured-put, covered-call, stock-buy")
			}
			if missing := trade.MissingFields(); len(missing) > 0 {
				return fmt.Errorf("missing fields: %s", strings.Join(missing, ", "))
			}

			stored, err := app.Store.InsertTrade(ctx, &trade)
			if err != nil {
				return err
			}
			logging.LogTradeEvent(app.Logger, "added", stored.ID, stored.Stock, string(stored.Strategy))

			enriched := engine.Enrich(*stored)
			if output.IsJSON() {
				return output.JSON(enriched)
			}
			output.Success("✓ Trade #%d recorded", enriched.ID)
			printTradeDetail(output, &enriched)
			return nil
		},
	}

	addTradeFieldFlags(cmd)
	return cmd
}

func newTradeListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List trades",
		Long:  "List trades with derived earnings, premium and phase per row.",
		Example: `  journal trade list
  journal trade list --month 2026-08
  journal trade list --from 2026-07-01 --to 2026-08-15 --stock RELIANCE`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			stock, _ := cmd.Flags().GetString("stock")
			status, _ := cmd.Flags().GetString("status")

			trades, err := app.Store.ListTrades(ctx, store.TradeFilter{
				Stock:  stock,
				Status: models.Status(status),
			})
			if err != nil {
				return err
			}

			enriched := engine.EnrichAll(trades)
			windowed, err := applyWindow(cmd, enriched)
			if err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(windowed)
			}

			if len(windowed) == 0 {
				output.Info("No trades found.")
				return nil
			}

			table := NewTable(output, "ID", "Date", "Stock", "Strategy", "Qty", "Strike", "Premium", "Status", "Phase", "Earnings")
			for i := range windowed {
				t := &windowed[i]
				table.AddRow(
					strconv.FormatInt(t.ID, 10),
					FormatOptionalDate(t.TradeDate),
					t.Stock,
					string(t.Strategy),
					strconv.Itoa(t.Quantity),
					FormatOptionalPrice(t.StrikePrice),
					FormatOptionalPrice(t.Premium),
					string(t.Status),
					string(t.Phase),
					output.FormatPnL(t.Earnings),
				)
			}
			table.Render()
			output.Println()
			output.Dim("%d trades", len(windowed))
			return nil
		},
	}

	cmd.Flags().String("stock", "", "filter by stock symbol")
	cmd.Flags().String("status", "", "filter by status")
	addWindowFlags(cmd)
	return cmd
}

func newTradeEditCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a trade",
		Long:  "Edit any field of an existing trade. Only the flags you pass change.",
		Example: `  journal trade edit 12 --status closed --exit 2450
  journal trade edit 12 --notes "rolled from last month"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.NewValidationError("id", args[0], "must be a numeric trade id")
			}

			trade, err := app.Store.GetTrade(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("stock") {
				stock, _ := cmd.Flags().GetString("stock")
				trade.Stock = models.NormalizeSymbol(stock)
			}
			if cmd.Flags().Changed("strategy") {
				strategy, _ := cmd.Flags().GetString("strategy")
				if !models.Strategy(strategy).Valid() {
					return errors.NewValidationError("strategy", strategy,
						"must be one of cash-secured-put, covered-call, stock-buy")
				}
				trade.Strategy = models.Strategy(strategy)
			}
			if cmd.Flags().Changed("strike") {
				trade.StrikePrice = optionalPrice(cmd, output, "strike")
			}
			if cmd.Flags().Changed("premium") {
				trade.Premium = optionalPrice(cmd, output, "premium")
			}
			if cmd.Flags().Changed("qty") {
				trade.Quantity, _ = cmd.Flags().GetInt("qty")
			}
			if cmd.Flags().Changed("expiry") {
				trade.Expiry = optionalDate(cmd, output, "expiry")
			}
			if cmd.Flags().Changed("date") {
				trade.TradeDate = optionalDate(cmd, output, "date")
			}
			if cmd.Flags().Changed("status") {
				status, _ := cmd.Flags().GetString("status")
				if !models.Status(status).Valid() {
					return errors.NewValidationError("status", status,
						"must be one of open, closed, exercised")
				}
				trade.Status = models.Status(status)
			}
			if cmd.Flags().Changed("entry") {
				trade.EntryPrice = optionalPrice(cmd, output, "entry")
			}
			if cmd.Flags().Changed("exit") {
				trade.ExitPrice = optionalPrice(cmd, output, "exit")
			}
			if cmd.Flags().Changed("notes") {
				trade.Notes, _ = cmd.Flags().GetString("notes")
			}

			if missing := trade.MissingFields(); len(missing) > 0 {
				return fmt.Errorf("missing fields: %s", strings.Join(missing, ", "))
			}

			if err := app.Store.UpdateTrade(ctx, trade); err != nil {
				return err
			}
			logging.LogTradeEvent(app.Logger, "edited", trade.ID, trade.Stock, string(trade.Strategy))

			enriched := engine.Enrich(*trade)
			if output.IsJSON() {
				return output.JSON(enriched)
			}
			output.Success("✓ Trade #%d updated", trade.ID)
			printTradeDetail(output, &enriched)
			return nil
		},
	}

	addTradeFieldFlags(cmd)
	return cmd
}

func newTradeCloseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "close <id>",
		Short: "Close a trade",
		Long: `Mark a trade closed at an exit price, or exercised.

An exercised covered call settles at its strike; the exit price flag is
not needed in that case.`,
		Example: `  journal trade close 12 --exit 2450
  journal trade close 12 --exercised`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.NewValidationError("id", args[0], "must be a numeric trade id")
			}
			exercised, _ := cmd.Flags().GetBool("exercised")

			trade, err := app.Store.GetTrade(ctx, id)
			if err != nil {
				return err
			}

			if exercised {
				trade.Status = models.StatusExercised
			} else {
				trade.Status = models.StatusClosed
			}
			if exit := optionalPrice(cmd, output, "exit"); exit != nil {
				trade.ExitPrice = exit
			}

			if err := app.Store.UpdateTrade(ctx, trade); err != nil {
				return err
			}
			logging.LogTradeEvent(app.Logger, "closed", trade.ID, trade.Stock, string(trade.Strategy))

			enriched := engine.Enrich(*trade)
			if output.IsJSON() {
				return output.JSON(enriched)
			}
			output.Success("✓ Trade #%d %s", trade.ID, trade.Status)
			output.Printf("  Earnings: %s\n", output.FormatPnL(enriched.Earnings))
			return nil
		},
	}

	cmd.Flags().String("exit", "", "exit price")
	cmd.Flags().Bool("exercised", false, "the option was exercised/assigned")
	return cmd
}

func newTradeDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a trade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.NewValidationError("id", args[0], "must be a numeric trade id")
			}

			if err := app.Store.DeleteTrade(ctx, id); err != nil {
				return err
			}
			logging.LogTradeEvent(app.Logger, "deleted", id, "", "")

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{"deleted": id})
			}
			output.Success("✓ Trade #%d deleted", id)
			return nil
		},
	}
}

func printTradeDetail(output *Output, t *models.Trade) {
	output.Printf("  Stock:         %s\n", t.Stock)
	output.Printf("  Strategy:      %s\n", t.Strategy)
	output.Printf("  Quantity:      %d\n", t.Quantity)
	if t.StrikePrice != nil {
		output.Printf("  Strike:        %s\n", FormatIndianCurrency(*t.StrikePrice))
	}
	if t.Premium != nil {
		output.Printf("  Premium:       %s (total %s)\n",
			FormatIndianCurrency(*t.Premium), FormatIndianCurrency(t.TotalPremium))
	}
	if t.EntryPrice != nil {
		output.Printf("  Entry:         %s\n", FormatIndianCurrency(*t.EntryPrice))
	}
	if t.ExitPrice != nil {
		output.Printf("  Exit:          %s\n", FormatIndianCurrency(*t.ExitPrice))
	}
	output.Printf("  Trade Date:    %s\n", FormatOptionalDate(t.TradeDate))
	if t.Expiry != nil {
		output.Printf("  Expiry:        %s\n", FormatDate(*t.Expiry))
	}
	output.Printf("  Status:        %s\n", t.Status)
	output.Printf("  Phase:         %s\n", t.Phase)
	output.Printf("  Earnings:      %s\n", output.FormatPnL(t.Earnings))
	if t.Notes != "" {
		output.Printf("  Notes:         %s\n", t.Notes)
	}
}
