package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"wheel-journal/internal/engine"
	"wheel-journal/internal/errors"
	"wheel-journal/internal/models"
	"wheel-journal/internal/store"
)

// tradeRecord is the flat CSV row shape. Optional fields are strings so an
// absent value round-trips as an empty cell instead of a zero.
type tradeRecord struct {
	ID        int64  `csv:"id"`
	Stock     string `csv:"stock"`
	Strategy  string `csv:"strategy"`
	Strike    string `csv:"strike_price"`
	Premium   string `csv:"premium"`
	Quantity  int    `csv:"quantity"`
	Expiry    string `csv:"expiry"`
	TradeDate string `csv:"trade_date"`
	Status    string `csv:"status"`
	Entry     string `csv:"entry_price"`
	Exit      string `csv:"exit_price"`
	Notes     string `csv:"notes"`
}

func toRecord(t *models.Trade) tradeRecord {
	return tradeRecord{
		ID:        t.ID,
		Stock:     t.Stock,
		Strategy:  string(t.Strategy),
		Strike:    priceCell(t.StrikePrice),
		Premium:   priceCell(t.Premium),
		Quantity:  t.Quantity,
		Expiry:    FormatOptionalDate(t.Expiry),
		TradeDate: FormatOptionalDate(t.TradeDate),
		Status:    string(t.Status),
		Entry:     priceCell(t.EntryPrice),
		Exit:      priceCell(t.ExitPrice),
		Notes:     t.Notes,
	}
}

func (r *tradeRecord) toTrade() models.Trade {
	return models.Trade{
		Stock:       models.NormalizeSymbol(r.Stock),
		Strategy:    models.Strategy(r.Strategy),
		StrikePrice: parseCell(r.Strike),
		Premium:     parseCell(r.Premium),
		Quantity:    r.Quantity,
		Expiry:      parseDateCell(r.Expiry),
		TradeDate:   parseDateCell(r.TradeDate),
		Status:      models.Status(r.Status),
		EntryPrice:  parseCell(r.Entry),
		ExitPrice:   parseCell(r.Exit),
		Notes:       r.Notes,
	}
}

func priceCell(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

// parseCell reads an optional numeric cell: empty or malformed means absent.
func parseCell(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseDateCell(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := ParseDate(s)
	if err != nil {
		return nil
	}
	return &d
}

// transferFormat resolves the format flag, falling back to the file extension.
func transferFormat(cmd *cobra.Command, path string) (string, error) {
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			format = "json"
		case ".csv":
			format = "csv"
		}
	}
	switch format {
	case "json", "csv":
		return format, nil
	}
	return "", errors.NewValidationError("format", format, "must be json or csv")
}

// newExportCmd creates the export command.
func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export trades to a file",
		Long:  "Export the full trade log to JSON or CSV. The format is taken from the flag or the file extension.",
		Example: `  journal export trades.json
  journal export trades.csv
  journal export backup --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			path := args[0]
			format, err := transferFormat(cmd, path)
			if err != nil {
				return err
			}

			trades, err := app.Store.ListTrades(ctx, store.TradeFilter{})
			if err != nil {
				return err
			}
			enriched := engine.EnrichAll(trades)

			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating %s: %w", path, err)
			}
			defer f.Close()

			switch format {
			case "json":
				enc := json.NewEncoder(f)
				enc.SetIndent("", "  ")
				if err := enc.Encode(enriched); err != nil {
					return fmt.Errorf("writing %s: %w", path, err)
				}
			case "csv":
				records := make([]tradeRecord, 0, len(enriched))
				for i := range enriched {
					records = append(records, toRecord(&enriched[i]))
				}
				if err := gocsv.MarshalFile(&records, f); err != nil {
					return fmt.Errorf("writing %s: %w", path, err)
				}
			}

			output.Success("✓ Exported %d trades to %s", len(enriched), path)
			return nil
		},
	}

	cmd.Flags().String("format", "", "output format: json or csv (default: by extension)")
	return cmd
}

// newImportCmd creates the import command.
func newImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import trades from a file",
		Long: `Import trades from a JSON or CSV file previously produced by export.

Imported trades always get fresh ids; importing the same file twice
duplicates its trades rather than overwriting.`,
		Example: `  journal import trades.json
  journal import trades.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			path := args[0]
			format, err := transferFormat(cmd, path)
			if err != nil {
				return err
			}

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("opening %s: %w", path, err)
			}
			defer f.Close()

			var incoming []models.Trade
			switch format {
			case "json":
				if err := json.NewDecoder(f).Decode(&incoming); err != nil {
					return errors.Wrapf(errors.ErrImportMalformed, "parsing %s", path)
				}
			case "csv":
				var records []tradeRecord
				if err := gocsv.UnmarshalFile(f, &records); err != nil {
					return errors.Wrapf(errors.ErrImportMalformed, "parsing %s", path)
				}
				incoming = make([]models.Trade, 0, len(records))
				for i := range records {
					incoming = append(incoming, records[i].toTrade())
				}
			}

			imported := 0
			skipped := 0
			for i := range incoming {
				t := incoming[i]
				t.ID = 0
				if !t.Strategy.Valid() || len(t.MissingFields()) > 0 {
					skipped++
					continue
				}
				if _, err := app.Store.InsertTrade(ctx, &t); err != nil {
					return err
				}
				imported++
			}

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"imported": imported,
					"skipped":  skipped,
				})
			}
			output.Success("✓ Imported %d trades from %s", imported, path)
			if skipped > 0 {
				output.Warning("Skipped %d rows with missing required fields", skipped)
			}
			return nil
		},
	}

	cmd.Flags().String("format", "", "input format: json or csv (default: by extension)")
	return cmd
}
