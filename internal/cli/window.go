package cli

import (
	"time"

	"github.com/spf13/cobra"

	"wheel-journal/internal/engine"
	"wheel-journal/internal/errors"
	"wheel-journal/internal/models"
)

// addWindowFlags registers the time-window flags shared by list, stats
// and chart.
func addWindowFlags(cmd *cobra.Command) {
	cmd.Flags().String("month", "", "restrict to a calendar month (YYYY-MM)")
	cmd.Flags().String("from", "", "range start YYYY-MM-DD (inclusive)")
	cmd.Flags().String("to", "", "range end YYYY-MM-DD (inclusive)")
}

// applyWindow narrows trades to the window selected on the command line.
// An explicit --from/--to range takes precedence over --month when both
// are given. With no window flags the input is returned unchanged.
func applyWindow(cmd *cobra.Command, trades []models.Trade) ([]models.Trade, error) {
	monthRaw, _ := cmd.Flags().GetString("month")
	fromRaw, _ := cmd.Flags().GetString("from")
	toRaw, _ := cmd.Flags().GetString("to")

	if fromRaw != "" || toRaw != "" {
		var start, end *time.Time
		if fromRaw != "" {
			d, err := ParseDate(fromRaw)
			if err != nil {
				return nil, errors.NewValidationError("from", fromRaw, "want YYYY-MM-DD")
			}
			start = &d
		}
		if toRaw != "" {
			d, err := ParseDate(toRaw)
			if err != nil {
				return nil, errors.NewValidationError("to", toRaw, "want YYYY-MM-DD")
			}
			end = &d
		}
		return engine.FilterByRange(trades, start, end), nil
	}

	if monthRaw != "" {
		year, month, err := ParseMonth(monthRaw)
		if err != nil {
			return nil, errors.NewValidationError("month", monthRaw, "want YYYY-MM")
		}
		return engine.FilterByMonth(trades, year, month), nil
	}

	return trades, nil
}
