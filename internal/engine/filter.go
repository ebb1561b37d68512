package engine

import (
	"time"

	"wheel-journal/internal/models"
)

// relevantDate resolves the date a trade is windowed by: the trade date when
// present, otherwise the expiry. Returns false when the trade has neither and
// must be excluded from any time-filtered view.
func relevantDate(t *models.Trade) (time.Time, bool) {
	if t.TradeDate != nil {
		return *t.TradeDate, true
	}
	if t.Expiry != nil {
		return *t.Expiry, true
	}
	return time.Time{}, false
}

// startOfDay truncates a timestamp to midnight in its own location, so range
// comparisons work at day granularity.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FilterByMonth returns the trades whose relevant date falls inside the given
// calendar month, first day through last day inclusive, by local calendar.
// Trades without a usable date are excluded. Idempotent: re-applying the same
// month is a no-op.
func FilterByMonth(trades []models.Trade, year int, month time.Month) []models.Trade {
	out := make([]models.Trade, 0, len(trades))
	for i := range trades {
		d, ok := relevantDate(&trades[i])
		if !ok {
			continue
		}
		if d.Year() == year && d.Month() == month {
			out = append(out, trades[i])
		}
	}
	return out
}

// FilterByRange returns the trades whose relevant date falls between start
// and end, both inclusive at day granularity. Time-of-day components on the
// bounds and on trade dates are ignored.
//
// A nil bound makes the filter a no-op: the full input is returned. A range
// with start after end selects nothing.
func FilterByRange(trades []models.Trade, start, end *time.Time) []models.Trade {
	if start == nil || end == nil {
		out := make([]models.Trade, len(trades))
		copy(out, trades)
		return out
	}

	from := startOfDay(*start)
	to := startOfDay(*end)
	out := make([]models.Trade, 0, len(trades))
	if from.After(to) {
		return out
	}

	for i := range trades {
		d, ok := relevantDate(&trades[i])
		if !ok {
			continue
		}
		day := startOfDay(d)
		if day.Before(from) || day.After(to) {
			continue
		}
		out = append(out, trades[i])
	}
	return out
}
