// Package engine implements the trade economics and aggregation engine: pure,
// stateless functions that turn a collection of trades into per-trade
// earnings, portfolio statistics, windowed views and a cumulative P&L series.
//
// The engine never performs I/O and never retains state between calls. Callers
// pass a snapshot of trades in and get a derived result out; the store owns
// the canonical trade set.
package engine

import "wheel-journal/internal/models"

// Enrich returns a copy of the trade with its derived fields populated:
// TotalPremium, Earnings and Phase. Enriching an already-enriched trade
// yields the same result.
func Enrich(t models.Trade) models.Trade {
	t.TotalPremium = TotalPremium(&t)
	t.Earnings = Earnings(&t)
	t.Phase = PhaseOf(&t)
	return t
}

// EnrichAll enriches every trade in the slice, returning a new slice.
func EnrichAll(trades []models.Trade) []models.Trade {
	out := make([]models.Trade, len(trades))
	for i := range trades {
		out[i] = Enrich(trades[i])
	}
	return out
}

// TotalPremium returns premium x quantity, the total premium collected for
// the position. A trade without a premium contributes 0.
func TotalPremium(t *models.Trade) float64 {
	if t.Premium == nil {
		return 0
	}
	return *t.Premium * float64(t.Quantity)
}
