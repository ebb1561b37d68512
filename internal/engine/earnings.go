package engine

import "wheel-journal/internal/models"

// Earnings computes the realized profit or loss for a single trade.
//
// It returns 0 whenever a field the strategy requires is absent; it never
// panics and never produces NaN. Presence is decided by nil checks, not by
// comparing against zero: a premium or price of exactly 0 is a valid value.
//
// Per strategy:
//
//	stock-buy:        (exit - entry) x qty
//	cash-secured-put: (exit - entry) x qty + premium x qty
//	covered-call:     (effective exit - entry) x qty + premium x qty,
//	                  where effective exit is the strike when the call was
//	                  exercised and the exit price otherwise.
//
// The put's premium term applies as soon as entry, exit, quantity and premium
// are all present, regardless of status: premium is collected up front and is
// not refundable on assignment.
func Earnings(t *models.Trade) float64 {
	qty := float64(t.Quantity)

	switch t.Strategy {
	case models.StrategyStockBuy:
		if t.EntryPrice == nil || t.ExitPrice == nil || t.Quantity == 0 {
			return 0
		}
		return (*t.ExitPrice - *t.EntryPrice) * qty

	case models.StrategyCashSecuredPut:
		if t.EntryPrice == nil || t.ExitPrice == nil || t.Quantity == 0 || t.Premium == nil {
			return 0
		}
		return (*t.ExitPrice-*t.EntryPrice)*qty + *t.Premium*qty

	case models.StrategyCoveredCall:
		if t.EntryPrice == nil || t.Quantity == 0 || t.Premium == nil {
			return 0
		}
		effectiveExit := t.ExitPrice
		if t.Status == models.StatusExercised {
			// Assigned: shares were sold at the strike, whatever the
			// exit price field says.
			effectiveExit = t.StrikePrice
		}
		if effectiveExit == nil {
			return 0
		}
		return (*effectiveExit-*t.EntryPrice)*qty + *t.Premium*qty
	}

	return 0
}
