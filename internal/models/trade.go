// Package models defines the core data types shared across the application.
package models

import (
	"strings"
	"time"
)

// Strategy identifies which leg of the wheel a trade belongs to.
type Strategy string

const (
	StrategyCashSecuredPut Strategy = "cash-secured-put"
	StrategyCoveredCall    Strategy = "covered-call"
	StrategyStockBuy       Strategy = "stock-buy"
)

// Strategies lists all known strategies in display order.
var Strategies = []Strategy{StrategyCashSecuredPut, StrategyCoveredCall, StrategyStockBuy}

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyCashSecuredPut, StrategyCoveredCall, StrategyStockBuy:
		return true
	}
	return false
}

// IsOption reports whether the strategy is an option position
// (and therefore requires strike, premium and expiry).
func (s Strategy) IsOption() bool {
	return s == StrategyCashSecuredPut || s == StrategyCoveredCall
}

// Status represents the lifecycle state of a trade.
// Transitions are always explicit user edits, never automatic.
type Status string

const (
	StatusOpen      Status = "open"
	StatusClosed    Status = "closed"
	StatusExercised Status = "exercised"
)

// Valid reports whether st is a known status.
func (st Status) Valid() bool {
	switch st {
	case StatusOpen, StatusClosed, StatusExercised:
		return true
	}
	return false
}

// Phase classifies where a trade sits in the wheel lifecycle.
// Used for portfolio composition reporting, not for earnings.
type Phase string

const (
	PhasePut      Phase = "put"
	PhaseAssigned Phase = "assigned"
	PhaseCall     Phase = "call"
	PhaseOther    Phase = "other"
)

// Trade is the sole persistent entity: one recorded position.
//
// Optional numeric and date fields are pointers; nil means absent. An absent
// value is never represented as 0 — a premium of exactly 0 is present and
// valid, which matters to the earnings rules.
type Trade struct {
	ID          int64      `json:"id"`
	Stock       string     `json:"stock"`
	Strategy    Strategy   `json:"strategy"`
	StrikePrice *float64   `json:"strike_price"`
	Premium     *float64   `json:"premium"`
	Quantity    int        `json:"quantity"`
	Expiry      *time.Time `json:"expiry"`
	TradeDate   *time.Time `json:"trade_date"`
	Status      Status     `json:"status"`
	EntryPrice  *float64   `json:"entry_price"`
	ExitPrice   *float64   `json:"exit_price"`
	Notes       string     `json:"notes,omitempty"`

	// Derived fields, recomputed by the engine on every read. Never stored.
	TotalPremium float64 `json:"totalPremium"`
	Earnings     float64 `json:"earnings"`
	Phase        Phase   `json:"phase,omitempty"`
}

// NormalizeSymbol upper-cases and trims a stock symbol.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// RequiredFields returns the names of the fields that must be present for the
// trade's strategy, beyond the always-required stock/quantity/tradeDate/status.
func (t *Trade) RequiredFields() []string {
	switch t.Strategy {
	case StrategyCashSecuredPut:
		return []string{"strike", "premium", "expiry"}
	case StrategyCoveredCall:
		return []string{"strike", "premium", "expiry", "entry"}
	case StrategyStockBuy:
		return []string{"entry"}
	}
	return nil
}

// MissingFields returns the required fields that are absent, in a stable order.
func (t *Trade) MissingFields() []string {
	var missing []string
	if t.Stock == "" {
		missing = append(missing, "stock")
	}
	if t.Quantity <= 0 {
		missing = append(missing, "quantity")
	}
	if t.TradeDate == nil {
		missing = append(missing, "date")
	}
	if !t.Status.Valid() {
		missing = append(missing, "status")
	}
	for _, f := range t.RequiredFields() {
		switch f {
		case "strike":
			if t.StrikePrice == nil {
				missing = append(missing, f)
			}
		case "premium":
			if t.Premium == nil {
				missing = append(missing, f)
			}
		case "expiry":
			if t.Expiry == nil {
				missing = append(missing, f)
			}
		case "entry":
			if t.EntryPrice == nil {
				missing = append(missing, f)
			}
		}
	}
	return missing
}

// Clone returns a deep copy of the trade.
func (t *Trade) Clone() Trade {
	c := *t
	c.StrikePrice = clonePtr(t.StrikePrice)
	c.Premium = clonePtr(t.Premium)
	c.EntryPrice = clonePtr(t.EntryPrice)
	c.ExitPrice = clonePtr(t.ExitPrice)
	c.Expiry = clonePtr(t.Expiry)
	c.TradeDate = clonePtr(t.TradeDate)
	return c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Float64Ptr returns a pointer to v. Convenience for building trades.
func Float64Ptr(v float64) *float64 { return &v }

// TimePtr returns a pointer to t. Convenience for building trades.
func TimePtr(t time.Time) *time.Time { return &t }
