// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"
	"time"

	"wheel-journal/internal/models"
)

// DataStore defines the interface for trade persistence. The store owns the
// canonical trade set; computation over it lives in the engine package.
type DataStore interface {
	// InsertTrade stores a new trade and echoes it back with the assigned id.
	InsertTrade(ctx context.Context, trade *models.Trade) (*models.Trade, error)
	GetTrade(ctx context.Context, id int64) (*models.Trade, error)
	ListTrades(ctx context.Context, filter TradeFilter) ([]models.Trade, error)
	UpdateTrade(ctx context.Context, trade *models.Trade) error
	DeleteTrade(ctx context.Context, id int64) error

	Close() error
}

// TradeFilter represents filters for querying trades. Zero values mean
// "no constraint".
type TradeFilter struct {
	Stock     string
	Strategy  models.Strategy
	Status    models.Status
	StartDate time.Time
	EndDate   time.Time
	Limit     int
}
