package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"wheel-journal/internal/errors"
	"wheel-journal/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestInsertAndGetTrade(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	tradeDate := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.Local)
	expiry := time.Date(2026, time.July, 31, 0, 0, 0, 0, time.Local)
	in := &models.Trade{
		Stock:       "reliance",
		Strategy:    models.StrategyCashSecuredPut,
		StrikePrice: models.Float64Ptr(2500),
		Premium:     models.Float64Ptr(50),
		Quantity:    10,
		Expiry:      &expiry,
		TradeDate:   &tradeDate,
		Status:      models.StatusOpen,
		Notes:       "first wheel leg",
	}

	stored, err := s.InsertTrade(ctx, in)
	if err != nil {
		t.Fatalf("InsertTrade: %v", err)
	}
	if stored.ID == 0 {
		t.Fatal("InsertTrade did not assign an id")
	}
	if stored.Stock != "RELIANCE" {
		t.Errorf("symbol not normalized: %q", stored.Stock)
	}
	if stored.StrikePrice == nil || *stored.StrikePrice != 2500 {
		t.Errorf("strike round-trip failed: %v", stored.StrikePrice)
	}
	if stored.EntryPrice != nil {
		t.Errorf("absent entry price came back as %v, want nil", *stored.EntryPrice)
	}
	if stored.TradeDate == nil || !stored.TradeDate.Equal(tradeDate) {
		t.Errorf("trade date round-trip failed: %v", stored.TradeDate)
	}
}

func TestZeroPremiumSurvivesRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	tradeDate := time.Now()
	in := &models.Trade{
		Stock:     "TCS",
		Strategy:  models.StrategyStockBuy,
		Quantity:  5,
		TradeDate: &tradeDate,
		Status:    models.StatusOpen,
		// 0 is a present value; it must not collapse to NULL.
		EntryPrice: models.Float64Ptr(0),
	}

	stored, err := s.InsertTrade(ctx, in)
	if err != nil {
		t.Fatalf("InsertTrade: %v", err)
	}
	if stored.EntryPrice == nil || *stored.EntryPrice != 0 {
		t.Errorf("zero entry price round-trip = %v, want 0", stored.EntryPrice)
	}
}

func TestUpdateTrade(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	tradeDate := time.Now()
	stored, err := s.InsertTrade(ctx, &models.Trade{
		Stock: "INFY", Strategy: models.StrategyStockBuy, Quantity: 10,
		TradeDate: &tradeDate, Status: models.StatusOpen,
		EntryPrice: models.Float64Ptr(1500),
	})
	if err != nil {
		t.Fatalf("InsertTrade: %v", err)
	}

	stored.Status = models.StatusClosed
	stored.ExitPrice = models.Float64Ptr(1600)
	if err := s.UpdateTrade(ctx, stored); err != nil {
		t.Fatalf("UpdateTrade: %v", err)
	}

	got, err := s.GetTrade(ctx, stored.ID)
	if err != nil {
		t.Fatalf("GetTrade: %v", err)
	}
	if got.Status != models.StatusClosed || got.ExitPrice == nil || *got.ExitPrice != 1600 {
		t.Errorf("update not persisted: %+v", got)
	}
}

func TestDeleteTrade(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	tradeDate := time.Now()
	stored, err := s.InsertTrade(ctx, &models.Trade{
		Stock: "SBIN", Strategy: models.StrategyStockBuy, Quantity: 1,
		TradeDate: &tradeDate, Status: models.StatusOpen,
		EntryPrice: models.Float64Ptr(600),
	})
	if err != nil {
		t.Fatalf("InsertTrade: %v", err)
	}

	if err := s.DeleteTrade(ctx, stored.ID); err != nil {
		t.Fatalf("DeleteTrade: %v", err)
	}
	if _, err := s.GetTrade(ctx, stored.ID); err != errors.ErrTradeNotFound {
		t.Errorf("GetTrade after delete = %v, want ErrTradeNotFound", err)
	}
	if err := s.DeleteTrade(ctx, stored.ID); err != errors.ErrTradeNotFound {
		t.Errorf("second delete = %v, want ErrTradeNotFound", err)
	}
}

func TestListTradesFilter(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	days := []int{1, 10, 20}
	for i, d := range days {
		tradeDate := time.Date(2026, time.July, d, 0, 0, 0, 0, time.Local)
		status := models.StatusOpen
		if i == 0 {
			status = models.StatusClosed
		}
		_, err := s.InsertTrade(ctx, &models.Trade{
			Stock: "HDFC", Strategy: models.StrategyCashSecuredPut,
			StrikePrice: models.Float64Ptr(1600), Premium: models.Float64Ptr(20),
			Quantity: 10, TradeDate: &tradeDate, Status: status,
		})
		if err != nil {
			t.Fatalf("InsertTrade: %v", err)
		}
	}

	all, err := s.ListTrades(ctx, TradeFilter{})
	if err != nil {
		t.Fatalf("ListTrades: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("ListTrades returned %d trades, want 3", len(all))
	}
	// Newest first.
	if all[0].TradeDate.Day() != 20 {
		t.Errorf("expected newest trade first, got day %d", all[0].TradeDate.Day())
	}

	open, err := s.ListTrades(ctx, TradeFilter{Status: models.StatusOpen})
	if err != nil {
		t.Fatalf("ListTrades: %v", err)
	}
	if len(open) != 2 {
		t.Errorf("status filter returned %d trades, want 2", len(open))
	}

	ranged, err := s.ListTrades(ctx, TradeFilter{
		StartDate: time.Date(2026, time.July, 5, 0, 0, 0, 0, time.Local),
		EndDate:   time.Date(2026, time.July, 15, 0, 0, 0, 0, time.Local),
	})
	if err != nil {
		t.Fatalf("ListTrades: %v", err)
	}
	if len(ranged) != 1 || ranged[0].TradeDate.Day() != 10 {
		t.Errorf("date filter returned %d trades", len(ranged))
	}
}
