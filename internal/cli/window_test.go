package cli

import (
	"testing"
	"time"

	"github.com/spf13/cobra"

	"wheel-journal/internal/models"
)

func windowCmd(t *testing.T, flags map[string]string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addWindowFlags(cmd)
	for name, value := range flags {
		if err := cmd.Flags().Set(name, value); err != nil {
			t.Fatalf("setting --%s: %v", name, err)
		}
	}
	return cmd
}

func windowTrades() []models.Trade {
	return []models.Trade{
		{ID: 1, Stock: "RELIANCE", TradeDate: models.TimePtr(time.Date(2026, 7, 10, 0, 0, 0, 0, time.Local))},
		{ID: 2, Stock: "TCS", TradeDate: models.TimePtr(time.Date(2026, 8, 5, 0, 0, 0, 0, time.Local))},
		{ID: 3, Stock: "INFY", TradeDate: models.TimePtr(time.Date(2026, 8, 28, 0, 0, 0, 0, time.Local))},
	}
}

func TestApplyWindowMonth(t *testing.T) {
	cmd := windowCmd(t, map[string]string{"month": "2026-08"})
	got, err := applyWindow(cmd, windowTrades())
	if err != nil {
		t.Fatalf("applyWindow: %v", err)
	}
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 3 {
		t.Errorf("month window kept wrong trades: %+v", got)
	}
}

func TestApplyWindowRange(t *testing.T) {
	cmd := windowCmd(t, map[string]string{"from": "2026-07-01", "to": "2026-08-05"})
	got, err := applyWindow(cmd, windowTrades())
	if err != nil {
		t.Fatalf("applyWindow: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("range window kept wrong trades: %+v", got)
	}
}

func TestApplyWindowRangeBeatsMonth(t *testing.T) {
	cmd := windowCmd(t, map[string]string{"month": "2026-07", "from": "2026-08-01", "to": "2026-08-31"})
	got, err := applyWindow(cmd, windowTrades())
	if err != nil {
		t.Fatalf("applyWindow: %v", err)
	}
	// Explicit range wins over the month selector.
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 3 {
		t.Errorf("expected range to take precedence, got %+v", got)
	}
}

func TestApplyWindowNoFlags(t *testing.T) {
	cmd := windowCmd(t, nil)
	got, err := applyWindow(cmd, windowTrades())
	if err != nil {
		t.Fatalf("applyWindow: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("expected all trades back, got %d", len(got))
	}
}

func TestApplyWindowBadInput(t *testing.T) {
	for _, flags := range []map[string]string{
		{"month": "August"},
		{"from": "01/08/2026"},
		{"to": "soon"},
	} {
		cmd := windowCmd(t, flags)
		if _, err := applyWindow(cmd, windowTrades()); err == nil {
			t.Errorf("expected error for %v", flags)
		}
	}
}
