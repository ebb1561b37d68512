package engine

import (
	"math"

	"wheel-journal/internal/models"
)

// Stats holds portfolio-level statistics derived from a set of trades.
type Stats struct {
	TotalTrades  int                  `json:"total_trades"`
	TotalPremium float64              `json:"total_premium"`
	WinRate      int                  `json:"win_rate"` // integer percent, 0-100
	Wins         int                  `json:"wins"`
	Losses       int                  `json:"losses"`
	LargestWin   float64              `json:"largest_win"`
	LargestLoss  float64              `json:"largest_loss"`
	OpenRisk     float64              `json:"open_risk"`
	PhaseCounts  map[models.Phase]int `json:"phase_counts"`
}

// Aggregate reduces a trade collection into portfolio statistics.
//
// Total premium covers every input trade regardless of status: it is premium
// ever collected in the window, not risk-adjusted. Win/loss classification
// only looks at closed trades, and a closed trade with earnings of exactly 0
// counts as neither. Open risk sums strike x quantity over open trades, an
// approximation of the capital required if every open short were assigned; an
// open trade without a strike contributes 0.
//
// An empty input produces zero-valued stats, never an error.
func Aggregate(trades []models.Trade) Stats {
	stats := Stats{
		TotalTrades: len(trades),
		PhaseCounts: make(map[models.Phase]int),
	}

	for i := range trades {
		t := &trades[i]
		stats.TotalPremium += TotalPremium(t)
		stats.PhaseCounts[PhaseOf(t)]++

		switch t.Status {
		case models.StatusClosed:
			earnings := Earnings(t)
			if earnings > 0 {
				stats.Wins++
				if earnings > stats.LargestWin {
					stats.LargestWin = earnings
				}
			} else if earnings < 0 {
				stats.Losses++
				if earnings < stats.LargestLoss {
					stats.LargestLoss = earnings
				}
			}
		case models.StatusOpen:
			if t.StrikePrice != nil {
				stats.OpenRisk += *t.StrikePrice * float64(t.Quantity)
			}
		}
	}

	if decided := stats.Wins + stats.Losses; decided > 0 {
		stats.WinRate = int(math.Round(float64(stats.Wins) / float64(decided) * 100))
	}

	return stats
}
