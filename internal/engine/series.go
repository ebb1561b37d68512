package engine

import (
	"sort"
	"time"

	"wheel-journal/internal/models"
)

// Point is one entry in the cumulative P&L series.
type Point struct {
	Date       time.Time `json:"date"`
	Stock      string    `json:"stock"`
	Value      float64   `json:"value"`      // this trade's contribution
	Cumulative float64   `json:"cumulative"` // running total up to this trade
}

// PnLSeries builds the cumulative profit-and-loss series over closed trades,
// ordered ascending by expiry (trade date when a trade has no expiry), with
// ties kept in input order.
//
// Each point adds earnings plus total premium to the running sum. For option
// strategies the premium is already embedded in the earnings formula, so it is
// counted twice here: the chart deliberately shows gross cash flow (premium
// plus price movement) rather than risk-adjusted net. Callers wanting net P&L
// should sum Earnings directly.
//
// The series is recomputed fresh from the full input on every call; there is
// no incremental state.
func PnLSeries(trades []models.Trade) []Point {
	closed := make([]models.Trade, 0, len(trades))
	for i := range trades {
		if trades[i].Status == models.StatusClosed {
			closed = append(closed, trades[i])
		}
	}

	sort.SliceStable(closed, func(i, j int) bool {
		return seriesDate(&closed[i]).Before(seriesDate(&closed[j]))
	})

	points := make([]Point, 0, len(closed))
	var running float64
	for i := range closed {
		t := &closed[i]
		value := Earnings(t) + TotalPremium(t)
		running += value
		points = append(points, Point{
			Date:       seriesDate(t),
			Stock:      t.Stock,
			Value:      value,
			Cumulative: running,
		})
	}
	return points
}

// seriesDate orders the series: expiry first, trade date as fallback. A trade
// with neither sorts to the front with the zero time.
func seriesDate(t *models.Trade) time.Time {
	if t.Expiry != nil {
		return *t.Expiry
	}
	if t.TradeDate != nil {
		return *t.TradeDate
	}
	return time.Time{}
}
