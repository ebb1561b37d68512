package engine

import "wheel-journal/internal/models"

// PhaseOf maps a trade to its wheel-lifecycle phase. Total: every input maps
// to exactly one phase, with no error cases.
//
// Option trades report as their own leg (put or call) while open or closed,
// and as assigned once exercised. Anything else, including plain stock
// purchases, is other.
func PhaseOf(t *models.Trade) models.Phase {
	switch t.Strategy {
	case models.StrategyCashSecuredPut:
		if t.Status == models.StatusExercised {
			return models.PhaseAssigned
		}
		return models.PhasePut
	case models.StrategyCoveredCall:
		if t.Status == models.StatusExercised {
			return models.PhaseAssigned
		}
		return models.PhaseCall
	}
	return models.PhaseOther
}
