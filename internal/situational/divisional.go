package situational

import "github.com/jnew00/pool-manager-sub000/internal/models"

// DivisionalUnderdogBonus is the edge divisional familiarity gives the
// underdog, in points, before any rivalry multiplier.
const DivisionalUnderdogBonus = 1.5

// DivisionalFactor returns the points the divisional matchup shifts toward
// the home side. Non-divisional games and games with no clear favorite are 0.
// The bonus leans toward the underdog, scaled by any named-rivalry intensity
// resolved at input construction.
func DivisionalFactor(div *models.DivisionContext, marketSpread *float64) float64 {
	if div == nil || !div.SameDivision {
		return 0
	}
	if marketSpread == nil {
		return 0
	}

	bonus := DivisionalUnderdogBonus
	if div.RivalryIntensity > 1.0 {
		bonus *= div.RivalryIntensity
	}

	switch {
	case *marketSpread > 0.5:
		// Home underdog keeps it closer than the line says.
		return bonus
	case *marketSpread < -0.5:
		return -bonus
	}
	return 0
}
