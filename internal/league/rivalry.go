package league

import "github.com/jnew00/pool-manager-sub000/internal/models"

// Named rivalries and their intensity multipliers. Intensity scales the
// divisional underdog bonus; pairings not listed here get the plain bonus.
var rivalryIntensity = map[[2]string]float64{
	pairKey("CHI", "GB"):   2.0,
	pairKey("BAL", "PIT"):  2.0,
	pairKey("DAL", "WAS"):  1.9,
	pairKey("DAL", "PHI"):  1.8,
	pairKey("SF", "SEA"):   1.8,
	pairKey("GB", "MIN"):   1.7,
	pairKey("ATL", "NO"):   1.7,
	pairKey("KC", "LV"):    1.7,
	pairKey("NE", "NYJ"):   1.6,
	pairKey("CIN", "CLE"):  1.6,
	pairKey("CIN", "PIT"):  1.6,
	pairKey("BUF", "MIA"):  1.5,
	pairKey("DEN", "LV"):   1.5,
	pairKey("NYG", "PHI"):  1.5,
}

func pairKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

// RivalryIntensity returns the intensity multiplier for a pairing, or 1.0
// when the pairing has no named rivalry.
func RivalryIntensity(a, b string) float64 {
	if v, ok := rivalryIntensity[pairKey(a, b)]; ok {
		return v
	}
	return 1.0
}

// ResolveDivisionContext builds the division context carried on a ModelInput.
// Teams outside the table resolve to a non-divisional matchup.
func ResolveDivisionContext(homeID, awayID string) models.DivisionContext {
	if !SameDivision(homeID, awayID) {
		return models.DivisionContext{SameDivision: false, RivalryIntensity: 1.0}
	}
	return models.DivisionContext{
		SameDivision:     true,
		RivalryIntensity: RivalryIntensity(homeID, awayID),
	}
}
