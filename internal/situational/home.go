// Package situational computes point-valued adjustments for home field,
// rest, weather, injuries, and divisional matchups. Outputs are on the NFL
// scoring-point scale; the engine converts them to probability space.
package situational

// BaseHomeAdvantage is the canonical league-wide home edge in points.
const BaseHomeAdvantage = 2.8

// playoffDamping reflects the reduced home edge in postseason games.
const playoffDamping = 0.9

// venueAdjustments are additive bonuses or penalties for specific stadiums:
// loud or cold venues add to the base edge, domes and shared or new stadiums
// subtract from it.
var venueAdjustments = map[string]float64{
	"Arrowhead Stadium":            1.5,
	"Lumen Field":                  1.2,
	"Lambeau Field":                1.0,
	"Empower Field at Mile High":   0.9,
	"Highmark Stadium":             0.8,
	"Soldier Field":                0.6,
	"Mercedes-Benz Stadium":        -0.2,
	"Ford Field":                   -0.2,
	"U.S. Bank Stadium":            -0.2,
	"Lucas Oil Stadium":            -0.2,
	"NRG Stadium":                  -0.3,
	"Allegiant Stadium":            -0.3,
	"MetLife Stadium":              -0.5,
	"SoFi Stadium":                 -0.6,
}

// HomeAdvantage returns the home team's edge in points for a venue. Unknown
// venues get the bare base edge.
func HomeAdvantage(venue string, isPlayoff bool) float64 {
	points := BaseHomeAdvantage + venueAdjustments[venue]
	if isPlayoff {
		points *= playoffDamping
	}
	return points
}

// VenueAdjustment exposes the raw venue bonus for inspection tooling
func VenueAdjustment(venue string) float64 {
	return venueAdjustments[venue]
}
