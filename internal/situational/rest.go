package situational

import "github.com/jnew00/pool-manager-sub000/internal/models"

const (
	pointsPerRestDay     = 0.5
	shortRestMismatchPts = 1.0
	shortWeekPts         = 0.8
	miniByePts           = 0.3

	shortRestDays    = 3
	longRestDays     = 6
	shortWeekDays    = 4
	miniByeDays      = 8
)

// RestAdvantage returns the home team's rest edge in points. Nil rest data
// means both sides are on a normal week and the factor is 0.
func RestAdvantage(rest *models.RestData) float64 {
	if rest == nil {
		return 0
	}
	home, away := rest.HomeDaysRest, rest.AwayDaysRest
	points := float64(home-away) * pointsPerRestDay

	// A side on a short week facing a well-rested opponent takes an extra hit.
	if home <= shortRestDays && away > longRestDays {
		points -= shortRestMismatchPts
	} else if away <= shortRestDays && home > longRestDays {
		points += shortRestMismatchPts
	}

	moreRested := sign(home - away)

	// Short-week fatigue, credited to whichever side has more rest.
	if home <= shortWeekDays || away <= shortWeekDays {
		points += shortWeekPts * moreRested
	}

	// Mini-bye bonus after a Thursday game the prior week.
	if home >= miniByeDays || away >= miniByeDays {
		points += miniByePts * moreRested
	}

	return points
}

func sign(n int) float64 {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
