// Package elo owns the per-team skill ratings: retrieval with defaults,
// post-game updates, historical seeding, seasonal regression, and the
// conversions between rating space and point-spread space.
package elo

import (
	"math"

	"github.com/jnew00/pool-manager-sub000/internal/models"
)

const (
	// HomeFieldRatingBonus is the rating-space home edge folded into the
	// expected-score calculation when grading games.
	HomeFieldRatingBonus = 65.0

	// ratingPointsPerSpreadPoint links the two scales: one point of spread
	// is worth 25 rating points.
	ratingPointsPerSpreadPoint = 25.0

	logisticScale = 400.0
)

// ExpectedScore returns the probability the first rating beats the second
// under the standard 400-scale logistic.
func ExpectedScore(rating, opponent float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (opponent-rating)/logisticScale))
}

// SpreadToRatingDiff converts a point spread to a rating difference on the
// spread's own sign convention (negative favors home).
func SpreadToRatingDiff(spread float64) float64 {
	return spread * ratingPointsPerSpreadPoint
}

// RatingDiffToSpread inverts SpreadToRatingDiff
func RatingDiffToSpread(diff float64) float64 {
	return diff / ratingPointsPerSpreadPoint
}

// RatingToWinPercentage converts a rating to a win probability against a
// league-average (1500) opponent.
func RatingToWinPercentage(rating float64) float64 {
	return ExpectedScore(rating, models.DefaultRating)
}

// WinPercentageToRating inverts RatingToWinPercentage. Probabilities are
// clamped away from 0 and 1 to keep the logarithm finite.
func WinPercentageToRating(winPct float64) float64 {
	const epsilon = 1e-6
	winPct = math.Max(epsilon, math.Min(1-epsilon, winPct))
	return models.DefaultRating - logisticScale*math.Log10(1.0/winPct-1.0)
}
