package engine

import (
	"fmt"

	"github.com/jnew00/pool-manager-sub000/internal/models"
)

// pointsPerFullSwing maps scoring points to probability: six points moves a
// factor from even odds to certainty.
const pointsPerFullSwing = 6.0

// pointsToProbability converts a home-favoring point value to probability
// space. Penalties must be negated by the caller before conversion.
func pointsToProbability(points float64) float64 {
	p := 0.5 + points/pointsPerFullSwing
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// factor is one candidate input to the weighted combination. Unused factors
// (data absent) are excluded from both the sum and the normalization.
type factor struct {
	name        string
	probability float64
	weight      float64
	used        bool
	description string
}

// buildBreakdown converts used factors into the itemized contribution list.
// Weights are normalized by the total so they sum to 1 and contributions sum
// to the raw combined probability.
func buildBreakdown(factors []factor, totalWeight float64) []models.FactorContribution {
	var breakdown []models.FactorContribution
	for _, f := range factors {
		if !f.used || totalWeight <= 0 {
			continue
		}
		normalized := f.weight / totalWeight
		breakdown = append(breakdown, models.FactorContribution{
			Factor:       f.name,
			Value:        f.probability,
			Weight:       normalized,
			Contribution: normalized * f.probability,
			Description:  f.description,
		})
	}
	return breakdown
}

func describePoints(label string, points float64) string {
	return fmt.Sprintf("%s: %+.1f pts toward home", label, points)
}
