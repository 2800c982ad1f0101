package market

import (
	"math"

	"github.com/jnew00/pool-manager-sub000/internal/models"
)

// MarketStrength buckets how decisively the market favors one side
type MarketStrength string

const (
	StrengthWeak     MarketStrength = "WEAK"
	StrengthModerate MarketStrength = "MODERATE"
	StrengthStrong   MarketStrength = "STRONG"
	StrengthExtreme  MarketStrength = "EXTREME"
)

// IsPickEm reports whether the market sees no meaningful favorite: a spread
// within half a point of zero, or both moneylines inside +-120.
func IsPickEm(m *models.MarketData) bool {
	if m == nil {
		return false
	}
	if m.HasSpread() && math.Abs(*m.Spread) <= 0.5 {
		return true
	}
	if m.HasMoneyline() {
		h, a := *m.MoneylineHome, *m.MoneylineAway
		if h >= -120 && h <= 120 && a >= -120 && a <= 120 {
			return true
		}
	}
	return false
}

// FavoredTeam returns the side the market favors, or "" for a pick'em or
// when no market data is present.
func FavoredTeam(m *models.MarketData) models.Pick {
	if m == nil || IsPickEm(m) {
		return ""
	}
	ip := CalculateImpliedProbability(m)
	switch {
	case ip.Source == SourceDefault:
		return ""
	case ip.HomeProb > 0.5:
		return models.PickHome
	case ip.HomeProb < 0.5:
		return models.PickAway
	}
	return ""
}

// GetMarketStrength buckets the market's conviction by distance from 50/50
func GetMarketStrength(m *models.MarketData) MarketStrength {
	ip := CalculateImpliedProbability(m)
	switch dist := math.Abs(ip.HomeProb - 0.5); {
	case dist < 0.05:
		return StrengthWeak
	case dist < 0.15:
		return StrengthModerate
	case dist < 0.25:
		return StrengthStrong
	default:
		return StrengthExtreme
	}
}

// SpreadToProbability converts a home spread to a home win probability
func SpreadToProbability(spread float64) float64 {
	return clamp(0.5-spread*PointsPerProbability, minSpreadProb, maxSpreadProb)
}

// ProbabilityToSpread inverts SpreadToProbability. Probabilities are clamped
// into the invertible range first.
func ProbabilityToSpread(prob float64) float64 {
	prob = clamp(prob, minSpreadProb, maxSpreadProb)
	return (0.5 - prob) / PointsPerProbability
}

// MoneylineToProbability converts one American price to its raw implied
// probability, vig included.
func MoneylineToProbability(odds int) float64 {
	return americanToRawProbability(odds)
}

// ProbabilityToMoneyline converts a fair probability to the American price
// that implies it. Exactly 0.5 maps to +100.
func ProbabilityToMoneyline(prob float64) int {
	prob = clamp(prob, 0.01, 0.99)
	if prob > 0.5 {
		return -int(math.Round(100.0 * prob / (1.0 - prob)))
	}
	return int(math.Round(100.0 * (1.0 - prob) / prob))
}
