// Package market converts raw betting-market prices into implied win
// probabilities and provides the sanity-check utilities shared with upload
// and pick validation.
package market

import (
	"math"

	"github.com/jnew00/pool-manager-sub000/internal/models"
)

// Probability sources, in priority order
const (
	SourceMoneyline = "moneyline"
	SourceSpread    = "spread"
	SourceTotal     = "total"
	SourceDefault   = "default"
)

const (
	// LeagueAverageTotal anchors the weak total-only signal.
	LeagueAverageTotal = 47.5

	// PointsPerProbability maps one point of spread to win probability.
	PointsPerProbability = 0.028

	minSpreadProb = 0.05
	maxSpreadProb = 0.95
)

// ImpliedProbability is the market's view of a game, vig removed, plus the
// calculator's confidence in that view.
type ImpliedProbability struct {
	HomeProb   float64 `json:"home_prob"`
	AwayProb   float64 `json:"away_prob"`
	Source     string  `json:"source"`
	Confidence float64 `json:"confidence"`
}

// CalculateImpliedProbability extracts a win probability from whatever market
// data is present, in priority order moneyline, spread, total. Missing data
// is never an error: the result degrades to 50/50 at confidence 0.10.
func CalculateImpliedProbability(m *models.MarketData) ImpliedProbability {
	switch {
	case m.HasMoneyline():
		return fromMoneyline(*m.MoneylineHome, *m.MoneylineAway)
	case m.HasSpread():
		return fromSpread(*m.Spread)
	case m.HasTotal():
		return fromTotal(*m.Total)
	default:
		return ImpliedProbability{HomeProb: 0.5, AwayProb: 0.5, Source: SourceDefault, Confidence: 0.10}
	}
}

func fromMoneyline(home, away int) ImpliedProbability {
	rawHome := americanToRawProbability(home)
	rawAway := americanToRawProbability(away)
	sum := rawHome + rawAway
	if sum <= 0 {
		return ImpliedProbability{HomeProb: 0.5, AwayProb: 0.5, Source: SourceDefault, Confidence: 0.10}
	}

	// The normal two-way vig sits around 4-8%; anything outside that range
	// means a stale or unusual price.
	confidence := 0.8
	vig := sum - 1.0
	if vig >= 0.04 && vig <= 0.08 {
		confidence = 0.95
	}

	return ImpliedProbability{
		HomeProb:   rawHome / sum,
		AwayProb:   rawAway / sum,
		Source:     SourceMoneyline,
		Confidence: confidence,
	}
}

func fromSpread(spread float64) ImpliedProbability {
	homeProb := clamp(0.5-spread*PointsPerProbability, minSpreadProb, maxSpreadProb)

	confidence := 0.50
	switch abs := math.Abs(spread); {
	case abs <= 10:
		confidence = 0.85
	case abs <= 17:
		confidence = 0.70
	}

	return ImpliedProbability{
		HomeProb:   homeProb,
		AwayProb:   1.0 - homeProb,
		Source:     SourceSpread,
		Confidence: confidence,
	}
}

func fromTotal(total float64) ImpliedProbability {
	// A total on its own says almost nothing about the side; nudge home by
	// at most two points of probability.
	nudge := clamp((total-LeagueAverageTotal)*0.002, -0.02, 0.02)
	homeProb := 0.5 + nudge

	return ImpliedProbability{
		HomeProb:   homeProb,
		AwayProb:   1.0 - homeProb,
		Source:     SourceTotal,
		Confidence: 0.30,
	}
}

// americanToRawProbability converts one American-odds price to its raw
// (vig-inclusive) implied probability.
func americanToRawProbability(odds int) float64 {
	if odds == 0 {
		return 0
	}
	if odds > 0 {
		return 100.0 / (float64(odds) + 100.0)
	}
	a := math.Abs(float64(odds))
	return a / (a + 100.0)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
