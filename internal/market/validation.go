package market

import (
	"fmt"
	"math"

	"github.com/jnew00/pool-manager-sub000/internal/models"
)

// ValidationResult reports structural problems with market data. Errors mean
// the data is internally impossible; warnings flag prices a human should look
// at. The confidence engine computes through bad data either way.
type ValidationResult struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

const (
	extremeSpread  = 21.0
	minSaneTotal   = 30.0
	maxSaneTotal   = 70.0
	maxSaneVig     = 0.15
	maxImpliedGap  = 0.10
)

// ValidateMarketData checks one game's market prices for impossible or
// suspicious values.
func ValidateMarketData(m *models.MarketData) ValidationResult {
	result := ValidationResult{IsValid: true}
	if m == nil {
		return result
	}

	if m.HasMoneyline() {
		h, a := *m.MoneylineHome, *m.MoneylineAway
		if h > 0 && a > 0 {
			result.IsValid = false
			result.Errors = append(result.Errors, fmt.Sprintf(
				"impossible prices: both moneylines positive (%+d/%+d) imply negative vig", h, a))
		} else {
			vig := americanToRawProbability(h) + americanToRawProbability(a) - 1.0
			if vig > maxSaneVig {
				result.Warnings = append(result.Warnings, fmt.Sprintf(
					"high vig: %.1f%% exceeds %.0f%%", vig*100, maxSaneVig*100))
			}
		}
	}

	if m.HasSpread() && math.Abs(*m.Spread) > extremeSpread {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"extreme spread: %.1f exceeds %.0f points", *m.Spread, extremeSpread))
	}

	if m.HasTotal() && (*m.Total < minSaneTotal || *m.Total > maxSaneTotal) {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"unusual total: %.1f outside [%.0f, %.0f]", *m.Total, minSaneTotal, maxSaneTotal))
	}

	if m.HasSpread() && m.HasMoneyline() {
		if gap := spreadMoneylineGap(m); gap > maxImpliedGap {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"spread and moneyline disagree by %.0f probability points", gap*100))
		}
	}

	return result
}

// spreadMoneylineGap measures how far apart the spread-implied and
// moneyline-implied home probabilities sit.
func spreadMoneylineGap(m *models.MarketData) float64 {
	fromSpread := SpreadToProbability(*m.Spread)
	ml := fromMoneyline(*m.MoneylineHome, *m.MoneylineAway)
	return math.Abs(fromSpread - ml.HomeProb)
}
