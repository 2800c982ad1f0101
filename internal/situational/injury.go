package situational

import (
	"math"
	"strings"

	"github.com/jnew00/pool-manager-sub000/internal/models"
)

const (
	doubtfulDiscount  = 0.7
	maxInjuryPenalty  = 20.0
	olClusterMin      = 2
	dbClusterMin      = 3
)

// basePositionPenalty returns the points lost when a starter at the position
// is out. The quarterback penalty is configurable; everything else is fixed.
func basePositionPenalty(position string, weights models.ModelWeights) float64 {
	switch normalizePosition(position) {
	case "QB":
		return weights.QBOutPenalty
	case "RB":
		return 3.0
	case "WR":
		return 2.5
	case "OL":
		return 2.0
	case "DL":
		return 2.0
	case "LB":
		return 2.0
	case "DB":
		return 1.8
	case "TE":
		return 1.5
	case "K":
		return 0.5
	default:
		return 1.0
	}
}

func normalizePosition(position string) string {
	switch strings.ToUpper(strings.TrimSpace(position)) {
	case "QB":
		return "QB"
	case "RB", "FB", "HB":
		return "RB"
	case "WR":
		return "WR"
	case "TE":
		return "TE"
	case "OT", "OG", "C", "G", "T", "OL", "LT", "RT", "LG", "RG":
		return "OL"
	case "DE", "DT", "NT", "DL", "EDGE":
		return "DL"
	case "LB", "ILB", "OLB", "MLB":
		return "LB"
	case "CB", "S", "FS", "SS", "DB":
		return "DB"
	case "K", "P", "LS":
		return "K"
	default:
		return ""
	}
}

func statusMultiplier(status models.InjuryStatus) float64 {
	switch status {
	case models.InjuryOut, models.InjuryInjuredReserve:
		return 1.0
	case models.InjuryDoubtful:
		return doubtfulDiscount
	default:
		// Questionable players usually play.
		return 0
	}
}

// TeamInjuryPenalty sums position-weighted penalties for one team's report.
// Two or more affected linemen, or three or more affected defensive backs,
// accumulate cluster penalties beyond the first player. Capped at 20 points.
func TeamInjuryPenalty(report []models.PlayerInjury, weights models.ModelWeights) float64 {
	var penalty float64
	var olCount, dbCount int

	for _, p := range report {
		mult := statusMultiplier(p.Status)
		if mult == 0 {
			continue
		}
		penalty += basePositionPenalty(p.Position, weights) * mult

		switch normalizePosition(p.Position) {
		case "OL":
			olCount++
		case "DB":
			dbCount++
		}
	}

	if olCount >= olClusterMin {
		penalty += weights.OLClusterPenalty * float64(olCount-1)
	}
	if dbCount >= dbClusterMin {
		penalty += weights.DBClusterPenalty * float64(dbCount-1)
	}

	return math.Min(penalty, maxInjuryPenalty)
}

// GameInjuryFactor nets the two reports: positive output hurts the home side.
func GameInjuryFactor(data *models.InjuryData, weights models.ModelWeights) float64 {
	if data == nil {
		return 0
	}
	return TeamInjuryPenalty(data.Home, weights) - TeamInjuryPenalty(data.Away, weights)
}
