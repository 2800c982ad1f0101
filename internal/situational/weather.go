package situational

import (
	"math"

	"github.com/jnew00/pool-manager-sub000/internal/models"
)

const (
	pointsPerWindMPH   = 0.18
	pointsPerPrecip    = 9.0
	coldThresholdF     = 20.0
	pointsPerColdF     = 0.08
	heatThresholdF     = 92.0
	pointsPerHeatF     = 0.03
	maxWeatherPenalty  = 6.0
)

// WeatherPenalty returns the total weather impact in points. Dome games are
// exactly 0 regardless of the readings. Thresholds for wind and
// precipitation come from the weight configuration.
func WeatherPenalty(w *models.WeatherData, weights models.ModelWeights) float64 {
	if w == nil || w.IsDome {
		return 0
	}

	var penalty float64

	if excess := w.WindSpeedMPH - weights.WindThresholdMPH; excess > 0 {
		penalty += excess * pointsPerWindMPH
	}
	if excess := w.PrecipProb - weights.PrecipThreshold; excess > 0 {
		penalty += excess * pointsPerPrecip
	}
	if w.TemperatureF < coldThresholdF {
		penalty += (coldThresholdF - w.TemperatureF) * pointsPerColdF
	}
	if w.TemperatureF > heatThresholdF {
		penalty += (w.TemperatureF - heatThresholdF) * pointsPerHeatF
	}

	return math.Min(penalty, maxWeatherPenalty)
}
