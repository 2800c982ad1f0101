package models

// ModelWeights is a named, versioned weight configuration for the confidence
// model. Weights do not need to sum to 1; the engine normalizes by the sum of
// the weights it actually applies. Instances are external configuration and
// must be treated as read-only by the engine.
type ModelWeights struct {
	Name    string `mapstructure:"name" json:"name" validate:"required"`
	Version string `mapstructure:"version" json:"version" validate:"required"`

	// Factor weights
	MarketProb    float64 `mapstructure:"market_prob" json:"market_prob" validate:"gte=0"`
	Elo           float64 `mapstructure:"elo" json:"elo" validate:"gte=0"`
	LineValue     float64 `mapstructure:"line_value" json:"line_value" validate:"gte=0"`
	HomeAdvantage float64 `mapstructure:"home_advantage" json:"home_advantage" validate:"gte=0"`
	Rest          float64 `mapstructure:"rest" json:"rest" validate:"gte=0"`
	Divisional    float64 `mapstructure:"divisional" json:"divisional" validate:"gte=0"`
	WeatherPenalty float64 `mapstructure:"weather_penalty" json:"weather_penalty" validate:"gte=0"`
	InjuryPenalty  float64 `mapstructure:"injury_penalty" json:"injury_penalty" validate:"gte=0"`

	// Tunable constants
	KFactor          float64 `mapstructure:"k_factor" json:"k_factor" validate:"gt=0"`
	WindThresholdMPH float64 `mapstructure:"wind_threshold_mph" json:"wind_threshold_mph" validate:"gte=0"`
	PrecipThreshold  float64 `mapstructure:"precip_threshold" json:"precip_threshold" validate:"gte=0,lte=1"`
	QBOutPenalty     float64 `mapstructure:"qb_out_penalty" json:"qb_out_penalty" validate:"gte=0"`
	OLClusterPenalty float64 `mapstructure:"ol_cluster_penalty" json:"ol_cluster_penalty" validate:"gte=0"`
	DBClusterPenalty float64 `mapstructure:"db_cluster_penalty" json:"db_cluster_penalty" validate:"gte=0"`
}

// DefaultWeights returns the baseline production weight set
func DefaultWeights() ModelWeights {
	return ModelWeights{
		Name:    "baseline",
		Version: "v1",

		MarketProb:     0.30,
		Elo:            0.25,
		LineValue:      0.10,
		HomeAdvantage:  0.10,
		Rest:           0.05,
		Divisional:     0.05,
		WeatherPenalty: 0.075,
		InjuryPenalty:  0.075,

		KFactor:          24.0,
		WindThresholdMPH: 15.0,
		PrecipThreshold:  0.30,
		QBOutPenalty:     12.0,
		OLClusterPenalty: 1.5,
		DBClusterPenalty: 1.0,
	}
}

// IsZero reports whether the weight set was never populated
func (w ModelWeights) IsZero() bool {
	return w.Name == "" && w.Version == ""
}
