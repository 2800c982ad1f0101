package models

// Pick is the side the model recommends
type Pick string

const (
	PickHome Pick = "HOME"
	PickAway Pick = "AWAY"
)

// Factor names used in contribution breakdowns
const (
	FactorMarketProb    = "market_probability"
	FactorElo           = "elo_probability"
	FactorLineValue     = "line_value"
	FactorHomeAdvantage = "home_advantage"
	FactorRest          = "rest_advantage"
	FactorDivisional    = "divisional"
	FactorWeather       = "weather_penalty"
	FactorInjury        = "injury_penalty"
)

// GameFactors holds every intermediate factor value computed for one game.
// Point-valued factors are on the NFL scoring-point scale, positive favoring
// the home side, before conversion to probability space.
type GameFactors struct {
	MarketProb        float64 `json:"market_prob"`
	MarketSource      string  `json:"market_source"`
	MarketConfidence  float64 `json:"market_confidence"`
	EloProb           float64 `json:"elo_prob"`
	HomeRating        float64 `json:"home_rating"`
	AwayRating        float64 `json:"away_rating"`
	LineValuePoints   float64 `json:"line_value_points"`
	HomeAdvPoints     float64 `json:"home_adv_points"`
	RestAdvPoints     float64 `json:"rest_adv_points"`
	DivisionalPoints  float64 `json:"divisional_points"`
	WeatherPenaltyPts float64 `json:"weather_penalty_pts"`
	InjuryPenaltyPts  float64 `json:"injury_penalty_pts"`
}

// FactorContribution itemizes one factor's effect on the final score. This is
// the explainability contract: consumers render these directly.
type FactorContribution struct {
	Factor       string  `json:"factor"`
	Value        float64 `json:"value"`
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"contribution"`
	Description  string  `json:"description"`
}

// ModelOutput is the computed result for one ModelInput. It has no lifecycle
// of its own: produced fresh per call, never persisted by this subsystem.
type ModelOutput struct {
	GameID          string               `json:"game_id"`
	Factors         GameFactors          `json:"factors"`
	RawProbability  float64              `json:"raw_probability"`
	Confidence      float64              `json:"confidence"`
	RecommendedPick Pick                 `json:"recommended_pick"`
	Breakdown       []FactorContribution `json:"breakdown"`
	WeightsName     string               `json:"weights_name"`
	WeightsVersion  string               `json:"weights_version"`
}

// TotalWeight returns the sum of weights across the breakdown
func (o *ModelOutput) TotalWeight() float64 {
	var sum float64
	for _, c := range o.Breakdown {
		sum += c.Weight
	}
	return sum
}
