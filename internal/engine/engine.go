// Package engine fuses market, rating, and situational signals into a single
// calibrated 0-100 confidence score with an itemized factor breakdown.
package engine

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jnew00/pool-manager-sub000/internal/elo"
	"github.com/jnew00/pool-manager-sub000/internal/market"
	"github.com/jnew00/pool-manager-sub000/internal/metrics"
	"github.com/jnew00/pool-manager-sub000/internal/models"
	"github.com/jnew00/pool-manager-sub000/internal/situational"
)

// pickThreshold is the raw probability above which the home side is
// recommended. Exactly at the threshold the recommendation is AWAY.
const pickThreshold = 0.5

// TraceFunc receives one event per computed factor
type TraceFunc func(gameID, factor string, value, weight float64)

// Engine computes confidence scores. Each call is independent and
// side-effect-free apart from the rating lookups it performs.
type Engine struct {
	ratings *elo.Service
	logger  *logrus.Logger
	trace   TraceFunc
}

// Option configures an Engine
type Option func(*Engine)

// WithTrace installs a structured trace hook receiving every factor
func WithTrace(trace TraceFunc) Option {
	return func(e *Engine) { e.trace = trace }
}

// New creates a confidence engine backed by the given rating store
func New(ratings *elo.Service, logger *logrus.Logger, opts ...Option) *Engine {
	e := &Engine{ratings: ratings, logger: logger}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CalculateConfidence computes the full model output for one game. Missing
// optional inputs degrade to documented neutral defaults; the only error
// condition is a nil input.
func (e *Engine) CalculateConfidence(ctx context.Context, input *models.ModelInput) (*models.ModelOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("model input is required")
	}
	started := time.Now()
	defer func() {
		metrics.CalculationDuration.Observe(time.Since(started).Seconds())
	}()
	metrics.ConfidenceCalculationsTotal.Inc()

	weights := input.Weights
	if weights.IsZero() {
		weights = models.DefaultWeights()
	}

	gameFactors, factors := e.assembleFactors(ctx, input, weights)

	var weighted, totalWeight float64
	for _, f := range factors {
		if !f.used {
			continue
		}
		weighted += f.probability * f.weight
		totalWeight += f.weight
		e.emitTrace(input.GameID.String(), f)
	}

	raw := weighted / totalWeight
	if math.IsNaN(raw) || math.IsInf(raw, 0) || totalWeight <= 0 {
		e.logger.WithFields(logrus.Fields{
			"game_id":      input.GameID,
			"total_weight": totalWeight,
		}).Warn("Non-finite combined probability, falling back to neutral confidence")
		metrics.NeutralFallbacksTotal.Inc()
		raw = 0.5
	}

	confidence := math.Max(0, math.Min(100, raw*100))

	pick := models.PickAway
	if raw > pickThreshold {
		pick = models.PickHome
	}

	metrics.ConfidenceScore.Observe(confidence)
	metrics.RecommendedPicks.WithLabelValues(string(pick)).Inc()

	return &models.ModelOutput{
		GameID:          input.GameID.String(),
		Factors:         gameFactors,
		RawProbability:  raw,
		Confidence:      confidence,
		RecommendedPick: pick,
		Breakdown:       buildBreakdown(factors, totalWeight),
		WeightsName:     weights.Name,
		WeightsVersion:  weights.Version,
	}, nil
}

// assembleFactors computes every factor, marking each as used only when its
// input data was actually supplied.
func (e *Engine) assembleFactors(ctx context.Context, input *models.ModelInput, weights models.ModelWeights) (models.GameFactors, []factor) {
	var gf models.GameFactors

	// Ratings come from one batched store call. A store failure makes the
	// Elo factor unavailable rather than failing the calculation.
	eloUsed := true
	homeRating, awayRating := models.DefaultRating, models.DefaultRating
	ratings, err := e.ratings.GetTeamRatings(ctx, input.HomeTeamID, input.AwayTeamID)
	if err != nil {
		e.logger.WithError(err).WithField("game_id", input.GameID).
			Warn("Rating lookup failed, excluding Elo factor")
		eloUsed = false
	} else {
		homeRating = ratings[input.HomeTeamID].Rating
		awayRating = ratings[input.AwayTeamID].Rating
	}
	gf.HomeRating, gf.AwayRating = homeRating, awayRating

	// The home edge enters once, as the points-valued home-advantage factor;
	// the Elo probability here is the plain logistic on the raw difference.
	gf.EloProb = elo.ExpectedScore(homeRating, awayRating)

	marketData := input.Market
	if marketData == nil {
		marketData = &models.MarketData{}
	}
	implied := market.CalculateImpliedProbability(marketData)
	gf.MarketProb = implied.HomeProb
	gf.MarketSource = implied.Source
	gf.MarketConfidence = implied.Confidence

	gf.LineValuePoints = marketData.LineValue()
	gf.HomeAdvPoints = situational.HomeAdvantage(input.Venue, input.IsPlayoff)
	gf.RestAdvPoints = situational.RestAdvantage(input.Rest)
	gf.WeatherPenaltyPts = situational.WeatherPenalty(input.Weather, weights)
	gf.InjuryPenaltyPts = situational.GameInjuryFactor(input.Injuries, weights)

	var marketSpread *float64
	if marketData.HasSpread() {
		marketSpread = marketData.Spread
	}
	gf.DivisionalPoints = situational.DivisionalFactor(input.Division, marketSpread)

	factors := []factor{
		{
			name:        models.FactorMarketProb,
			probability: gf.MarketProb,
			weight:      weights.MarketProb,
			used:        true,
			description: fmt.Sprintf("Market-implied home win probability (%s)", gf.MarketSource),
		},
		{
			name:        models.FactorElo,
			probability: gf.EloProb,
			weight:      weights.Elo,
			used:        eloUsed,
			description: fmt.Sprintf("Elo rating edge (%.0f vs %.0f)", homeRating, awayRating),
		},
		{
			name:        models.FactorLineValue,
			probability: pointsToProbability(gf.LineValuePoints),
			weight:      weights.LineValue,
			used:        marketData.HasSpread() && marketData.PoolSpread != nil,
			description: describePoints("Pool line vs market line", gf.LineValuePoints),
		},
		{
			name:        models.FactorHomeAdvantage,
			probability: pointsToProbability(gf.HomeAdvPoints),
			weight:      weights.HomeAdvantage,
			used:        true,
			description: describePoints(homeAdvLabel(input.Venue), gf.HomeAdvPoints),
		},
		{
			name:        models.FactorRest,
			probability: pointsToProbability(gf.RestAdvPoints),
			weight:      weights.Rest,
			used:        input.Rest != nil,
			description: describePoints("Rest differential", gf.RestAdvPoints),
		},
		{
			name:        models.FactorDivisional,
			probability: pointsToProbability(gf.DivisionalPoints),
			weight:      weights.Divisional,
			used:        input.Division != nil,
			description: describePoints("Divisional matchup", gf.DivisionalPoints),
		},
		{
			// Penalties are negated so "bad for home" lowers probability.
			name:        models.FactorWeather,
			probability: pointsToProbability(-gf.WeatherPenaltyPts),
			weight:      weights.WeatherPenalty,
			used:        input.Weather != nil,
			description: fmt.Sprintf("Weather penalty: %.1f pts", gf.WeatherPenaltyPts),
		},
		{
			name:        models.FactorInjury,
			probability: pointsToProbability(-gf.InjuryPenaltyPts),
			weight:      weights.InjuryPenalty,
			used:        input.Injuries != nil,
			description: fmt.Sprintf("Net injury impact: %+.1f pts against home", gf.InjuryPenaltyPts),
		},
	}

	return gf, factors
}

func (e *Engine) emitTrace(gameID string, f factor) {
	if e.trace != nil {
		e.trace(gameID, f.name, f.probability, f.weight)
	}
}

func homeAdvLabel(venue string) string {
	if venue == "" {
		return "Home advantage"
	}
	return "Home advantage at " + venue
}
