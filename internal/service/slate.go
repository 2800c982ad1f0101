// Package service orchestrates feeds, ratings, and the engine into the
// operations the pool app calls: weekly slate analysis and result ingestion.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jnew00/pool-manager-sub000/internal/datasource"
	"github.com/jnew00/pool-manager-sub000/internal/elo"
	"github.com/jnew00/pool-manager-sub000/internal/engine"
	"github.com/jnew00/pool-manager-sub000/internal/league"
	"github.com/jnew00/pool-manager-sub000/internal/models"
)

// GameDescriptor identifies one slate game before any data resolution
type GameDescriptor struct {
	HomeTeamID string
	AwayTeamID string
	Kickoff    time.Time
	Venue      string
	IsPlayoff  bool
	PoolSpread *float64
	Rest       *models.RestData
}

// SlateService analyzes a week's games. Feed clients are optional: a nil
// feed simply leaves that section of the input empty and the model degrades
// to its documented defaults.
type SlateService struct {
	engine  *engine.Engine
	ratings *elo.Service
	market  datasource.MarketDataSource
	weather datasource.WeatherDataSource
	injury  datasource.InjuryDataSource
	weights models.ModelWeights
	logger  *logrus.Logger
}

// NewSlateService creates a slate analysis service
func NewSlateService(eng *engine.Engine, ratings *elo.Service, weights models.ModelWeights, logger *logrus.Logger) *SlateService {
	return &SlateService{engine: eng, ratings: ratings, weights: weights, logger: logger}
}

// WithFeeds attaches the optional data feed clients
func (s *SlateService) WithFeeds(market datasource.MarketDataSource, weather datasource.WeatherDataSource, injury datasource.InjuryDataSource) *SlateService {
	s.market = market
	s.weather = weather
	s.injury = injury
	return s
}

// AnalyzeSlate computes confidence for every game on the slate. All teams'
// ratings are prefetched in one batched call before any scoring happens.
func (s *SlateService) AnalyzeSlate(ctx context.Context, games []GameDescriptor) ([]*models.ModelOutput, error) {
	teamIDs := make([]string, 0, 2*len(games))
	for _, g := range games {
		teamIDs = append(teamIDs, g.HomeTeamID, g.AwayTeamID)
	}
	if _, err := s.ratings.GetTeamRatings(ctx, teamIDs...); err != nil {
		// Scoring still works with default ratings; the engine will log
		// the degraded Elo factor per game.
		s.logger.WithError(err).Warn("Rating prefetch failed, slate will score with defaults")
	}

	outputs := make([]*models.ModelOutput, 0, len(games))
	for _, g := range games {
		input := s.BuildInput(ctx, g)
		output, err := s.engine.CalculateConfidence(ctx, input)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, output)
	}
	return outputs, nil
}

// BuildInput resolves feeds and division membership into an immutable model
// input. Every feed failure degrades to a missing section, never an error.
func (s *SlateService) BuildInput(ctx context.Context, g GameDescriptor) *models.ModelInput {
	input := &models.ModelInput{
		GameID:     uuid.New(),
		HomeTeamID: g.HomeTeamID,
		AwayTeamID: g.AwayTeamID,
		Kickoff:    g.Kickoff,
		Venue:      g.Venue,
		IsPlayoff:  g.IsPlayoff,
		Rest:       g.Rest,
		Weights:    s.weights,
	}

	division := league.ResolveDivisionContext(g.HomeTeamID, g.AwayTeamID)
	input.Division = &division

	if s.market != nil {
		if data, err := s.market.FetchMarketData(ctx, g.HomeTeamID, g.AwayTeamID); err != nil {
			s.logger.WithError(err).WithField("home", g.HomeTeamID).Warn("Market feed unavailable")
		} else {
			data.PoolSpread = g.PoolSpread
			input.Market = data
		}
	} else if g.PoolSpread != nil {
		input.Market = &models.MarketData{PoolSpread: g.PoolSpread}
	}

	if s.weather != nil {
		if data, err := s.weather.FetchWeather(ctx, g.Venue, g.Kickoff); err != nil {
			s.logger.WithError(err).WithField("venue", g.Venue).Warn("Weather feed unavailable")
		} else {
			input.Weather = data
		}
	}

	if s.injury != nil {
		if data, err := s.injury.FetchInjuries(ctx, g.HomeTeamID, g.AwayTeamID); err != nil {
			s.logger.WithError(err).WithField("home", g.HomeTeamID).Warn("Injury feed unavailable")
		} else {
			input.Injuries = data
		}
	}

	return input
}
