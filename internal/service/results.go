package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jnew00/pool-manager-sub000/internal/elo"
	"github.com/jnew00/pool-manager-sub000/internal/metrics"
	"github.com/jnew00/pool-manager-sub000/internal/models"
	"github.com/jnew00/pool-manager-sub000/internal/repository"
)

const defaultResultsBatch = 100

// ResultsService applies final scores to the rating store
type ResultsService struct {
	results repository.GameResultRepository
	ratings *elo.Service
	weights models.ModelWeights
	logger  *logrus.Logger
}

// NewResultsService creates a results ingestion service
func NewResultsService(results repository.GameResultRepository, ratings *elo.Service, weights models.ModelWeights, logger *logrus.Logger) *ResultsService {
	return &ResultsService{results: results, ratings: ratings, weights: weights, logger: logger}
}

// ProcessUnprocessed grades every pending final score and applies the Elo
// update, marking each result processed as it lands. Returns the number of
// games applied.
func (s *ResultsService) ProcessUnprocessed(ctx context.Context, limit int) (int, error) {
	if limit <= 0 {
		limit = defaultResultsBatch
	}

	pending, err := s.results.GetUnprocessed(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("failed to load pending results: %w", err)
	}

	processed := 0
	for _, result := range pending {
		update, err := s.ratings.UpdateRatingsAfterGame(ctx,
			result.HomeTeamID, result.AwayTeamID,
			result.HomeScore, result.AwayScore,
			result.ClosingSpread, s.weights.KFactor,
		)
		if err != nil {
			return processed, fmt.Errorf("failed to update ratings for result %s: %w", result.ID, err)
		}
		metrics.RatingUpdatesTotal.Inc()

		if err := s.results.MarkProcessed(ctx, result.ID); err != nil {
			return processed, fmt.Errorf("failed to mark result %s processed: %w", result.ID, err)
		}

		s.logger.WithFields(logrus.Fields{
			"home":       result.HomeTeamID,
			"away":       result.AwayTeamID,
			"home_delta": update.Home.Delta(),
			"away_delta": update.Away.Delta(),
		}).Debug("Applied rating update")

		processed++
		metrics.ResultsProcessedTotal.Inc()
	}

	return processed, nil
}
