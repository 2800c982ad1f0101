package elo

import (
	"context"
	"fmt"
	"time"

	"github.com/jnew00/pool-manager-sub000/internal/league"
	"github.com/jnew00/pool-manager-sub000/internal/models"
	"github.com/jnew00/pool-manager-sub000/internal/repository"
)

const (
	seedSeasonLookback  = 3
	seedRatingPerWinPct = 1000.0
	regressionFraction  = 0.25
)

// SeedHistoricalRatings derives an initial rating for every league team from
// the prior three seasons' win rate: 1500 + (winRate - 0.5) x 1000. Teams
// with no history seed at 1500.
func (s *Service) SeedHistoricalRatings(ctx context.Context, season int, results repository.GameResultRepository) error {
	records, err := results.GetSeasonRecords(ctx, season-seedSeasonLookback, season-1)
	if err != nil {
		return fmt.Errorf("failed to load season records: %w", err)
	}

	type tally struct{ wins, losses, ties int }
	byTeam := make(map[string]*tally)
	for _, rec := range records {
		t, ok := byTeam[rec.TeamID]
		if !ok {
			t = &tally{}
			byTeam[rec.TeamID] = t
		}
		t.wins += rec.Wins
		t.losses += rec.Losses
		t.ties += rec.Ties
	}

	now := time.Now().UTC()
	for _, teamID := range league.Teams() {
		rating := models.DefaultRating
		if t, ok := byTeam[teamID]; ok {
			games := t.wins + t.losses + t.ties
			if games > 0 {
				winRate := (float64(t.wins) + 0.5*float64(t.ties)) / float64(games)
				rating = models.DefaultRating + (winRate-0.5)*seedRatingPerWinPct
			}
		}

		seeded := &models.TeamRating{
			TeamID:      teamID,
			Rating:      rating,
			GamesPlayed: 0,
			LastUpdated: now,
		}
		if err := s.repo.Upsert(ctx, seeded); err != nil {
			return fmt.Errorf("failed to seed rating for %s: %w", teamID, err)
		}
		s.cache.Delete(teamID)
	}

	s.logger.WithField("season", season).WithField("teams", len(league.Teams())).
		Info("Seeded historical ratings")
	return nil
}

// ApplySeasonalRegression pulls every rating a quarter of the way back to
// 1500 and resets games played, reflecting offseason roster churn.
func (s *Service) ApplySeasonalRegression(ctx context.Context, season int) error {
	ratings, err := s.repo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list ratings for regression: %w", err)
	}

	now := time.Now().UTC()
	for _, rating := range ratings {
		rating.Rating += (models.DefaultRating - rating.Rating) * regressionFraction
		rating.GamesPlayed = 0
		rating.LastUpdated = now

		if err := s.repo.Upsert(ctx, rating); err != nil {
			return fmt.Errorf("failed to regress rating for %s: %w", rating.TeamID, err)
		}
		s.cache.Delete(rating.TeamID)
	}

	s.logger.WithField("season", season).WithField("teams", len(ratings)).
		Info("Applied seasonal regression")
	return nil
}
