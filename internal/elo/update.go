package elo

import (
	"context"
	"time"

	"github.com/jnew00/pool-manager-sub000/internal/models"
)

// DefaultKFactor controls how much a single game moves a rating
const DefaultKFactor = 24.0

// UpdateResult carries both sides' rating movements plus the updated records
type UpdateResult struct {
	Home       models.RatingChange `json:"home"`
	Away       models.RatingChange `json:"away"`
	NewRatings map[string]*models.TeamRating `json:"new_ratings"`
}

// UpdateRatingsAfterGame grades one final score and applies the Elo update
// to both teams. When homeSpread is given the game is graded against the
// spread (a push scores 0.5); otherwise straight up. kFactor <= 0 falls back
// to the default.
//
// Both team locks are taken in a fixed order for the whole read-modify-write
// cycle, so overlapping updates touching the same team serialize cleanly.
func (s *Service) UpdateRatingsAfterGame(ctx context.Context, homeID, awayID string, homeScore, awayScore int, homeSpread *float64, kFactor float64) (*UpdateResult, error) {
	if homeID == "" || awayID == "" {
		return nil, models.ErrInvalidTeamID
	}
	if kFactor <= 0 {
		kFactor = DefaultKFactor
	}

	first, second := homeID, awayID
	if second < first {
		first, second = second, first
	}
	firstLock, secondLock := s.teamLock(first), s.teamLock(second)
	firstLock.Lock()
	defer firstLock.Unlock()
	secondLock.Lock()
	defer secondLock.Unlock()

	ratings, err := s.GetTeamRatings(ctx, homeID, awayID)
	if err != nil {
		return nil, err
	}
	home, away := ratings[homeID], ratings[awayID]

	expectedHome := ExpectedScore(home.Rating+HomeFieldRatingBonus, away.Rating)
	expectedAway := 1.0 - expectedHome

	actualHome := actualScore(homeScore, awayScore, homeSpread)
	actualAway := 1.0 - actualHome

	now := time.Now().UTC()
	result := &UpdateResult{
		Home: models.RatingChange{
			TeamID:    homeID,
			OldRating: home.Rating,
			NewRating: home.Rating + kFactor*(actualHome-expectedHome),
			Expected:  expectedHome,
			Actual:    actualHome,
		},
		Away: models.RatingChange{
			TeamID:    awayID,
			OldRating: away.Rating,
			NewRating: away.Rating + kFactor*(actualAway-expectedAway),
			Expected:  expectedAway,
			Actual:    actualAway,
		},
	}

	home.Rating = result.Home.NewRating
	home.GamesPlayed++
	home.LastUpdated = now
	away.Rating = result.Away.NewRating
	away.GamesPlayed++
	away.LastUpdated = now

	s.persist(ctx, home)
	s.persist(ctx, away)

	result.NewRatings = map[string]*models.TeamRating{homeID: home, awayID: away}
	return result, nil
}

// actualScore grades the home side: 1 win, 0 loss, 0.5 tie. With a spread
// the grade is against the spread instead of the raw score.
func actualScore(homeScore, awayScore int, homeSpread *float64) float64 {
	if homeSpread == nil {
		switch {
		case homeScore > awayScore:
			return 1.0
		case homeScore < awayScore:
			return 0.0
		}
		return 0.5
	}

	adjusted := float64(homeScore) + *homeSpread
	switch {
	case adjusted > float64(awayScore):
		return 1.0
	case adjusted < float64(awayScore):
		return 0.0
	}
	return 0.5
}
