package elo

import (
	"context"
	"fmt"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/jnew00/pool-manager-sub000/internal/metrics"
	"github.com/jnew00/pool-manager-sub000/internal/models"
	"github.com/jnew00/pool-manager-sub000/internal/repository"
)

const defaultCacheTTL = 5 * time.Minute

// Service is the rating store. Reads are served lock-free, optionally
// through a TTL cache; updates touching a team are serialized by a per-team
// lock so concurrent game updates never lose a write.
type Service struct {
	repo   repository.TeamRatingRepository
	cache  *cache.Cache
	logger *logrus.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService creates a rating store backed by the given repository
func NewService(repo repository.TeamRatingRepository, logger *logrus.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache.New(defaultCacheTTL, 2*defaultCacheTTL),
		logger: logger,
		locks:  make(map[string]*sync.Mutex),
	}
}

// teamLock returns the mutex guarding one team's read-modify-write cycle
func (s *Service) teamLock(teamID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[teamID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[teamID] = lock
	}
	return lock
}

// GetTeamRating returns the stored rating, or a default 1500.0 record for an
// unseen team. Creation is idempotent and writes nothing: the default is not
// persisted until the team's first actual update.
func (s *Service) GetTeamRating(ctx context.Context, teamID string) (*models.TeamRating, error) {
	if teamID == "" {
		return nil, models.ErrInvalidTeamID
	}

	if cached, ok := s.cache.Get(teamID); ok {
		rating := cached.(models.TeamRating)
		return &rating, nil
	}

	rating, err := s.repo.Get(ctx, teamID)
	if err == models.ErrNotFound {
		return models.NewDefaultRating(teamID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load rating for %s: %w", teamID, err)
	}

	s.cache.Set(teamID, *rating, cache.DefaultExpiration)
	return rating, nil
}

// GetTeamRatings batch-fetches ratings for several teams in one repository
// call, filling in defaults for unseen teams.
func (s *Service) GetTeamRatings(ctx context.Context, teamIDs ...string) (map[string]*models.TeamRating, error) {
	out := make(map[string]*models.TeamRating, len(teamIDs))
	var missing []string

	for _, id := range teamIDs {
		if id == "" {
			return nil, models.ErrInvalidTeamID
		}
		if cached, ok := s.cache.Get(id); ok {
			rating := cached.(models.TeamRating)
			out[id] = &rating
		} else {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		fetched, err := s.repo.GetMany(ctx, missing)
		if err != nil {
			return nil, fmt.Errorf("failed to batch-load ratings: %w", err)
		}
		for _, id := range missing {
			if rating, ok := fetched[id]; ok {
				s.cache.Set(id, *rating, cache.DefaultExpiration)
				out[id] = rating
			} else {
				out[id] = models.NewDefaultRating(id)
			}
		}
	}

	return out, nil
}

// ListRatings returns every persisted rating, strongest first
func (s *Service) ListRatings(ctx context.Context) ([]*models.TeamRating, error) {
	return s.repo.ListAll(ctx)
}

// persist saves a rating and refreshes the read cache. Persistence failures
// are logged and swallowed: callers still get the computed values.
func (s *Service) persist(ctx context.Context, rating *models.TeamRating) {
	if err := s.repo.Upsert(ctx, rating); err != nil {
		metrics.RatingPersistFailuresTotal.Inc()
		s.logger.WithError(err).WithField("team_id", rating.TeamID).
			Warn("Failed to persist rating update; computed values returned anyway")
		s.cache.Delete(rating.TeamID)
		return
	}
	s.cache.Set(rating.TeamID, *rating, cache.DefaultExpiration)
}
