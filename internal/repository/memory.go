package repository

import (
	"context"
	"sync"

	"github.com/jnew00/pool-manager-sub000/internal/models"
)

// MemoryTeamRatingRepository is an in-memory TeamRatingRepository used by
// unit tests and dry-run tooling.
type MemoryTeamRatingRepository struct {
	mu      sync.RWMutex
	ratings map[string]models.TeamRating
}

// NewMemoryTeamRatingRepository creates an empty in-memory repository
func NewMemoryTeamRatingRepository() *MemoryTeamRatingRepository {
	return &MemoryTeamRatingRepository{ratings: make(map[string]models.TeamRating)}
}

// Get retrieves a team's rating
func (r *MemoryTeamRatingRepository) Get(ctx context.Context, teamID string) (*models.TeamRating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rating, ok := r.ratings[teamID]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := rating
	return &copied, nil
}

// GetMany retrieves ratings for a set of teams
func (r *MemoryTeamRatingRepository) GetMany(ctx context.Context, teamIDs []string) (map[string]*models.TeamRating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*models.TeamRating, len(teamIDs))
	for _, id := range teamIDs {
		if rating, ok := r.ratings[id]; ok {
			copied := rating
			out[id] = &copied
		}
	}
	return out, nil
}

// Upsert stores a team's rating
func (r *MemoryTeamRatingRepository) Upsert(ctx context.Context, rating *models.TeamRating) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ratings[rating.TeamID] = *rating
	return nil
}

// ListAll retrieves every stored rating
func (r *MemoryTeamRatingRepository) ListAll(ctx context.Context) ([]*models.TeamRating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.TeamRating, 0, len(r.ratings))
	for _, rating := range r.ratings {
		copied := rating
		out = append(out, &copied)
	}
	return out, nil
}
