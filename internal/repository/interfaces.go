package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jnew00/pool-manager-sub000/internal/models"
)

// TeamRatingRepository defines the interface for team rating persistence.
// The rating engine only ever touches this narrow surface, so tests run
// against the in-memory implementation.
type TeamRatingRepository interface {
	Get(ctx context.Context, teamID string) (*models.TeamRating, error)
	GetMany(ctx context.Context, teamIDs []string) (map[string]*models.TeamRating, error)
	Upsert(ctx context.Context, rating *models.TeamRating) error
	ListAll(ctx context.Context) ([]*models.TeamRating, error)
}

// GameResultRepository defines the interface for final-score persistence
type GameResultRepository interface {
	Insert(ctx context.Context, result *models.GameResult) error
	GetUnprocessed(ctx context.Context, limit int) ([]*models.GameResult, error)
	MarkProcessed(ctx context.Context, id uuid.UUID) error
	GetSeasonRecords(ctx context.Context, firstSeason, lastSeason int) ([]*models.TeamSeasonRecord, error)
}

// Repositories holds all repository implementations
type Repositories struct {
	TeamRating TeamRatingRepository
	GameResult GameResultRepository
}
