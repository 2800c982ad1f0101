package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jnew00/pool-manager-sub000/internal/database"
	"github.com/jnew00/pool-manager-sub000/internal/models"
)

const errScanRating = "failed to scan team rating: %w"

// PostgresTeamRatingRepository implements TeamRatingRepository for PostgreSQL
type PostgresTeamRatingRepository struct {
	db *database.DB
}

// NewPostgresTeamRatingRepository creates a new team rating repository
func NewPostgresTeamRatingRepository(db *database.DB) TeamRatingRepository {
	return &PostgresTeamRatingRepository{db: db}
}

// Get retrieves a team's rating
func (r *PostgresTeamRatingRepository) Get(ctx context.Context, teamID string) (*models.TeamRating, error) {
	query := `
		SELECT team_id, rating, games_played, last_updated
		FROM team_ratings WHERE team_id = $1
	`

	rating := &models.TeamRating{}
	err := r.db.GetPool().QueryRow(ctx, query, teamID).Scan(
		&rating.TeamID, &rating.Rating, &rating.GamesPlayed, &rating.LastUpdated,
	)
	if err == pgx.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team rating: %w", err)
	}

	return rating, nil
}

// GetMany retrieves ratings for a set of teams in one round trip. Teams with
// no stored rating are simply absent from the result map.
func (r *PostgresTeamRatingRepository) GetMany(ctx context.Context, teamIDs []string) (map[string]*models.TeamRating, error) {
	if len(teamIDs) == 0 {
		return map[string]*models.TeamRating{}, nil
	}

	query := `
		SELECT team_id, rating, games_played, last_updated
		FROM team_ratings WHERE team_id = ANY($1)
	`

	rows, err := r.db.GetPool().Query(ctx, query, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query team ratings: %w", err)
	}
	defer rows.Close()

	ratings := make(map[string]*models.TeamRating, len(teamIDs))
	for rows.Next() {
		rating := &models.TeamRating{}
		err := rows.Scan(&rating.TeamID, &rating.Rating, &rating.GamesPlayed, &rating.LastUpdated)
		if err != nil {
			return nil, fmt.Errorf(errScanRating, err)
		}
		ratings[rating.TeamID] = rating
	}

	return ratings, rows.Err()
}

// Upsert inserts or updates a team's rating
func (r *PostgresTeamRatingRepository) Upsert(ctx context.Context, rating *models.TeamRating) error {
	query := `
		INSERT INTO team_ratings (team_id, rating, games_played, last_updated)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (team_id) DO UPDATE SET
			rating = EXCLUDED.rating,
			games_played = EXCLUDED.games_played,
			last_updated = EXCLUDED.last_updated
	`

	_, err := r.db.GetPool().Exec(ctx, query,
		rating.TeamID, rating.Rating, rating.GamesPlayed, rating.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert team rating: %w", err)
	}

	return nil
}

// ListAll retrieves every stored team rating
func (r *PostgresTeamRatingRepository) ListAll(ctx context.Context) ([]*models.TeamRating, error) {
	query := `
		SELECT team_id, rating, games_played, last_updated
		FROM team_ratings ORDER BY rating DESC
	`

	rows, err := r.db.GetPool().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query team ratings: %w", err)
	}
	defer rows.Close()

	var ratings []*models.TeamRating
	for rows.Next() {
		rating := &models.TeamRating{}
		err := rows.Scan(&rating.TeamID, &rating.Rating, &rating.GamesPlayed, &rating.LastUpdated)
		if err != nil {
			return nil, fmt.Errorf(errScanRating, err)
		}
		ratings = append(ratings, rating)
	}

	return ratings, rows.Err()
}
