package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jnew00/pool-manager-sub000/internal/database"
	"github.com/jnew00/pool-manager-sub000/internal/models"
)

// PostgresGameResultRepository implements GameResultRepository for PostgreSQL
type PostgresGameResultRepository struct {
	db *database.DB
}

// NewPostgresGameResultRepository creates a new game result repository
func NewPostgresGameResultRepository(db *database.DB) GameResultRepository {
	return &PostgresGameResultRepository{db: db}
}

// Insert stores a final score
func (r *PostgresGameResultRepository) Insert(ctx context.Context, result *models.GameResult) error {
	query := `
		INSERT INTO game_results (id, season, week, home_team_id, away_team_id,
			home_score, away_score, closing_spread, played_at, processed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.GetPool().Exec(ctx, query,
		result.ID, result.Season, result.Week, result.HomeTeamID, result.AwayTeamID,
		result.HomeScore, result.AwayScore, result.ClosingSpread, result.PlayedAt, result.Processed,
	)
	if err != nil {
		return fmt.Errorf("failed to insert game result: %w", err)
	}

	return nil
}

// GetUnprocessed retrieves results that have not yet been applied to ratings
func (r *PostgresGameResultRepository) GetUnprocessed(ctx context.Context, limit int) ([]*models.GameResult, error) {
	query := `
		SELECT id, season, week, home_team_id, away_team_id,
		       home_score, away_score, closing_spread, played_at, processed
		FROM game_results
		WHERE processed = false
		ORDER BY played_at ASC
		LIMIT $1
	`

	rows, err := r.db.GetPool().Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query unprocessed results: %w", err)
	}
	defer rows.Close()

	var results []*models.GameResult
	for rows.Next() {
		result := &models.GameResult{}
		err := rows.Scan(
			&result.ID, &result.Season, &result.Week, &result.HomeTeamID, &result.AwayTeamID,
			&result.HomeScore, &result.AwayScore, &result.ClosingSpread, &result.PlayedAt, &result.Processed,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game result: %w", err)
		}
		results = append(results, result)
	}

	return results, rows.Err()
}

// MarkProcessed flags a result as applied to ratings
func (r *PostgresGameResultRepository) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	query := "UPDATE game_results SET processed = true WHERE id = $1"

	commandTag, err := r.db.GetPool().Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark result processed: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

// GetSeasonRecords aggregates per-team win/loss/tie records across a span of
// seasons, used to seed ratings from history.
func (r *PostgresGameResultRepository) GetSeasonRecords(ctx context.Context, firstSeason, lastSeason int) ([]*models.TeamSeasonRecord, error) {
	query := `
		SELECT team_id, season,
		       SUM(CASE WHEN margin > 0 THEN 1 ELSE 0 END) AS wins,
		       SUM(CASE WHEN margin < 0 THEN 1 ELSE 0 END) AS losses,
		       SUM(CASE WHEN margin = 0 THEN 1 ELSE 0 END) AS ties
		FROM (
			SELECT home_team_id AS team_id, season, home_score - away_score AS margin
			FROM game_results WHERE season BETWEEN $1 AND $2
			UNION ALL
			SELECT away_team_id AS team_id, season, away_score - home_score AS margin
			FROM game_results WHERE season BETWEEN $1 AND $2
		) sides
		GROUP BY team_id, season
	`

	rows, err := r.db.GetPool().Query(ctx, query, firstSeason, lastSeason)
	if err != nil {
		return nil, fmt.Errorf("failed to query season records: %w", err)
	}
	defer rows.Close()

	var records []*models.TeamSeasonRecord
	for rows.Next() {
		record := &models.TeamSeasonRecord{}
		err := rows.Scan(&record.TeamID, &record.Season, &record.Wins, &record.Losses, &record.Ties)
		if err != nil {
			return nil, fmt.Errorf("failed to scan season record: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}
