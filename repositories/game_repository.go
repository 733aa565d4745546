package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/recleague/league-system/models"
)

var (
	ErrGameNotFound    = errors.New("game not found")
	ErrGameInvalidTeam = errors.New("game references an unknown team or season")
)

type ListGamesFilter struct {
	Type      *models.GameType
	Completed *bool
	Limit     int
	Offset    int
}

type GameRepository interface {
	Create(ctx context.Context, game *models.Game) error
	GetByID(ctx context.Context, id int) (*models.Game, error)
	ListBySeason(ctx context.Context, seasonID int, filter ListGamesFilter) ([]models.Game, error)
	// ListCompletedRegular returns the season's regular games with both scores
	// reported, the only games the Swiss standings are derived from.
	ListCompletedRegular(ctx context.Context, seasonID int) ([]models.Game, error)
	UpdateScore(ctx context.Context, exec SQLExecutor, id int, homeScore, awayScore int) error
	UpdateSchedule(ctx context.Context, id int, game *models.Game) error
}

type postgresGameRepository struct {
	db *sql.DB
}

func NewPostgresGameRepository(db *sql.DB) GameRepository {
	return &postgresGameRepository{db: db}
}

func (r *postgresGameRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func handleGameError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
		return ErrGameInvalidTeam
	}
	return err
}

func (r *postgresGameRepository) Create(ctx context.Context, game *models.Game) error {
	query := `
		INSERT INTO games (season_id, home_team_id, away_team_id, field, scheduled_at, type, home_score, away_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		game.SeasonID, game.HomeTeamID, game.AwayTeamID, game.Field,
		game.ScheduledAt, game.Type, game.HomeScore, game.AwayScore,
	).Scan(&game.ID, &game.CreatedAt)
	return handleGameError(err)
}

func (r *postgresGameRepository) scanGame(rowScanner interface{ Scan(...interface{}) error }) (*models.Game, error) {
	var g models.Game
	err := rowScanner.Scan(
		&g.ID, &g.SeasonID, &g.HomeTeamID, &g.AwayTeamID, &g.Field,
		&g.ScheduledAt, &g.Type, &g.HomeScore, &g.AwayScore, &g.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return &g, nil
}

const gameColumns = `id, season_id, home_team_id, away_team_id, field, scheduled_at, type, home_score, away_score, created_at`

func (r *postgresGameRepository) GetByID(ctx context.Context, id int) (*models.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE id = $1`
	return r.scanGame(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresGameRepository) ListBySeason(ctx context.Context, seasonID int, filter ListGamesFilter) ([]models.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE season_id = $1`
	args := []interface{}{seasonID}
	argID := 2

	if filter.Type != nil {
		query += fmt.Sprintf(" AND type = $%d", argID)
		args = append(args, *filter.Type)
		argID++
	}
	if filter.Completed != nil {
		if *filter.Completed {
			query += " AND home_score IS NOT NULL AND away_score IS NOT NULL"
		} else {
			query += " AND (home_score IS NULL OR away_score IS NULL)"
		}
	}

	query += " ORDER BY scheduled_at ASC, id ASC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argID)
		args = append(args, filter.Limit)
		argID++
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argID)
		args = append(args, filter.Offset)
	}

	return r.queryGames(ctx, query, args...)
}

func (r *postgresGameRepository) ListCompletedRegular(ctx context.Context, seasonID int) ([]models.Game, error) {
	query := `SELECT ` + gameColumns + `
		FROM games
		WHERE season_id = $1
		  AND type = $2
		  AND home_team_id IS NOT NULL AND away_team_id IS NOT NULL
		  AND home_score IS NOT NULL AND away_score IS NOT NULL
		ORDER BY scheduled_at ASC, id ASC`

	return r.queryGames(ctx, query, seasonID, models.GameTypeRegular)
}

func (r *postgresGameRepository) queryGames(ctx context.Context, query string, args ...interface{}) ([]models.Game, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := make([]models.Game, 0)
	for rows.Next() {
		g, errScan := r.scanGame(rows)
		if errScan != nil {
			return nil, errScan
		}
		games = append(games, *g)
	}
	return games, rows.Err()
}

func (r *postgresGameRepository) UpdateScore(ctx context.Context, exec SQLExecutor, id int, homeScore, awayScore int) error {
	executor := r.getExecutor(exec)
	query := `UPDATE games SET home_score = $1, away_score = $2 WHERE id = $3`

	result, err := executor.ExecContext(ctx, query, homeScore, awayScore, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrGameNotFound)
}

func (r *postgresGameRepository) UpdateSchedule(ctx context.Context, id int, game *models.Game) error {
	query := `
		UPDATE games
		SET home_team_id = $1, away_team_id = $2, field = $3, scheduled_at = $4
		WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query,
		game.HomeTeamID, game.AwayTeamID, game.Field, game.ScheduledAt, id)
	if err != nil {
		return handleGameError(err)
	}
	return checkAffectedRows(result, ErrGameNotFound)
}
