package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/recleague/league-system/models"
)

var ErrSeasonNotFound = errors.New("season not found")

type SeasonRepository interface {
	Create(ctx context.Context, season *models.Season) error
	GetByID(ctx context.Context, id int) (*models.Season, error)
	List(ctx context.Context) ([]models.Season, error)
	UpdateStatus(ctx context.Context, exec SQLExecutor, id int, status models.SeasonStatus) error
}

type postgresSeasonRepository struct {
	db *sql.DB
}

func NewPostgresSeasonRepository(db *sql.DB) SeasonRepository {
	return &postgresSeasonRepository{db: db}
}

func (r *postgresSeasonRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresSeasonRepository) Create(ctx context.Context, season *models.Season) error {
	query := `
		INSERT INTO seasons (name, status, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	return r.db.QueryRowContext(ctx, query,
		season.Name, season.Status, season.StartDate, season.EndDate,
	).Scan(&season.ID, &season.CreatedAt)
}

func (r *postgresSeasonRepository) GetByID(ctx context.Context, id int) (*models.Season, error) {
	query := `
		SELECT id, name, status, start_date, end_date, created_at
		FROM seasons
		WHERE id = $1`

	s := &models.Season{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Status, &s.StartDate, &s.EndDate, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeasonNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *postgresSeasonRepository) List(ctx context.Context) ([]models.Season, error) {
	query := `
		SELECT id, name, status, start_date, end_date, created_at
		FROM seasons
		ORDER BY start_date DESC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seasons := make([]models.Season, 0)
	for rows.Next() {
		var s models.Season
		if err := rows.Scan(&s.ID, &s.Name, &s.Status, &s.StartDate, &s.EndDate, &s.CreatedAt); err != nil {
			return nil, err
		}
		seasons = append(seasons, s)
	}
	return seasons, rows.Err()
}

func (r *postgresSeasonRepository) UpdateStatus(ctx context.Context, exec SQLExecutor, id int, status models.SeasonStatus) error {
	executor := r.getExecutor(exec)
	query := `UPDATE seasons SET status = $1 WHERE id = $2`

	result, err := executor.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrSeasonNotFound)
}
