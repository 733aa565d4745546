package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/recleague/league-system/models"
)

var (
	ErrTeamNotFound      = errors.New("team not found")
	ErrTeamNameConflict  = errors.New("team name already taken in this season")
	ErrTeamInvalidSeason = errors.New("team references an unknown season")
)

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id int) (*models.Team, error)
	ListBySeason(ctx context.Context, seasonID int) ([]models.Team, error)
	// ListIDsBySeason returns team IDs in registration order. This order is
	// the default Swiss seeding when no explicit seeding has been saved.
	ListIDsBySeason(ctx context.Context, seasonID int) ([]int, error)
	UpdateName(ctx context.Context, id int, name string) error
	UpdateLogoKey(ctx context.Context, id int, logoKey *string) error
	UpdatePlacement(ctx context.Context, exec SQLExecutor, id int, placement *int) error
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func (r *postgresTeamRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func handleTeamError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "unique_violation":
			return ErrTeamNameConflict
		case "foreign_key_violation":
			return ErrTeamInvalidSeason
		}
	}
	return err
}

func (r *postgresTeamRepository) Create(ctx context.Context, team *models.Team) error {
	query := `
		INSERT INTO teams (season_id, name, logo_key)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		team.SeasonID, team.Name, team.LogoKey,
	).Scan(&team.ID, &team.CreatedAt)
	return handleTeamError(err)
}

func (r *postgresTeamRepository) scanTeam(rowScanner interface{ Scan(...interface{}) error }) (*models.Team, error) {
	var t models.Team
	err := rowScanner.Scan(&t.ID, &t.SeasonID, &t.Name, &t.Placement, &t.LogoKey, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *postgresTeamRepository) GetByID(ctx context.Context, id int) (*models.Team, error) {
	query := `
		SELECT id, season_id, name, placement, logo_key, created_at
		FROM teams
		WHERE id = $1`

	return r.scanTeam(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresTeamRepository) ListBySeason(ctx context.Context, seasonID int) ([]models.Team, error) {
	query := `
		SELECT id, season_id, name, placement, logo_key, created_at
		FROM teams
		WHERE season_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, seasonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		t, errScan := r.scanTeam(rows)
		if errScan != nil {
			return nil, errScan
		}
		teams = append(teams, *t)
	}
	return teams, rows.Err()
}

func (r *postgresTeamRepository) ListIDsBySeason(ctx context.Context, seasonID int) ([]int, error) {
	query := `
		SELECT id FROM teams
		WHERE season_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, seasonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *postgresTeamRepository) UpdateName(ctx context.Context, id int, name string) error {
	query := `UPDATE teams SET name = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, name, id)
	if err != nil {
		return handleTeamError(err)
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) UpdateLogoKey(ctx context.Context, id int, logoKey *string) error {
	query := `UPDATE teams SET logo_key = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, logoKey, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}

func (r *postgresTeamRepository) UpdatePlacement(ctx context.Context, exec SQLExecutor, id int, placement *int) error {
	executor := r.getExecutor(exec)
	query := `UPDATE teams SET placement = $1 WHERE id = $2`
	result, err := executor.ExecContext(ctx, query, placement, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrTeamNotFound)
}
