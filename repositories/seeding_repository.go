package repositories

import (
	"context"
	"database/sql"
	"fmt"
)

// SwissSeedingRepository persists the admin-saved seed order for a season.
// An unset seeding is represented by an empty slice, not an error: callers
// fall back to registration order.
type SwissSeedingRepository interface {
	Get(ctx context.Context, seasonID int) ([]int, error)
	// Replace overwrites the stored order in a single transaction, so a
	// rejected write leaves the prior seeding untouched and concurrent
	// writers serialize on the store (last committed write wins).
	Replace(ctx context.Context, seasonID int, orderedTeamIDs []int) error
}

type postgresSwissSeedingRepository struct {
	db *sql.DB
}

func NewPostgresSwissSeedingRepository(db *sql.DB) SwissSeedingRepository {
	return &postgresSwissSeedingRepository{db: db}
}

func (r *postgresSwissSeedingRepository) Get(ctx context.Context, seasonID int) ([]int, error) {
	query := `
		SELECT team_id FROM swiss_seedings
		WHERE season_id = $1
		ORDER BY position ASC`

	rows, err := r.db.QueryContext(ctx, query, seasonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	order := make([]int, 0)
	for rows.Next() {
		var teamID int
		if err := rows.Scan(&teamID); err != nil {
			return nil, err
		}
		order = append(order, teamID)
	}
	return order, rows.Err()
}

func (r *postgresSwissSeedingRepository) Replace(ctx context.Context, seasonID int, orderedTeamIDs []int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seeding transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM swiss_seedings WHERE season_id = $1`, seasonID); err != nil {
		return fmt.Errorf("failed to clear prior seeding for season %d: %w", seasonID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO swiss_seedings (season_id, position, team_id)
		VALUES ($1, $2, $3)`)
	if err != nil {
		return fmt.Errorf("failed to prepare seeding insert: %w", err)
	}
	defer stmt.Close()

	for position, teamID := range orderedTeamIDs {
		if _, err := stmt.ExecContext(ctx, seasonID, position+1, teamID); err != nil {
			return fmt.Errorf("failed to insert seed %d (team %d): %w", position+1, teamID, err)
		}
	}

	return tx.Commit()
}
