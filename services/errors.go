package services

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services and mapped to HTTP in handlers.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Validation and business-rule errors
	ErrValidationFailed       = errors.New("validation failed")
	ErrTeamNameRequired       = errors.New("team name is required")
	ErrSeasonNameRequired     = errors.New("season name is required")
	ErrSeasonDatesInvalid     = errors.New("season end date must be after start date")
	ErrScoreIncomplete        = errors.New("both home and away scores must be submitted together")
	ErrScoreNegative          = errors.New("scores must be non-negative")
	ErrGameTeamsRequired      = errors.New("a game needs two distinct teams to record a score")
	ErrGameTypeInvalid        = errors.New("invalid game type")
	ErrSeedingInvalid         = errors.New("seeding is not a permutation of the season roster")
	ErrSeedPositionOutOfRange = errors.New("seed position out of range")

	// Conflicts
	ErrUserEmailConflict = errors.New("email address is already in use")
	ErrTeamNameConflict  = errors.New("team name is already in use for this season")

	// ErrUploadsDisabled is returned when object storage is not configured.
	ErrUploadsDisabled = errors.New("logo uploads are disabled: object storage is not configured")

	// Authentication and authorization
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordTooShort   = errors.New("password is too short")

	// Entity-specific not-found errors (more context than the generic one)
	ErrSeasonNotFound = errors.New("season not found")
	ErrTeamNotFound   = errors.New("team not found")
	ErrGameNotFound   = errors.New("game not found")
	ErrUserNotFound   = errors.New("user not found")
)

// SeedingValidationError reports exactly how a proposed seed order diverges
// from the season roster. errors.Is(err, ErrSeedingInvalid) matches it.
type SeedingValidationError struct {
	SeasonID   int
	Missing    []int
	Extra      []int
	Duplicates []int
}

func (e *SeedingValidationError) Error() string {
	return fmt.Sprintf("invalid seeding for season %d: missing teams %v, extra teams %v, duplicate teams %v",
		e.SeasonID, e.Missing, e.Extra, e.Duplicates)
}

func (e *SeedingValidationError) Unwrap() error {
	return ErrSeedingInvalid
}
