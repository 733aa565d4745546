package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/recleague/league-system/models"
	"github.com/recleague/league-system/repositories"
)

type CreateSeasonInput struct {
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type SeasonService interface {
	CreateSeason(ctx context.Context, input CreateSeasonInput) (*models.Season, error)
	GetSeasonByID(ctx context.Context, id int) (*models.Season, error)
	ListSeasons(ctx context.Context) ([]models.Season, error)
	UpdateStatus(ctx context.Context, id int, status models.SeasonStatus) error
}

type seasonService struct {
	seasonRepo repositories.SeasonRepository
}

func NewSeasonService(seasonRepo repositories.SeasonRepository) SeasonService {
	return &seasonService{seasonRepo: seasonRepo}
}

func (s *seasonService) CreateSeason(ctx context.Context, input CreateSeasonInput) (*models.Season, error) {
	if input.Name == "" {
		return nil, ErrSeasonNameRequired
	}
	if !input.StartDate.Before(input.EndDate) {
		return nil, fmt.Errorf("%w: start %s, end %s", ErrSeasonDatesInvalid,
			input.StartDate.Format(time.RFC3339), input.EndDate.Format(time.RFC3339))
	}

	season := &models.Season{
		Name:      input.Name,
		Status:    models.SeasonStatusRegistration,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}
	if err := s.seasonRepo.Create(ctx, season); err != nil {
		return nil, fmt.Errorf("failed to create season: %w", err)
	}
	return season, nil
}

func (s *seasonService) GetSeasonByID(ctx context.Context, id int) (*models.Season, error) {
	season, err := s.seasonRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSeasonNotFound) {
			return nil, ErrSeasonNotFound
		}
		return nil, err
	}
	return season, nil
}

func (s *seasonService) ListSeasons(ctx context.Context) ([]models.Season, error) {
	return s.seasonRepo.List(ctx)
}

func (s *seasonService) UpdateStatus(ctx context.Context, id int, status models.SeasonStatus) error {
	switch status {
	case models.SeasonStatusRegistration, models.SeasonStatusActive,
		models.SeasonStatusPlayoffs, models.SeasonStatusCompleted:
	default:
		return fmt.Errorf("%w: unknown season status %q", ErrValidationFailed, status)
	}

	if err := s.seasonRepo.UpdateStatus(ctx, nil, id, status); err != nil {
		if errors.Is(err, repositories.ErrSeasonNotFound) {
			return ErrSeasonNotFound
		}
		return err
	}
	return nil
}
