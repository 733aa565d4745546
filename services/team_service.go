package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/recleague/league-system/models"
	"github.com/recleague/league-system/repositories"
	"github.com/recleague/league-system/storage"
)

type CreateTeamInput struct {
	SeasonID int    `json:"season_id"`
	Name     string `json:"name"`
}

type TeamService interface {
	CreateTeam(ctx context.Context, input CreateTeamInput) (*models.Team, error)
	GetTeamByID(ctx context.Context, id int) (*models.Team, error)
	ListTeamsBySeason(ctx context.Context, seasonID int) ([]models.Team, error)
	UpdateTeamName(ctx context.Context, id int, name string) (*models.Team, error)
	UploadLogo(ctx context.Context, teamID int, contentType string, file io.Reader) (*models.Team, error)
	SetPlacement(ctx context.Context, teamID int, placement *int) error
}

type teamService struct {
	teamRepo   repositories.TeamRepository
	seasonRepo repositories.SeasonRepository
	uploader   storage.FileUploader
	logger     *slog.Logger
}

func NewTeamService(
	teamRepo repositories.TeamRepository,
	seasonRepo repositories.SeasonRepository,
	uploader storage.FileUploader,
	logger *slog.Logger,
) TeamService {
	return &teamService{
		teamRepo:   teamRepo,
		seasonRepo: seasonRepo,
		uploader:   uploader,
		logger:     logger,
	}
}

func (s *teamService) populateLogoURL(team *models.Team) {
	if team != nil && team.LogoKey != nil && *team.LogoKey != "" && s.uploader != nil {
		if url := s.uploader.GetPublicURL(*team.LogoKey); url != "" {
			team.LogoURL = &url
		}
	}
}

func (s *teamService) CreateTeam(ctx context.Context, input CreateTeamInput) (*models.Team, error) {
	if input.Name == "" {
		return nil, ErrTeamNameRequired
	}
	if _, err := s.seasonRepo.GetByID(ctx, input.SeasonID); err != nil {
		if errors.Is(err, repositories.ErrSeasonNotFound) {
			return nil, ErrSeasonNotFound
		}
		return nil, err
	}

	team := &models.Team{SeasonID: input.SeasonID, Name: input.Name}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		if errors.Is(err, repositories.ErrTeamNameConflict) {
			return nil, ErrTeamNameConflict
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return team, nil
}

func (s *teamService) GetTeamByID(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	s.populateLogoURL(team)
	return team, nil
}

func (s *teamService) ListTeamsBySeason(ctx context.Context, seasonID int) ([]models.Team, error) {
	if _, err := s.seasonRepo.GetByID(ctx, seasonID); err != nil {
		if errors.Is(err, repositories.ErrSeasonNotFound) {
			return nil, ErrSeasonNotFound
		}
		return nil, err
	}

	teams, err := s.teamRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams for season %d: %w", seasonID, err)
	}
	for i := range teams {
		s.populateLogoURL(&teams[i])
	}
	return teams, nil
}

func (s *teamService) UpdateTeamName(ctx context.Context, id int, name string) (*models.Team, error) {
	if name == "" {
		return nil, ErrTeamNameRequired
	}
	if err := s.teamRepo.UpdateName(ctx, id, name); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTeamNotFound):
			return nil, ErrTeamNotFound
		case errors.Is(err, repositories.ErrTeamNameConflict):
			return nil, ErrTeamNameConflict
		}
		return nil, err
	}
	return s.GetTeamByID(ctx, id)
}

func (s *teamService) UploadLogo(ctx context.Context, teamID int, contentType string, file io.Reader) (*models.Team, error) {
	if s.uploader == nil {
		return nil, ErrUploadsDisabled
	}

	team, err := s.GetTeamByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	ext, err := GetExtensionFromContentType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	key := fmt.Sprintf("teams/%d/logo%s", teamID, ext)
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload logo for team %d: %w", teamID, err)
	}

	oldKey := team.LogoKey
	if err := s.teamRepo.UpdateLogoKey(ctx, teamID, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to store logo key for team %d: %w", teamID, err)
	}

	// Best-effort cleanup of the replaced object.
	if oldKey != nil && *oldKey != "" && *oldKey != result.Key {
		if delErr := s.uploader.Delete(ctx, *oldKey); delErr != nil {
			s.logger.WarnContext(ctx, "failed to delete previous logo",
				slog.Int("team_id", teamID), slog.String("key", *oldKey), slog.Any("error", delErr))
		}
	}

	team.LogoKey = &result.Key
	team.LogoURL = &result.Location
	return team, nil
}

func (s *teamService) SetPlacement(ctx context.Context, teamID int, placement *int) error {
	if err := s.teamRepo.UpdatePlacement(ctx, nil, teamID, placement); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return err
	}
	return nil
}
