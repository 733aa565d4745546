package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/recleague/league-system/models"
	"github.com/recleague/league-system/repositories"
	"github.com/recleague/league-system/swiss"
)

type CreateGameInput struct {
	SeasonID    int             `json:"season_id"`
	HomeTeamID  *int            `json:"home_team_id"`
	AwayTeamID  *int            `json:"away_team_id"`
	Field       int             `json:"field"`
	ScheduledAt time.Time       `json:"scheduled_at"`
	Type        models.GameType `json:"type"`
}

type SubmitScoreInput struct {
	HomeScore *int `json:"home_score"`
	AwayScore *int `json:"away_score"`
}

type RescheduleGameInput struct {
	HomeTeamID  *int      `json:"home_team_id"`
	AwayTeamID  *int      `json:"away_team_id"`
	Field       int       `json:"field"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

type GameService interface {
	CreateGame(ctx context.Context, input CreateGameInput) (*models.Game, error)
	GetGameByID(ctx context.Context, id int) (*models.Game, error)
	ListGamesBySeason(ctx context.Context, seasonID int, filter repositories.ListGamesFilter) ([]models.Game, error)
	// SubmitScore records both scores for a game at once; partial submissions
	// are rejected so a game is never left half-reported.
	SubmitScore(ctx context.Context, gameID int, input SubmitScoreInput) (*models.Game, error)
	RescheduleGame(ctx context.Context, gameID int, input RescheduleGameInput) (*models.Game, error)
}

type gameService struct {
	gameRepo   repositories.GameRepository
	seasonRepo repositories.SeasonRepository
	teamRepo   repositories.TeamRepository
	hub        *swiss.Hub
	logger     *slog.Logger
}

func NewGameService(
	gameRepo repositories.GameRepository,
	seasonRepo repositories.SeasonRepository,
	teamRepo repositories.TeamRepository,
	hub *swiss.Hub,
	logger *slog.Logger,
) GameService {
	return &gameService{
		gameRepo:   gameRepo,
		seasonRepo: seasonRepo,
		teamRepo:   teamRepo,
		hub:        hub,
		logger:     logger,
	}
}

func (s *gameService) CreateGame(ctx context.Context, input CreateGameInput) (*models.Game, error) {
	if _, err := s.seasonRepo.GetByID(ctx, input.SeasonID); err != nil {
		if errors.Is(err, repositories.ErrSeasonNotFound) {
			return nil, ErrSeasonNotFound
		}
		return nil, err
	}

	if input.Type != models.GameTypeRegular && input.Type != models.GameTypePlayoff {
		return nil, fmt.Errorf("%w: %q", ErrGameTypeInvalid, input.Type)
	}

	// Teams may be nil (TBD) before scheduling is finalized, but a team that
	// is set must belong to the same season.
	for _, teamID := range []*int{input.HomeTeamID, input.AwayTeamID} {
		if teamID == nil {
			continue
		}
		team, err := s.teamRepo.GetByID(ctx, *teamID)
		if err != nil {
			if errors.Is(err, repositories.ErrTeamNotFound) {
				return nil, ErrTeamNotFound
			}
			return nil, err
		}
		if team.SeasonID != input.SeasonID {
			return nil, fmt.Errorf("%w: team %d belongs to season %d, not %d",
				ErrValidationFailed, team.ID, team.SeasonID, input.SeasonID)
		}
	}

	game := &models.Game{
		SeasonID:    input.SeasonID,
		HomeTeamID:  input.HomeTeamID,
		AwayTeamID:  input.AwayTeamID,
		Field:       input.Field,
		ScheduledAt: input.ScheduledAt,
		Type:        input.Type,
	}
	if err := s.gameRepo.Create(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	s.broadcast(game.SeasonID, swiss.EventGameUpdated, game)
	return game, nil
}

func (s *gameService) GetGameByID(ctx context.Context, id int) (*models.Game, error) {
	game, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return game, nil
}

func (s *gameService) ListGamesBySeason(ctx context.Context, seasonID int, filter repositories.ListGamesFilter) ([]models.Game, error) {
	if _, err := s.seasonRepo.GetByID(ctx, seasonID); err != nil {
		if errors.Is(err, repositories.ErrSeasonNotFound) {
			return nil, ErrSeasonNotFound
		}
		return nil, err
	}
	return s.gameRepo.ListBySeason(ctx, seasonID, filter)
}

func (s *gameService) SubmitScore(ctx context.Context, gameID int, input SubmitScoreInput) (*models.Game, error) {
	if input.HomeScore == nil || input.AwayScore == nil {
		return nil, ErrScoreIncomplete
	}
	if *input.HomeScore < 0 || *input.AwayScore < 0 {
		return nil, ErrScoreNegative
	}

	game, err := s.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.HomeTeamID == nil || game.AwayTeamID == nil {
		return nil, ErrGameTeamsRequired
	}

	if err := s.gameRepo.UpdateScore(ctx, nil, gameID, *input.HomeScore, *input.AwayScore); err != nil {
		return nil, fmt.Errorf("failed to save score for game %d: %w", gameID, err)
	}
	game.HomeScore = input.HomeScore
	game.AwayScore = input.AwayScore

	s.logger.InfoContext(ctx, "score submitted",
		slog.Int("game_id", gameID),
		slog.Int("season_id", game.SeasonID),
		slog.Int("home_score", *input.HomeScore),
		slog.Int("away_score", *input.AwayScore))

	// Rankings are derived, not stored: a score change means every subscribed
	// admin screen should refetch.
	s.broadcast(game.SeasonID, swiss.EventGameUpdated, game)
	s.broadcast(game.SeasonID, swiss.EventRankingsUpdated, nil)
	return game, nil
}

func (s *gameService) RescheduleGame(ctx context.Context, gameID int, input RescheduleGameInput) (*models.Game, error) {
	game, err := s.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	for _, teamID := range []*int{input.HomeTeamID, input.AwayTeamID} {
		if teamID == nil {
			continue
		}
		team, err := s.teamRepo.GetByID(ctx, *teamID)
		if err != nil {
			if errors.Is(err, repositories.ErrTeamNotFound) {
				return nil, ErrTeamNotFound
			}
			return nil, err
		}
		if team.SeasonID != game.SeasonID {
			return nil, fmt.Errorf("%w: team %d belongs to season %d, not %d",
				ErrValidationFailed, team.ID, team.SeasonID, game.SeasonID)
		}
	}

	game.HomeTeamID = input.HomeTeamID
	game.AwayTeamID = input.AwayTeamID
	game.Field = input.Field
	game.ScheduledAt = input.ScheduledAt
	if err := s.gameRepo.UpdateSchedule(ctx, gameID, game); err != nil {
		return nil, fmt.Errorf("failed to reschedule game %d: %w", gameID, err)
	}

	s.broadcast(game.SeasonID, swiss.EventGameUpdated, game)
	return game, nil
}

func (s *gameService) broadcast(seasonID int, event string, payload interface{}) {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastToRoom(strconv.Itoa(seasonID), swiss.Message{Type: event, Payload: payload})
}
