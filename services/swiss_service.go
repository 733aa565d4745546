package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/recleague/league-system/models"
	"github.com/recleague/league-system/repositories"
	"github.com/recleague/league-system/swiss"
	"golang.org/x/sync/errgroup"
)

type SeedMoveDirection string

const (
	SeedMoveUp   SeedMoveDirection = "up"
	SeedMoveDown SeedMoveDirection = "down"
)

// FieldAssignment is one resolved pairing-table entry for a round, enriched
// with team details for the admin schedule screen.
type FieldAssignment struct {
	Field swiss.Field  `json:"field"`
	TeamA *models.Team `json:"team_a"`
	TeamB *models.Team `json:"team_b"`
	SeedA int          `json:"seed_a"`
	SeedB int          `json:"seed_b"`
}

type SwissService interface {
	// GetRankings recomputes the season's Swiss standings from scratch:
	// completed regular games in, ranked table out. No caching, so a write
	// is visible on the very next read.
	GetRankings(ctx context.Context, seasonID int) (*models.SwissRankingsResult, error)

	// GetSeeding returns the saved seed order, or the ephemeral default
	// (registration order) when no seeding has been saved yet.
	GetSeeding(ctx context.Context, seasonID int) ([]int, error)

	// SetSeeding validates that the order is a permutation of the season
	// roster and overwrites the stored seeding atomically.
	SetSeeding(ctx context.Context, seasonID int, orderedTeamIDs []int) error

	// MoveSeed swaps the seed at the 1-based position with its neighbor and
	// persists the result. Moving the first seed up or the last seed down is
	// a no-op.
	MoveSeed(ctx context.Context, seasonID, position int, direction SeedMoveDirection) ([]int, error)

	// PairingsForRound resolves the static pairing table against the current
	// seeding for a round (1-4).
	PairingsForRound(ctx context.Context, seasonID, round int) ([]FieldAssignment, error)
}

type swissService struct {
	seasonRepo  repositories.SeasonRepository
	teamRepo    repositories.TeamRepository
	gameRepo    repositories.GameRepository
	seedingRepo repositories.SwissSeedingRepository
	hub         *swiss.Hub
	logger      *slog.Logger
}

func NewSwissService(
	seasonRepo repositories.SeasonRepository,
	teamRepo repositories.TeamRepository,
	gameRepo repositories.GameRepository,
	seedingRepo repositories.SwissSeedingRepository,
	hub *swiss.Hub,
	logger *slog.Logger,
) SwissService {
	return &swissService{
		seasonRepo:  seasonRepo,
		teamRepo:    teamRepo,
		gameRepo:    gameRepo,
		seedingRepo: seedingRepo,
		hub:         hub,
		logger:      logger,
	}
}

func (s *swissService) checkSeasonExists(ctx context.Context, seasonID int) error {
	if _, err := s.seasonRepo.GetByID(ctx, seasonID); err != nil {
		if errors.Is(err, repositories.ErrSeasonNotFound) {
			return ErrSeasonNotFound
		}
		return fmt.Errorf("failed to load season %d: %w", seasonID, err)
	}
	return nil
}

func (s *swissService) GetRankings(ctx context.Context, seasonID int) (*models.SwissRankingsResult, error) {
	if err := s.checkSeasonExists(ctx, seasonID); err != nil {
		return nil, err
	}

	var (
		completedGames []models.Game
		teams          []models.Team
		storedSeeding  []int
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		games, err := s.gameRepo.ListCompletedRegular(gCtx, seasonID)
		if err != nil {
			return fmt.Errorf("failed to list completed games for season %d: %w", seasonID, err)
		}
		completedGames = games
		return nil
	})
	g.Go(func() error {
		list, err := s.teamRepo.ListBySeason(gCtx, seasonID)
		if err != nil {
			return fmt.Errorf("failed to list teams for season %d: %w", seasonID, err)
		}
		teams = list
		return nil
	})
	g.Go(func() error {
		order, err := s.seedingRepo.Get(gCtx, seasonID)
		if err != nil {
			return fmt.Errorf("failed to load seeding for season %d: %w", seasonID, err)
		}
		storedSeeding = order
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	roster := make([]int, len(teams))
	teamsByID := make(map[int]*models.Team, len(teams))
	for i := range teams {
		roster[i] = teams[i].ID
		teamsByID[teams[i].ID] = &teams[i]
	}

	// Registration order stands in for an unsaved seeding; it is never
	// persisted on a read path.
	effectiveSeeding := storedSeeding
	if len(effectiveSeeding) == 0 {
		effectiveSeeding = roster
	}

	results := make([]swiss.GameResult, len(completedGames))
	for i, game := range completedGames {
		results[i] = swiss.GameResult{
			HomeTeamID: *game.HomeTeamID,
			AwayTeamID: *game.AwayTeamID,
			HomeScore:  *game.HomeScore,
			AwayScore:  *game.AwayScore,
		}
	}

	stats, warnings := swiss.ComputeStandings(roster, results)
	for _, w := range warnings {
		s.logger.WarnContext(ctx, "excluded game from standings",
			slog.Int("season_id", seasonID),
			slog.Int("game_id", completedGames[w.GameIndex].ID),
			slog.Int("team_id", w.TeamID))
	}

	ranked := swiss.Rank(effectiveSeeding, stats)
	rankings := make([]models.SwissRanking, len(ranked))
	for i, r := range ranked {
		rankings[i] = models.SwissRanking{
			TeamID:            r.TeamID,
			Rank:              r.Rank,
			Wins:              r.Stats.Wins,
			Losses:            r.Stats.Losses,
			BuchholzScore:     r.Stats.BuchholzScore,
			SwissScore:        r.Stats.SwissScore,
			PointDifferential: r.Stats.PointDifferential,
			Team:              teamsByID[r.TeamID],
		}
	}

	// SwissInitialSeeding is nil until an admin explicitly saves one.
	var initialSeeding []int
	if len(storedSeeding) > 0 {
		initialSeeding = storedSeeding
	}

	return &models.SwissRankingsResult{
		Rankings:            rankings,
		GamesPlayed:         len(completedGames) - len(warnings),
		SwissInitialSeeding: initialSeeding,
	}, nil
}

func (s *swissService) GetSeeding(ctx context.Context, seasonID int) ([]int, error) {
	if err := s.checkSeasonExists(ctx, seasonID); err != nil {
		return nil, err
	}

	order, err := s.seedingRepo.Get(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to load seeding for season %d: %w", seasonID, err)
	}
	if len(order) > 0 {
		return order, nil
	}

	return s.teamRepo.ListIDsBySeason(ctx, seasonID)
}

func (s *swissService) SetSeeding(ctx context.Context, seasonID int, orderedTeamIDs []int) error {
	if err := s.checkSeasonExists(ctx, seasonID); err != nil {
		return err
	}

	roster, err := s.teamRepo.ListIDsBySeason(ctx, seasonID)
	if err != nil {
		return fmt.Errorf("failed to list roster for season %d: %w", seasonID, err)
	}

	if issues := swiss.ValidateSeeding(roster, orderedTeamIDs); issues != nil {
		return &SeedingValidationError{
			SeasonID:   seasonID,
			Missing:    issues.Missing,
			Extra:      issues.Extra,
			Duplicates: issues.Duplicates,
		}
	}

	if err := s.seedingRepo.Replace(ctx, seasonID, orderedTeamIDs); err != nil {
		return fmt.Errorf("failed to save seeding for season %d: %w", seasonID, err)
	}

	s.logger.InfoContext(ctx, "swiss seeding saved",
		slog.Int("season_id", seasonID), slog.Int("teams", len(orderedTeamIDs)))
	s.broadcast(seasonID, swiss.EventSeedingUpdated, orderedTeamIDs)
	return nil
}

func (s *swissService) MoveSeed(ctx context.Context, seasonID, position int, direction SeedMoveDirection) ([]int, error) {
	order, err := s.GetSeeding(ctx, seasonID)
	if err != nil {
		return nil, err
	}
	if position < 1 || position > len(order) {
		return nil, fmt.Errorf("%w: position %d, %d seeds", ErrSeedPositionOutOfRange, position, len(order))
	}

	switch direction {
	case SeedMoveUp:
		order = swiss.MoveUp(order, position-1)
	case SeedMoveDown:
		order = swiss.MoveDown(order, position-1)
	default:
		return nil, fmt.Errorf("%w: unknown direction %q", ErrValidationFailed, direction)
	}

	if err := s.SetSeeding(ctx, seasonID, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *swissService) PairingsForRound(ctx context.Context, seasonID, round int) ([]FieldAssignment, error) {
	seeding, err := s.GetSeeding(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	pairings, err := swiss.PairingsForRound(round)
	if err != nil {
		return nil, err
	}
	matchups, err := swiss.ResolveForRound(round, seeding)
	if err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams for season %d: %w", seasonID, err)
	}
	teamsByID := make(map[int]*models.Team, len(teams))
	for i := range teams {
		teamsByID[teams[i].ID] = &teams[i]
	}

	assignments := make([]FieldAssignment, len(matchups))
	for i, m := range matchups {
		assignments[i] = FieldAssignment{
			Field: m.Field,
			TeamA: teamsByID[m.TeamA],
			TeamB: teamsByID[m.TeamB],
			SeedA: pairings[i].SeedA,
			SeedB: pairings[i].SeedB,
		}
	}
	return assignments, nil
}

func (s *swissService) broadcast(seasonID int, event string, payload interface{}) {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastToRoom(strconv.Itoa(seasonID), swiss.Message{Type: event, Payload: payload})
}
