package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/recleague/league-system/models"
	"github.com/recleague/league-system/repositories"
	"github.com/recleague/league-system/swiss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSeasonRepo struct {
	seasons map[int]*models.Season
}

func (f *fakeSeasonRepo) Create(_ context.Context, season *models.Season) error {
	season.ID = len(f.seasons) + 1
	f.seasons[season.ID] = season
	return nil
}

func (f *fakeSeasonRepo) GetByID(_ context.Context, id int) (*models.Season, error) {
	season, ok := f.seasons[id]
	if !ok {
		return nil, repositories.ErrSeasonNotFound
	}
	return season, nil
}

func (f *fakeSeasonRepo) List(_ context.Context) ([]models.Season, error) {
	out := make([]models.Season, 0, len(f.seasons))
	for _, s := range f.seasons {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeSeasonRepo) UpdateStatus(_ context.Context, _ repositories.SQLExecutor, id int, status models.SeasonStatus) error {
	season, ok := f.seasons[id]
	if !ok {
		return repositories.ErrSeasonNotFound
	}
	season.Status = status
	return nil
}

type fakeTeamRepo struct {
	teams []models.Team
}

func (f *fakeTeamRepo) Create(_ context.Context, team *models.Team) error {
	team.ID = len(f.teams) + 1
	f.teams = append(f.teams, *team)
	return nil
}

func (f *fakeTeamRepo) GetByID(_ context.Context, id int) (*models.Team, error) {
	for i := range f.teams {
		if f.teams[i].ID == id {
			t := f.teams[i]
			return &t, nil
		}
	}
	return nil, repositories.ErrTeamNotFound
}

func (f *fakeTeamRepo) ListBySeason(_ context.Context, seasonID int) ([]models.Team, error) {
	out := make([]models.Team, 0)
	for _, t := range f.teams {
		if t.SeasonID == seasonID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTeamRepo) ListIDsBySeason(_ context.Context, seasonID int) ([]int, error) {
	ids := make([]int, 0)
	for _, t := range f.teams {
		if t.SeasonID == seasonID {
			ids = append(ids, t.ID)
		}
	}
	return ids, nil
}

func (f *fakeTeamRepo) UpdateName(_ context.Context, id int, name string) error {
	for i := range f.teams {
		if f.teams[i].ID == id {
			f.teams[i].Name = name
			return nil
		}
	}
	return repositories.ErrTeamNotFound
}

func (f *fakeTeamRepo) UpdateLogoKey(_ context.Context, id int, logoKey *string) error {
	for i := range f.teams {
		if f.teams[i].ID == id {
			f.teams[i].LogoKey = logoKey
			return nil
		}
	}
	return repositories.ErrTeamNotFound
}

func (f *fakeTeamRepo) UpdatePlacement(_ context.Context, _ repositories.SQLExecutor, id int, placement *int) error {
	for i := range f.teams {
		if f.teams[i].ID == id {
			f.teams[i].Placement = placement
			return nil
		}
	}
	return repositories.ErrTeamNotFound
}

type fakeGameRepo struct {
	games []models.Game
}

func (f *fakeGameRepo) Create(_ context.Context, game *models.Game) error {
	game.ID = len(f.games) + 1
	f.games = append(f.games, *game)
	return nil
}

func (f *fakeGameRepo) GetByID(_ context.Context, id int) (*models.Game, error) {
	for i := range f.games {
		if f.games[i].ID == id {
			g := f.games[i]
			return &g, nil
		}
	}
	return nil, repositories.ErrGameNotFound
}

func (f *fakeGameRepo) ListBySeason(_ context.Context, seasonID int, _ repositories.ListGamesFilter) ([]models.Game, error) {
	out := make([]models.Game, 0)
	for _, g := range f.games {
		if g.SeasonID == seasonID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGameRepo) ListCompletedRegular(_ context.Context, seasonID int) ([]models.Game, error) {
	out := make([]models.Game, 0)
	for _, g := range f.games {
		if g.SeasonID == seasonID && g.Type == models.GameTypeRegular &&
			g.HomeTeamID != nil && g.AwayTeamID != nil && g.IsCompleted() {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGameRepo) UpdateScore(_ context.Context, _ repositories.SQLExecutor, id int, homeScore, awayScore int) error {
	for i := range f.games {
		if f.games[i].ID == id {
			f.games[i].HomeScore = &homeScore
			f.games[i].AwayScore = &awayScore
			return nil
		}
	}
	return repositories.ErrGameNotFound
}

func (f *fakeGameRepo) UpdateSchedule(_ context.Context, id int, game *models.Game) error {
	for i := range f.games {
		if f.games[i].ID == id {
			f.games[i].HomeTeamID = game.HomeTeamID
			f.games[i].AwayTeamID = game.AwayTeamID
			f.games[i].Field = game.Field
			f.games[i].ScheduledAt = game.ScheduledAt
			return nil
		}
	}
	return repositories.ErrGameNotFound
}

type fakeSeedingRepo struct {
	orders map[int][]int
}

func (f *fakeSeedingRepo) Get(_ context.Context, seasonID int) ([]int, error) {
	order := f.orders[seasonID]
	out := make([]int, len(order))
	copy(out, order)
	return out, nil
}

func (f *fakeSeedingRepo) Replace(_ context.Context, seasonID int, orderedTeamIDs []int) error {
	stored := make([]int, len(orderedTeamIDs))
	copy(stored, orderedTeamIDs)
	f.orders[seasonID] = stored
	return nil
}

type swissFixture struct {
	service  SwissService
	seasons  *fakeSeasonRepo
	teams    *fakeTeamRepo
	games    *fakeGameRepo
	seedings *fakeSeedingRepo
}

func newSwissFixture(teamCount int) *swissFixture {
	seasons := &fakeSeasonRepo{seasons: map[int]*models.Season{
		1: {ID: 1, Name: "Fall 2025", Status: models.SeasonStatusActive},
	}}
	teams := &fakeTeamRepo{}
	for i := 1; i <= teamCount; i++ {
		teams.teams = append(teams.teams, models.Team{ID: i, SeasonID: 1, Name: string(rune('A' + i - 1))})
	}
	games := &fakeGameRepo{}
	seedings := &fakeSeedingRepo{orders: map[int][]int{}}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &swissFixture{
		service:  NewSwissService(seasons, teams, games, seedings, nil, logger),
		seasons:  seasons,
		teams:    teams,
		games:    games,
		seedings: seedings,
	}
}

func (f *swissFixture) addGame(home, away, homeScore, awayScore int) {
	f.games.games = append(f.games.games, models.Game{
		ID:         len(f.games.games) + 1,
		SeasonID:   1,
		HomeTeamID: &home,
		AwayTeamID: &away,
		Type:       models.GameTypeRegular,
		HomeScore:  &homeScore,
		AwayScore:  &awayScore,
	})
}

func TestSwissServiceGetRankingsDefaultSeeding(t *testing.T) {
	f := newSwissFixture(4)
	f.addGame(1, 2, 13, 7)
	f.addGame(3, 4, 13, 10)
	f.addGame(1, 3, 13, 11)

	result, err := f.service.GetRankings(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 3, result.GamesPlayed)
	assert.Nil(t, result.SwissInitialSeeding, "seeding reported only after an explicit save")
	require.Len(t, result.Rankings, 4)

	assert.Equal(t, 1, result.Rankings[0].TeamID)
	assert.Equal(t, 1, result.Rankings[0].Rank)
	assert.Equal(t, 2, result.Rankings[0].Wins)
	assert.Equal(t, 5, result.Rankings[0].SwissScore)
	assert.Equal(t, 8, result.Rankings[0].PointDifferential)
	require.NotNil(t, result.Rankings[0].Team)
	assert.Equal(t, "A", result.Rankings[0].Team.Name)
}

func TestSwissServiceGetRankingsExcludesUnknownTeams(t *testing.T) {
	f := newSwissFixture(4)
	f.addGame(1, 2, 10, 5)
	f.addGame(1, 99, 10, 0)

	result, err := f.service.GetRankings(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, result.GamesPlayed, "game against unknown team does not count")
	for _, r := range result.Rankings {
		if r.TeamID == 1 {
			assert.Equal(t, 1, r.Wins)
			assert.Equal(t, 5, r.PointDifferential)
		}
	}
}

func TestSwissServiceGetRankingsSeasonNotFound(t *testing.T) {
	f := newSwissFixture(4)

	_, err := f.service.GetRankings(context.Background(), 42)
	assert.ErrorIs(t, err, ErrSeasonNotFound)
}

func TestSwissServiceSetSeedingRejectsNonPermutation(t *testing.T) {
	f := newSwissFixture(4)

	err := f.service.SetSeeding(context.Background(), 1, []int{1, 2, 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSeedingInvalid)

	var validationErr *SeedingValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []int{4}, validationErr.Missing)
	assert.Empty(t, f.seedings.orders[1], "rejected write must not touch the store")
}

func TestSwissServiceSetSeedingPersistsAndReports(t *testing.T) {
	f := newSwissFixture(4)

	require.NoError(t, f.service.SetSeeding(context.Background(), 1, []int{4, 3, 2, 1}))
	assert.Equal(t, []int{4, 3, 2, 1}, f.seedings.orders[1])

	result, err := f.service.GetRankings(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 2, 1}, result.SwissInitialSeeding)
}

func TestSwissServiceMoveSeed(t *testing.T) {
	f := newSwissFixture(4)

	order, err := f.service.MoveSeed(context.Background(), 1, 2, SeedMoveUp)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 3, 4}, order)
	assert.Equal(t, []int{2, 1, 3, 4}, f.seedings.orders[1], "move persists the new order")

	order, err = f.service.MoveSeed(context.Background(), 1, 1, SeedMoveUp)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 3, 4}, order, "moving the first seed up is a no-op")

	order, err = f.service.MoveSeed(context.Background(), 1, 4, SeedMoveDown)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 3, 4}, order, "moving the last seed down is a no-op")
}

func TestSwissServiceMoveSeedPositionOutOfRange(t *testing.T) {
	f := newSwissFixture(4)

	_, err := f.service.MoveSeed(context.Background(), 1, 0, SeedMoveUp)
	assert.ErrorIs(t, err, ErrSeedPositionOutOfRange)

	_, err = f.service.MoveSeed(context.Background(), 1, 5, SeedMoveDown)
	assert.ErrorIs(t, err, ErrSeedPositionOutOfRange)
}

func TestSwissServicePairingsForRound(t *testing.T) {
	f := newSwissFixture(12)

	assignments, err := f.service.PairingsForRound(context.Background(), 1, 1)
	require.NoError(t, err)
	require.Len(t, assignments, 3)

	assert.Equal(t, swiss.FieldRed, assignments[0].Field)
	assert.Equal(t, 1, assignments[0].SeedA)
	assert.Equal(t, 2, assignments[0].SeedB)
	require.NotNil(t, assignments[0].TeamA)
	require.NotNil(t, assignments[0].TeamB)
	assert.Equal(t, 1, assignments[0].TeamA.ID)
	assert.Equal(t, 2, assignments[0].TeamB.ID)
}

func TestSwissServicePairingsForRoundIncompleteSeeding(t *testing.T) {
	f := newSwissFixture(4)

	_, err := f.service.PairingsForRound(context.Background(), 1, 3)
	assert.True(t, errors.Is(err, swiss.ErrSeedingIncomplete))
}
