package swiss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	teamA = 1
	teamB = 2
	teamC = 3
	teamD = 4
)

func fourTeamRoster() []int { return []int{teamA, teamB, teamC, teamD} }

// The reference scenario: A beats B 13-7, C beats D 13-10, A beats C 13-11.
func referenceGames() []GameResult {
	return []GameResult{
		{HomeTeamID: teamA, AwayTeamID: teamB, HomeScore: 13, AwayScore: 7},
		{HomeTeamID: teamC, AwayTeamID: teamD, HomeScore: 13, AwayScore: 10},
		{HomeTeamID: teamA, AwayTeamID: teamC, HomeScore: 13, AwayScore: 11},
	}
}

func TestComputeStandingsReferenceScenario(t *testing.T) {
	stats, warnings := ComputeStandings(fourTeamRoster(), referenceGames())
	require.Empty(t, warnings)
	require.Len(t, stats, 4)

	a := stats[teamA]
	assert.Equal(t, 2, a.Wins)
	assert.Equal(t, 0, a.Losses)
	assert.Equal(t, 8, a.PointDifferential)
	// Buchholz(A) = wins(B) + wins(C) = 0 + 1.
	assert.Equal(t, 1, a.BuchholzScore)
	assert.Equal(t, 5, a.SwissScore)

	b := stats[teamB]
	assert.Equal(t, 0, b.Wins)
	assert.Equal(t, 1, b.Losses)
	assert.Equal(t, -6, b.PointDifferential)

	c := stats[teamC]
	assert.Equal(t, 1, c.Wins)
	assert.Equal(t, 1, c.Losses)
	assert.Equal(t, 1, c.PointDifferential)

	d := stats[teamD]
	assert.Equal(t, 0, d.Wins)
	assert.Equal(t, 1, d.Losses)
	assert.Equal(t, -3, d.PointDifferential)
}

func TestComputeStandingsIdempotent(t *testing.T) {
	first, _ := ComputeStandings(fourTeamRoster(), referenceGames())
	second, _ := ComputeStandings(fourTeamRoster(), referenceGames())
	assert.Equal(t, first, second)
}

func TestComputeStandingsEmptySeason(t *testing.T) {
	stats, warnings := ComputeStandings(fourTeamRoster(), nil)
	require.Empty(t, warnings)
	require.Len(t, stats, 4)
	for teamID, st := range stats {
		assert.Equal(t, &TeamStats{}, st, "team %d", teamID)
	}
}

func TestComputeStandingsUnknownTeamExcluded(t *testing.T) {
	games := append(referenceGames(),
		GameResult{HomeTeamID: teamA, AwayTeamID: 99, HomeScore: 13, AwayScore: 0})

	withBad, warnings := ComputeStandings(fourTeamRoster(), games)
	require.Len(t, warnings, 1)
	assert.Equal(t, 99, warnings[0].TeamID)
	assert.Equal(t, 3, warnings[0].GameIndex)

	// The excluded game contributes nothing: results match the clean set.
	clean, _ := ComputeStandings(fourTeamRoster(), referenceGames())
	assert.Equal(t, clean, withBad)
}

func TestComputeStandingsDrawCreditsNeither(t *testing.T) {
	games := []GameResult{
		{HomeTeamID: teamA, AwayTeamID: teamB, HomeScore: 10, AwayScore: 10},
	}
	stats, _ := ComputeStandings(fourTeamRoster(), games)

	for _, teamID := range []int{teamA, teamB} {
		assert.Equal(t, 0, stats[teamID].Wins, "team %d", teamID)
		assert.Equal(t, 0, stats[teamID].Losses, "team %d", teamID)
		assert.Equal(t, 0, stats[teamID].PointDifferential, "team %d", teamID)
	}
}

func TestComputeStandingsRepeatOpponentCountsTwiceInBuchholz(t *testing.T) {
	games := []GameResult{
		{HomeTeamID: teamA, AwayTeamID: teamB, HomeScore: 13, AwayScore: 7},
		{HomeTeamID: teamB, AwayTeamID: teamA, HomeScore: 13, AwayScore: 7},
		{HomeTeamID: teamB, AwayTeamID: teamC, HomeScore: 13, AwayScore: 7},
	}
	stats, _ := ComputeStandings(fourTeamRoster(), games)

	// A played B twice; B finished with 2 wins, so Buchholz(A) = 4.
	assert.Equal(t, 4, stats[teamA].BuchholzScore)
}

func TestBuchholzConsistency(t *testing.T) {
	games := referenceGames()
	stats, _ := ComputeStandings(fourTeamRoster(), games)

	opponents := map[int][]int{}
	for _, g := range games {
		opponents[g.HomeTeamID] = append(opponents[g.HomeTeamID], g.AwayTeamID)
		opponents[g.AwayTeamID] = append(opponents[g.AwayTeamID], g.HomeTeamID)
	}

	for teamID, st := range stats {
		want := 0
		for _, opp := range opponents[teamID] {
			want += stats[opp].Wins
		}
		assert.Equal(t, want, st.BuchholzScore, "team %d", teamID)
	}
}
