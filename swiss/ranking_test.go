package swiss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankOrdersBySwissScore(t *testing.T) {
	stats := map[int]*TeamStats{
		1: {Wins: 2, BuchholzScore: 1, SwissScore: 5},
		2: {Wins: 0, BuchholzScore: 2, SwissScore: 2},
		3: {Wins: 1, BuchholzScore: 2, SwissScore: 4},
		4: {Wins: 0, BuchholzScore: 1, SwissScore: 1},
	}
	rankings := Rank([]int{1, 2, 3, 4}, stats)
	require.Len(t, rankings, 4)

	order := make([]int, len(rankings))
	for i, r := range rankings {
		order[i] = r.TeamID
	}
	assert.Equal(t, []int{1, 3, 2, 4}, order)
}

func TestRankDensity(t *testing.T) {
	stats := map[int]*TeamStats{}
	seeding := make([]int, 0, 12)
	for teamID := 1; teamID <= 12; teamID++ {
		stats[teamID] = &TeamStats{SwissScore: teamID % 5}
		seeding = append(seeding, teamID)
	}

	rankings := Rank(seeding, stats)
	require.Len(t, rankings, 12)
	for i, r := range rankings {
		assert.Equal(t, i+1, r.Rank)
	}
}

func TestRankTiesKeepSeedingOrder(t *testing.T) {
	stats := map[int]*TeamStats{
		10: {SwissScore: 3},
		20: {SwissScore: 3},
		30: {SwissScore: 3},
	}

	rankings := Rank([]int{20, 30, 10}, stats)
	require.Len(t, rankings, 3)
	assert.Equal(t, 20, rankings[0].TeamID)
	assert.Equal(t, 30, rankings[1].TeamID)
	assert.Equal(t, 10, rankings[2].TeamID)
}

func TestRankUnseededTeamsAppendedDeterministically(t *testing.T) {
	stats := map[int]*TeamStats{
		5: {SwissScore: 0},
		7: {SwissScore: 0},
		9: {SwissScore: 0},
	}

	// Only team 9 is seeded; 5 and 7 follow in ascending ID order.
	rankings := Rank([]int{9}, stats)
	require.Len(t, rankings, 3)
	assert.Equal(t, 9, rankings[0].TeamID)
	assert.Equal(t, 5, rankings[1].TeamID)
	assert.Equal(t, 7, rankings[2].TeamID)
}
