package swiss

import "sort"

// Ranking is a team's position after sorting standings.
type Ranking struct {
	TeamID int
	Rank   int
	Stats  TeamStats
}

// Rank orders teams by Swiss score, descending, and assigns dense 1..N ranks.
//
// The Swiss score already folds wins and Buchholz together, so no further
// tie-break is layered on top: teams with identical scores keep their seeding
// order relative to each other (stable sort). Teams present in stats but
// absent from the seeding are appended after the seeded teams, in ascending
// team ID order, so the output stays deterministic.
func Rank(seeding []int, stats map[int]*TeamStats) []Ranking {
	seeded := make(map[int]bool, len(seeding))
	ordered := make([]int, 0, len(stats))
	for _, teamID := range seeding {
		if _, ok := stats[teamID]; ok {
			ordered = append(ordered, teamID)
			seeded[teamID] = true
		}
	}

	var unseeded []int
	for teamID := range stats {
		if !seeded[teamID] {
			unseeded = append(unseeded, teamID)
		}
	}
	sort.Ints(unseeded)
	ordered = append(ordered, unseeded...)

	sort.SliceStable(ordered, func(i, j int) bool {
		return stats[ordered[i]].SwissScore > stats[ordered[j]].SwissScore
	})

	rankings := make([]Ranking, len(ordered))
	for i, teamID := range ordered {
		rankings[i] = Ranking{
			TeamID: teamID,
			Rank:   i + 1,
			Stats:  *stats[teamID],
		}
	}
	return rankings
}
