package swiss

import "fmt"

// GameResult is a completed game as consumed by the standings calculator.
// Callers are expected to pre-filter: only regular-season games with both
// scores reported belong here.
type GameResult struct {
	HomeTeamID int
	AwayTeamID int
	HomeScore  int
	AwayScore  int
}

// TeamStats holds the raw per-team statistics standings are built from.
type TeamStats struct {
	Wins              int
	Losses            int
	BuchholzScore     int
	SwissScore        int
	PointDifferential int
}

// IntegrityWarning describes a game that was excluded from the computation
// because it references a team outside the current roster. Non-fatal: the
// caller logs it and the computation continues.
type IntegrityWarning struct {
	GameIndex int
	TeamID    int
}

func (w IntegrityWarning) String() string {
	return fmt.Sprintf("game %d references team %d not in roster, excluded from standings", w.GameIndex, w.TeamID)
}

// ComputeStandings derives wins, losses, Buchholz, Swiss score and point
// differential for every team in the roster from a set of completed games.
//
// The computation is a pure function of its inputs: replaying the same game
// set yields identical output. Buchholz is recomputed over the full game set
// (sum of every opponent's final win count), and the Swiss score weights wins
// double against it: wins*2 + buchholz.
//
// A drawn game credits neither a win nor a loss to either side; the point
// differential contribution is zero either way.
func ComputeStandings(roster []int, games []GameResult) (map[int]*TeamStats, []IntegrityWarning) {
	stats := make(map[int]*TeamStats, len(roster))
	for _, teamID := range roster {
		stats[teamID] = &TeamStats{}
	}

	var warnings []IntegrityWarning
	// Opponents faced, per team, in game order. Duplicates are kept: playing
	// the same opponent twice counts their wins twice in Buchholz.
	opponents := make(map[int][]int, len(roster))

	for i, g := range games {
		home, homeOK := stats[g.HomeTeamID]
		away, awayOK := stats[g.AwayTeamID]
		if !homeOK || !awayOK {
			badTeam := g.HomeTeamID
			if homeOK {
				badTeam = g.AwayTeamID
			}
			warnings = append(warnings, IntegrityWarning{GameIndex: i, TeamID: badTeam})
			continue
		}

		home.PointDifferential += g.HomeScore - g.AwayScore
		away.PointDifferential += g.AwayScore - g.HomeScore

		switch {
		case g.HomeScore > g.AwayScore:
			home.Wins++
			away.Losses++
		case g.AwayScore > g.HomeScore:
			away.Wins++
			home.Losses++
		}

		opponents[g.HomeTeamID] = append(opponents[g.HomeTeamID], g.AwayTeamID)
		opponents[g.AwayTeamID] = append(opponents[g.AwayTeamID], g.HomeTeamID)
	}

	for teamID, st := range stats {
		for _, opp := range opponents[teamID] {
			st.BuchholzScore += stats[opp].Wins
		}
		st.SwissScore = st.Wins*2 + st.BuchholzScore
	}

	return stats, warnings
}
