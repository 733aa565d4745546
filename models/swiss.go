package models

// SwissRanking is a computed row of the admin rankings table. It is never
// persisted; every read recomputes it from the season's completed games.
type SwissRanking struct {
	TeamID            int `json:"team_id"`
	Rank              int `json:"rank"`
	Wins              int `json:"wins"`
	Losses            int `json:"losses"`
	BuchholzScore     int `json:"buchholz_score"`
	SwissScore        int `json:"swiss_score"`
	PointDifferential int `json:"point_differential"`

	Team *Team `json:"team,omitempty"`
}

// SwissRankingsResult is the full payload consumed by the admin rankings screen.
type SwissRankingsResult struct {
	Rankings            []SwissRanking `json:"rankings"`
	GamesPlayed         int            `json:"games_played"`
	SwissInitialSeeding []int          `json:"swiss_initial_seeding"`
}
