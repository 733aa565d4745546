package models

import "time"

type GameType string

const (
	GameTypeRegular GameType = "regular"
	GameTypePlayoff GameType = "playoff"
)

type Game struct {
	ID          int       `json:"id" db:"id"`
	SeasonID    int       `json:"season_id" db:"season_id"`
	HomeTeamID  *int      `json:"home_team_id,omitempty" db:"home_team_id"`
	AwayTeamID  *int      `json:"away_team_id,omitempty" db:"away_team_id"`
	Field       int       `json:"field" db:"field"`
	ScheduledAt time.Time `json:"scheduled_at" db:"scheduled_at"`
	Type        GameType  `json:"type" db:"type"`
	HomeScore   *int      `json:"home_score,omitempty" db:"home_score"`
	AwayScore   *int      `json:"away_score,omitempty" db:"away_score"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	HomeTeam *Team `json:"home_team,omitempty" db:"-"`
	AwayTeam *Team `json:"away_team,omitempty" db:"-"`
}

// IsCompleted reports whether both scores have been submitted. A game with a
// single score recorded is treated the same as an unplayed game everywhere
// standings are concerned.
func (g *Game) IsCompleted() bool {
	return g.HomeScore != nil && g.AwayScore != nil
}
