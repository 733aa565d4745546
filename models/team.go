package models

import "time"

type Team struct {
	ID        int       `json:"id" db:"id"`
	SeasonID  int       `json:"season_id" db:"season_id"`
	Name      string    `json:"name" db:"name"`
	Placement *int      `json:"placement,omitempty" db:"placement"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	Season *Season `json:"season,omitempty" db:"-"`

	LogoKey *string `json:"-" db:"logo_key"`
	LogoURL *string `json:"logo_url,omitempty" db:"-"`
}
