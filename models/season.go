package models

import "time"

type SeasonStatus string

const (
	SeasonStatusRegistration SeasonStatus = "registration"
	SeasonStatusActive       SeasonStatus = "active"
	SeasonStatusPlayoffs     SeasonStatus = "playoffs"
	SeasonStatusCompleted    SeasonStatus = "completed"
)

type Season struct {
	ID        int          `json:"id" db:"id"`
	Name      string       `json:"name" db:"name"`
	Status    SeasonStatus `json:"status" db:"status"`
	StartDate time.Time    `json:"start_date" db:"start_date"`
	EndDate   time.Time    `json:"end_date" db:"end_date"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`

	Teams []Team `json:"teams,omitempty" db:"-"`
	Games []Game `json:"games,omitempty" db:"-"`
}
