package models

import (
	"time"

	"github.com/google/uuid"
)

// Hackathon represents a hackathon event.
type Hackathon struct {
	ID                   int64     `db:"id"`
	Slug                 string    `db:"slug"`
	Title                string    `db:"title"`
	Description          string    `db:"description"`
	Rules                string    `db:"rules"`
	Prizes               string    `db:"prizes"`
	StartDate            time.Time `db:"start_date"`
	EndDate              time.Time `db:"end_date"`
	RegistrationDeadline time.Time `db:"registration_deadline"`
	MaxTeamSize          int       `db:"max_team_size"`
	Status               string    `db:"status"`
	CreatedAt            time.Time `db:"created_at"`
	UpdatedAt            time.Time `db:"updated_at"`
}

// Registration binds a team to a hackathon.
type Registration struct {
	ID           int64     `db:"id"`
	HackathonID  int64     `db:"hackathon_id"`
	TeamID       int64     `db:"team_id"`
	RegisteredBy uuid.UUID `db:"registered_by"`
	RegisteredAt time.Time `db:"registered_at"`
}
