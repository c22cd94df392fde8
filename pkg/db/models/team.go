package models

import (
	"time"

	"github.com/google/uuid"
)

// Team represents a hackathon team.
type Team struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	CaptainID   uuid.UUID  `db:"captain_id"`
	LookingFor  StringList `db:"looking_for"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// TeamMember represents a non-captain member of a team.
type TeamMember struct {
	ID       int64     `db:"id"`
	TeamID   int64     `db:"team_id"`
	UserID   uuid.UUID `db:"user_id"`
	JoinedAt time.Time `db:"joined_at"`
}

// TeamSeat is the single team a user occupies, either as captain or member.
type TeamSeat struct {
	UserID    uuid.UUID `db:"user_id"`
	TeamID    int64     `db:"team_id"`
	Captain   bool      `db:"captain"`
	CreatedAt time.Time `db:"created_at"`
}
