package models

import (
	"time"

	"github.com/google/uuid"
)

// Application is a request from a user to join a team.
type Application struct {
	ID        int64     `db:"id"`
	TeamID    int64     `db:"team_id"`
	UserID    uuid.UUID `db:"user_id"`
	Message   string    `db:"message"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
