package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/access"
)

// Profile represents a participant profile.
type Profile struct {
	UserID     uuid.UUID      `db:"user_id"`
	FirstName  string         `db:"first_name"`
	LastName   string         `db:"last_name"`
	Github     sql.NullString `db:"github"`
	Telegram   sql.NullString `db:"telegram"`
	Skills     StringList     `db:"skills"`
	Roles      StringList     `db:"roles"`
	Experience string         `db:"experience"`
	Role       access.Role    `db:"role"`
	Completed  bool           `db:"completed"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}
