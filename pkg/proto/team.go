package proto

import (
	"time"

	"github.com/google/uuid"
)

// TeamStatus is the lifecycle status of a team.
type TeamStatus string

const (
	// TeamForming is the status of a newly created team.
	TeamForming TeamStatus = "forming"
	// TeamReady is informational; no operation sets it.
	TeamReady TeamStatus = "ready"
	// TeamInHackathon is set once a team is registered to a hackathon.
	TeamInHackathon TeamStatus = "in_hackathon"
)

// Team is an interface representing a team.
type Team interface {
	// ID returns the team's ID.
	ID() int64
	// Name returns the team's name.
	Name() string
	// Description returns the team's description.
	Description() string
	// CaptainID returns the captain's user ID.
	CaptainID() uuid.UUID
	// LookingFor returns the roles the team is recruiting.
	LookingFor() []string
	// Status returns the team's status.
	Status() TeamStatus
	// CreatedAt returns the time the team was created.
	CreatedAt() time.Time
	// UpdatedAt returns the time the team was last updated.
	UpdatedAt() time.Time
}

// TeamPatch holds the mutable team fields. Nil fields are left untouched. A
// non-nil empty LookingFor clears the list.
type TeamPatch struct {
	Name        *string
	Description *string
	LookingFor  []string
}

// Member is an effective member of a team.
type Member struct {
	UserID    uuid.UUID `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Captain   bool      `json:"captain"`
	JoinedAt  time.Time `json:"joined_at"`
}
