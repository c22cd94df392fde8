package proto

import (
	"time"

	"github.com/google/uuid"
)

// HackathonStatus is the lifecycle status of a hackathon.
type HackathonStatus string

const (
	// HackathonDraft is set by organizers and never derived.
	HackathonDraft HackathonStatus = "draft"
	// HackathonUpcoming is before the start date.
	HackathonUpcoming HackathonStatus = "upcoming"
	// HackathonActive is between the start and end dates.
	HackathonActive HackathonStatus = "active"
	// HackathonCompleted is after the end date.
	HackathonCompleted HackathonStatus = "completed"
)

// DeriveHackathonStatus returns the status a hackathon should have at now.
func DeriveHackathonStatus(current HackathonStatus, start, end, now time.Time) HackathonStatus {
	switch {
	case current == HackathonDraft:
		return HackathonDraft
	case now.Before(start):
		return HackathonUpcoming
	case now.After(end):
		return HackathonCompleted
	default:
		return HackathonActive
	}
}

// Hackathon is an interface representing a hackathon.
type Hackathon interface {
	// ID returns the hackathon's ID.
	ID() int64
	// Slug returns the URL-safe hackathon name.
	Slug() string
	// Title returns the hackathon's title.
	Title() string
	// Description returns the hackathon's description.
	Description() string
	// Rules returns the hackathon's rules.
	Rules() string
	// Prizes returns the hackathon's prizes.
	Prizes() string
	// StartDate returns when the hackathon starts.
	StartDate() time.Time
	// EndDate returns when the hackathon ends.
	EndDate() time.Time
	// RegistrationDeadline returns the last instant teams may register.
	RegistrationDeadline() time.Time
	// MaxTeamSize returns the maximum number of effective team members.
	MaxTeamSize() int
	// Status returns the hackathon's status.
	Status() HackathonStatus
	// CreatedAt returns the time the hackathon was created.
	CreatedAt() time.Time
	// UpdatedAt returns the time the hackathon was last updated.
	UpdatedAt() time.Time
}

// HackathonOptions are options for creating or updating a hackathon.
type HackathonOptions struct {
	Title                string
	Description          string
	Rules                string
	Prizes               string
	StartDate            time.Time
	EndDate              time.Time
	RegistrationDeadline time.Time
	MaxTeamSize          int
	// Draft keeps the hackathon hidden from status derivation.
	Draft bool
}

// Registration binds a team to a hackathon.
type Registration interface {
	// ID returns the registration's ID.
	ID() int64
	// HackathonID returns the hackathon.
	HackathonID() int64
	// TeamID returns the registered team.
	TeamID() int64
	// RegisteredBy returns the captain who registered the team.
	RegisteredBy() uuid.UUID
	// RegisteredAt returns when the team was registered.
	RegisteredAt() time.Time
}
