package proto

import (
	"encoding"
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus is the state of a team application.
type ApplicationStatus string

const (
	// ApplicationPending is the initial state.
	ApplicationPending ApplicationStatus = "pending"
	// ApplicationAccepted is terminal.
	ApplicationAccepted ApplicationStatus = "accepted"
	// ApplicationRejected is terminal.
	ApplicationRejected ApplicationStatus = "rejected"
)

// Application is a user's request to join a team.
type Application interface {
	// ID returns the application's ID.
	ID() int64
	// TeamID returns the team applied to.
	TeamID() int64
	// UserID returns the applicant.
	UserID() uuid.UUID
	// Message returns the applicant's message.
	Message() string
	// Status returns the application's status.
	Status() ApplicationStatus
	// CreatedAt returns the time the application was created.
	CreatedAt() time.Time
	// UpdatedAt returns the time the application was last updated.
	UpdatedAt() time.Time
}

// Decision is a captain's response to an application.
type Decision int

const (
	// Accept admits the applicant.
	Accept Decision = iota
	// Reject declines the applicant.
	Reject
)

// String returns the string representation of the decision.
func (d Decision) String() string {
	switch d {
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	default:
		return "unknown"
	}
}

// ParseDecision parses a decision string.
func ParseDecision(s string) (Decision, error) {
	switch s {
	case "accept":
		return Accept, nil
	case "reject":
		return Reject, nil
	default:
		return -1, Validationf("invalid decision %q", s)
	}
}

var _ encoding.TextUnmarshaler = (*Decision)(nil)

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decision) UnmarshalText(text []byte) error {
	v, err := ParseDecision(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
