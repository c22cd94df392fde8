package webhook

import (
	"time"

	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/proto"
)

// EventPayload is a webhook event payload.
type EventPayload interface {
	// Event returns the event type.
	// Implements EventPayload.
	Event() Event
	// TeamID returns the team the event concerns.
	// Implements EventPayload.
	TeamID() int64
}

// Common is a common payload.
type Common struct {
	// EventType is the event type.
	EventType Event `json:"event" url:"event"`
	// Team is the team payload.
	Team Team `json:"team" url:"team"`
	// Sender is the user who triggered the event.
	Sender User `json:"sender" url:"sender"`
	// Timestamp is when the event happened.
	Timestamp time.Time `json:"timestamp" url:"timestamp"`
}

// Event returns the event type.
// Implements EventPayload.
func (c Common) Event() Event {
	return c.EventType
}

// TeamID returns the team ID.
// Implements EventPayload.
func (c Common) TeamID() int64 {
	return c.Team.ID
}

// User represents a user in an event.
type User struct {
	// ID is the user ID.
	ID string `json:"id" url:"id"`
}

// Team represents a team in an event.
type Team struct {
	// ID is the team ID.
	ID int64 `json:"id" url:"id"`
	// Name is the team name.
	Name string `json:"name" url:"name"`
	// CaptainID is the captain's user ID.
	CaptainID string `json:"captain_id" url:"captain_id"`
	// Status is the team status.
	Status string `json:"status" url:"status"`
}

func newCommon(event Event, t proto.Team, sender uuid.UUID, at time.Time) Common {
	return Common{
		EventType: event,
		Team: Team{
			ID:        t.ID(),
			Name:      t.Name(),
			CaptainID: t.CaptainID().String(),
			Status:    string(t.Status()),
		},
		Sender:    User{ID: sender.String()},
		Timestamp: at.UTC(),
	}
}
