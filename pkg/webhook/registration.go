package webhook

import (
	"time"

	"github.com/hackhub/hackhub/pkg/proto"
)

// RegistrationEvent is sent when a team is registered to a hackathon.
type RegistrationEvent struct {
	Common

	// Hackathon is the hackathon payload.
	Hackathon Hackathon `json:"hackathon" url:"hackathon"`
	// RegisteredAt is when the team was registered.
	RegisteredAt time.Time `json:"registered_at" url:"registered_at"`
}

// Hackathon represents a hackathon in an event.
type Hackathon struct {
	// ID is the hackathon ID.
	ID int64 `json:"id" url:"id"`
	// Slug is the hackathon slug.
	Slug string `json:"slug" url:"slug"`
	// Title is the hackathon title.
	Title string `json:"title" url:"title"`
}

// NewRegistrationEvent returns a team registered event.
func NewRegistrationEvent(team proto.Team, hackathon proto.Hackathon, reg proto.Registration) RegistrationEvent {
	return RegistrationEvent{
		Common: newCommon(EventTeamRegistered, team, reg.RegisteredBy(), reg.RegisteredAt()),
		Hackathon: Hackathon{
			ID:    hackathon.ID(),
			Slug:  hackathon.Slug(),
			Title: hackathon.Title(),
		},
		RegisteredAt: reg.RegisteredAt().UTC(),
	}
}
