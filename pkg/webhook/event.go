package webhook

import (
	"encoding"
	"errors"
)

// Event is a webhook event.
type Event int

const (
	// EventApplicationReceived is sent when a user applies to a team.
	EventApplicationReceived Event = iota + 1
	// EventApplicationAccepted is sent when a captain accepts an application.
	EventApplicationAccepted
	// EventApplicationRejected is sent when a captain rejects an application.
	EventApplicationRejected
	// EventMemberLeft is sent when a member leaves a team.
	EventMemberLeft
	// EventTeamRegistered is sent when a team is registered to a hackathon.
	EventTeamRegistered
)

var events = map[Event]string{
	EventApplicationReceived: "application_received",
	EventApplicationAccepted: "application_accepted",
	EventApplicationRejected: "application_rejected",
	EventMemberLeft:          "member_left",
	EventTeamRegistered:      "team_registered",
}

var parseEvents = map[string]Event{
	"application_received": EventApplicationReceived,
	"application_accepted": EventApplicationAccepted,
	"application_rejected": EventApplicationRejected,
	"member_left":          EventMemberLeft,
	"team_registered":      EventTeamRegistered,
}

// Events returns all events.
func Events() []Event {
	return []Event{
		EventApplicationReceived,
		EventApplicationAccepted,
		EventApplicationRejected,
		EventMemberLeft,
		EventTeamRegistered,
	}
}

// String returns the string representation of the event.
func (e Event) String() string {
	return events[e]
}

// ErrInvalidEvent is returned when the event is invalid.
var ErrInvalidEvent = errors.New("invalid event")

// ParseEvent parses an event string and returns the event.
func ParseEvent(s string) (Event, error) {
	e, ok := parseEvents[s]
	if !ok {
		return -1, ErrInvalidEvent
	}

	return e, nil
}

var (
	_ encoding.TextMarshaler   = Event(0)
	_ encoding.TextUnmarshaler = (*Event)(nil)
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Event) UnmarshalText(text []byte) error {
	ev, err := ParseEvent(string(text))
	if err != nil {
		return err
	}

	*e = ev
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (e Event) MarshalText() (text []byte, err error) {
	ev := e.String()
	if ev == "" {
		return nil, ErrInvalidEvent
	}

	return []byte(ev), nil
}
