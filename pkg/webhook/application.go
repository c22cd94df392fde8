package webhook

import (
	"time"

	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/proto"
)

// ApplicationEvent is sent when an application is created or decided.
type ApplicationEvent struct {
	Common

	// Application is the application payload.
	Application Application `json:"application" url:"application"`
}

// Application represents an application in an event.
type Application struct {
	// ID is the application ID.
	ID int64 `json:"id" url:"id"`
	// Applicant is the applying user.
	Applicant User `json:"applicant" url:"applicant"`
	// Message is the applicant's message.
	Message string `json:"message" url:"message"`
	// Status is the application status.
	Status string `json:"status" url:"status"`
}

// NewApplicationEvent returns an application event. The event kind follows
// the application status.
func NewApplicationEvent(sender uuid.UUID, team proto.Team, app proto.Application, at time.Time) ApplicationEvent {
	event := EventApplicationReceived
	switch app.Status() {
	case proto.ApplicationAccepted:
		event = EventApplicationAccepted
	case proto.ApplicationRejected:
		event = EventApplicationRejected
	}

	return ApplicationEvent{
		Common: newCommon(event, team, sender, at),
		Application: Application{
			ID:        app.ID(),
			Applicant: User{ID: app.UserID().String()},
			Message:   app.Message(),
			Status:    string(app.Status()),
		},
	}
}
