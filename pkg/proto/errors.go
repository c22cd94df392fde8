package proto

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the backend wraps exactly one of these
// so callers can branch with errors.Is.
var (
	// ErrValidation is returned when the input is malformed.
	ErrValidation = errors.New("validation failed")
	// ErrUnauthorized is returned when the user is not authorized to perform action.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when an operation would violate uniqueness.
	ErrConflict = errors.New("conflict")
	// ErrInvalidState is returned when an entity is not in the state the
	// operation expects.
	ErrInvalidState = errors.New("invalid state")
	// ErrInvalidOperation is returned for operations that are never allowed
	// for the actor.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrDeadlinePassed is returned when a deadline has passed.
	ErrDeadlinePassed = errors.New("deadline passed")
	// ErrCapacity is returned when a size limit is exceeded.
	ErrCapacity = errors.New("capacity exceeded")
	// ErrIntegrity is returned when stored data violates an invariant.
	ErrIntegrity = errors.New("integrity violation")
)

var (
	// ErrProfileNotFound is returned when a profile is not found.
	ErrProfileNotFound = fmt.Errorf("profile %w", ErrNotFound)
	// ErrTeamNotFound is returned when a team is not found.
	ErrTeamNotFound = fmt.Errorf("team %w", ErrNotFound)
	// ErrApplicationNotFound is returned when an application is not found.
	ErrApplicationNotFound = fmt.Errorf("application %w", ErrNotFound)
	// ErrHackathonNotFound is returned when a hackathon is not found.
	ErrHackathonNotFound = fmt.Errorf("hackathon %w", ErrNotFound)
	// ErrMemberNotFound is returned when a user is not a member of a team.
	ErrMemberNotFound = fmt.Errorf("member %w", ErrNotFound)
	// ErrWebhookNotFound is returned when a webhook is not found.
	ErrWebhookNotFound = fmt.Errorf("webhook %w", ErrNotFound)

	// ErrNotCaptain is returned when the actor is not the team captain.
	ErrNotCaptain = fmt.Errorf("%w: not the team captain", ErrUnauthorized)
	// ErrForbidden is returned when the actor's role lacks a capability.
	ErrForbidden = fmt.Errorf("%w: insufficient role", ErrUnauthorized)

	// ErrAlreadyInTeam is returned when a user already belongs to a team.
	ErrAlreadyInTeam = fmt.Errorf("%w: user already belongs to a team", ErrConflict)
	// ErrApplicationExists is returned when a pending application already exists.
	ErrApplicationExists = fmt.Errorf("%w: pending application already exists", ErrConflict)
	// ErrAlreadyRegistered is returned when a team is already registered to a hackathon.
	ErrAlreadyRegistered = fmt.Errorf("%w: team already registered", ErrConflict)
	// ErrHackathonExists is returned when a hackathon slug is taken.
	ErrHackathonExists = fmt.Errorf("%w: hackathon already exists", ErrConflict)
	// ErrWebhookExists is returned when a webhook URL is already registered.
	ErrWebhookExists = fmt.Errorf("%w: webhook already exists", ErrConflict)

	// ErrApplicationNotPending is returned when responding to a decided application.
	ErrApplicationNotPending = fmt.Errorf("%w: application is not pending", ErrInvalidState)

	// ErrCaptainCannotLeave is returned when a captain tries to leave their team.
	ErrCaptainCannotLeave = fmt.Errorf("%w: captain cannot leave the team", ErrInvalidOperation)

	// ErrRegistrationClosed is returned after the registration deadline.
	ErrRegistrationClosed = fmt.Errorf("%w: registration is closed", ErrDeadlinePassed)

	// ErrTeamTooLarge is returned when a team exceeds the hackathon's team size.
	ErrTeamTooLarge = fmt.Errorf("%w: team exceeds maximum team size", ErrCapacity)

	// ErrMultipleTeams is returned when a user is found in more than one team.
	ErrMultipleTeams = fmt.Errorf("%w: user belongs to more than one team", ErrIntegrity)
)

// Kind returns the error kind err wraps, or nil if it wraps none.
func Kind(err error) error {
	for _, k := range []error{
		ErrValidation, ErrUnauthorized, ErrNotFound, ErrConflict, ErrInvalidState,
		ErrInvalidOperation, ErrDeadlinePassed, ErrCapacity, ErrIntegrity,
	} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// Validationf returns a validation error with a formatted message.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
