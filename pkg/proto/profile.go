package proto

import (
	"time"

	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/access"
)

// Experience levels.
const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceAdvanced     = "advanced"
	ExperienceExpert       = "expert"
)

// IsExperience reports whether s is a known experience level.
func IsExperience(s string) bool {
	switch s {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced, ExperienceExpert:
		return true
	}
	return false
}

// Profile is an interface representing a participant profile.
type Profile interface {
	// UserID returns the profile owner.
	UserID() uuid.UUID
	// FirstName returns the user's first name.
	FirstName() string
	// LastName returns the user's last name.
	LastName() string
	// Github returns the user's GitHub handle, if any.
	Github() string
	// Telegram returns the user's Telegram handle, if any.
	Telegram() string
	// Skills returns the user's skill tags.
	Skills() []string
	// Roles returns the team roles the user plays.
	Roles() []string
	// Experience returns the user's experience level.
	Experience() string
	// Role returns the user's platform role.
	Role() access.Role
	// IsCompleted returns whether the profile is complete.
	IsCompleted() bool
	// CreatedAt returns the time the profile was created.
	CreatedAt() time.Time
	// UpdatedAt returns the time the profile was last updated.
	UpdatedAt() time.Time
}

// ProfilePatch holds the user-editable profile fields. Nil fields are left
// untouched.
type ProfilePatch struct {
	FirstName  *string
	LastName   *string
	Github     *string
	Telegram   *string
	Skills     []string
	Roles      []string
	Experience *string
}
