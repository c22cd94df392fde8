// Package access defines platform roles and the capabilities they grant.
package access

import (
	"database/sql/driver"
	"encoding"
	"errors"
	"fmt"
)

// Role is the platform role of a user.
type Role int

const (
	// Participant is the default role: forms teams and applies to them.
	Participant Role = iota

	// Judge reviews registered teams.
	Judge

	// Organizer manages hackathons.
	Organizer

	// Admin manages everything.
	Admin
)

// String returns the string representation of the role.
func (r Role) String() string {
	switch r {
	case Participant:
		return "participant"
	case Judge:
		return "judge"
	case Organizer:
		return "organizer"
	case Admin:
		return "admin"
	default:
		return "unknown"
	}
}

// ParseRole parses a role string. It returns -1 for unknown roles.
func ParseRole(s string) Role {
	switch s {
	case "participant":
		return Participant
	case "judge":
		return Judge
	case "organizer":
		return Organizer
	case "admin":
		return Admin
	default:
		return Role(-1)
	}
}

var (
	_ encoding.TextMarshaler   = Role(0)
	_ encoding.TextUnmarshaler = (*Role)(nil)
	_ driver.Valuer            = Role(0)
)

// ErrInvalidRole is returned when an invalid role is provided.
var ErrInvalidRole = errors.New("invalid role")

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Role) UnmarshalText(text []byte) error {
	l := ParseRole(string(text))
	if l < 0 {
		return ErrInvalidRole
	}

	*r = l

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() (text []byte, err error) {
	return []byte(r.String()), nil
}

// Value implements driver.Valuer. Roles are stored by name.
func (r Role) Value() (driver.Value, error) {
	if r < Participant || r > Admin {
		return nil, ErrInvalidRole
	}
	return r.String(), nil
}

// Scan implements sql.Scanner.
func (r *Role) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return r.UnmarshalText([]byte(v))
	case []byte:
		return r.UnmarshalText(v)
	default:
		return fmt.Errorf("cannot scan %T into Role", src)
	}
}
