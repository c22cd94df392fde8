package backend

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/access"
	"github.com/hackhub/hackhub/pkg/db"
	"github.com/hackhub/hackhub/pkg/db/models"
	"github.com/hackhub/hackhub/pkg/proto"
	"github.com/hackhub/hackhub/pkg/utils"
)

const (
	minSkills  = 3
	maxSkills  = 10
	maxRoles   = 3
	maxNameLen = 100
)

// Profile returns the profile of a user.
func (d *Backend) Profile(ctx context.Context, user uuid.UUID) (proto.Profile, error) {
	m, err := d.store.GetProfileByUserID(ctx, d.db, user)
	if err != nil {
		return nil, notFound(err, proto.ErrProfileNotFound)
	}

	return profile{m}, nil
}

// EnsureProfile returns the profile of a user, creating an empty one on first
// sight.
func (d *Backend) EnsureProfile(ctx context.Context, user uuid.UUID) (proto.Profile, error) {
	var m models.Profile
	err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		var err error
		m, err = d.store.GetProfileByUserID(ctx, tx, user)
		if err == nil {
			return nil
		}
		if !errors.Is(err, db.ErrRecordNotFound) {
			return err
		}

		now := d.Now()
		m = models.Profile{
			UserID:    user,
			Skills:    models.StringList{},
			Roles:     models.StringList{},
			Role:      access.Participant,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return d.store.CreateProfile(ctx, tx, m)
	})
	if err != nil {
		if isDuplicate(err) {
			// Created concurrently.
			return d.Profile(ctx, user)
		}
		return nil, db.WrapError(err)
	}

	return profile{m}, nil
}

// UpdateProfile applies a partial update to the actor's profile.
func (d *Backend) UpdateProfile(ctx context.Context, actor uuid.UUID, patch proto.ProfilePatch) (proto.Profile, error) {
	var m models.Profile
	if err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		var err error
		m, err = d.store.GetProfileByUserID(ctx, tx, actor)
		if err != nil {
			return notFound(err, proto.ErrProfileNotFound)
		}

		if err := applyProfilePatch(&m, patch); err != nil {
			return err
		}

		m.Completed = isProfileComplete(m)
		m.UpdatedAt = d.Now()
		return d.store.UpdateProfile(ctx, tx, m)
	}); err != nil {
		return nil, db.WrapError(err)
	}

	d.logger.Debug("updated profile", "user", actor, "completed", m.Completed)
	return profile{m}, nil
}

func applyProfilePatch(m *models.Profile, patch proto.ProfilePatch) error {
	if patch.FirstName != nil {
		v, err := utils.ValidateText("first name", *patch.FirstName, false, maxNameLen)
		if err != nil {
			return invalid(err)
		}
		m.FirstName = v
	}

	if patch.LastName != nil {
		v, err := utils.ValidateText("last name", *patch.LastName, false, maxNameLen)
		if err != nil {
			return invalid(err)
		}
		m.LastName = v
	}

	if patch.Github != nil {
		v, err := utils.ValidateHandle("github", *patch.Github)
		if err != nil {
			return invalid(err)
		}
		m.Github = sql.NullString{String: v, Valid: v != ""}
	}

	if patch.Telegram != nil {
		v, err := utils.ValidateHandle("telegram", *patch.Telegram)
		if err != nil {
			return invalid(err)
		}
		m.Telegram = sql.NullString{String: v, Valid: v != ""}
	}

	if patch.Skills != nil {
		skills := utils.NormalizeTags(patch.Skills, true)
		if len(skills) < minSkills || len(skills) > maxSkills {
			return proto.Validationf("between %d and %d distinct skills are required, got %d", minSkills, maxSkills, len(skills))
		}
		m.Skills = skills
	}

	if patch.Roles != nil {
		roles := utils.NormalizeTags(patch.Roles, true)
		if len(roles) > maxRoles {
			return proto.Validationf("at most %d roles are allowed, got %d", maxRoles, len(roles))
		}
		m.Roles = roles
	}

	if patch.Experience != nil {
		exp := strings.ToLower(strings.TrimSpace(*patch.Experience))
		if exp != "" && !proto.IsExperience(exp) {
			return proto.Validationf("invalid experience level %q", *patch.Experience)
		}
		m.Experience = exp
	}

	return nil
}

func isProfileComplete(m models.Profile) bool {
	return m.FirstName != "" &&
		m.LastName != "" &&
		len(m.Skills) >= minSkills && len(m.Skills) <= maxSkills &&
		proto.IsExperience(m.Experience)
}

// SetRole changes the access role of a user. The actor must be allowed to
// manage roles.
func (d *Backend) SetRole(ctx context.Context, actor, user uuid.UUID, role access.Role) error {
	if role < access.Participant || role > access.Admin {
		return proto.Validationf("%v", access.ErrInvalidRole)
	}

	if err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		if err := d.authorize(ctx, tx, actor, access.ManageRoles); err != nil {
			return err
		}

		if _, err := d.store.GetProfileByUserID(ctx, tx, user); err != nil {
			return notFound(err, proto.ErrProfileNotFound)
		}

		return d.store.SetProfileRole(ctx, tx, user, role, d.Now())
	}); err != nil {
		return db.WrapError(err)
	}

	d.logger.Info("changed user role", "actor", actor, "user", user, "role", role)
	return nil
}

// Role returns the access role of a user. Users without a profile are
// participants.
func (d *Backend) Role(ctx context.Context, user uuid.UUID) (access.Role, error) {
	m, err := d.store.GetProfileByUserID(ctx, d.db, user)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return access.Participant, nil
		}
		return -1, db.WrapError(err)
	}

	return m.Role, nil
}

// PromoteAdmins makes sure every listed user has a profile with the admin
// role.
func (d *Backend) PromoteAdmins(ctx context.Context, users []uuid.UUID) error {
	for _, user := range users {
		p, err := d.EnsureProfile(ctx, user)
		if err != nil {
			return err
		}

		if p.Role() == access.Admin {
			continue
		}

		if err := d.store.SetProfileRole(ctx, d.db, user, access.Admin, d.Now()); err != nil {
			return db.WrapError(err)
		}

		d.logger.Info("promoted initial admin", "user", user)
	}

	return nil
}

type profile struct {
	p models.Profile
}

var _ proto.Profile = profile{}

// UserID implements proto.Profile.
func (p profile) UserID() uuid.UUID {
	return p.p.UserID
}

// FirstName implements proto.Profile.
func (p profile) FirstName() string {
	return p.p.FirstName
}

// LastName implements proto.Profile.
func (p profile) LastName() string {
	return p.p.LastName
}

// Github implements proto.Profile.
func (p profile) Github() string {
	return p.p.Github.String
}

// Telegram implements proto.Profile.
func (p profile) Telegram() string {
	return p.p.Telegram.String
}

// Skills implements proto.Profile.
func (p profile) Skills() []string {
	return p.p.Skills
}

// Roles implements proto.Profile.
func (p profile) Roles() []string {
	return p.p.Roles
}

// Experience implements proto.Profile.
func (p profile) Experience() string {
	return p.p.Experience
}

// Role implements proto.Profile.
func (p profile) Role() access.Role {
	return p.p.Role
}

// IsCompleted implements proto.Profile.
func (p profile) IsCompleted() bool {
	return p.p.Completed
}

// CreatedAt implements proto.Profile.
func (p profile) CreatedAt() time.Time {
	return p.p.CreatedAt
}

// UpdatedAt implements proto.Profile.
func (p profile) UpdatedAt() time.Time {
	return p.p.UpdatedAt
}
