package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/access"
	"github.com/hackhub/hackhub/pkg/db"
	"github.com/hackhub/hackhub/pkg/db/models"
	"github.com/hackhub/hackhub/pkg/store"
	"github.com/jmoiron/sqlx"
)

type profileStore struct{}

var _ store.ProfileStore = (*profileStore)(nil)

// GetProfileByUserID implements store.ProfileStore.
func (*profileStore) GetProfileByUserID(ctx context.Context, h db.Handler, user uuid.UUID) (models.Profile, error) {
	var p models.Profile
	query := h.Rebind(`SELECT * FROM profiles WHERE user_id = ?;`)
	err := h.GetContext(ctx, &p, query, user)
	return p, err //nolint:wrapcheck
}

// GetProfilesByUserIDs implements store.ProfileStore.
func (*profileStore) GetProfilesByUserIDs(ctx context.Context, h db.Handler, users []uuid.UUID) ([]models.Profile, error) {
	var ps []models.Profile
	if len(users) == 0 {
		return ps, nil
	}

	query, args, err := sqlx.In(`SELECT * FROM profiles WHERE user_id IN (?);`, users)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	err = h.SelectContext(ctx, &ps, h.Rebind(query), args...)
	return ps, err //nolint:wrapcheck
}

// CreateProfile implements store.ProfileStore.
func (*profileStore) CreateProfile(ctx context.Context, h db.Handler, p models.Profile) error {
	query := h.Rebind(`INSERT INTO profiles
			(user_id, first_name, last_name, github, telegram, skills, roles, experience, role, completed, created_at, updated_at)
		VALUES
			(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`)
	_, err := h.ExecContext(ctx, query,
		p.UserID, p.FirstName, p.LastName, p.Github, p.Telegram, p.Skills, p.Roles,
		p.Experience, p.Role, p.Completed, p.CreatedAt, p.UpdatedAt)
	return err //nolint:wrapcheck
}

// UpdateProfile implements store.ProfileStore.
func (*profileStore) UpdateProfile(ctx context.Context, h db.Handler, p models.Profile) error {
	query := h.Rebind(`UPDATE profiles SET
			first_name = ?,
			last_name = ?,
			github = ?,
			telegram = ?,
			skills = ?,
			roles = ?,
			experience = ?,
			completed = ?,
			updated_at = ?
		WHERE user_id = ?;`)
	_, err := h.ExecContext(ctx, query,
		p.FirstName, p.LastName, p.Github, p.Telegram, p.Skills, p.Roles,
		p.Experience, p.Completed, p.UpdatedAt, p.UserID)
	return err //nolint:wrapcheck
}

// SetProfileRole implements store.ProfileStore.
func (*profileStore) SetProfileRole(ctx context.Context, h db.Handler, user uuid.UUID, role access.Role, updatedAt time.Time) error {
	query := h.Rebind(`UPDATE profiles SET role = ?, updated_at = ? WHERE user_id = ?;`)
	_, err := h.ExecContext(ctx, query, role, updatedAt, user)
	return err //nolint:wrapcheck
}
