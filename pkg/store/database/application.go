package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/db"
	"github.com/hackhub/hackhub/pkg/db/models"
	"github.com/hackhub/hackhub/pkg/store"
)

var _ store.ApplicationStore = (*applicationStore)(nil)

type applicationStore struct{}

// CreateApplication implements store.ApplicationStore.
func (*applicationStore) CreateApplication(ctx context.Context, h db.Handler, a models.Application) (models.Application, error) {
	query := h.Rebind(`
		INSERT INTO
		  team_applications (team_id, user_id, message, status, created_at, updated_at)
		VALUES
		  (?, ?, ?, ?, ?, ?) RETURNING *
	`)
	var app models.Application
	err := h.GetContext(ctx, &app, query, a.TeamID, a.UserID, a.Message, a.Status, a.CreatedAt, a.UpdatedAt)
	return app, err //nolint:wrapcheck
}

// GetApplicationByID implements store.ApplicationStore.
func (*applicationStore) GetApplicationByID(ctx context.Context, h db.Handler, id int64) (models.Application, error) {
	var app models.Application
	err := h.GetContext(ctx, &app, h.Rebind(`SELECT * FROM team_applications WHERE id = ?`), id)
	return app, err //nolint:wrapcheck
}

// GetPendingApplication implements store.ApplicationStore.
func (*applicationStore) GetPendingApplication(ctx context.Context, h db.Handler, team int64, user uuid.UUID) (models.Application, error) {
	var app models.Application
	query := h.Rebind(`
		SELECT * FROM team_applications
		WHERE
		  team_id = ?
		  AND user_id = ?
		  AND status = 'pending'
	`)
	err := h.GetContext(ctx, &app, query, team, user)
	return app, err //nolint:wrapcheck
}

// ListApplicationsByTeamID implements store.ApplicationStore.
func (*applicationStore) ListApplicationsByTeamID(ctx context.Context, h db.Handler, team int64) ([]models.Application, error) {
	var apps []models.Application
	query := h.Rebind(`SELECT * FROM team_applications WHERE team_id = ? ORDER BY created_at DESC, id DESC`)
	err := h.SelectContext(ctx, &apps, query, team)
	return apps, err //nolint:wrapcheck
}

// ListApplicationsByUserID implements store.ApplicationStore.
func (*applicationStore) ListApplicationsByUserID(ctx context.Context, h db.Handler, user uuid.UUID) ([]models.Application, error) {
	var apps []models.Application
	query := h.Rebind(`SELECT * FROM team_applications WHERE user_id = ? ORDER BY created_at DESC, id DESC`)
	err := h.SelectContext(ctx, &apps, query, user)
	return apps, err //nolint:wrapcheck
}

// DecideApplication implements store.ApplicationStore.
func (*applicationStore) DecideApplication(ctx context.Context, h db.Handler, id int64, status string, updatedAt time.Time) (bool, error) {
	query := h.Rebind(`
		UPDATE team_applications
		SET
		  status = ?,
		  updated_at = ?
		WHERE
		  id = ?
		  AND status = 'pending'
	`)
	res, err := h.ExecContext(ctx, query, status, updatedAt, id)
	if err != nil {
		return false, err //nolint:wrapcheck
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err //nolint:wrapcheck
	}

	return n == 1, nil
}

// DeleteApplicationsByTeamID implements store.ApplicationStore.
func (*applicationStore) DeleteApplicationsByTeamID(ctx context.Context, h db.Handler, team int64) error {
	_, err := h.ExecContext(ctx, h.Rebind(`DELETE FROM team_applications WHERE team_id = ?`), team)
	return err //nolint:wrapcheck
}
