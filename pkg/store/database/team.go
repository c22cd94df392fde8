package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/db"
	"github.com/hackhub/hackhub/pkg/db/models"
	"github.com/hackhub/hackhub/pkg/store"
)

var _ store.TeamStore = (*teamStore)(nil)

type teamStore struct{}

// CreateTeam implements store.TeamStore.
func (*teamStore) CreateTeam(ctx context.Context, h db.Handler, t models.Team) (models.Team, error) {
	query := h.Rebind(`
		INSERT INTO
		  teams (name, description, captain_id, looking_for, status, created_at, updated_at)
		VALUES
		  (?, ?, ?, ?, ?, ?, ?) RETURNING *
	`)
	var team models.Team
	err := h.GetContext(ctx, &team, query, t.Name, t.Description, t.CaptainID, t.LookingFor, t.Status, t.CreatedAt, t.UpdatedAt)
	return team, err //nolint:wrapcheck
}

// GetTeamByID implements store.TeamStore.
func (*teamStore) GetTeamByID(ctx context.Context, h db.Handler, id int64) (models.Team, error) {
	var team models.Team
	err := h.GetContext(ctx, &team, h.Rebind(`SELECT * FROM teams WHERE id = ?`), id)
	return team, err //nolint:wrapcheck
}

// GetTeamByCaptainID implements store.TeamStore.
func (*teamStore) GetTeamByCaptainID(ctx context.Context, h db.Handler, captain uuid.UUID) (models.Team, error) {
	var team models.Team
	err := h.GetContext(ctx, &team, h.Rebind(`SELECT * FROM teams WHERE captain_id = ?`), captain)
	return team, err //nolint:wrapcheck
}

// ListTeams implements store.TeamStore.
func (*teamStore) ListTeams(ctx context.Context, h db.Handler) ([]models.Team, error) {
	var teams []models.Team
	err := h.SelectContext(ctx, &teams, `SELECT * FROM teams ORDER BY created_at DESC, id DESC`)
	return teams, err //nolint:wrapcheck
}

// UpdateTeam implements store.TeamStore.
func (*teamStore) UpdateTeam(ctx context.Context, h db.Handler, t models.Team) error {
	query := h.Rebind(`
		UPDATE teams
		SET
		  name = ?,
		  description = ?,
		  looking_for = ?,
		  updated_at = ?
		WHERE
		  id = ?
	`)
	_, err := h.ExecContext(ctx, query, t.Name, t.Description, t.LookingFor, t.UpdatedAt, t.ID)
	return err //nolint:wrapcheck
}

// UpdateTeamStatus implements store.TeamStore.
func (*teamStore) UpdateTeamStatus(ctx context.Context, h db.Handler, id int64, status string, updatedAt time.Time) error {
	query := h.Rebind(`UPDATE teams SET status = ?, updated_at = ? WHERE id = ?`)
	_, err := h.ExecContext(ctx, query, status, updatedAt, id)
	return err //nolint:wrapcheck
}

// DeleteTeamByID implements store.TeamStore.
func (*teamStore) DeleteTeamByID(ctx context.Context, h db.Handler, id int64) error {
	_, err := h.ExecContext(ctx, h.Rebind(`DELETE FROM teams WHERE id = ?`), id)
	return err //nolint:wrapcheck
}
