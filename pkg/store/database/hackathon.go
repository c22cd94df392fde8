package database

import (
	"context"
	"time"

	"github.com/hackhub/hackhub/pkg/db"
	"github.com/hackhub/hackhub/pkg/db/models"
	"github.com/hackhub/hackhub/pkg/store"
)

var _ store.HackathonStore = (*hackathonStore)(nil)

type hackathonStore struct{}

// CreateHackathon implements store.HackathonStore.
func (*hackathonStore) CreateHackathon(ctx context.Context, h db.Handler, hk models.Hackathon) (models.Hackathon, error) {
	query := h.Rebind(`
		INSERT INTO
		  hackathons (slug, title, description, rules, prizes, start_date, end_date,
		    registration_deadline, max_team_size, status, created_at, updated_at)
		VALUES
		  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING *
	`)
	var m models.Hackathon
	err := h.GetContext(ctx, &m, query,
		hk.Slug, hk.Title, hk.Description, hk.Rules, hk.Prizes, hk.StartDate, hk.EndDate,
		hk.RegistrationDeadline, hk.MaxTeamSize, hk.Status, hk.CreatedAt, hk.UpdatedAt)
	return m, err //nolint:wrapcheck
}

// GetHackathonByID implements store.HackathonStore.
func (*hackathonStore) GetHackathonByID(ctx context.Context, h db.Handler, id int64) (models.Hackathon, error) {
	var m models.Hackathon
	err := h.GetContext(ctx, &m, h.Rebind(`SELECT * FROM hackathons WHERE id = ?`), id)
	return m, err //nolint:wrapcheck
}

// GetHackathonBySlug implements store.HackathonStore.
func (*hackathonStore) GetHackathonBySlug(ctx context.Context, h db.Handler, slug string) (models.Hackathon, error) {
	var m models.Hackathon
	err := h.GetContext(ctx, &m, h.Rebind(`SELECT * FROM hackathons WHERE slug = ?`), slug)
	return m, err //nolint:wrapcheck
}

// ListHackathons implements store.HackathonStore.
func (*hackathonStore) ListHackathons(ctx context.Context, h db.Handler) ([]models.Hackathon, error) {
	var ms []models.Hackathon
	err := h.SelectContext(ctx, &ms, `SELECT * FROM hackathons ORDER BY start_date DESC, id DESC`)
	return ms, err //nolint:wrapcheck
}

// UpdateHackathon implements store.HackathonStore.
func (*hackathonStore) UpdateHackathon(ctx context.Context, h db.Handler, hk models.Hackathon) error {
	query := h.Rebind(`
		UPDATE hackathons
		SET
		  title = ?,
		  description = ?,
		  rules = ?,
		  prizes = ?,
		  start_date = ?,
		  end_date = ?,
		  registration_deadline = ?,
		  max_team_size = ?,
		  status = ?,
		  updated_at = ?
		WHERE
		  id = ?
	`)
	_, err := h.ExecContext(ctx, query,
		hk.Title, hk.Description, hk.Rules, hk.Prizes, hk.StartDate, hk.EndDate,
		hk.RegistrationDeadline, hk.MaxTeamSize, hk.Status, hk.UpdatedAt, hk.ID)
	return err //nolint:wrapcheck
}

// UpdateHackathonStatus implements store.HackathonStore.
func (*hackathonStore) UpdateHackathonStatus(ctx context.Context, h db.Handler, id int64, status string, updatedAt time.Time) error {
	query := h.Rebind(`UPDATE hackathons SET status = ?, updated_at = ? WHERE id = ?`)
	_, err := h.ExecContext(ctx, query, status, updatedAt, id)
	return err //nolint:wrapcheck
}

// DeleteHackathonByID implements store.HackathonStore.
func (*hackathonStore) DeleteHackathonByID(ctx context.Context, h db.Handler, id int64) error {
	_, err := h.ExecContext(ctx, h.Rebind(`DELETE FROM hackathons WHERE id = ?`), id)
	return err //nolint:wrapcheck
}
