package database

import (
	"context"

	"github.com/hackhub/hackhub/pkg/db"
	"github.com/hackhub/hackhub/pkg/db/models"
	"github.com/hackhub/hackhub/pkg/store"
)

var _ store.RegistrationStore = (*registrationStore)(nil)

type registrationStore struct{}

// CreateRegistration implements store.RegistrationStore.
func (*registrationStore) CreateRegistration(ctx context.Context, h db.Handler, r models.Registration) (models.Registration, error) {
	query := h.Rebind(`
		INSERT INTO
		  hackathon_registrations (hackathon_id, team_id, registered_by, registered_at)
		VALUES
		  (?, ?, ?, ?) RETURNING *
	`)
	var m models.Registration
	err := h.GetContext(ctx, &m, query, r.HackathonID, r.TeamID, r.RegisteredBy, r.RegisteredAt)
	return m, err //nolint:wrapcheck
}

// GetRegistration implements store.RegistrationStore.
func (*registrationStore) GetRegistration(ctx context.Context, h db.Handler, hackathon, team int64) (models.Registration, error) {
	var m models.Registration
	query := h.Rebind(`SELECT * FROM hackathon_registrations WHERE hackathon_id = ? AND team_id = ?`)
	err := h.GetContext(ctx, &m, query, hackathon, team)
	return m, err //nolint:wrapcheck
}

// ListRegistrationsByHackathonID implements store.RegistrationStore.
func (*registrationStore) ListRegistrationsByHackathonID(ctx context.Context, h db.Handler, hackathon int64) ([]models.Registration, error) {
	var ms []models.Registration
	query := h.Rebind(`SELECT * FROM hackathon_registrations WHERE hackathon_id = ? ORDER BY registered_at, id`)
	err := h.SelectContext(ctx, &ms, query, hackathon)
	return ms, err //nolint:wrapcheck
}

// DeleteRegistrationsByTeamID implements store.RegistrationStore.
func (*registrationStore) DeleteRegistrationsByTeamID(ctx context.Context, h db.Handler, team int64) error {
	_, err := h.ExecContext(ctx, h.Rebind(`DELETE FROM hackathon_registrations WHERE team_id = ?`), team)
	return err //nolint:wrapcheck
}

// DeleteRegistrationsByHackathonID implements store.RegistrationStore.
func (*registrationStore) DeleteRegistrationsByHackathonID(ctx context.Context, h db.Handler, hackathon int64) error {
	_, err := h.ExecContext(ctx, h.Rebind(`DELETE FROM hackathon_registrations WHERE hackathon_id = ?`), hackathon)
	return err //nolint:wrapcheck
}
