package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/db"
	"github.com/hackhub/hackhub/pkg/db/models"
	"github.com/hackhub/hackhub/pkg/store"
)

var _ store.MembershipStore = (*membershipStore)(nil)

type membershipStore struct{}

// CreateTeamSeat implements store.MembershipStore.
func (*membershipStore) CreateTeamSeat(ctx context.Context, h db.Handler, seat models.TeamSeat) error {
	query := h.Rebind(`
		INSERT INTO
		  team_seats (user_id, team_id, captain, created_at)
		VALUES
		  (?, ?, ?, ?)
	`)
	_, err := h.ExecContext(ctx, query, seat.UserID, seat.TeamID, seat.Captain, seat.CreatedAt)
	return err //nolint:wrapcheck
}

// GetTeamSeatByUserID implements store.MembershipStore.
func (*membershipStore) GetTeamSeatByUserID(ctx context.Context, h db.Handler, user uuid.UUID) (models.TeamSeat, error) {
	var seat models.TeamSeat
	err := h.GetContext(ctx, &seat, h.Rebind(`SELECT * FROM team_seats WHERE user_id = ?`), user)
	return seat, err //nolint:wrapcheck
}

// DeleteTeamSeat implements store.MembershipStore.
func (*membershipStore) DeleteTeamSeat(ctx context.Context, h db.Handler, team int64, user uuid.UUID) error {
	query := h.Rebind(`DELETE FROM team_seats WHERE team_id = ? AND user_id = ?`)
	_, err := h.ExecContext(ctx, query, team, user)
	return err //nolint:wrapcheck
}

// DeleteTeamSeatsByTeamID implements store.MembershipStore.
func (*membershipStore) DeleteTeamSeatsByTeamID(ctx context.Context, h db.Handler, team int64) error {
	_, err := h.ExecContext(ctx, h.Rebind(`DELETE FROM team_seats WHERE team_id = ?`), team)
	return err //nolint:wrapcheck
}

// AddTeamMember implements store.MembershipStore.
func (*membershipStore) AddTeamMember(ctx context.Context, h db.Handler, team int64, user uuid.UUID, joinedAt time.Time) error {
	query := h.Rebind(`
		INSERT INTO
		  team_members (team_id, user_id, joined_at)
		VALUES
		  (?, ?, ?)
	`)
	_, err := h.ExecContext(ctx, query, team, user, joinedAt)
	return err //nolint:wrapcheck
}

// GetTeamMember implements store.MembershipStore.
func (*membershipStore) GetTeamMember(ctx context.Context, h db.Handler, team int64, user uuid.UUID) (models.TeamMember, error) {
	var m models.TeamMember
	query := h.Rebind(`SELECT * FROM team_members WHERE team_id = ? AND user_id = ?`)
	err := h.GetContext(ctx, &m, query, team, user)
	return m, err //nolint:wrapcheck
}

// GetTeamMembershipsByUserID implements store.MembershipStore.
func (*membershipStore) GetTeamMembershipsByUserID(ctx context.Context, h db.Handler, user uuid.UUID) ([]models.TeamMember, error) {
	var ms []models.TeamMember
	query := h.Rebind(`SELECT * FROM team_members WHERE user_id = ? ORDER BY id`)
	err := h.SelectContext(ctx, &ms, query, user)
	return ms, err //nolint:wrapcheck
}

// ListTeamMembers implements store.MembershipStore.
func (*membershipStore) ListTeamMembers(ctx context.Context, h db.Handler, team int64) ([]models.TeamMember, error) {
	var ms []models.TeamMember
	query := h.Rebind(`SELECT * FROM team_members WHERE team_id = ? ORDER BY joined_at, id`)
	err := h.SelectContext(ctx, &ms, query, team)
	return ms, err //nolint:wrapcheck
}

// CountTeamMembers implements store.MembershipStore.
func (*membershipStore) CountTeamMembers(ctx context.Context, h db.Handler, team int64) (int, error) {
	var n int
	err := h.GetContext(ctx, &n, h.Rebind(`SELECT COUNT(*) FROM team_members WHERE team_id = ?`), team)
	return n, err //nolint:wrapcheck
}

// RemoveTeamMember implements store.MembershipStore.
func (*membershipStore) RemoveTeamMember(ctx context.Context, h db.Handler, team int64, user uuid.UUID) error {
	query := h.Rebind(`
		DELETE FROM team_members
		WHERE
		  team_id = ?
		  AND user_id = ?
	`)
	_, err := h.ExecContext(ctx, query, team, user)
	return err //nolint:wrapcheck
}

// DeleteTeamMembersByTeamID implements store.MembershipStore.
func (*membershipStore) DeleteTeamMembersByTeamID(ctx context.Context, h db.Handler, team int64) error {
	_, err := h.ExecContext(ctx, h.Rebind(`DELETE FROM team_members WHERE team_id = ?`), team)
	return err //nolint:wrapcheck
}
