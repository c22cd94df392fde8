package backend

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/db"
	"github.com/hackhub/hackhub/pkg/db/models"
	"github.com/hackhub/hackhub/pkg/proto"
	"github.com/hackhub/hackhub/pkg/webhook"
)

// UserTeam returns the team the user captains or belongs to. It reports
// false when the user has no team and returns proto.ErrMultipleTeams if the
// user shows up in more than one team.
func (d *Backend) UserTeam(ctx context.Context, user uuid.UUID) (proto.Team, bool, error) {
	var (
		m     models.Team
		found bool
	)
	if err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		var candidates []int64
		captained, err := d.store.GetTeamByCaptainID(ctx, tx, user)
		switch {
		case err == nil:
			candidates = append(candidates, captained.ID)
		case !errors.Is(err, db.ErrRecordNotFound):
			return err
		}

		memberships, err := d.store.GetTeamMembershipsByUserID(ctx, tx, user)
		if err != nil {
			return err
		}
		for _, tm := range memberships {
			candidates = append(candidates, tm.TeamID)
		}

		switch len(candidates) {
		case 0:
			return nil
		case 1:
		default:
			d.logger.Error("user found in more than one team", "user", user, "teams", candidates)
			return proto.ErrMultipleTeams
		}

		if captained.ID == candidates[0] {
			m = captained
		} else {
			m, err = d.store.GetTeamByID(ctx, tx, candidates[0])
			if err != nil {
				return notFound(err, proto.ErrTeamNotFound)
			}
		}

		found = true
		return nil
	}); err != nil {
		return nil, false, db.WrapError(err)
	}

	if !found {
		return nil, false, nil
	}

	return team{m}, true, nil
}

// LeaveTeam removes a non-captain member from a team.
func (d *Backend) LeaveTeam(ctx context.Context, id int64, user uuid.UUID) error {
	var m models.Team
	if err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		var err error
		m, err = d.store.GetTeamByID(ctx, tx, id)
		if err != nil {
			return notFound(err, proto.ErrTeamNotFound)
		}

		if m.CaptainID == user {
			return proto.ErrCaptainCannotLeave
		}

		if _, err := d.store.GetTeamMember(ctx, tx, id, user); err != nil {
			return notFound(err, proto.ErrMemberNotFound)
		}

		if err := d.store.RemoveTeamMember(ctx, tx, id, user); err != nil {
			return err
		}

		return d.store.DeleteTeamSeat(ctx, tx, id, user)
	}); err != nil {
		return db.WrapError(err)
	}

	d.logger.Info("member left team", "team", id, "user", user)
	d.sendEvent(webhook.NewMemberLeftEvent(team{m}, user, d.Now()))
	return nil
}

// MemberCount returns the number of effective members of a team, the captain
// included.
func (d *Backend) MemberCount(ctx context.Context, id int64) (int, error) {
	var count int
	if err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		if _, err := d.store.GetTeamByID(ctx, tx, id); err != nil {
			return notFound(err, proto.ErrTeamNotFound)
		}

		var err error
		count, err = d.memberCount(ctx, tx, id)
		return err
	}); err != nil {
		return 0, db.WrapError(err)
	}

	return count, nil
}

func (d *Backend) memberCount(ctx context.Context, h db.Handler, id int64) (int, error) {
	n, err := d.store.CountTeamMembers(ctx, h, id)
	if err != nil {
		return 0, err
	}

	return 1 + n, nil
}

// TeamMembers returns the effective members of a team with their display
// names. The captain comes first, then members in join order.
func (d *Backend) TeamMembers(ctx context.Context, id int64) ([]proto.Member, error) {
	var (
		m       models.Team
		members []models.TeamMember
		names   = map[uuid.UUID]models.Profile{}
	)
	if err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		var err error
		m, err = d.store.GetTeamByID(ctx, tx, id)
		if err != nil {
			return notFound(err, proto.ErrTeamNotFound)
		}

		members, err = d.store.ListTeamMembers(ctx, tx, id)
		if err != nil {
			return err
		}

		users := make([]uuid.UUID, 0, len(members)+1)
		users = append(users, m.CaptainID)
		for _, tm := range members {
			users = append(users, tm.UserID)
		}

		profiles, err := d.store.GetProfilesByUserIDs(ctx, tx, users)
		if err != nil {
			return err
		}
		for _, p := range profiles {
			names[p.UserID] = p
		}

		return nil
	}); err != nil {
		return nil, db.WrapError(err)
	}

	captain := names[m.CaptainID]
	result := make([]proto.Member, 0, len(members)+1)
	result = append(result, proto.Member{
		UserID:    m.CaptainID,
		FirstName: captain.FirstName,
		LastName:  captain.LastName,
		Captain:   true,
		JoinedAt:  m.CreatedAt,
	})
	for _, tm := range members {
		p := names[tm.UserID]
		result = append(result, proto.Member{
			UserID:    tm.UserID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			JoinedAt:  tm.JoinedAt,
		})
	}

	return result, nil
}
