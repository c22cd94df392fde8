package backend

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/access"
	"github.com/hackhub/hackhub/pkg/db"
	"github.com/hackhub/hackhub/pkg/db/models"
	"github.com/hackhub/hackhub/pkg/proto"
	"github.com/hackhub/hackhub/pkg/utils"
)

const (
	maxTeamNameLen        = 100
	maxTeamDescriptionLen = 2000
)

// CreateTeam creates a new team captained by captain.
func (d *Backend) CreateTeam(ctx context.Context, captain uuid.UUID, name, description string, lookingFor []string) (proto.Team, error) {
	name, err := utils.ValidateText("name", name, true, maxTeamNameLen)
	if err != nil {
		return nil, invalid(err)
	}

	description, err = utils.ValidateText("description", description, true, maxTeamDescriptionLen)
	if err != nil {
		return nil, invalid(err)
	}

	var m models.Team
	if err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		if _, err := d.store.GetTeamSeatByUserID(ctx, tx, captain); err == nil {
			return proto.ErrAlreadyInTeam
		} else if !errors.Is(err, db.ErrRecordNotFound) {
			return err
		}

		now := d.Now()
		m, err = d.store.CreateTeam(ctx, tx, models.Team{
			Name:        name,
			Description: description,
			CaptainID:   captain,
			LookingFor:  utils.NormalizeTags(lookingFor, false),
			Status:      string(proto.TeamForming),
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			if isDuplicate(err) {
				return proto.ErrAlreadyInTeam
			}
			return err
		}

		if err := d.store.CreateTeamSeat(ctx, tx, models.TeamSeat{
			UserID:    captain,
			TeamID:    m.ID,
			Captain:   true,
			CreatedAt: now,
		}); err != nil {
			if isDuplicate(err) {
				return proto.ErrAlreadyInTeam
			}
			return err
		}

		return nil
	}); err != nil {
		return nil, db.WrapError(err)
	}

	teamsCreatedCounter.Inc()
	d.logger.Info("created team", "team", m.ID, "name", m.Name, "captain", captain)
	return team{m}, nil
}

// Team returns a team by its ID.
func (d *Backend) Team(ctx context.Context, id int64) (proto.Team, error) {
	m, err := d.store.GetTeamByID(ctx, d.db, id)
	if err != nil {
		return nil, notFound(err, proto.ErrTeamNotFound)
	}

	return team{m}, nil
}

// ListTeams returns all teams, newest first.
func (d *Backend) ListTeams(ctx context.Context) ([]proto.Team, error) {
	ms, err := d.store.ListTeams(ctx, d.db)
	if err != nil {
		return nil, db.WrapError(err)
	}

	teams := make([]proto.Team, len(ms))
	for i, m := range ms {
		teams[i] = team{m}
	}

	return teams, nil
}

// UpdateTeam applies a partial update to a team. Only the captain may update
// the team.
func (d *Backend) UpdateTeam(ctx context.Context, id int64, actor uuid.UUID, patch proto.TeamPatch) (proto.Team, error) {
	var m models.Team
	if err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		var err error
		m, err = d.store.GetTeamByID(ctx, tx, id)
		if err != nil {
			return notFound(err, proto.ErrTeamNotFound)
		}

		if m.CaptainID != actor {
			return proto.ErrNotCaptain
		}

		if patch.Name != nil {
			m.Name, err = utils.ValidateText("name", *patch.Name, true, maxTeamNameLen)
			if err != nil {
				return invalid(err)
			}
		}

		if patch.Description != nil {
			m.Description, err = utils.ValidateText("description", *patch.Description, true, maxTeamDescriptionLen)
			if err != nil {
				return invalid(err)
			}
		}

		if patch.LookingFor != nil {
			m.LookingFor = utils.NormalizeTags(patch.LookingFor, false)
		}

		m.UpdatedAt = d.Now()
		return d.store.UpdateTeam(ctx, tx, m)
	}); err != nil {
		return nil, db.WrapError(err)
	}

	return team{m}, nil
}

// DeleteTeam deletes a team along with its memberships, applications, and
// registrations. The actor must be the captain or allowed to delete any team.
func (d *Backend) DeleteTeam(ctx context.Context, id int64, actor uuid.UUID) error {
	if err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		m, err := d.store.GetTeamByID(ctx, tx, id)
		if err != nil {
			return notFound(err, proto.ErrTeamNotFound)
		}

		if m.CaptainID != actor {
			if err := d.authorize(ctx, tx, actor, access.DeleteAnyTeam); err != nil {
				return proto.ErrNotCaptain
			}
		}

		if err := d.store.DeleteRegistrationsByTeamID(ctx, tx, id); err != nil {
			return err
		}
		if err := d.store.DeleteApplicationsByTeamID(ctx, tx, id); err != nil {
			return err
		}
		if err := d.store.DeleteTeamMembersByTeamID(ctx, tx, id); err != nil {
			return err
		}
		if err := d.store.DeleteTeamSeatsByTeamID(ctx, tx, id); err != nil {
			return err
		}

		return d.store.DeleteTeamByID(ctx, tx, id)
	}); err != nil {
		return db.WrapError(err)
	}

	d.logger.Info("deleted team", "team", id, "actor", actor)
	return nil
}

type team struct {
	t models.Team
}

var _ proto.Team = team{}

// ID implements proto.Team.
func (t team) ID() int64 {
	return t.t.ID
}

// Name implements proto.Team.
func (t team) Name() string {
	return t.t.Name
}

// Description implements proto.Team.
func (t team) Description() string {
	return t.t.Description
}

// CaptainID implements proto.Team.
func (t team) CaptainID() uuid.UUID {
	return t.t.CaptainID
}

// LookingFor implements proto.Team.
func (t team) LookingFor() []string {
	return t.t.LookingFor
}

// Status implements proto.Team.
func (t team) Status() proto.TeamStatus {
	return proto.TeamStatus(t.t.Status)
}

// CreatedAt implements proto.Team.
func (t team) CreatedAt() time.Time {
	return t.t.CreatedAt
}

// UpdatedAt implements proto.Team.
func (t team) UpdatedAt() time.Time {
	return t.t.UpdatedAt
}
