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
	"github.com/hackhub/hackhub/pkg/webhook"
)

// RegisterTeam registers a team for a hackathon. Only the team captain may
// register, before the registration deadline, and only if the team fits the
// hackathon's maximum team size.
func (d *Backend) RegisterTeam(ctx context.Context, hackathonID, teamID int64, actor uuid.UUID) (reg proto.Registration, err error) {
	defer func() {
		registrationsCounter.WithLabelValues(resultLabel(err)).Inc()
	}()

	var (
		t models.Team
		h models.Hackathon
		m models.Registration
	)
	if err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		var err error
		t, err = d.store.GetTeamByID(ctx, tx, teamID)
		if err != nil {
			return notFound(err, proto.ErrTeamNotFound)
		}

		if t.CaptainID != actor {
			return proto.ErrNotCaptain
		}

		h, err = d.hackathon(ctx, tx, hackathonID)
		if err != nil {
			return err
		}

		if _, err := d.store.GetRegistration(ctx, tx, hackathonID, teamID); err == nil {
			return proto.ErrAlreadyRegistered
		} else if !errors.Is(err, db.ErrRecordNotFound) {
			return err
		}

		now := d.Now()
		if now.After(h.RegistrationDeadline) {
			return proto.ErrRegistrationClosed
		}

		count, err := d.memberCount(ctx, tx, teamID)
		if err != nil {
			return err
		}
		if count > h.MaxTeamSize {
			return proto.ErrTeamTooLarge
		}

		m, err = d.store.CreateRegistration(ctx, tx, models.Registration{
			HackathonID:  hackathonID,
			TeamID:       teamID,
			RegisteredBy: actor,
			RegisteredAt: now,
		})
		if err != nil {
			switch {
			case isDuplicate(err):
				return proto.ErrAlreadyRegistered
			case isForeignKey(err):
				return proto.ErrHackathonNotFound
			}
			return err
		}

		t.Status = string(proto.TeamInHackathon)
		t.UpdatedAt = now
		return d.store.UpdateTeamStatus(ctx, tx, teamID, t.Status, now)
	}); err != nil {
		return nil, db.WrapError(err)
	}

	r := registration{m}
	d.logger.Info("registered team", "hackathon", hackathonID, "team", teamID, "actor", actor)
	d.sendEvent(webhook.NewRegistrationEvent(team{t}, hackathon{h}, r))
	return r, nil
}

// IsRegistered reports whether a team is registered for a hackathon.
func (d *Backend) IsRegistered(ctx context.Context, hackathonID, teamID int64) (bool, error) {
	_, err := d.store.GetRegistration(ctx, d.db, hackathonID, teamID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return false, nil
		}
		return false, db.WrapError(err)
	}

	return true, nil
}

// ListRegistrations returns the registrations of a hackathon. The actor must
// be allowed to view registrations.
func (d *Backend) ListRegistrations(ctx context.Context, hackathonID int64, actor uuid.UUID) ([]proto.Registration, error) {
	var ms []models.Registration
	if err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		if err := d.authorize(ctx, tx, actor, access.ViewRegistrations); err != nil {
			return err
		}

		if _, err := d.hackathon(ctx, tx, hackathonID); err != nil {
			return err
		}

		var err error
		ms, err = d.store.ListRegistrationsByHackathonID(ctx, tx, hackathonID)
		return err
	}); err != nil {
		return nil, db.WrapError(err)
	}

	regs := make([]proto.Registration, len(ms))
	for i, m := range ms {
		regs[i] = registration{m}
	}

	return regs, nil
}

type registration struct {
	r models.Registration
}

var _ proto.Registration = registration{}

// ID implements proto.Registration.
func (r registration) ID() int64 {
	return r.r.ID
}

// HackathonID implements proto.Registration.
func (r registration) HackathonID() int64 {
	return r.r.HackathonID
}

// TeamID implements proto.Registration.
func (r registration) TeamID() int64 {
	return r.r.TeamID
}

// RegisteredBy implements proto.Registration.
func (r registration) RegisteredBy() uuid.UUID {
	return r.r.RegisteredBy
}

// RegisteredAt implements proto.Registration.
func (r registration) RegisteredAt() time.Time {
	return r.r.RegisteredAt
}
