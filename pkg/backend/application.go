package backend

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/db"
	"github.com/hackhub/hackhub/pkg/db/models"
	"github.com/hackhub/hackhub/pkg/proto"
	"github.com/hackhub/hackhub/pkg/utils"
	"github.com/hackhub/hackhub/pkg/webhook"
)

const maxApplicationMessageLen = 1000

// Apply files a pending application from user to join a team.
func (d *Backend) Apply(ctx context.Context, teamID int64, user uuid.UUID, message string) (proto.Application, error) {
	message, err := utils.ValidateText("message", message, false, maxApplicationMessageLen)
	if err != nil {
		return nil, invalid(err)
	}

	var (
		t models.Team
		m models.Application
	)
	if err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		var err error
		t, err = d.store.GetTeamByID(ctx, tx, teamID)
		if err != nil {
			return notFound(err, proto.ErrTeamNotFound)
		}

		if _, err := d.store.GetTeamSeatByUserID(ctx, tx, user); err == nil {
			return proto.ErrAlreadyInTeam
		} else if !errors.Is(err, db.ErrRecordNotFound) {
			return err
		}

		if _, err := d.store.GetPendingApplication(ctx, tx, teamID, user); err == nil {
			return proto.ErrApplicationExists
		} else if !errors.Is(err, db.ErrRecordNotFound) {
			return err
		}

		now := d.Now()
		m, err = d.store.CreateApplication(ctx, tx, models.Application{
			TeamID:    teamID,
			UserID:    user,
			Message:   message,
			Status:    string(proto.ApplicationPending),
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			if isDuplicate(err) {
				return proto.ErrApplicationExists
			}
			return err
		}

		return nil
	}); err != nil {
		return nil, db.WrapError(err)
	}

	app := application{m}
	applicationsCounter.WithLabelValues(string(proto.ApplicationPending)).Inc()
	d.logger.Info("received application", "team", teamID, "user", user, "application", m.ID)
	d.sendEvent(webhook.NewApplicationEvent(user, team{t}, app, m.CreatedAt))
	return app, nil
}

// Application returns an application by its ID.
func (d *Backend) Application(ctx context.Context, id int64) (proto.Application, error) {
	m, err := d.store.GetApplicationByID(ctx, d.db, id)
	if err != nil {
		return nil, notFound(err, proto.ErrApplicationNotFound)
	}

	return application{m}, nil
}

// ListApplications returns the applications to a team, newest first. Only the
// captain may list them.
func (d *Backend) ListApplications(ctx context.Context, teamID int64, requestor uuid.UUID) ([]proto.Application, error) {
	var ms []models.Application
	if err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		t, err := d.store.GetTeamByID(ctx, tx, teamID)
		if err != nil {
			return notFound(err, proto.ErrTeamNotFound)
		}

		if t.CaptainID != requestor {
			return proto.ErrNotCaptain
		}

		ms, err = d.store.ListApplicationsByTeamID(ctx, tx, teamID)
		return err
	}); err != nil {
		return nil, db.WrapError(err)
	}

	return applications(ms), nil
}

// ListUserApplications returns the applications filed by user, newest first.
func (d *Backend) ListUserApplications(ctx context.Context, user uuid.UUID) ([]proto.Application, error) {
	ms, err := d.store.ListApplicationsByUserID(ctx, d.db, user)
	if err != nil {
		return nil, db.WrapError(err)
	}

	return applications(ms), nil
}

// Respond accepts or rejects a pending application. Accepting seats the
// applicant in the team within the same transaction.
func (d *Backend) Respond(ctx context.Context, id int64, captain uuid.UUID, decision proto.Decision) (proto.Application, error) {
	var status proto.ApplicationStatus
	switch decision {
	case proto.Accept:
		status = proto.ApplicationAccepted
	case proto.Reject:
		status = proto.ApplicationRejected
	default:
		return nil, proto.Validationf("invalid decision %d", decision)
	}

	var (
		t models.Team
		m models.Application
	)
	if err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		var err error
		m, err = d.store.GetApplicationByID(ctx, tx, id)
		if err != nil {
			return notFound(err, proto.ErrApplicationNotFound)
		}

		t, err = d.store.GetTeamByID(ctx, tx, m.TeamID)
		if err != nil {
			return notFound(err, proto.ErrTeamNotFound)
		}

		if t.CaptainID != captain {
			return proto.ErrNotCaptain
		}

		now := d.Now()
		ok, err := d.store.DecideApplication(ctx, tx, id, string(status), now)
		if err != nil {
			return err
		}
		if !ok {
			return proto.ErrApplicationNotPending
		}

		m.Status = string(status)
		m.UpdatedAt = now
		if status != proto.ApplicationAccepted {
			return nil
		}

		if err := d.store.CreateTeamSeat(ctx, tx, models.TeamSeat{
			UserID:    m.UserID,
			TeamID:    t.ID,
			CreatedAt: now,
		}); err != nil {
			if isDuplicate(err) {
				return proto.ErrAlreadyInTeam
			}
			return err
		}

		if err := d.store.AddTeamMember(ctx, tx, t.ID, m.UserID, now); err != nil {
			if isDuplicate(err) {
				return proto.ErrAlreadyInTeam
			}
			return err
		}

		return nil
	}); err != nil {
		return nil, db.WrapError(err)
	}

	app := application{m}
	applicationsCounter.WithLabelValues(string(status)).Inc()
	d.logger.Info("responded to application", "application", id, "team", t.ID, "user", m.UserID, "status", status)
	d.sendEvent(webhook.NewApplicationEvent(captain, team{t}, app, m.UpdatedAt))
	return app, nil
}

func applications(ms []models.Application) []proto.Application {
	apps := make([]proto.Application, len(ms))
	for i, m := range ms {
		apps[i] = application{m}
	}
	return apps
}

type application struct {
	a models.Application
}

var _ proto.Application = application{}

// ID implements proto.Application.
func (a application) ID() int64 {
	return a.a.ID
}

// TeamID implements proto.Application.
func (a application) TeamID() int64 {
	return a.a.TeamID
}

// UserID implements proto.Application.
func (a application) UserID() uuid.UUID {
	return a.a.UserID
}

// Message implements proto.Application.
func (a application) Message() string {
	return a.a.Message
}

// Status implements proto.Application.
func (a application) Status() proto.ApplicationStatus {
	return proto.ApplicationStatus(a.a.Status)
}

// CreatedAt implements proto.Application.
func (a application) CreatedAt() time.Time {
	return a.a.CreatedAt
}

// UpdatedAt implements proto.Application.
func (a application) UpdatedAt() time.Time {
	return a.a.UpdatedAt
}
