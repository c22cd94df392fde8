package backend

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/hackhub/hackhub/pkg/access"
	"github.com/hackhub/hackhub/pkg/db"
	"github.com/hackhub/hackhub/pkg/db/models"
	"github.com/hackhub/hackhub/pkg/proto"
	"github.com/hackhub/hackhub/pkg/utils"
)

const (
	maxHackathonTitleLen = 200
	maxHackathonTextLen  = 10000
)

// validateHackathon normalizes opts and checks the date ordering
// deadline <= start <= end.
func validateHackathon(opts *proto.HackathonOptions) error {
	var err error
	if opts.Title, err = utils.ValidateText("title", opts.Title, true, maxHackathonTitleLen); err != nil {
		return invalid(err)
	}
	if opts.Description, err = utils.ValidateText("description", opts.Description, false, maxHackathonTextLen); err != nil {
		return invalid(err)
	}
	if opts.Rules, err = utils.ValidateText("rules", opts.Rules, false, maxHackathonTextLen); err != nil {
		return invalid(err)
	}
	if opts.Prizes, err = utils.ValidateText("prizes", opts.Prizes, false, maxHackathonTextLen); err != nil {
		return invalid(err)
	}

	switch {
	case opts.StartDate.IsZero(), opts.EndDate.IsZero(), opts.RegistrationDeadline.IsZero():
		return proto.Validationf("start date, end date and registration deadline are required")
	case opts.StartDate.After(opts.EndDate):
		return proto.Validationf("start date must not be after end date")
	case opts.RegistrationDeadline.After(opts.StartDate):
		return proto.Validationf("registration deadline must not be after start date")
	case opts.MaxTeamSize < 1:
		return proto.Validationf("max team size must be at least 1")
	}

	opts.StartDate = opts.StartDate.UTC()
	opts.EndDate = opts.EndDate.UTC()
	opts.RegistrationDeadline = opts.RegistrationDeadline.UTC()
	return nil
}

func (d *Backend) hackathonStatus(opts proto.HackathonOptions) proto.HackathonStatus {
	if opts.Draft {
		return proto.HackathonDraft
	}
	return proto.DeriveHackathonStatus("", opts.StartDate, opts.EndDate, d.Now())
}

// CreateHackathon creates a hackathon. The slug is derived from the title.
func (d *Backend) CreateHackathon(ctx context.Context, actor uuid.UUID, opts proto.HackathonOptions) (proto.Hackathon, error) {
	if err := validateHackathon(&opts); err != nil {
		return nil, err
	}

	s := slug.Make(opts.Title)
	if s == "" {
		return nil, proto.Validationf("title %q does not produce a valid slug", opts.Title)
	}

	var m models.Hackathon
	if err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		if err := d.authorize(ctx, tx, actor, access.ManageHackathons); err != nil {
			return err
		}

		now := d.Now()
		var err error
		m, err = d.store.CreateHackathon(ctx, tx, models.Hackathon{
			Slug:                 s,
			Title:                opts.Title,
			Description:          opts.Description,
			Rules:                opts.Rules,
			Prizes:               opts.Prizes,
			StartDate:            opts.StartDate,
			EndDate:              opts.EndDate,
			RegistrationDeadline: opts.RegistrationDeadline,
			MaxTeamSize:          opts.MaxTeamSize,
			Status:               string(d.hackathonStatus(opts)),
			CreatedAt:            now,
			UpdatedAt:            now,
		})
		if err != nil {
			if isDuplicate(err) {
				return proto.ErrHackathonExists
			}
			return err
		}

		return nil
	}); err != nil {
		return nil, db.WrapError(err)
	}

	d.logger.Info("created hackathon", "hackathon", m.ID, "slug", m.Slug, "actor", actor)
	return hackathon{m}, nil
}

// UpdateHackathon replaces the details of a hackathon. The slug is kept.
func (d *Backend) UpdateHackathon(ctx context.Context, actor uuid.UUID, id int64, opts proto.HackathonOptions) (proto.Hackathon, error) {
	if err := validateHackathon(&opts); err != nil {
		return nil, err
	}

	var m models.Hackathon
	if err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		if err := d.authorize(ctx, tx, actor, access.ManageHackathons); err != nil {
			return err
		}

		var err error
		m, err = d.store.GetHackathonByID(ctx, tx, id)
		if err != nil {
			return notFound(err, proto.ErrHackathonNotFound)
		}

		m.Title = opts.Title
		m.Description = opts.Description
		m.Rules = opts.Rules
		m.Prizes = opts.Prizes
		m.StartDate = opts.StartDate
		m.EndDate = opts.EndDate
		m.RegistrationDeadline = opts.RegistrationDeadline
		m.MaxTeamSize = opts.MaxTeamSize
		m.Status = string(d.hackathonStatus(opts))
		m.UpdatedAt = d.Now()
		return d.store.UpdateHackathon(ctx, tx, m)
	}); err != nil {
		return nil, db.WrapError(err)
	}

	d.cache.Delete(id)
	return hackathon{m}, nil
}

// DeleteHackathon deletes a hackathon and its registrations.
func (d *Backend) DeleteHackathon(ctx context.Context, actor uuid.UUID, id int64) error {
	if err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		if err := d.authorize(ctx, tx, actor, access.ManageHackathons); err != nil {
			return err
		}

		if _, err := d.store.GetHackathonByID(ctx, tx, id); err != nil {
			return notFound(err, proto.ErrHackathonNotFound)
		}

		if err := d.store.DeleteRegistrationsByHackathonID(ctx, tx, id); err != nil {
			return err
		}

		return d.store.DeleteHackathonByID(ctx, tx, id)
	}); err != nil {
		return db.WrapError(err)
	}

	d.cache.Delete(id)
	d.logger.Info("deleted hackathon", "hackathon", id, "actor", actor)
	return nil
}

// Hackathon returns a hackathon by its ID. Rows may come from the cache and
// lag behind writes made by other processes.
func (d *Backend) Hackathon(ctx context.Context, id int64) (proto.Hackathon, error) {
	if m, ok := d.cache.Get(id); ok {
		return hackathon{m}, nil
	}

	m, err := d.hackathon(ctx, d.db, id)
	if err != nil {
		return nil, err
	}

	d.cache.Set(m)
	return hackathon{m}, nil
}

// hackathon reads a hackathon from h, bypassing the cache. Operations that
// enforce hackathon rules must use it within their transaction.
func (d *Backend) hackathon(ctx context.Context, h db.Handler, id int64) (models.Hackathon, error) {
	m, err := d.store.GetHackathonByID(ctx, h, id)
	if err != nil {
		return models.Hackathon{}, notFound(err, proto.ErrHackathonNotFound)
	}

	return m, nil
}

// HackathonBySlug returns a hackathon by its slug.
func (d *Backend) HackathonBySlug(ctx context.Context, s string) (proto.Hackathon, error) {
	m, err := d.store.GetHackathonBySlug(ctx, d.db, s)
	if err != nil {
		return nil, notFound(err, proto.ErrHackathonNotFound)
	}

	return hackathon{m}, nil
}

// ListHackathons returns all hackathons, latest start first.
func (d *Backend) ListHackathons(ctx context.Context) ([]proto.Hackathon, error) {
	ms, err := d.store.ListHackathons(ctx, d.db)
	if err != nil {
		return nil, db.WrapError(err)
	}

	hs := make([]proto.Hackathon, len(ms))
	for i, m := range ms {
		hs[i] = hackathon{m}
	}

	return hs, nil
}

// RefreshHackathonStatuses persists the status derived from the current time
// for every non-draft hackathon. It returns the number of hackathons changed.
func (d *Backend) RefreshHackathonStatuses(ctx context.Context) (int, error) {
	var changed []int64
	if err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		ms, err := d.store.ListHackathons(ctx, tx)
		if err != nil {
			return err
		}

		now := d.Now()
		for _, m := range ms {
			current := proto.HackathonStatus(m.Status)
			status := proto.DeriveHackathonStatus(current, m.StartDate, m.EndDate, now)
			if status == current {
				continue
			}

			if err := d.store.UpdateHackathonStatus(ctx, tx, m.ID, string(status), now); err != nil {
				return err
			}

			changed = append(changed, m.ID)
		}

		return nil
	}); err != nil {
		return 0, db.WrapError(err)
	}

	for _, id := range changed {
		d.cache.Delete(id)
	}

	return len(changed), nil
}

type hackathon struct {
	h models.Hackathon
}

var _ proto.Hackathon = hackathon{}

// ID implements proto.Hackathon.
func (h hackathon) ID() int64 {
	return h.h.ID
}

// Slug implements proto.Hackathon.
func (h hackathon) Slug() string {
	return h.h.Slug
}

// Title implements proto.Hackathon.
func (h hackathon) Title() string {
	return h.h.Title
}

// Description implements proto.Hackathon.
func (h hackathon) Description() string {
	return h.h.Description
}

// Rules implements proto.Hackathon.
func (h hackathon) Rules() string {
	return h.h.Rules
}

// Prizes implements proto.Hackathon.
func (h hackathon) Prizes() string {
	return h.h.Prizes
}

// StartDate implements proto.Hackathon.
func (h hackathon) StartDate() time.Time {
	return h.h.StartDate
}

// EndDate implements proto.Hackathon.
func (h hackathon) EndDate() time.Time {
	return h.h.EndDate
}

// RegistrationDeadline implements proto.Hackathon.
func (h hackathon) RegistrationDeadline() time.Time {
	return h.h.RegistrationDeadline
}

// MaxTeamSize implements proto.Hackathon.
func (h hackathon) MaxTeamSize() int {
	return h.h.MaxTeamSize
}

// Status implements proto.Hackathon.
func (h hackathon) Status() proto.HackathonStatus {
	return proto.HackathonStatus(h.h.Status)
}

// CreatedAt implements proto.Hackathon.
func (h hackathon) CreatedAt() time.Time {
	return h.h.CreatedAt
}

// UpdatedAt implements proto.Hackathon.
func (h hackathon) UpdatedAt() time.Time {
	return h.h.UpdatedAt
}
