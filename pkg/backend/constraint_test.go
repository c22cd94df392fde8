package backend

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/db"
	"github.com/hackhub/hackhub/pkg/db/models"
	"github.com/hackhub/hackhub/pkg/proto"
	"github.com/hackhub/hackhub/pkg/store"
	"github.com/matryer/is"
)

// staleStore answers the read-before-write checks as a concurrent caller
// that has not yet seen the other's commit would, so that writes reach the
// database constraints.
type staleStore struct {
	store.Store
	hackathons map[int64]models.Hackathon
}

func (s staleStore) GetTeamSeatByUserID(context.Context, db.Handler, uuid.UUID) (models.TeamSeat, error) {
	return models.TeamSeat{}, db.ErrRecordNotFound
}

func (s staleStore) GetRegistration(context.Context, db.Handler, int64, int64) (models.Registration, error) {
	return models.Registration{}, db.ErrRecordNotFound
}

func (s staleStore) GetHackathonByID(ctx context.Context, h db.Handler, id int64) (models.Hackathon, error) {
	if m, ok := s.hackathons[id]; ok {
		return m, nil
	}
	return s.Store.GetHackathonByID(ctx, h, id)
}

func TestCreateTeamCaptainConstraint(t *testing.T) {
	is := is.New(t)
	f := setup(t)
	stale := f.backend(t, staleStore{Store: f.store})

	captain := uuid.New()
	f.team(t, captain, "A")

	_, err := stale.CreateTeam(f.ctx, captain, "B", "Second team", nil)
	is.True(errors.Is(err, proto.ErrAlreadyInTeam))

	teams, err := f.be.ListTeams(f.ctx)
	is.NoErr(err)
	is.Equal(len(teams), 1)
}

func TestCreateTeamSeatConstraint(t *testing.T) {
	is := is.New(t)
	f := setup(t)
	stale := f.backend(t, staleStore{Store: f.store})

	tm := f.team(t, uuid.New(), "A")
	member := uuid.New()
	f.join(t, tm, member)

	// The team insert succeeds, the seat insert fails and takes the team
	// row with it.
	_, err := stale.CreateTeam(f.ctx, member, "B", "Second team", nil)
	is.True(errors.Is(err, proto.ErrAlreadyInTeam))

	teams, err := f.be.ListTeams(f.ctx)
	is.NoErr(err)
	is.Equal(len(teams), 1)

	got, found, err := f.be.UserTeam(f.ctx, member)
	is.NoErr(err)
	is.True(found)
	is.Equal(got.ID(), tm.ID())
}

func TestAcceptSeatConstraint(t *testing.T) {
	is := is.New(t)
	f := setup(t)
	stale := f.backend(t, staleStore{Store: f.store})

	a := f.team(t, uuid.New(), "A")
	b := f.team(t, uuid.New(), "B")
	user := uuid.New()
	f.join(t, a, user)

	app, err := stale.Apply(f.ctx, b.ID(), user, "")
	is.NoErr(err)

	_, err = stale.Respond(f.ctx, app.ID(), b.CaptainID(), proto.Accept)
	is.True(errors.Is(err, proto.ErrAlreadyInTeam))

	got, err := f.be.Application(f.ctx, app.ID())
	is.NoErr(err)
	is.Equal(got.Status(), proto.ApplicationPending)

	count, err := f.be.MemberCount(f.ctx, b.ID())
	is.NoErr(err)
	is.Equal(count, 1)
}

func TestRegisterTeamUniqueConstraint(t *testing.T) {
	is := is.New(t)
	f := setup(t)
	stale := f.backend(t, staleStore{Store: f.store})

	captain := uuid.New()
	tm := f.team(t, captain, "T")
	h := f.hackathon(t, "Unique Jam", 4)

	_, err := f.be.RegisterTeam(f.ctx, h.ID(), tm.ID(), captain)
	is.NoErr(err)

	_, err = stale.RegisterTeam(f.ctx, h.ID(), tm.ID(), captain)
	is.True(errors.Is(err, proto.ErrAlreadyRegistered))

	regs, err := f.store.ListRegistrationsByHackathonID(f.ctx, f.db, h.ID())
	is.NoErr(err)
	is.Equal(len(regs), 1)
}

func TestRegisterTeamMissingHackathonConstraint(t *testing.T) {
	is := is.New(t)
	f := setup(t)

	captain := uuid.New()
	tm := f.team(t, captain, "T")
	h := f.hackathon(t, "Gone Jam", 4)
	m, err := f.store.GetHackathonByID(f.ctx, f.db, h.ID())
	is.NoErr(err)
	is.NoErr(f.be.DeleteHackathon(f.ctx, f.admin(t), h.ID()))

	stale := f.backend(t, staleStore{
		Store:      f.store,
		hackathons: map[int64]models.Hackathon{h.ID(): m},
	})
	_, err = stale.RegisterTeam(f.ctx, h.ID(), tm.ID(), captain)
	is.True(errors.Is(err, proto.ErrHackathonNotFound))
	is.Equal(proto.Kind(err), proto.ErrNotFound)

	got, err := f.be.Team(f.ctx, tm.ID())
	is.NoErr(err)
	is.Equal(got.Status(), proto.TeamForming)
}

func TestRegisterTeamReadsCurrentHackathon(t *testing.T) {
	f := setup(t)
	admin := f.admin(t)

	t.Run("deleted elsewhere", func(t *testing.T) {
		is := is.New(t)
		captain := uuid.New()
		tm := f.team(t, captain, "Deleted")
		h := f.hackathon(t, "Deleted Jam", 4)

		// Warm the cache of the serving backend.
		_, err := f.be.Hackathon(f.ctx, h.ID())
		is.NoErr(err)

		other := f.backend(t, f.store)
		is.NoErr(other.DeleteHackathon(f.ctx, admin, h.ID()))

		_, err = f.be.RegisterTeam(f.ctx, h.ID(), tm.ID(), captain)
		is.True(errors.Is(err, proto.ErrHackathonNotFound))
	})

	t.Run("shrunk elsewhere", func(t *testing.T) {
		is := is.New(t)
		captain := uuid.New()
		tm := f.team(t, captain, "Shrunk")
		f.join(t, tm, uuid.New())
		h := f.hackathon(t, "Shrunk Jam", 4)

		_, err := f.be.Hackathon(f.ctx, h.ID())
		is.NoErr(err)

		other := f.backend(t, f.store)
		_, err = other.UpdateHackathon(f.ctx, admin, h.ID(), proto.HackathonOptions{
			Title:                h.Title(),
			StartDate:            h.StartDate(),
			EndDate:              h.EndDate(),
			RegistrationDeadline: h.RegistrationDeadline(),
			MaxTeamSize:          1,
		})
		is.NoErr(err)

		_, err = f.be.RegisterTeam(f.ctx, h.ID(), tm.ID(), captain)
		is.True(errors.Is(err, proto.ErrTeamTooLarge))
	})
}
