package backend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/config"
	"github.com/hackhub/hackhub/pkg/db"
	"github.com/hackhub/hackhub/pkg/db/migrate"
	"github.com/hackhub/hackhub/pkg/proto"
	"github.com/hackhub/hackhub/pkg/store"
	"github.com/hackhub/hackhub/pkg/store/database"
	"github.com/hackhub/hackhub/pkg/test"
	"github.com/jonboulle/clockwork"
	"github.com/matryer/is"
)

var epoch = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	ctx   context.Context
	be    *Backend
	cfg   *config.Config
	db    *db.DB
	store store.Store
	clock *clockwork.FakeClock
}

func setup(tb testing.TB, opts ...Option) *fixture {
	tb.Helper()
	is := is.New(tb)

	ctx := context.TODO()
	dbx, err := test.OpenSqlite(ctx, tb)
	is.NoErr(err)
	is.NoErr(migrate.Migrate(ctx, dbx))

	cfg := config.DefaultConfig()
	cfg.Auth.JWTSecret = "test-secret"

	st := database.New(ctx, dbx)
	clock := clockwork.NewFakeClockAt(epoch)
	be := New(ctx, cfg, dbx, st, append([]Option{WithClock(clock)}, opts...)...)
	tb.Cleanup(func() {
		_ = be.Close()
	})

	return &fixture{
		ctx:   ctx,
		be:    be,
		cfg:   cfg,
		db:    dbx,
		store: st,
		clock: clock,
	}
}

// backend returns another Backend on the same database, as a second process
// or replica would have.
func (f *fixture) backend(tb testing.TB, st store.Store) *Backend {
	tb.Helper()
	be := New(f.ctx, f.cfg, f.db, st, WithClock(f.clock))
	tb.Cleanup(func() {
		_ = be.Close()
	})
	return be
}

func (f *fixture) admin(tb testing.TB) uuid.UUID {
	tb.Helper()
	admin := uuid.New()
	is.New(tb).NoErr(f.be.PromoteAdmins(f.ctx, []uuid.UUID{admin}))
	return admin
}

func (f *fixture) team(tb testing.TB, captain uuid.UUID, name string) proto.Team {
	tb.Helper()
	t, err := f.be.CreateTeam(f.ctx, captain, name, name+" description", nil)
	is.New(tb).NoErr(err)
	return t
}

// join makes user a member of t through an accepted application.
func (f *fixture) join(tb testing.TB, t proto.Team, user uuid.UUID) {
	tb.Helper()
	is := is.New(tb)
	app, err := f.be.Apply(f.ctx, t.ID(), user, "")
	is.NoErr(err)
	_, err = f.be.Respond(f.ctx, app.ID(), t.CaptainID(), proto.Accept)
	is.NoErr(err)
}

func (f *fixture) hackathon(tb testing.TB, title string, maxTeamSize int) proto.Hackathon {
	tb.Helper()
	h, err := f.be.CreateHackathon(f.ctx, f.admin(tb), proto.HackathonOptions{
		Title:                title,
		StartDate:            epoch.Add(7 * 24 * time.Hour),
		EndDate:              epoch.Add(9 * 24 * time.Hour),
		RegistrationDeadline: epoch.Add(24 * time.Hour),
		MaxTeamSize:          maxTeamSize,
	})
	is.New(tb).NoErr(err)
	return h
}

func TestContext(t *testing.T) {
	is := is.New(t)
	f := setup(t)

	ctx := WithContext(context.TODO(), f.be)
	is.Equal(FromContext(ctx), f.be)
	is.Equal(FromContext(context.TODO()), nil)
}

func TestCache(t *testing.T) {
	is := is.New(t)
	f := setup(t)

	h := f.hackathon(t, "Cache Jam", 4)
	is.Equal(f.be.cache.Len(), 0)

	_, err := f.be.Hackathon(f.ctx, h.ID())
	is.NoErr(err)
	is.Equal(f.be.cache.Len(), 1)

	is.NoErr(f.be.DeleteHackathon(f.ctx, f.admin(t), h.ID()))
	is.Equal(f.be.cache.Len(), 0)

	_, err = f.be.Hackathon(f.ctx, h.ID())
	is.True(errors.Is(err, proto.ErrHackathonNotFound))
}
