package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/backend"
	"github.com/hackhub/hackhub/pkg/config"
	"github.com/hackhub/hackhub/pkg/db/migrate"
	"github.com/hackhub/hackhub/pkg/proto"
	"github.com/hackhub/hackhub/pkg/store/database"
	"github.com/hackhub/hackhub/pkg/test"
	"github.com/jonboulle/clockwork"
	"github.com/matryer/is"
)

func TestRegistered(t *testing.T) {
	is := is.New(t)
	is.Equal(Names(), []string{HackathonStatus})

	j, ok := List()[HackathonStatus]
	is.True(ok)

	cfg := config.DefaultConfig()
	is.Equal(j.Runner.Spec(config.WithContext(context.TODO(), cfg)), "@every 1m")
	is.Equal(j.Runner.Spec(context.TODO()), "")
}

func TestHackathonStatus(t *testing.T) {
	is := is.New(t)
	ctx := context.TODO()

	dbx, err := test.OpenSqlite(ctx, t)
	is.NoErr(err)
	is.NoErr(migrate.Migrate(ctx, dbx))

	now := time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(now)
	cfg := config.DefaultConfig()
	be := backend.New(ctx, cfg, dbx, database.New(ctx, dbx), backend.WithClock(clock))
	defer be.Close() //nolint:errcheck

	admin := uuid.New()
	is.NoErr(be.PromoteAdmins(ctx, []uuid.UUID{admin}))
	h, err := be.CreateHackathon(ctx, admin, proto.HackathonOptions{
		Title:                "Job Jam",
		StartDate:            now.Add(time.Hour),
		EndDate:              now.Add(2 * time.Hour),
		RegistrationDeadline: now,
		MaxTeamSize:          3,
	})
	is.NoErr(err)
	is.Equal(h.Status(), proto.HackathonUpcoming)

	ctx = backend.WithContext(ctx, be)
	fn := List()[HackathonStatus].Runner.Func(ctx)

	clock.Advance(90 * time.Minute)
	fn()

	h, err = be.Hackathon(ctx, h.ID())
	is.NoErr(err)
	is.Equal(h.Status(), proto.HackathonActive)
}

func TestHackathonStatusNoBackend(t *testing.T) {
	// Must not panic.
	List()[HackathonStatus].Runner.Func(context.TODO())()
}
