package backend

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/access"
	"github.com/hackhub/hackhub/pkg/proto"
	"github.com/matryer/is"
)

func hackathonOptions(title string) proto.HackathonOptions {
	return proto.HackathonOptions{
		Title:                title,
		Description:          "Build things",
		StartDate:            epoch.Add(2 * time.Hour),
		EndDate:              epoch.Add(4 * time.Hour),
		RegistrationDeadline: epoch.Add(time.Hour),
		MaxTeamSize:          5,
	}
}

func TestCreateHackathon(t *testing.T) {
	is := is.New(t)
	f := setup(t)
	admin := f.admin(t)

	h, err := f.be.CreateHackathon(f.ctx, admin, hackathonOptions("Green Future Hackathon 2026!"))
	is.NoErr(err)
	is.Equal(h.Slug(), "green-future-hackathon-2026")
	is.Equal(h.Status(), proto.HackathonUpcoming)
	is.Equal(h.MaxTeamSize(), 5)

	got, err := f.be.HackathonBySlug(f.ctx, h.Slug())
	is.NoErr(err)
	is.Equal(got.ID(), h.ID())

	_, err = f.be.CreateHackathon(f.ctx, admin, hackathonOptions("Green future hackathon 2026"))
	is.True(errors.Is(err, proto.ErrHackathonExists))

	opts := hackathonOptions("Draft")
	opts.Draft = true
	draft, err := f.be.CreateHackathon(f.ctx, admin, opts)
	is.NoErr(err)
	is.Equal(draft.Status(), proto.HackathonDraft)

	_, err = f.be.HackathonBySlug(f.ctx, "nope")
	is.True(errors.Is(err, proto.ErrHackathonNotFound))
}

func TestCreateHackathonValidation(t *testing.T) {
	f := setup(t)
	admin := f.admin(t)

	cases := []struct {
		name   string
		modify func(*proto.HackathonOptions)
	}{
		{"empty title", func(o *proto.HackathonOptions) { o.Title = " " }},
		{"punctuation title", func(o *proto.HackathonOptions) { o.Title = "!!!" }},
		{"end before start", func(o *proto.HackathonOptions) { o.EndDate = o.StartDate.Add(-time.Second) }},
		{"deadline after start", func(o *proto.HackathonOptions) { o.RegistrationDeadline = o.StartDate.Add(time.Second) }},
		{"missing deadline", func(o *proto.HackathonOptions) { o.RegistrationDeadline = time.Time{} }},
		{"zero team size", func(o *proto.HackathonOptions) { o.MaxTeamSize = 0 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			is := is.New(t)
			opts := hackathonOptions("Valid")
			c.modify(&opts)
			_, err := f.be.CreateHackathon(f.ctx, admin, opts)
			is.True(errors.Is(err, proto.ErrValidation))
		})
	}
}

func TestHackathonPermissions(t *testing.T) {
	is := is.New(t)
	f := setup(t)
	admin := f.admin(t)

	participant := uuid.New()
	_, err := f.be.CreateHackathon(f.ctx, participant, hackathonOptions("Nope"))
	is.True(errors.Is(err, proto.ErrForbidden))

	organizer := uuid.New()
	_, err = f.be.EnsureProfile(f.ctx, organizer)
	is.NoErr(err)
	is.NoErr(f.be.SetRole(f.ctx, admin, organizer, access.Organizer))

	h, err := f.be.CreateHackathon(f.ctx, organizer, hackathonOptions("Organized"))
	is.NoErr(err)

	_, err = f.be.UpdateHackathon(f.ctx, participant, h.ID(), hackathonOptions("Organized"))
	is.True(errors.Is(err, proto.ErrForbidden))

	err = f.be.DeleteHackathon(f.ctx, participant, h.ID())
	is.True(errors.Is(err, proto.ErrForbidden))
}

func TestUpdateHackathon(t *testing.T) {
	is := is.New(t)
	f := setup(t)
	admin := f.admin(t)

	h, err := f.be.CreateHackathon(f.ctx, admin, hackathonOptions("Update Jam"))
	is.NoErr(err)

	// Warm the cache so the update must invalidate it.
	_, err = f.be.Hackathon(f.ctx, h.ID())
	is.NoErr(err)

	opts := hackathonOptions("Renamed Jam")
	opts.MaxTeamSize = 2
	_, err = f.be.UpdateHackathon(f.ctx, admin, h.ID(), opts)
	is.NoErr(err)

	got, err := f.be.Hackathon(f.ctx, h.ID())
	is.NoErr(err)
	is.Equal(got.Title(), "Renamed Jam")
	is.Equal(got.Slug(), "update-jam")
	is.Equal(got.MaxTeamSize(), 2)

	_, err = f.be.UpdateHackathon(f.ctx, admin, h.ID()+1, opts)
	is.True(errors.Is(err, proto.ErrHackathonNotFound))
}

func TestListHackathons(t *testing.T) {
	is := is.New(t)
	f := setup(t)
	admin := f.admin(t)

	early, err := f.be.CreateHackathon(f.ctx, admin, hackathonOptions("Early"))
	is.NoErr(err)
	opts := hackathonOptions("Late")
	opts.StartDate = opts.StartDate.Add(time.Hour)
	opts.EndDate = opts.EndDate.Add(time.Hour)
	late, err := f.be.CreateHackathon(f.ctx, admin, opts)
	is.NoErr(err)

	hs, err := f.be.ListHackathons(f.ctx)
	is.NoErr(err)
	is.Equal(len(hs), 2)
	is.Equal(hs[0].ID(), late.ID())
	is.Equal(hs[1].ID(), early.ID())
}

func TestRefreshHackathonStatuses(t *testing.T) {
	is := is.New(t)
	f := setup(t)
	admin := f.admin(t)

	h, err := f.be.CreateHackathon(f.ctx, admin, hackathonOptions("Status Jam"))
	is.NoErr(err)
	opts := hackathonOptions("Draft Jam")
	opts.Draft = true
	draft, err := f.be.CreateHackathon(f.ctx, admin, opts)
	is.NoErr(err)

	n, err := f.be.RefreshHackathonStatuses(f.ctx)
	is.NoErr(err)
	is.Equal(n, 0)

	_, err = f.be.Hackathon(f.ctx, h.ID())
	is.NoErr(err)

	f.clock.Advance(3 * time.Hour)
	n, err = f.be.RefreshHackathonStatuses(f.ctx)
	is.NoErr(err)
	is.Equal(n, 1)

	got, err := f.be.Hackathon(f.ctx, h.ID())
	is.NoErr(err)
	is.Equal(got.Status(), proto.HackathonActive)

	f.clock.Advance(2 * time.Hour)
	n, err = f.be.RefreshHackathonStatuses(f.ctx)
	is.NoErr(err)
	is.Equal(n, 1)

	got, err = f.be.Hackathon(f.ctx, h.ID())
	is.NoErr(err)
	is.Equal(got.Status(), proto.HackathonCompleted)

	got, err = f.be.Hackathon(f.ctx, draft.ID())
	is.NoErr(err)
	is.Equal(got.Status(), proto.HackathonDraft)
}
