package backend

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/proto"
	"github.com/matryer/is"
)

func TestUserTeam(t *testing.T) {
	is := is.New(t)
	f := setup(t)

	_, ok, err := f.be.UserTeam(f.ctx, uuid.New())
	is.NoErr(err)
	is.True(!ok)

	captain := uuid.New()
	tm := f.team(t, captain, "T")
	got, ok, err := f.be.UserTeam(f.ctx, captain)
	is.NoErr(err)
	is.True(ok)
	is.Equal(got.ID(), tm.ID())

	member := uuid.New()
	f.join(t, tm, member)
	got, ok, err = f.be.UserTeam(f.ctx, member)
	is.NoErr(err)
	is.True(ok)
	is.Equal(got.ID(), tm.ID())
}

func TestUserTeamIntegrity(t *testing.T) {
	is := is.New(t)
	f := setup(t)

	captain := uuid.New()
	f.team(t, captain, "A")
	other := f.team(t, uuid.New(), "B")

	// Bypass the seat guard to corrupt the data.
	is.NoErr(f.store.AddTeamMember(f.ctx, f.db, other.ID(), captain, epoch))

	_, _, err := f.be.UserTeam(f.ctx, captain)
	is.True(errors.Is(err, proto.ErrIntegrity))
}

func TestLeaveTeam(t *testing.T) {
	is := is.New(t)
	f := setup(t)

	captain := uuid.New()
	tm := f.team(t, captain, "T")
	member := uuid.New()
	f.join(t, tm, member)

	err := f.be.LeaveTeam(f.ctx, tm.ID(), captain)
	is.True(errors.Is(err, proto.ErrInvalidOperation))

	err = f.be.LeaveTeam(f.ctx, tm.ID(), uuid.New())
	is.True(errors.Is(err, proto.ErrMemberNotFound))

	is.NoErr(f.be.LeaveTeam(f.ctx, tm.ID(), member))

	_, ok, err := f.be.UserTeam(f.ctx, member)
	is.NoErr(err)
	is.True(!ok)

	count, err := f.be.MemberCount(f.ctx, tm.ID())
	is.NoErr(err)
	is.Equal(count, 1)

	err = f.be.LeaveTeam(f.ctx, tm.ID(), member)
	is.True(errors.Is(err, proto.ErrNotFound))

	// A former member may apply again.
	_, err = f.be.Apply(f.ctx, tm.ID(), member, "back")
	is.NoErr(err)
}

func TestMemberCountNotFound(t *testing.T) {
	is := is.New(t)
	f := setup(t)

	_, err := f.be.MemberCount(f.ctx, 42)
	is.True(errors.Is(err, proto.ErrTeamNotFound))
}

func TestTeamMembers(t *testing.T) {
	is := is.New(t)
	f := setup(t)

	captain := uuid.New()
	_, err := f.be.EnsureProfile(f.ctx, captain)
	is.NoErr(err)
	first, last := "Ada", "Lovelace"
	_, err = f.be.UpdateProfile(f.ctx, captain, proto.ProfilePatch{FirstName: &first, LastName: &last})
	is.NoErr(err)

	tm := f.team(t, captain, "T")
	a, b := uuid.New(), uuid.New()
	f.clock.Advance(time.Minute)
	f.join(t, tm, a)
	f.clock.Advance(time.Minute)
	f.join(t, tm, b)

	members, err := f.be.TeamMembers(f.ctx, tm.ID())
	is.NoErr(err)
	is.Equal(len(members), 3)
	is.Equal(members[0].UserID, captain)
	is.True(members[0].Captain)
	is.Equal(members[0].FirstName, "Ada")
	is.Equal(members[0].LastName, "Lovelace")
	is.Equal(members[1].UserID, a)
	is.True(!members[1].Captain)
	is.Equal(members[1].FirstName, "") // no profile
	is.Equal(members[2].UserID, b)
	is.True(members[2].JoinedAt.Equal(epoch.Add(2 * time.Minute)))

	_, err = f.be.TeamMembers(f.ctx, tm.ID()+1)
	is.True(errors.Is(err, proto.ErrTeamNotFound))
}
