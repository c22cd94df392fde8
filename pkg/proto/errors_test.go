package proto

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestKind(t *testing.T) {
	is := is.New(t)

	is.Equal(Kind(ErrTeamNotFound), ErrNotFound)
	is.Equal(Kind(ErrNotCaptain), ErrUnauthorized)
	is.Equal(Kind(ErrApplicationExists), ErrConflict)
	is.Equal(Kind(ErrApplicationNotPending), ErrInvalidState)
	is.Equal(Kind(ErrCaptainCannotLeave), ErrInvalidOperation)
	is.Equal(Kind(ErrRegistrationClosed), ErrDeadlinePassed)
	is.Equal(Kind(ErrTeamTooLarge), ErrCapacity)
	is.Equal(Kind(ErrMultipleTeams), ErrIntegrity)
	is.Equal(Kind(fmt.Errorf("wrapped: %w", ErrHackathonNotFound)), ErrNotFound)
	is.Equal(Kind(Validationf("name is required")), ErrValidation)
	is.Equal(Kind(errors.New("boom")), nil)
}

func TestParseDecision(t *testing.T) {
	is := is.New(t)

	d, err := ParseDecision("accept")
	is.NoErr(err)
	is.Equal(d, Accept)

	d, err = ParseDecision("reject")
	is.NoErr(err)
	is.Equal(d, Reject)

	_, err = ParseDecision("maybe")
	is.True(errors.Is(err, ErrValidation))
}

func TestDeriveHackathonStatus(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 3, 18, 0, 0, 0, time.UTC)

	cases := []struct {
		current HackathonStatus
		now     time.Time
		want    HackathonStatus
	}{
		{HackathonUpcoming, start.Add(-time.Hour), HackathonUpcoming},
		{HackathonUpcoming, start, HackathonActive},
		{HackathonUpcoming, end, HackathonActive},
		{HackathonActive, end.Add(time.Second), HackathonCompleted},
		{HackathonCompleted, start.Add(-time.Hour), HackathonUpcoming},
		{HackathonDraft, start.Add(time.Hour), HackathonDraft},
	}

	for _, c := range cases {
		if got := DeriveHackathonStatus(c.current, start, end, c.now); got != c.want {
			t.Errorf("DeriveHackathonStatus(%s, %s) => %s, want %s", c.current, c.now, got, c.want)
		}
	}
}
