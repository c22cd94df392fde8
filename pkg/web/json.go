package web

import (
	"time"

	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/proto"
)

type profileJSON struct {
	UserID     uuid.UUID `json:"user_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Github     string    `json:"github,omitempty"`
	Telegram   string    `json:"telegram,omitempty"`
	Skills     []string  `json:"skills"`
	Roles      []string  `json:"roles"`
	Experience string    `json:"experience,omitempty"`
	Role       string    `json:"role"`
	Completed  bool      `json:"completed"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func newProfileJSON(p proto.Profile) profileJSON {
	return profileJSON{
		UserID:     p.UserID(),
		FirstName:  p.FirstName(),
		LastName:   p.LastName(),
		Github:     p.Github(),
		Telegram:   p.Telegram(),
		Skills:     nonNil(p.Skills()),
		Roles:      nonNil(p.Roles()),
		Experience: p.Experience(),
		Role:       p.Role().String(),
		Completed:  p.IsCompleted(),
		CreatedAt:  p.CreatedAt(),
		UpdatedAt:  p.UpdatedAt(),
	}
}

type teamJSON struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CaptainID   uuid.UUID `json:"captain_id"`
	LookingFor  []string  `json:"looking_for"`
	Status      string    `json:"status"`
	MemberCount *int      `json:"member_count,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newTeamJSON(t proto.Team) teamJSON {
	return teamJSON{
		ID:          t.ID(),
		Name:        t.Name(),
		Description: t.Description(),
		CaptainID:   t.CaptainID(),
		LookingFor:  nonNil(t.LookingFor()),
		Status:      string(t.Status()),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

type applicationJSON struct {
	ID        int64     `json:"id"`
	TeamID    int64     `json:"team_id"`
	UserID    uuid.UUID `json:"user_id"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newApplicationJSON(a proto.Application) applicationJSON {
	return applicationJSON{
		ID:        a.ID(),
		TeamID:    a.TeamID(),
		UserID:    a.UserID(),
		Message:   a.Message(),
		Status:    string(a.Status()),
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
	}
}

type hackathonJSON struct {
	ID                   int64     `json:"id"`
	Slug                 string    `json:"slug"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	Rules                string    `json:"rules"`
	Prizes               string    `json:"prizes"`
	StartDate            time.Time `json:"start_date"`
	EndDate              time.Time `json:"end_date"`
	RegistrationDeadline time.Time `json:"registration_deadline"`
	MaxTeamSize          int       `json:"max_team_size"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func newHackathonJSON(h proto.Hackathon) hackathonJSON {
	return hackathonJSON{
		ID:                   h.ID(),
		Slug:                 h.Slug(),
		Title:                h.Title(),
		Description:          h.Description(),
		Rules:                h.Rules(),
		Prizes:               h.Prizes(),
		StartDate:            h.StartDate(),
		EndDate:              h.EndDate(),
		RegistrationDeadline: h.RegistrationDeadline(),
		MaxTeamSize:          h.MaxTeamSize(),
		Status:               string(h.Status()),
		CreatedAt:            h.CreatedAt(),
		UpdatedAt:            h.UpdatedAt(),
	}
}

type registrationJSON struct {
	ID           int64     `json:"id"`
	HackathonID  int64     `json:"hackathon_id"`
	TeamID       int64     `json:"team_id"`
	RegisteredBy uuid.UUID `json:"registered_by"`
	RegisteredAt time.Time `json:"registered_at"`
}

func newRegistrationJSON(r proto.Registration) registrationJSON {
	return registrationJSON{
		ID:           r.ID(),
		HackathonID:  r.HackathonID(),
		TeamID:       r.TeamID(),
		RegisteredBy: r.RegisteredBy(),
		RegisteredAt: r.RegisteredAt(),
	}
}

// mapJSON converts every element of vs with fn.
func mapJSON[T, J any](vs []T, fn func(T) J) []J {
	out := make([]J, 0, len(vs))
	for _, v := range vs {
		out = append(out, fn(v))
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
