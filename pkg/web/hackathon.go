package web

import (
	"net/http"
	"time"

	"github.com/hackhub/hackhub/pkg/backend"
	"github.com/hackhub/hackhub/pkg/proto"
)

type hackathonRequest struct {
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	Rules                string    `json:"rules"`
	Prizes               string    `json:"prizes"`
	StartDate            time.Time `json:"start_date"`
	EndDate              time.Time `json:"end_date"`
	RegistrationDeadline time.Time `json:"registration_deadline"`
	MaxTeamSize          int       `json:"max_team_size"`
	Draft                bool      `json:"draft"`
}

func (h hackathonRequest) options() proto.HackathonOptions {
	return proto.HackathonOptions{
		Title:                h.Title,
		Description:          h.Description,
		Rules:                h.Rules,
		Prizes:               h.Prizes,
		StartDate:            h.StartDate,
		EndDate:              h.EndDate,
		RegistrationDeadline: h.RegistrationDeadline,
		MaxTeamSize:          h.MaxTeamSize,
		Draft:                h.Draft,
	}
}

type registrationRequest struct {
	TeamID int64 `json:"team_id"`
}

type registeredResponse struct {
	Registered bool `json:"registered"`
}

// GET /api/hackathons
func getHackathons(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	hs, err := be.ListHackathons(ctx)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, mapJSON(hs, newHackathonJSON))
}

// POST /api/hackathons
func postHackathon(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	var req hackathonRequest
	if err := parseJSON(w, r, &req); err != nil {
		renderError(w, r, err)
		return
	}

	h, err := be.CreateHackathon(ctx, actor(r), req.options())
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusCreated, newHackathonJSON(h))
}

// GET /api/hackathons/{hackathon}
func getHackathon(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	id, err := idVar(r, "hackathon")
	if err != nil {
		renderError(w, r, err)
		return
	}

	h, err := be.Hackathon(ctx, id)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, newHackathonJSON(h))
}

// PATCH /api/hackathons/{hackathon}
func patchHackathon(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	id, err := idVar(r, "hackathon")
	if err != nil {
		renderError(w, r, err)
		return
	}

	var req hackathonRequest
	if err := parseJSON(w, r, &req); err != nil {
		renderError(w, r, err)
		return
	}

	h, err := be.UpdateHackathon(ctx, actor(r), id, req.options())
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, newHackathonJSON(h))
}

// DELETE /api/hackathons/{hackathon}
func deleteHackathon(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	id, err := idVar(r, "hackathon")
	if err != nil {
		renderError(w, r, err)
		return
	}

	if err := be.DeleteHackathon(ctx, actor(r), id); err != nil {
		renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusNoContent, nil)
}

// GET /api/hackathons/{hackathon}/registrations
func getRegistrations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	id, err := idVar(r, "hackathon")
	if err != nil {
		renderError(w, r, err)
		return
	}

	regs, err := be.ListRegistrations(ctx, id, actor(r))
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, mapJSON(regs, newRegistrationJSON))
}

// POST /api/hackathons/{hackathon}/registrations
func postRegistration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	id, err := idVar(r, "hackathon")
	if err != nil {
		renderError(w, r, err)
		return
	}

	var req registrationRequest
	if err := parseJSON(w, r, &req); err != nil {
		renderError(w, r, err)
		return
	}
	if req.TeamID <= 0 {
		renderError(w, r, proto.Validationf("team_id is required"))
		return
	}

	reg, err := be.RegisterTeam(ctx, id, req.TeamID, actor(r))
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusCreated, newRegistrationJSON(reg))
}

// GET /api/hackathons/{hackathon}/registrations/{team}
func getRegistered(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	hid, err := idVar(r, "hackathon")
	if err != nil {
		renderError(w, r, err)
		return
	}

	tid, err := idVar(r, "team")
	if err != nil {
		renderError(w, r, err)
		return
	}

	ok, err := be.IsRegistered(ctx, hid, tid)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, registeredResponse{Registered: ok})
}
