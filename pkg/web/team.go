package web

import (
	"net/http"

	"github.com/hackhub/hackhub/pkg/backend"
	"github.com/hackhub/hackhub/pkg/proto"
)

type createTeamRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	LookingFor  []string `json:"looking_for"`
}

type updateTeamRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	LookingFor  []string `json:"looking_for"`
}

// GET /api/teams
func getTeams(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	teams, err := be.ListTeams(ctx)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, mapJSON(teams, newTeamJSON))
}

// POST /api/teams
func postTeam(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	var req createTeamRequest
	if err := parseJSON(w, r, &req); err != nil {
		renderError(w, r, err)
		return
	}

	t, err := be.CreateTeam(ctx, actor(r), req.Name, req.Description, req.LookingFor)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusCreated, newTeamJSON(t))
}

// GET /api/teams/{team}
func getTeam(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	id, err := idVar(r, "team")
	if err != nil {
		renderError(w, r, err)
		return
	}

	t, err := be.Team(ctx, id)
	if err != nil {
		renderError(w, r, err)
		return
	}

	count, err := be.MemberCount(ctx, id)
	if err != nil {
		renderError(w, r, err)
		return
	}

	tj := newTeamJSON(t)
	tj.MemberCount = &count
	renderJSON(w, http.StatusOK, tj)
}

// PATCH /api/teams/{team}
func patchTeam(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	id, err := idVar(r, "team")
	if err != nil {
		renderError(w, r, err)
		return
	}

	var req updateTeamRequest
	if err := parseJSON(w, r, &req); err != nil {
		renderError(w, r, err)
		return
	}

	t, err := be.UpdateTeam(ctx, id, actor(r), proto.TeamPatch{
		Name:        req.Name,
		Description: req.Description,
		LookingFor:  req.LookingFor,
	})
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, newTeamJSON(t))
}

// DELETE /api/teams/{team}
func deleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	id, err := idVar(r, "team")
	if err != nil {
		renderError(w, r, err)
		return
	}

	if err := be.DeleteTeam(ctx, id, actor(r)); err != nil {
		renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusNoContent, nil)
}

// GET /api/teams/{team}/members
func getTeamMembers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	id, err := idVar(r, "team")
	if err != nil {
		renderError(w, r, err)
		return
	}

	members, err := be.TeamMembers(ctx, id)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, members)
}

// POST /api/teams/{team}/leave
func postLeaveTeam(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	id, err := idVar(r, "team")
	if err != nil {
		renderError(w, r, err)
		return
	}

	if err := be.LeaveTeam(ctx, id, actor(r)); err != nil {
		renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusNoContent, nil)
}
