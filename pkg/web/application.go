package web

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hackhub/hackhub/pkg/backend"
	"github.com/hackhub/hackhub/pkg/proto"
)

type applicationRequest struct {
	Message string `json:"message"`
}

// GET /api/teams/{team}/applications
func getTeamApplications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	id, err := idVar(r, "team")
	if err != nil {
		renderError(w, r, err)
		return
	}

	apps, err := be.ListApplications(ctx, id, actor(r))
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, mapJSON(apps, newApplicationJSON))
}

// POST /api/teams/{team}/applications
func postApplication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	id, err := idVar(r, "team")
	if err != nil {
		renderError(w, r, err)
		return
	}

	var req applicationRequest
	if err := parseJSON(w, r, &req); err != nil {
		renderError(w, r, err)
		return
	}

	app, err := be.Apply(ctx, id, actor(r), req.Message)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusCreated, newApplicationJSON(app))
}

// POST /api/applications/{application}/{decision}
func respondApplication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	id, err := idVar(r, "application")
	if err != nil {
		renderError(w, r, err)
		return
	}

	decision, err := proto.ParseDecision(mux.Vars(r)["decision"])
	if err != nil {
		renderError(w, r, err)
		return
	}

	app, err := be.Respond(ctx, id, actor(r), decision)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, newApplicationJSON(app))
}
