package web

import (
	"net/http"

	"github.com/hackhub/hackhub/pkg/access"
	"github.com/hackhub/hackhub/pkg/backend"
	"github.com/hackhub/hackhub/pkg/proto"
)

type profileRequest struct {
	FirstName  *string  `json:"first_name"`
	LastName   *string  `json:"last_name"`
	Github     *string  `json:"github"`
	Telegram   *string  `json:"telegram"`
	Skills     []string `json:"skills"`
	Roles      []string `json:"roles"`
	Experience *string  `json:"experience"`
}

type roleRequest struct {
	Role *access.Role `json:"role"`
}

// GET /api/me
func getMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	p, err := be.EnsureProfile(ctx, actor(r))
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, newProfileJSON(p))
}

// PATCH /api/me
func patchMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	var req profileRequest
	if err := parseJSON(w, r, &req); err != nil {
		renderError(w, r, err)
		return
	}

	user := actor(r)
	if _, err := be.EnsureProfile(ctx, user); err != nil {
		renderError(w, r, err)
		return
	}

	p, err := be.UpdateProfile(ctx, user, proto.ProfilePatch{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Github:     req.Github,
		Telegram:   req.Telegram,
		Skills:     req.Skills,
		Roles:      req.Roles,
		Experience: req.Experience,
	})
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, newProfileJSON(p))
}

// GET /api/me/team
func getMyTeam(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	t, ok, err := be.UserTeam(ctx, actor(r))
	if err != nil {
		renderError(w, r, err)
		return
	}
	if !ok {
		renderError(w, r, proto.ErrTeamNotFound)
		return
	}

	renderJSON(w, http.StatusOK, newTeamJSON(t))
}

// GET /api/me/applications
func getMyApplications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	apps, err := be.ListUserApplications(ctx, actor(r))
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, mapJSON(apps, newApplicationJSON))
}

// PUT /api/users/{user}/role
func putUserRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	be := backend.FromContext(ctx)

	user, err := userVar(r, "user")
	if err != nil {
		renderError(w, r, err)
		return
	}

	var req roleRequest
	if err := parseJSON(w, r, &req); err != nil {
		renderError(w, r, err)
		return
	}
	if req.Role == nil {
		renderError(w, r, proto.Validationf("role is required"))
		return
	}

	if err := be.SetRole(ctx, actor(r), user, *req.Role); err != nil {
		renderError(w, r, err)
		return
	}

	p, err := be.Profile(ctx, user)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, newProfileJSON(p))
}
