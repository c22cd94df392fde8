package web

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
)

// APIRoute is a route of the JSON API.
type APIRoute struct {
	method  []string
	handler http.HandlerFunc
	path    string
}

// APIController registers the authenticated JSON API routes.
func APIController(_ context.Context, r *mux.Router) {
	api := r.PathPrefix("/api").Subrouter()
	for _, route := range apiRoutes {
		api.Handle(route.path, withAuth(route.handler)).Methods(route.method...)
	}
}

var apiRoutes = []APIRoute{
	// Profile
	{
		method:  []string{http.MethodGet},
		handler: getMe,
		path:    "/me",
	},
	{
		method:  []string{http.MethodPatch},
		handler: patchMe,
		path:    "/me",
	},
	{
		method:  []string{http.MethodGet},
		handler: getMyTeam,
		path:    "/me/team",
	},
	{
		method:  []string{http.MethodGet},
		handler: getMyApplications,
		path:    "/me/applications",
	},
	{
		method:  []string{http.MethodPut},
		handler: putUserRole,
		path:    "/users/{user}/role",
	},

	// Teams
	{
		method:  []string{http.MethodGet},
		handler: getTeams,
		path:    "/teams",
	},
	{
		method:  []string{http.MethodPost},
		handler: postTeam,
		path:    "/teams",
	},
	{
		method:  []string{http.MethodGet},
		handler: getTeam,
		path:    "/teams/{team:[0-9]+}",
	},
	{
		method:  []string{http.MethodPatch},
		handler: patchTeam,
		path:    "/teams/{team:[0-9]+}",
	},
	{
		method:  []string{http.MethodDelete},
		handler: deleteTeam,
		path:    "/teams/{team:[0-9]+}",
	},
	{
		method:  []string{http.MethodGet},
		handler: getTeamMembers,
		path:    "/teams/{team:[0-9]+}/members",
	},
	{
		method:  []string{http.MethodPost},
		handler: postLeaveTeam,
		path:    "/teams/{team:[0-9]+}/leave",
	},

	// Applications
	{
		method:  []string{http.MethodGet},
		handler: getTeamApplications,
		path:    "/teams/{team:[0-9]+}/applications",
	},
	{
		method:  []string{http.MethodPost},
		handler: postApplication,
		path:    "/teams/{team:[0-9]+}/applications",
	},
	{
		method:  []string{http.MethodPost},
		handler: respondApplication,
		path:    "/applications/{application:[0-9]+}/{decision:(?:accept|reject)}",
	},

	// Hackathons
	{
		method:  []string{http.MethodGet},
		handler: getHackathons,
		path:    "/hackathons",
	},
	{
		method:  []string{http.MethodPost},
		handler: postHackathon,
		path:    "/hackathons",
	},
	{
		method:  []string{http.MethodGet},
		handler: getHackathon,
		path:    "/hackathons/{hackathon:[0-9]+}",
	},
	{
		method:  []string{http.MethodPatch},
		handler: patchHackathon,
		path:    "/hackathons/{hackathon:[0-9]+}",
	},
	{
		method:  []string{http.MethodDelete},
		handler: deleteHackathon,
		path:    "/hackathons/{hackathon:[0-9]+}",
	},

	// Registrations
	{
		method:  []string{http.MethodGet},
		handler: getRegistrations,
		path:    "/hackathons/{hackathon:[0-9]+}/registrations",
	},
	{
		method:  []string{http.MethodPost},
		handler: postRegistration,
		path:    "/hackathons/{hackathon:[0-9]+}/registrations",
	},
	{
		method:  []string{http.MethodGet},
		handler: getRegistered,
		path:    "/hackathons/{hackathon:[0-9]+}/registrations/{team:[0-9]+}",
	},
}
