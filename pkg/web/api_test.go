package web

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/proto"
	"github.com/matryer/is"
)

func TestProfileAPI(t *testing.T) {
	is := is.New(t)
	s := setup(t)
	user := uuid.New()

	w := s.do(t, user, http.MethodGet, "/api/me", nil)
	is.Equal(w.Code, http.StatusOK)
	p := decode[profileJSON](t, w)
	is.Equal(p.UserID, user)
	is.Equal(p.Role, "participant")
	is.True(!p.Completed)

	w = s.do(t, user, http.MethodPatch, "/api/me", map[string]interface{}{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"github":     "@ada",
		"skills":     []string{"go", "sql", "rust"},
		"roles":      []string{"backend"},
		"experience": "expert",
	})
	is.Equal(w.Code, http.StatusOK)
	p = decode[profileJSON](t, w)
	is.Equal(p.FirstName, "Ada")
	is.Equal(p.Github, "ada")
	is.Equal(len(p.Skills), 3)
	is.True(p.Completed)

	w = s.do(t, user, http.MethodPatch, "/api/me", map[string]interface{}{
		"skills": []string{"go"},
	})
	is.Equal(w.Code, http.StatusBadRequest)

	w = s.do(t, user, http.MethodGet, "/api/me/team", nil)
	is.Equal(w.Code, http.StatusNotFound)
}

func TestRoleAPI(t *testing.T) {
	is := is.New(t)
	s := setup(t)
	admin := s.admin(t)
	user := uuid.New()

	w := s.do(t, user, http.MethodGet, "/api/me", nil)
	is.Equal(w.Code, http.StatusOK)

	path := fmt.Sprintf("/api/users/%s/role", user)
	w = s.do(t, user, http.MethodPut, path, map[string]string{"role": "admin"})
	is.Equal(w.Code, http.StatusForbidden)

	w = s.do(t, admin, http.MethodPut, path, map[string]string{"role": "overlord"})
	is.Equal(w.Code, http.StatusBadRequest)

	w = s.do(t, admin, http.MethodPut, path, map[string]string{})
	is.Equal(w.Code, http.StatusBadRequest)

	w = s.do(t, admin, http.MethodPut, path, map[string]string{"role": "judge"})
	is.Equal(w.Code, http.StatusOK)
	is.Equal(decode[profileJSON](t, w).Role, "judge")

	w = s.do(t, admin, http.MethodPut, "/api/users/not-a-uuid/role", map[string]string{"role": "judge"})
	is.Equal(w.Code, http.StatusBadRequest)

	w = s.do(t, admin, http.MethodPut, fmt.Sprintf("/api/users/%s/role", uuid.New()), map[string]string{"role": "judge"})
	is.Equal(w.Code, http.StatusNotFound)
}

func TestTeamAPI(t *testing.T) {
	is := is.New(t)
	s := setup(t)
	captain, applicant, stranger := uuid.New(), uuid.New(), uuid.New()

	w := s.do(t, captain, http.MethodPost, "/api/teams", map[string]interface{}{
		"name":        "Rocket",
		"description": "We build rockets",
		"looking_for": []string{"frontend", " frontend ", "design"},
	})
	is.Equal(w.Code, http.StatusCreated)
	team := decode[teamJSON](t, w)
	is.Equal(team.CaptainID, captain)
	is.Equal(team.Status, string(proto.TeamForming))
	is.Equal(len(team.LookingFor), 2)

	// A captain cannot found a second team.
	w = s.do(t, captain, http.MethodPost, "/api/teams", map[string]string{"name": "Second", "description": "Second team"})
	is.Equal(w.Code, http.StatusConflict)

	teamPath := fmt.Sprintf("/api/teams/%d", team.ID)

	w = s.do(t, applicant, http.MethodPost, teamPath+"/applications", map[string]string{"message": "let me in"})
	is.Equal(w.Code, http.StatusCreated)
	app := decode[applicationJSON](t, w)
	is.Equal(app.Status, string(proto.ApplicationPending))

	w = s.do(t, applicant, http.MethodPost, teamPath+"/applications", map[string]string{"message": "again"})
	is.Equal(w.Code, http.StatusConflict)
	is.Equal(decode[errorResponse](t, w).Kind, "conflict")

	w = s.do(t, stranger, http.MethodGet, teamPath+"/applications", nil)
	is.Equal(w.Code, http.StatusForbidden)

	w = s.do(t, captain, http.MethodGet, teamPath+"/applications", nil)
	is.Equal(w.Code, http.StatusOK)
	is.Equal(len(decode[[]applicationJSON](t, w)), 1)

	w = s.do(t, applicant, http.MethodGet, "/api/me/applications", nil)
	is.Equal(w.Code, http.StatusOK)
	is.Equal(len(decode[[]applicationJSON](t, w)), 1)

	appPath := fmt.Sprintf("/api/applications/%d", app.ID)
	w = s.do(t, stranger, http.MethodPost, appPath+"/accept", nil)
	is.Equal(w.Code, http.StatusForbidden)

	w = s.do(t, captain, http.MethodPost, appPath+"/accept", nil)
	is.Equal(w.Code, http.StatusOK)
	is.Equal(decode[applicationJSON](t, w).Status, string(proto.ApplicationAccepted))

	w = s.do(t, captain, http.MethodPost, appPath+"/reject", nil)
	is.Equal(w.Code, http.StatusConflict)
	is.Equal(decode[errorResponse](t, w).Kind, "invalid_state")

	w = s.do(t, captain, http.MethodPost, appPath+"/maybe", nil)
	is.Equal(w.Code, http.StatusNotFound)

	w = s.do(t, applicant, http.MethodGet, "/api/me/team", nil)
	is.Equal(w.Code, http.StatusOK)
	is.Equal(decode[teamJSON](t, w).ID, team.ID)

	w = s.do(t, stranger, http.MethodGet, teamPath, nil)
	is.Equal(w.Code, http.StatusOK)
	got := decode[teamJSON](t, w)
	is.True(got.MemberCount != nil)
	is.Equal(*got.MemberCount, 2)

	w = s.do(t, stranger, http.MethodGet, teamPath+"/members", nil)
	is.Equal(w.Code, http.StatusOK)
	members := decode[[]proto.Member](t, w)
	is.Equal(len(members), 2)
	is.Equal(members[0].UserID, captain)
	is.True(members[0].Captain)

	// Only the captain edits the team.
	w = s.do(t, applicant, http.MethodPatch, teamPath, map[string]string{"name": "Hijacked"})
	is.Equal(w.Code, http.StatusForbidden)

	w = s.do(t, captain, http.MethodPatch, teamPath, map[string]interface{}{"name": "Rocketeers", "looking_for": []string{}})
	is.Equal(w.Code, http.StatusOK)
	got = decode[teamJSON](t, w)
	is.Equal(got.Name, "Rocketeers")
	is.Equal(len(got.LookingFor), 0)

	w = s.do(t, captain, http.MethodPost, teamPath+"/leave", nil)
	is.Equal(w.Code, http.StatusUnprocessableEntity)
	is.Equal(decode[errorResponse](t, w).Kind, "invalid_operation")

	w = s.do(t, stranger, http.MethodPost, teamPath+"/leave", nil)
	is.Equal(w.Code, http.StatusNotFound)

	w = s.do(t, applicant, http.MethodPost, teamPath+"/leave", nil)
	is.Equal(w.Code, http.StatusNoContent)

	w = s.do(t, stranger, http.MethodGet, "/api/teams", nil)
	is.Equal(w.Code, http.StatusOK)
	is.Equal(len(decode[[]teamJSON](t, w)), 1)

	w = s.do(t, stranger, http.MethodDelete, teamPath, nil)
	is.Equal(w.Code, http.StatusForbidden)

	w = s.do(t, captain, http.MethodDelete, teamPath, nil)
	is.Equal(w.Code, http.StatusNoContent)

	w = s.do(t, captain, http.MethodGet, teamPath, nil)
	is.Equal(w.Code, http.StatusNotFound)
}

func TestHackathonAPI(t *testing.T) {
	is := is.New(t)
	s := setup(t)
	admin := s.admin(t)
	captain, member, judge := uuid.New(), uuid.New(), uuid.New()

	body := map[string]interface{}{
		"title":                 "Spring Jam",
		"description":           "Build things",
		"start_date":            epoch.Add(7 * 24 * time.Hour),
		"end_date":              epoch.Add(9 * 24 * time.Hour),
		"registration_deadline": epoch.Add(24 * time.Hour),
		"max_team_size":         2,
	}

	w := s.do(t, captain, http.MethodPost, "/api/hackathons", body)
	is.Equal(w.Code, http.StatusForbidden)

	w = s.do(t, admin, http.MethodPost, "/api/hackathons", body)
	is.Equal(w.Code, http.StatusCreated)
	h := decode[hackathonJSON](t, w)
	is.Equal(h.Slug, "spring-jam")
	is.Equal(h.Status, string(proto.HackathonUpcoming))

	w = s.do(t, admin, http.MethodPost, "/api/hackathons", body)
	is.Equal(w.Code, http.StatusConflict)

	hackathonPath := fmt.Sprintf("/api/hackathons/%d", h.ID)
	w = s.do(t, captain, http.MethodGet, hackathonPath, nil)
	is.Equal(w.Code, http.StatusOK)

	w = s.do(t, captain, http.MethodGet, "/api/hackathons", nil)
	is.Equal(w.Code, http.StatusOK)
	is.Equal(len(decode[[]hackathonJSON](t, w)), 1)

	body["max_team_size"] = 3
	w = s.do(t, admin, http.MethodPatch, hackathonPath, body)
	is.Equal(w.Code, http.StatusOK)
	is.Equal(decode[hackathonJSON](t, w).MaxTeamSize, 3)

	// Build a team of two.
	w = s.do(t, captain, http.MethodPost, "/api/teams", map[string]string{"name": "Rocket", "description": "Rocket team"})
	is.Equal(w.Code, http.StatusCreated)
	team := decode[teamJSON](t, w)
	w = s.do(t, member, http.MethodPost, fmt.Sprintf("/api/teams/%d/applications", team.ID), map[string]string{})
	is.Equal(w.Code, http.StatusCreated)
	app := decode[applicationJSON](t, w)
	w = s.do(t, captain, http.MethodPost, fmt.Sprintf("/api/applications/%d/accept", app.ID), nil)
	is.Equal(w.Code, http.StatusOK)

	regPath := hackathonPath + "/registrations"
	w = s.do(t, member, http.MethodPost, regPath, map[string]int64{"team_id": team.ID})
	is.Equal(w.Code, http.StatusForbidden)

	w = s.do(t, captain, http.MethodPost, regPath, map[string]int64{})
	is.Equal(w.Code, http.StatusBadRequest)

	w = s.do(t, captain, http.MethodPost, regPath, map[string]int64{"team_id": team.ID})
	is.Equal(w.Code, http.StatusCreated)
	reg := decode[registrationJSON](t, w)
	is.Equal(reg.TeamID, team.ID)
	is.Equal(reg.RegisteredBy, captain)

	w = s.do(t, captain, http.MethodPost, regPath, map[string]int64{"team_id": team.ID})
	is.Equal(w.Code, http.StatusConflict)

	w = s.do(t, member, http.MethodGet, fmt.Sprintf("%s/%d", regPath, team.ID), nil)
	is.Equal(w.Code, http.StatusOK)
	is.True(decode[registeredResponse](t, w).Registered)

	w = s.do(t, member, http.MethodGet, fmt.Sprintf("%s/%d", regPath, team.ID+1), nil)
	is.Equal(w.Code, http.StatusOK)
	is.True(!decode[registeredResponse](t, w).Registered)

	w = s.do(t, captain, http.MethodGet, fmt.Sprintf("/api/teams/%d", team.ID), nil)
	is.Equal(decode[teamJSON](t, w).Status, string(proto.TeamInHackathon))

	// Listing registrations needs a judge or better.
	w = s.do(t, member, http.MethodGet, regPath, nil)
	is.Equal(w.Code, http.StatusForbidden)

	w = s.do(t, judge, http.MethodGet, "/api/me", nil)
	is.Equal(w.Code, http.StatusOK)
	w = s.do(t, admin, http.MethodPut, fmt.Sprintf("/api/users/%s/role", judge), map[string]string{"role": "judge"})
	is.Equal(w.Code, http.StatusOK)

	w = s.do(t, judge, http.MethodGet, regPath, nil)
	is.Equal(w.Code, http.StatusOK)
	is.Equal(len(decode[[]registrationJSON](t, w)), 1)

	w = s.do(t, admin, http.MethodDelete, hackathonPath, nil)
	is.Equal(w.Code, http.StatusNoContent)

	w = s.do(t, admin, http.MethodGet, hackathonPath, nil)
	is.Equal(w.Code, http.StatusNotFound)
}

func TestRegistrationDeadlineAPI(t *testing.T) {
	is := is.New(t)
	s := setup(t)
	admin := s.admin(t)
	captain := uuid.New()

	w := s.do(t, admin, http.MethodPost, "/api/hackathons", map[string]interface{}{
		"title":                 "Late Jam",
		"start_date":            epoch.Add(7 * 24 * time.Hour),
		"end_date":              epoch.Add(9 * 24 * time.Hour),
		"registration_deadline": epoch.Add(24 * time.Hour),
		"max_team_size":         4,
	})
	is.Equal(w.Code, http.StatusCreated)
	h := decode[hackathonJSON](t, w)

	w = s.do(t, captain, http.MethodPost, "/api/teams", map[string]string{"name": "Tardy", "description": "Tardy team"})
	is.Equal(w.Code, http.StatusCreated)
	team := decode[teamJSON](t, w)

	s.clock.Advance(25 * time.Hour)

	w = s.do(t, captain, http.MethodPost, fmt.Sprintf("/api/hackathons/%d/registrations", h.ID), map[string]int64{"team_id": team.ID})
	is.Equal(w.Code, http.StatusUnprocessableEntity)
	is.Equal(decode[errorResponse](t, w).Kind, "deadline_passed")

	w = s.do(t, captain, http.MethodPost, "/api/hackathons/999/registrations", map[string]int64{"team_id": team.ID})
	is.Equal(w.Code, http.StatusNotFound)
}
