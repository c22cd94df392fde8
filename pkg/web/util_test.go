package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hackhub/hackhub/pkg/proto"
	"github.com/matryer/is"
)

func TestRenderError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		kind   string
	}{
		{proto.Validationf("bad"), http.StatusBadRequest, "validation"},
		{proto.ErrNotCaptain, http.StatusForbidden, "unauthorized"},
		{proto.ErrTeamNotFound, http.StatusNotFound, "not_found"},
		{proto.ErrAlreadyInTeam, http.StatusConflict, "conflict"},
		{proto.ErrApplicationNotPending, http.StatusConflict, "invalid_state"},
		{proto.ErrCaptainCannotLeave, http.StatusUnprocessableEntity, "invalid_operation"},
		{proto.ErrRegistrationClosed, http.StatusUnprocessableEntity, "deadline_passed"},
		{fmt.Errorf("wrapped: %w", proto.ErrTeamTooLarge), http.StatusUnprocessableEntity, "capacity"},
		{proto.ErrMultipleTeams, http.StatusInternalServerError, "integrity"},
		{errors.New("boom"), http.StatusInternalServerError, ""},
	}

	for _, c := range cases {
		t.Run(c.err.Error(), func(t *testing.T) {
			is := is.New(t)
			w := httptest.NewRecorder()
			renderError(w, httptest.NewRequest(http.MethodGet, "/", nil), c.err)
			is.Equal(w.Code, c.status)
			is.Equal(decode[errorResponse](t, w).Kind, c.kind)
		})
	}
}
