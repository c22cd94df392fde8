package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/hackhub/hackhub/pkg/proto"
)

// maxBodySize caps the size of JSON request bodies.
const maxBodySize = 1 << 20

func renderStatus(code int) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
		io.WriteString(w, fmt.Sprintf("%d %s", code, http.StatusText(code))) //nolint:errcheck,gosec
	}
}

func renderJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("error encoding json", "err", err)
	}
}

// errorResponse is the body of every failed API request.
type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// errorKinds maps error kinds to their HTTP status and wire name.
var errorKinds = []struct {
	kind   error
	status int
	name   string
}{
	{proto.ErrValidation, http.StatusBadRequest, "validation"},
	{proto.ErrUnauthorized, http.StatusForbidden, "unauthorized"},
	{proto.ErrNotFound, http.StatusNotFound, "not_found"},
	{proto.ErrConflict, http.StatusConflict, "conflict"},
	{proto.ErrInvalidState, http.StatusConflict, "invalid_state"},
	{proto.ErrInvalidOperation, http.StatusUnprocessableEntity, "invalid_operation"},
	{proto.ErrDeadlinePassed, http.StatusUnprocessableEntity, "deadline_passed"},
	{proto.ErrCapacity, http.StatusUnprocessableEntity, "capacity"},
	{proto.ErrIntegrity, http.StatusInternalServerError, "integrity"},
}

// renderError writes err as JSON with the status code of its kind. Errors
// without a kind are logged and reported as internal server errors.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	kind := proto.Kind(err)
	for _, k := range errorKinds {
		if k.kind != kind {
			continue
		}
		if k.status >= http.StatusInternalServerError {
			log.FromContext(r.Context()).Error("request failed", "err", err)
		}
		renderJSON(w, k.status, errorResponse{Error: err.Error(), Kind: k.name})
		return
	}

	log.FromContext(r.Context()).Error("request failed", "err", err)
	renderInternalServerError(w, r)
}

func renderNotFound(w http.ResponseWriter, _ *http.Request) {
	renderJSON(w, http.StatusNotFound, errorResponse{Error: http.StatusText(http.StatusNotFound), Kind: "not_found"})
}

func renderMethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	renderJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: http.StatusText(http.StatusMethodNotAllowed)})
}

func renderUnauthorized(w http.ResponseWriter, _ *http.Request) {
	renderJSON(w, http.StatusUnauthorized, errorResponse{Error: http.StatusText(http.StatusUnauthorized), Kind: "unauthenticated"})
}

func renderInternalServerError(w http.ResponseWriter, _ *http.Request) {
	renderJSON(w, http.StatusInternalServerError, errorResponse{Error: http.StatusText(http.StatusInternalServerError)})
}

// parseJSON decodes the request body into v. Malformed bodies are reported as
// validation errors.
func parseJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return proto.Validationf("empty request body")
		}
		return proto.Validationf("invalid request body: %v", err)
	}
	return nil
}

// idVar returns the numeric route variable name.
func idVar(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, proto.Validationf("invalid %s", name)
	}
	return id, nil
}

// userVar returns the UUID route variable name.
func userVar(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		return uuid.Nil, proto.Validationf("invalid %s", name)
	}
	return id, nil
}
