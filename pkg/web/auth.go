package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/backend"
	"github.com/hackhub/hackhub/pkg/proto"
)

func askCredentials(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="Hackhub"`)
}

// withAuth authenticates the request bearer token and stores the user in the
// request context.
func withAuth(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := log.FromContext(ctx)
		be := backend.FromContext(ctx)

		header := r.Header.Get("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
			askCredentials(w, r)
			renderUnauthorized(w, r)
			return
		}

		user, err := be.ParseToken(strings.TrimSpace(token))
		if err != nil {
			if !errors.Is(err, backend.ErrInvalidToken) {
				logger.Error("failed to authenticate", "err", err)
			}
			askCredentials(w, r)
			renderUnauthorized(w, r)
			return
		}

		logger.Debug("authenticated", "user", user)
		ctx = proto.WithUserContext(ctx, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// actor returns the authenticated user of the request.
func actor(r *http.Request) uuid.UUID {
	user, _ := proto.UserFromContext(r.Context())
	return user
}
