package web

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/hackhub/hackhub/pkg/config"
)

// NewRouter returns a new HTTP router.
func NewRouter(ctx context.Context) http.Handler {
	logger := log.FromContext(ctx).WithPrefix("http")
	router := mux.NewRouter()

	// Health routes
	HealthController(ctx, router)

	// API routes
	APIController(ctx, router)

	router.NotFoundHandler = http.HandlerFunc(renderNotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(renderMethodNotAllowed)

	// Context handler
	// Adds context to the request
	h := NewLoggingMiddleware(router, logger)
	h = NewContextHandler(ctx)(h)
	h = handlers.CompressHandler(h)
	h = handlers.RecoveryHandler()(h)
	if cfg := config.FromContext(ctx); cfg != nil && len(cfg.HTTP.CORS.AllowedOrigins) > 0 {
		h = handlers.CORS(
			handlers.AllowedHeaders(cfg.HTTP.CORS.AllowedHeaders),
			handlers.AllowedOrigins(cfg.HTTP.CORS.AllowedOrigins),
			handlers.AllowedMethods(cfg.HTTP.CORS.AllowedMethods),
		)(h)
	}

	return h
}
