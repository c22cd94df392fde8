package web

import (
	"context"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/hackhub/hackhub/pkg/db"
	"github.com/hackhub/hackhub/pkg/db/migrate"
)

// HealthController registers the health check routes for the web server.
func HealthController(_ context.Context, r *mux.Router) {
	r.HandleFunc("/livez", getLiveness).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/readyz", getReadiness).Methods(http.MethodGet, http.MethodHead)
}

func getLiveness(w http.ResponseWriter, _ *http.Request) {
	renderStatus(http.StatusOK)(w, nil)
}

// getReadiness reports ready once the database answers and its schema is
// up to date.
func getReadiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := log.FromContext(ctx)
	dbx := db.FromContext(ctx)

	errs := make([]error, 0)
	if dbx == nil {
		errs = append(errs, fmt.Errorf("readiness check failed: no database"))
	} else if err := dbx.PingContext(ctx); err != nil {
		errs = append(errs, fmt.Errorf("readiness check failed: %w", err))
	} else if v, err := migrate.Version(ctx, dbx); err != nil {
		errs = append(errs, fmt.Errorf("readiness check failed: %w", err))
	} else if v != migrate.Latest() {
		errs = append(errs, fmt.Errorf("readiness check failed: schema version %d, want %d", v, migrate.Latest()))
	}

	if len(errs) > 0 {
		for _, err := range errs {
			logger.Warn(err.Error())
		}
		renderStatus(http.StatusServiceUnavailable)(w, nil)
		return
	}

	renderStatus(http.StatusOK)(w, nil)
}
