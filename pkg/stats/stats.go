// Package stats serves the Prometheus metrics of the server.
package stats

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hackhub/hackhub/pkg/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StatsServer serves the /metrics endpoint.
type StatsServer struct { //nolint:revive
	ctx    context.Context
	cfg    *config.Config
	logger *log.Logger
	server *http.Server
}

// NewStatsServer returns a new StatsServer configured from the context.
func NewStatsServer(ctx context.Context) (*StatsServer, error) {
	cfg := config.FromContext(ctx)
	if cfg == nil {
		return nil, config.ErrNilConfig
	}

	return &StatsServer{
		ctx:    ctx,
		cfg:    cfg,
		logger: log.FromContext(ctx).WithPrefix("stats"),
		server: &http.Server{
			Addr:              cfg.Stats.ListenAddr,
			Handler:           Handler(),
			ReadHeaderTimeout: time.Second * 10,
			ReadTimeout:       time.Second * 10,
			WriteTimeout:      time.Second * 10,
			MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
		},
	}, nil
}

// Handler returns the metrics handler.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// ListenAndServe starts the StatsServer.
func (s *StatsServer) ListenAndServe() error {
	return s.server.ListenAndServe() //nolint:wrapcheck
}

// Shutdown gracefully shuts down the StatsServer.
func (s *StatsServer) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx) //nolint:wrapcheck
}

// Close closes the StatsServer.
func (s *StatsServer) Close() error {
	return s.server.Close() //nolint:wrapcheck
}
