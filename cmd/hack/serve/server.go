package serve

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/hackhub/hackhub/pkg/backend"
	"github.com/hackhub/hackhub/pkg/config"
	"github.com/hackhub/hackhub/pkg/cron"
	"github.com/hackhub/hackhub/pkg/db"
	"github.com/hackhub/hackhub/pkg/stats"
	"github.com/hackhub/hackhub/pkg/web"
	"golang.org/x/sync/errgroup"
)

// Server is the Hackhub server.
type Server struct {
	HTTPServer  *web.HTTPServer
	StatsServer *stats.StatsServer
	Cron        *cron.Scheduler
	Config      *config.Config
	Backend     *backend.Backend
	DB          *db.DB

	logger *log.Logger
	ctx    context.Context
}

// NewServer returns a new *Server configured to serve Hackhub.
// It expects a context with *backend.Backend, *db.DB, *log.Logger, and
// *config.Config attached.
func NewServer(ctx context.Context) (*Server, error) {
	var err error
	cfg := config.FromContext(ctx)
	if cfg == nil {
		return nil, config.ErrNilConfig
	}
	srv := &Server{
		Config:  cfg,
		Backend: backend.FromContext(ctx),
		DB:      db.FromContext(ctx),
		logger:  log.FromContext(ctx).WithPrefix("server"),
		ctx:     ctx,
	}

	// Add cron jobs.
	srv.Cron = cron.NewScheduler(ctx)
	srv.Cron.AddJobs(ctx)

	srv.HTTPServer, err = web.NewHTTPServer(ctx)
	if err != nil {
		return nil, fmt.Errorf("create http server: %w", err)
	}

	if cfg.Stats.ListenAddr != "" {
		srv.StatsServer, err = stats.NewStatsServer(ctx)
		if err != nil {
			return nil, fmt.Errorf("create stats server: %w", err)
		}
	}

	return srv, nil
}

// Start starts the HTTP server, the stats server, and the job scheduler. It
// blocks until the servers stop.
func (s *Server) Start() error {
	errg, _ := errgroup.WithContext(s.ctx)

	errg.Go(func() error {
		s.logger.Print("Starting HTTP server", "addr", s.Config.HTTP.ListenAddr)
		if err := s.HTTPServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// optionally start the Stats server
	if s.StatsServer != nil {
		errg.Go(func() error {
			s.logger.Print("Starting Stats server", "addr", s.Config.Stats.ListenAddr)
			if err := s.StatsServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	errg.Go(func() error {
		s.Cron.Start()
		return nil
	})
	return errg.Wait()
}

// Shutdown lets the server gracefully shutdown.
func (s *Server) Shutdown(ctx context.Context) error {
	errg, ctx := errgroup.WithContext(ctx)
	errg.Go(func() error {
		return s.HTTPServer.Shutdown(ctx)
	})
	if s.StatsServer != nil {
		errg.Go(func() error {
			return s.StatsServer.Shutdown(ctx)
		})
	}
	errg.Go(func() error {
		s.Cron.RemoveJobs()
		return s.Cron.Shutdown(ctx)
	})
	return errg.Wait()
}

// Close closes the server immediately.
func (s *Server) Close() error {
	var errg errgroup.Group
	errg.Go(s.HTTPServer.Close)
	if s.StatsServer != nil {
		errg.Go(s.StatsServer.Close)
	}
	errg.Go(func() error {
		s.Cron.Stop()
		return nil
	})
	return errg.Wait()
}
