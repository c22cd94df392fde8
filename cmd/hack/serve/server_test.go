package serve

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hackhub/hackhub/pkg/backend"
	"github.com/hackhub/hackhub/pkg/config"
	"github.com/hackhub/hackhub/pkg/db"
	"github.com/hackhub/hackhub/pkg/db/migrate"
	"github.com/hackhub/hackhub/pkg/store"
	"github.com/hackhub/hackhub/pkg/store/database"
	"github.com/hackhub/hackhub/pkg/test"
	"github.com/matryer/is"
)

func setupServer(t *testing.T) *Server {
	t.Helper()
	is := is.New(t)

	ctx := log.WithContext(context.TODO(), log.New(io.Discard))
	cfg := config.DefaultConfig()
	cfg.DataPath = t.TempDir()
	cfg.Auth.JWTSecret = "test-secret"
	cfg.HTTP.ListenAddr = fmt.Sprintf("localhost:%d", test.RandomPort())
	cfg.Stats.ListenAddr = fmt.Sprintf("localhost:%d", test.RandomPort())
	ctx = config.WithContext(ctx, cfg)

	dbx, err := test.OpenSqlite(ctx, t)
	is.NoErr(err)
	is.NoErr(migrate.Migrate(ctx, dbx))

	st := database.New(ctx, dbx)
	be := backend.New(ctx, cfg, dbx, st)
	t.Cleanup(func() {
		_ = be.Close()
	})

	ctx = db.WithContext(ctx, dbx)
	ctx = store.WithContext(ctx, st)
	ctx = backend.WithContext(ctx, be)

	srv, err := NewServer(ctx)
	is.NoErr(err)
	return srv
}

func waitForListener(t *testing.T, addr string) {
	t.Helper()
	for i := 0; i < 50; i++ {
		conn, err := net.DialTimeout("tcp", addr, 100*time.Millisecond)
		if err == nil {
			_ = conn.Close()
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("server at %s did not start", addr)
}

func TestServer(t *testing.T) {
	is := is.New(t)
	srv := setupServer(t)

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Start()
	}()

	waitForListener(t, srv.Config.HTTP.ListenAddr)
	waitForListener(t, srv.Config.Stats.ListenAddr)

	for _, url := range []string{
		"http://" + srv.Config.HTTP.ListenAddr + "/livez",
		"http://" + srv.Config.HTTP.ListenAddr + "/readyz",
		"http://" + srv.Config.Stats.ListenAddr + "/metrics",
	} {
		resp, err := http.Get(url) //nolint:noctx
		is.NoErr(err)
		is.Equal(resp.StatusCode, http.StatusOK) // url
		_ = resp.Body.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	is.NoErr(srv.Shutdown(ctx))
	is.NoErr(<-errc)
}

func TestNewServerWithoutStats(t *testing.T) {
	is := is.New(t)
	srv := setupServer(t)
	is.True(srv.StatsServer != nil)

	cfg := *srv.Config
	cfg.Stats.ListenAddr = ""
	ctx := config.WithContext(srv.ctx, &cfg)
	srv, err := NewServer(ctx)
	is.NoErr(err)
	is.True(srv.StatsServer == nil)
	is.NoErr(srv.Close())
}
