package stats

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hackhub/hackhub/pkg/config"
	"github.com/matryer/is"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var testCounter = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "hackhub",
	Subsystem: "test",
	Name:      "hits_total",
	Help:      "Counter used by the stats tests",
})

func TestHandler(t *testing.T) {
	is := is.New(t)
	testCounter.Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	is.Equal(rec.Code, http.StatusOK)

	body, err := io.ReadAll(rec.Body)
	is.NoErr(err)
	is.True(strings.Contains(string(body), "hackhub_test_hits_total 1"))
}

func TestNewStatsServer(t *testing.T) {
	is := is.New(t)

	_, err := NewStatsServer(context.TODO())
	is.Equal(err, config.ErrNilConfig)

	cfg := config.DefaultConfig()
	s, err := NewStatsServer(config.WithContext(context.TODO(), cfg))
	is.NoErr(err)
	is.Equal(s.server.Addr, "localhost:8081")
	is.NoErr(s.Close())
}
