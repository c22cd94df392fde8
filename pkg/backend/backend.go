package backend

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hackhub/hackhub/pkg/config"
	"github.com/hackhub/hackhub/pkg/db"
	"github.com/hackhub/hackhub/pkg/store"
	"github.com/hackhub/hackhub/pkg/webhook"
	"github.com/jonboulle/clockwork"
	"github.com/sourcegraph/conc/pool"
)

// Backend is the Hackhub backend that handles profiles, teams,
// applications, hackathons, and registrations.
//
// Every operation takes the acting user explicitly.
type Backend struct {
	ctx    context.Context
	cfg    *config.Config
	db     *db.DB
	store  store.Store
	logger *log.Logger
	cache  *cache
	clock  clockwork.Clock
	client *http.Client
	events *pool.Pool
}

// Option configures a Backend.
type Option func(*Backend)

// WithClock sets the clock used for timestamps and deadlines.
func WithClock(c clockwork.Clock) Option {
	return func(b *Backend) {
		b.clock = c
	}
}

// WithHTTPClient sets the client used to deliver webhooks.
func WithHTTPClient(c *http.Client) Option {
	return func(b *Backend) {
		b.client = c
	}
}

// New returns a new Hackhub backend.
func New(ctx context.Context, cfg *config.Config, db *db.DB, st store.Store, opts ...Option) *Backend {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	logger := log.FromContext(ctx).WithPrefix("backend")
	b := &Backend{
		ctx:    ctx,
		cfg:    cfg,
		db:     db,
		store:  st,
		logger: logger,
		clock:  clockwork.NewRealClock(),
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.client == nil {
		b.client = webhook.NewClient(cfg.Webhook.Timeout)
	}

	workers := cfg.Webhook.Workers
	if workers < 1 {
		workers = 1
	}
	b.events = pool.New().WithMaxGoroutines(workers)
	b.cache = newCache(b, cfg.Cache.Size)

	return b
}

// Close waits for in-flight webhook deliveries to finish.
func (d *Backend) Close() error {
	d.events.Wait()
	return nil
}

// Now returns the current time of the backend clock in UTC.
func (d *Backend) Now() time.Time {
	return d.clock.Now().UTC()
}

// sendEvent delivers payload to subscribed webhooks in the background.
// Delivery failures are logged and dropped.
func (d *Backend) sendEvent(payload webhook.EventPayload) {
	ctx := db.WithContext(d.ctx, d.db)
	ctx = store.WithContext(ctx, d.store)
	d.events.Go(func() {
		if err := webhook.SendEvent(ctx, d.client, payload); err != nil {
			d.logger.Error("failed to deliver webhook event", "event", payload.Event(), "team", payload.TeamID(), "err", err)
		}
	})
}
