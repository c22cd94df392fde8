package database

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/hackhub/hackhub/pkg/config"
	"github.com/hackhub/hackhub/pkg/db"
	"github.com/hackhub/hackhub/pkg/store"
)

type datastore struct {
	ctx    context.Context
	cfg    *config.Config
	db     *db.DB
	logger *log.Logger

	*profileStore
	*teamStore
	*membershipStore
	*applicationStore
	*hackathonStore
	*registrationStore
	*webhookStore
}

// New returns a new store.Store database.
func New(ctx context.Context, db *db.DB) store.Store {
	cfg := config.FromContext(ctx)
	logger := log.FromContext(ctx).WithPrefix("store")

	s := &datastore{
		ctx:    ctx,
		cfg:    cfg,
		db:     db,
		logger: logger,

		profileStore:      &profileStore{},
		teamStore:         &teamStore{},
		membershipStore:   &membershipStore{},
		applicationStore:  &applicationStore{},
		hackathonStore:    &hackathonStore{},
		registrationStore: &registrationStore{},
		webhookStore:      &webhookStore{},
	}

	return s
}
