// Package cmd holds the hackhub command line commands that operate on the
// backend directly.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/backend"
	"github.com/hackhub/hackhub/pkg/config"
	"github.com/hackhub/hackhub/pkg/db"
	"github.com/hackhub/hackhub/pkg/proto"
	"github.com/hackhub/hackhub/pkg/store"
	"github.com/hackhub/hackhub/pkg/store/database"
	"github.com/spf13/cobra"
)

// UserEnv is the environment variable holding the acting user ID.
const UserEnv = "HACKHUB_USER"

// ErrNoUser is returned when a command needs an acting user and none is set.
var ErrNoUser = errors.New("no acting user: set " + UserEnv + " or pass --as")

// InitBackendContext initializes the backend context.
// The acting user is taken from the "--as" flag or the "HACKHUB_USER"
// environment variable, in that order.
func InitBackendContext(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	if cfg == nil {
		return config.ErrNilConfig
	}
	if _, err := os.Stat(cfg.DataPath); errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(cfg.DataPath, os.ModePerm); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}
	dbx, err := db.Open(ctx, cfg.DB.Driver, cfg.DB.DataSource)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	ctx = db.WithContext(ctx, dbx)
	dbstore := database.New(ctx, dbx)
	ctx = store.WithContext(ctx, dbstore)
	be := backend.New(ctx, cfg, dbx, dbstore)
	ctx = backend.WithContext(ctx, be)

	as := os.Getenv(UserEnv)
	if f := cmd.Flag("as"); f != nil && f.Changed {
		as = f.Value.String()
	}
	if as != "" {
		user, err := uuid.Parse(as)
		if err != nil {
			return fmt.Errorf("invalid acting user %q: %w", as, err)
		}
		ctx = proto.WithUserContext(ctx, user)
	}

	cmd.SetContext(ctx)

	return nil
}

// CloseDBContext waits for pending backend work and closes the database
// context.
func CloseDBContext(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if be := backend.FromContext(ctx); be != nil {
		if err := be.Close(); err != nil {
			return fmt.Errorf("close backend: %w", err)
		}
	}
	dbx := db.FromContext(ctx)
	if dbx != nil {
		if err := dbx.Close(); err != nil {
			return fmt.Errorf("close database: %w", err)
		}
	}

	return nil
}

// User returns the acting user of the command.
func User(cmd *cobra.Command) (uuid.UUID, error) {
	user, ok := proto.UserFromContext(cmd.Context())
	if !ok {
		return uuid.Nil, ErrNoUser
	}
	return user, nil
}

func parseID(kind, s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, proto.Validationf("invalid %s ID %q", kind, s)
	}
	return id, nil
}
