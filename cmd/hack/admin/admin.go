package admin

import (
	"fmt"

	"github.com/hackhub/hackhub/cmd"
	"github.com/hackhub/hackhub/pkg/backend"
	"github.com/hackhub/hackhub/pkg/config"
	"github.com/hackhub/hackhub/pkg/db"
	"github.com/hackhub/hackhub/pkg/db/migrate"
	"github.com/spf13/cobra"
)

var (
	// Command is the admin command.
	Command = &cobra.Command{
		Use:   "admin",
		Short: "Administrate the server",
	}

	migrateCmd = &cobra.Command{
		Use:                "migrate",
		Short:              "Migrate the database to the latest version",
		PersistentPreRunE:  cmd.InitBackendContext,
		PersistentPostRunE: cmd.CloseDBContext,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			db := db.FromContext(ctx)
			if err := migrate.Migrate(ctx, db); err != nil {
				return fmt.Errorf("migration: %w", err)
			}

			return nil
		},
	}

	rollbackCmd = &cobra.Command{
		Use:                "rollback",
		Short:              "Rollback the database to the previous version",
		PersistentPreRunE:  cmd.InitBackendContext,
		PersistentPostRunE: cmd.CloseDBContext,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			db := db.FromContext(ctx)
			if err := migrate.Rollback(ctx, db); err != nil {
				return fmt.Errorf("rollback: %w", err)
			}

			return nil
		},
	}

	promoteCmd = &cobra.Command{
		Use:                "promote-admins",
		Short:              "Promote the configured initial admins",
		PersistentPreRunE:  cmd.InitBackendContext,
		PersistentPostRunE: cmd.CloseDBContext,
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()
			cfg := config.FromContext(ctx)
			be := backend.FromContext(ctx)
			if err := be.PromoteAdmins(ctx, cfg.AdminIDs()); err != nil {
				return fmt.Errorf("promote admins: %w", err)
			}

			return nil
		},
	}

	refreshCmd = &cobra.Command{
		Use:                "refresh-statuses",
		Short:              "Recompute the status of every hackathon",
		PersistentPreRunE:  cmd.InitBackendContext,
		PersistentPostRunE: cmd.CloseDBContext,
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()
			be := backend.FromContext(ctx)
			n, err := be.RefreshHackathonStatuses(ctx)
			if err != nil {
				return fmt.Errorf("refresh statuses: %w", err)
			}

			c.Println(n)
			return nil
		},
	}
)

func init() {
	Command.AddCommand(
		migrateCmd,
		rollbackCmd,
		promoteCmd,
		refreshCmd,
	)
}
