package cmd

import (
	"time"

	"github.com/caarlos0/duration"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/backend"
	"github.com/hackhub/hackhub/pkg/proto"
	"github.com/spf13/cobra"
)

// TokenCommand returns a command that issues API bearer tokens.
func TokenCommand() *cobra.Command {
	var expiresIn string
	cmd := &cobra.Command{
		Use:                "token [USER_ID]",
		Short:              "Issue an API token for a user, the acting user by default",
		Args:               cobra.MaximumNArgs(1),
		PersistentPreRunE:  InitBackendContext,
		PersistentPostRunE: CloseDBContext,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)

			var user uuid.UUID
			var err error
			if len(args) == 1 {
				user, err = uuid.Parse(args[0])
				if err != nil {
					return proto.Validationf("invalid user ID %q", args[0])
				}
			} else if user, err = User(cmd); err != nil {
				return err
			}

			var ttl time.Duration
			if expiresIn != "" {
				ttl, err = duration.Parse(expiresIn)
				if err != nil {
					return err
				}
			}

			token, err := be.IssueToken(user, ttl)
			if err != nil {
				return err
			}

			if ttl <= 0 {
				ttl = be.TokenTTL()
			}
			cmd.PrintErrln("Token issued (expires " + humanize.Time(be.Now().Add(ttl)) + ")")
			cmd.Println(token)
			return nil
		},
	}

	cmd.Flags().StringVar(&expiresIn, "expires-in", "", "token expiration time (e.g. 1y, 3mo, 2w, 5d4h, 1h30m)")

	return cmd
}
