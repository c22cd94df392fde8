package cmd

import (
	"strings"

	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/access"
	"github.com/hackhub/hackhub/pkg/backend"
	"github.com/hackhub/hackhub/pkg/proto"
	"github.com/spf13/cobra"
)

// ProfileCommand returns a command that manages participant profiles.
func ProfileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "profile",
		Aliases:            []string{"me"},
		Short:              "Manage profiles",
		PersistentPreRunE:  InitBackendContext,
		PersistentPostRunE: CloseDBContext,
	}

	cmd.AddCommand(
		profileShowCommand(),
		profileUpdateCommand(),
		profileRoleCommand(),
	)

	return cmd
}

func printProfile(cmd *cobra.Command, p proto.Profile) {
	cmd.Println("User:", p.UserID())
	cmd.Println("Name:", strings.TrimSpace(p.FirstName()+" "+p.LastName()))
	cmd.Println("GitHub:", p.Github())
	cmd.Println("Telegram:", p.Telegram())
	cmd.Println("Skills:", strings.Join(p.Skills(), ", "))
	cmd.Println("Roles:", strings.Join(p.Roles(), ", "))
	cmd.Println("Experience:", p.Experience())
	cmd.Println("Role:", p.Role())
	cmd.Println("Completed:", p.IsCompleted())
}

func profileShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [USER_ID]",
		Short: "Show a profile, yours by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)

			var p proto.Profile
			if len(args) == 1 {
				user, err := uuid.Parse(args[0])
				if err != nil {
					return proto.Validationf("invalid user ID %q", args[0])
				}
				if p, err = be.Profile(ctx, user); err != nil {
					return err
				}
			} else {
				user, err := User(cmd)
				if err != nil {
					return err
				}
				if p, err = be.EnsureProfile(ctx, user); err != nil {
					return err
				}
			}

			printProfile(cmd, p)
			return nil
		},
	}
}

func profileUpdateCommand() *cobra.Command {
	var firstName, lastName, github, telegram, experience string
	var skills, roles []string
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)
			user, err := User(cmd)
			if err != nil {
				return err
			}

			var patch proto.ProfilePatch
			flags := cmd.Flags()
			if flags.Changed("first-name") {
				patch.FirstName = &firstName
			}
			if flags.Changed("last-name") {
				patch.LastName = &lastName
			}
			if flags.Changed("github") {
				patch.Github = &github
			}
			if flags.Changed("telegram") {
				patch.Telegram = &telegram
			}
			if flags.Changed("experience") {
				patch.Experience = &experience
			}
			if flags.Changed("skills") {
				patch.Skills = append([]string{}, skills...)
			}
			if flags.Changed("roles") {
				patch.Roles = append([]string{}, roles...)
			}

			if _, err := be.EnsureProfile(ctx, user); err != nil {
				return err
			}

			p, err := be.UpdateProfile(ctx, user, patch)
			if err != nil {
				return err
			}

			printProfile(cmd, p)
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&github, "github", "", "GitHub handle")
	cmd.Flags().StringVar(&telegram, "telegram", "", "Telegram handle")
	cmd.Flags().StringVar(&experience, "experience", "", "experience level (beginner, intermediate, advanced, expert)")
	cmd.Flags().StringSliceVar(&skills, "skills", nil, "skill tags")
	cmd.Flags().StringSliceVar(&roles, "roles", nil, "team roles you play")

	return cmd
}

func profileRoleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "role USER_ID [ROLE]",
		Short: "Get or set the platform role of a user",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)
			user, err := uuid.Parse(args[0])
			if err != nil {
				return proto.Validationf("invalid user ID %q", args[0])
			}

			if len(args) == 1 {
				role, err := be.Role(ctx, user)
				if err != nil {
					return err
				}
				cmd.Println(role)
				return nil
			}

			actor, err := User(cmd)
			if err != nil {
				return err
			}

			return be.SetRole(ctx, actor, user, access.ParseRole(args[1]))
		},
	}
}
