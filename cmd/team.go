package cmd

import (
	"strconv"
	"strings"

	"github.com/caarlos0/tablewriter"
	"github.com/dustin/go-humanize"
	"github.com/hackhub/hackhub/pkg/backend"
	"github.com/hackhub/hackhub/pkg/proto"
	"github.com/spf13/cobra"
)

// TeamCommand returns a command that manages teams and their applications.
func TeamCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "team",
		Aliases:            []string{"teams"},
		Short:              "Manage teams",
		PersistentPreRunE:  InitBackendContext,
		PersistentPostRunE: CloseDBContext,
	}

	cmd.AddCommand(
		teamCreateCommand(),
		teamListCommand(),
		teamInfoCommand(),
		teamUpdateCommand(),
		teamDeleteCommand(),
		teamMembersCommand(),
		teamLeaveCommand(),
		teamApplyCommand(),
		teamApplicationsCommand(),
		teamRespondCommand(proto.Accept),
		teamRespondCommand(proto.Reject),
	)

	return cmd
}

func teamCreateCommand() *cobra.Command {
	var description string
	var lookingFor []string
	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a team captained by you",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)
			user, err := User(cmd)
			if err != nil {
				return err
			}

			t, err := be.CreateTeam(ctx, user, strings.Join(args, " "), description, lookingFor)
			if err != nil {
				return err
			}

			cmd.PrintErrln("Team created")
			cmd.Println(t.ID())
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "team description")
	cmd.Flags().StringSliceVarP(&lookingFor, "looking-for", "l", nil, "roles the team is recruiting")

	return cmd
}

func teamListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List teams",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)
			teams, err := be.ListTeams(ctx)
			if err != nil {
				return err
			}

			return tablewriter.Render(
				cmd.OutOrStdout(),
				teams,
				[]string{"ID", "Name", "Captain", "Status", "Looking For", "Created At"},
				func(t proto.Team) ([]string, error) {
					return []string{
						strconv.FormatInt(t.ID(), 10),
						t.Name(),
						t.CaptainID().String(),
						string(t.Status()),
						strings.Join(t.LookingFor(), ","),
						humanize.Time(t.CreatedAt()),
					}, nil
				},
			)
		},
	}
}

func teamInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info TEAM_ID",
		Short: "Show team details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)
			id, err := parseID("team", args[0])
			if err != nil {
				return err
			}

			t, err := be.Team(ctx, id)
			if err != nil {
				return err
			}

			count, err := be.MemberCount(ctx, id)
			if err != nil {
				return err
			}

			cmd.Println("ID:", t.ID())
			cmd.Println("Name:", t.Name())
			cmd.Println("Description:", t.Description())
			cmd.Println("Captain:", t.CaptainID())
			cmd.Println("Status:", t.Status())
			cmd.Println("Looking for:", strings.Join(t.LookingFor(), ", "))
			cmd.Println("Members:", count)
			cmd.Println("Created:", humanize.Time(t.CreatedAt()))
			return nil
		},
	}
}

func teamUpdateCommand() *cobra.Command {
	var name, description string
	var lookingFor []string
	cmd := &cobra.Command{
		Use:   "update TEAM_ID",
		Short: "Update a team you captain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)
			user, err := User(cmd)
			if err != nil {
				return err
			}

			id, err := parseID("team", args[0])
			if err != nil {
				return err
			}

			var patch proto.TeamPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("looking-for") {
				patch.LookingFor = append([]string{}, lookingFor...)
			}

			_, err = be.UpdateTeam(ctx, id, user, patch)
			return err
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "new team name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new team description")
	cmd.Flags().StringSliceVarP(&lookingFor, "looking-for", "l", nil, "roles the team is recruiting, empty to clear")

	return cmd
}

func teamDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete TEAM_ID",
		Aliases: []string{"rm"},
		Short:   "Delete a team",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)
			user, err := User(cmd)
			if err != nil {
				return err
			}

			id, err := parseID("team", args[0])
			if err != nil {
				return err
			}

			return be.DeleteTeam(ctx, id, user)
		},
	}
}

func teamMembersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "members TEAM_ID",
		Short: "List the members of a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)
			id, err := parseID("team", args[0])
			if err != nil {
				return err
			}

			members, err := be.TeamMembers(ctx, id)
			if err != nil {
				return err
			}

			return tablewriter.Render(
				cmd.OutOrStdout(),
				members,
				[]string{"User", "Name", "Captain", "Joined"},
				func(m proto.Member) ([]string, error) {
					return []string{
						m.UserID.String(),
						strings.TrimSpace(m.FirstName + " " + m.LastName),
						strconv.FormatBool(m.Captain),
						humanize.Time(m.JoinedAt),
					}, nil
				},
			)
		},
	}
}

func teamLeaveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "leave TEAM_ID",
		Short: "Leave a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)
			user, err := User(cmd)
			if err != nil {
				return err
			}

			id, err := parseID("team", args[0])
			if err != nil {
				return err
			}

			return be.LeaveTeam(ctx, id, user)
		},
	}
}

func teamApplyCommand() *cobra.Command {
	var message string
	cmd := &cobra.Command{
		Use:   "apply TEAM_ID",
		Short: "Apply to join a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)
			user, err := User(cmd)
			if err != nil {
				return err
			}

			id, err := parseID("team", args[0])
			if err != nil {
				return err
			}

			app, err := be.Apply(ctx, id, user, message)
			if err != nil {
				return err
			}

			cmd.PrintErrln("Application sent")
			cmd.Println(app.ID())
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "message to the captain")

	return cmd
}

func teamApplicationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "applications [TEAM_ID]",
		Short: "List applications to a team you captain, or your own",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)
			user, err := User(cmd)
			if err != nil {
				return err
			}

			var apps []proto.Application
			if len(args) == 1 {
				id, err := parseID("team", args[0])
				if err != nil {
					return err
				}
				apps, err = be.ListApplications(ctx, id, user)
				if err != nil {
					return err
				}
			} else {
				apps, err = be.ListUserApplications(ctx, user)
				if err != nil {
					return err
				}
			}

			return tablewriter.Render(
				cmd.OutOrStdout(),
				apps,
				[]string{"ID", "Team", "User", "Status", "Message", "Created At"},
				func(a proto.Application) ([]string, error) {
					return []string{
						strconv.FormatInt(a.ID(), 10),
						strconv.FormatInt(a.TeamID(), 10),
						a.UserID().String(),
						string(a.Status()),
						a.Message(),
						humanize.Time(a.CreatedAt()),
					}, nil
				},
			)
		},
	}
}

func teamRespondCommand(decision proto.Decision) *cobra.Command {
	return &cobra.Command{
		Use:   decision.String() + " APPLICATION_ID",
		Short: strings.ToUpper(decision.String()[:1]) + decision.String()[1:] + " an application to your team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)
			user, err := User(cmd)
			if err != nil {
				return err
			}

			id, err := parseID("application", args[0])
			if err != nil {
				return err
			}

			app, err := be.Respond(ctx, id, user, decision)
			if err != nil {
				return err
			}

			cmd.Println(app.Status())
			return nil
		},
	}
}
