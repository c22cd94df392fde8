package cmd

import (
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/tablewriter"
	"github.com/hackhub/hackhub/pkg/backend"
	"github.com/hackhub/hackhub/pkg/proto"
	"github.com/spf13/cobra"
)

// HackathonCommand returns a command that manages hackathons and team
// registrations.
func HackathonCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "hackathon",
		Aliases:            []string{"hackathons"},
		Short:              "Manage hackathons and registrations",
		PersistentPreRunE:  InitBackendContext,
		PersistentPostRunE: CloseDBContext,
	}

	cmd.AddCommand(
		hackathonCreateCommand(),
		hackathonListCommand(),
		hackathonInfoCommand(),
		hackathonDeleteCommand(),
		hackathonRegisterCommand(),
		hackathonRegisteredCommand(),
		hackathonRegistrationsCommand(),
	)

	return cmd
}

// parseTime accepts RFC 3339 timestamps and plain dates, which are taken as
// midnight UTC.
func parseTime(field, s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Time{}, proto.Validationf("invalid %s %q: use YYYY-MM-DD or RFC 3339", field, s)
}

// hackathonArg resolves a hackathon by ID or slug.
func hackathonArg(cmd *cobra.Command, arg string) (proto.Hackathon, error) {
	ctx := cmd.Context()
	be := backend.FromContext(ctx)
	if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return be.Hackathon(ctx, id)
	}
	return be.HackathonBySlug(ctx, arg)
}

func hackathonCreateCommand() *cobra.Command {
	var opts proto.HackathonOptions
	var start, end, deadline string
	cmd := &cobra.Command{
		Use:   "create TITLE",
		Short: "Create a hackathon",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)
			user, err := User(cmd)
			if err != nil {
				return err
			}

			opts.Title = strings.Join(args, " ")
			if opts.StartDate, err = parseTime("start date", start); err != nil {
				return err
			}
			if opts.EndDate, err = parseTime("end date", end); err != nil {
				return err
			}
			if opts.RegistrationDeadline, err = parseTime("registration deadline", deadline); err != nil {
				return err
			}

			h, err := be.CreateHackathon(ctx, user, opts)
			if err != nil {
				return err
			}

			cmd.PrintErrln("Hackathon created")
			cmd.Println(h.ID(), h.Slug())
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "hackathon description")
	cmd.Flags().StringVar(&opts.Rules, "rules", "", "hackathon rules")
	cmd.Flags().StringVar(&opts.Prizes, "prizes", "", "hackathon prizes")
	cmd.Flags().StringVar(&start, "start", "", "start date")
	cmd.Flags().StringVar(&end, "end", "", "end date")
	cmd.Flags().StringVar(&deadline, "deadline", "", "registration deadline")
	cmd.Flags().IntVarP(&opts.MaxTeamSize, "max-team-size", "m", 5, "maximum number of members per team")
	cmd.Flags().BoolVar(&opts.Draft, "draft", false, "create the hackathon as a draft")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	_ = cmd.MarkFlagRequired("deadline")

	return cmd
}

func hackathonListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List hackathons",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)
			hs, err := be.ListHackathons(ctx)
			if err != nil {
				return err
			}

			return tablewriter.Render(
				cmd.OutOrStdout(),
				hs,
				[]string{"ID", "Slug", "Title", "Status", "Max Team Size", "Registration Deadline"},
				func(h proto.Hackathon) ([]string, error) {
					return []string{
						strconv.FormatInt(h.ID(), 10),
						h.Slug(),
						h.Title(),
						string(h.Status()),
						strconv.Itoa(h.MaxTeamSize()),
						h.RegistrationDeadline().Format(time.RFC3339),
					}, nil
				},
			)
		},
	}
}

func hackathonInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info HACKATHON",
		Short: "Show hackathon details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := hackathonArg(cmd, args[0])
			if err != nil {
				return err
			}

			cmd.Println("ID:", h.ID())
			cmd.Println("Slug:", h.Slug())
			cmd.Println("Title:", h.Title())
			cmd.Println("Status:", h.Status())
			cmd.Println("Description:", h.Description())
			cmd.Println("Start:", h.StartDate().Format(time.RFC3339))
			cmd.Println("End:", h.EndDate().Format(time.RFC3339))
			cmd.Println("Registration deadline:", h.RegistrationDeadline().Format(time.RFC3339))
			cmd.Println("Max team size:", h.MaxTeamSize())
			return nil
		},
	}
}

func hackathonDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete HACKATHON",
		Aliases: []string{"rm"},
		Short:   "Delete a hackathon and its registrations",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)
			user, err := User(cmd)
			if err != nil {
				return err
			}

			h, err := hackathonArg(cmd, args[0])
			if err != nil {
				return err
			}

			return be.DeleteHackathon(ctx, user, h.ID())
		},
	}
}

func hackathonRegisterCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "register HACKATHON TEAM_ID",
		Short: "Register a team you captain for a hackathon",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)
			user, err := User(cmd)
			if err != nil {
				return err
			}

			h, err := hackathonArg(cmd, args[0])
			if err != nil {
				return err
			}

			teamID, err := parseID("team", args[1])
			if err != nil {
				return err
			}

			if _, err := be.RegisterTeam(ctx, h.ID(), teamID, user); err != nil {
				return err
			}

			cmd.PrintErrln("Team registered")
			return nil
		},
	}
}

func hackathonRegisteredCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "registered HACKATHON TEAM_ID",
		Short: "Check whether a team is registered for a hackathon",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)
			h, err := hackathonArg(cmd, args[0])
			if err != nil {
				return err
			}

			teamID, err := parseID("team", args[1])
			if err != nil {
				return err
			}

			ok, err := be.IsRegistered(ctx, h.ID(), teamID)
			if err != nil {
				return err
			}

			cmd.Println(ok)
			return nil
		},
	}
}

func hackathonRegistrationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "registrations HACKATHON",
		Short: "List the teams registered for a hackathon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)
			user, err := User(cmd)
			if err != nil {
				return err
			}

			h, err := hackathonArg(cmd, args[0])
			if err != nil {
				return err
			}

			regs, err := be.ListRegistrations(ctx, h.ID(), user)
			if err != nil {
				return err
			}

			return tablewriter.Render(
				cmd.OutOrStdout(),
				regs,
				[]string{"Team", "Registered By", "Registered At"},
				func(r proto.Registration) ([]string, error) {
					return []string{
						strconv.FormatInt(r.TeamID(), 10),
						r.RegisteredBy().String(),
						r.RegisteredAt().Format(time.RFC3339),
					}, nil
				},
			)
		},
	}
}
