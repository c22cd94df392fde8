package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caarlos0/tablewriter"
	"github.com/dustin/go-humanize"
	"github.com/hackhub/hackhub/pkg/backend"
	"github.com/hackhub/hackhub/pkg/webhook"
	"github.com/spf13/cobra"
)

// WebhookCommand returns a command that manages notification webhooks.
func WebhookCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "webhook",
		Aliases:            []string{"webhooks"},
		Short:              "Manage notification webhooks",
		PersistentPreRunE:  InitBackendContext,
		PersistentPostRunE: CloseDBContext,
	}

	cmd.AddCommand(
		webhookListCommand(),
		webhookCreateCommand(),
		webhookDeleteCommand(),
		webhookDeliveriesCommand(),
	)

	return cmd
}

var webhookEvents []string

func init() {
	events := webhook.Events()
	webhookEvents = make([]string, len(events))
	for i, e := range events {
		webhookEvents[i] = e.String()
	}
}

func webhookListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List webhooks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)
			user, err := User(cmd)
			if err != nil {
				return err
			}

			hooks, err := be.ListWebhooks(ctx, user)
			if err != nil {
				return err
			}

			return tablewriter.Render(
				cmd.OutOrStdout(),
				hooks,
				[]string{"ID", "URL", "Events", "Content Type", "Active", "Created At"},
				func(h webhook.Hook) ([]string, error) {
					events := make([]string, len(h.Events))
					for i, e := range h.Events {
						events[i] = e.String()
					}
					return []string{
						strconv.FormatInt(h.ID, 10),
						h.URL,
						strings.Join(events, ","),
						h.ContentType.String(),
						strconv.FormatBool(h.Active),
						humanize.Time(h.CreatedAt),
					}, nil
				},
			)
		},
	}
}

func webhookCreateCommand() *cobra.Command {
	var events []string
	var secret string
	var active bool
	var contentType string
	cmd := &cobra.Command{
		Use:   "create URL",
		Short: "Create a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)
			user, err := User(cmd)
			if err != nil {
				return err
			}

			var evs []webhook.Event
			for _, e := range events {
				ev, err := webhook.ParseEvent(e)
				if err != nil {
					return fmt.Errorf("invalid event: %w", err)
				}

				evs = append(evs, ev)
			}

			ct, err := webhook.ParseContentType(contentType)
			if err != nil {
				return err
			}

			h, err := be.CreateWebhook(ctx, user, strings.TrimSpace(args[0]), ct, secret, evs, active)
			if err != nil {
				return err
			}

			cmd.Println(h.ID)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&events, "events", "e", webhookEvents, fmt.Sprintf("events to trigger the webhook, available events are (%s)", strings.Join(webhookEvents, ", ")))
	cmd.Flags().StringVarP(&secret, "secret", "s", "", "secret to sign the webhook payload")
	cmd.Flags().BoolVarP(&active, "active", "a", true, "whether the webhook is active")
	cmd.Flags().StringVarP(&contentType, "content-type", "c", "json", "content type of the webhook payload, can be either `json` or `form`")

	return cmd
}

func webhookDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete WEBHOOK_ID",
		Aliases: []string{"rm"},
		Short:   "Delete a webhook",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)
			user, err := User(cmd)
			if err != nil {
				return err
			}

			id, err := parseID("webhook", args[0])
			if err != nil {
				return err
			}

			return be.DeleteWebhook(ctx, user, id)
		},
	}
}

func webhookDeliveriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "deliveries WEBHOOK_ID",
		Short: "List the recorded deliveries of a webhook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			be := backend.FromContext(ctx)
			user, err := User(cmd)
			if err != nil {
				return err
			}

			id, err := parseID("webhook", args[0])
			if err != nil {
				return err
			}

			deliveries, err := be.WebhookDeliveries(ctx, user, id)
			if err != nil {
				return err
			}

			return tablewriter.Render(
				cmd.OutOrStdout(),
				deliveries,
				[]string{"ID", "Event", "Status", "Error", "Created At"},
				func(d webhook.Delivery) ([]string, error) {
					return []string{
						d.ID.String(),
						d.Event.String(),
						strconv.Itoa(d.ResponseStatus),
						d.RequestError.String,
						humanize.Time(d.CreatedAt),
					}, nil
				},
			)
		},
	}
}
