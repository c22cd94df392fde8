package backend

import (
	"context"

	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/access"
	"github.com/hackhub/hackhub/pkg/db"
	"github.com/hackhub/hackhub/pkg/db/models"
	"github.com/hackhub/hackhub/pkg/proto"
	"github.com/hackhub/hackhub/pkg/webhook"
)

// CreateWebhook registers a webhook endpoint subscribed to events.
func (d *Backend) CreateWebhook(ctx context.Context, actor uuid.UUID, url string, contentType webhook.ContentType, secret string, events []webhook.Event, active bool) (webhook.Hook, error) {
	if err := webhook.ValidateWebhookURL(ctx, url); err != nil {
		return webhook.Hook{}, invalid(err)
	}

	if contentType != webhook.ContentTypeJSON && contentType != webhook.ContentTypeForm {
		return webhook.Hook{}, invalid(webhook.ErrInvalidContentType)
	}

	if len(events) == 0 {
		return webhook.Hook{}, proto.Validationf("at least one event is required")
	}

	evs := make([]int, 0, len(events))
	seen := map[webhook.Event]struct{}{}
	for _, e := range events {
		if e.String() == "" {
			return webhook.Hook{}, invalid(webhook.ErrInvalidEvent)
		}
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		evs = append(evs, int(e))
	}

	var id int64
	if err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		if err := d.authorize(ctx, tx, actor, access.ManageWebhooks); err != nil {
			return err
		}

		var err error
		id, err = d.store.CreateWebhook(ctx, tx, url, secret, int(contentType), active)
		if err != nil {
			if isDuplicate(err) {
				return proto.ErrWebhookExists
			}
			return err
		}

		return d.store.CreateWebhookEvents(ctx, tx, id, evs)
	}); err != nil {
		return webhook.Hook{}, db.WrapError(err)
	}

	d.logger.Info("created webhook", "webhook", id, "url", url, "actor", actor)
	return d.webhook(ctx, id)
}

// ListWebhooks returns all webhooks with their events.
func (d *Backend) ListWebhooks(ctx context.Context, actor uuid.UUID) ([]webhook.Hook, error) {
	var (
		webhooks      []models.Webhook
		webhookEvents = map[int64][]models.WebhookEvent{}
	)
	if err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		if err := d.authorize(ctx, tx, actor, access.ManageWebhooks); err != nil {
			return err
		}

		var err error
		webhooks, err = d.store.GetWebhooks(ctx, tx)
		if err != nil {
			return err
		}

		for _, h := range webhooks {
			events, err := d.store.GetWebhookEventsByWebhookID(ctx, tx, h.ID)
			if err != nil {
				return err
			}
			webhookEvents[h.ID] = events
		}

		return nil
	}); err != nil {
		return nil, db.WrapError(err)
	}

	hooks := make([]webhook.Hook, len(webhooks))
	for i, h := range webhooks {
		hooks[i] = newHook(h, webhookEvents[h.ID])
	}

	return hooks, nil
}

func (d *Backend) webhook(ctx context.Context, id int64) (webhook.Hook, error) {
	var wh webhook.Hook
	if err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		h, err := d.store.GetWebhookByID(ctx, tx, id)
		if err != nil {
			return notFound(err, proto.ErrWebhookNotFound)
		}

		events, err := d.store.GetWebhookEventsByWebhookID(ctx, tx, id)
		if err != nil {
			return err
		}

		wh = newHook(h, events)
		return nil
	}); err != nil {
		return webhook.Hook{}, db.WrapError(err)
	}

	return wh, nil
}

// DeleteWebhook deletes a webhook and its delivery history.
func (d *Backend) DeleteWebhook(ctx context.Context, actor uuid.UUID, id int64) error {
	if err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		if err := d.authorize(ctx, tx, actor, access.ManageWebhooks); err != nil {
			return err
		}

		if _, err := d.store.GetWebhookByID(ctx, tx, id); err != nil {
			return notFound(err, proto.ErrWebhookNotFound)
		}

		return d.store.DeleteWebhookByID(ctx, tx, id)
	}); err != nil {
		return db.WrapError(err)
	}

	return nil
}

// WebhookDeliveries lists the recorded deliveries of a webhook.
func (d *Backend) WebhookDeliveries(ctx context.Context, actor uuid.UUID, id int64) ([]webhook.Delivery, error) {
	var ds []models.WebhookDelivery
	if err := d.db.TransactionContext(ctx, func(tx *db.Tx) error {
		if err := d.authorize(ctx, tx, actor, access.ManageWebhooks); err != nil {
			return err
		}

		if _, err := d.store.GetWebhookByID(ctx, tx, id); err != nil {
			return notFound(err, proto.ErrWebhookNotFound)
		}

		var err error
		ds, err = d.store.ListWebhookDeliveriesByWebhookID(ctx, tx, id)
		return err
	}); err != nil {
		return nil, db.WrapError(err)
	}

	deliveries := make([]webhook.Delivery, len(ds))
	for i, m := range ds {
		deliveries[i] = webhook.Delivery{
			WebhookDelivery: m,
			Event:           webhook.Event(m.Event),
		}
	}

	return deliveries, nil
}

func newHook(h models.Webhook, events []models.WebhookEvent) webhook.Hook {
	wh := webhook.Hook{
		Webhook:     h,
		ContentType: webhook.ContentType(h.ContentType), //nolint:gosec
		Events:      make([]webhook.Event, len(events)),
	}
	for i, e := range events {
		wh.Events[i] = webhook.Event(e.Event)
	}
	return wh
}
