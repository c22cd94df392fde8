package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/db"
	"github.com/hackhub/hackhub/pkg/db/models"
	"github.com/hackhub/hackhub/pkg/store"
	"github.com/jmoiron/sqlx"
)

var _ store.WebhookStore = (*webhookStore)(nil)

type webhookStore struct{}

// GetWebhookByID implements store.WebhookStore.
func (*webhookStore) GetWebhookByID(ctx context.Context, h db.Handler, id int64) (models.Webhook, error) {
	var wh models.Webhook
	err := h.GetContext(ctx, &wh, h.Rebind(`SELECT * FROM webhooks WHERE id = ?;`), id)
	return wh, err //nolint:wrapcheck
}

// GetWebhooks implements store.WebhookStore.
func (*webhookStore) GetWebhooks(ctx context.Context, h db.Handler) ([]models.Webhook, error) {
	var whs []models.Webhook
	err := h.SelectContext(ctx, &whs, `SELECT * FROM webhooks ORDER BY id;`)
	return whs, err //nolint:wrapcheck
}

// GetWebhooksWhereEvent implements store.WebhookStore.
func (*webhookStore) GetWebhooksWhereEvent(ctx context.Context, h db.Handler, events []int) ([]models.Webhook, error) {
	var whs []models.Webhook
	query, args, err := sqlx.In(`SELECT DISTINCT webhooks.*
			FROM webhooks
			INNER JOIN webhook_events ON webhooks.id = webhook_events.webhook_id
			WHERE webhook_events.event IN (?) AND webhooks.active = ?
			ORDER BY webhooks.id;`, events, true)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	err = h.SelectContext(ctx, &whs, h.Rebind(query), args...)
	return whs, err //nolint:wrapcheck
}

// CreateWebhook implements store.WebhookStore.
func (*webhookStore) CreateWebhook(ctx context.Context, h db.Handler, url string, secret string, contentType int, active bool) (int64, error) {
	var id int64
	query := h.Rebind(`INSERT INTO webhooks (url, secret, content_type, active, updated_at)
			VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP) RETURNING id;`)
	err := h.GetContext(ctx, &id, query, url, secret, contentType, active)
	return id, err //nolint:wrapcheck
}

// DeleteWebhookByID implements store.WebhookStore.
func (*webhookStore) DeleteWebhookByID(ctx context.Context, h db.Handler, id int64) error {
	_, err := h.ExecContext(ctx, h.Rebind(`DELETE FROM webhooks WHERE id = ?;`), id)
	return err //nolint:wrapcheck
}

// GetWebhookEventsByWebhookID implements store.WebhookStore.
func (*webhookStore) GetWebhookEventsByWebhookID(ctx context.Context, h db.Handler, webhookID int64) ([]models.WebhookEvent, error) {
	var events []models.WebhookEvent
	query := h.Rebind(`SELECT * FROM webhook_events WHERE webhook_id = ? ORDER BY event;`)
	err := h.SelectContext(ctx, &events, query, webhookID)
	return events, err //nolint:wrapcheck
}

// CreateWebhookEvents implements store.WebhookStore.
func (*webhookStore) CreateWebhookEvents(ctx context.Context, h db.Handler, webhookID int64, events []int) error {
	query := h.Rebind(`INSERT INTO webhook_events (webhook_id, event)
			VALUES (?, ?);`)
	for _, event := range events {
		if _, err := h.ExecContext(ctx, query, webhookID, event); err != nil {
			return err //nolint:wrapcheck
		}
	}
	return nil
}

// ListWebhookDeliveriesByWebhookID implements store.WebhookStore.
func (*webhookStore) ListWebhookDeliveriesByWebhookID(ctx context.Context, h db.Handler, webhookID int64) ([]models.WebhookDelivery, error) {
	var deliveries []models.WebhookDelivery
	query := h.Rebind(`SELECT id, response_status, event, created_at
			FROM webhook_deliveries
			WHERE webhook_id = ?
			ORDER BY created_at DESC;`)
	err := h.SelectContext(ctx, &deliveries, query, webhookID)
	return deliveries, err //nolint:wrapcheck
}

// CreateWebhookDelivery implements store.WebhookStore.
func (*webhookStore) CreateWebhookDelivery(ctx context.Context, h db.Handler, id uuid.UUID, webhookID int64, event int, url string, method string, requestError error, requestHeaders string, requestBody string, responseStatus int, responseHeaders string, responseBody string) error {
	var reqErr string
	if requestError != nil {
		reqErr = requestError.Error()
	}

	query := h.Rebind(`INSERT INTO webhook_deliveries (id, webhook_id, event, request_url, request_method, request_error, request_headers, request_body, response_status, response_headers, response_body)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`)
	_, err := h.ExecContext(ctx, query, id, webhookID, event, url, method, reqErr, requestHeaders, requestBody, responseStatus, responseHeaders, responseBody)
	return err //nolint:wrapcheck
}
