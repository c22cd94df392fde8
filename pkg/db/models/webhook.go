package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Webhook is an admin-registered endpoint that receives team and
// registration events. ContentType is a webhook.ContentType and Secret, when
// set, keys the HMAC signature of every payload.
type Webhook struct {
	ID          int64     `db:"id"`
	URL         string    `db:"url"`
	Secret      string    `db:"secret"`
	ContentType int       `db:"content_type"`
	Active      bool      `db:"active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// WebhookEvent subscribes a webhook to one event kind, such as an
// application being accepted or a team being registered. Event holds a
// webhook.Event value.
type WebhookEvent struct {
	ID        int64     `db:"id"`
	WebhookID int64     `db:"webhook_id"`
	Event     int       `db:"event"`
	CreatedAt time.Time `db:"created_at"`
}

// WebhookDelivery records one attempt to post an event payload to a webhook.
// RequestError is set when no response was received; the response fields
// are then zero.
type WebhookDelivery struct {
	ID              uuid.UUID      `db:"id"`
	WebhookID       int64          `db:"webhook_id"`
	Event           int            `db:"event"`
	RequestURL      string         `db:"request_url"`
	RequestMethod   string         `db:"request_method"`
	RequestError    sql.NullString `db:"request_error"`
	RequestHeaders  string         `db:"request_headers"`
	RequestBody     string         `db:"request_body"`
	ResponseStatus  int            `db:"response_status"`
	ResponseHeaders string         `db:"response_headers"`
	ResponseBody    string         `db:"response_body"`
	CreatedAt       time.Time      `db:"created_at"`
}
