// Package webhook delivers team and registration events to subscribed HTTP
// endpoints.
package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/db"
	"github.com/hackhub/hackhub/pkg/db/models"
	"github.com/hackhub/hackhub/pkg/store"
	"github.com/hackhub/hackhub/pkg/version"
)

// Hook is a webhook and the events it subscribes to.
type Hook struct {
	models.Webhook
	ContentType ContentType
	Events      []Event
}

// Delivery is a webhook delivery.
type Delivery struct {
	models.WebhookDelivery
	Event Event
}

// Signature header names.
const (
	HeaderEvent     = "X-Hackhub-Event"
	HeaderDelivery  = "X-Hackhub-Delivery"
	HeaderSignature = "X-Hackhub-Signature"
)

// NewClient returns an HTTP client that refuses to connect to private or
// internal addresses and does not follow redirects.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	dialer := &net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				host, _, err := net.SplitHostPort(addr)
				if err != nil {
					return nil, err //nolint:wrapcheck
				}

				if ip := net.ParseIP(host); ip != nil {
					if err := ValidateIPBeforeDial(ip); err != nil {
						return nil, fmt.Errorf("blocked connection to private IP: %w", err)
					}
				}

				return dialer.DialContext(ctx, network, addr)
			},
			MaxIdleConns:          100,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// Sign returns the signature header value of body for secret.
func Sign(secret string, body []byte) string {
	sig := hmac.New(sha256.New, []byte(secret))
	sig.Write(body) // nolint: errcheck
	return "sha256=" + hex.EncodeToString(sig.Sum(nil))
}

// Encode encodes payload for the content type.
func Encode(contentType ContentType, payload interface{}) ([]byte, error) {
	switch contentType {
	case ContentTypeJSON:
		return json.Marshal(payload)
	case ContentTypeForm:
		v, err := query.Values(payload)
		if err != nil {
			return nil, err
		}
		return []byte(v.Encode()), nil
	default:
		return nil, ErrInvalidContentType
	}
}

// SendWebhook sends a webhook event and records the delivery. The database
// and store are taken from ctx.
func SendWebhook(ctx context.Context, client *http.Client, w models.Webhook, event Event, payload interface{}) error {
	dbx := db.FromContext(ctx)
	datastore := store.FromContext(ctx)
	if dbx == nil || datastore == nil {
		return errors.New("webhook: missing database or store in context")
	}

	contentType := ContentType(w.ContentType) //nolint:gosec
	body, err := Encode(contentType, payload)
	if err != nil {
		return err
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return err
	}

	headers := http.Header{}
	headers.Add("Content-Type", contentType.String())
	headers.Add("User-Agent", "Hackhub/"+version.Version)
	headers.Add(HeaderEvent, event.String())
	headers.Add(HeaderDelivery, id.String())
	if w.Secret != "" {
		headers.Add(HeaderSignature, Sign(w.Secret, body))
	}

	var res *http.Response
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(body))
	if reqErr == nil {
		req.Header = headers
		res, reqErr = client.Do(req)
	}

	var reqHeaders string
	for k, v := range headers {
		reqHeaders += k + ": " + v[0] + "\n"
	}

	resStatus := 0
	resHeaders := ""
	resBody := ""

	if res != nil {
		defer res.Body.Close() // nolint: errcheck
		resStatus = res.StatusCode
		for k, v := range res.Header {
			resHeaders += k + ": " + v[0] + "\n"
		}

		b, err := io.ReadAll(io.LimitReader(res.Body, 64<<10))
		if err != nil {
			return err
		}
		resBody = string(b)
	}

	if err := datastore.CreateWebhookDelivery(ctx, dbx, id, w.ID, int(event), w.URL, http.MethodPost, reqErr, reqHeaders, string(body), resStatus, resHeaders, resBody); err != nil {
		return db.WrapError(err)
	}

	if reqErr != nil {
		return fmt.Errorf("deliver %s to webhook %d: %w", event, w.ID, reqErr)
	}

	return nil
}

// SendEvent sends a webhook event to every active webhook subscribed to it.
// Every webhook is attempted; the returned error joins the failures.
func SendEvent(ctx context.Context, client *http.Client, payload EventPayload) error {
	dbx := db.FromContext(ctx)
	datastore := store.FromContext(ctx)
	if dbx == nil || datastore == nil {
		return errors.New("webhook: missing database or store in context")
	}

	webhooks, err := datastore.GetWebhooksWhereEvent(ctx, dbx, []int{int(payload.Event())})
	if err != nil {
		return db.WrapError(err)
	}

	var errs []error
	for _, w := range webhooks {
		if err := SendWebhook(ctx, client, w, payload.Event(), payload); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
