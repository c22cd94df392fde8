package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/db"
	"github.com/hackhub/hackhub/pkg/db/migrate"
	"github.com/hackhub/hackhub/pkg/proto"
	"github.com/hackhub/hackhub/pkg/store"
	"github.com/hackhub/hackhub/pkg/store/database"
	"github.com/hackhub/hackhub/pkg/test"
	"github.com/matryer/is"
)

type fakeTeam struct {
	id      int64
	captain uuid.UUID
}

func (t fakeTeam) ID() int64                { return t.id }
func (t fakeTeam) Name() string             { return "Rocket" }
func (t fakeTeam) Description() string      { return "" }
func (t fakeTeam) CaptainID() uuid.UUID     { return t.captain }
func (t fakeTeam) LookingFor() []string     { return nil }
func (t fakeTeam) Status() proto.TeamStatus { return proto.TeamForming }
func (t fakeTeam) CreatedAt() time.Time     { return time.Time{} }
func (t fakeTeam) UpdatedAt() time.Time     { return time.Time{} }

type request struct {
	header http.Header
	body   string
}

func setup(t *testing.T) (context.Context, store.Store, *db.DB) {
	t.Helper()
	ctx := context.TODO()
	dbx, err := test.OpenSqlite(ctx, t)
	if err != nil {
		t.Fatal(err)
	}
	if err := migrate.Migrate(ctx, dbx); err != nil {
		t.Fatal(err)
	}
	datastore := database.New(ctx, dbx)
	ctx = db.WithContext(ctx, dbx)
	ctx = store.WithContext(ctx, datastore)
	return ctx, datastore, dbx
}

func TestSendEvent(t *testing.T) {
	is := is.New(t)
	ctx, datastore, dbx := setup(t)

	got := make(chan request, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		got <- request{r.Header.Clone(), string(b)}
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(srv.Close)

	jsonHook, err := datastore.CreateWebhook(ctx, dbx, srv.URL+"/json", "s3cr3t", int(ContentTypeJSON), true)
	is.NoErr(err)
	is.NoErr(datastore.CreateWebhookEvents(ctx, dbx, jsonHook, []int{int(EventMemberLeft)}))

	formHook, err := datastore.CreateWebhook(ctx, dbx, srv.URL+"/form", "", int(ContentTypeForm), true)
	is.NoErr(err)
	is.NoErr(datastore.CreateWebhookEvents(ctx, dbx, formHook, []int{int(EventMemberLeft), int(EventTeamRegistered)}))

	inactive, err := datastore.CreateWebhook(ctx, dbx, srv.URL+"/inactive", "", int(ContentTypeJSON), false)
	is.NoErr(err)
	is.NoErr(datastore.CreateWebhookEvents(ctx, dbx, inactive, []int{int(EventMemberLeft)}))

	other, err := datastore.CreateWebhook(ctx, dbx, srv.URL+"/other", "", int(ContentTypeJSON), true)
	is.NoErr(err)
	is.NoErr(datastore.CreateWebhookEvents(ctx, dbx, other, []int{int(EventApplicationReceived)}))

	member := uuid.New()
	team := fakeTeam{id: 7, captain: uuid.New()}
	payload := NewMemberLeftEvent(team, member, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	is.NoErr(SendEvent(ctx, http.DefaultClient, payload))

	is.Equal(len(got), 2) // only active subscribers of member_left

	first := <-got
	is.Equal(first.header.Get(HeaderEvent), "member_left")
	is.Equal(first.header.Get("Content-Type"), "application/json")
	is.Equal(first.header.Get(HeaderSignature), Sign("s3cr3t", []byte(first.body)))
	var decoded map[string]interface{}
	is.NoErr(json.Unmarshal([]byte(first.body), &decoded))
	is.Equal(decoded["event"], "member_left")
	is.Equal(decoded["member"].(map[string]interface{})["id"], member.String())

	second := <-got
	is.Equal(second.header.Get(HeaderSignature), "")
	form, err := url.ParseQuery(second.body)
	is.NoErr(err)
	is.Equal(form.Get("event"), "member_left")
	is.Equal(form.Get("team[id]"), "7")

	deliveries, err := datastore.ListWebhookDeliveriesByWebhookID(ctx, dbx, jsonHook)
	is.NoErr(err)
	is.Equal(len(deliveries), 1)
	is.Equal(deliveries[0].ResponseStatus, http.StatusAccepted)
	is.Equal(deliveries[0].ID.String(), first.header.Get(HeaderDelivery))
}

func TestSendWebhookRecordsFailure(t *testing.T) {
	is := is.New(t)
	ctx, datastore, dbx := setup(t)

	id, err := datastore.CreateWebhook(ctx, dbx, "http://127.0.0.1:1/hook", "", int(ContentTypeJSON), true)
	is.NoErr(err)
	w, err := datastore.GetWebhookByID(ctx, dbx, id)
	is.NoErr(err)

	err = SendWebhook(ctx, NewClient(time.Second), w, EventTeamRegistered, map[string]string{"k": "v"})
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "blocked connection"))

	deliveries, err := datastore.ListWebhookDeliveriesByWebhookID(ctx, dbx, id)
	is.NoErr(err)
	is.Equal(len(deliveries), 1)
	is.Equal(deliveries[0].ResponseStatus, 0)
}

func TestClientDoesNotFollowRedirects(t *testing.T) {
	client := NewClient(time.Second)
	if client.CheckRedirect(nil, nil) != http.ErrUseLastResponse {
		t.Error("CheckRedirect() should stop at the first response")
	}
}

func TestEncode(t *testing.T) {
	is := is.New(t)
	_, err := Encode(ContentType(5), nil)
	is.Equal(err, ErrInvalidContentType)

	b, err := Encode(ContentTypeForm, struct {
		A string `url:"a"`
	}{"x y"})
	is.NoErr(err)
	is.Equal(string(b), "a=x+y")
}
