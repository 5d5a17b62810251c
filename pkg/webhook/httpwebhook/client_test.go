package httpwebhook_test

import (
	"context"
	"io"
	"leadgen/pkg/domain"
	"leadgen/pkg/serrors"
	"leadgen/pkg/webhook"
	"leadgen/pkg/webhook/httpwebhook"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, h http.HandlerFunc) (*httptest.Server, *httpwebhook.Client) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return srv, httpwebhook.New(srv.Client(), "hook-token", map[webhook.Name]string{
		webhook.Search: srv.URL + "/webhook/search",
		webhook.Emails: srv.URL + "/webhook/emails?source=crm",
	})
}

func TestClient_Call_SendsQueryAndBearer(t *testing.T) {
	_, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/webhook/emails", r.URL.Path)
		require.Equal(t, "Bearer hook-token", r.Header.Get("Authorization"))
		require.Equal(t, "crm", r.URL.Query().Get("source"))
		require.Equal(t, "A-100", r.URL.Query().Get("account_number"))
		require.JSONEq(t, `{"lead_ids":[4,7]}`, r.URL.Query().Get("payload"))

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = io.WriteString(w, `{"ok":true,"message":"2 drafts queued"}`)
	})

	resp, err := c.Call(context.Background(), webhook.Emails, "A-100",
		webhook.EmailsPayload{LeadIDs: []domain.LeadID{4, 7}})
	require.NoError(t, err)
	require.True(t, resp.JSON)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "2 drafts queued", resp.Message)
}

func TestClient_Call_JSONWithoutMessage(t *testing.T) {
	_, c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.JSONEq(t, `{"repeat":true}`, r.URL.Query().Get("payload"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, ` {"started":3} `)
	})

	resp, err := c.Call(context.Background(), webhook.Search, "A-1", webhook.SearchPayload{Repeat: true})
	require.NoError(t, err)
	require.Equal(t, `{"started":3}`, resp.Message)
}

func TestClient_Call_PlainText(t *testing.T) {
	_, c := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, "Workflow was started\n")
	})

	resp, err := c.Call(context.Background(), webhook.Search, "A-1", webhook.SearchPayload{})
	require.NoError(t, err)
	require.False(t, resp.JSON)
	require.Equal(t, "Workflow was started", resp.Message)
}

func TestClient_Call_Non2xxIsUpstream(t *testing.T) {
	_, c := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, "workflow crashed")
	})

	resp, err := c.Call(context.Background(), webhook.Search, "A-1", webhook.SearchPayload{})
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUpstream)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Contains(t, err.Error(), "workflow crashed")
	// the detail never reaches the user
	require.NotContains(t, serrors.UserMessage(err), "crashed")
}

func TestClient_Call_MalformedJSON(t *testing.T) {
	_, c := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"message":`)
	})

	_, err := c.Call(context.Background(), webhook.Search, "A-1", webhook.SearchPayload{})
	require.ErrorIs(t, err, serrors.ErrUpstream)
}

func TestClient_Call_TransportError(t *testing.T) {
	srv, c := newServer(t, func(http.ResponseWriter, *http.Request) {})
	srv.Close()

	_, err := c.Call(context.Background(), webhook.Search, "A-1", webhook.SearchPayload{})
	require.ErrorIs(t, err, serrors.ErrUpstream)
}

func TestClient_Call_UnknownWebhook(t *testing.T) {
	c := httpwebhook.New(http.DefaultClient, "t", nil)

	_, err := c.Call(context.Background(), webhook.Search, "A-1", webhook.SearchPayload{})
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "no url configured"))
}
