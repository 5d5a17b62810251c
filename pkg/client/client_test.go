package client_test

import (
	"context"
	"encoding/json"
	"leadgen/pkg/client"
	"leadgen/pkg/domain"
	"leadgen/pkg/serrors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestClient_ListLeadsSendsQuery(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/leads", r.URL.Path)
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		q := r.URL.Query()
		require.Equal(t, "2", q.Get("page"))
		require.Equal(t, "25", q.Get("pageSize"))
		require.Equal(t, "true", q.Get("excludedOnly"))
		require.Equal(t, "false", q.Get("includeWithoutEmail"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domain.LeadPage{Page: 2, PageSize: 25, TotalRecords: 30, TotalPages: 2})
	}))
	defer srv.Close()

	c := client.New(srv.Client(), srv.URL+"/", "tok")
	page, err := c.ListLeads(context.Background(), client.LeadQuery{
		Filter:   domain.LeadFilter{ExcludedOnly: true},
		Page:     2,
		PageSize: 25,
	})
	require.NoError(t, err)
	require.Equal(t, 30, page.TotalRecords)
}

func TestClient_APIErrorMatchesKind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"code":"CONFLICT","message":"request already in progress"}`))
	}))
	defer srv.Close()

	c := client.New(srv.Client(), srv.URL, "tok")
	_, err := c.TriggerSearch(context.Background(), false)
	require.ErrorIs(t, err, serrors.ErrConflict)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusConflict, apiErr.StatusCode)
	require.Equal(t, "request already in progress", apiErr.Message)
}

func TestClient_NonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := client.New(srv.Client(), srv.URL, "tok")
	_, err := c.Account(context.Background())
	require.ErrorIs(t, err, serrors.ErrInternal)
	require.Contains(t, err.Error(), "bad gateway")
}

func TestClient_TriggerRefreshAfter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			LeadIDs []domain.LeadID `json:"leadIds"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		require.Equal(t, []domain.LeadID{1, 2}, in.LeadIDs)
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"webhook":"emails","message":"queued","refreshAfterMs":2000}`))
	}))
	defer srv.Close()

	c := client.New(srv.Client(), srv.URL, "tok")
	res, err := c.GenerateEmails(context.Background(), []domain.LeadID{1, 2})
	require.NoError(t, err)
	require.Equal(t, "queued", res.Message)
	require.Equal(t, 2*time.Second, res.RefreshAfter())
}
