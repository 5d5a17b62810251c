package controller_test

import (
	"leadgen/pkg/controller"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func pprofRouter() http.Handler {
	r := chi.NewRouter()
	r.Mount("/debug/pprof", controller.Pprof())

	return r
}

func TestPprof_Routes(t *testing.T) {
	h := pprofRouter()

	cases := []struct {
		path     string
		status   int
		contains string
	}{
		{"/debug/pprof/", http.StatusOK, "goroutine"},
		{"/debug/pprof/cmdline", http.StatusOK, ""},
		{"/debug/pprof/goroutine?debug=1", http.StatusOK, "goroutine profile"},
		{"/debug/pprof/heap?debug=1", http.StatusOK, "heap profile"},
		{"/debug/pprof/leadgen", http.StatusNotFound, "Unknown profile"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

			require.Equal(t, tc.status, rec.Code)
			require.Contains(t, rec.Body.String(), tc.contains)
		})
	}
}

func TestPprof_IndexLinksResolve(t *testing.T) {
	h := pprofRouter()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "href='allocs?debug=1'")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/allocs?debug=1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestPprof_WrongMethod(t *testing.T) {
	rec := httptest.NewRecorder()
	pprofRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/debug/pprof/cmdline", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
