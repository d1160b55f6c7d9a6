// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/diarisk/session"
	"github.com/danielhkuo/diarisk/testutil"
)

func newTestRouter(t *testing.T) (*http.ServeMux, *sql.DB) {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	t.Cleanup(func() { conn.Close() })

	sessions := session.NewStore(time.Minute)
	predictor := &testutil.StubPredictor{Probability: 0.42}
	return NewRouter(conn, testutil.GetTestConfig(), sessions, predictor), conn
}

func TestHealthEndpoint(t *testing.T) {
	mux, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootStartsWizard(t *testing.T) {
	mux, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Errorf("Expected status 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc == "" {
		t.Error("Expected redirect to a wizard session")
	}
}

func TestRouteExistence(t *testing.T) {
	mux, conn := newTestRouter(t)
	recordID := testutil.InsertTestAssessment(t, conn, 0.42, 0)

	// Every route should resolve to a handler (anything but 404)
	routes := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"GET", "/assess/some-token"},
		{"POST", "/assess/some-token/next"},
		{"POST", "/assess/some-token/prev"},
		{"POST", "/assess/some-token/submit"},
		{"POST", "/api/predict"},
		{"GET", "/records/" + recordID},
		{"GET", "/records/" + recordID + "/report"},
	}

	for _, route := range routes {
		req := httptest.NewRequest(route.method, route.path, nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		if w.Code == http.StatusNotFound {
			t.Errorf("%s %s returned 404; route not registered", route.method, route.path)
		}
	}
}

func TestUnknownRoute(t *testing.T) {
	mux, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/definitely/not/a/route", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestWrongMethod(t *testing.T) {
	mux, _ := newTestRouter(t)

	req := httptest.NewRequest("DELETE", "/api/predict", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}
}
