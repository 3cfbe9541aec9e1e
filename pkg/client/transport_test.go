package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientDo_BearerHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "session-token")
	var out map[string]interface{}
	if err := c.do(context.Background(), http.MethodGet, "/ping", nil, nil, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer session-token" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestClientDo_NoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	out := map[string]interface{}{"untouched": true}
	if err := c.do(context.Background(), http.MethodDelete, "/service-requests/SR-001", nil, nil, &out); err != nil {
		t.Fatalf("expected nil error on 204, got %v", err)
	}
	if !out["untouched"].(bool) {
		t.Fatalf("expected out to be left untouched on 204")
	}
}

func TestClientDo_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Invalid token"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "expired")
	err := c.do(context.Background(), http.MethodGet, "/auth/me", nil, nil, nil)

	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %T: %v", err, err)
	}
	if authErr.Message != "Invalid token" {
		t.Fatalf("expected detail message, got %q", authErr.Message)
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatalf("401 must not surface as APIError")
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"detail wins", http.StatusNotFound, `{"detail":"Service request not found","message":"other"}`, "Service request not found"},
		{"message fallback", http.StatusBadRequest, `{"message":"Invalid request"}`, "Invalid request"},
		{"generic json", http.StatusConflict, `{"code":"ILLEGAL_TRANSITION"}`, "API Error: 409"},
		{"not json", http.StatusBadGateway, `upstream exploded`, "Bad Gateway"},
		{"empty body", http.StatusInternalServerError, ``, "Internal Server Error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := New(srv.URL, "t")
			err := c.do(context.Background(), http.MethodGet, "/x", nil, nil, nil)

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected APIError, got %T: %v", err, err)
			}
			if apiErr.StatusCode != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, apiErr.StatusCode)
			}
			if apiErr.Message != tc.message {
				t.Fatalf("expected message %q, got %q", tc.message, apiErr.Message)
			}
		})
	}
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL+"/v1/", "")
	if err := c.do(context.Background(), http.MethodGet, "/ping", nil, nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/v1/ping" {
		t.Fatalf("expected /v1/ping, got %q", gotPath)
	}
}
