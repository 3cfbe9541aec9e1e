package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			var creds map[string]string
			if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
				t.Fatalf("invalid login body: %v", err)
			}
			if creds["username"] != "alice" || creds["password"] != "s3cret" {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"detail":"Invalid credentials"}`))
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"token":"tok-123","expires_at":"2026-08-30T00:00:00Z"}`))
		case "/auth/me":
			if r.Header.Get("Authorization") != "Bearer tok-123" {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"detail":"Invalid token"}`))
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"u1","username":"alice"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "")

	result, err := c.Login(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Token != "tok-123" {
		t.Fatalf("expected token tok-123, got %q", result.Token)
	}

	// The token is installed for subsequent calls.
	var me map[string]string
	if err := c.do(context.Background(), http.MethodGet, "/auth/me", nil, nil, &me); err != nil {
		t.Fatalf("expected authenticated call to succeed: %v", err)
	}
	if me["username"] != "alice" {
		t.Fatalf("unexpected /auth/me response: %v", me)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Invalid credentials"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	_, err := c.Login(context.Background(), "alice", "wrong")

	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %T: %v", err, err)
	}
	if c.token != "" {
		t.Fatalf("expected no token installed after failed login")
	}
}

func TestLogout_ClearsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			t.Fatalf("expected bearer token on logout, got %q", r.Header.Get("Authorization"))
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, "tok-123")
	if err := c.Logout(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.token != "" {
		t.Fatalf("expected token cleared after logout")
	}
}
