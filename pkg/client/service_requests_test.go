package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestListServiceRequests(t *testing.T) {
	t.Run("query parameters", func(t *testing.T) {
		var gotQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"count":0,"results":[]}`))
		}))
		defer srv.Close()

		c := New(srv.URL, "t")
		_, err := c.ListServiceRequests(context.Background(), ServiceRequestListOptions{
			Page:     2,
			PageSize: 10,
			Search:   "printer",
			Status:   "new",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		parsed, err := url.ParseQuery(gotQuery)
		if err != nil {
			t.Fatalf("invalid query %q: %v", gotQuery, err)
		}
		if parsed.Get("page") != "2" || parsed.Get("page_size") != "10" {
			t.Fatalf("expected page=2 page_size=10, got %q", gotQuery)
		}
		if parsed.Get("search") != "printer" || parsed.Get("status") != "new" {
			t.Fatalf("expected search/status params, got %q", gotQuery)
		}
	})

	t.Run("flattens nested users", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"count":2,"results":[
				{"id":"id-1","request_id":"SR-001","title":"A",
				 "requested_by":{"id":"u1","username":"alice"},
				 "assigned_to":{"id":"u2","username":"bob"},
				 "resolved_at":null},
				{"id":"id-2","request_id":"SR-002","title":"B",
				 "requested_by":{"id":"u1","username":"alice"},
				 "assigned_to":null}
			]}`))
		}))
		defer srv.Close()

		c := New(srv.URL, "t")
		list, err := c.ListServiceRequests(context.Background(), ServiceRequestListOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if list.Count != 2 || len(list.Results) != 2 {
			t.Fatalf("expected 2 results count 2, got %d/%d", len(list.Results), list.Count)
		}

		assigned := list.Results[0]
		if assigned.RequestedByUsername != "alice" || assigned.RequestedByID != "u1" {
			t.Fatalf("expected requested_by flattened, got %+v", assigned)
		}
		if assigned.AssignedToUsername == nil || *assigned.AssignedToUsername != "bob" {
			t.Fatalf("expected assigned_to_username bob, got %v", assigned.AssignedToUsername)
		}
		if assigned.AssignedToID == nil || *assigned.AssignedToID != "u2" {
			t.Fatalf("expected assigned_to_id u2, got %v", assigned.AssignedToID)
		}
		if assigned.ResolvedAt != nil {
			t.Fatalf("expected nil resolved_at, got %v", assigned.ResolvedAt)
		}

		unassigned := list.Results[1]
		if unassigned.AssignedToUsername != nil || unassigned.AssignedToID != nil {
			t.Fatalf("expected nil assignee pair on null assigned_to, got %+v", unassigned)
		}
	})

	t.Run("bare array response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"id":"id-1","request_id":"SR-001"}]`))
		}))
		defer srv.Close()

		c := New(srv.URL, "t")
		list, err := c.ListServiceRequests(context.Background(), ServiceRequestListOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if list.Count != 1 || len(list.Results) != 1 {
			t.Fatalf("expected single result, got %d/%d", len(list.Results), list.Count)
		}
	})
}

func TestCreateServiceRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/service-requests" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("invalid request body: %v", err)
		}
		if body["title"] != "VPN access" || body["category"] != "network" {
			t.Fatalf("unexpected body: %v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"id-1","request_id":"SR-001","status":"new",
			"requested_by":{"id":"u1","username":"alice"},"resolved_at":null}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "t")
	created, err := c.CreateServiceRequest(context.Background(), ServiceRequestCreate{
		Title:    "VPN access",
		Category: "network",
		Priority: "medium",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.RequestID != "SR-001" || created.Status != "new" {
		t.Fatalf("unexpected record: %+v", created)
	}
	if created.ResolvedAt != nil {
		t.Fatalf("expected nil resolved_at on a new record")
	}
}

func TestUpdateServiceRequest_OmitsNilFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Fatalf("expected PATCH, got %s", r.Method)
		}
		var body map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("invalid request body: %v", err)
		}
		if len(body) != 2 {
			t.Fatalf("expected exactly status and resolution_notes, got %v", body)
		}
		if _, ok := body["status"]; !ok {
			t.Fatalf("expected status in body")
		}
		if _, ok := body["resolution_notes"]; !ok {
			t.Fatalf("expected resolution_notes in body")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"id-1","request_id":"SR-001","status":"resolved",
			"resolution_notes":"Replaced cable","resolved_at":"2026-08-29T10:00:00Z",
			"requested_by":{"id":"u1","username":"alice"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "t")
	status := "resolved"
	notes := "Replaced cable"
	updated, err := c.UpdateServiceRequest(context.Background(), "SR-001", ServiceRequestUpdate{
		Status:          &status,
		ResolutionNotes: &notes,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != "resolved" {
		t.Fatalf("expected resolved, got %s", updated.Status)
	}
	if updated.ResolvedAt == nil {
		t.Fatalf("expected resolved_at to be set")
	}
}

func TestDeleteServiceRequest(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, "t")
	if err := c.DeleteServiceRequest(context.Background(), "SR-007"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/service-requests/SR-007" {
		t.Fatalf("unexpected path %q", gotPath)
	}
}
