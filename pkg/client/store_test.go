package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// fakeDeskServer is a minimal in-memory stand-in for the listing and
// mutation endpoints the store talks to.
type fakeDeskServer struct {
	mu      sync.Mutex
	nextSeq int
	records []map[string]interface{}
}

func newFakeDeskServer() *fakeDeskServer {
	return &fakeDeskServer{nextSeq: 1}
}

func (f *fakeDeskServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/service-requests", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		switch r.Method {
		case http.MethodGet:
			page, _ := strconv.Atoi(r.URL.Query().Get("page"))
			if page < 1 {
				page = 1
			}
			size, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
			if size < 1 {
				size = 20
			}
			start := (page - 1) * size
			end := start + size
			if start > len(f.records) {
				start = len(f.records)
			}
			if end > len(f.records) {
				end = len(f.records)
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]interface{}{
				"count":   len(f.records),
				"results": f.records[start:end],
			})
		case http.MethodPost:
			var input map[string]interface{}
			json.NewDecoder(r.Body).Decode(&input)
			record := map[string]interface{}{
				"id":           fmt.Sprintf("id-%d", f.nextSeq),
				"request_id":   fmt.Sprintf("SR-%03d", f.nextSeq),
				"title":        input["title"],
				"status":       "new",
				"requested_by": map[string]string{"id": "u1", "username": "alice"},
				"resolved_at":  nil,
			}
			f.nextSeq++
			f.records = append(f.records, record)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(record)
		}
	})
	mux.HandleFunc("/service-requests/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		key := strings.TrimPrefix(r.URL.Path, "/service-requests/")
		idx := -1
		for i, rec := range f.records {
			if rec["request_id"] == key {
				idx = i
				break
			}
		}
		if idx < 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail":"Service request not found"}`))
			return
		}
		switch r.Method {
		case http.MethodPatch:
			var patch map[string]interface{}
			json.NewDecoder(r.Body).Decode(&patch)
			for k, v := range patch {
				f.records[idx][k] = v
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(f.records[idx])
		case http.MethodDelete:
			f.records = append(f.records[:idx], f.records[idx+1:]...)
			w.WriteHeader(http.StatusNoContent)
		}
	})
	return mux
}

func (f *fakeDeskServer) seed(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := 0; i < n; i++ {
		f.records = append(f.records, map[string]interface{}{
			"id":           fmt.Sprintf("id-%d", f.nextSeq),
			"request_id":   fmt.Sprintf("SR-%03d", f.nextSeq),
			"title":        fmt.Sprintf("Ticket %d", f.nextSeq),
			"status":       "new",
			"requested_by": map[string]string{"id": "u1", "username": "alice"},
		})
		f.nextSeq++
	}
}

func TestServiceRequestStore_Fetch(t *testing.T) {
	fake := newFakeDeskServer()
	fake.seed(15)
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	store := NewServiceRequestStore(New(srv.URL, "t"), 10)
	if err := store.Fetch(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Count() != 15 {
		t.Fatalf("expected count 15, got %d", store.Count())
	}
	if got := len(store.Records()); got != 10 {
		t.Fatalf("expected 10 records on page 1, got %d", got)
	}
	if store.Loading() {
		t.Fatalf("expected loading cleared after fetch")
	}
	if store.Err() != "" {
		t.Fatalf("expected empty error, got %q", store.Err())
	}

	store.SetPage(2)
	if err := store.Fetch(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	records := store.Records()
	if len(records) != 5 {
		t.Fatalf("expected 5 records on page 2, got %d", len(records))
	}
	if records[0].RequestID != "SR-011" {
		t.Fatalf("expected SR-011 first on page 2, got %s", records[0].RequestID)
	}
}

func TestServiceRequestStore_FetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"boom"}`))
	}))
	defer srv.Close()

	store := NewServiceRequestStore(New(srv.URL, "t"), 10)
	if err := store.Fetch(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	if store.Err() != "boom" {
		t.Fatalf("expected stored error message, got %q", store.Err())
	}
	if store.Loading() {
		t.Fatalf("expected loading cleared after failed fetch")
	}
}

func TestServiceRequestStore_MutationsResync(t *testing.T) {
	fake := newFakeDeskServer()
	fake.seed(2)
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	store := NewServiceRequestStore(New(srv.URL, "t"), 20)
	ctx := context.Background()

	created, err := store.Create(ctx, ServiceRequestCreate{Title: "New laptop", Category: "hardware", Priority: "low"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Status != "new" || created.ResolvedAt != nil {
		t.Fatalf("expected fresh record defaults, got %+v", created)
	}
	if store.Count() != 3 {
		t.Fatalf("expected count 3 after create, got %d", store.Count())
	}

	status := "in_progress"
	if _, err := store.Update(ctx, created.RequestID, ServiceRequestUpdate{Status: &status}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, rec := range store.Records() {
		if rec.RequestID == created.RequestID {
			found = true
			if rec.Status != "in_progress" {
				t.Fatalf("expected updated status in store, got %s", rec.Status)
			}
		}
	}
	if !found {
		t.Fatalf("expected updated record in store")
	}

	if err := store.Delete(ctx, created.RequestID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Count() != 2 {
		t.Fatalf("expected count 2 after delete, got %d", store.Count())
	}
	for _, rec := range store.Records() {
		if rec.RequestID == created.RequestID {
			t.Fatalf("deleted record %s still present in store", created.RequestID)
		}
	}
}

func TestServiceRequestStore_StaleFetchDropped(t *testing.T) {
	slowStarted := make(chan struct{})
	releaseSlow := make(chan struct{})
	var calls int
	var mu sync.Mutex

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		first := calls == 1
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if first {
			close(slowStarted)
			<-releaseSlow
			w.Write([]byte(`{"count":1,"results":[{"id":"stale","request_id":"SR-OLD"}]}`))
			return
		}
		w.Write([]byte(`{"count":1,"results":[{"id":"fresh","request_id":"SR-NEW"}]}`))
	}))
	defer srv.Close()

	store := NewServiceRequestStore(New(srv.URL, "t"), 10)

	slowDone := make(chan error, 1)
	go func() {
		slowDone <- store.Fetch(context.Background())
	}()
	<-slowStarted

	// A second fetch starts and completes while the first is still
	// waiting on the server.
	if err := store.Fetch(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	close(releaseSlow)
	<-slowDone

	records := store.Records()
	if len(records) != 1 || records[0].RequestID != "SR-NEW" {
		t.Fatalf("expected the newer fetch's records kept, got %+v", records)
	}
}
