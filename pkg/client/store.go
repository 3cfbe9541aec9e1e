package client

import (
	"context"
	"sync"
)

// ServiceRequestStore holds the authoritative in-memory copy of one
// paginated service-request listing, plus loading and error state.
// Every mutation goes through the API and then re-fetches, so the
// store never drifts from server truth. A generation counter makes
// sure a stale in-flight fetch can not overwrite a newer one.
type ServiceRequestStore struct {
	client *Client

	mu         sync.Mutex
	generation uint64
	page       int
	pageSize   int
	search     string
	records    []ServiceRequest
	count      int
	loading    bool
	lastError  string
}

func NewServiceRequestStore(c *Client, pageSize int) *ServiceRequestStore {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &ServiceRequestStore{client: c, page: 1, pageSize: pageSize}
}

// SetPage moves the pagination cursor. Call Fetch afterwards to load it.
func (s *ServiceRequestStore) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		page = 1
	}
	s.page = page
}

// SetSearch replaces the search filter applied on the next Fetch.
func (s *ServiceRequestStore) SetSearch(search string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = search
}

// Fetch reloads the current page from the server. On success the record
// list and count are replaced; on failure the error message is stored.
// The loading flag is cleared on every outcome.
func (s *ServiceRequestStore) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.loading = true
	opts := ServiceRequestListOptions{Page: s.page, PageSize: s.pageSize, Search: s.search}
	s.mu.Unlock()

	list, err := s.client.ListServiceRequests(ctx, opts)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		// A newer fetch has started; drop this result.
		return err
	}
	s.loading = false
	if err != nil {
		s.lastError = err.Error()
		return err
	}
	s.records = list.Results
	s.count = list.Count
	s.lastError = ""
	return nil
}

// Create posts a new record and resynchronizes the listing.
func (s *ServiceRequestStore) Create(ctx context.Context, input ServiceRequestCreate) (ServiceRequest, error) {
	created, err := s.client.CreateServiceRequest(ctx, input)
	if err != nil {
		s.setError(err)
		return ServiceRequest{}, err
	}
	return created, s.Fetch(ctx)
}

// Update patches a record and resynchronizes the listing.
func (s *ServiceRequestStore) Update(ctx context.Context, key string, patch ServiceRequestUpdate) (ServiceRequest, error) {
	updated, err := s.client.UpdateServiceRequest(ctx, key, patch)
	if err != nil {
		s.setError(err)
		return ServiceRequest{}, err
	}
	return updated, s.Fetch(ctx)
}

// Delete removes a record and resynchronizes the listing.
func (s *ServiceRequestStore) Delete(ctx context.Context, key string) error {
	if err := s.client.DeleteServiceRequest(ctx, key); err != nil {
		s.setError(err)
		return err
	}
	return s.Fetch(ctx)
}

func (s *ServiceRequestStore) setError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = err.Error()
}

// Records returns the current page of records.
func (s *ServiceRequestStore) Records() []ServiceRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ServiceRequest, len(s.records))
	copy(out, s.records)
	return out
}

// Count returns the server-reported total across all pages.
func (s *ServiceRequestStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Loading reports whether a Fetch is in flight.
func (s *ServiceRequestStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last error message, empty when the last call
// succeeded.
func (s *ServiceRequestStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}
