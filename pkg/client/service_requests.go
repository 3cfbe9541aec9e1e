package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ServiceRequest is the flattened client-side record: the nested
// requested_by/assigned_to user objects from the wire are collapsed
// into scalar username/id pairs.
type ServiceRequest struct {
	ID                  string     `json:"id"`
	RequestID           string     `json:"request_id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Category            string     `json:"category"`
	Priority            string     `json:"priority"`
	Status              string     `json:"status"`
	RequestedByUsername string     `json:"requested_by_username"`
	RequestedByID       string     `json:"requested_by_id"`
	AssignedToUsername  *string    `json:"assigned_to_username"`
	AssignedToID        *string    `json:"assigned_to_id"`
	ResolutionNotes     *string    `json:"resolution_notes"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
	ResolvedAt          *time.Time `json:"resolved_at"`
}

// ServiceRequestCreate carries the fields accepted on creation.
type ServiceRequestCreate struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
}

// ServiceRequestUpdate is a partial update: nil fields are omitted from
// the request body and left untouched on the server.
type ServiceRequestUpdate struct {
	Title           *string `json:"title,omitempty"`
	Description     *string `json:"description,omitempty"`
	Category        *string `json:"category,omitempty"`
	Priority        *string `json:"priority,omitempty"`
	Status          *string `json:"status,omitempty"`
	AssignedToID    *string `json:"assigned_to_id,omitempty"`
	ResolutionNotes *string `json:"resolution_notes,omitempty"`
}

// ServiceRequestList is one page of results plus the server total.
type ServiceRequestList struct {
	Results []ServiceRequest
	Count   int
}

// ServiceRequestListOptions are the supported query parameters.
type ServiceRequestListOptions struct {
	Page     int
	PageSize int
	Search   string
	Status   string
	Category string
	Priority string
	Ordering string
}

type wireUserRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type wireServiceRequest struct {
	ID              string       `json:"id"`
	RequestID       string       `json:"request_id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	Category        string       `json:"category"`
	Priority        string       `json:"priority"`
	Status          string       `json:"status"`
	RequestedBy     *wireUserRef `json:"requested_by"`
	AssignedTo      *wireUserRef `json:"assigned_to"`
	ResolutionNotes *string      `json:"resolution_notes"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
	ResolvedAt      *time.Time   `json:"resolved_at"`
}

// flatten is null-safe: an absent assigned_to leaves both scalar pairs
// nil rather than failing.
func (w wireServiceRequest) flatten() ServiceRequest {
	flat := ServiceRequest{
		ID:              w.ID,
		RequestID:       w.RequestID,
		Title:           w.Title,
		Description:     w.Description,
		Category:        w.Category,
		Priority:        w.Priority,
		Status:          w.Status,
		ResolutionNotes: w.ResolutionNotes,
		CreatedAt:       w.CreatedAt,
		UpdatedAt:       w.UpdatedAt,
		ResolvedAt:      w.ResolvedAt,
	}
	if w.RequestedBy != nil {
		flat.RequestedByUsername = w.RequestedBy.Username
		flat.RequestedByID = w.RequestedBy.ID
	}
	if w.AssignedTo != nil {
		flat.AssignedToUsername = &w.AssignedTo.Username
		flat.AssignedToID = &w.AssignedTo.ID
	}
	return flat
}

// ListServiceRequests fetches one page. Pages are 1-indexed.
func (c *Client) ListServiceRequests(ctx context.Context, opts ServiceRequestListOptions) (ServiceRequestList, error) {
	query := url.Values{}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(opts.PageSize))
	}
	if opts.Search != "" {
		query.Set("search", opts.Search)
	}
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}
	if opts.Category != "" {
		query.Set("category", opts.Category)
	}
	if opts.Priority != "" {
		query.Set("priority", opts.Priority)
	}
	if opts.Ordering != "" {
		query.Set("ordering", opts.Ordering)
	}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/service-requests", query, nil, &raw); err != nil {
		return ServiceRequestList{}, err
	}

	items, count := UnwrapList(raw)
	results := make([]ServiceRequest, 0, len(items))
	for _, item := range items {
		var record wireServiceRequest
		if err := json.Unmarshal(item, &record); err != nil {
			return ServiceRequestList{}, err
		}
		results = append(results, record.flatten())
	}
	return ServiceRequestList{Results: results, Count: count}, nil
}

// GetServiceRequest fetches one record by its request_id key
// (for example "SR-001").
func (c *Client) GetServiceRequest(ctx context.Context, key string) (ServiceRequest, error) {
	var record wireServiceRequest
	if err := c.do(ctx, http.MethodGet, "/service-requests/"+url.PathEscape(key), nil, nil, &record); err != nil {
		return ServiceRequest{}, err
	}
	return record.flatten(), nil
}

func (c *Client) CreateServiceRequest(ctx context.Context, input ServiceRequestCreate) (ServiceRequest, error) {
	var record wireServiceRequest
	if err := c.do(ctx, http.MethodPost, "/service-requests", nil, input, &record); err != nil {
		return ServiceRequest{}, err
	}
	return record.flatten(), nil
}

func (c *Client) UpdateServiceRequest(ctx context.Context, key string, patch ServiceRequestUpdate) (ServiceRequest, error) {
	var record wireServiceRequest
	if err := c.do(ctx, http.MethodPatch, "/service-requests/"+url.PathEscape(key), nil, patch, &record); err != nil {
		return ServiceRequest{}, err
	}
	return record.flatten(), nil
}

// DeleteServiceRequest removes a record; the server responds 204.
func (c *Client) DeleteServiceRequest(ctx context.Context, key string) error {
	return c.do(ctx, http.MethodDelete, "/service-requests/"+url.PathEscape(key), nil, nil, nil)
}
