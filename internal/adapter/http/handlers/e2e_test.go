package handlers

import (
	"context"
	"errors"
	"net/http/httptest"
	"sync"
	"testing"

	"servicedesk/internal/adapter/http/middleware"
	"servicedesk/internal/domain/entities"
	"servicedesk/internal/usecase"
	"servicedesk/internal/usecase/interfaces"
	"servicedesk/pkg/client"

	"github.com/gin-gonic/gin"
)

// In-memory repositories for end to end tests, following the same
// zero-value not-found convention as the DynamoDB ones.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]entities.User
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{users: map[string]entities.User{}} }

func (r *memUserRepo) Create(_ context.Context, u entities.User) (entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
	return u, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id], nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return entities.User{}, nil
}

func (r *memUserRepo) List(_ context.Context) ([]entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

type memTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]entities.AuthToken
}

func newMemTokenRepo() *memTokenRepo { return &memTokenRepo{tokens: map[string]entities.AuthToken{}} }

func (r *memTokenRepo) Create(_ context.Context, t entities.AuthToken) (entities.AuthToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[t.Token] = t
	return t, nil
}

func (r *memTokenRepo) GetByToken(_ context.Context, token string) (entities.AuthToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tokens[token], nil
}

func (r *memTokenRepo) Delete(_ context.Context, token string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.tokens[token]
	delete(r.tokens, token)
	return ok, nil
}

type memSequenceRepo struct {
	mu   sync.Mutex
	next map[string]int64
}

func newMemSequenceRepo() *memSequenceRepo { return &memSequenceRepo{next: map[string]int64{}} }

func (r *memSequenceRepo) Next(_ context.Context, name string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next[name]++
	return r.next[name], nil
}

type memServiceRequestRepo struct {
	mu       sync.Mutex
	requests map[string]entities.ServiceRequest
}

func newMemServiceRequestRepo() *memServiceRequestRepo {
	return &memServiceRequestRepo{requests: map[string]entities.ServiceRequest{}}
}

func (r *memServiceRequestRepo) Create(_ context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests[sr.ID] = sr
	return sr, nil
}

func (r *memServiceRequestRepo) GetByID(_ context.Context, id string) (entities.ServiceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.requests[id], nil
}

func (r *memServiceRequestRepo) GetByRequestID(_ context.Context, requestID string) (entities.ServiceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, sr := range r.requests {
		if sr.RequestID == requestID {
			return sr, nil
		}
	}
	return entities.ServiceRequest{}, nil
}

func (r *memServiceRequestRepo) List(_ context.Context, filter interfaces.ServiceRequestFilter) ([]entities.ServiceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.ServiceRequest, 0, len(r.requests))
	for _, sr := range r.requests {
		if filter.Status != "" && sr.Status != filter.Status {
			continue
		}
		if filter.Category != "" && sr.Category != filter.Category {
			continue
		}
		if filter.Priority != "" && sr.Priority != filter.Priority {
			continue
		}
		out = append(out, sr)
	}
	return out, nil
}

func (r *memServiceRequestRepo) Update(_ context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests[sr.ID] = sr
	return sr, nil
}

func (r *memServiceRequestRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.requests[id]
	delete(r.requests, id)
	return ok, nil
}

// newDeskTestServer wires real usecases over in-memory repositories
// behind the same routes the API serves, and returns an SDK client
// already logged in as a seeded agent.
func newDeskTestServer(t *testing.T) (*client.Client, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := newMemUserRepo()
	tokens := newMemTokenRepo()
	authUC := usecase.NewAuthUseCase(users, tokens)
	srUC := usecase.NewServiceRequestUseCase(newMemServiceRequestRepo(), users, newMemSequenceRepo())

	if _, err := authUC.CreateUser(context.Background(), usecase.CreateUserInput{
		Username: "alice",
		Password: "correct-horse",
		FullName: "Alice Agent",
		Role:     entities.UserRoleAgent,
	}); err != nil {
		t.Fatalf("seeding user: %v", err)
	}

	authHandler := NewAuthHandler(authUC)
	srHandler := NewServiceRequestHandler(srUC)

	r := gin.New()
	v1 := r.Group("/v1")
	v1.POST("/auth/login", authHandler.Login)
	protected := v1.Group("", middleware.RequireAuth(authUC))
	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/auth/me", authHandler.Me)
	protected.POST("/service-requests", srHandler.Create)
	protected.GET("/service-requests", srHandler.List)
	protected.GET("/service-requests/:key", srHandler.Get)
	protected.PATCH("/service-requests/:key", srHandler.Update)
	protected.DELETE("/service-requests/:key", srHandler.Delete)

	srv := httptest.NewServer(r)

	c := client.New(srv.URL+"/v1", "")
	if _, err := c.Login(context.Background(), "alice", "correct-horse"); err != nil {
		srv.Close()
		t.Fatalf("login: %v", err)
	}
	return c, srv.Close
}

func TestDesk_CreateDefaults(t *testing.T) {
	c, done := newDeskTestServer(t)
	defer done()
	ctx := context.Background()

	created, err := c.CreateServiceRequest(ctx, client.ServiceRequestCreate{
		Title:       "Email not syncing",
		Description: "Outlook stuck on connecting",
		Category:    "software",
		Priority:    "medium",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.RequestID != "SR-001" {
		t.Fatalf("expected SR-001, got %s", created.RequestID)
	}
	if created.Status != "new" {
		t.Fatalf("expected status new, got %s", created.Status)
	}
	if created.ResolvedAt != nil {
		t.Fatalf("expected nil resolved_at on creation, got %v", created.ResolvedAt)
	}
	if created.RequestedByUsername != "alice" {
		t.Fatalf("expected requester alice, got %s", created.RequestedByUsername)
	}
}

func TestDesk_ResolveFlow(t *testing.T) {
	c, done := newDeskTestServer(t)
	defer done()
	ctx := context.Background()

	created, err := c.CreateServiceRequest(ctx, client.ServiceRequestCreate{
		Title: "Broken monitor", Description: "No signal", Category: "hardware", Priority: "high",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	inProgress := "in_progress"
	if _, err := c.UpdateServiceRequest(ctx, created.RequestID, client.ServiceRequestUpdate{Status: &inProgress}); err != nil {
		t.Fatalf("start: %v", err)
	}

	resolved := "resolved"
	notes := "Swapped the monitor"
	updated, err := c.UpdateServiceRequest(ctx, created.RequestID, client.ServiceRequestUpdate{
		Status:          &resolved,
		ResolutionNotes: &notes,
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if updated.Status != "resolved" {
		t.Fatalf("expected resolved, got %s", updated.Status)
	}
	if updated.ResolvedAt == nil {
		t.Fatalf("expected resolved_at set on resolve")
	}
	if updated.ResolutionNotes == nil || *updated.ResolutionNotes != "Swapped the monitor" {
		t.Fatalf("expected resolution notes persisted, got %v", updated.ResolutionNotes)
	}

	// Terminal guard: closing then reworking is rejected.
	closed := "closed"
	if _, err := c.UpdateServiceRequest(ctx, created.RequestID, client.ServiceRequestUpdate{Status: &closed}); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := c.UpdateServiceRequest(ctx, created.RequestID, client.ServiceRequestUpdate{Status: &inProgress}); err == nil {
		t.Fatalf("expected illegal transition out of closed")
	}
}

func TestDesk_Pagination(t *testing.T) {
	c, done := newDeskTestServer(t)
	defer done()
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		if _, err := c.CreateServiceRequest(ctx, client.ServiceRequestCreate{
			Title: "Ticket", Description: "Bulk ticket", Category: "other", Priority: "low",
		}); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	page, err := c.ListServiceRequests(ctx, client.ServiceRequestListOptions{
		Page: 2, PageSize: 10, Ordering: "created_at",
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Count != 15 {
		t.Fatalf("expected count 15, got %d", page.Count)
	}
	if len(page.Results) != 5 {
		t.Fatalf("expected 5 results on page 2, got %d", len(page.Results))
	}
}

func TestDesk_DeleteExcludesRecord(t *testing.T) {
	c, done := newDeskTestServer(t)
	defer done()
	ctx := context.Background()

	var keys []string
	for i := 0; i < 3; i++ {
		created, err := c.CreateServiceRequest(ctx, client.ServiceRequestCreate{
			Title: "Ticket", Description: "Bulk ticket", Category: "other", Priority: "low",
		})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		keys = append(keys, created.RequestID)
	}

	if err := c.DeleteServiceRequest(ctx, keys[1]); err != nil {
		t.Fatalf("delete: %v", err)
	}

	page, err := c.ListServiceRequests(ctx, client.ServiceRequestListOptions{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Count != 2 {
		t.Fatalf("expected count 2 after delete, got %d", page.Count)
	}
	for _, rec := range page.Results {
		if rec.RequestID == keys[1] {
			t.Fatalf("deleted record %s still listed", keys[1])
		}
	}

	if _, err := c.GetServiceRequest(ctx, keys[1]); err == nil {
		t.Fatalf("expected not found after delete")
	}
}

func TestDesk_Unauthorized(t *testing.T) {
	c, done := newDeskTestServer(t)
	defer done()
	ctx := context.Background()

	c.SetToken("not-a-real-token")
	_, err := c.ListServiceRequests(ctx, client.ServiceRequestListOptions{})
	if err == nil {
		t.Fatalf("expected auth error")
	}
	var authErr *client.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %T: %v", err, err)
	}
}
