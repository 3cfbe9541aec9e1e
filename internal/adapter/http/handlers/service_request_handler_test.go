package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"servicedesk/internal/adapter/http/handlers/mocks"
	"servicedesk/internal/domain/entities"
	"servicedesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newServiceRequestRouter(h *ServiceRequestHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("currentUser", entities.User{ID: "user-1", Username: "alice"})
		c.Next()
	})
	r.POST("/v1/service-requests", h.Create)
	r.GET("/v1/service-requests", h.List)
	r.GET("/v1/service-requests/:key", h.Get)
	r.PATCH("/v1/service-requests/:key", h.Update)
	r.DELETE("/v1/service-requests/:key", h.Delete)
	return r
}

func TestServiceRequestHandler_Create(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		r := newServiceRequestRouter(NewServiceRequestHandler(uc))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/service-requests", strings.NewReader(`{"title":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		r := newServiceRequestRouter(NewServiceRequestHandler(uc))

		uc.EXPECT().Create(gomock.Any(), "user-1", usecase.CreateServiceRequestInput{
			Title:       "Printer broken",
			Description: "Jammed",
			Category:    entities.RequestCategoryHardware,
			Priority:    entities.PriorityHigh,
		}).Return(entities.ServiceRequestView{
			ServiceRequest: entities.ServiceRequest{ID: "id-1", RequestID: "SR-001", Status: entities.RequestStatusNew},
			RequestedBy:    entities.UserRef{ID: "user-1", Username: "alice"},
		}, nil)

		body := `{"title":"Printer broken","description":"Jammed","category":"hardware","priority":"high"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/service-requests", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["request_id"] != "SR-001" {
			t.Fatalf("expected request_id SR-001, got %v", resp["request_id"])
		}
		if resp["status"] != "new" {
			t.Fatalf("expected status new, got %v", resp["status"])
		}
	})
}

func TestServiceRequestHandler_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		r := newServiceRequestRouter(NewServiceRequestHandler(uc))

		uc.EXPECT().GetByKey(gomock.Any(), "SR-999").Return(entities.ServiceRequestView{}, usecase.ErrServiceRequestNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/service-requests/SR-999", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid error body: %v", err)
		}
		if body["detail"] == "" {
			t.Fatalf("expected a detail field in the error body, got %s", w.Body.String())
		}
	})
}

func TestServiceRequestHandler_List(t *testing.T) {
	t.Run("paginated envelope with links", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		r := newServiceRequestRouter(NewServiceRequestHandler(uc))

		uc.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, query usecase.ServiceRequestListQuery) (usecase.ServiceRequestPage, error) {
				if query.Page.Page != 2 || query.Page.PageSize != 10 {
					t.Fatalf("expected page=2 page_size=10, got %+v", query.Page)
				}
				if query.Filter.Status != entities.RequestStatusNew {
					t.Fatalf("expected status filter, got %s", query.Filter.Status)
				}
				return usecase.ServiceRequestPage{
					Results: []entities.ServiceRequestView{{
						ServiceRequest: entities.ServiceRequest{ID: "id-11", RequestID: "SR-011"},
					}},
					Count: 25,
				}, nil
			})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/service-requests?page=2&page_size=10&status=new", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var envelope struct {
			Count    int               `json:"count"`
			Next     *string           `json:"next"`
			Previous *string           `json:"previous"`
			Results  []json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("invalid envelope: %v", err)
		}
		if envelope.Count != 25 {
			t.Fatalf("expected count 25, got %d", envelope.Count)
		}
		if len(envelope.Results) != 1 {
			t.Fatalf("expected 1 result, got %d", len(envelope.Results))
		}
		if envelope.Next == nil || !strings.Contains(*envelope.Next, "page=3") {
			t.Fatalf("expected next link to page 3, got %v", envelope.Next)
		}
		if envelope.Previous == nil || !strings.Contains(*envelope.Previous, "page=1") {
			t.Fatalf("expected previous link to page 1, got %v", envelope.Previous)
		}
		if !strings.Contains(*envelope.Next, "status=new") {
			t.Fatalf("expected next link to keep filters, got %s", *envelope.Next)
		}
	})

	t.Run("invalid ordering", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		r := newServiceRequestRouter(NewServiceRequestHandler(uc))

		uc.EXPECT().List(gomock.Any(), gomock.Any()).Return(usecase.ServiceRequestPage{}, usecase.ErrInvalidOrdering)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/service-requests?ordering=color", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestServiceRequestHandler_Update(t *testing.T) {
	t.Run("illegal transition maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		r := newServiceRequestRouter(NewServiceRequestHandler(uc))

		uc.EXPECT().Update(gomock.Any(), "SR-001", gomock.Any()).Return(entities.ServiceRequestView{}, usecase.ErrIllegalTransition)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/v1/service-requests/SR-001", strings.NewReader(`{"status":"in_progress"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("resolved patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		r := newServiceRequestRouter(NewServiceRequestHandler(uc))

		uc.EXPECT().Update(gomock.Any(), "SR-001", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, patch usecase.ServiceRequestPatch) (entities.ServiceRequestView, error) {
				if patch.Status == nil || *patch.Status != entities.RequestStatusResolved {
					t.Fatalf("expected resolved status in patch, got %+v", patch.Status)
				}
				if patch.ResolutionNotes == nil || *patch.ResolutionNotes != "Replaced drum" {
					t.Fatalf("expected resolution notes in patch")
				}
				return entities.ServiceRequestView{
					ServiceRequest: entities.ServiceRequest{RequestID: "SR-001", Status: entities.RequestStatusResolved},
				}, nil
			})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/v1/service-requests/SR-001",
			strings.NewReader(`{"status":"resolved","resolution_notes":"Replaced drum"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestServiceRequestHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIServiceRequestUseCase(ctrl)
	r := newServiceRequestRouter(NewServiceRequestHandler(uc))

	uc.EXPECT().Delete(gomock.Any(), "SR-001").Return(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/service-requests/SR-001", nil))

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Fatalf("expected empty body on delete, got %s", w.Body.String())
	}
}
