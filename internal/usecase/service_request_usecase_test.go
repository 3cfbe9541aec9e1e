package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"servicedesk/internal/domain/entities"
	mock_interfaces "servicedesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func TestServiceRequestUseCase_Create(t *testing.T) {
	t.Run("empty title", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), "user-1", CreateServiceRequestInput{
			Title:       "   ",
			Description: "desc",
			Category:    entities.RequestCategoryHardware,
			Priority:    entities.PriorityHigh,
		})
		if !errors.Is(err, ErrInvalidRequestInput) {
			t.Fatalf("expected ErrInvalidRequestInput, got %v", err)
		}
	})

	t.Run("invalid category", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), "user-1", CreateServiceRequestInput{
			Title:       "Printer broken",
			Description: "Jammed",
			Category:    entities.ServiceRequestCategory("furniture"),
			Priority:    entities.PriorityHigh,
		})
		if !errors.Is(err, ErrInvalidRequestInput) {
			t.Fatalf("expected ErrInvalidRequestInput, got %v", err)
		}
	})

	t.Run("missing requester", func(t *testing.T) {
		uc := NewServiceRequestUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), " ", CreateServiceRequestInput{
			Title:       "Printer broken",
			Description: "Jammed",
			Category:    entities.RequestCategoryHardware,
			Priority:    entities.PriorityHigh,
		})
		if !errors.Is(err, ErrInvalidRequestInput) {
			t.Fatalf("expected ErrInvalidRequestInput, got %v", err)
		}
	})

	t.Run("sequence error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewServiceRequestUseCase(nil, nil, seq)

		seq.EXPECT().Next(gomock.Any(), "service_request").Return(int64(0), errors.New("db"))

		_, err := uc.Create(context.Background(), "user-1", CreateServiceRequestInput{
			Title:       "Printer broken",
			Description: "Jammed",
			Category:    entities.RequestCategoryHardware,
			Priority:    entities.PriorityHigh,
		})
		if err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("success assigns defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, users, seq)

		seq.EXPECT().Next(gomock.Any(), "service_request").Return(int64(7), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
				if sr.ID == "" {
					t.Fatalf("expected generated id")
				}
				if sr.RequestID != "SR-007" {
					t.Fatalf("expected request_id SR-007, got %s", sr.RequestID)
				}
				if sr.Status != entities.RequestStatusNew {
					t.Fatalf("expected status new, got %s", sr.Status)
				}
				if sr.ResolvedAt != nil {
					t.Fatalf("expected nil resolved_at on creation")
				}
				return sr, nil
			})
		users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1", Username: "alice"}, nil)

		view, err := uc.Create(context.Background(), "user-1", CreateServiceRequestInput{
			Title:       "Printer broken",
			Description: "Jammed",
			Category:    entities.RequestCategoryHardware,
			Priority:    entities.PriorityHigh,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.RequestedBy.Username != "alice" {
			t.Fatalf("expected requested_by to be resolved, got %+v", view.RequestedBy)
		}
	})
}

func TestServiceRequestUseCase_GetByKey(t *testing.T) {
	t.Run("request_id key uses the number index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, users, nil)

		repo.EXPECT().GetByRequestID(gomock.Any(), "SR-001").Return(entities.ServiceRequest{
			ID: "id-1", RequestID: "SR-001", RequestedByID: "user-1",
		}, nil)
		users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1", Username: "alice"}, nil)

		view, err := uc.GetByKey(context.Background(), "SR-001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.RequestID != "SR-001" {
			t.Fatalf("expected SR-001, got %s", view.RequestID)
		}
	})

	t.Run("uuid key uses the primary key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, users, nil)

		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.ServiceRequest{
			ID: "id-1", RequestID: "SR-001", RequestedByID: "user-1",
		}, nil)
		users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1"}, nil)

		if _, err := uc.GetByKey(context.Background(), "id-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, nil, nil)

		repo.EXPECT().GetByRequestID(gomock.Any(), "SR-999").Return(entities.ServiceRequest{}, nil)

		_, err := uc.GetByKey(context.Background(), "SR-999")
		if !errors.Is(err, ErrServiceRequestNotFound) {
			t.Fatalf("expected ErrServiceRequestNotFound, got %v", err)
		}
	})
}

func TestServiceRequestUseCase_List(t *testing.T) {
	newRepoWith := func(ctrl *gomock.Controller, items []entities.ServiceRequest) *mock_interfaces.MockIServiceRequestRepository {
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(items, nil)
		return repo
	}

	t.Run("search filters by title and description", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		items := []entities.ServiceRequest{
			{ID: "1", RequestID: "SR-001", Title: "Printer broken", RequestedByID: "u1"},
			{ID: "2", RequestID: "SR-002", Title: "VPN", Description: "printer driver missing", RequestedByID: "u1"},
			{ID: "3", RequestID: "SR-003", Title: "Monitor flicker", RequestedByID: "u1"},
		}
		repo := newRepoWith(ctrl, items)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		users.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{ID: "u1"}, nil)
		uc := NewServiceRequestUseCase(repo, users, nil)

		page, err := uc.List(context.Background(), ServiceRequestListQuery{Search: "printer", Ordering: "request_id"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Count != 2 || len(page.Results) != 2 {
			t.Fatalf("expected 2 matches, got count=%d len=%d", page.Count, len(page.Results))
		}
	})

	t.Run("invalid ordering", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := newRepoWith(ctrl, nil)
		uc := NewServiceRequestUseCase(repo, nil, nil)

		_, err := uc.List(context.Background(), ServiceRequestListQuery{Ordering: "color"})
		if !errors.Is(err, ErrInvalidOrdering) {
			t.Fatalf("expected ErrInvalidOrdering, got %v", err)
		}
	})

	t.Run("pagination slices and keeps the total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		items := make([]entities.ServiceRequest, 15)
		for i := range items {
			items[i] = entities.ServiceRequest{
				ID:            "id",
				RequestID:     formatRecordNumber("SR", int64(i+1)),
				RequestedByID: "u1",
				CreatedAt:     time.Date(2026, 1, 1, 0, i, 0, 0, time.UTC),
			}
		}
		repo := newRepoWith(ctrl, items)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		users.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{ID: "u1"}, nil)
		uc := NewServiceRequestUseCase(repo, users, nil)

		page, err := uc.List(context.Background(), ServiceRequestListQuery{
			Ordering: "created_at",
			Page:     PageParams{Page: 2, PageSize: 10},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Count != 15 {
			t.Fatalf("expected count 15, got %d", page.Count)
		}
		if len(page.Results) != 5 {
			t.Fatalf("expected 5 results on page 2, got %d", len(page.Results))
		}
		if page.Results[0].RequestID != "SR-011" {
			t.Fatalf("expected page 2 to start at SR-011, got %s", page.Results[0].RequestID)
		}
	})
}

func TestServiceRequestUseCase_Update(t *testing.T) {
	base := entities.ServiceRequest{
		ID:            "id-1",
		RequestID:     "SR-001",
		Title:         "Printer broken",
		Description:   "Jammed",
		Category:      entities.RequestCategoryHardware,
		Priority:      entities.PriorityHigh,
		Status:        entities.RequestStatusInProgress,
		RequestedByID: "user-1",
	}

	t.Run("resolve sets resolved_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, users, nil)

		repo.EXPECT().GetByRequestID(gomock.Any(), "SR-001").Return(base, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
				if sr.Status != entities.RequestStatusResolved {
					t.Fatalf("expected resolved, got %s", sr.Status)
				}
				if sr.ResolvedAt == nil {
					t.Fatalf("expected resolved_at to be set")
				}
				if sr.ResolutionNotes == nil || *sr.ResolutionNotes != "Replaced drum" {
					t.Fatalf("expected resolution notes to be stored")
				}
				return sr, nil
			})
		users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1"}, nil)

		status := entities.RequestStatusResolved
		_, err := uc.Update(context.Background(), "SR-001", ServiceRequestPatch{
			Status:          &status,
			ResolutionNotes: strPtr("Replaced drum"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("illegal transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, nil, nil)

		closed := base
		closed.Status = entities.RequestStatusClosed
		repo.EXPECT().GetByRequestID(gomock.Any(), "SR-001").Return(closed, nil)

		status := entities.RequestStatusInProgress
		_, err := uc.Update(context.Background(), "SR-001", ServiceRequestPatch{Status: &status})
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("reopen clears resolved_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, users, nil)

		resolvedAt := time.Now().UTC()
		resolved := base
		resolved.Status = entities.RequestStatusResolved
		resolved.ResolvedAt = &resolvedAt
		repo.EXPECT().GetByRequestID(gomock.Any(), "SR-001").Return(resolved, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
				if sr.ResolvedAt != nil {
					t.Fatalf("expected resolved_at cleared on reopen")
				}
				return sr, nil
			})
		users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1"}, nil)

		status := entities.RequestStatusInProgress
		if _, err := uc.Update(context.Background(), "SR-001", ServiceRequestPatch{Status: &status}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown assignee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, users, nil)

		repo.EXPECT().GetByRequestID(gomock.Any(), "SR-001").Return(base, nil)
		users.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.User{}, nil)

		_, err := uc.Update(context.Background(), "SR-001", ServiceRequestPatch{AssignedToID: strPtr("ghost")})
		if !errors.Is(err, ErrAssigneeNotFound) {
			t.Fatalf("expected ErrAssigneeNotFound, got %v", err)
		}
	})

	t.Run("empty assignee unassigns", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, users, nil)

		assigned := base
		agent := "agent-1"
		assigned.AssignedToID = &agent
		repo.EXPECT().GetByRequestID(gomock.Any(), "SR-001").Return(assigned, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
				if sr.AssignedToID != nil {
					t.Fatalf("expected assignment cleared")
				}
				return sr, nil
			})
		users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1"}, nil)

		if _, err := uc.Update(context.Background(), "SR-001", ServiceRequestPatch{AssignedToID: strPtr("")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestServiceRequestUseCase_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, nil, nil)

		repo.EXPECT().GetByRequestID(gomock.Any(), "SR-001").Return(entities.ServiceRequest{ID: "id-1", RequestID: "SR-001"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "id-1").Return(true, nil)

		if err := uc.Delete(context.Background(), "SR-001"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("already gone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
		uc := NewServiceRequestUseCase(repo, nil, nil)

		repo.EXPECT().GetByRequestID(gomock.Any(), "SR-001").Return(entities.ServiceRequest{ID: "id-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "id-1").Return(false, nil)

		if err := uc.Delete(context.Background(), "SR-001"); !errors.Is(err, ErrServiceRequestNotFound) {
			t.Fatalf("expected ErrServiceRequestNotFound, got %v", err)
		}
	})
}
