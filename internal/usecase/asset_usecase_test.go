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

type assetMocks struct {
	repo       *mock_interfaces.MockIAssetRepository
	categories *mock_interfaces.MockICategoryRepository
	locations  *mock_interfaces.MockILocationRepository
	vendors    *mock_interfaces.MockIVendorRepository
	users      *mock_interfaces.MockIUserRepository
	seq        *mock_interfaces.MockISequenceRepository
}

func newAssetUseCaseForTest(ctrl *gomock.Controller) (*AssetUseCase, assetMocks) {
	m := assetMocks{
		repo:       mock_interfaces.NewMockIAssetRepository(ctrl),
		categories: mock_interfaces.NewMockICategoryRepository(ctrl),
		locations:  mock_interfaces.NewMockILocationRepository(ctrl),
		vendors:    mock_interfaces.NewMockIVendorRepository(ctrl),
		users:      mock_interfaces.NewMockIUserRepository(ctrl),
		seq:        mock_interfaces.NewMockISequenceRepository(ctrl),
	}
	uc := NewAssetUseCase(m.repo, m.categories, m.locations, m.vendors, m.users, m.seq)
	return uc, m
}

func TestAssetUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("empty name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newAssetUseCaseForTest(ctrl)

		_, err := uc.Create(ctx, AssetInput{Name: "   "})
		if !errors.Is(err, ErrInvalidAssetInput) {
			t.Fatalf("expected ErrInvalidAssetInput, got %v", err)
		}
	})

	t.Run("negative purchase cost", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newAssetUseCaseForTest(ctrl)

		_, err := uc.Create(ctx, AssetInput{Name: "Laptop", PurchaseCost: -1})
		if !errors.Is(err, ErrInvalidAssetInput) {
			t.Fatalf("expected ErrInvalidAssetInput, got %v", err)
		}
	})

	t.Run("unknown category reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAssetUseCaseForTest(ctrl)

		m.categories.EXPECT().GetByID(gomock.Any(), "cat-missing").Return(entities.Category{}, nil)

		_, err := uc.Create(ctx, AssetInput{Name: "Laptop", CategoryID: strPtr("cat-missing")})
		if !errors.Is(err, ErrAssetRefNotFound) {
			t.Fatalf("expected ErrAssetRefNotFound, got %v", err)
		}
	})

	t.Run("defaults and tag assignment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAssetUseCaseForTest(ctrl)

		m.seq.EXPECT().Next(gomock.Any(), "asset").Return(int64(12), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Asset) (entities.Asset, error) {
				if a.AssetTag != "AST-012" {
					t.Fatalf("expected AST-012, got %s", a.AssetTag)
				}
				if a.Status != entities.AssetStatusInStock {
					t.Fatalf("expected in_stock default, got %s", a.Status)
				}
				if a.ID == "" {
					t.Fatalf("expected generated id")
				}
				return a, nil
			})

		view, err := uc.Create(ctx, AssetInput{Name: "ThinkPad T14", SerialNumber: " SN-42 "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.SerialNumber != "SN-42" {
			t.Fatalf("expected trimmed serial, got %q", view.SerialNumber)
		}
		if view.Category != nil || view.AssignedTo != nil {
			t.Fatalf("expected nil refs when no ids set")
		}
	})
}

func TestAssetUseCase_GetByKey(t *testing.T) {
	ctx := context.Background()

	t.Run("tag prefix dispatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAssetUseCaseForTest(ctrl)

		catID := "cat-1"
		m.repo.EXPECT().GetByTag(gomock.Any(), "AST-001").Return(entities.Asset{
			ID: "asset-1", AssetTag: "AST-001", Name: "Printer", CategoryID: &catID,
		}, nil)
		m.categories.EXPECT().GetByID(gomock.Any(), "cat-1").Return(entities.Category{ID: "cat-1", Name: "Peripherals"}, nil)

		view, err := uc.GetByKey(ctx, "AST-001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Category == nil || view.Category.Name != "Peripherals" {
			t.Fatalf("expected category ref expanded, got %+v", view.Category)
		}
	})

	t.Run("dangling reference degrades to id-only ref", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAssetUseCaseForTest(ctrl)

		catID := "cat-gone"
		m.repo.EXPECT().GetByID(gomock.Any(), "asset-1").Return(entities.Asset{
			ID: "asset-1", AssetTag: "AST-001", Name: "Printer", CategoryID: &catID,
		}, nil)
		m.categories.EXPECT().GetByID(gomock.Any(), "cat-gone").Return(entities.Category{}, nil)

		view, err := uc.GetByKey(ctx, "asset-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Category == nil || view.Category.ID != "cat-gone" || view.Category.Name != "" {
			t.Fatalf("expected id-only ref for dangling category, got %+v", view.Category)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAssetUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Asset{}, nil)

		_, err := uc.GetByKey(ctx, "nope")
		if !errors.Is(err, ErrAssetNotFound) {
			t.Fatalf("expected ErrAssetNotFound, got %v", err)
		}
	})
}

func TestAssetUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("search and ordering", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAssetUseCaseForTest(ctrl)

		now := time.Now().UTC()
		m.repo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entities.Asset{
			{ID: "a1", AssetTag: "AST-001", Name: "Dell Monitor", CreatedAt: now},
			{ID: "a2", AssetTag: "AST-002", Name: "Lenovo Laptop", SerialNumber: "DELL-99", CreatedAt: now.Add(time.Minute)},
			{ID: "a3", AssetTag: "AST-003", Name: "Keyboard", CreatedAt: now.Add(2 * time.Minute)},
		}, nil)

		page, err := uc.List(ctx, AssetListQuery{Search: "dell", Ordering: "name"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Count != 2 {
			t.Fatalf("expected 2 matches (name and serial), got %d", page.Count)
		}
		if page.Results[0].Name != "Dell Monitor" {
			t.Fatalf("expected name ordering, got %s first", page.Results[0].Name)
		}
	})

	t.Run("invalid ordering", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAssetUseCaseForTest(ctrl)

		m.repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := uc.List(ctx, AssetListQuery{Ordering: "colour"})
		if !errors.Is(err, ErrInvalidOrdering) {
			t.Fatalf("expected ErrInvalidOrdering, got %v", err)
		}
	})
}

func TestAssetUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("clear assignment with empty string", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAssetUseCaseForTest(ctrl)

		userID := "user-1"
		m.repo.EXPECT().GetByTag(gomock.Any(), "AST-001").Return(entities.Asset{
			ID: "asset-1", AssetTag: "AST-001", Name: "Laptop", AssignedToID: &userID,
		}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Asset) (entities.Asset, error) {
				if a.AssignedToID != nil {
					t.Fatalf("expected assignment cleared, got %v", *a.AssignedToID)
				}
				return a, nil
			})

		view, err := uc.Update(ctx, "AST-001", AssetPatch{AssignedToID: strPtr("")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.AssignedTo != nil {
			t.Fatalf("expected nil assignee in view")
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newAssetUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "asset-1").Return(entities.Asset{ID: "asset-1", Name: "Laptop"}, nil)

		bad := entities.AssetStatus("exploded")
		_, err := uc.Update(ctx, "asset-1", AssetPatch{Status: &bad})
		if !errors.Is(err, ErrInvalidAssetInput) {
			t.Fatalf("expected ErrInvalidAssetInput, got %v", err)
		}
	})
}

func TestAssetUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newAssetUseCaseForTest(ctrl)

	m.repo.EXPECT().GetByTag(gomock.Any(), "AST-001").Return(entities.Asset{ID: "asset-1", AssetTag: "AST-001"}, nil)
	m.repo.EXPECT().Delete(gomock.Any(), "asset-1").Return(true, nil)

	if err := uc.Delete(ctx, "AST-001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
