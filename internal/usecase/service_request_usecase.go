package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"servicedesk/internal/domain/entities"
	"servicedesk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrServiceRequestNotFound = errors.New("service request not found")
	ErrInvalidRequestInput    = errors.New("invalid service request input")
	ErrIllegalTransition      = errors.New("illegal status transition")
	ErrInvalidOrdering        = errors.New("invalid ordering parameter")
	ErrAssigneeNotFound       = errors.New("assignee not found")
)

type CreateServiceRequestInput struct {
	Title       string
	Description string
	Category    entities.ServiceRequestCategory
	Priority    entities.Priority
}

// ServiceRequestPatch carries a partial update. Nil means "leave alone";
// for AssignedToID an explicit empty string means "unassign".
type ServiceRequestPatch struct {
	Title           *string
	Description     *string
	Category        *entities.ServiceRequestCategory
	Priority        *entities.Priority
	Status          *entities.ServiceRequestStatus
	AssignedToID    *string
	ResolutionNotes *string
}

type ServiceRequestListQuery struct {
	Filter   interfaces.ServiceRequestFilter
	Search   string
	Ordering string
	Page     PageParams
}

// ServiceRequestPage is one page of results plus the pre-slice total,
// the two values the paginated envelope needs.
type ServiceRequestPage struct {
	Results []entities.ServiceRequestView
	Count   int
}

// IServiceRequestUseCase exposes the service-request lifecycle.
//
// Keys: operations accept either the internal uuid or the human-readable
// request_id ("SR-001"), which is the external URL-facing key.
type IServiceRequestUseCase interface {
	Create(ctx context.Context, requestedByID string, input CreateServiceRequestInput) (entities.ServiceRequestView, error)
	GetByKey(ctx context.Context, key string) (entities.ServiceRequestView, error)
	List(ctx context.Context, query ServiceRequestListQuery) (ServiceRequestPage, error)
	Update(ctx context.Context, key string, patch ServiceRequestPatch) (entities.ServiceRequestView, error)
	Delete(ctx context.Context, key string) error
}

type ServiceRequestUseCase struct {
	repo  interfaces.IServiceRequestRepository
	users interfaces.IUserRepository
	seq   interfaces.ISequenceRepository
}

var _ IServiceRequestUseCase = (*ServiceRequestUseCase)(nil)

func NewServiceRequestUseCase(repo interfaces.IServiceRequestRepository, users interfaces.IUserRepository, seq interfaces.ISequenceRepository) *ServiceRequestUseCase {
	return &ServiceRequestUseCase{repo: repo, users: users, seq: seq}
}

func (u *ServiceRequestUseCase) Create(ctx context.Context, requestedByID string, input CreateServiceRequestInput) (entities.ServiceRequestView, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	if input.Title == "" || input.Description == "" {
		return entities.ServiceRequestView{}, ErrInvalidRequestInput
	}
	if !input.Category.Valid() || !input.Priority.Valid() {
		return entities.ServiceRequestView{}, ErrInvalidRequestInput
	}
	if strings.TrimSpace(requestedByID) == "" {
		return entities.ServiceRequestView{}, ErrInvalidRequestInput
	}

	n, err := u.seq.Next(ctx, seqServiceRequest)
	if err != nil {
		return entities.ServiceRequestView{}, err
	}

	now := time.Now().UTC()
	sr := entities.ServiceRequest{
		ID:            uuid.NewString(),
		RequestID:     formatRecordNumber("SR", n),
		Title:         input.Title,
		Description:   input.Description,
		Category:      input.Category,
		Priority:      input.Priority,
		Status:        entities.RequestStatusNew,
		RequestedByID: requestedByID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.repo.Create(ctx, sr)
	if err != nil {
		return entities.ServiceRequestView{}, err
	}
	log.Printf("[request][usecase] created request_id=%s priority=%s", created.RequestID, created.Priority)
	return u.view(ctx, created)
}

func (u *ServiceRequestUseCase) GetByKey(ctx context.Context, key string) (entities.ServiceRequestView, error) {
	sr, err := u.getByKey(ctx, key)
	if err != nil {
		return entities.ServiceRequestView{}, err
	}
	return u.view(ctx, sr)
}

func (u *ServiceRequestUseCase) List(ctx context.Context, query ServiceRequestListQuery) (ServiceRequestPage, error) {
	all, err := u.repo.List(ctx, query.Filter)
	if err != nil {
		return ServiceRequestPage{}, err
	}

	if search := strings.ToLower(strings.TrimSpace(query.Search)); search != "" {
		matched := all[:0]
		for _, sr := range all {
			if strings.Contains(strings.ToLower(sr.Title), search) ||
				strings.Contains(strings.ToLower(sr.Description), search) {
				matched = append(matched, sr)
			}
		}
		all = matched
	}

	if err := sortServiceRequests(all, query.Ordering); err != nil {
		return ServiceRequestPage{}, err
	}

	pageItems, count := paginate(all, query.Page)

	resolver := newRefResolver(u.users)
	views := make([]entities.ServiceRequestView, 0, len(pageItems))
	for _, sr := range pageItems {
		v, err := u.buildView(ctx, resolver, sr)
		if err != nil {
			return ServiceRequestPage{}, err
		}
		views = append(views, v)
	}
	return ServiceRequestPage{Results: views, Count: count}, nil
}

func (u *ServiceRequestUseCase) Update(ctx context.Context, key string, patch ServiceRequestPatch) (entities.ServiceRequestView, error) {
	sr, err := u.getByKey(ctx, key)
	if err != nil {
		return entities.ServiceRequestView{}, err
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return entities.ServiceRequestView{}, ErrInvalidRequestInput
		}
		sr.Title = title
	}
	if patch.Description != nil {
		desc := strings.TrimSpace(*patch.Description)
		if desc == "" {
			return entities.ServiceRequestView{}, ErrInvalidRequestInput
		}
		sr.Description = desc
	}
	if patch.Category != nil {
		if !patch.Category.Valid() {
			return entities.ServiceRequestView{}, ErrInvalidRequestInput
		}
		sr.Category = *patch.Category
	}
	if patch.Priority != nil {
		if !patch.Priority.Valid() {
			return entities.ServiceRequestView{}, ErrInvalidRequestInput
		}
		sr.Priority = *patch.Priority
	}
	if patch.AssignedToID != nil {
		if *patch.AssignedToID == "" {
			sr.AssignedToID = nil
		} else {
			assignee, err := u.users.GetByID(ctx, *patch.AssignedToID)
			if err != nil {
				return entities.ServiceRequestView{}, err
			}
			if assignee.ID == "" {
				return entities.ServiceRequestView{}, ErrAssigneeNotFound
			}
			id := assignee.ID
			sr.AssignedToID = &id
		}
	}
	if patch.ResolutionNotes != nil {
		notes := *patch.ResolutionNotes
		sr.ResolutionNotes = &notes
	}
	if patch.Status != nil {
		next := *patch.Status
		if !next.Valid() {
			return entities.ServiceRequestView{}, ErrInvalidRequestInput
		}
		if !sr.Status.CanTransitionTo(next) {
			return entities.ServiceRequestView{}, ErrIllegalTransition
		}
		now := time.Now().UTC()
		switch {
		case next == entities.RequestStatusResolved && sr.Status != entities.RequestStatusResolved:
			sr.ResolvedAt = &now
		case next == entities.RequestStatusInProgress && sr.Status == entities.RequestStatusResolved:
			// Reopen before closure clears the resolution timestamp.
			sr.ResolvedAt = nil
		}
		sr.Status = next
	}

	sr.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, sr)
	if err != nil {
		return entities.ServiceRequestView{}, err
	}
	if updated.ID == "" {
		return entities.ServiceRequestView{}, ErrServiceRequestNotFound
	}
	log.Printf("[request][usecase] updated request_id=%s status=%s", updated.RequestID, updated.Status)
	return u.view(ctx, updated)
}

func (u *ServiceRequestUseCase) Delete(ctx context.Context, key string) error {
	sr, err := u.getByKey(ctx, key)
	if err != nil {
		return err
	}
	deleted, err := u.repo.Delete(ctx, sr.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrServiceRequestNotFound
	}
	return nil
}

func (u *ServiceRequestUseCase) getByKey(ctx context.Context, key string) (entities.ServiceRequest, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return entities.ServiceRequest{}, ErrServiceRequestNotFound
	}

	var (
		sr  entities.ServiceRequest
		err error
	)
	if strings.HasPrefix(key, "SR-") {
		sr, err = u.repo.GetByRequestID(ctx, key)
	} else {
		sr, err = u.repo.GetByID(ctx, key)
	}
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if sr.ID == "" {
		return entities.ServiceRequest{}, ErrServiceRequestNotFound
	}
	return sr, nil
}

func (u *ServiceRequestUseCase) view(ctx context.Context, sr entities.ServiceRequest) (entities.ServiceRequestView, error) {
	return u.buildView(ctx, newRefResolver(u.users), sr)
}

func (u *ServiceRequestUseCase) buildView(ctx context.Context, resolver *refResolver, sr entities.ServiceRequest) (entities.ServiceRequestView, error) {
	requestedBy, err := resolver.user(ctx, sr.RequestedByID)
	if err != nil {
		return entities.ServiceRequestView{}, err
	}
	assignedTo, err := resolver.userPtr(ctx, sr.AssignedToID)
	if err != nil {
		return entities.ServiceRequestView{}, err
	}
	return entities.ServiceRequestView{
		ServiceRequest: sr,
		RequestedBy:    requestedBy,
		AssignedTo:     assignedTo,
	}, nil
}

func sortServiceRequests(items []entities.ServiceRequest, ordering string) error {
	ordering = strings.TrimSpace(ordering)
	if ordering == "" {
		ordering = "-created_at"
	}
	desc := strings.HasPrefix(ordering, "-")
	field := strings.TrimPrefix(ordering, "-")

	var less func(a, b entities.ServiceRequest) bool
	switch field {
	case "created_at":
		less = func(a, b entities.ServiceRequest) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case "updated_at":
		less = func(a, b entities.ServiceRequest) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	case "priority":
		less = func(a, b entities.ServiceRequest) bool { return a.Priority.Rank() < b.Priority.Rank() }
	case "title":
		less = func(a, b entities.ServiceRequest) bool { return a.Title < b.Title }
	case "request_id":
		less = func(a, b entities.ServiceRequest) bool { return a.RequestID < b.RequestID }
	default:
		return ErrInvalidOrdering
	}

	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
	return nil
}
