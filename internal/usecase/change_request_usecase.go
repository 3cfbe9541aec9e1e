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
	ErrChangeRequestNotFound = errors.New("change request not found")
	ErrInvalidChangeInput    = errors.New("invalid change request input")
)

type CreateChangeRequestInput struct {
	Title        string
	Description  string
	Reason       string
	Impact       entities.ChangeImpact
	ScheduledFor *time.Time
}

type ChangeRequestPatch struct {
	Title        *string
	Description  *string
	Reason       *string
	Impact       *entities.ChangeImpact
	Status       *entities.ChangeRequestStatus
	ScheduledFor *time.Time
}

type ChangeRequestListQuery struct {
	Filter   interfaces.ChangeRequestFilter
	Search   string
	Ordering string
	Page     PageParams
}

type ChangeRequestPage struct {
	Results []entities.ChangeRequestView
	Count   int
}

// IChangeRequestUseCase drives the change lifecycle. Status moves follow
// the forward-only table on the entity; approval and rejection record the
// acting user as approver.
type IChangeRequestUseCase interface {
	Create(ctx context.Context, requestedByID string, input CreateChangeRequestInput) (entities.ChangeRequestView, error)
	GetByKey(ctx context.Context, key string) (entities.ChangeRequestView, error)
	List(ctx context.Context, query ChangeRequestListQuery) (ChangeRequestPage, error)
	Update(ctx context.Context, key string, actorID string, patch ChangeRequestPatch) (entities.ChangeRequestView, error)
	Delete(ctx context.Context, key string) error
}

type ChangeRequestUseCase struct {
	repo  interfaces.IChangeRequestRepository
	users interfaces.IUserRepository
	seq   interfaces.ISequenceRepository
}

var _ IChangeRequestUseCase = (*ChangeRequestUseCase)(nil)

func NewChangeRequestUseCase(repo interfaces.IChangeRequestRepository, users interfaces.IUserRepository, seq interfaces.ISequenceRepository) *ChangeRequestUseCase {
	return &ChangeRequestUseCase{repo: repo, users: users, seq: seq}
}

func (u *ChangeRequestUseCase) Create(ctx context.Context, requestedByID string, input CreateChangeRequestInput) (entities.ChangeRequestView, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	if input.Title == "" || input.Description == "" || strings.TrimSpace(requestedByID) == "" {
		return entities.ChangeRequestView{}, ErrInvalidChangeInput
	}
	if input.Impact == "" {
		input.Impact = entities.ChangeImpactLow
	}
	if !input.Impact.Valid() {
		return entities.ChangeRequestView{}, ErrInvalidChangeInput
	}

	n, err := u.seq.Next(ctx, seqChangeRequest)
	if err != nil {
		return entities.ChangeRequestView{}, err
	}

	now := time.Now().UTC()
	cr := entities.ChangeRequest{
		ID:            uuid.NewString(),
		ChangeID:      formatRecordNumber("CHG", n),
		Title:         input.Title,
		Description:   input.Description,
		Reason:        strings.TrimSpace(input.Reason),
		Impact:        input.Impact,
		Status:        entities.ChangeStatusDraft,
		RequestedByID: requestedByID,
		ScheduledFor:  input.ScheduledFor,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.repo.Create(ctx, cr)
	if err != nil {
		return entities.ChangeRequestView{}, err
	}
	log.Printf("[change][usecase] created change_id=%s impact=%s", created.ChangeID, created.Impact)
	return u.view(ctx, created)
}

func (u *ChangeRequestUseCase) GetByKey(ctx context.Context, key string) (entities.ChangeRequestView, error) {
	cr, err := u.getByKey(ctx, key)
	if err != nil {
		return entities.ChangeRequestView{}, err
	}
	return u.view(ctx, cr)
}

func (u *ChangeRequestUseCase) List(ctx context.Context, query ChangeRequestListQuery) (ChangeRequestPage, error) {
	all, err := u.repo.List(ctx, query.Filter)
	if err != nil {
		return ChangeRequestPage{}, err
	}

	if search := strings.ToLower(strings.TrimSpace(query.Search)); search != "" {
		matched := all[:0]
		for _, cr := range all {
			if strings.Contains(strings.ToLower(cr.Title), search) ||
				strings.Contains(strings.ToLower(cr.Description), search) {
				matched = append(matched, cr)
			}
		}
		all = matched
	}

	if err := sortChangeRequests(all, query.Ordering); err != nil {
		return ChangeRequestPage{}, err
	}

	pageItems, count := paginate(all, query.Page)

	resolver := newRefResolver(u.users)
	views := make([]entities.ChangeRequestView, 0, len(pageItems))
	for _, cr := range pageItems {
		v, err := u.buildView(ctx, resolver, cr)
		if err != nil {
			return ChangeRequestPage{}, err
		}
		views = append(views, v)
	}
	return ChangeRequestPage{Results: views, Count: count}, nil
}

func (u *ChangeRequestUseCase) Update(ctx context.Context, key string, actorID string, patch ChangeRequestPatch) (entities.ChangeRequestView, error) {
	cr, err := u.getByKey(ctx, key)
	if err != nil {
		return entities.ChangeRequestView{}, err
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return entities.ChangeRequestView{}, ErrInvalidChangeInput
		}
		cr.Title = title
	}
	if patch.Description != nil {
		desc := strings.TrimSpace(*patch.Description)
		if desc == "" {
			return entities.ChangeRequestView{}, ErrInvalidChangeInput
		}
		cr.Description = desc
	}
	if patch.Reason != nil {
		cr.Reason = strings.TrimSpace(*patch.Reason)
	}
	if patch.Impact != nil {
		if !patch.Impact.Valid() {
			return entities.ChangeRequestView{}, ErrInvalidChangeInput
		}
		cr.Impact = *patch.Impact
	}
	if patch.ScheduledFor != nil {
		d := *patch.ScheduledFor
		cr.ScheduledFor = &d
	}
	if patch.Status != nil {
		next := *patch.Status
		if !next.Valid() {
			return entities.ChangeRequestView{}, ErrInvalidChangeInput
		}
		if !cr.Status.CanTransitionTo(next) {
			return entities.ChangeRequestView{}, ErrIllegalTransition
		}
		now := time.Now().UTC()
		switch next {
		case entities.ChangeStatusApproved, entities.ChangeStatusRejected:
			if cr.Status != next {
				actor := strings.TrimSpace(actorID)
				if actor == "" {
					return entities.ChangeRequestView{}, ErrInvalidChangeInput
				}
				cr.ApprovedByID = &actor
			}
		case entities.ChangeStatusCompleted:
			if cr.Status != next {
				cr.CompletedAt = &now
			}
		}
		cr.Status = next
	}

	cr.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, cr)
	if err != nil {
		return entities.ChangeRequestView{}, err
	}
	if updated.ID == "" {
		return entities.ChangeRequestView{}, ErrChangeRequestNotFound
	}
	log.Printf("[change][usecase] updated change_id=%s status=%s", updated.ChangeID, updated.Status)
	return u.view(ctx, updated)
}

func (u *ChangeRequestUseCase) Delete(ctx context.Context, key string) error {
	cr, err := u.getByKey(ctx, key)
	if err != nil {
		return err
	}
	deleted, err := u.repo.Delete(ctx, cr.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrChangeRequestNotFound
	}
	return nil
}

func (u *ChangeRequestUseCase) getByKey(ctx context.Context, key string) (entities.ChangeRequest, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return entities.ChangeRequest{}, ErrChangeRequestNotFound
	}

	var (
		cr  entities.ChangeRequest
		err error
	)
	if strings.HasPrefix(key, "CHG-") {
		cr, err = u.repo.GetByChangeID(ctx, key)
	} else {
		cr, err = u.repo.GetByID(ctx, key)
	}
	if err != nil {
		return entities.ChangeRequest{}, err
	}
	if cr.ID == "" {
		return entities.ChangeRequest{}, ErrChangeRequestNotFound
	}
	return cr, nil
}

func (u *ChangeRequestUseCase) view(ctx context.Context, cr entities.ChangeRequest) (entities.ChangeRequestView, error) {
	return u.buildView(ctx, newRefResolver(u.users), cr)
}

func (u *ChangeRequestUseCase) buildView(ctx context.Context, resolver *refResolver, cr entities.ChangeRequest) (entities.ChangeRequestView, error) {
	requestedBy, err := resolver.user(ctx, cr.RequestedByID)
	if err != nil {
		return entities.ChangeRequestView{}, err
	}
	approvedBy, err := resolver.userPtr(ctx, cr.ApprovedByID)
	if err != nil {
		return entities.ChangeRequestView{}, err
	}
	return entities.ChangeRequestView{
		ChangeRequest: cr,
		RequestedBy:   requestedBy,
		ApprovedBy:    approvedBy,
	}, nil
}

func sortChangeRequests(items []entities.ChangeRequest, ordering string) error {
	ordering = strings.TrimSpace(ordering)
	if ordering == "" {
		ordering = "-created_at"
	}
	desc := strings.HasPrefix(ordering, "-")
	field := strings.TrimPrefix(ordering, "-")

	var less func(a, b entities.ChangeRequest) bool
	switch field {
	case "created_at":
		less = func(a, b entities.ChangeRequest) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case "updated_at":
		less = func(a, b entities.ChangeRequest) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	case "title":
		less = func(a, b entities.ChangeRequest) bool { return a.Title < b.Title }
	case "change_id":
		less = func(a, b entities.ChangeRequest) bool { return a.ChangeID < b.ChangeID }
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
