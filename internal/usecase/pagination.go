package usecase

import "servicedesk/internal/domain/entities"

// PageParams is the 1-indexed page/page_size pair every list operation
// accepts. Zero values fall back to defaults; oversized pages are clamped.
type PageParams struct {
	Page     int
	PageSize int
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Normalize applies defaults and clamping. Callers building pagination
// links need the effective values, not the raw query input.
func (p PageParams) Normalize() PageParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultPageSize
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
	return p
}

// paginate slices one page out of the full result set. The total count is
// always the pre-slice length; a page past the end yields an empty slice,
// not an error, matching the paginated-envelope convention.
func paginate[T any](items []T, p PageParams) ([]T, int) {
	p = p.Normalize()
	count := len(items)
	start := (p.Page - 1) * p.PageSize
	if start >= count {
		return []T{}, count
	}
	end := start + p.PageSize
	if end > count {
		end = count
	}
	return items[start:end], count
}

// PaginateUsers pages the full user list for the admin endpoint. Other
// list operations paginate inside their usecase; users have no filter or
// ordering stage, so the handler pages directly.
func PaginateUsers(users []entities.User, p PageParams) ([]entities.User, int) {
	return paginate(users, p)
}
