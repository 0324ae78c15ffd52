package types

// Page is one page of a listing plus the metadata the UI needs to render
// pagination controls.
type Page[T any] struct {
	Items    []T   `json:"items"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
	HasNext  bool  `json:"has_next"`
	HasPrev  bool  `json:"has_prev"`
}

// NewPage builds page metadata for items fetched with Offset(page, size).
// Pages are numbered from 1; out-of-range values fall back to defaults.
func NewPage[T any](items []T, page int, total int64) Page[T] {
	if page <= 0 {
		page = 1
	}

	if items == nil {
		items = []T{}
	}

	return Page[T]{
		Items:    items,
		Page:     page,
		PageSize: PageSize,
		Total:    total,
		HasNext:  int64(page*PageSize) < total,
		HasPrev:  page > 1,
	}
}

// Offset returns the row offset for a 1-based page number.
func Offset(page int) int {
	if page <= 0 {
		page = 1
	}
	return (page - 1) * PageSize
}
