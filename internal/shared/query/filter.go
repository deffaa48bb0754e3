// Package query defines the pagination and sorting filters shared by list
// operations.
package query

// PageFilter carries pagination parameters.
type PageFilter struct {
	Page     int
	PageSize int
}

func (f PageFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

func (f PageFilter) Limit() int {
	if f.PageSize <= 0 {
		return 10
	}
	if f.PageSize > 100 {
		return 100
	}
	return f.PageSize
}

// SortFilter carries sort parameters. Repositories whitelist SortBy against
// their own column sets before building an ORDER BY clause.
type SortFilter struct {
	SortBy    string
	SortOrder string
}

func (f SortFilter) IsDescending() bool {
	return f.SortOrder == "desc" || f.SortOrder == "DESC"
}

func (f SortFilter) OrderClause() string {
	if f.SortBy == "" {
		return ""
	}
	order := "ASC"
	if f.IsDescending() {
		order = "DESC"
	}
	return f.SortBy + " " + order
}

// BaseFilter combines pagination and sorting. Default order, when SortBy is
// unset, is creation order (id ASC) applied by the repositories.
type BaseFilter struct {
	PageFilter
	SortFilter
}

type FilterOption func(*BaseFilter)

func WithPage(page, pageSize int) FilterOption {
	return func(f *BaseFilter) {
		if page > 0 {
			f.Page = page
		}
		if pageSize > 0 {
			f.PageSize = pageSize
		}
	}
}

func WithSort(sortBy, sortOrder string) FilterOption {
	return func(f *BaseFilter) {
		f.SortBy = sortBy
		f.SortOrder = sortOrder
	}
}

func NewBaseFilter(opts ...FilterOption) BaseFilter {
	f := BaseFilter{
		PageFilter: PageFilter{Page: 1, PageSize: 10},
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}
