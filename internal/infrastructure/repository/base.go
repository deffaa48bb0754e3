// Package repository contains the gorm-backed implementations of the domain
// repository interfaces. All repositories resolve the active transaction from
// the context so multi-step mutations share one transaction.
package repository

import (
	"gorm.io/gorm"

	"github.com/VELIFZ/mechanicshop-api/internal/shared/query"
)

// applyOrder applies the filter's sort against a per-repository column
// whitelist. Unknown columns fall back to creation order.
func applyOrder(q *gorm.DB, f query.SortFilter, allowed map[string]bool) *gorm.DB {
	if f.SortBy != "" && allowed[f.SortBy] {
		return q.Order(f.OrderClause())
	}
	return q.Order("id ASC")
}

// applyPage applies offset and limit from the filter.
func applyPage(q *gorm.DB, f query.PageFilter) *gorm.DB {
	return q.Offset(f.Offset()).Limit(f.Limit())
}
