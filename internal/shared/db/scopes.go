package db

import "gorm.io/gorm"

// NotDeleted filters out soft-deleted records. Tickets and inventory items
// carry an is_deleted flag instead of gorm's DeletedAt so audit reads can
// still load them explicitly.
func NotDeleted() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_deleted = ?", false)
	}
}

// NotDeletedWithAlias filters out soft-deleted records when the query joins
// tables and the flag needs qualifying.
func NotDeletedWithAlias(alias string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(alias+".is_deleted = ?", false)
	}
}
