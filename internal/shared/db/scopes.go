// Package db provides shared database query scopes and transaction management.
package db

import (
	"gorm.io/gorm"
)

// NotDeletedWithAlias filters soft-deleted records of an aliased table in a
// join query, where GORM's model-based soft delete filtering does not apply:
//
//	db.Table("page_actions pa").Scopes(db.NotDeletedWithAlias("pa")).Find(&rows)
//
// Every read in the resolution path goes through this filter; soft-deleted
// catalog or grant rows must never influence an authorization decision.
func NotDeletedWithAlias(alias string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(alias + ".deleted_at IS NULL")
	}
}
