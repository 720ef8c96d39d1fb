package models

import (
	"time"

	"gorm.io/gorm"

	"atrium/internal/shared/constants"
)

type PermissionModel struct {
	ID           uint   `gorm:"primaryKey"`
	EntityType   string `gorm:"not null;size:10;uniqueIndex:idx_entity_page_action"`
	EntityID     uint   `gorm:"not null;uniqueIndex:idx_entity_page_action"`
	PageActionID uint   `gorm:"not null;uniqueIndex:idx_entity_page_action;index"`
	Granted      bool   `gorm:"not null;default:false"`
	ExpiresAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
	DeletedBy    *uint
}

func (PermissionModel) TableName() string {
	return constants.TablePermissions
}
