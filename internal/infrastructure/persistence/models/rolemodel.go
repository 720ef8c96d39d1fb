package models

import (
	"time"

	"atrium/internal/shared/constants"
)

type RoleModel struct {
	ID          uint   `gorm:"primaryKey"`
	Code        string `gorm:"uniqueIndex;not null;size:50"`
	Name        string `gorm:"not null;size:100"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (RoleModel) TableName() string {
	return constants.TableRoles
}
