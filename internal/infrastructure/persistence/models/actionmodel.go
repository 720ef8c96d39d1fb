package models

import (
	"time"

	"atrium/internal/shared/constants"
)

type ActionModel struct {
	ID        uint   `gorm:"primaryKey"`
	Code      string `gorm:"uniqueIndex;not null;size:50"`
	Name      string `gorm:"not null;size:100"`
	Type      string `gorm:"size:50"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ActionModel) TableName() string {
	return constants.TableActions
}
