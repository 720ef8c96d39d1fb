package models

import (
	"time"

	"gorm.io/gorm"

	"atrium/internal/shared/constants"
)

type PageModel struct {
	ID           uint   `gorm:"primaryKey"`
	Code         string `gorm:"uniqueIndex;not null;size:50"`
	Name         string `gorm:"not null;size:100"`
	URL          string `gorm:"size:255"`
	Icon         string `gorm:"size:100"`
	DisplayOrder int    `gorm:"default:0"`
	ParentID     *uint  `gorm:"index"`
	Level        int    `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
	DeletedBy    *uint
}

func (PageModel) TableName() string {
	return constants.TablePages
}
