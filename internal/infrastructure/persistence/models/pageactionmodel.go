package models

import (
	"time"

	"gorm.io/gorm"

	"atrium/internal/shared/constants"
)

type PageActionModel struct {
	ID          uint   `gorm:"primaryKey"`
	PageID      uint   `gorm:"not null;uniqueIndex:idx_page_action"`
	ActionID    uint   `gorm:"not null;uniqueIndex:idx_page_action"`
	APIEndpoint string `gorm:"size:255"`
	HTTPMethod  string `gorm:"not null;size:10"`
	Label       string `gorm:"size:100"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
	DeletedBy   *uint

	// ActionCode is populated by joined reads only.
	ActionCode string `gorm:"->;-:migration"`
}

func (PageActionModel) TableName() string {
	return constants.TablePageActions
}
