package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotificationTypeLowStock = "LOW_STOCK"
	NotificationTypeOrder    = "ORDER"
)

type Notification struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Type      string `gorm:"size:30;not null;index"`
	Title     string `gorm:"size:255;not null"`
	Message   string `gorm:"type:text"`
	ReadAt    *time.Time
	CreatedAt time.Time
}

func (n *Notification) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return
}
