package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID        string   `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID string   `gorm:"size:36;not null;uniqueIndex:idx_review_user_product"`
	Product   *Product `gorm:"foreignKey:ProductID"`
	UserID    string   `gorm:"size:36;not null;uniqueIndex:idx_review_user_product"`
	User      User     `gorm:"foreignKey:UserID"`
	Rating    int      `gorm:"not null"`
	Comment   string   `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}
