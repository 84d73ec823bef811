package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Wishlist struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID    string `gorm:"size:36;not null;uniqueIndex"`
	User      User   `gorm:"foreignKey:UserID"`
	Items     []WishlistItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

type WishlistItem struct {
	ID         string   `gorm:"size:36;not null;uniqueIndex;primary_key"`
	WishlistID string   `gorm:"size:36;not null;uniqueIndex:idx_wishlist_product"`
	ProductID  string   `gorm:"size:36;not null;uniqueIndex:idx_wishlist_product"`
	Product    *Product `gorm:"foreignKey:ProductID"`
	CreatedAt  time.Time
}

func (wi *WishlistItem) BeforeCreate(tx *gorm.DB) (err error) {
	if wi.ID == "" {
		wi.ID = uuid.New().String()
	}
	return
}
