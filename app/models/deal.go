package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	DealTypeFlash     = "FLASH"
	DealTypeTrending  = "TRENDING"
	DealTypeDealOfDay = "DEAL_OF_DAY"
)

// Deal statuses are derived from the time window, never persisted.
const (
	DealStatusUpcoming = "UPCOMING"
	DealStatusActive   = "ACTIVE"
	DealStatusEnded    = "ENDED"
)

type Deal struct {
	ID        string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name      string          `gorm:"size:255;not null"`
	DealType  string          `gorm:"size:20;not null"`
	Discount  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	StartTime time.Time       `gorm:"not null"`
	EndTime   time.Time       `gorm:"not null;index"`
	Products  []Product       `gorm:"many2many:product_deals;"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type ProductDeal struct {
	ProductID string `gorm:"size:36;primaryKey"`
	DealID    string `gorm:"size:36;primaryKey"`
	CreatedAt time.Time
}

func ValidDealType(t string) bool {
	switch t {
	case DealTypeFlash, DealTypeTrending, DealTypeDealOfDay:
		return true
	}
	return false
}

// StatusAt computes the deal status for the given instant. The window is
// inclusive on both ends.
func (d *Deal) StatusAt(now time.Time) string {
	if now.Before(d.StartTime) {
		return DealStatusUpcoming
	}
	if now.After(d.EndTime) {
		return DealStatusEnded
	}
	return DealStatusActive
}

func (d *Deal) IsActiveAt(now time.Time) bool {
	return d.StatusAt(now) == DealStatusActive
}
