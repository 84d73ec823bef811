package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	CouponTypePercentage   = "PERCENTAGE"
	CouponTypeFixedAmount  = "FIXED_AMOUNT"
	CouponTypeFreeShipping = "FREE_SHIPPING"
)

// Persisted coupon statuses. EXPIRED is never stored; it is derived from
// EndDate so it cannot drift from the clock.
const (
	CouponStatusActive   = "ACTIVE"
	CouponStatusDisabled = "DISABLED"
	CouponStatusExpired  = "EXPIRED"
)

type Coupon struct {
	ID              string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Code            string          `gorm:"size:50;not null;uniqueIndex"`
	Type            string          `gorm:"size:20;not null"`
	Value           decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	MinimumPurchase decimal.Decimal `gorm:"type:decimal(16,2);default:0.00"`
	MaxDiscount     decimal.Decimal `gorm:"type:decimal(16,2);default:0.00"`
	UsageLimit      int             `gorm:"not null;default:0"`
	PerUserLimit    int             `gorm:"not null;default:0"`
	UsageCount      int             `gorm:"not null;default:0"`
	StartDate       time.Time       `gorm:"not null"`
	EndDate         time.Time       `gorm:"not null;index"`
	Status          string          `gorm:"size:20;not null;default:'ACTIVE'"`
	Categories      []Category      `gorm:"many2many:coupon_categories;"`
	Products        []Product       `gorm:"many2many:coupon_products;"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func ValidCouponType(t string) bool {
	switch t {
	case CouponTypePercentage, CouponTypeFixedAmount, CouponTypeFreeShipping:
		return true
	}
	return false
}

// EffectiveStatus derives the status for the given instant. Only ACTIVE
// and DISABLED are persisted.
func (c *Coupon) EffectiveStatus(now time.Time) string {
	if c.Status == CouponStatusDisabled {
		return CouponStatusDisabled
	}
	if now.After(c.EndDate) {
		return CouponStatusExpired
	}
	return CouponStatusActive
}
