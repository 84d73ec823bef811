package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CouponUsage records one redemption. The unique (coupon_id, order_id)
// index makes RecordUsage idempotent under retry.
type CouponUsage struct {
	ID        string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	CouponID  string          `gorm:"size:36;not null;uniqueIndex:idx_coupon_usage_order"`
	Coupon    *Coupon         `gorm:"foreignKey:CouponID"`
	OrderID   string          `gorm:"size:36;not null;uniqueIndex:idx_coupon_usage_order"`
	UserID    string          `gorm:"size:36;not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	CreatedAt time.Time
}
