package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartItem struct {
	ID         string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Cart       *Cart           `gorm:"foreignKey:CartID"`
	CartID     string          `gorm:"size:36;index"`
	Product    *Product        `gorm:"foreignKey:ProductID"`
	ProductID  string          `gorm:"size:36;index"`
	VariantID  *string         `gorm:"size:36;index"`
	Variant    *ProductVariant `gorm:"foreignKey:VariantID"`
	Qty        int
	BasePrice  decimal.Decimal `gorm:"type:decimal(16,2);"`
	BaseTotal  decimal.Decimal `gorm:"type:decimal(16,2);"`
	TaxPercent decimal.Decimal `gorm:"type:decimal(10,2);"`
	TaxAmount  decimal.Decimal `gorm:"type:decimal(16,2);"`
	SubTotal   decimal.Decimal `gorm:"type:decimal(16,2);"`
	GrandTotal decimal.Decimal `gorm:"type:decimal(16,2);"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) (err error) {
	if ci.ID == "" {
		ci.ID = uuid.New().String()
	}
	return
}
