package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItem struct {
	ID             string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	OrderID        string          `gorm:"size:36;not null;index"`
	Order          Order           `gorm:"foreignKey:OrderID;references:ID"`
	ProductID      string          `gorm:"size:36;not null;index"`
	Product        Product         `gorm:"foreignKey:ProductID;references:ID"`
	VariantID      *string         `gorm:"size:36;index"`
	ProductName    string          `gorm:"size:255;not null"`
	ProductSku     string          `gorm:"size:100"`
	Qty            int             `gorm:"not null"`
	Price          decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	BaseTotal      decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	TaxPercent     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	GrandTotal     decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if oi.ID == "" {
		oi.ID = uuid.New().String()
	}
	return
}
