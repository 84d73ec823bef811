package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductVariant struct {
	ID            string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID     string          `gorm:"size:36;not null;index"`
	Product       *Product        `gorm:"foreignKey:ProductID"`
	Name          string          `gorm:"size:255;not null"`
	Sku           string          `gorm:"size:100;uniqueIndex"`
	Price         decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	StockQuantity int             `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}
