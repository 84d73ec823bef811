package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = 1
	OrderStatusProcessing = 2
	OrderStatusShipped    = 3
	OrderStatusCompleted  = 4
	OrderStatusCancelled  = 5
	OrderStatusRefunded   = 6
	OrderStatusFailed     = 7
)

type Order struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID    string    `gorm:"size:36;index"`
	User      User      `gorm:"foreignKey:UserID"`
	OrderCode string    `gorm:"size:50;unique;not null"`
	OrderDate time.Time `gorm:"not null"`

	OrderItems     []OrderItem
	BaseTotalPrice decimal.Decimal `gorm:"type:decimal(16,2);"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(16,2);"`
	TaxPercent     decimal.Decimal `gorm:"type:decimal(10,2);"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(16,2);"`
	CouponCode     string          `gorm:"size:50;index"`
	ShippingCost   decimal.Decimal `gorm:"type:decimal(16,2);"`
	GrandTotal     decimal.Decimal `gorm:"type:decimal(16,2);"`

	PaymentToken  string `gorm:"size:255;index"`
	PaymentURL    string `gorm:"type:text"`
	PaymentStatus string `gorm:"size:100"`

	Status int `gorm:"default:1"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}
