package models

import "time"

const (
	ChangeTypeRestock = "RESTOCK"
	ChangeTypeSale    = "SALE"
	ChangeTypeReturn  = "RETURN"
	ChangeTypeManual  = "MANUAL"
)

// InventoryLog is an append-only ledger entry. Rows are immutable once
// created; corrections are new compensating entries, never updates.
type InventoryLog struct {
	ID              string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID       string          `gorm:"size:36;not null;index"`
	Product         *Product        `gorm:"foreignKey:ProductID"`
	VariantID       *string         `gorm:"size:36;index"`
	Variant         *ProductVariant `gorm:"foreignKey:VariantID"`
	ChangeType      string          `gorm:"size:20;not null"`
	QuantityChanged int             `gorm:"not null"`
	Note            string          `gorm:"size:255"`
	CreatedAt       time.Time
}

func ValidChangeType(t string) bool {
	switch t {
	case ChangeTypeRestock, ChangeTypeSale, ChangeTypeReturn, ChangeTypeManual:
		return true
	}
	return false
}
