package models

import "time"

// Inventory is the derived stock state for a product or one of its
// variants. Exactly one row exists per product (variant_id NULL) or per
// variant. It is the authoritative source; Product.StockQuantity and
// ProductVariant.StockQuantity are read-optimization mirrors rewritten in
// the same transaction as any stock change.
type Inventory struct {
	ID               string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	ProductID        string          `gorm:"size:36;not null;uniqueIndex:idx_inventory_key"`
	Product          *Product        `gorm:"foreignKey:ProductID"`
	VariantID        *string         `gorm:"size:36;uniqueIndex:idx_inventory_key"`
	Variant          *ProductVariant `gorm:"foreignKey:VariantID"`
	StockQuantity    int             `gorm:"not null;default:0"`
	ReservedQuantity int             `gorm:"not null;default:0"`
	Threshold        int             `gorm:"not null;default:0"`
	LastRestockedAt  *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// AvailableQuantity is stock not yet committed to unfulfilled orders.
// Never negative, even when reservations exceed stock.
func (i *Inventory) AvailableQuantity() int {
	available := i.StockQuantity - i.ReservedQuantity
	if available < 0 {
		return 0
	}
	return available
}

// IsLowStock is recomputed on every read, never stored.
func (i *Inventory) IsLowStock() bool {
	return i.StockQuantity <= i.Threshold
}
