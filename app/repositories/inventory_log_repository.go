package repositories

import (
	"context"

	"github.com/tokosembilan/go-commerce/app/models"
	"gorm.io/gorm"
)

// InventoryLogRepositoryImpl exposes no update or delete: the ledger is
// append-only and corrections are compensating entries.
type InventoryLogRepositoryImpl interface {
	Create(ctx context.Context, tx *gorm.DB, entry *models.InventoryLog) error
	ListByProduct(ctx context.Context, productID string, variantID *string, limit, offset int) ([]models.InventoryLog, int64, error)
}

type inventoryLogRepository struct {
	db *gorm.DB
}

func NewInventoryLogRepository(db *gorm.DB) InventoryLogRepositoryImpl {
	return &inventoryLogRepository{db}
}

func (r *inventoryLogRepository) Create(ctx context.Context, tx *gorm.DB, entry *models.InventoryLog) error {
	return tx.WithContext(ctx).Create(entry).Error
}

func (r *inventoryLogRepository) ListByProduct(ctx context.Context, productID string, variantID *string, limit, offset int) ([]models.InventoryLog, int64, error) {
	var logs []models.InventoryLog
	var total int64

	q := r.db.WithContext(ctx).Model(&models.InventoryLog{}).Where("product_id = ?", productID)
	if variantID != nil {
		q = q.Where("variant_id = ?", *variantID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error

	return logs, total, err
}
