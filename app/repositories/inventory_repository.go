package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tokosembilan/go-commerce/app/models"
	"gorm.io/gorm"
)

type InventoryRepositoryImpl interface {
	GetByKey(ctx context.Context, productID string, variantID *string) (*models.Inventory, error)
	ApplyDelta(ctx context.Context, tx *gorm.DB, productID string, variantID *string, delta int) (*models.Inventory, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, productID string, variantID *string, fields map[string]interface{}) error
	GetLowStock(ctx context.Context) ([]models.Inventory, error)
}

type inventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) InventoryRepositoryImpl {
	return &inventoryRepository{db}
}

func scopeKey(q *gorm.DB, productID string, variantID *string) *gorm.DB {
	q = q.Where("product_id = ?", productID)
	if variantID != nil {
		return q.Where("variant_id = ?", *variantID)
	}
	return q.Where("variant_id IS NULL")
}

func (r *inventoryRepository) GetByKey(ctx context.Context, productID string, variantID *string) (*models.Inventory, error) {
	return r.getByKey(ctx, r.db, productID, variantID)
}

func (r *inventoryRepository) getByKey(ctx context.Context, db *gorm.DB, productID string, variantID *string) (*models.Inventory, error) {
	var inv models.Inventory
	err := scopeKey(db.WithContext(ctx), productID, variantID).First(&inv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

// ApplyDelta moves the stock quantity by delta, clamped at zero, as a
// single conditional UPDATE at the database so concurrent writers never
// lose updates. A missing row is created with max(0, delta).
func (r *inventoryRepository) ApplyDelta(ctx context.Context, tx *gorm.DB, productID string, variantID *string, delta int) (*models.Inventory, error) {
	now := time.Now()

	existing, err := r.getByKey(ctx, tx, productID, variantID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		stock := delta
		if stock < 0 {
			stock = 0
		}
		inv := &models.Inventory{
			ID:            uuid.New().String(),
			ProductID:     productID,
			VariantID:     variantID,
			StockQuantity: stock,
		}
		if delta > 0 {
			inv.LastRestockedAt = &now
		}
		if err := tx.WithContext(ctx).Create(inv).Error; err != nil {
			return nil, err
		}
		return inv, nil
	}

	updates := map[string]interface{}{
		"stock_quantity": gorm.Expr("GREATEST(stock_quantity + ?, 0)", delta),
		"updated_at":     now,
	}
	if delta > 0 {
		updates["last_restocked_at"] = now
	}
	err = scopeKey(tx.WithContext(ctx).Model(&models.Inventory{}), productID, variantID).
		Updates(updates).Error
	if err != nil {
		return nil, err
	}

	return r.getByKey(ctx, tx, productID, variantID)
}

func (r *inventoryRepository) UpdateFields(ctx context.Context, tx *gorm.DB, productID string, variantID *string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	res := scopeKey(tx.WithContext(ctx).Model(&models.Inventory{}), productID, variantID).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetLowStock filters at the query level instead of scanning every row
// in the service.
func (r *inventoryRepository) GetLowStock(ctx context.Context) ([]models.Inventory, error) {
	var items []models.Inventory
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Variant").
		Where("stock_quantity <= threshold").
		Order("stock_quantity ASC").
		Find(&items).Error
	return items, err
}
