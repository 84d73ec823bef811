package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/tokosembilan/go-commerce/app/models"
	"gorm.io/gorm"
)

type VariantRepositoryImpl interface {
	Create(ctx context.Context, variant *models.ProductVariant) error
	GetByID(ctx context.Context, id string) (*models.ProductVariant, error)
	GetByProductID(ctx context.Context, productID string) ([]models.ProductVariant, error)
	UpdateStockMirror(ctx context.Context, tx *gorm.DB, id string, stock int) error
}

type variantRepository struct {
	db *gorm.DB
}

func NewVariantRepository(db *gorm.DB) VariantRepositoryImpl {
	return &variantRepository{db}
}

func (v *variantRepository) Create(ctx context.Context, variant *models.ProductVariant) error {
	return v.db.WithContext(ctx).Create(variant).Error
}

func (v *variantRepository) GetByID(ctx context.Context, id string) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	err := v.db.WithContext(ctx).First(&variant, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &variant, nil
}

func (v *variantRepository) GetByProductID(ctx context.Context, productID string) ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	err := v.db.WithContext(ctx).Where("product_id = ?", productID).Find(&variants).Error
	return variants, err
}

func (v *variantRepository) UpdateStockMirror(ctx context.Context, tx *gorm.DB, id string, stock int) error {
	return tx.WithContext(ctx).Model(&models.ProductVariant{}).Where("id = ?", id).Updates(map[string]interface{}{
		"stock_quantity": stock,
		"updated_at":     time.Now(),
	}).Error
}
