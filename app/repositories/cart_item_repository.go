package repositories

import (
	"context"
	"errors"

	"github.com/tokosembilan/go-commerce/app/models"
	"gorm.io/gorm"
)

type CartItemRepositoryImpl interface {
	Add(ctx context.Context, item *models.CartItem) error
	Update(ctx context.Context, item *models.CartItem) error
	Delete(ctx context.Context, cartID, productID string, variantID *string) error
	GetByCartID(ctx context.Context, cartID string) ([]models.CartItem, error)
	GetByKey(ctx context.Context, cartID, productID string, variantID *string) (*models.CartItem, error)
	ClearCartItems(ctx context.Context, tx *gorm.DB, cartID string) error
}

type cartItemRepository struct {
	db *gorm.DB
}

func NewCartItemRepository(db *gorm.DB) CartItemRepositoryImpl {
	return &cartItemRepository{db}
}

func scopeCartItem(q *gorm.DB, cartID, productID string, variantID *string) *gorm.DB {
	q = q.Where("cart_id = ? AND product_id = ?", cartID, productID)
	if variantID != nil {
		return q.Where("variant_id = ?", *variantID)
	}
	return q.Where("variant_id IS NULL")
}

func (r *cartItemRepository) Add(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartItemRepository) Update(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *cartItemRepository) Delete(ctx context.Context, cartID, productID string, variantID *string) error {
	return scopeCartItem(r.db.WithContext(ctx), cartID, productID, variantID).
		Delete(&models.CartItem{}).Error
}

func (r *cartItemRepository) GetByCartID(ctx context.Context, cartID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.WithContext(ctx).Where("cart_id = ?", cartID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartItemRepository) GetByKey(ctx context.Context, cartID, productID string, variantID *string) (*models.CartItem, error) {
	var item models.CartItem
	err := scopeCartItem(r.db.WithContext(ctx), cartID, productID, variantID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *cartItemRepository) ClearCartItems(ctx context.Context, tx *gorm.DB, cartID string) error {
	return tx.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}
