package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tokosembilan/go-commerce/app/models"
	"gorm.io/gorm"
)

type CartRepositoryImpl interface {
	GetOrCreateCartByUserID(ctx context.Context, userID string) (*models.Cart, error)
	GetCartWithItems(ctx context.Context, cartID string) (*models.Cart, error)
	UpdateCartSummary(ctx context.Context, cartID string) error
	UpdateCoupon(ctx context.Context, cartID, code string, discount decimal.Decimal) error
	GetCartItemCount(ctx context.Context, cartID string) (int, error)
	DeleteCart(ctx context.Context, cartID string) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepositoryImpl {
	return &cartRepository{db}
}

func (r *cartRepository) GetOrCreateCartByUserID(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		cart = models.Cart{
			ID:     uuid.New().String(),
			UserID: userID,
		}
		if err := r.db.WithContext(ctx).Create(&cart).Error; err != nil {
			return nil, err
		}
	}
	return &cart, nil
}

func (r *cartRepository) GetCartWithItems(ctx context.Context, cartID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Preload("CartItems.Product").
		Preload("CartItems.Variant").
		Preload("CartItems").
		First(&cart, "id = ?", cartID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) UpdateCartSummary(ctx context.Context, cartID string) error {
	var cart models.Cart
	if err := r.db.WithContext(ctx).First(&cart, "id = ?", cartID).Error; err != nil {
		return err
	}

	var items []models.CartItem
	if err := r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Find(&items).Error; err != nil {
		return err
	}

	var baseTotal, taxTotal, grandTotal decimal.Decimal

	for _, item := range items {
		baseTotal = baseTotal.Add(item.BaseTotal)
		taxTotal = taxTotal.Add(item.TaxAmount)
		grandTotal = grandTotal.Add(item.GrandTotal)
	}

	var taxPercent decimal.Decimal
	if len(items) > 0 {
		taxPercent = items[0].TaxPercent
	}

	grandTotal = grandTotal.Sub(cart.DiscountAmount)
	if grandTotal.IsNegative() {
		grandTotal = decimal.Zero
	}

	return r.db.WithContext(ctx).
		Model(&models.Cart{}).
		Where("id = ?", cartID).
		Updates(map[string]interface{}{
			"base_total_price": baseTotal,
			"tax_amount":       taxTotal,
			"tax_percent":      taxPercent,
			"grand_total":      grandTotal,
		}).Error
}

func (r *cartRepository) UpdateCoupon(ctx context.Context, cartID, code string, discount decimal.Decimal) error {
	return r.db.WithContext(ctx).
		Model(&models.Cart{}).
		Where("id = ?", cartID).
		Updates(map[string]interface{}{
			"coupon_code":     code,
			"discount_amount": discount,
		}).Error
}

func (r *cartRepository) GetCartItemCount(ctx context.Context, cartID string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("cart_items").
		Where("cart_id = ?", cartID).
		Count(&count).Error

	return int(count), err
}

func (r *cartRepository) DeleteCart(ctx context.Context, cartID string) error {
	return r.db.WithContext(ctx).Delete(&models.Cart{}, "id = ?", cartID).Error
}
