package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tokosembilan/go-commerce/app/models"
	"gorm.io/gorm"
)

type WishlistRepositoryImpl interface {
	GetOrCreateByUserID(ctx context.Context, userID string) (*models.Wishlist, error)
	GetWithItems(ctx context.Context, userID string) (*models.Wishlist, error)
	AddItem(ctx context.Context, item *models.WishlistItem) error
	RemoveItem(ctx context.Context, wishlistID, productID string) error
	HasItem(ctx context.Context, wishlistID, productID string) (bool, error)
}

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepositoryImpl {
	return &wishlistRepository{db}
}

func (r *wishlistRepository) GetOrCreateByUserID(ctx context.Context, userID string) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&wishlist).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		wishlist = models.Wishlist{
			ID:     uuid.New().String(),
			UserID: userID,
		}
		if err := r.db.WithContext(ctx).Create(&wishlist).Error; err != nil {
			return nil, err
		}
	}
	return &wishlist, nil
}

func (r *wishlistRepository) GetWithItems(ctx context.Context, userID string) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	err := r.db.WithContext(ctx).
		Preload("Items.Product").
		Preload("Items").
		Where("user_id = ?", userID).
		First(&wishlist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &wishlist, nil
}

func (r *wishlistRepository) AddItem(ctx context.Context, item *models.WishlistItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *wishlistRepository) RemoveItem(ctx context.Context, wishlistID, productID string) error {
	return r.db.WithContext(ctx).
		Where("wishlist_id = ? AND product_id = ?", wishlistID, productID).
		Delete(&models.WishlistItem{}).Error
}

func (r *wishlistRepository) HasItem(ctx context.Context, wishlistID, productID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.WishlistItem{}).
		Where("wishlist_id = ? AND product_id = ?", wishlistID, productID).
		Count(&count).Error
	return count > 0, err
}
