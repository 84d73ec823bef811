package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tokosembilan/go-commerce/app/models"
	"github.com/tokosembilan/go-commerce/app/repositories"
)

type WishlistService struct {
	wishlistRepo repositories.WishlistRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
}

func NewWishlistService(wishlistRepo repositories.WishlistRepositoryImpl, productRepo repositories.ProductRepositoryImpl) *WishlistService {
	return &WishlistService{wishlistRepo: wishlistRepo, productRepo: productRepo}
}

// AddProduct is idempotent. Adding a product already on the wishlist leaves
// it unchanged and returns the current wishlist.
func (s *WishlistService) AddProduct(ctx context.Context, userID, productID string) (*models.Wishlist, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", productID, err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	wishlist, err := s.wishlistRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create wishlist: %w", err)
	}

	exists, err := s.wishlistRepo.HasItem(ctx, wishlist.ID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to check wishlist item: %w", err)
	}
	if !exists {
		item := &models.WishlistItem{
			ID:         uuid.New().String(),
			WishlistID: wishlist.ID,
			ProductID:  productID,
			CreatedAt:  time.Now(),
		}
		if err := s.wishlistRepo.AddItem(ctx, item); err != nil {
			return nil, fmt.Errorf("failed to add wishlist item: %w", err)
		}
	}

	return s.wishlistRepo.GetWithItems(ctx, userID)
}

func (s *WishlistService) RemoveProduct(ctx context.Context, userID, productID string) (*models.Wishlist, error) {
	wishlist, err := s.wishlistRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get wishlist: %w", err)
	}

	if err := s.wishlistRepo.RemoveItem(ctx, wishlist.ID, productID); err != nil {
		return nil, fmt.Errorf("failed to remove wishlist item: %w", err)
	}

	return s.wishlistRepo.GetWithItems(ctx, userID)
}

func (s *WishlistService) GetUserWishlist(ctx context.Context, userID string) (*models.Wishlist, error) {
	wishlist, err := s.wishlistRepo.GetWithItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get wishlist: %w", err)
	}
	if wishlist == nil {
		return s.wishlistRepo.GetOrCreateByUserID(ctx, userID)
	}
	return wishlist, nil
}
