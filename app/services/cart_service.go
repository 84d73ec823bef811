package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tokosembilan/go-commerce/app/models"
	"github.com/tokosembilan/go-commerce/app/repositories"
	"github.com/tokosembilan/go-commerce/app/utils/calc"
)

type CartService struct {
	cartRepo     repositories.CartRepositoryImpl
	cartItemRepo repositories.CartItemRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
	variantRepo  repositories.VariantRepositoryImpl
	couponSvc    *CouponService
}

func NewCartService(
	cartRepo repositories.CartRepositoryImpl,
	cartItemRepo repositories.CartItemRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	variantRepo repositories.VariantRepositoryImpl,
	couponSvc *CouponService,
) *CartService {
	return &CartService{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
		variantRepo:  variantRepo,
		couponSvc:    couponSvc,
	}
}

// resolveLine looks up the product (and variant when given) for a cart line
// and returns the unit price and remaining stock for it.
func (s *CartService) resolveLine(ctx context.Context, productID string, variantID *string) (*models.Product, decimal.Decimal, int, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, decimal.Zero, 0, fmt.Errorf("failed to get product %s: %w", productID, err)
	}
	if product == nil {
		return nil, decimal.Zero, 0, ErrProductNotFound
	}

	if variantID == nil {
		return product, product.Price, product.StockQuantity, nil
	}

	variant, err := s.variantRepo.GetByID(ctx, *variantID)
	if err != nil {
		return nil, decimal.Zero, 0, fmt.Errorf("failed to get variant %s: %w", *variantID, err)
	}
	if variant == nil {
		return nil, decimal.Zero, 0, ErrVariantNotFound
	}
	if variant.ProductID != productID {
		return nil, decimal.Zero, 0, ErrVariantMismatch
	}
	return product, variant.Price, variant.StockQuantity, nil
}

func fillItemTotals(item *models.CartItem, unitPrice decimal.Decimal) {
	item.BasePrice = unitPrice
	item.BaseTotal = unitPrice.Mul(decimal.NewFromInt(int64(item.Qty)))
	item.TaxPercent = calc.GetTaxPercent()
	item.TaxAmount = calc.CalculateTax(item.BaseTotal)
	item.SubTotal = item.BaseTotal
	item.GrandTotal = item.SubTotal.Add(item.TaxAmount)
	item.UpdatedAt = time.Now()
}

func (s *CartService) AddItemToCart(ctx context.Context, userID, productID string, variantID *string, qty int) (*models.Cart, error) {
	cart, err := s.cartRepo.GetOrCreateCartByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create cart: %w", err)
	}

	_, unitPrice, stock, err := s.resolveLine(ctx, productID, variantID)
	if err != nil {
		return nil, err
	}

	existingItem, err := s.cartItemRepo.GetByKey(ctx, cart.ID, productID, variantID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing cart item: %w", err)
	}

	var cartItem *models.CartItem
	if existingItem != nil {
		cartItem = existingItem
		cartItem.Qty += qty
	} else {
		cartItem = &models.CartItem{
			ID:        uuid.New().String(),
			CartID:    cart.ID,
			ProductID: productID,
			VariantID: variantID,
			Qty:       qty,
			CreatedAt: time.Now(),
		}
	}

	if stock < cartItem.Qty {
		return nil, ErrInsufficientStock
	}

	fillItemTotals(cartItem, unitPrice)

	if existingItem != nil {
		if err := s.cartItemRepo.Update(ctx, cartItem); err != nil {
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}
	} else {
		if err := s.cartItemRepo.Add(ctx, cartItem); err != nil {
			return nil, fmt.Errorf("failed to add new cart item: %w", err)
		}
	}

	return s.refreshCart(ctx, cart.ID, userID)
}

func (s *CartService) UpdateCartItemQty(ctx context.Context, userID, productID string, variantID *string, newQty int) (*models.Cart, error) {
	cart, err := s.cartRepo.GetOrCreateCartByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	if newQty <= 0 {
		return s.RemoveItemFromCart(ctx, userID, productID, variantID)
	}

	item, err := s.cartItemRepo.GetByKey(ctx, cart.ID, productID, variantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}

	_, unitPrice, stock, err := s.resolveLine(ctx, productID, variantID)
	if err != nil {
		return nil, err
	}
	if stock < newQty {
		return nil, ErrInsufficientStock
	}

	item.Qty = newQty
	fillItemTotals(item, unitPrice)

	if err := s.cartItemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update cart item quantity: %w", err)
	}

	return s.refreshCart(ctx, cart.ID, userID)
}

func (s *CartService) RemoveItemFromCart(ctx context.Context, userID, productID string, variantID *string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetOrCreateCartByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	if err := s.cartItemRepo.Delete(ctx, cart.ID, productID, variantID); err != nil {
		return nil, fmt.Errorf("failed to remove item from cart: %w", err)
	}

	count, err := s.cartRepo.GetCartItemCount(ctx, cart.ID)
	if err != nil {
		log.Printf("RemoveItemFromCart: failed to count items in cart %s: %v", cart.ID, err)
	}
	if count == 0 {
		if err := s.cartRepo.DeleteCart(ctx, cart.ID); err != nil {
			return nil, fmt.Errorf("failed to delete empty cart: %w", err)
		}
		return nil, nil
	}

	return s.refreshCart(ctx, cart.ID, userID)
}

func (s *CartService) GetUserCart(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetOrCreateCartByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create user cart: %w", err)
	}
	return s.refreshCart(ctx, cart.ID, userID)
}

// ApplyCoupon validates the code against the current cart subtotal, stores it
// on the cart and recomputes the summary with the discount applied. Usage
// counters are only bumped at checkout.
func (s *CartService) ApplyCoupon(ctx context.Context, userID, code string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetOrCreateCartByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	detailed, err := s.cartRepo.GetCartWithItems(ctx, cart.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart items: %w", err)
	}
	if detailed == nil || len(detailed.CartItems) == 0 {
		return nil, ErrCartEmpty
	}

	subtotal := decimal.Zero
	for _, item := range detailed.CartItems {
		subtotal = subtotal.Add(item.SubTotal)
	}

	_, discount, err := s.couponSvc.Apply(ctx, code, userID, subtotal)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.UpdateCoupon(ctx, cart.ID, code, discount); err != nil {
		return nil, fmt.Errorf("failed to store coupon on cart: %w", err)
	}

	return s.refreshCart(ctx, cart.ID, userID)
}

func (s *CartService) RemoveCoupon(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetOrCreateCartByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	if err := s.cartRepo.UpdateCoupon(ctx, cart.ID, "", decimal.Zero); err != nil {
		return nil, fmt.Errorf("failed to clear coupon on cart: %w", err)
	}
	return s.refreshCart(ctx, cart.ID, userID)
}

// refreshCart reprices every line from the current catalog state, revalidates
// an applied coupon against the new subtotal and returns the cart with its
// summary rows up to date.
func (s *CartService) refreshCart(ctx context.Context, cartID, userID string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetCartWithItems(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to get detailed cart: %w", err)
	}
	if cart == nil {
		return nil, nil
	}

	subtotal := decimal.Zero
	for i := range cart.CartItems {
		item := &cart.CartItems[i]

		_, unitPrice, _, err := s.resolveLine(ctx, item.ProductID, item.VariantID)
		if err != nil {
			log.Printf("refreshCart: skipping cart item %s: %v", item.ID, err)
			continue
		}

		fillItemTotals(item, unitPrice)
		if err := s.cartItemRepo.Update(ctx, item); err != nil {
			log.Printf("refreshCart: failed to update cart item %s: %v", item.ID, err)
		}
		subtotal = subtotal.Add(item.SubTotal)
	}

	if cart.CouponCode != "" {
		_, discount, err := s.couponSvc.Apply(ctx, cart.CouponCode, userID, subtotal)
		if err != nil {
			log.Printf("refreshCart: coupon %s no longer valid for cart %s: %v", cart.CouponCode, cart.ID, err)
			discount = decimal.Zero
			if err := s.cartRepo.UpdateCoupon(ctx, cart.ID, "", decimal.Zero); err != nil {
				log.Printf("refreshCart: failed to clear stale coupon on cart %s: %v", cart.ID, err)
			}
		} else {
			if err := s.cartRepo.UpdateCoupon(ctx, cart.ID, cart.CouponCode, discount); err != nil {
				log.Printf("refreshCart: failed to refresh coupon discount on cart %s: %v", cart.ID, err)
			}
		}
		cart.DiscountAmount = discount
	}

	if err := s.cartRepo.UpdateCartSummary(ctx, cart.ID); err != nil {
		return nil, fmt.Errorf("failed to update cart summary: %w", err)
	}

	return s.cartRepo.GetCartWithItems(ctx, cart.ID)
}
