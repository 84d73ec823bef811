package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/tokosembilan/go-commerce/app/models"
)

type cartServiceFixture struct {
	svc        *CartService
	cartRepo   *fakeCartRepo
	itemRepo   *fakeCartItemRepo
	couponRepo *fakeCouponRepo
}

func newCartServiceFixture(products []*models.Product, variants []*models.ProductVariant, coupons ...*models.Coupon) *cartServiceFixture {
	itemRepo := newFakeCartItemRepo()
	cartRepo := newFakeCartRepo(itemRepo)
	couponRepo := newFakeCouponRepo(coupons...)
	couponSvc := NewCouponService(fakeTransactor{}, couponRepo)
	svc := NewCartService(cartRepo, itemRepo, newFakeProductRepo(products...), newFakeVariantRepo(variants...), couponSvc)
	return &cartServiceFixture{svc: svc, cartRepo: cartRepo, itemRepo: itemRepo, couponRepo: couponRepo}
}

func TestAddItemToCartComputesTotals(t *testing.T) {
	ctx := context.Background()
	product := &models.Product{ID: "p1", Name: "Kemeja Batik", Price: decimal.NewFromInt(100000), StockQuantity: 10}
	f := newCartServiceFixture([]*models.Product{product}, nil)

	cart, err := f.svc.AddItemToCart(ctx, "u1", "p1", nil, 2)
	if err != nil {
		t.Fatalf("AddItemToCart returned error: %v", err)
	}
	if len(cart.CartItems) != 1 {
		t.Fatalf("cart has %d items, want 1", len(cart.CartItems))
	}

	item := cart.CartItems[0]
	if !item.BaseTotal.Equal(decimal.NewFromInt(200000)) {
		t.Fatalf("base total = %s, want 200000", item.BaseTotal)
	}
	if !item.TaxAmount.Equal(decimal.NewFromInt(24000)) {
		t.Fatalf("tax amount = %s, want 24000 at 12%%", item.TaxAmount)
	}
	if !cart.GrandTotal.Equal(decimal.NewFromInt(224000)) {
		t.Fatalf("cart grand total = %s, want 224000", cart.GrandTotal)
	}
}

func TestAddItemToCartMergesExistingLine(t *testing.T) {
	ctx := context.Background()
	product := &models.Product{ID: "p1", Name: "Kemeja Batik", Price: decimal.NewFromInt(100000), StockQuantity: 10}
	f := newCartServiceFixture([]*models.Product{product}, nil)

	if _, err := f.svc.AddItemToCart(ctx, "u1", "p1", nil, 2); err != nil {
		t.Fatalf("first AddItemToCart returned error: %v", err)
	}
	cart, err := f.svc.AddItemToCart(ctx, "u1", "p1", nil, 3)
	if err != nil {
		t.Fatalf("second AddItemToCart returned error: %v", err)
	}

	if len(cart.CartItems) != 1 {
		t.Fatalf("cart has %d lines after merge, want 1", len(cart.CartItems))
	}
	if cart.CartItems[0].Qty != 5 {
		t.Fatalf("merged qty = %d, want 5", cart.CartItems[0].Qty)
	}
}

func TestAddItemToCartChecksCumulativeStock(t *testing.T) {
	ctx := context.Background()
	product := &models.Product{ID: "p1", Name: "Kemeja Batik", Price: decimal.NewFromInt(100000), StockQuantity: 5}
	f := newCartServiceFixture([]*models.Product{product}, nil)

	if _, err := f.svc.AddItemToCart(ctx, "u1", "p1", nil, 3); err != nil {
		t.Fatalf("AddItemToCart returned error: %v", err)
	}
	_, err := f.svc.AddItemToCart(ctx, "u1", "p1", nil, 3)
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("error = %v, want ErrInsufficientStock for cumulative qty 6 with stock 5", err)
	}
}

func TestAddItemToCartUsesVariantPriceAndStock(t *testing.T) {
	ctx := context.Background()
	product := &models.Product{ID: "p1", Name: "Kemeja Batik", Price: decimal.NewFromInt(100000), StockQuantity: 0}
	variant := &models.ProductVariant{ID: "v1", ProductID: "p1", Price: decimal.NewFromInt(120000), StockQuantity: 4}
	f := newCartServiceFixture([]*models.Product{product}, []*models.ProductVariant{variant})

	variantID := "v1"
	cart, err := f.svc.AddItemToCart(ctx, "u1", "p1", &variantID, 2)
	if err != nil {
		t.Fatalf("AddItemToCart returned error: %v", err)
	}
	if !cart.CartItems[0].BasePrice.Equal(decimal.NewFromInt(120000)) {
		t.Fatalf("base price = %s, want the variant price 120000", cart.CartItems[0].BasePrice)
	}
}

func TestUpdateCartItemQtyToZeroRemovesLine(t *testing.T) {
	ctx := context.Background()
	product := &models.Product{ID: "p1", Name: "Kemeja Batik", Price: decimal.NewFromInt(100000), StockQuantity: 10}
	f := newCartServiceFixture([]*models.Product{product}, nil)

	if _, err := f.svc.AddItemToCart(ctx, "u1", "p1", nil, 2); err != nil {
		t.Fatalf("AddItemToCart returned error: %v", err)
	}

	cart, err := f.svc.UpdateCartItemQty(ctx, "u1", "p1", nil, 0)
	if err != nil {
		t.Fatalf("UpdateCartItemQty returned error: %v", err)
	}
	// Removing the last line deletes the cart itself.
	if cart != nil {
		t.Fatalf("cart = %+v, want nil after the last line is removed", cart)
	}
	if len(f.cartRepo.carts) != 0 {
		t.Fatalf("empty cart not deleted")
	}
}

func TestUpdateCartItemQtyUnknownLine(t *testing.T) {
	ctx := context.Background()
	product := &models.Product{ID: "p1", Name: "Kemeja Batik", Price: decimal.NewFromInt(100000), StockQuantity: 10}
	f := newCartServiceFixture([]*models.Product{product}, nil)

	_, err := f.svc.UpdateCartItemQty(ctx, "u1", "p1", nil, 2)
	if !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("error = %v, want ErrCartItemNotFound", err)
	}
}

func TestApplyCouponOnEmptyCart(t *testing.T) {
	ctx := context.Background()
	f := newCartServiceFixture(nil, nil, testCoupon(nil))

	_, err := f.svc.ApplyCoupon(ctx, "u1", "HEMAT10")
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("error = %v, want ErrCartEmpty", err)
	}
}

func TestApplyCouponDiscountsGrandTotal(t *testing.T) {
	ctx := context.Background()
	product := &models.Product{ID: "p1", Name: "Kemeja Batik", Price: decimal.NewFromInt(100000), StockQuantity: 10}
	coupon := testCoupon(func(c *models.Coupon) {
		c.Type = models.CouponTypeFixedAmount
		c.Value = decimal.NewFromInt(50000)
	})
	f := newCartServiceFixture([]*models.Product{product}, nil, coupon)

	if _, err := f.svc.AddItemToCart(ctx, "u1", "p1", nil, 2); err != nil {
		t.Fatalf("AddItemToCart returned error: %v", err)
	}

	cart, err := f.svc.ApplyCoupon(ctx, "u1", "HEMAT10")
	if err != nil {
		t.Fatalf("ApplyCoupon returned error: %v", err)
	}
	if cart.CouponCode != "HEMAT10" {
		t.Fatalf("coupon code = %q, want HEMAT10", cart.CouponCode)
	}
	if !cart.DiscountAmount.Equal(decimal.NewFromInt(50000)) {
		t.Fatalf("discount = %s, want 50000", cart.DiscountAmount)
	}
	// 200000 base + 24000 tax - 50000 discount.
	if !cart.GrandTotal.Equal(decimal.NewFromInt(174000)) {
		t.Fatalf("grand total = %s, want 174000", cart.GrandTotal)
	}
}

func TestGetUserCartClearsStaleCoupon(t *testing.T) {
	ctx := context.Background()
	product := &models.Product{ID: "p1", Name: "Kemeja Batik", Price: decimal.NewFromInt(100000), StockQuantity: 10}
	coupon := testCoupon(func(c *models.Coupon) {
		c.Type = models.CouponTypeFixedAmount
		c.Value = decimal.NewFromInt(10000)
	})
	f := newCartServiceFixture([]*models.Product{product}, nil, coupon)

	if _, err := f.svc.AddItemToCart(ctx, "u1", "p1", nil, 1); err != nil {
		t.Fatalf("AddItemToCart returned error: %v", err)
	}
	if _, err := f.svc.ApplyCoupon(ctx, "u1", "HEMAT10"); err != nil {
		t.Fatalf("ApplyCoupon returned error: %v", err)
	}

	// The coupon gets disabled after it was stored on the cart.
	f.couponRepo.coupons["c1"].Status = models.CouponStatusDisabled

	cart, err := f.svc.GetUserCart(ctx, "u1")
	if err != nil {
		t.Fatalf("GetUserCart returned error: %v", err)
	}
	if cart.CouponCode != "" {
		t.Fatalf("stale coupon code still on cart: %q", cart.CouponCode)
	}
	if !cart.DiscountAmount.IsZero() {
		t.Fatalf("discount = %s after coupon disabled, want 0", cart.DiscountAmount)
	}
	if !cart.GrandTotal.Equal(decimal.NewFromInt(112000)) {
		t.Fatalf("grand total = %s, want undiscounted 112000", cart.GrandTotal)
	}
}

func TestRemoveCouponRestoresFullTotal(t *testing.T) {
	ctx := context.Background()
	product := &models.Product{ID: "p1", Name: "Kemeja Batik", Price: decimal.NewFromInt(100000), StockQuantity: 10}
	coupon := testCoupon(func(c *models.Coupon) {
		c.Type = models.CouponTypeFixedAmount
		c.Value = decimal.NewFromInt(10000)
	})
	f := newCartServiceFixture([]*models.Product{product}, nil, coupon)

	if _, err := f.svc.AddItemToCart(ctx, "u1", "p1", nil, 1); err != nil {
		t.Fatalf("AddItemToCart returned error: %v", err)
	}
	if _, err := f.svc.ApplyCoupon(ctx, "u1", "HEMAT10"); err != nil {
		t.Fatalf("ApplyCoupon returned error: %v", err)
	}

	cart, err := f.svc.RemoveCoupon(ctx, "u1")
	if err != nil {
		t.Fatalf("RemoveCoupon returned error: %v", err)
	}
	if cart.CouponCode != "" || !cart.DiscountAmount.IsZero() {
		t.Fatalf("coupon not cleared: code=%q discount=%s", cart.CouponCode, cart.DiscountAmount)
	}
	if !cart.GrandTotal.Equal(decimal.NewFromInt(112000)) {
		t.Fatalf("grand total = %s, want 112000", cart.GrandTotal)
	}
}
