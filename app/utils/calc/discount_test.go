package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/tokosembilan/go-commerce/app/models"
)

func TestCouponDiscountPercentage(t *testing.T) {
	coupon := &models.Coupon{
		Type:  models.CouponTypePercentage,
		Value: decimal.NewFromInt(10),
	}

	got := CouponDiscount(coupon, decimal.NewFromInt(200))
	if !got.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("discount = %s, want 20", got)
	}
}

func TestCouponDiscountPercentageCapped(t *testing.T) {
	coupon := &models.Coupon{
		Type:        models.CouponTypePercentage,
		Value:       decimal.NewFromInt(10),
		MaxDiscount: decimal.NewFromInt(15),
	}

	got := CouponDiscount(coupon, decimal.NewFromInt(200))
	if !got.Equal(decimal.NewFromInt(15)) {
		t.Fatalf("capped discount = %s, want 15", got)
	}
}

func TestCouponDiscountFixedNeverExceedsSubtotal(t *testing.T) {
	coupon := &models.Coupon{
		Type:  models.CouponTypeFixedAmount,
		Value: decimal.NewFromInt(50),
	}

	got := CouponDiscount(coupon, decimal.NewFromInt(30))
	if !got.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("fixed discount = %s, want 30", got)
	}
}

func TestCouponDiscountFreeShippingIsZero(t *testing.T) {
	coupon := &models.Coupon{
		Type:  models.CouponTypeFreeShipping,
		Value: decimal.NewFromInt(50),
	}

	got := CouponDiscount(coupon, decimal.NewFromInt(100))
	if !got.IsZero() {
		t.Fatalf("free shipping discount = %s, want 0", got)
	}
}

func TestCalculateTax(t *testing.T) {
	got := CalculateTax(decimal.NewFromInt(100))
	if !got.Equal(decimal.NewFromInt(12)) {
		t.Fatalf("tax on 100 = %s, want 12", got)
	}
}

func TestCalculateGrandTotal(t *testing.T) {
	got := CalculateGrandTotal(decimal.NewFromInt(100), decimal.NewFromInt(12), decimal.NewFromInt(30))
	if !got.Equal(decimal.NewFromInt(82)) {
		t.Fatalf("grand total = %s, want 82", got)
	}
}
