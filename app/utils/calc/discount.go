package calc

import (
	"github.com/shopspring/decimal"
	"github.com/tokosembilan/go-commerce/app/models"
)

func CalculateDiscount(baseTotal, discountPercent decimal.Decimal) decimal.Decimal {
	return baseTotal.Mul(discountPercent).Div(decimal.NewFromInt(100))
}

// CouponDiscount computes the product discount for a coupon against a
// cart subtotal. FREE_SHIPPING yields zero here; the shipping fee is
// waived by the order-total calculation instead.
func CouponDiscount(coupon *models.Coupon, subtotal decimal.Decimal) decimal.Decimal {
	switch coupon.Type {
	case models.CouponTypePercentage:
		discount := subtotal.Mul(coupon.Value).Div(decimal.NewFromInt(100))
		if coupon.MaxDiscount.IsPositive() && discount.GreaterThan(coupon.MaxDiscount) {
			discount = coupon.MaxDiscount
		}
		return discount
	case models.CouponTypeFixedAmount:
		// Never exceeds the cart total.
		if coupon.Value.GreaterThan(subtotal) {
			return subtotal
		}
		return coupon.Value
	default:
		return decimal.Zero
	}
}
