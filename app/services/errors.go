package services

import "errors"

// Not-found errors surface to the caller verbatim.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrVariantNotFound   = errors.New("product variant not found")
	ErrInventoryNotFound = errors.New("inventory record not found")
	ErrCouponNotFound    = errors.New("coupon not found")
	ErrDealNotFound      = errors.New("deal not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrBrandNotFound     = errors.New("brand not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrReviewNotFound    = errors.New("review not found")
)

// Validation errors (bad request).
var (
	ErrVariantMismatch   = errors.New("variant does not belong to the stated product")
	ErrInvalidChangeType = errors.New("invalid inventory change type")
	ErrInvalidCouponType = errors.New("invalid coupon type")
	ErrInvalidDealType   = errors.New("invalid deal type")
	ErrInvalidDateRange  = errors.New("end of validity window precedes its start")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrCartEmpty         = errors.New("cart is empty or not found")
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrInsufficientStock = errors.New("insufficient product stock")
)

// Conflict errors (duplicates).
var (
	ErrDuplicateSku        = errors.New("sku already in use")
	ErrCouponCodeExists    = errors.New("coupon code already exists")
	ErrReviewAlreadyExists = errors.New("product already reviewed by this user")
)

// Coupon rejection reasons.
var (
	ErrCouponDisabled            = errors.New("coupon is disabled")
	ErrCouponNotStarted          = errors.New("coupon is not yet active")
	ErrCouponExpired             = errors.New("coupon has expired")
	ErrCouponUsageLimitReached   = errors.New("coupon usage limit reached")
	ErrCouponPerUserLimitReached = errors.New("coupon per-user limit reached")
	ErrCouponMinimumPurchase     = errors.New("cart subtotal below the coupon minimum purchase")
)
