package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tokosembilan/go-commerce/app/models"
	"github.com/tokosembilan/go-commerce/app/repositories"
	"github.com/tokosembilan/go-commerce/app/utils/calc"
	"gorm.io/gorm"
)

type CreateCouponInput struct {
	Code            string
	Type            string
	Value           decimal.Decimal
	MinimumPurchase decimal.Decimal
	MaxDiscount     decimal.Decimal
	UsageLimit      int
	PerUserLimit    int
	StartDate       time.Time
	EndDate         time.Time
}

type CouponService struct {
	db         Transactor
	couponRepo repositories.CouponRepositoryImpl
}

func NewCouponService(db Transactor, couponRepo repositories.CouponRepositoryImpl) *CouponService {
	return &CouponService{db: db, couponRepo: couponRepo}
}

func (s *CouponService) Create(ctx context.Context, input CreateCouponInput) (*models.Coupon, error) {
	if !models.ValidCouponType(input.Type) {
		return nil, ErrInvalidCouponType
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, ErrInvalidDateRange
	}

	existing, err := s.couponRepo.GetByCode(ctx, input.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to check coupon code: %w", err)
	}
	if existing != nil {
		return nil, ErrCouponCodeExists
	}

	coupon := &models.Coupon{
		ID:              uuid.New().String(),
		Code:            input.Code,
		Type:            input.Type,
		Value:           input.Value,
		MinimumPurchase: input.MinimumPurchase,
		MaxDiscount:     input.MaxDiscount,
		UsageLimit:      input.UsageLimit,
		PerUserLimit:    input.PerUserLimit,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		Status:          models.CouponStatusActive,
	}
	if err := s.couponRepo.Create(ctx, coupon); err != nil {
		return nil, fmt.Errorf("failed to create coupon: %w", err)
	}
	return coupon, nil
}

func (s *CouponService) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	coupon, err := s.couponRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get coupon %s: %w", code, err)
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}
	return coupon, nil
}

func (s *CouponService) List(ctx context.Context) ([]models.Coupon, error) {
	return s.couponRepo.GetAll(ctx)
}

// Disable is the only persisted status transition; expiry is always
// derived from the end date.
func (s *CouponService) Disable(ctx context.Context, code string) (*models.Coupon, error) {
	coupon, err := s.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	coupon.Status = models.CouponStatusDisabled
	if err := s.couponRepo.Update(ctx, coupon); err != nil {
		return nil, fmt.Errorf("failed to disable coupon %s: %w", code, err)
	}
	return coupon, nil
}

func (s *CouponService) Delete(ctx context.Context, code string) error {
	coupon, err := s.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	return s.couponRepo.Delete(ctx, coupon.ID)
}

// Validate checks whether userID may redeem the coupon against the given
// cart subtotal right now. It never mutates usage counts.
func (s *CouponService) Validate(ctx context.Context, code, userID string, subtotal decimal.Decimal) (*models.Coupon, error) {
	coupon, err := s.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	switch coupon.EffectiveStatus(now) {
	case models.CouponStatusDisabled:
		return nil, ErrCouponDisabled
	case models.CouponStatusExpired:
		return nil, ErrCouponExpired
	}
	if now.Before(coupon.StartDate) {
		return nil, ErrCouponNotStarted
	}

	if coupon.UsageLimit > 0 && coupon.UsageCount >= coupon.UsageLimit {
		return nil, ErrCouponUsageLimitReached
	}

	if coupon.PerUserLimit > 0 {
		used, err := s.couponRepo.CountUsagesByUser(ctx, coupon.ID, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to count coupon usages: %w", err)
		}
		if used >= int64(coupon.PerUserLimit) {
			return nil, ErrCouponPerUserLimitReached
		}
	}

	if coupon.MinimumPurchase.IsPositive() && subtotal.LessThan(coupon.MinimumPurchase) {
		return nil, ErrCouponMinimumPurchase
	}

	return coupon, nil
}

// Apply validates and returns the discount amount for the subtotal.
// FREE_SHIPPING yields a zero product discount; the shipping fee waiver
// is the order-total calculation's concern.
func (s *CouponService) Apply(ctx context.Context, code, userID string, subtotal decimal.Decimal) (*models.Coupon, decimal.Decimal, error) {
	coupon, err := s.Validate(ctx, code, userID, subtotal)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return coupon, calc.CouponDiscount(coupon, subtotal), nil
}

// RecordUsage is the only writer of usageCount. It is idempotent per
// (orderID, coupon): replaying the same order increments the counter at
// most once. The increment is guarded by the usage limit inside the same
// transaction as the idempotency record.
func (s *CouponService) RecordUsage(ctx context.Context, code, orderID, userID string, amount decimal.Decimal) error {
	coupon, err := s.GetByCode(ctx, code)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		existing, err := s.couponRepo.GetUsageByOrder(ctx, tx, coupon.ID, orderID)
		if err != nil {
			return fmt.Errorf("failed to check existing usage: %w", err)
		}
		if existing != nil {
			return nil
		}

		usage := &models.CouponUsage{
			ID:       uuid.New().String(),
			CouponID: coupon.ID,
			OrderID:  orderID,
			UserID:   userID,
			Amount:   amount,
		}
		if err := s.couponRepo.CreateUsage(ctx, tx, usage); err != nil {
			// A concurrent retry may have slipped in between the check and
			// the insert; the unique (coupon_id, order_id) index backstops it.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil
			}
			return fmt.Errorf("failed to record coupon usage: %w", err)
		}

		bumped, err := s.couponRepo.IncrementUsage(ctx, tx, coupon.ID, coupon.UsageLimit)
		if err != nil {
			return fmt.Errorf("failed to increment usage count: %w", err)
		}
		if !bumped {
			return ErrCouponUsageLimitReached
		}
		return nil
	})
}
