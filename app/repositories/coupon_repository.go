package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/tokosembilan/go-commerce/app/models"
	"gorm.io/gorm"
)

type CouponRepositoryImpl interface {
	Create(ctx context.Context, coupon *models.Coupon) error
	GetByID(ctx context.Context, id string) (*models.Coupon, error)
	GetByCode(ctx context.Context, code string) (*models.Coupon, error)
	GetAll(ctx context.Context) ([]models.Coupon, error)
	Update(ctx context.Context, coupon *models.Coupon) error
	Delete(ctx context.Context, id string) error
	CountUsagesByUser(ctx context.Context, couponID, userID string) (int64, error)
	GetUsageByOrder(ctx context.Context, tx *gorm.DB, couponID, orderID string) (*models.CouponUsage, error)
	CreateUsage(ctx context.Context, tx *gorm.DB, usage *models.CouponUsage) error
	IncrementUsage(ctx context.Context, tx *gorm.DB, couponID string, usageLimit int) (bool, error)
}

type couponRepository struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) CouponRepositoryImpl {
	return &couponRepository{db}
}

func (r *couponRepository) Create(ctx context.Context, coupon *models.Coupon) error {
	return r.db.WithContext(ctx).Create(coupon).Error
}

func (r *couponRepository) GetByID(ctx context.Context, id string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Products").
		First(&coupon, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Products").
		First(&coupon, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) GetAll(ctx context.Context) ([]models.Coupon, error) {
	var coupons []models.Coupon
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&coupons).Error
	return coupons, err
}

func (r *couponRepository) Update(ctx context.Context, coupon *models.Coupon) error {
	coupon.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(coupon).Error
}

func (r *couponRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Coupon{}, "id = ?", id).Error
}

func (r *couponRepository) CountUsagesByUser(ctx context.Context, couponID, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.CouponUsage{}).
		Where("coupon_id = ? AND user_id = ?", couponID, userID).
		Count(&count).Error
	return count, err
}

func (r *couponRepository) GetUsageByOrder(ctx context.Context, tx *gorm.DB, couponID, orderID string) (*models.CouponUsage, error) {
	var usage models.CouponUsage
	err := tx.WithContext(ctx).
		First(&usage, "coupon_id = ? AND order_id = ?", couponID, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &usage, nil
}

func (r *couponRepository) CreateUsage(ctx context.Context, tx *gorm.DB, usage *models.CouponUsage) error {
	return tx.WithContext(ctx).Create(usage).Error
}

// IncrementUsage bumps usage_count as a guarded atomic increment; with a
// limit the WHERE clause refuses the bump once the limit is reached, so
// two concurrent redemptions cannot both pass the check.
func (r *couponRepository) IncrementUsage(ctx context.Context, tx *gorm.DB, couponID string, usageLimit int) (bool, error) {
	q := tx.WithContext(ctx).Model(&models.Coupon{}).Where("id = ?", couponID)
	if usageLimit > 0 {
		q = q.Where("usage_count < ?", usageLimit)
	}
	res := q.UpdateColumn("usage_count", gorm.Expr("usage_count + 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
