package repositories

import (
	"context"
	"errors"

	"github.com/tokosembilan/go-commerce/app/models"
	"gorm.io/gorm"
)

type ReviewRepositoryImpl interface {
	Create(ctx context.Context, review *models.Review) error
	GetByUserAndProduct(ctx context.Context, userID, productID string) (*models.Review, error)
	GetByProductID(ctx context.Context, productID string, limit, offset int) ([]models.Review, int64, error)
	AverageRating(ctx context.Context, productID string) (float64, error)
	Delete(ctx context.Context, id string) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepositoryImpl {
	return &reviewRepository{db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) GetByUserAndProduct(ctx context.Context, userID, productID string) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).
		First(&review, "user_id = ? AND product_id = ?", userID, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) GetByProductID(ctx context.Context, productID string, limit, offset int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	q := r.db.WithContext(ctx).Model(&models.Review{}).Where("product_id = ?", productID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error

	return reviews, total, err
}

func (r *reviewRepository) AverageRating(ctx context.Context, productID string) (float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("AVG(rating)").
		Where("product_id = ?", productID).
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Review{}, "id = ?", id).Error
}
