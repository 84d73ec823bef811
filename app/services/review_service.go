package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tokosembilan/go-commerce/app/models"
	"github.com/tokosembilan/go-commerce/app/repositories"
)

type ReviewSummary struct {
	Reviews       []models.Review `json:"reviews"`
	Total         int64           `json:"total"`
	AverageRating float64         `json:"average_rating"`
}

type ReviewService struct {
	reviewRepo  repositories.ReviewRepositoryImpl
	productRepo repositories.ProductRepositoryImpl
}

func NewReviewService(reviewRepo repositories.ReviewRepositoryImpl, productRepo repositories.ProductRepositoryImpl) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, productRepo: productRepo}
}

func (s *ReviewService) Create(ctx context.Context, userID, productID string, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", productID, err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	existing, err := s.reviewRepo.GetByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing review: %w", err)
	}
	if existing != nil {
		return nil, ErrReviewAlreadyExists
	}

	review := &models.Review{
		ID:        uuid.New().String(),
		ProductID: productID,
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}

func (s *ReviewService) ListByProduct(ctx context.Context, productID string, page, perPage int) (*ReviewSummary, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", productID, err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	reviews, total, err := s.reviewRepo.GetByProductID(ctx, productID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	avg, err := s.reviewRepo.AverageRating(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute average rating: %w", err)
	}

	return &ReviewSummary{Reviews: reviews, Total: total, AverageRating: avg}, nil
}

func (s *ReviewService) Delete(ctx context.Context, userID, productID string) error {
	review, err := s.reviewRepo.GetByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return fmt.Errorf("failed to get review: %w", err)
	}
	if review == nil {
		return ErrReviewNotFound
	}
	return s.reviewRepo.Delete(ctx, review.ID)
}
