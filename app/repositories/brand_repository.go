package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/tokosembilan/go-commerce/app/models"
	"gorm.io/gorm"
)

type BrandRepositoryImpl interface {
	Create(ctx context.Context, brand *models.Brand) error
	GetByID(ctx context.Context, id string) (*models.Brand, error)
	GetBySlug(ctx context.Context, slug string) (*models.Brand, error)
	GetAll(ctx context.Context) ([]models.Brand, error)
	FindSlugs(ctx context.Context, base string) ([]string, error)
	Update(ctx context.Context, brand *models.Brand) error
	Delete(ctx context.Context, id string) error
}

type brandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) BrandRepositoryImpl {
	return &brandRepository{db: db}
}

func (r *brandRepository) Create(ctx context.Context, brand *models.Brand) error {
	return r.db.WithContext(ctx).Create(brand).Error
}

func (r *brandRepository) GetByID(ctx context.Context, id string) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.WithContext(ctx).First(&brand, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) GetBySlug(ctx context.Context, slug string) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.WithContext(ctx).First(&brand, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) GetAll(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand
	err := r.db.WithContext(ctx).Find(&brands).Error
	return brands, err
}

func (r *brandRepository) FindSlugs(ctx context.Context, base string) ([]string, error) {
	var slugs []string
	err := r.db.WithContext(ctx).
		Model(&models.Brand{}).
		Where("slug = ? OR slug LIKE ?", base, base+"-%").
		Pluck("slug", &slugs).Error
	return slugs, err
}

func (r *brandRepository) Update(ctx context.Context, brand *models.Brand) error {
	brand.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(brand).Error
}

func (r *brandRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Brand{}, "id = ?", id).Error
}
