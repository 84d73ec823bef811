package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/tokosembilan/go-commerce/app/models"
	"gorm.io/gorm"
)

type DealRepositoryImpl interface {
	Create(ctx context.Context, deal *models.Deal) error
	GetByID(ctx context.Context, id string) (*models.Deal, error)
	GetAll(ctx context.Context) ([]models.Deal, error)
	GetActive(ctx context.Context, now time.Time) ([]models.Deal, error)
	Update(ctx context.Context, deal *models.Deal) error
	Delete(ctx context.Context, id string) error
	AddProducts(ctx context.Context, deal *models.Deal, products []models.Product) error
	RemoveProduct(ctx context.Context, deal *models.Deal, product *models.Product) error
}

type dealRepository struct {
	db *gorm.DB
}

func NewDealRepository(db *gorm.DB) DealRepositoryImpl {
	return &dealRepository{db}
}

func (r *dealRepository) Create(ctx context.Context, deal *models.Deal) error {
	return r.db.WithContext(ctx).Create(deal).Error
}

func (r *dealRepository) GetByID(ctx context.Context, id string) (*models.Deal, error) {
	var deal models.Deal
	err := r.db.WithContext(ctx).Preload("Products").First(&deal, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &deal, nil
}

func (r *dealRepository) GetAll(ctx context.Context) ([]models.Deal, error) {
	var deals []models.Deal
	err := r.db.WithContext(ctx).Preload("Products").Order("start_time DESC").Find(&deals).Error
	return deals, err
}

// GetActive narrows by window at the query level; status itself is still
// computed from the timestamps, never stored.
func (r *dealRepository) GetActive(ctx context.Context, now time.Time) ([]models.Deal, error) {
	var deals []models.Deal
	err := r.db.WithContext(ctx).
		Preload("Products").
		Where("start_time <= ? AND end_time >= ?", now, now).
		Order("end_time ASC").
		Find(&deals).Error
	return deals, err
}

func (r *dealRepository) Update(ctx context.Context, deal *models.Deal) error {
	deal.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Save(deal).Error
}

func (r *dealRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Deal{}, "id = ?", id).Error
}

func (r *dealRepository) AddProducts(ctx context.Context, deal *models.Deal, products []models.Product) error {
	return r.db.WithContext(ctx).Model(deal).Association("Products").Append(products)
}

func (r *dealRepository) RemoveProduct(ctx context.Context, deal *models.Deal, product *models.Product) error {
	return r.db.WithContext(ctx).Model(deal).Association("Products").Delete(product)
}
