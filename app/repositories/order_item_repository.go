package repositories

import (
	"context"

	"github.com/tokosembilan/go-commerce/app/models"
	"gorm.io/gorm"
)

type OrderItemRepositoryImpl interface {
	BulkCreate(ctx context.Context, tx *gorm.DB, items []models.OrderItem) error
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepositoryImpl {
	return &orderItemRepository{db}
}

func (r *orderItemRepository) BulkCreate(ctx context.Context, tx *gorm.DB, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Create(&items).Error
}
