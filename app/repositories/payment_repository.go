package repositories

import (
	"context"
	"errors"

	"github.com/tokosembilan/go-commerce/app/models"
	"gorm.io/gorm"
)

type PaymentRepositoryImpl interface {
	Create(ctx context.Context, tx *gorm.DB, payment *models.Payment) error
	FindByOrderID(ctx context.Context, orderID string) (*models.Payment, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, paymentID, status string) error
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepositoryImpl {
	return &paymentRepository{db}
}

func (r *paymentRepository) Create(ctx context.Context, tx *gorm.DB, payment *models.Payment) error {
	return tx.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) FindByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).First(&payment, "order_id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, paymentID, status string) error {
	return tx.WithContext(ctx).Model(&models.Payment{}).Where("id = ?", paymentID).Update("status", status).Error
}
