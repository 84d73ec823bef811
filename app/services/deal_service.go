package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tokosembilan/go-commerce/app/models"
	"github.com/tokosembilan/go-commerce/app/repositories"
)

type CreateDealInput struct {
	Name      string
	DealType  string
	Discount  decimal.Decimal
	StartTime time.Time
	EndTime   time.Time
}

// DealView pairs a deal with its derived status; no activation job ever
// runs, the status is a pure function of the clock.
type DealView struct {
	models.Deal
	Status string `json:"status"`
}

type DealService struct {
	dealRepo    repositories.DealRepositoryImpl
	productRepo repositories.ProductRepositoryImpl
}

func NewDealService(dealRepo repositories.DealRepositoryImpl, productRepo repositories.ProductRepositoryImpl) *DealService {
	return &DealService{dealRepo: dealRepo, productRepo: productRepo}
}

func (s *DealService) Create(ctx context.Context, input CreateDealInput) (*models.Deal, error) {
	if !models.ValidDealType(input.DealType) {
		return nil, ErrInvalidDealType
	}
	if input.EndTime.Before(input.StartTime) {
		return nil, ErrInvalidDateRange
	}

	deal := &models.Deal{
		ID:        uuid.New().String(),
		Name:      input.Name,
		DealType:  input.DealType,
		Discount:  input.Discount,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
	}
	if err := s.dealRepo.Create(ctx, deal); err != nil {
		return nil, fmt.Errorf("failed to create deal: %w", err)
	}
	return deal, nil
}

func (s *DealService) GetByID(ctx context.Context, id string) (*DealView, error) {
	deal, err := s.dealRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get deal %s: %w", id, err)
	}
	if deal == nil {
		return nil, ErrDealNotFound
	}
	return &DealView{Deal: *deal, Status: deal.StatusAt(time.Now())}, nil
}

func (s *DealService) List(ctx context.Context) ([]DealView, error) {
	deals, err := s.dealRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list deals: %w", err)
	}
	now := time.Now()
	views := make([]DealView, 0, len(deals))
	for _, d := range deals {
		views = append(views, DealView{Deal: d, Status: d.StatusAt(now)})
	}
	return views, nil
}

func (s *DealService) ListActive(ctx context.Context) ([]DealView, error) {
	now := time.Now()
	deals, err := s.dealRepo.GetActive(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list active deals: %w", err)
	}
	views := make([]DealView, 0, len(deals))
	for _, d := range deals {
		views = append(views, DealView{Deal: d, Status: d.StatusAt(now)})
	}
	return views, nil
}

func (s *DealService) Update(ctx context.Context, id string, input CreateDealInput) (*models.Deal, error) {
	deal, err := s.dealRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get deal %s: %w", id, err)
	}
	if deal == nil {
		return nil, ErrDealNotFound
	}
	if !models.ValidDealType(input.DealType) {
		return nil, ErrInvalidDealType
	}
	if input.EndTime.Before(input.StartTime) {
		return nil, ErrInvalidDateRange
	}

	deal.Name = input.Name
	deal.DealType = input.DealType
	deal.Discount = input.Discount
	deal.StartTime = input.StartTime
	deal.EndTime = input.EndTime
	if err := s.dealRepo.Update(ctx, deal); err != nil {
		return nil, fmt.Errorf("failed to update deal %s: %w", id, err)
	}
	return deal, nil
}

func (s *DealService) Delete(ctx context.Context, id string) error {
	deal, err := s.dealRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get deal %s: %w", id, err)
	}
	if deal == nil {
		return ErrDealNotFound
	}
	return s.dealRepo.Delete(ctx, id)
}

func (s *DealService) AddProducts(ctx context.Context, dealID string, productIDs []string) (*models.Deal, error) {
	deal, err := s.dealRepo.GetByID(ctx, dealID)
	if err != nil {
		return nil, fmt.Errorf("failed to get deal %s: %w", dealID, err)
	}
	if deal == nil {
		return nil, ErrDealNotFound
	}

	products := make([]models.Product, 0, len(productIDs))
	for _, id := range productIDs {
		product, err := s.productRepo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get product %s: %w", id, err)
		}
		if product == nil {
			return nil, ErrProductNotFound
		}
		products = append(products, *product)
	}

	if err := s.dealRepo.AddProducts(ctx, deal, products); err != nil {
		return nil, fmt.Errorf("failed to associate products with deal %s: %w", dealID, err)
	}
	return s.dealRepo.GetByID(ctx, dealID)
}

func (s *DealService) RemoveProduct(ctx context.Context, dealID, productID string) error {
	deal, err := s.dealRepo.GetByID(ctx, dealID)
	if err != nil {
		return fmt.Errorf("failed to get deal %s: %w", dealID, err)
	}
	if deal == nil {
		return ErrDealNotFound
	}
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to get product %s: %w", productID, err)
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.dealRepo.RemoveProduct(ctx, deal, product)
}
