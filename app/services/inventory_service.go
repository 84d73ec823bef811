package services

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/tokosembilan/go-commerce/app/models"
	"github.com/tokosembilan/go-commerce/app/repositories"
	"gorm.io/gorm"
)

// Transactor is the slice of *gorm.DB the services need to run multi-step
// writes atomically. Tests substitute a fake that hands the callback a
// nil tx.
type Transactor interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

// LowStockNotifier is a fire-and-forget sink; the inventory flow never
// waits on it for correctness.
type LowStockNotifier interface {
	NotifyLowStock(ctx context.Context, inv *models.Inventory, productName string)
}

type RecordChangeInput struct {
	ProductID       string
	VariantID       *string
	ChangeType      string
	QuantityChanged int
	Note            string
}

type UpdateInventoryInput struct {
	StockQuantity    *int
	ReservedQuantity *int
	Threshold        *int
}

type InventoryService struct {
	db          Transactor
	productRepo repositories.ProductRepositoryImpl
	variantRepo repositories.VariantRepositoryImpl
	invRepo     repositories.InventoryRepositoryImpl
	logRepo     repositories.InventoryLogRepositoryImpl
	notifier    LowStockNotifier
}

func NewInventoryService(
	db Transactor,
	productRepo repositories.ProductRepositoryImpl,
	variantRepo repositories.VariantRepositoryImpl,
	invRepo repositories.InventoryRepositoryImpl,
	logRepo repositories.InventoryLogRepositoryImpl,
	notifier LowStockNotifier,
) *InventoryService {
	return &InventoryService{
		db:          db,
		productRepo: productRepo,
		variantRepo: variantRepo,
		invRepo:     invRepo,
		logRepo:     logRepo,
		notifier:    notifier,
	}
}

// RecordChange appends a ledger entry and applies its delta to the
// inventory record and the owning product/variant stock mirror, all in
// one transaction. There is no update or delete for ledger entries;
// corrections are new compensating entries.
func (s *InventoryService) RecordChange(ctx context.Context, input RecordChangeInput) (*models.Inventory, error) {
	if !models.ValidChangeType(input.ChangeType) {
		return nil, ErrInvalidChangeType
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", input.ProductID, err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if input.VariantID != nil {
		variant, err := s.variantRepo.GetByID(ctx, *input.VariantID)
		if err != nil {
			return nil, fmt.Errorf("failed to get variant %s: %w", *input.VariantID, err)
		}
		if variant == nil {
			return nil, ErrVariantNotFound
		}
		if variant.ProductID != input.ProductID {
			return nil, ErrVariantMismatch
		}
	}

	var inv *models.Inventory
	err = s.db.Transaction(func(tx *gorm.DB) error {
		inv, err = s.recordChangeTx(ctx, tx, input)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.alertIfLowStock(ctx, inv, product.Name)

	return inv, nil
}

// RecordChangeInTx is the transactional core of RecordChange, exposed so
// checkout can fold stock deductions into its own transaction. The
// caller is responsible for having validated product and variant.
func (s *InventoryService) RecordChangeInTx(ctx context.Context, tx *gorm.DB, input RecordChangeInput) (*models.Inventory, error) {
	return s.recordChangeTx(ctx, tx, input)
}

func (s *InventoryService) recordChangeTx(ctx context.Context, tx *gorm.DB, input RecordChangeInput) (*models.Inventory, error) {
	entry := &models.InventoryLog{
		ID:              uuid.New().String(),
		ProductID:       input.ProductID,
		VariantID:       input.VariantID,
		ChangeType:      input.ChangeType,
		QuantityChanged: input.QuantityChanged,
		Note:            input.Note,
	}
	if err := s.logRepo.Create(ctx, tx, entry); err != nil {
		return nil, fmt.Errorf("failed to append inventory log: %w", err)
	}

	inv, err := s.invRepo.ApplyDelta(ctx, tx, input.ProductID, input.VariantID, input.QuantityChanged)
	if err != nil {
		return nil, fmt.Errorf("failed to apply inventory delta: %w", err)
	}

	if err := s.updateMirror(ctx, tx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

// updateMirror rewrites the denormalized stock field on the owning
// product or variant. Inventory stays authoritative; the mirror is never
// written independently.
func (s *InventoryService) updateMirror(ctx context.Context, tx *gorm.DB, inv *models.Inventory) error {
	if inv.VariantID != nil {
		if err := s.variantRepo.UpdateStockMirror(ctx, tx, *inv.VariantID, inv.StockQuantity); err != nil {
			return fmt.Errorf("failed to update variant stock mirror: %w", err)
		}
		return nil
	}
	if err := s.productRepo.UpdateStockMirror(ctx, tx, inv.ProductID, inv.StockQuantity); err != nil {
		return fmt.Errorf("failed to update product stock mirror: %w", err)
	}
	return nil
}

func (s *InventoryService) alertIfLowStock(ctx context.Context, inv *models.Inventory, productName string) {
	if inv == nil || s.notifier == nil || !inv.IsLowStock() {
		return
	}
	s.notifier.NotifyLowStock(ctx, inv, productName)
}

// AlertLowStock is for callers that batch stock changes through
// RecordChangeInTx and need the alert path fired after their commit.
func (s *InventoryService) AlertLowStock(ctx context.Context, inv *models.Inventory, productName string) {
	s.alertIfLowStock(ctx, inv, productName)
}

// GetInventory returns the record for a product or variant key. A key
// with no row yet reads as zero stock rather than an error.
func (s *InventoryService) GetInventory(ctx context.Context, productID string, variantID *string) (*models.Inventory, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", productID, err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	inv, err := s.invRepo.GetByKey(ctx, productID, variantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	if inv == nil {
		return &models.Inventory{
			ProductID: productID,
			VariantID: variantID,
		}, nil
	}
	return inv, nil
}

// UpdateFields applies admin corrections to threshold, reserved
// quantity or the stock quantity itself. A direct stock correction also
// rewrites the mirror; emitting a compensating ledger entry stays the
// caller's responsibility.
func (s *InventoryService) UpdateFields(ctx context.Context, productID string, variantID *string, input UpdateInventoryInput) (*models.Inventory, error) {
	fields := map[string]interface{}{}
	if input.StockQuantity != nil {
		stock := *input.StockQuantity
		if stock < 0 {
			stock = 0
		}
		fields["stock_quantity"] = stock
	}
	if input.ReservedQuantity != nil {
		fields["reserved_quantity"] = *input.ReservedQuantity
	}
	if input.Threshold != nil {
		fields["threshold"] = *input.Threshold
	}
	if len(fields) == 0 {
		return s.GetInventory(ctx, productID, variantID)
	}

	var inv *models.Inventory
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.invRepo.UpdateFields(ctx, tx, productID, variantID, fields); err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrInventoryNotFound
			}
			return fmt.Errorf("failed to update inventory fields: %w", err)
		}
		var err error
		inv, err = s.invRepo.GetByKey(ctx, productID, variantID)
		if err != nil {
			return fmt.Errorf("failed to reload inventory: %w", err)
		}
		if input.StockQuantity != nil && inv != nil {
			return s.updateMirror(ctx, tx, inv)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if input.StockQuantity != nil {
		log.Printf("UpdateFields: direct stock correction on product %s; a compensating ledger entry should be recorded", productID)
	}

	return inv, nil
}

func (s *InventoryService) GetLowStockItems(ctx context.Context) ([]models.Inventory, error) {
	items, err := s.invRepo.GetLowStock(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock items: %w", err)
	}
	return items, nil
}

func (s *InventoryService) ListLogs(ctx context.Context, productID string, variantID *string, limit, offset int) ([]models.InventoryLog, int64, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get product %s: %w", productID, err)
	}
	if product == nil {
		return nil, 0, ErrProductNotFound
	}
	return s.logRepo.ListByProduct(ctx, productID, variantID, limit, offset)
}
