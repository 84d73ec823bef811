package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tokosembilan/go-commerce/app/models"
	"github.com/tokosembilan/go-commerce/app/repositories"
	"github.com/tokosembilan/go-commerce/app/utils/slugify"
)

type CreateProductInput struct {
	Name        string
	Description string
	Sku         string
	Price       decimal.Decimal
	Weight      decimal.Decimal
	BrandID     *string
	CategoryIDs []string
}

type CreateVariantInput struct {
	Name  string
	Sku   string
	Price decimal.Decimal
}

type CatalogService struct {
	productRepo  repositories.ProductRepositoryImpl
	variantRepo  repositories.VariantRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	brandRepo    repositories.BrandRepositoryImpl
}

func NewCatalogService(
	productRepo repositories.ProductRepositoryImpl,
	variantRepo repositories.VariantRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	brandRepo repositories.BrandRepositoryImpl,
) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		variantRepo:  variantRepo,
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
	}
}

// assignSlug runs the batch slug algorithm against persisted state: the
// counter is seeded from existing slugs for the same base, so a single
// creation and a seeded batch produce identical assignments.
func assignSlug(ctx context.Context, name string, findSlugs func(context.Context, string) ([]string, error)) (string, error) {
	base := slugify.Make(name)
	existing, err := findSlugs(ctx, base)
	if err != nil {
		return "", fmt.Errorf("failed to query existing slugs for %q: %w", base, err)
	}
	seen := slugify.SeedCounter(base, existing)
	return slugify.AssignUnique(name, seen), nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	if input.Sku != "" {
		existing, err := s.productRepo.GetBySku(ctx, input.Sku)
		if err != nil {
			return nil, fmt.Errorf("failed to check sku %s: %w", input.Sku, err)
		}
		if existing != nil {
			return nil, ErrDuplicateSku
		}
	}

	if input.BrandID != nil {
		brand, err := s.brandRepo.GetByID(ctx, *input.BrandID)
		if err != nil {
			return nil, fmt.Errorf("failed to get brand %s: %w", *input.BrandID, err)
		}
		if brand == nil {
			return nil, ErrBrandNotFound
		}
	}

	categories := make([]models.Category, 0, len(input.CategoryIDs))
	for _, id := range input.CategoryIDs {
		category, err := s.categoryRepo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get category %s: %w", id, err)
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
		categories = append(categories, *category)
	}

	productSlug, err := assignSlug(ctx, input.Name, s.productRepo.FindSlugs)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		ID:          uuid.New().String(),
		BrandID:     input.BrandID,
		Name:        input.Name,
		Slug:        productSlug,
		Description: input.Description,
		Sku:         input.Sku,
		Price:       input.Price,
		Weight:      input.Weight,
		Categories:  categories,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

func (s *CatalogService) CreateVariant(ctx context.Context, productID string, input CreateVariantInput) (*models.ProductVariant, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", productID, err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	variant := &models.ProductVariant{
		ID:        uuid.New().String(),
		ProductID: productID,
		Name:      input.Name,
		Sku:       input.Sku,
		Price:     input.Price,
	}
	if err := s.variantRepo.Create(ctx, variant); err != nil {
		return nil, fmt.Errorf("failed to create variant: %w", err)
	}
	return variant, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, name string, parentID *string) (*models.Category, error) {
	if parentID != nil {
		parent, err := s.categoryRepo.GetByID(ctx, *parentID)
		if err != nil {
			return nil, fmt.Errorf("failed to get parent category %s: %w", *parentID, err)
		}
		if parent == nil {
			return nil, ErrCategoryNotFound
		}
	}

	categorySlug, err := assignSlug(ctx, name, s.categoryRepo.FindSlugs)
	if err != nil {
		return nil, err
	}

	category := &models.Category{
		ID:       uuid.New().String(),
		Name:     name,
		Slug:     categorySlug,
		ParentID: parentID,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (s *CatalogService) GetProductBySlug(ctx context.Context, productSlug string) (*models.Product, error) {
	product, err := s.productRepo.GetBySlug(ctx, productSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to get product by slug %s: %w", productSlug, err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, page, perPage int) ([]models.Product, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 12
	}
	return s.productRepo.GetPaginated(ctx, perPage, (page-1)*perPage)
}

func (s *CatalogService) ListProductsByCategory(ctx context.Context, categorySlug string) ([]models.Product, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, categorySlug)
	if err != nil {
		return nil, fmt.Errorf("failed to get category by slug %s: %w", categorySlug, err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return s.productRepo.GetByCategorySlug(ctx, categorySlug)
}

func (s *CatalogService) SearchProducts(ctx context.Context, keyword string, page, perPage int) ([]models.Product, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 12
	}
	return s.productRepo.SearchPaginated(ctx, keyword, perPage, (page-1)*perPage)
}

func (s *CatalogService) UpdateProduct(ctx context.Context, product *models.Product) error {
	return s.productRepo.Update(ctx, product)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get product %s: %w", id, err)
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.productRepo.Delete(ctx, id)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.GetAll(ctx)
}

func (s *CatalogService) ListBrands(ctx context.Context) ([]models.Brand, error) {
	return s.brandRepo.GetAll(ctx)
}

func (s *CatalogService) CreateBrand(ctx context.Context, name string) (*models.Brand, error) {
	brandSlug, err := assignSlug(ctx, name, s.brandRepo.FindSlugs)
	if err != nil {
		return nil, err
	}

	brand := &models.Brand{
		ID:   uuid.New().String(),
		Name: name,
		Slug: brandSlug,
	}
	if err := s.brandRepo.Create(ctx, brand); err != nil {
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}
	return brand, nil
}
