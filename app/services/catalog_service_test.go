package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/tokosembilan/go-commerce/app/models"
)

func newTestCatalogService(productRepo *fakeProductRepo, categoryRepo *fakeCategoryRepo, brandRepo *fakeBrandRepo) *CatalogService {
	if productRepo == nil {
		productRepo = newFakeProductRepo()
	}
	if categoryRepo == nil {
		categoryRepo = newFakeCategoryRepo()
	}
	if brandRepo == nil {
		brandRepo = newFakeBrandRepo()
	}
	return NewCatalogService(productRepo, newFakeVariantRepo(), categoryRepo, brandRepo)
}

func TestCreateProductAssignsUniqueSlug(t *testing.T) {
	ctx := context.Background()
	productRepo := newFakeProductRepo()
	svc := newTestCatalogService(productRepo, nil, nil)

	want := []string{"sepatu-lari", "sepatu-lari-2", "sepatu-lari-3"}
	for i, wantSlug := range want {
		product, err := svc.CreateProduct(ctx, CreateProductInput{
			Name:  "Sepatu Lari",
			Price: decimal.NewFromInt(250000),
		})
		if err != nil {
			t.Fatalf("CreateProduct %d returned error: %v", i, err)
		}
		if product.Slug != wantSlug {
			t.Fatalf("slug %d = %q, want %q", i, product.Slug, wantSlug)
		}
	}
}

func TestCreateProductResumesSlugCounterFromPersistedState(t *testing.T) {
	ctx := context.Background()
	productRepo := newFakeProductRepo(
		&models.Product{ID: "p1", Name: "Sepatu Lari", Slug: "sepatu-lari"},
		&models.Product{ID: "p2", Name: "Sepatu Lari", Slug: "sepatu-lari-2"},
	)
	svc := newTestCatalogService(productRepo, nil, nil)

	product, err := svc.CreateProduct(ctx, CreateProductInput{Name: "Sepatu Lari"})
	if err != nil {
		t.Fatalf("CreateProduct returned error: %v", err)
	}
	if product.Slug != "sepatu-lari-3" {
		t.Fatalf("slug = %q, want sepatu-lari-3", product.Slug)
	}
}

func TestCreateProductSlugSkipsSurvivingSuffix(t *testing.T) {
	ctx := context.Background()
	// The base-slug product was deleted; only the suffixed one remains.
	productRepo := newFakeProductRepo(
		&models.Product{ID: "p2", Name: "Sepatu Lari", Slug: "sepatu-lari-2"},
	)
	svc := newTestCatalogService(productRepo, nil, nil)

	product, err := svc.CreateProduct(ctx, CreateProductInput{Name: "Sepatu Lari"})
	if err != nil {
		t.Fatalf("CreateProduct returned error: %v", err)
	}
	if product.Slug != "sepatu-lari-3" {
		t.Fatalf("slug = %q, want sepatu-lari-3 past the surviving sepatu-lari-2", product.Slug)
	}
}

func TestCreateProductRejectsDuplicateSku(t *testing.T) {
	ctx := context.Background()
	productRepo := newFakeProductRepo(
		&models.Product{ID: "p1", Name: "Tas Ransel", Slug: "tas-ransel", Sku: "TAS-001"},
	)
	svc := newTestCatalogService(productRepo, nil, nil)

	_, err := svc.CreateProduct(ctx, CreateProductInput{Name: "Tas Selempang", Sku: "TAS-001"})
	if !errors.Is(err, ErrDuplicateSku) {
		t.Fatalf("CreateProduct error = %v, want ErrDuplicateSku", err)
	}
}

func TestCreateProductUnknownBrand(t *testing.T) {
	ctx := context.Background()
	svc := newTestCatalogService(nil, nil, nil)

	brandID := "missing"
	_, err := svc.CreateProduct(ctx, CreateProductInput{Name: "Jam Tangan", BrandID: &brandID})
	if !errors.Is(err, ErrBrandNotFound) {
		t.Fatalf("CreateProduct error = %v, want ErrBrandNotFound", err)
	}
}

func TestCreateProductUnknownCategory(t *testing.T) {
	ctx := context.Background()
	svc := newTestCatalogService(nil, nil, nil)

	_, err := svc.CreateProduct(ctx, CreateProductInput{
		Name:        "Jam Tangan",
		CategoryIDs: []string{"missing"},
	})
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("CreateProduct error = %v, want ErrCategoryNotFound", err)
	}
}

func TestCreateVariantUnknownProduct(t *testing.T) {
	ctx := context.Background()
	svc := newTestCatalogService(nil, nil, nil)

	_, err := svc.CreateVariant(ctx, "missing", CreateVariantInput{Name: "Merah / XL"})
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("CreateVariant error = %v, want ErrProductNotFound", err)
	}
}

func TestCreateCategoryUnknownParent(t *testing.T) {
	ctx := context.Background()
	svc := newTestCatalogService(nil, nil, nil)

	parentID := "missing"
	_, err := svc.CreateCategory(ctx, "Elektronik", &parentID)
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("CreateCategory error = %v, want ErrCategoryNotFound", err)
	}
}

func TestGetProductBySlugUnknown(t *testing.T) {
	ctx := context.Background()
	svc := newTestCatalogService(nil, nil, nil)

	_, err := svc.GetProductBySlug(ctx, "tidak-ada")
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("GetProductBySlug error = %v, want ErrProductNotFound", err)
	}
}
