package fakers

import (
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tokosembilan/go-commerce/app/models"
	"github.com/tokosembilan/go-commerce/app/utils/slugify"
)

func fakePrice() float64 {
	return float64(rand.Intn(990)+10) * 1000
}

// ProductFaker builds an unsaved product. Slugs are assigned through the
// shared counter so a whole batch stays collision free.
func ProductFaker(seen slugify.Counter, category *models.Category) *models.Product {
	name := faker.Word() + " " + faker.Word()

	product := &models.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Slug:        slugify.AssignUnique(name, seen),
		Sku:         uuid.NewString()[:8],
		Description: faker.Sentence(),
		Price:       decimal.NewFromFloat(fakePrice()),
		Weight:      decimal.NewFromFloat(rand.Float64() * 5),
	}
	if category != nil {
		product.Categories = []models.Category{*category}
	}
	return product
}

func CategoryFaker(seen slugify.Counter) *models.Category {
	name := faker.Word()
	return &models.Category{
		ID:   uuid.New().String(),
		Name: name,
		Slug: slugify.AssignUnique(name, seen),
	}
}
