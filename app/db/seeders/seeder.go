package seeders

import (
	"fmt"
	"log"
	"time"

	"github.com/tokosembilan/go-commerce/app/db/fakers"
	"github.com/tokosembilan/go-commerce/app/utils/slugify"
	"gorm.io/gorm"
)

const (
	seedCategories      = 5
	seedProductsPerCat  = 10
	seedUsers           = 10
	maxSeedRetries      = 3
	initialRetryBackoff = 500 * time.Millisecond
)

// withRetry retries transient seed failures with exponential backoff.
// Seeding is the only place we retry writes; runtime paths fail fast.
func withRetry(label string, fn func() error) error {
	backoff := initialRetryBackoff
	var err error
	for attempt := 1; attempt <= maxSeedRetries; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		log.Printf("seed %s attempt %d failed: %v", label, attempt, err)
		if attempt < maxSeedRetries {
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	return fmt.Errorf("seed %s failed after %d attempts: %w", label, maxSeedRetries, err)
}

func DBSeed(db *gorm.DB) error {
	if err := withRetry("users", func() error {
		for i := 0; i < seedUsers; i++ {
			user := fakers.UserFaker()
			if err := db.FirstOrCreate(user, "email = ?", user.Email).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	// one counter for the whole batch keeps the slugs unique without a
	// round trip per row
	categorySeen := slugify.Counter{}
	productSeen := slugify.Counter{}

	return withRetry("catalog", func() error {
		for i := 0; i < seedCategories; i++ {
			category := fakers.CategoryFaker(categorySeen)
			if err := db.Create(category).Error; err != nil {
				return err
			}
			for j := 0; j < seedProductsPerCat; j++ {
				product := fakers.ProductFaker(productSeen, category)
				if err := db.Create(product).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}
