package migrations

import (
	"github.com/tokosembilan/go-commerce/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Brand{},
		&models.Category{},
		&models.Product{},
		&models.ProductVariant{},
		&models.Inventory{},
		&models.InventoryLog{},
		&models.Coupon{},
		&models.CouponUsage{},
		&models.Deal{},
		&models.Cart{},
		&models.CartItem{},
		&models.Wishlist{},
		&models.WishlistItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Review{},
		&models.Notification{},
	)
}
