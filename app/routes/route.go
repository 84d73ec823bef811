package routes

import (
	"github.com/gorilla/mux"
	"github.com/tokosembilan/go-commerce/app/configs"
	"github.com/tokosembilan/go-commerce/app/handlers"
	"github.com/tokosembilan/go-commerce/app/middlewares"
	"github.com/tokosembilan/go-commerce/app/repositories"
	"github.com/tokosembilan/go-commerce/app/services"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB) *mux.Router {
	rnd := handlers.NewRenderer()

	productRepo := repositories.NewProductRepository(db)
	variantRepo := repositories.NewVariantRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	brandRepo := repositories.NewBrandRepository(db)
	invRepo := repositories.NewInventoryRepository(db)
	invLogRepo := repositories.NewInventoryLogRepository(db)
	couponRepo := repositories.NewCouponRepository(db)
	dealRepo := repositories.NewDealRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	cartItemRepo := repositories.NewCartItemRepository(db)
	wishlistRepo := repositories.NewWishlistRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	orderItemRepo := repositories.NewOrderItemRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	userRepo := repositories.NewUserRepository(db)

	mailer := services.NewMailer(services.MailConfig{
		Host:     configs.LoadENV.EmailHost,
		Port:     configs.LoadENV.EmailPort,
		Username: configs.LoadENV.EmailUsername,
		Password: configs.LoadENV.EmailPassword,
		From:     configs.LoadENV.EmailFrom,
	})
	notifier := services.NewStockAlertNotifier(notificationRepo, mailer, configs.LoadENV.AdminEmail)

	invSvc := services.NewInventoryService(db, productRepo, variantRepo, invRepo, invLogRepo, notifier)
	couponSvc := services.NewCouponService(db, couponRepo)
	dealSvc := services.NewDealService(dealRepo, productRepo)
	catalogSvc := services.NewCatalogService(productRepo, variantRepo, categoryRepo, brandRepo)
	cartSvc := services.NewCartService(cartRepo, cartItemRepo, productRepo, variantRepo, couponSvc)
	wishlistSvc := services.NewWishlistService(wishlistRepo, productRepo)
	reviewSvc := services.NewReviewService(reviewRepo, productRepo)
	gateway := services.NewMidtransGateway(configs.MidtransClient, configs.LoadENV.APP_URL)
	checkoutSvc := services.NewCheckoutService(
		db, cartRepo, cartItemRepo, productRepo, variantRepo, userRepo,
		orderRepo, orderItemRepo, paymentRepo, invSvc, couponSvc, gateway, notifier,
	)

	productHandler := handlers.NewProductHandler(catalogSvc, reviewSvc, rnd)
	inventoryHandler := handlers.NewInventoryHandler(invSvc, rnd)
	couponHandler := handlers.NewCouponHandler(couponSvc, rnd)
	dealHandler := handlers.NewDealHandler(dealSvc, rnd)
	cartHandler := handlers.NewCartHandler(cartSvc, rnd)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutSvc, rnd)
	wishlistHandler := handlers.NewWishlistHandler(wishlistSvc, rnd)
	reviewHandler := handlers.NewReviewHandler(reviewSvc, rnd)
	notificationHandler := handlers.NewNotificationHandler(notificationRepo, rnd)

	router := mux.NewRouter()
	router.Use(middlewares.RecoverMiddleware)
	router.Use(middlewares.LoggingMiddleware)

	api := router.PathPrefix("/api/v1").Subrouter()

	// catalog
	api.HandleFunc("/products", productHandler.List).Methods("GET")
	api.HandleFunc("/products", productHandler.Create).Methods("POST")
	api.HandleFunc("/products/{slug}", productHandler.GetBySlug).Methods("GET")
	api.HandleFunc("/products/{id}", productHandler.Delete).Methods("DELETE")
	api.HandleFunc("/products/{id}/variants", productHandler.CreateVariant).Methods("POST")
	api.HandleFunc("/categories", productHandler.ListCategories).Methods("GET")
	api.HandleFunc("/categories", productHandler.CreateCategory).Methods("POST")
	api.HandleFunc("/categories/{slug}/products", productHandler.ListByCategory).Methods("GET")
	api.HandleFunc("/brands", productHandler.ListBrands).Methods("GET")
	api.HandleFunc("/brands", productHandler.CreateBrand).Methods("POST")

	// inventory
	api.HandleFunc("/products/{id}/inventory", inventoryHandler.Get).Methods("GET")
	api.HandleFunc("/products/{id}/inventory", inventoryHandler.Update).Methods("PATCH")
	api.HandleFunc("/products/{id}/inventory/changes", inventoryHandler.RecordChange).Methods("POST")
	api.HandleFunc("/products/{id}/inventory/logs", inventoryHandler.ListLogs).Methods("GET")
	api.HandleFunc("/inventory/low-stock", inventoryHandler.LowStock).Methods("GET")

	// coupons
	api.HandleFunc("/coupons", couponHandler.List).Methods("GET")
	api.HandleFunc("/coupons", couponHandler.Create).Methods("POST")
	api.HandleFunc("/coupons/{code}", couponHandler.Get).Methods("GET")
	api.HandleFunc("/coupons/{code}", couponHandler.Delete).Methods("DELETE")
	api.HandleFunc("/coupons/{code}/disable", couponHandler.Disable).Methods("POST")
	api.HandleFunc("/coupons/{code}/validate", couponHandler.Validate).Methods("POST")

	// deals
	api.HandleFunc("/deals", dealHandler.List).Methods("GET")
	api.HandleFunc("/deals", dealHandler.Create).Methods("POST")
	api.HandleFunc("/deals/{id}", dealHandler.Get).Methods("GET")
	api.HandleFunc("/deals/{id}", dealHandler.Update).Methods("PUT")
	api.HandleFunc("/deals/{id}", dealHandler.Delete).Methods("DELETE")
	api.HandleFunc("/deals/{id}/products", dealHandler.AddProducts).Methods("POST")
	api.HandleFunc("/deals/{id}/products/{productID}", dealHandler.RemoveProduct).Methods("DELETE")

	// cart
	api.HandleFunc("/cart", cartHandler.Get).Methods("GET")
	api.HandleFunc("/cart/items", cartHandler.AddItem).Methods("POST")
	api.HandleFunc("/cart/items", cartHandler.UpdateQty).Methods("PUT")
	api.HandleFunc("/cart/items", cartHandler.RemoveItem).Methods("DELETE")
	api.HandleFunc("/cart/coupon", cartHandler.ApplyCoupon).Methods("POST")
	api.HandleFunc("/cart/coupon", cartHandler.RemoveCoupon).Methods("DELETE")

	// wishlist
	api.HandleFunc("/wishlist", wishlistHandler.Get).Methods("GET")
	api.HandleFunc("/wishlist/items", wishlistHandler.Add).Methods("POST")
	api.HandleFunc("/wishlist/items/{productID}", wishlistHandler.Remove).Methods("DELETE")

	// orders and payment
	api.HandleFunc("/checkout", checkoutHandler.Checkout).Methods("POST")
	api.HandleFunc("/orders", checkoutHandler.ListOrders).Methods("GET")
	api.HandleFunc("/orders/{code}", checkoutHandler.GetOrder).Methods("GET")
	api.HandleFunc("/payments/notification", checkoutHandler.PaymentNotification).Methods("POST")

	// reviews
	api.HandleFunc("/products/{id}/reviews", reviewHandler.ListByProduct).Methods("GET")
	api.HandleFunc("/products/{id}/reviews", reviewHandler.Create).Methods("POST")
	api.HandleFunc("/products/{id}/reviews", reviewHandler.Delete).Methods("DELETE")

	// notifications
	api.HandleFunc("/notifications", notificationHandler.List).Methods("GET")
	api.HandleFunc("/notifications/{id}/read", notificationHandler.MarkRead).Methods("POST")

	return router
}
