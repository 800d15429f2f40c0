// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/schema"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// SetupRoutes wires every API route group onto the given router group
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, info schema.Info) {
	SetupProductRoutes(rg, db, cfg)
	SetupAddressRoutes(rg, db, cfg)
	SetupCartRoutes(rg, db, cfg, info)
	SetupWishlistRoutes(rg, db, cfg)
	SetupOrderRoutes(rg, db, cfg, info)
	SetupAdminRoutes(rg, db, cfg, info)
}

// SetupProductRoutes sets up public catalog routes
func SetupProductRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	productHandler := handlers.NewProductHandler(db, cfg)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)
	}
}

// SetupAddressRoutes sets up address book routes
func SetupAddressRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	addressHandler := handlers.NewAddressHandler(db)

	addresses := rg.Group("/addresses")
	addresses.Use(middleware.AuthMiddleware(cfg))
	{
		addresses.GET("", addressHandler.ListAddresses)
		addresses.POST("", addressHandler.CreateAddress)
		addresses.PUT("/:id", addressHandler.UpdateAddress)
		addresses.PATCH("/:id/default", addressHandler.SetDefaultAddress)
		addresses.DELETE("/:id", addressHandler.DeleteAddress)
	}
}

// SetupCartRoutes sets up shopping cart routes
func SetupCartRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config, info schema.Info) {
	cartHandler := handlers.NewCartHandler(db, info)

	cart := rg.Group("/cart")
	cart.Use(middleware.AuthMiddleware(cfg))
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PUT("/items/:id", cartHandler.UpdateCartItem)
		cart.DELETE("/items/:id", cartHandler.RemoveCartItem)
	}
}

// SetupWishlistRoutes sets up wishlist routes
func SetupWishlistRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	wishlistHandler := handlers.NewWishlistHandler(db)

	wishlist := rg.Group("/wishlist")
	wishlist.Use(middleware.AuthMiddleware(cfg))
	{
		wishlist.GET("", wishlistHandler.GetWishlist)
		wishlist.POST("/:productId", wishlistHandler.AddToWishlist)
		wishlist.DELETE("/:productId", wishlistHandler.RemoveFromWishlist)
	}
}

// SetupOrderRoutes sets up customer order and payment routes
func SetupOrderRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config, info schema.Info) {
	orderHandler := handlers.NewOrderHandler(db, cfg, info)

	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware(cfg))
	{
		orders.GET("", orderHandler.ListMyOrders)
		orders.GET("/:id", orderHandler.GetMyOrder)
		orders.POST("", orderHandler.CreateOrder)
	}

	payments := rg.Group("/payments")
	payments.Use(middleware.AuthMiddleware(cfg))
	{
		payments.POST("", orderHandler.CreatePayment)
	}
}

// SetupAdminRoutes sets up back-office routes. Every admin route requires
// an authenticated token with the admin flag set.
func SetupAdminRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config, info schema.Info) {
	productHandler := handlers.NewProductHandler(db, cfg)
	adminOrderHandler := handlers.NewAdminOrderHandler(db, cfg, info)
	dashboardHandler := handlers.NewDashboardHandler(db, info)

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/dashboard", dashboardHandler.GetStats)

		products := admin.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.POST("", productHandler.CreateProduct)
			products.PUT("/:id", productHandler.ReplaceProduct)
			products.PATCH("/:id/live", productHandler.SetProductLive)
			products.DELETE("/:id", productHandler.DeleteProduct)
		}

		orders := admin.Group("/orders")
		{
			orders.GET("", adminOrderHandler.ListOrders)
			orders.GET("/:id", adminOrderHandler.GetOrder)
			orders.PATCH("/:id/status", adminOrderHandler.UpdateOrderStatus)
			orders.PATCH("/:id/payment/complete", adminOrderHandler.CompleteOrderPayment)
		}

		payments := admin.Group("/payments")
		{
			payments.PATCH("/:id/complete", adminOrderHandler.CompletePayment)
			payments.PATCH("/:id/refund", adminOrderHandler.RefundPayment)
		}
	}
}
