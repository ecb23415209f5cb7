package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"simple-ecommerce/config"
	"simple-ecommerce/controllers"
	"simple-ecommerce/middleware"
	"simple-ecommerce/repositories"
	"simple-ecommerce/services"
)

// SetupRoutes wires repositories, services, and controllers onto the
// router. mailer may be nil when SMTP is not configured.
func SetupRoutes(router *gin.Engine, cfg *config.Config, db *pgxpool.Pool, rdb *redis.Client, mailer services.Mailer) {
	userRepo := repositories.NewUserRepository(db)
	inventoryRepo := repositories.NewInventoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	invoiceRepo := repositories.NewInvoiceRepository(db)
	otpRepo := repositories.NewOTPRepository(rdb)

	authCtrl := controllers.NewAuthController(
		services.NewAuthService(userRepo, otpRepo, mailer, cfg.JWTSecret, cfg.JWTExpiry), cfg)
	inventoryCtrl := controllers.NewInventoryController(
		services.NewInventoryService(inventoryRepo))
	productCtrl := controllers.NewProductController(
		services.NewProductService(productRepo, inventoryRepo), cfg)
	cartCtrl := controllers.NewCartController(
		services.NewCartService(cartRepo, productRepo))
	invoiceCtrl := controllers.NewInvoiceController(
		services.NewInvoiceService(invoiceRepo, cartRepo, mailer))
	statisticCtrl := controllers.NewStatisticController(
		services.NewStatisticService(invoiceRepo))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.Static("/uploads", cfg.UploadDir)

	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api.POST("/auth/register", authCtrl.Register)
	api.POST("/auth/login", authCtrl.Login)
	api.POST("/auth/logout", authCtrl.Logout)
	api.POST("/auth/forgot-password", authCtrl.ForgotPassword)
	api.POST("/auth/reset-password", authCtrl.ResetPassword)

	auth := api.Group("/")
	auth.Use(middleware.AuthMiddleware(cfg))
	{
		auth.GET("/inventories", inventoryCtrl.GetAll)
		auth.GET("/inventories/:id", inventoryCtrl.GetByID)
		auth.POST("/inventories", inventoryCtrl.Create)
		auth.PUT("/inventories/:id", inventoryCtrl.Update)
		auth.DELETE("/inventories/:id", inventoryCtrl.Delete)

		auth.GET("/products", productCtrl.GetAll)
		auth.GET("/products/:id", productCtrl.GetByID)
		auth.GET("/products/inventory/:inventoryId", productCtrl.GetByInventory)
		auth.POST("/products", productCtrl.Create)
		auth.PUT("/products/:id", productCtrl.Update)
		auth.DELETE("/products/:id", productCtrl.Delete)

		auth.GET("/carts", cartCtrl.GetAll)
		auth.POST("/carts", cartCtrl.Add)
		auth.PUT("/carts/:id", cartCtrl.Update)
		auth.DELETE("/carts/:id", cartCtrl.Remove)
		auth.DELETE("/carts", cartCtrl.Clear)

		auth.GET("/invoices", invoiceCtrl.GetAll)
		auth.GET("/invoices/:id", invoiceCtrl.GetByID)
		auth.GET("/invoices/email/:email", invoiceCtrl.GetByEmail)
		auth.POST("/invoices/checkout", invoiceCtrl.Checkout)

		auth.GET("/statistics/range", statisticCtrl.GetRange)
		auth.GET("/statistics/single", statisticCtrl.GetSingle)
	}
}
