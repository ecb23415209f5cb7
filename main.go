package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"simple-ecommerce/config"
	_ "simple-ecommerce/docs"
	"simple-ecommerce/middleware"
	"simple-ecommerce/routes"
	"simple-ecommerce/services"
)

// @title Simple E-Commerce API
// @version 1.0
// @description User auth, product catalog, cart, checkout, and sales statistics.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database setup failed: %v", err)
	}
	defer db.Close()

	rdb := config.ConnectRedis(cfg)
	if rdb != nil {
		defer rdb.Close()
	}

	var mailer services.Mailer
	if mailService, err := services.NewMailService(cfg); err != nil {
		log.Println("Mailer disabled:", err)
	} else {
		mailer = mailService
	}

	if err := os.MkdirAll(cfg.UploadDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg))
	routes.SetupRoutes(router, cfg, db, rdb, mailer)

	port := ":" + cfg.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
