package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"waten-backend/internal/config"
	"waten-backend/internal/handlers"
	"waten-backend/internal/logger"
	"waten-backend/internal/middleware"
	"waten-backend/internal/storage"
	"waten-backend/internal/store"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLogger.Sync()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// One file-backed repository per JSON document.
	productStore := store.NewProductStore(store.NewFileBlob(cfg.ProductsPath()))
	orderBlob := store.NewFileBlob(cfg.OrdersPath())
	orderStore := store.NewOrderStore(orderBlob)
	siteStore := store.NewSiteStore(store.NewFileBlob(cfg.SitePath()))
	configStore := store.NewConfigStore(store.NewFileBlob(cfg.ConfigPath()))

	// Rewrite a legacy bare-array orders file into the canonical shape.
	// The read path tolerates both, so a failure here is not fatal.
	migrated, err := store.MigrateOrdersFile(orderBlob)
	if err != nil {
		appLogger.Warnw("orders file migration failed", "error", err)
	} else if migrated {
		appLogger.Infow("migrated legacy orders file", "path", cfg.OrdersPath())
	}

	if _, err := configStore.Load(); err != nil {
		appLogger.Warnw("config.json is not readable; admin routes will fail until it exists",
			"path", cfg.ConfigPath(), "error", err)
	}

	uploadClient := storage.NewClient(cfg.UploadDir, cfg.MaxUploadBytes)

	productsHandler := handlers.NewProductsHandler(productStore, appLogger)
	ordersHandler := handlers.NewOrdersHandler(orderStore, appLogger)
	siteHandler := handlers.NewSiteHandler(siteStore, appLogger)
	configHandler := handlers.NewConfigHandler(configStore, appLogger)
	authHandler := handlers.NewAuthHandler(configStore, cfg.SessionSecret, cfg.SessionTTL, appLogger)
	uploadHandler := handlers.NewUploadHandler(uploadClient, appLogger)

	router := gin.New()
	router.Use(middleware.RequestLogger(appLogger))
	router.Use(gin.Recovery())

	router.GET("/health", handlers.HealthHandler)
	router.Static("/uploads", cfg.UploadDir)

	api := router.Group("/api")

	// Public routes
	api.GET("/products", productsHandler.List)
	api.POST("/login", authHandler.Login)
	api.POST("/orders", ordersHandler.Create)
	api.GET("/site", siteHandler.Get)

	// Admin routes: shared-password gate, password from body, header or query
	admin := api.Group("")
	admin.Use(middleware.AdminRequired(configStore, cfg.SessionSecret))
	admin.POST("/products", productsHandler.Create)
	admin.PUT("/products/:id", productsHandler.Update)
	admin.DELETE("/products/:id", productsHandler.Delete)
	admin.GET("/orders", ordersHandler.List)
	admin.PUT("/orders/:order_id/status", ordersHandler.UpdateStatus)
	admin.PUT("/site", siteHandler.Update)
	admin.GET("/config", configHandler.Get)
	admin.PUT("/config", configHandler.Update)

	// Upload takes the password from the header only, checked before the
	// body is read.
	upload := api.Group("")
	upload.Use(middleware.AdminHeaderRequired(configStore))
	upload.POST("/upload", uploadHandler.Upload)

	appLogger.Infow("server starting", "port", cfg.Port, "data_dir", cfg.DataDir)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		appLogger.Fatalw("server failed", "error", err)
	}
}
