package handlers_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"waten-backend/internal/handlers"
	"waten-backend/internal/middleware"
	"waten-backend/internal/storage"
	"waten-backend/internal/store"
)

const (
	adminPassword = "secret"
	sessionSecret = "handlers-test-session-secret"
)

type testServer struct {
	router    *gin.Engine
	dataDir   string
	uploadDir string
}

func (ts *testServer) productsFile(t *testing.T) string {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(ts.dataDir, "products.json"))
	require.NoError(t, err)
	return string(raw)
}

// newTestServer wires the full route table over a temp data directory,
// mirroring cmd/server.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dataDir := t.TempDir()
	uploadDir := filepath.Join(dataDir, "uploads")

	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "config.json"),
		[]byte(`{"adminPassword":"`+adminPassword+`","fallbackImage":"fallback.png"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "products.json"),
		[]byte(`{"products":[{"id":"123","name":"Mug","price":5,"image":""}]}`), 0o644))

	logger := zap.NewNop().Sugar()

	productStore := store.NewProductStore(store.NewFileBlob(filepath.Join(dataDir, "products.json")))
	orderStore := store.NewOrderStore(store.NewFileBlob(filepath.Join(dataDir, "orders.json")))
	siteStore := store.NewSiteStore(store.NewFileBlob(filepath.Join(dataDir, "site.json")))
	configStore := store.NewConfigStore(store.NewFileBlob(filepath.Join(dataDir, "config.json")))
	uploadClient := storage.NewClient(uploadDir, 0)

	productsHandler := handlers.NewProductsHandler(productStore, logger)
	ordersHandler := handlers.NewOrdersHandler(orderStore, logger)
	siteHandler := handlers.NewSiteHandler(siteStore, logger)
	configHandler := handlers.NewConfigHandler(configStore, logger)
	authHandler := handlers.NewAuthHandler(configStore, sessionSecret, time.Hour, logger)
	uploadHandler := handlers.NewUploadHandler(uploadClient, logger)

	router := gin.New()
	router.GET("/health", handlers.HealthHandler)

	api := router.Group("/api")
	api.GET("/products", productsHandler.List)
	api.POST("/login", authHandler.Login)
	api.POST("/orders", ordersHandler.Create)
	api.GET("/site", siteHandler.Get)

	admin := api.Group("")
	admin.Use(middleware.AdminRequired(configStore, sessionSecret))
	admin.POST("/products", productsHandler.Create)
	admin.PUT("/products/:id", productsHandler.Update)
	admin.DELETE("/products/:id", productsHandler.Delete)
	admin.GET("/orders", ordersHandler.List)
	admin.PUT("/orders/:order_id/status", ordersHandler.UpdateStatus)
	admin.PUT("/site", siteHandler.Update)
	admin.GET("/config", configHandler.Get)
	admin.PUT("/config", configHandler.Update)

	upload := api.Group("")
	upload.Use(middleware.AdminHeaderRequired(configStore))
	upload.POST("/upload", uploadHandler.Upload)

	return &testServer{router: router, dataDir: dataDir, uploadDir: uploadDir}
}
