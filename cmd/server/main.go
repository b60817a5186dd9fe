// @title           Nut Orders Backend API
// @version         1.0.0
// @description     Backend API for agricultural purchase orders: order browsing with search and sort, status updates, daily loading records and photo/video attachments stored in Supabase Storage.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"nut-orders-backend/docs"
	"nut-orders-backend/internal/config"
	"nut-orders-backend/internal/database"
	"nut-orders-backend/internal/handlers"
	"nut-orders-backend/internal/logger"
	"nut-orders-backend/internal/middleware"
	"nut-orders-backend/internal/services"
	"nut-orders-backend/internal/supabase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("failed to load configuration", zap.Error(err))
	}

	log := logger.New(logger.Options{
		Level:       cfg.LogLevel,
		Dir:         cfg.LogDir,
		Development: cfg.Environment != "production",
	})
	defer log.Sync()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		} else {
			log.Warn("ignoring invalid BASE_URL", zap.String("base_url", cfg.BaseURL), zap.Error(err))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbClient, err := supabase.NewDatabaseClient(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to initialize database client", zap.Error(err))
	}
	defer dbClient.Close()

	if err := database.NewMigrator(dbClient.DB(), log).Run(ctx); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
	log.Info("migrations completed")

	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		log.Fatal("failed to initialize supabase client", zap.Error(err))
	}

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, cfg.SupabaseStorageBucket)
	if err != nil {
		log.Fatal("failed to initialize storage client", zap.Error(err))
	}

	var systemIdentity uuid.UUID
	if cfg.SystemUploaderID != "" {
		systemIdentity = uuid.MustParse(cfg.SystemUploaderID)
	}

	orderService := services.NewOrderService(dbClient, log)
	mediaService := services.NewMediaService(storageClient, dbClient, log, systemIdentity)

	ordersHandler := handlers.NewOrdersHandler(orderService)
	statusHandler := handlers.NewStatusHandler(orderService)
	uploadHandler := handlers.NewUploadHandler(orderService, mediaService, cfg.MaxUploadBytes())
	filesHandler := handlers.NewFilesHandler(orderService, mediaService)
	profilesHandler := handlers.NewProfilesHandler(supabaseClient)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler(dbClient.DB()))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	if cfg.AuthEnabled() {
		api.Use(middleware.AuthMiddleware(cfg))
	} else {
		log.Warn("SUPABASE_JWT_SECRET not set, API routes are unauthenticated")
	}

	// Orders
	api.GET("/orders", ordersHandler.ListOrders)
	api.GET("/orders/search", ordersHandler.SearchOrders)
	api.GET("/orders/:order_id", ordersHandler.GetOrder)
	api.PATCH("/orders/:order_id/status", statusHandler.UpdateStatus)

	// Daily loading
	api.GET("/orders/:order_id/daily-loading", ordersHandler.GetDailyLoading)
	api.POST("/orders/:order_id/daily-loading", ordersHandler.AddDailyLoading)
	api.DELETE("/orders/:order_id/daily-loading/:index", ordersHandler.RemoveDailyLoading)

	// Media
	api.GET("/orders/:order_id/media", filesHandler.GetMedia)
	api.POST("/orders/:order_id/media", uploadHandler.Upload)
	api.GET("/orders/:order_id/media/objects", filesHandler.GetStoredObjects)
	api.DELETE("/media/:media_id", filesHandler.DeleteMedia)

	api.GET("/regions", ordersHandler.ListRegions)
	api.GET("/me", profilesHandler.GetMe)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info("server starting", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
