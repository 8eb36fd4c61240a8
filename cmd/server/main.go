package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/genx-realty/console/api/internal/config"
	"github.com/genx-realty/console/api/internal/database"
	"github.com/genx-realty/console/api/internal/handlers"
	"github.com/genx-realty/console/api/internal/logger"
	"github.com/genx-realty/console/api/internal/metrics"
	"github.com/genx-realty/console/api/internal/middleware"
	"github.com/genx-realty/console/api/internal/repository"
	"github.com/genx-realty/console/api/internal/services"
	"github.com/gin-gonic/gin"
)

const (
	shutdownTimeout = 30 * time.Second
)

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.Server.Env)
	log.Info("Starting genx console API", map[string]interface{}{
		"version":     handlers.APIVersion,
		"environment": cfg.Server.Env,
		"port":        cfg.Server.Port,
	})

	// Create database connection pool
	ctx := context.Background()
	db, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", err, map[string]interface{}{
			"host": cfg.Database.Host,
			"port": cfg.Database.Port,
			"name": cfg.Database.Name,
		})
	}
	defer db.Close()

	log.Info("Database connection established", map[string]interface{}{
		"host":     cfg.Database.Host,
		"port":     cfg.Database.Port,
		"database": cfg.Database.Name,
		"pool_min": cfg.Database.PoolMin,
		"pool_max": cfg.Database.PoolMax,
	})

	// Prometheus registry and collectors
	m := metrics.New()

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware in order: RequestID -> Logger -> Recovery -> Metrics -> CORS
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Metrics(m))
	router.Use(middleware.CORS(cfg.CORS.Origins))

	// Register health check and metrics routes
	healthHandler := handlers.NewHealthHandler(db, cfg.Server.Env)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/api/v1/info", healthHandler.Info)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	// Initialize repository and service layers
	masterDataRepo := repository.NewMasterDataRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	vocabularyService := services.NewVocabularyService(masterDataRepo, log, m)
	propertyService := services.NewPropertyService(propertyRepo, masterDataRepo, log, m)
	authService := services.NewAuthService(sessionRepo, profileRepo, cfg.Auth.SessionTTL, log)

	// Initialize handlers
	masterDataHandler := handlers.NewMasterDataHandler(vocabularyService)
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	authHandler := handlers.NewAuthHandler(authService)

	// Register API v1 routes
	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/signin", authHandler.SignIn)
			auth.GET("/session", authHandler.Session)
			auth.POST("/signout", authHandler.SignOut)
		}

		// Everything below the session gate requires an active session
		gate := middleware.RequireSession(authService)

		masterData := v1.Group("/master-data", gate)
		{
			masterData.GET("", masterDataHandler.List)
			masterData.GET("/form-options", masterDataHandler.FormOptions)
			masterData.POST("", masterDataHandler.Create)
			masterData.DELETE("/:id", masterDataHandler.Delete)
		}

		properties := v1.Group("/properties", gate)
		{
			properties.GET("", propertyHandler.List)
			properties.GET("/:id", propertyHandler.Get)
			properties.POST("", propertyHandler.Create)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	log.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}
