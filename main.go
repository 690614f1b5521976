// @title Dukkan API
// @version 1.0
// @description Multi-vendor local marketplace backend
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ahmedellithy99/dukkan-backend-sub000/config"
	"github.com/ahmedellithy99/dukkan-backend-sub000/controllers/admin_controller"
	"github.com/ahmedellithy99/dukkan-backend-sub000/controllers/auth_controller"
	"github.com/ahmedellithy99/dukkan-backend-sub000/controllers/storefront_controller"
	"github.com/ahmedellithy99/dukkan-backend-sub000/controllers/vendor_controller"
	"github.com/ahmedellithy99/dukkan-backend-sub000/logger"
	"github.com/ahmedellithy99/dukkan-backend-sub000/middleware"
	"github.com/ahmedellithy99/dukkan-backend-sub000/models"
	"github.com/ahmedellithy99/dukkan-backend-sub000/routes"
	"github.com/ahmedellithy99/dukkan-backend-sub000/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const defaultJWTSecret = "change-me-in-production"

func main() {
	cfg := config.Load()

	log := logger.New(logger.Config{
		IsDevelopment: !cfg.IsProduction(),
		Level:         cfg.Logger.Level,
		Encoding:      cfg.Logger.Encoding,
	})
	defer func() { _ = log.Sync() }()

	if cfg.IsProduction() && cfg.JWT.Secret == defaultJWTSecret {
		log.Fatal("JWT_SECRET must be set in production")
	}

	// Connect to DB
	db, err := config.InitDB(cfg, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer config.CloseDB(db, log)

	if cfg.Server.AutoMigrate {
		if err := config.Migrate(db); err != nil {
			log.Fatal("failed to migrate database", zap.Error(err))
		}
		log.Info("database migrated")
	}

	// Redis only backs the rate limiter; the API runs without it.
	var counter middleware.Counter
	if rdb, err := config.ConnectRedis(cfg, log); err != nil {
		log.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
	} else {
		defer rdb.Close()
		counter = middleware.NewRedisCounter(rdb)
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		models.RegisterValidations(v)
	}

	jwtService, err := services.NewJWTService(cfg.JWT.Secret, cfg.JWT.TTL)
	if err != nil {
		log.Fatal("failed to initialize JWT service", zap.Error(err))
	}

	authService := services.NewAuthService(db, jwtService, log)
	shopService := services.NewShopService(db, log)
	productService := services.NewProductService(db, log)
	taxonomyService := services.NewTaxonomyService(db, log)
	attributeService := services.NewAttributeService(db, log)
	locationService := services.NewLocationService(db, log)
	activityService := services.NewActivityLogService(db, log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "ok", nil))
	})

	routes.Setup(router, routes.Dependencies{
		Auth: auth_controller.New(authService, cfg.IsProduction(), log),
		Storefront: storefront_controller.New(
			shopService, productService, taxonomyService, attributeService, locationService, log,
		),
		Vendor: vendor_controller.New(shopService, productService, log),
		Admin: admin_controller.New(
			taxonomyService, attributeService, locationService, shopService, activityService, log,
		),
		Tokens:    jwtService,
		Activity:  activityService,
		Counter:   counter,
		RateLimit: cfg.RateLimit,
		Log:       log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server is running", zap.String("addr", srv.Addr), zap.String("env", cfg.Server.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := config.WithTimeout()
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
