package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	_ "datavision/docs" // swagger docs

	"datavision/internal/auth"
	"datavision/internal/cache"
	"datavision/internal/config"
	"datavision/internal/db"
	"datavision/internal/handler"
	"datavision/internal/logging"
	"datavision/internal/model"
	"datavision/internal/recope"
	"datavision/internal/repository"
	"datavision/internal/router"
	"datavision/internal/service"
)

// @title DataVision API
// @version 1.0
// @description Fuel-price dashboard API with JWT authentication and request audit logging.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	logger := logging.New(cfg.LogLevel)

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.RequestLog{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	logRepo := repository.NewLogRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(auth.TokenConfig{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
		TTL:      cfg.TokenTTL,
	})

	// Services
	authService := service.NewAuthService(userRepo, jwtService)
	auditService := service.NewAuditService(logRepo)
	recopeClient := recope.New(cfg.RecopeBaseURL, cacheClient, logger)
	reportService := service.NewReportService(recopeClient)

	e := echo.New()
	router.Register(e, router.Deps{
		Logger:         logger,
		JWTService:     jwtService,
		Auditor:        auditService,
		AuthHandler:    handler.NewAuthHandler(authService),
		LogsHandler:    handler.NewLogsHandler(auditService),
		RecopeHandler:  handler.NewRecopeHandler(recopeClient),
		ReportsHandler: handler.NewReportsHandler(reportService),
	})

	logger.Info("server starting", "port", cfg.ServerPort)
	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
