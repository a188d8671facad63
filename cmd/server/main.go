package main

import (
	"context"
	"log"
	"net/http"
	"os"

	_ "github.com/hitenSisghSoft/soundbox/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/hitenSisghSoft/soundbox/internal/auth"
	"github.com/hitenSisghSoft/soundbox/internal/cache"
	"github.com/hitenSisghSoft/soundbox/internal/config"
	"github.com/hitenSisghSoft/soundbox/internal/db"
	"github.com/hitenSisghSoft/soundbox/internal/handler"
	"github.com/hitenSisghSoft/soundbox/internal/model"
	"github.com/hitenSisghSoft/soundbox/internal/repository"
	"github.com/hitenSisghSoft/soundbox/internal/router"
	"github.com/hitenSisghSoft/soundbox/internal/service"
)

// @title Soundbox Admin API
// @version 1.0
// @description Administrative API for soundbox merchants, stores, machines, and staff, with JWT authentication and role-gated routes.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Machine{},
			&model.Store{},
			&model.Merchant{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Merchant{},
		&model.Store{},
		&model.Machine{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	merchantRepo := repository.NewMerchantRepository(gormDB)
	storeRepo := repository.NewStoreRepository(gormDB)
	machineRepo := repository.NewMachineRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, cacheClient)
	merchantService := service.NewMerchantService(merchantRepo, cacheClient)
	storeService := service.NewStoreService(storeRepo, merchantRepo)
	machineService := service.NewMachineService(machineRepo, storeRepo)

	// A fresh deployment needs a first admin to sign in with.
	if err := authService.EnsureAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("bootstrap admin: %v", err)
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	merchantHandler := handler.NewMerchantHandler(merchantService)
	storeHandler := handler.NewStoreHandler(storeService)
	machineHandler := handler.NewMachineHandler(machineService)
	navHandler := handler.NewNavHandler()

	// Register routes
	router.Register(
		e,
		jwtService,
		authHandler,
		userHandler,
		merchantHandler,
		storeHandler,
		machineHandler,
		navHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
