package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/labstack/echo/v4"

	"authapi/internal/auth"
	"authapi/internal/cache"
	"authapi/internal/config"
	"authapi/internal/db"
	"authapi/internal/handler"
	"authapi/internal/middleware"
	"authapi/internal/model"
	"authapi/internal/repository"
	"authapi/internal/router"
	"authapi/internal/secrets"
	"authapi/internal/service"
)

// @title Authentication API
// @version 1.0
// @description Account registration, JWT authentication, and user administration.
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	ctx := context.Background()

	secretManager, err := newSecretManager(ctx)
	if err != nil {
		log.Fatalf("secrets init: %v", err)
	}

	cfg, err := config.Load(secretManager)
	if err != nil {
		log.Fatalf("config init: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.UserToken{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	userRepo := repository.NewUserRepository(gormDB)
	tokenRepo := repository.NewTokenRepository(gormDB)

	cipher := auth.NewCipher(cfg.PasswordCost)
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTExpireMinutes)

	accountService := service.NewAccountService(userRepo, tokenRepo, cipher, jwtService)
	userService := service.NewUserService(userRepo, cipher)
	adminService := service.NewAdminService(userRepo, cipher, cacheClient)

	accountHandler := handler.NewAccountHandler(accountService, cfg)
	userHandler := handler.NewUserHandler(userService, accountService, cfg.JWTCookieKey)
	adminHandler := handler.NewAdminHandler(adminService)
	apiInfoHandler := handler.NewAPIInfoHandler()

	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokenRepo, userRepo, cfg.JWTCookieKey)

	e := echo.New()
	router.Register(e, authMiddleware, accountHandler, userHandler, adminHandler, apiInfoHandler)

	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

// newSecretManager selects the secrets connector and performs the one-shot
// load. Outside of the AWS connector the process environment is used.
func newSecretManager(ctx context.Context) (*secrets.Manager, error) {
	var connector secrets.Connector
	if os.Getenv("SECRETS_CONNECTOR") == "AWS" {
		awsConnector, err := secrets.NewAWSConnector(ctx)
		if err != nil {
			return nil, err
		}
		connector = awsConnector
	}

	var secretNames []string
	if list := os.Getenv("SECRETS_LIST"); list != "" {
		secretNames = strings.Split(list, ",")
	}

	manager := secrets.NewManager(connector)
	if err := manager.Load(ctx, secretNames); err != nil {
		return nil, err
	}
	return manager, nil
}
