package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"grana/internal/api"
	"grana/internal/api/handlers"
	"grana/internal/receipt"
	"grana/internal/repository"
	"grana/internal/service"
	"grana/pkg/auth"
	"grana/pkg/config"
	"grana/pkg/logger"
	"grana/pkg/postgres"

	"go.uber.org/zap"
)

// @title Grana API
// @version 1.0
// @description API de controle financeiro pessoal com leitura de comprovantes

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting grana service")

	if err := postgres.Migrate(&cfg.Database, appLogger); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	bankRepo := repository.NewBankRepository(db, appLogger)
	cardRepo := repository.NewCardRepository(db, appLogger)
	recurringRepo := repository.NewRecurringRepository(db, appLogger)
	goalRepo := repository.NewGoalRepository(db, appLogger)

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Receipt recognition pipeline
	processor := receipt.NewProcessor(
		receipt.NewTesseractEngine(cfg.OCR.Language),
		receipt.NewPDFEngine(appLogger),
		appLogger,
	)

	// Services
	authService := service.NewAuthService(userRepo, categoryRepo, jwtManager, appLogger)
	txService := service.NewTransactionService(txRepo, categoryRepo, bankRepo, cardRepo, appLogger)
	categoryService := service.NewCategoryService(categoryRepo, appLogger)
	bankService := service.NewBankService(bankRepo, cardRepo, appLogger)
	recurringService := service.NewRecurringService(recurringRepo, txRepo, categoryRepo, bankRepo, cardRepo, appLogger)
	goalService := service.NewGoalService(goalRepo, categoryRepo, appLogger)
	profileService := service.NewProfileService(userRepo, appLogger)
	receiptService := service.NewReceiptService(processor, txRepo, categoryRepo, cfg.OCR.UploadDir, appLogger)

	// Handlers
	h := api.Handlers{
		Auth:        handlers.NewAuthHandler(authService, appLogger),
		Transaction: handlers.NewTransactionHandler(txService, appLogger),
		Category:    handlers.NewCategoryHandler(categoryService, appLogger),
		Bank:        handlers.NewBankHandler(bankService, appLogger),
		Recurring:   handlers.NewRecurringHandler(recurringService, appLogger),
		Goal:        handlers.NewGoalHandler(goalService, appLogger),
		Profile:     handlers.NewProfileHandler(profileService, appLogger),
		Receipt:     handlers.NewReceiptHandler(receiptService, appLogger),
	}

	app := api.SetupRouter(h, jwtManager, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
