// Command seed creates a demo user with sample transactions for local
// development.
package main

import (
	"context"
	"log"
	"time"

	"grana/internal/dto"
	"grana/internal/models"
	"grana/internal/repository"
	"grana/internal/service"
	"grana/pkg/auth"
	"grana/pkg/config"
	"grana/pkg/logger"
	"grana/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	demoEmail = "demo@grana.dev"
	demoSenha = "demo1234"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	if err := postgres.Migrate(&cfg.Database, appLogger); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)
	authService := service.NewAuthService(userRepo, categoryRepo, jwtManager, appLogger)

	appLogger.Info("Starting database seeding")

	if existing, _ := userRepo.GetByEmail(ctx, demoEmail); existing != nil {
		appLogger.Info("Demo user already exists, nothing to do", zap.String("email", demoEmail))
		return
	}

	resp, err := authService.Register(ctx, &dto.RegisterRequest{
		Nome:  "Usuário Demo",
		Email: demoEmail,
		Senha: demoSenha,
	})
	if err != nil {
		appLogger.Fatal("Failed to create demo user", zap.Error(err))
	}

	userID, err := uuid.Parse(resp.User.ID)
	if err != nil {
		appLogger.Fatal("Invalid demo user id", zap.Error(err))
	}

	if err := seedTransactions(ctx, txRepo, categoryRepo, userID); err != nil {
		appLogger.Fatal("Failed to seed transactions", zap.Error(err))
	}

	appLogger.Info("Seeding complete",
		zap.String("email", demoEmail),
		zap.String("senha", demoSenha),
	)
}

func seedTransactions(ctx context.Context, txRepo *repository.TransactionRepository, categoryRepo *repository.CategoryRepository, userID uuid.UUID) error {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	samples := []struct {
		tipo      models.TransactionType
		categoria string
		descricao string
		valor     float64
		day       int
	}{
		{models.TypeReceita, "Salário", "Salário mensal", 5000, 1},
		{models.TypeReceita, "Freelance", "Projeto site institucional", 1200, 10},
		{models.TypeDespesa, "Moradia", "Aluguel", 1500, 5},
		{models.TypeDespesa, "Alimentação", "Supermercado", 620.45, 7},
		{models.TypeDespesa, "Transporte", "Combustível", 280, 12},
		{models.TypeDespesa, "Lazer", "Cinema", 85.90, 14},
		{models.TypeDespesa, "Contas", "Energia elétrica", 210.33, 15},
	}

	catByNome := map[string]*uuid.UUID{}
	for _, tipo := range []models.TransactionType{models.TypeReceita, models.TypeDespesa} {
		categories, err := categoryRepo.ListByUser(ctx, userID, tipo)
		if err != nil {
			return err
		}
		for _, cat := range categories {
			id := cat.ID
			catByNome[cat.Nome] = &id
		}
	}

	for _, sample := range samples {
		tx := &models.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			CategoriaID: catByNome[sample.categoria],
			Tipo:        sample.tipo,
			Descricao:   sample.descricao,
			Valor:       sample.valor,
			Data:        monthStart.AddDate(0, 0, sample.day-1),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := txRepo.Create(ctx, tx); err != nil {
			return err
		}
	}

	return nil
}
