package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"grana/internal/dto"
	"grana/internal/models"
	"grana/internal/repository"
	"grana/pkg/auth"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
)

// defaultCategory is seeded for every new user so the app is usable
// immediately after registration.
type defaultCategory struct {
	nome string
	tipo models.TransactionType
	cor  string
}

var defaultCategories = []defaultCategory{
	{"Salário", models.TypeReceita, "#10b981"},
	{"Freelance", models.TypeReceita, "#3b82f6"},
	{"Investimentos", models.TypeReceita, "#06b6d4"},
	{"Vendas", models.TypeReceita, "#8b5cf6"},
	{"Outras Receitas", models.TypeReceita, "#14b8a6"},
	{"Alimentação", models.TypeDespesa, "#ef4444"},
	{"Transporte", models.TypeDespesa, "#f59e0b"},
	{"Moradia", models.TypeDespesa, "#8b5cf6"},
	{"Saúde", models.TypeDespesa, "#ec4899"},
	{"Educação", models.TypeDespesa, "#6366f1"},
	{"Lazer", models.TypeDespesa, "#f97316"},
	{"Compras", models.TypeDespesa, "#e11d48"},
	{"Contas", models.TypeDespesa, "#dc2626"},
	{"Assinaturas", models.TypeDespesa, "#be185d"},
	{"Outras Despesas", models.TypeDespesa, "#6b7280"},
}

type AuthService struct {
	userRepo     *repository.UserRepository
	categoryRepo *repository.CategoryRepository
	jwtManager   *auth.JWTManager
	logger       *zap.Logger
}

func NewAuthService(userRepo *repository.UserRepository, categoryRepo *repository.CategoryRepository, jwtManager *auth.JWTManager, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		jwtManager:   jwtManager,
		logger:       logger,
	}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existingUser, _ := s.userRepo.GetByEmail(ctx, email)
	if existingUser != nil {
		return nil, ErrUserExists
	}

	hashedPassword, err := auth.HashPassword(req.Senha)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:        uuid.New(),
		Nome:      strings.TrimSpace(req.Nome),
		Email:     email,
		Senha:     hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.seedCategories(ctx, user.ID); err != nil {
		// Registration already succeeded; the user can create categories
		// by hand, so only log.
		s.logger.Error("Failed to seed default categories",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
	}

	return s.buildAuthResponse(user)
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(req.Senha, user.Senha) {
		return nil, ErrInvalidCredentials
	}

	return s.buildAuthResponse(user)
}

func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	claims, err := s.jwtManager.ValidateToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	return s.buildAuthResponse(user)
}

// Verify validates an access token and returns the user it identifies.
func (s *AuthService) Verify(ctx context.Context, token string) (*dto.UserResponse, error) {
	claims, err := s.jwtManager.ValidateToken(token)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	return &dto.UserResponse{
		ID:    user.ID.String(),
		Nome:  user.Nome,
		Email: user.Email,
	}, nil
}

func (s *AuthService) seedCategories(ctx context.Context, userID uuid.UUID) error {
	now := time.Now()
	categories := make([]*models.Category, 0, len(defaultCategories))
	for _, dc := range defaultCategories {
		categories = append(categories, &models.Category{
			ID:        uuid.New(),
			UserID:    userID,
			Nome:      dc.nome,
			Tipo:      dc.tipo,
			Cor:       dc.cor,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return s.categoryRepo.CreateBatch(ctx, categories)
}

func (s *AuthService) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateToken(user.ID.String(), user.Nome, user.Email)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID.String())
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.jwtManager.GetTokenDuration().Seconds()),
		User: dto.UserResponse{
			ID:    user.ID.String(),
			Nome:  user.Nome,
			Email: user.Email,
		},
	}, nil
}
