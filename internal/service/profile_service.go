package service

import (
	"context"
	"strings"
	"time"

	"grana/internal/dto"
	"grana/internal/models"
	"grana/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileService struct {
	userRepo *repository.UserRepository
	logger   *zap.Logger
}

func NewProfileService(userRepo *repository.UserRepository, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return toProfileResponse(user), nil
}

func (s *ProfileService) UpdateNome(ctx context.Context, userID uuid.UUID, nome string) (*dto.ProfileResponse, error) {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return nil, ErrInvalidType
	}

	if err := s.userRepo.UpdateNome(ctx, userID, nome); err != nil {
		return nil, err
	}

	return s.Get(ctx, userID)
}

// UpdateGanhoFixo sets the fixed monthly income used by the dashboard
// projection on the frontend.
func (s *ProfileService) UpdateGanhoFixo(ctx context.Context, userID uuid.UUID, valor float64) (*dto.ProfileResponse, error) {
	if valor < 0 {
		return nil, ErrInvalidValor
	}

	if err := s.userRepo.UpdateGanhoFixo(ctx, userID, valor); err != nil {
		return nil, err
	}

	return s.Get(ctx, userID)
}

func toProfileResponse(user *models.User) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:              user.ID.String(),
		Nome:            user.Nome,
		Email:           user.Email,
		GanhoFixoMensal: user.GanhoFixoMensal,
		CreatedAt:       user.CreatedAt.Format(time.RFC3339),
	}
}
