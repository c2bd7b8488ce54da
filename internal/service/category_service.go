package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"grana/internal/dto"
	"grana/internal/models"
	"grana/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrCategoryExists = errors.New("category already exists")

type CategoryService struct {
	categoryRepo *repository.CategoryRepository
	logger       *zap.Logger
}

func NewCategoryService(categoryRepo *repository.CategoryRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (s *CategoryService) Create(ctx context.Context, userID uuid.UUID, req *dto.CategoryRequest) (*dto.CategoryResponse, error) {
	nome := strings.TrimSpace(req.Nome)
	tipo := models.TransactionType(req.Tipo)
	if nome == "" || !tipo.Valid() {
		return nil, ErrInvalidType
	}

	exists, err := s.categoryRepo.ExistsByNomeTipo(ctx, userID, nome, tipo, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCategoryExists
	}

	now := time.Now()
	cat := &models.Category{
		ID:        uuid.New(),
		UserID:    userID,
		Nome:      nome,
		Tipo:      tipo,
		Cor:       req.Cor,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.categoryRepo.Create(ctx, cat); err != nil {
		return nil, err
	}

	return toCategoryResponse(cat), nil
}

func (s *CategoryService) List(ctx context.Context, userID uuid.UUID, tipo string) ([]*dto.CategoryResponse, error) {
	var filter models.TransactionType
	if tipo != "" {
		filter = models.TransactionType(tipo)
		if !filter.Valid() {
			return nil, ErrInvalidType
		}
	}

	categories, err := s.categoryRepo.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		responses = append(responses, toCategoryResponse(cat))
	}
	return responses, nil
}

func (s *CategoryService) Update(ctx context.Context, id, userID uuid.UUID, req *dto.CategoryRequest) (*dto.CategoryResponse, error) {
	cat, err := s.categoryRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, ErrCategoryNotFound
	}

	nome := strings.TrimSpace(req.Nome)
	tipo := models.TransactionType(req.Tipo)
	if nome == "" || !tipo.Valid() {
		return nil, ErrInvalidType
	}

	exists, err := s.categoryRepo.ExistsByNomeTipo(ctx, userID, nome, tipo, &id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCategoryExists
	}

	cat.Nome = nome
	cat.Tipo = tipo
	cat.Cor = req.Cor

	if err := s.categoryRepo.Update(ctx, cat); err != nil {
		return nil, err
	}

	return toCategoryResponse(cat), nil
}

func (s *CategoryService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.categoryRepo.GetByID(ctx, id, userID); err != nil {
		return ErrCategoryNotFound
	}
	return s.categoryRepo.Delete(ctx, id, userID)
}

func toCategoryResponse(cat *models.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:        cat.ID.String(),
		Nome:      cat.Nome,
		Tipo:      string(cat.Tipo),
		Cor:       cat.Cor,
		CreatedAt: cat.CreatedAt.Format(time.RFC3339),
	}
}
