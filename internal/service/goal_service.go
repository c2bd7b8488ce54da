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

var (
	ErrGoalNotFound      = errors.New("goal not found")
	ErrInvalidGoalStatus = errors.New("invalid goal status")
	ErrInvalidGoalValue  = errors.New("valor_meta must be positive")
	ErrInvalidGoalTitle  = errors.New("titulo must not be empty")
)

type GoalService struct {
	goalRepo     *repository.GoalRepository
	categoryRepo *repository.CategoryRepository
	logger       *zap.Logger
}

func NewGoalService(goalRepo *repository.GoalRepository, categoryRepo *repository.CategoryRepository, logger *zap.Logger) *GoalService {
	return &GoalService{
		goalRepo:     goalRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (s *GoalService) Create(ctx context.Context, userID uuid.UUID, req *dto.GoalRequest) (*dto.GoalResponse, error) {
	goal, err := s.validate(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	goal.ID = uuid.New()
	goal.UserID = userID
	goal.CreatedAt = now
	goal.UpdatedAt = now

	if goal.Status == "" {
		goal.Status = models.GoalStatusAtiva
	}

	if err := s.goalRepo.Create(ctx, goal); err != nil {
		return nil, err
	}

	created, err := s.goalRepo.GetByID(ctx, goal.ID, userID)
	if err != nil {
		return nil, err
	}

	return toGoalResponse(created), nil
}

func (s *GoalService) List(ctx context.Context, userID uuid.UUID, status string) ([]*dto.GoalResponse, error) {
	var filter models.GoalStatus
	if status != "" {
		filter = models.GoalStatus(status)
		if !validGoalStatus(filter) {
			return nil, ErrInvalidGoalStatus
		}
	}

	goals, err := s.goalRepo.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.GoalResponse, 0, len(goals))
	for _, goal := range goals {
		responses = append(responses, toGoalResponse(goal))
	}
	return responses, nil
}

func (s *GoalService) Get(ctx context.Context, id, userID uuid.UUID) (*dto.GoalResponse, error) {
	goal, err := s.goalRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, ErrGoalNotFound
	}
	return toGoalResponse(goal), nil
}

func (s *GoalService) Update(ctx context.Context, id, userID uuid.UUID, req *dto.GoalRequest) (*dto.GoalResponse, error) {
	existing, err := s.goalRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, ErrGoalNotFound
	}

	goal, err := s.validate(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	goal.ID = id
	goal.UserID = userID
	if goal.Status == "" {
		goal.Status = existing.Status
	}

	if err := s.goalRepo.Update(ctx, goal); err != nil {
		return nil, err
	}

	updated, err := s.goalRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	return toGoalResponse(updated), nil
}

func (s *GoalService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.goalRepo.GetByID(ctx, id, userID); err != nil {
		return ErrGoalNotFound
	}
	return s.goalRepo.Delete(ctx, id, userID)
}

// AddProgress adds a deposit to the goal's accumulated amount. Reaching the
// target flips the goal to concluded.
func (s *GoalService) AddProgress(ctx context.Context, id, userID uuid.UUID, valor float64) (*dto.GoalResponse, error) {
	if valor <= 0 {
		return nil, ErrInvalidGoalValue
	}

	goal, err := s.goalRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, ErrGoalNotFound
	}

	valorAtual := goal.ValorAtual + valor
	status := goal.Status
	if valorAtual >= goal.ValorMeta {
		status = models.GoalStatusConcluida
	}

	if err := s.goalRepo.UpdateProgress(ctx, id, userID, valorAtual, status); err != nil {
		return nil, err
	}

	updated, err := s.goalRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	return toGoalResponse(updated), nil
}

func (s *GoalService) validate(ctx context.Context, userID uuid.UUID, req *dto.GoalRequest) (*models.Goal, error) {
	if strings.TrimSpace(req.Titulo) == "" {
		return nil, ErrInvalidGoalTitle
	}
	if req.ValorMeta <= 0 {
		return nil, ErrInvalidGoalValue
	}

	var status models.GoalStatus
	if req.Status != "" {
		status = models.GoalStatus(req.Status)
		if !validGoalStatus(status) {
			return nil, ErrInvalidGoalStatus
		}
	}

	var categoriaID *uuid.UUID
	if req.CategoriaID != nil && *req.CategoriaID != "" {
		id, err := uuid.Parse(*req.CategoriaID)
		if err != nil {
			return nil, ErrCategoryNotFound
		}
		if _, err := s.categoryRepo.GetByID(ctx, id, userID); err != nil {
			return nil, ErrCategoryNotFound
		}
		categoriaID = &id
	}

	dataInicio, err := parseOptionalDate(req.DataInicio)
	if err != nil {
		return nil, ErrInvalidDate
	}
	dataFim, err := parseOptionalDate(req.DataFim)
	if err != nil {
		return nil, ErrInvalidDate
	}

	return &models.Goal{
		CategoriaID: categoriaID,
		Titulo:      strings.TrimSpace(req.Titulo),
		Descricao:   req.Descricao,
		ValorMeta:   req.ValorMeta,
		ValorAtual:  req.ValorAtual,
		DataInicio:  dataInicio,
		DataFim:     dataFim,
		Status:      status,
	}, nil
}

func validGoalStatus(status models.GoalStatus) bool {
	switch status {
	case models.GoalStatusAtiva, models.GoalStatusPausada, models.GoalStatusConcluida:
		return true
	}
	return false
}

func parseOptionalDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func toGoalResponse(goal *models.Goal) *dto.GoalResponse {
	return &dto.GoalResponse{
		ID:            goal.ID.String(),
		Titulo:        goal.Titulo,
		Descricao:     goal.Descricao,
		ValorMeta:     goal.ValorMeta,
		ValorAtual:    goal.ValorAtual,
		Progresso:     goal.Progresso(),
		DataInicio:    formatOptionalDate(goal.DataInicio),
		DataFim:       formatOptionalDate(goal.DataFim),
		CategoriaID:   uuidToString(goal.CategoriaID),
		CategoriaNome: goal.CategoriaNome,
		CategoriaCor:  goal.CategoriaCor,
		Status:        string(goal.Status),
		CreatedAt:     goal.CreatedAt.Format(time.RFC3339),
	}
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
