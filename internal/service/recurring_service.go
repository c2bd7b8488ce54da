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
	ErrRecurringNotFound = errors.New("recurring expense not found")
	ErrInvalidDueDay     = errors.New("dia_vencimento must be between 1 and 31")
	ErrRecurringInactive = errors.New("recurring expense is inactive")
)

type RecurringService struct {
	recurringRepo *repository.RecurringRepository
	txRepo        *repository.TransactionRepository
	categoryRepo  *repository.CategoryRepository
	bankRepo      *repository.BankRepository
	cardRepo      *repository.CardRepository
	logger        *zap.Logger
}

func NewRecurringService(
	recurringRepo *repository.RecurringRepository,
	txRepo *repository.TransactionRepository,
	categoryRepo *repository.CategoryRepository,
	bankRepo *repository.BankRepository,
	cardRepo *repository.CardRepository,
	logger *zap.Logger,
) *RecurringService {
	return &RecurringService{
		recurringRepo: recurringRepo,
		txRepo:        txRepo,
		categoryRepo:  categoryRepo,
		bankRepo:      bankRepo,
		cardRepo:      cardRepo,
		logger:        logger,
	}
}

func (s *RecurringService) Create(ctx context.Context, userID uuid.UUID, req *dto.RecurringExpenseRequest) (*dto.RecurringExpenseResponse, error) {
	expense, err := s.validate(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	expense.ID = uuid.New()
	expense.UserID = userID
	expense.CreatedAt = now
	expense.UpdatedAt = now

	if err := s.recurringRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	created, err := s.recurringRepo.GetByID(ctx, expense.ID, userID)
	if err != nil {
		return nil, err
	}

	return toRecurringResponse(created), nil
}

func (s *RecurringService) List(ctx context.Context, userID uuid.UUID, ativo *bool) ([]*dto.RecurringExpenseResponse, error) {
	expenses, err := s.recurringRepo.ListByUser(ctx, userID, ativo)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.RecurringExpenseResponse, 0, len(expenses))
	for _, expense := range expenses {
		responses = append(responses, toRecurringResponse(expense))
	}
	return responses, nil
}

func (s *RecurringService) Get(ctx context.Context, id, userID uuid.UUID) (*dto.RecurringExpenseResponse, error) {
	expense, err := s.recurringRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, ErrRecurringNotFound
	}
	return toRecurringResponse(expense), nil
}

func (s *RecurringService) Update(ctx context.Context, id, userID uuid.UUID, req *dto.RecurringExpenseRequest) (*dto.RecurringExpenseResponse, error) {
	if _, err := s.recurringRepo.GetByID(ctx, id, userID); err != nil {
		return nil, ErrRecurringNotFound
	}

	expense, err := s.validate(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	expense.ID = id
	expense.UserID = userID

	if err := s.recurringRepo.Update(ctx, expense); err != nil {
		return nil, err
	}

	updated, err := s.recurringRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	return toRecurringResponse(updated), nil
}

func (s *RecurringService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.recurringRepo.GetByID(ctx, id, userID); err != nil {
		return ErrRecurringNotFound
	}
	return s.recurringRepo.Delete(ctx, id, userID)
}

// GenerateTransaction materializes the recurring expense as a transaction in
// the current month, dated on its due day. A due day past the month's last
// day is clamped to the last day.
func (s *RecurringService) GenerateTransaction(ctx context.Context, id, userID uuid.UUID) (*dto.TransactionResponse, error) {
	expense, err := s.recurringRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, ErrRecurringNotFound
	}
	if !expense.Ativo {
		return nil, ErrRecurringInactive
	}

	now := time.Now()
	lastDay := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	day := expense.DiaVencimento
	if day > lastDay {
		day = lastDay
	}
	data := time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, time.UTC)

	tx := &models.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		CategoriaID: expense.CategoriaID,
		BancoID:     expense.BancoID,
		CartaoID:    expense.CartaoID,
		Tipo:        models.TransactionType(expense.Tipo),
		Descricao:   expense.Descricao,
		Valor:       expense.Valor,
		Data:        data,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	created, err := s.txRepo.GetByID(ctx, tx.ID, userID)
	if err != nil {
		return nil, err
	}

	return toTransactionResponse(created), nil
}

func (s *RecurringService) validate(ctx context.Context, userID uuid.UUID, req *dto.RecurringExpenseRequest) (*models.RecurringExpense, error) {
	if strings.TrimSpace(req.Descricao) == "" {
		return nil, ErrInvalidType
	}
	if req.Valor <= 0 {
		return nil, ErrInvalidValor
	}
	if req.DiaVencimento < 1 || req.DiaVencimento > 31 {
		return nil, ErrInvalidDueDay
	}

	tipo := req.Tipo
	if tipo == "" {
		tipo = string(models.TypeDespesa)
	}
	if !models.TransactionType(tipo).Valid() {
		return nil, ErrInvalidType
	}

	categoriaID, err := s.resolveRef(ctx, req.CategoriaID, func(id uuid.UUID) error {
		_, err := s.categoryRepo.GetByID(ctx, id, userID)
		return err
	}, ErrCategoryNotFound)
	if err != nil {
		return nil, err
	}
	bancoID, err := s.resolveRef(ctx, req.BancoID, func(id uuid.UUID) error {
		_, err := s.bankRepo.GetByID(ctx, id, userID)
		return err
	}, ErrBankNotFound)
	if err != nil {
		return nil, err
	}
	cartaoID, err := s.resolveRef(ctx, req.CartaoID, func(id uuid.UUID) error {
		_, err := s.cardRepo.GetByID(ctx, id, userID)
		return err
	}, ErrCardNotFound)
	if err != nil {
		return nil, err
	}

	ativo := true
	if req.Ativo != nil {
		ativo = *req.Ativo
	}

	return &models.RecurringExpense{
		CategoriaID:   categoriaID,
		BancoID:       bancoID,
		CartaoID:      cartaoID,
		Descricao:     strings.TrimSpace(req.Descricao),
		Valor:         req.Valor,
		DiaVencimento: req.DiaVencimento,
		Tipo:          tipo,
		Ativo:         ativo,
		Observacoes:   req.Observacoes,
	}, nil
}

func (s *RecurringService) resolveRef(_ context.Context, raw *string, check func(uuid.UUID) error, notFound error) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, notFound
	}
	if err := check(id); err != nil {
		return nil, notFound
	}
	return &id, nil
}

func toRecurringResponse(g *models.RecurringExpense) *dto.RecurringExpenseResponse {
	return &dto.RecurringExpenseResponse{
		ID:            g.ID.String(),
		Descricao:     g.Descricao,
		Valor:         g.Valor,
		DiaVencimento: g.DiaVencimento,
		Tipo:          g.Tipo,
		CategoriaID:   uuidToString(g.CategoriaID),
		BancoID:       uuidToString(g.BancoID),
		CartaoID:      uuidToString(g.CartaoID),
		Ativo:         g.Ativo,
		Observacoes:   g.Observacoes,
		CategoriaNome: g.CategoriaNome,
		CategoriaCor:  g.CategoriaCor,
		BancoNome:     g.BancoNome,
		BancoCor:      g.BancoCor,
		CartaoNome:    g.CartaoNome,
		CartaoCor:     g.CartaoCor,
		CreatedAt:     g.CreatedAt.Format(time.RFC3339),
	}
}
