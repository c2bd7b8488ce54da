package service

import (
	"context"
	"errors"
	"time"

	"grana/internal/dto"
	"grana/internal/models"
	"grana/internal/repository"
	"grana/internal/summary"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidType         = errors.New("invalid transaction type")
	ErrInvalidValor        = errors.New("valor must be positive")
	ErrInvalidDate         = errors.New("invalid date")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrBankNotFound        = errors.New("bank not found")
	ErrCardNotFound        = errors.New("card not found")
	ErrCardWrongBank       = errors.New("card does not belong to bank")
)

const dateLayout = "2006-01-02"

type TransactionService struct {
	txRepo       *repository.TransactionRepository
	categoryRepo *repository.CategoryRepository
	bankRepo     *repository.BankRepository
	cardRepo     *repository.CardRepository
	logger       *zap.Logger
}

func NewTransactionService(
	txRepo *repository.TransactionRepository,
	categoryRepo *repository.CategoryRepository,
	bankRepo *repository.BankRepository,
	cardRepo *repository.CardRepository,
	logger *zap.Logger,
) *TransactionService {
	return &TransactionService{
		txRepo:       txRepo,
		categoryRepo: categoryRepo,
		bankRepo:     bankRepo,
		cardRepo:     cardRepo,
		logger:       logger,
	}
}

func (s *TransactionService) Create(ctx context.Context, userID uuid.UUID, req *dto.TransactionRequest) (*dto.TransactionResponse, error) {
	tx, err := s.validate(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	tx.ID = uuid.New()
	tx.UserID = userID
	tx.CreatedAt = now
	tx.UpdatedAt = now

	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	// Re-read so the joined category/bank/card names are filled in.
	created, err := s.txRepo.GetByID(ctx, tx.ID, userID)
	if err != nil {
		return nil, err
	}

	return toTransactionResponse(created), nil
}

// ListFilter carries the listing query parameters after parsing.
type ListFilter struct {
	Month int
	Year  int
	Tipo  string
}

func (s *TransactionService) List(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*dto.TransactionResponse, error) {
	repoFilter := repository.TransactionFilter{}

	if filter.Month >= 1 && filter.Month <= 12 && filter.Year > 0 {
		repoFilter.Start, repoFilter.End = summary.MonthRange(filter.Month, filter.Year)
	}
	if filter.Tipo != "" {
		tipo := models.TransactionType(filter.Tipo)
		if !tipo.Valid() {
			return nil, ErrInvalidType
		}
		repoFilter.Tipo = tipo
	}

	transactions, err := s.txRepo.ListByUser(ctx, userID, repoFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		responses = append(responses, toTransactionResponse(tx))
	}
	return responses, nil
}

func (s *TransactionService) Get(ctx context.Context, id, userID uuid.UUID) (*dto.TransactionResponse, error) {
	tx, err := s.txRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, ErrTransactionNotFound
	}
	return toTransactionResponse(tx), nil
}

func (s *TransactionService) Update(ctx context.Context, id, userID uuid.UUID, req *dto.TransactionRequest) (*dto.TransactionResponse, error) {
	if _, err := s.txRepo.GetByID(ctx, id, userID); err != nil {
		return nil, ErrTransactionNotFound
	}

	tx, err := s.validate(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	tx.ID = id
	tx.UserID = userID

	if err := s.txRepo.Update(ctx, tx); err != nil {
		return nil, err
	}

	updated, err := s.txRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	return toTransactionResponse(updated), nil
}

func (s *TransactionService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.txRepo.GetByID(ctx, id, userID); err != nil {
		return ErrTransactionNotFound
	}
	return s.txRepo.Delete(ctx, id, userID)
}

// Resumo aggregates income, expense and balance for the period. When month
// and year are given the period is that calendar month; otherwise the whole
// ledger is summed.
func (s *TransactionService) Resumo(ctx context.Context, userID uuid.UUID, month, year int) (*dto.ResumoResponse, error) {
	records, err := s.txRepo.ListLedger(ctx, userID)
	if err != nil {
		return nil, err
	}

	if month >= 1 && month <= 12 && year > 0 {
		start, end := summary.MonthRange(month, year)
		records = summary.FilterRange(records, start, end)
	}

	totals := summary.Summarize(records)
	return &dto.ResumoResponse{
		Receitas: totals.Receitas,
		Despesas: totals.Despesas,
		Saldo:    totals.Saldo,
	}, nil
}

// Projecao extrapolates the current month's expenses to month end from the
// daily average so far.
func (s *TransactionService) Projecao(ctx context.Context, userID uuid.UUID, month, year int) (*dto.ProjecaoResponse, error) {
	now := time.Now()
	if month < 1 || month > 12 {
		month = int(now.Month())
	}
	if year <= 0 {
		year = now.Year()
	}

	records, err := s.txRepo.ListLedger(ctx, userID)
	if err != nil {
		return nil, err
	}

	start, end := summary.MonthRange(month, year)
	totals := summary.Summarize(summary.FilterRange(records, start, end))

	daysInMonth := end.Day()
	day := daysInMonth
	if now.Year() == year && int(now.Month()) == month {
		day = now.Day()
	}

	projecao := summary.ProjectMonthEnd(totals.Despesas, day, daysInMonth)

	return &dto.ProjecaoResponse{
		DespesasAtuais:   totals.Despesas,
		ProjecaoDespesas: projecao,
		SaldoProjetado:   totals.Receitas - projecao,
	}, nil
}

// validate checks the request fields and referenced entities, returning a
// transaction ready to persist.
func (s *TransactionService) validate(ctx context.Context, userID uuid.UUID, req *dto.TransactionRequest) (*models.Transaction, error) {
	tipo := models.TransactionType(req.Tipo)
	if !tipo.Valid() {
		return nil, ErrInvalidType
	}
	if req.Valor <= 0 {
		return nil, ErrInvalidValor
	}

	data, err := time.Parse(dateLayout, req.Data)
	if err != nil {
		return nil, ErrInvalidDate
	}

	categoriaID, err := s.resolveCategoria(ctx, userID, req.CategoriaID)
	if err != nil {
		return nil, err
	}
	bancoID, err := s.resolveBanco(ctx, userID, req.BancoID)
	if err != nil {
		return nil, err
	}
	cartaoID, err := s.resolveCartao(ctx, userID, req.CartaoID, bancoID)
	if err != nil {
		return nil, err
	}

	return &models.Transaction{
		CategoriaID: categoriaID,
		BancoID:     bancoID,
		CartaoID:    cartaoID,
		Tipo:        tipo,
		Descricao:   req.Descricao,
		Valor:       req.Valor,
		Data:        data,
	}, nil
}

func (s *TransactionService) resolveCategoria(ctx context.Context, userID uuid.UUID, raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, ErrCategoryNotFound
	}
	if _, err := s.categoryRepo.GetByID(ctx, id, userID); err != nil {
		return nil, ErrCategoryNotFound
	}
	return &id, nil
}

func (s *TransactionService) resolveBanco(ctx context.Context, userID uuid.UUID, raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, ErrBankNotFound
	}
	if _, err := s.bankRepo.GetByID(ctx, id, userID); err != nil {
		return nil, ErrBankNotFound
	}
	return &id, nil
}

func (s *TransactionService) resolveCartao(ctx context.Context, userID uuid.UUID, raw *string, bancoID *uuid.UUID) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, ErrCardNotFound
	}
	card, err := s.cardRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, ErrCardNotFound
	}
	if bancoID != nil && card.BancoID != *bancoID {
		return nil, ErrCardWrongBank
	}
	return &id, nil
}

func toTransactionResponse(tx *models.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:            tx.ID.String(),
		Tipo:          string(tx.Tipo),
		Descricao:     tx.Descricao,
		Valor:         tx.Valor,
		Data:          tx.Data.Format(dateLayout),
		CategoriaID:   uuidToString(tx.CategoriaID),
		BancoID:       uuidToString(tx.BancoID),
		CartaoID:      uuidToString(tx.CartaoID),
		CategoriaNome: tx.CategoriaNome,
		CategoriaCor:  tx.CategoriaCor,
		BancoNome:     tx.BancoNome,
		BancoCor:      tx.BancoCor,
		CartaoNome:    tx.CartaoNome,
		CartaoCor:     tx.CartaoCor,
		CreatedAt:     tx.CreatedAt.Format(time.RFC3339),
	}
}

func uuidToString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
