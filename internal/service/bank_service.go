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
	ErrInvalidBankType = errors.New("invalid bank type")
	ErrInvalidCardType = errors.New("invalid card type")
)

type BankService struct {
	bankRepo *repository.BankRepository
	cardRepo *repository.CardRepository
	logger   *zap.Logger
}

func NewBankService(bankRepo *repository.BankRepository, cardRepo *repository.CardRepository, logger *zap.Logger) *BankService {
	return &BankService{
		bankRepo: bankRepo,
		cardRepo: cardRepo,
		logger:   logger,
	}
}

func (s *BankService) Create(ctx context.Context, userID uuid.UUID, req *dto.BankRequest) (*dto.BankResponse, error) {
	tipo := models.BankType(req.Tipo)
	if tipo != models.BankTypeBanco && tipo != models.BankTypeCarteira && tipo != models.BankTypeCorretora {
		return nil, ErrInvalidBankType
	}
	nome := strings.TrimSpace(req.Nome)
	if nome == "" {
		return nil, ErrInvalidBankType
	}

	now := time.Now()
	bank := &models.Bank{
		ID:           uuid.New(),
		UserID:       userID,
		Nome:         nome,
		Tipo:         tipo,
		SaldoInicial: req.SaldoInicial,
		SaldoAtual:   req.SaldoInicial,
		Cor:          req.Cor,
		Observacoes:  req.Observacoes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.bankRepo.Create(ctx, bank); err != nil {
		return nil, err
	}

	return toBankResponse(bank), nil
}

func (s *BankService) List(ctx context.Context, userID uuid.UUID) ([]*dto.BankResponse, error) {
	banks, err := s.bankRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.BankResponse, 0, len(banks))
	for _, bank := range banks {
		responses = append(responses, toBankResponse(bank))
	}
	return responses, nil
}

func (s *BankService) Get(ctx context.Context, id, userID uuid.UUID) (*dto.BankResponse, error) {
	bank, err := s.bankRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, ErrBankNotFound
	}
	return toBankResponse(bank), nil
}

func (s *BankService) Update(ctx context.Context, id, userID uuid.UUID, req *dto.BankRequest) (*dto.BankResponse, error) {
	bank, err := s.bankRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, ErrBankNotFound
	}

	tipo := models.BankType(req.Tipo)
	if tipo != models.BankTypeBanco && tipo != models.BankTypeCarteira && tipo != models.BankTypeCorretora {
		return nil, ErrInvalidBankType
	}

	// Adjusting the initial balance shifts the current one by the same
	// delta so booked movement is preserved.
	delta := req.SaldoInicial - bank.SaldoInicial

	bank.Nome = strings.TrimSpace(req.Nome)
	bank.Tipo = tipo
	bank.SaldoInicial = req.SaldoInicial
	bank.SaldoAtual += delta
	bank.Cor = req.Cor
	bank.Observacoes = req.Observacoes

	if err := s.bankRepo.Update(ctx, bank); err != nil {
		return nil, err
	}

	return toBankResponse(bank), nil
}

func (s *BankService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.bankRepo.GetByID(ctx, id, userID); err != nil {
		return ErrBankNotFound
	}
	return s.bankRepo.Delete(ctx, id, userID)
}

func (s *BankService) CreateCard(ctx context.Context, bancoID, userID uuid.UUID, req *dto.CardRequest) (*dto.CardResponse, error) {
	if _, err := s.bankRepo.GetByID(ctx, bancoID, userID); err != nil {
		return nil, ErrBankNotFound
	}

	tipo := models.CardType(req.Tipo)
	if tipo != models.CardTypeCredito && tipo != models.CardTypeDebito {
		return nil, ErrInvalidCardType
	}

	ativo := true
	if req.Ativo != nil {
		ativo = *req.Ativo
	}

	now := time.Now()
	card := &models.Card{
		ID:            uuid.New(),
		UserID:        userID,
		BancoID:       bancoID,
		Nome:          strings.TrimSpace(req.Nome),
		Tipo:          tipo,
		Limite:        req.Limite,
		DiaFechamento: req.DiaFechamento,
		DiaVencimento: req.DiaVencimento,
		Cor:           req.Cor,
		Ativo:         ativo,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.cardRepo.Create(ctx, card); err != nil {
		return nil, err
	}

	return toCardResponse(card), nil
}

func (s *BankService) ListCards(ctx context.Context, bancoID, userID uuid.UUID) ([]*dto.CardResponse, error) {
	if _, err := s.bankRepo.GetByID(ctx, bancoID, userID); err != nil {
		return nil, ErrBankNotFound
	}

	cards, err := s.cardRepo.ListByBank(ctx, bancoID, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.CardResponse, 0, len(cards))
	for _, card := range cards {
		responses = append(responses, toCardResponse(card))
	}
	return responses, nil
}

func (s *BankService) UpdateCard(ctx context.Context, cardID, bancoID, userID uuid.UUID, req *dto.CardRequest) (*dto.CardResponse, error) {
	card, err := s.cardRepo.GetByID(ctx, cardID, userID)
	if err != nil || card.BancoID != bancoID {
		return nil, ErrCardNotFound
	}

	tipo := models.CardType(req.Tipo)
	if tipo != models.CardTypeCredito && tipo != models.CardTypeDebito {
		return nil, ErrInvalidCardType
	}

	card.Nome = strings.TrimSpace(req.Nome)
	card.Tipo = tipo
	card.Limite = req.Limite
	card.DiaFechamento = req.DiaFechamento
	card.DiaVencimento = req.DiaVencimento
	card.Cor = req.Cor
	if req.Ativo != nil {
		card.Ativo = *req.Ativo
	}

	if err := s.cardRepo.Update(ctx, card); err != nil {
		return nil, err
	}

	return toCardResponse(card), nil
}

func (s *BankService) DeleteCard(ctx context.Context, cardID, bancoID, userID uuid.UUID) error {
	card, err := s.cardRepo.GetByID(ctx, cardID, userID)
	if err != nil || card.BancoID != bancoID {
		return ErrCardNotFound
	}
	return s.cardRepo.Delete(ctx, cardID, bancoID, userID)
}

func toBankResponse(bank *models.Bank) *dto.BankResponse {
	return &dto.BankResponse{
		ID:           bank.ID.String(),
		Nome:         bank.Nome,
		Tipo:         string(bank.Tipo),
		SaldoInicial: bank.SaldoInicial,
		SaldoAtual:   bank.SaldoAtual,
		Cor:          bank.Cor,
		Observacoes:  bank.Observacoes,
		CreatedAt:    bank.CreatedAt.Format(time.RFC3339),
	}
}

func toCardResponse(card *models.Card) *dto.CardResponse {
	return &dto.CardResponse{
		ID:            card.ID.String(),
		BancoID:       card.BancoID.String(),
		Nome:          card.Nome,
		Tipo:          string(card.Tipo),
		Limite:        card.Limite,
		DiaFechamento: card.DiaFechamento,
		DiaVencimento: card.DiaVencimento,
		Cor:           card.Cor,
		Ativo:         card.Ativo,
		CreatedAt:     card.CreatedAt.Format(time.RFC3339),
	}
}
