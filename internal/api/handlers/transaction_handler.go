package handlers

import (
	"errors"

	"grana/internal/dto"
	"grana/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	txService *service.TransactionService
	logger    *zap.Logger
}

func NewTransactionHandler(txService *service.TransactionService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		txService: txService,
		logger:    logger,
	}
}

// Create godoc
// @Summary Criar transação
// @Tags transacoes
// @Accept json
// @Produce json
// @Param request body dto.TransactionRequest true "Dados da transação"
// @Security Bearer
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Router /api/transacoes [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req dto.TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Corpo da requisição inválido",
		})
	}

	resp, err := h.txService.Create(c.Context(), userID, &req)
	if err != nil {
		return h.mapError(c, err, "Erro ao criar transação")
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary Listar transações
// @Description Lista as transações do usuário, com filtros opcionais de mês, ano e tipo
// @Tags transacoes
// @Produce json
// @Param mes query int false "Mês (1-12)"
// @Param ano query int false "Ano"
// @Param tipo query string false "receita ou despesa"
// @Security Bearer
// @Success 200 {array} dto.TransactionResponse
// @Router /api/transacoes [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	filter := service.ListFilter{
		Month: c.QueryInt("mes"),
		Year:  c.QueryInt("ano"),
		Tipo:  c.Query("tipo"),
	}

	resp, err := h.txService.List(c.Context(), userID, filter)
	if err != nil {
		return h.mapError(c, err, "Erro ao listar transações")
	}

	return c.JSON(resp)
}

// Get godoc
// @Summary Buscar transação
// @Tags transacoes
// @Produce json
// @Param id path string true "ID da transação"
// @Security Bearer
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string
// @Router /api/transacoes/{id} [get]
func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	resp, err := h.txService.Get(c.Context(), id, userID)
	if err != nil {
		return h.mapError(c, err, "Erro ao buscar transação")
	}

	return c.JSON(resp)
}

// Update godoc
// @Summary Atualizar transação
// @Tags transacoes
// @Accept json
// @Produce json
// @Param id path string true "ID da transação"
// @Param request body dto.TransactionRequest true "Dados da transação"
// @Security Bearer
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string
// @Router /api/transacoes/{id} [put]
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	var req dto.TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Corpo da requisição inválido",
		})
	}

	resp, err := h.txService.Update(c.Context(), id, userID, &req)
	if err != nil {
		return h.mapError(c, err, "Erro ao atualizar transação")
	}

	return c.JSON(resp)
}

// Delete godoc
// @Summary Excluir transação
// @Tags transacoes
// @Param id path string true "ID da transação"
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/transacoes/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	if err := h.txService.Delete(c.Context(), id, userID); err != nil {
		return h.mapError(c, err, "Erro ao excluir transação")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Resumo godoc
// @Summary Resumo financeiro do período
// @Description Totais de receitas, despesas e saldo; mes e ano restringem ao mês informado
// @Tags transacoes
// @Produce json
// @Param mes query int false "Mês (1-12)"
// @Param ano query int false "Ano"
// @Security Bearer
// @Success 200 {object} dto.ResumoResponse
// @Router /api/transacoes/resumo/saldo [get]
func (h *TransactionHandler) Resumo(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	resp, err := h.txService.Resumo(c.Context(), userID, c.QueryInt("mes"), c.QueryInt("ano"))
	if err != nil {
		return h.mapError(c, err, "Erro ao calcular resumo")
	}

	return c.JSON(resp)
}

// Projecao godoc
// @Summary Projeção de despesas do mês
// @Description Extrapola as despesas do mês corrente a partir da média diária
// @Tags transacoes
// @Produce json
// @Param mes query int false "Mês (1-12)"
// @Param ano query int false "Ano"
// @Security Bearer
// @Success 200 {object} dto.ProjecaoResponse
// @Router /api/transacoes/resumo/projecao [get]
func (h *TransactionHandler) Projecao(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	resp, err := h.txService.Projecao(c.Context(), userID, c.QueryInt("mes"), c.QueryInt("ano"))
	if err != nil {
		return h.mapError(c, err, "Erro ao calcular projeção")
	}

	return c.JSON(resp)
}

func (h *TransactionHandler) mapError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrTransactionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transação não encontrada"})
	case errors.Is(err, service.ErrInvalidType):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tipo deve ser receita ou despesa"})
	case errors.Is(err, service.ErrInvalidValor):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Valor deve ser maior que zero"})
	case errors.Is(err, service.ErrInvalidDate):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data inválida, use o formato AAAA-MM-DD"})
	case errors.Is(err, service.ErrCategoryNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Categoria não encontrada"})
	case errors.Is(err, service.ErrBankNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Banco não encontrado"})
	case errors.Is(err, service.ErrCardNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cartão não encontrado"})
	case errors.Is(err, service.ErrCardWrongBank):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cartão não pertence ao banco informado"})
	}

	h.logger.Error("Transaction request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fallback})
}
