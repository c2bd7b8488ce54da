package handlers

import (
	"errors"

	"grana/internal/dto"
	"grana/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type RecurringHandler struct {
	recurringService *service.RecurringService
	logger           *zap.Logger
}

func NewRecurringHandler(recurringService *service.RecurringService, logger *zap.Logger) *RecurringHandler {
	return &RecurringHandler{
		recurringService: recurringService,
		logger:           logger,
	}
}

// Create godoc
// @Summary Criar gasto recorrente
// @Tags gastos-recorrentes
// @Accept json
// @Produce json
// @Param request body dto.RecurringExpenseRequest true "Dados do gasto recorrente"
// @Security Bearer
// @Success 201 {object} dto.RecurringExpenseResponse
// @Router /api/gastos-recorrentes [post]
func (h *RecurringHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req dto.RecurringExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Corpo da requisição inválido",
		})
	}

	resp, err := h.recurringService.Create(c.Context(), userID, &req)
	if err != nil {
		return h.mapError(c, err, "Erro ao criar gasto recorrente")
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary Listar gastos recorrentes
// @Tags gastos-recorrentes
// @Produce json
// @Param ativo query bool false "Filtrar por ativo"
// @Security Bearer
// @Success 200 {array} dto.RecurringExpenseResponse
// @Router /api/gastos-recorrentes [get]
func (h *RecurringHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var ativo *bool
	switch c.Query("ativo") {
	case "true":
		v := true
		ativo = &v
	case "false":
		v := false
		ativo = &v
	}

	resp, err := h.recurringService.List(c.Context(), userID, ativo)
	if err != nil {
		return h.mapError(c, err, "Erro ao listar gastos recorrentes")
	}

	return c.JSON(resp)
}

// Get godoc
// @Summary Buscar gasto recorrente
// @Tags gastos-recorrentes
// @Produce json
// @Param id path string true "ID do gasto recorrente"
// @Security Bearer
// @Success 200 {object} dto.RecurringExpenseResponse
// @Failure 404 {object} map[string]string
// @Router /api/gastos-recorrentes/{id} [get]
func (h *RecurringHandler) Get(c *fiber.Ctx) error {
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

	resp, err := h.recurringService.Get(c.Context(), id, userID)
	if err != nil {
		return h.mapError(c, err, "Erro ao buscar gasto recorrente")
	}

	return c.JSON(resp)
}

// Update godoc
// @Summary Atualizar gasto recorrente
// @Tags gastos-recorrentes
// @Accept json
// @Produce json
// @Param id path string true "ID do gasto recorrente"
// @Param request body dto.RecurringExpenseRequest true "Dados do gasto recorrente"
// @Security Bearer
// @Success 200 {object} dto.RecurringExpenseResponse
// @Failure 404 {object} map[string]string
// @Router /api/gastos-recorrentes/{id} [put]
func (h *RecurringHandler) Update(c *fiber.Ctx) error {
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

	var req dto.RecurringExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Corpo da requisição inválido",
		})
	}

	resp, err := h.recurringService.Update(c.Context(), id, userID, &req)
	if err != nil {
		return h.mapError(c, err, "Erro ao atualizar gasto recorrente")
	}

	return c.JSON(resp)
}

// Delete godoc
// @Summary Excluir gasto recorrente
// @Tags gastos-recorrentes
// @Param id path string true "ID do gasto recorrente"
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/gastos-recorrentes/{id} [delete]
func (h *RecurringHandler) Delete(c *fiber.Ctx) error {
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

	if err := h.recurringService.Delete(c.Context(), id, userID); err != nil {
		return h.mapError(c, err, "Erro ao excluir gasto recorrente")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GenerateTransaction godoc
// @Summary Gerar transação do gasto recorrente
// @Description Materializa o gasto recorrente como transação no mês corrente
// @Tags gastos-recorrentes
// @Produce json
// @Param id path string true "ID do gasto recorrente"
// @Security Bearer
// @Success 201 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string
// @Router /api/gastos-recorrentes/{id}/gerar-transacao [post]
func (h *RecurringHandler) GenerateTransaction(c *fiber.Ctx) error {
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

	resp, err := h.recurringService.GenerateTransaction(c.Context(), id, userID)
	if err != nil {
		return h.mapError(c, err, "Erro ao gerar transação")
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *RecurringHandler) mapError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrRecurringNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Gasto recorrente não encontrado"})
	case errors.Is(err, service.ErrRecurringInactive):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Gasto recorrente está inativo"})
	case errors.Is(err, service.ErrInvalidDueDay):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dia de vencimento deve estar entre 1 e 31"})
	case errors.Is(err, service.ErrInvalidValor):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Valor deve ser maior que zero"})
	case errors.Is(err, service.ErrInvalidType):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Descrição e tipo válidos são obrigatórios"})
	case errors.Is(err, service.ErrCategoryNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Categoria não encontrada"})
	case errors.Is(err, service.ErrBankNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Banco não encontrado"})
	case errors.Is(err, service.ErrCardNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cartão não encontrado"})
	}

	h.logger.Error("Recurring expense request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fallback})
}
