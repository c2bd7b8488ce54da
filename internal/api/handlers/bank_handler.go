package handlers

import (
	"errors"

	"grana/internal/dto"
	"grana/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type BankHandler struct {
	bankService *service.BankService
	logger      *zap.Logger
}

func NewBankHandler(bankService *service.BankService, logger *zap.Logger) *BankHandler {
	return &BankHandler{
		bankService: bankService,
		logger:      logger,
	}
}

// Create godoc
// @Summary Criar banco ou conta
// @Tags bancos
// @Accept json
// @Produce json
// @Param request body dto.BankRequest true "Dados do banco"
// @Security Bearer
// @Success 201 {object} dto.BankResponse
// @Router /api/bancos [post]
func (h *BankHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req dto.BankRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Corpo da requisição inválido",
		})
	}

	resp, err := h.bankService.Create(c.Context(), userID, &req)
	if err != nil {
		return h.mapError(c, err, "Erro ao criar banco")
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary Listar bancos e contas
// @Tags bancos
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.BankResponse
// @Router /api/bancos [get]
func (h *BankHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	resp, err := h.bankService.List(c.Context(), userID)
	if err != nil {
		return h.mapError(c, err, "Erro ao listar bancos")
	}

	return c.JSON(resp)
}

// Get godoc
// @Summary Buscar banco
// @Tags bancos
// @Produce json
// @Param id path string true "ID do banco"
// @Security Bearer
// @Success 200 {object} dto.BankResponse
// @Failure 404 {object} map[string]string
// @Router /api/bancos/{id} [get]
func (h *BankHandler) Get(c *fiber.Ctx) error {
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

	resp, err := h.bankService.Get(c.Context(), id, userID)
	if err != nil {
		return h.mapError(c, err, "Erro ao buscar banco")
	}

	return c.JSON(resp)
}

// Update godoc
// @Summary Atualizar banco
// @Tags bancos
// @Accept json
// @Produce json
// @Param id path string true "ID do banco"
// @Param request body dto.BankRequest true "Dados do banco"
// @Security Bearer
// @Success 200 {object} dto.BankResponse
// @Failure 404 {object} map[string]string
// @Router /api/bancos/{id} [put]
func (h *BankHandler) Update(c *fiber.Ctx) error {
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

	var req dto.BankRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Corpo da requisição inválido",
		})
	}

	resp, err := h.bankService.Update(c.Context(), id, userID, &req)
	if err != nil {
		return h.mapError(c, err, "Erro ao atualizar banco")
	}

	return c.JSON(resp)
}

// Delete godoc
// @Summary Excluir banco
// @Tags bancos
// @Param id path string true "ID do banco"
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/bancos/{id} [delete]
func (h *BankHandler) Delete(c *fiber.Ctx) error {
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

	if err := h.bankService.Delete(c.Context(), id, userID); err != nil {
		return h.mapError(c, err, "Erro ao excluir banco")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// CreateCard godoc
// @Summary Criar cartão em um banco
// @Tags bancos
// @Accept json
// @Produce json
// @Param id path string true "ID do banco"
// @Param request body dto.CardRequest true "Dados do cartão"
// @Security Bearer
// @Success 201 {object} dto.CardResponse
// @Failure 404 {object} map[string]string
// @Router /api/bancos/{id}/cartoes [post]
func (h *BankHandler) CreateCard(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	bancoID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	var req dto.CardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Corpo da requisição inválido",
		})
	}

	resp, err := h.bankService.CreateCard(c.Context(), bancoID, userID, &req)
	if err != nil {
		return h.mapError(c, err, "Erro ao criar cartão")
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListCards godoc
// @Summary Listar cartões de um banco
// @Tags bancos
// @Produce json
// @Param id path string true "ID do banco"
// @Security Bearer
// @Success 200 {array} dto.CardResponse
// @Failure 404 {object} map[string]string
// @Router /api/bancos/{id}/cartoes [get]
func (h *BankHandler) ListCards(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	bancoID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	resp, err := h.bankService.ListCards(c.Context(), bancoID, userID)
	if err != nil {
		return h.mapError(c, err, "Erro ao listar cartões")
	}

	return c.JSON(resp)
}

// UpdateCard godoc
// @Summary Atualizar cartão
// @Tags bancos
// @Accept json
// @Produce json
// @Param id path string true "ID do banco"
// @Param cartaoId path string true "ID do cartão"
// @Param request body dto.CardRequest true "Dados do cartão"
// @Security Bearer
// @Success 200 {object} dto.CardResponse
// @Failure 404 {object} map[string]string
// @Router /api/bancos/{id}/cartoes/{cartaoId} [put]
func (h *BankHandler) UpdateCard(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	bancoID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	cartaoID, err := parseIDParam(c, "cartaoId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	var req dto.CardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Corpo da requisição inválido",
		})
	}

	resp, err := h.bankService.UpdateCard(c.Context(), cartaoID, bancoID, userID, &req)
	if err != nil {
		return h.mapError(c, err, "Erro ao atualizar cartão")
	}

	return c.JSON(resp)
}

// DeleteCard godoc
// @Summary Excluir cartão
// @Tags bancos
// @Param id path string true "ID do banco"
// @Param cartaoId path string true "ID do cartão"
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/bancos/{id}/cartoes/{cartaoId} [delete]
func (h *BankHandler) DeleteCard(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	bancoID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	cartaoID, err := parseIDParam(c, "cartaoId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID inválido",
		})
	}

	if err := h.bankService.DeleteCard(c.Context(), cartaoID, bancoID, userID); err != nil {
		return h.mapError(c, err, "Erro ao excluir cartão")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *BankHandler) mapError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrBankNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Banco não encontrado"})
	case errors.Is(err, service.ErrCardNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Cartão não encontrado"})
	case errors.Is(err, service.ErrInvalidBankType):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tipo deve ser banco, carteira ou corretora"})
	case errors.Is(err, service.ErrInvalidCardType):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tipo deve ser credito ou debito"})
	}

	h.logger.Error("Bank request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fallback})
}
