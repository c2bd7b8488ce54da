package handlers

import (
	"errors"

	"grana/internal/dto"
	"grana/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type GoalHandler struct {
	goalService *service.GoalService
	logger      *zap.Logger
}

func NewGoalHandler(goalService *service.GoalService, logger *zap.Logger) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
		logger:      logger,
	}
}

// Create godoc
// @Summary Criar meta de economia
// @Tags metas
// @Accept json
// @Produce json
// @Param request body dto.GoalRequest true "Dados da meta"
// @Security Bearer
// @Success 201 {object} dto.GoalResponse
// @Router /api/metas [post]
func (h *GoalHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req dto.GoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Corpo da requisição inválido",
		})
	}

	resp, err := h.goalService.Create(c.Context(), userID, &req)
	if err != nil {
		return h.mapError(c, err, "Erro ao criar meta")
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary Listar metas
// @Tags metas
// @Produce json
// @Param status query string false "ativa, pausada ou concluida"
// @Security Bearer
// @Success 200 {array} dto.GoalResponse
// @Router /api/metas [get]
func (h *GoalHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	resp, err := h.goalService.List(c.Context(), userID, c.Query("status"))
	if err != nil {
		return h.mapError(c, err, "Erro ao listar metas")
	}

	return c.JSON(resp)
}

// Get godoc
// @Summary Buscar meta
// @Tags metas
// @Produce json
// @Param id path string true "ID da meta"
// @Security Bearer
// @Success 200 {object} dto.GoalResponse
// @Failure 404 {object} map[string]string
// @Router /api/metas/{id} [get]
func (h *GoalHandler) Get(c *fiber.Ctx) error {
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

	resp, err := h.goalService.Get(c.Context(), id, userID)
	if err != nil {
		return h.mapError(c, err, "Erro ao buscar meta")
	}

	return c.JSON(resp)
}

// Update godoc
// @Summary Atualizar meta
// @Tags metas
// @Accept json
// @Produce json
// @Param id path string true "ID da meta"
// @Param request body dto.GoalRequest true "Dados da meta"
// @Security Bearer
// @Success 200 {object} dto.GoalResponse
// @Failure 404 {object} map[string]string
// @Router /api/metas/{id} [put]
func (h *GoalHandler) Update(c *fiber.Ctx) error {
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

	var req dto.GoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Corpo da requisição inválido",
		})
	}

	resp, err := h.goalService.Update(c.Context(), id, userID, &req)
	if err != nil {
		return h.mapError(c, err, "Erro ao atualizar meta")
	}

	return c.JSON(resp)
}

// Delete godoc
// @Summary Excluir meta
// @Tags metas
// @Param id path string true "ID da meta"
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/metas/{id} [delete]
func (h *GoalHandler) Delete(c *fiber.Ctx) error {
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

	if err := h.goalService.Delete(c.Context(), id, userID); err != nil {
		return h.mapError(c, err, "Erro ao excluir meta")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// AddProgress godoc
// @Summary Adicionar valor à meta
// @Description Soma um depósito ao valor acumulado; ao atingir a meta o status vira concluida
// @Tags metas
// @Accept json
// @Produce json
// @Param id path string true "ID da meta"
// @Param request body dto.GoalAddRequest true "Valor do depósito"
// @Security Bearer
// @Success 200 {object} dto.GoalResponse
// @Failure 404 {object} map[string]string
// @Router /api/metas/{id}/adicionar [post]
func (h *GoalHandler) AddProgress(c *fiber.Ctx) error {
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

	var req dto.GoalAddRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Corpo da requisição inválido",
		})
	}

	resp, err := h.goalService.AddProgress(c.Context(), id, userID, req.Valor)
	if err != nil {
		return h.mapError(c, err, "Erro ao adicionar valor à meta")
	}

	return c.JSON(resp)
}

func (h *GoalHandler) mapError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrGoalNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Meta não encontrada"})
	case errors.Is(err, service.ErrInvalidGoalStatus):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Status deve ser ativa, pausada ou concluida"})
	case errors.Is(err, service.ErrInvalidGoalTitle):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Título é obrigatório"})
	case errors.Is(err, service.ErrInvalidGoalValue):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Valor deve ser maior que zero"})
	case errors.Is(err, service.ErrInvalidDate):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data inválida, use o formato AAAA-MM-DD"})
	case errors.Is(err, service.ErrCategoryNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Categoria não encontrada"})
	}

	h.logger.Error("Goal request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fallback})
}
