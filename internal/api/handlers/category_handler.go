package handlers

import (
	"errors"

	"grana/internal/dto"
	"grana/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
	logger          *zap.Logger
}

func NewCategoryHandler(categoryService *service.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// Create godoc
// @Summary Criar categoria
// @Tags categorias
// @Accept json
// @Produce json
// @Param request body dto.CategoryRequest true "Dados da categoria"
// @Security Bearer
// @Success 201 {object} dto.CategoryResponse
// @Failure 409 {object} map[string]string
// @Router /api/categorias [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Corpo da requisição inválido",
		})
	}

	resp, err := h.categoryService.Create(c.Context(), userID, &req)
	if err != nil {
		return h.mapError(c, err, "Erro ao criar categoria")
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary Listar categorias
// @Tags categorias
// @Produce json
// @Param tipo query string false "receita ou despesa"
// @Security Bearer
// @Success 200 {array} dto.CategoryResponse
// @Router /api/categorias [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	resp, err := h.categoryService.List(c.Context(), userID, c.Query("tipo"))
	if err != nil {
		return h.mapError(c, err, "Erro ao listar categorias")
	}

	return c.JSON(resp)
}

// Update godoc
// @Summary Atualizar categoria
// @Tags categorias
// @Accept json
// @Produce json
// @Param id path string true "ID da categoria"
// @Param request body dto.CategoryRequest true "Dados da categoria"
// @Security Bearer
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} map[string]string
// @Router /api/categorias/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
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

	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Corpo da requisição inválido",
		})
	}

	resp, err := h.categoryService.Update(c.Context(), id, userID, &req)
	if err != nil {
		return h.mapError(c, err, "Erro ao atualizar categoria")
	}

	return c.JSON(resp)
}

// Delete godoc
// @Summary Excluir categoria
// @Tags categorias
// @Param id path string true "ID da categoria"
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/categorias/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
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

	if err := h.categoryService.Delete(c.Context(), id, userID); err != nil {
		return h.mapError(c, err, "Erro ao excluir categoria")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CategoryHandler) mapError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrCategoryNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Categoria não encontrada"})
	case errors.Is(err, service.ErrCategoryExists):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Já existe uma categoria com esse nome e tipo"})
	case errors.Is(err, service.ErrInvalidType):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nome e tipo (receita ou despesa) são obrigatórios"})
	}

	h.logger.Error("Category request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fallback})
}
