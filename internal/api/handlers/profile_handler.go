package handlers

import (
	"errors"

	"grana/internal/dto"
	"grana/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	profileService *service.ProfileService
	logger         *zap.Logger
}

func NewProfileHandler(profileService *service.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// Get godoc
// @Summary Buscar perfil do usuário
// @Tags perfil
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.ProfileResponse
// @Router /api/perfil [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	resp, err := h.profileService.Get(c.Context(), userID)
	if err != nil {
		return h.mapError(c, err, "Erro ao buscar perfil")
	}

	return c.JSON(resp)
}

// UpdateNome godoc
// @Summary Atualizar nome
// @Tags perfil
// @Accept json
// @Produce json
// @Param request body dto.UpdateNameRequest true "Novo nome"
// @Security Bearer
// @Success 200 {object} dto.ProfileResponse
// @Router /api/perfil/nome [put]
func (h *ProfileHandler) UpdateNome(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req dto.UpdateNameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Corpo da requisição inválido",
		})
	}

	resp, err := h.profileService.UpdateNome(c.Context(), userID, req.Nome)
	if err != nil {
		return h.mapError(c, err, "Erro ao atualizar nome")
	}

	return c.JSON(resp)
}

// UpdateGanhoFixo godoc
// @Summary Atualizar ganho fixo mensal
// @Tags perfil
// @Accept json
// @Produce json
// @Param request body dto.UpdateFixedIncomeRequest true "Ganho fixo mensal"
// @Security Bearer
// @Success 200 {object} dto.ProfileResponse
// @Router /api/perfil/ganho-fixo [put]
func (h *ProfileHandler) UpdateGanhoFixo(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req dto.UpdateFixedIncomeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Corpo da requisição inválido",
		})
	}

	resp, err := h.profileService.UpdateGanhoFixo(c.Context(), userID, req.GanhoFixoMensal)
	if err != nil {
		return h.mapError(c, err, "Erro ao atualizar ganho fixo")
	}

	return c.JSON(resp)
}

func (h *ProfileHandler) mapError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Usuário não encontrado"})
	case errors.Is(err, service.ErrInvalidType):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nome não pode ser vazio"})
	case errors.Is(err, service.ErrInvalidValor):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Ganho fixo não pode ser negativo"})
	}

	h.logger.Error("Profile request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fallback})
}
