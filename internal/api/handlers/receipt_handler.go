package handlers

import (
	"errors"

	"grana/internal/receipt"
	"grana/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ReceiptHandler struct {
	receiptService *service.ReceiptService
	logger         *zap.Logger
}

func NewReceiptHandler(receiptService *service.ReceiptService, logger *zap.Logger) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
		logger:         logger,
	}
}

// Process godoc
// @Summary Processar comprovante
// @Description Reconhece o comprovante e cria a transação quando um valor é identificado
// @Tags ocr
// @Accept multipart/form-data
// @Produce json
// @Param imagem formData file true "Comprovante (jpg, jpeg, png ou pdf)"
// @Security Bearer
// @Success 200 {object} dto.ProcessReceiptResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/ocr/processar [post]
func (h *ReceiptHandler) Process(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	file, err := c.FormFile("imagem")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Arquivo é obrigatório",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Não foi possível ler o arquivo",
		})
	}
	defer src.Close()

	resp, err := h.receiptService.Process(c.Context(), userID, src, file.Filename)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(resp)
}

// Preview godoc
// @Summary Pré-visualizar comprovante
// @Description Reconhece o comprovante sem criar transação
// @Tags ocr
// @Accept multipart/form-data
// @Produce json
// @Param imagem formData file true "Comprovante (jpg, jpeg, png ou pdf)"
// @Security Bearer
// @Success 200 {object} dto.ProcessReceiptResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/ocr/processar-preview [post]
func (h *ReceiptHandler) Preview(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	file, err := c.FormFile("imagem")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Arquivo é obrigatório",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Não foi possível ler o arquivo",
		})
	}
	defer src.Close()

	resp, err := h.receiptService.Preview(c.Context(), userID, src, file.Filename)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(resp)
}

func (h *ReceiptHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrUnsupportedFormat):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato não suportado, envie jpg, jpeg, png ou pdf",
		})
	case errors.Is(err, receipt.ErrRecognitionFailed):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Não foi possível reconhecer o comprovante",
		})
	}

	h.logger.Error("Receipt processing failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Erro ao processar comprovante",
	})
}
