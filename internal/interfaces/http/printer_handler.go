package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/lp-label-api/internal/application/dto"
	"github.com/jhoicas/lp-label-api/internal/application/labels"
)

// PrinterHandler envía documentos ZPL a impresoras de red (protegido, admin|bodeguero).
type PrinterHandler struct {
	uc  *labels.DispatchUseCase
	log zerolog.Logger
}

// NewPrinterHandler construye el handler.
func NewPrinterHandler(uc *labels.DispatchUseCase, log zerolog.Logger) *PrinterHandler {
	return &PrinterHandler{uc: uc, log: log}
}

// Send godoc
// @Summary      Enviar ZPL a impresora
// @Tags         printers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.PrintJobRequest  true  "Documento ZPL e impresora"
// @Success      200   {object}  dto.PrintJobResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Failure      504   {object}  dto.ErrorResponse
// @Router       /api/labels/print-jobs [post]
func (h *PrinterHandler) Send(c *fiber.Ctx) error {
	var in dto.PrintJobRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Send(c.Context(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
