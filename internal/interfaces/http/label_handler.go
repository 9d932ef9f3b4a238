package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/lp-label-api/internal/application/dto"
	"github.com/jhoicas/lp-label-api/internal/application/labels"
)

// LabelHandler maneja la generación de etiquetas ZPL y su vista previa (protegido).
type LabelHandler struct {
	print   *labels.PrintUseCase
	preview *labels.PreviewUseCase
	log     zerolog.Logger
}

// NewLabelHandler construye el handler.
func NewLabelHandler(printUC *labels.PrintUseCase, previewUC *labels.PreviewUseCase, log zerolog.Logger) *LabelHandler {
	return &LabelHandler{print: printUC, preview: previewUC, log: log}
}

// Sizes godoc
// @Summary      Tamaños de etiqueta soportados
// @Tags         labels
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LabelSizeDTO
// @Router       /api/labels/sizes [get]
func (h *LabelHandler) Sizes(c *fiber.Ctx) error {
	return c.JSON(h.print.Sizes())
}

// Validate godoc
// @Summary      Validar configuración de impresión
// @Tags         labels
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.PrintOptions  true  "Tamaño, copias y QR"
// @Success      200   {object}  dto.ValidatePrintResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/labels/validate [post]
func (h *LabelHandler) Validate(c *fiber.Ctx) error {
	var in dto.PrintOptions
	if !parseOptionalBody(c, &in) {
		return nil
	}
	out, err := h.print.Validate(in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// PrintLabel godoc
// @Summary      Generar etiqueta ZPL de una LP
// @Tags         labels
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id        path      string                 true   "ID de la LP"
// @Param        download  query     bool                   false  "Devolver el ZPL como archivo"
// @Param        body      body      dto.PrintLabelRequest  false  "Opciones de impresión"
// @Success      200       {object}  dto.PrintLabelResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /api/license-plates/{id}/print-label [post]
func (h *LabelHandler) PrintLabel(c *fiber.Ctx) error {
	companyID, ok := requireCompany(c)
	if !ok {
		return nil
	}
	var in dto.PrintLabelRequest
	if !parseOptionalBody(c, &in) {
		return nil
	}
	out, err := h.print.PrintLabel(c.Context(), companyID, c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if c.QueryBool("download") {
		return sendZPL(c, out.DownloadFilename, out.ZPL)
	}
	return c.JSON(out)
}

// PrintBulk godoc
// @Summary      Generar etiquetas ZPL de varias LPs (máx. 100)
// @Tags         labels
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        download  query     bool                  false  "Devolver el ZPL como archivo"
// @Param        body      body      dto.BulkPrintRequest  true   "IDs de LP y opciones"
// @Success      200       {object}  dto.BulkPrintResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Router       /api/license-plates/print-labels [post]
func (h *LabelHandler) PrintBulk(c *fiber.Ctx) error {
	companyID, ok := requireCompany(c)
	if !ok {
		return nil
	}
	var in dto.BulkPrintRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.print.PrintBulk(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if c.QueryBool("download") {
		return sendZPL(c, out.DownloadFilename, out.ZPL)
	}
	return c.JSON(out)
}

// Preview godoc
// @Summary      Vista previa PDF de la etiqueta
// @Tags         labels
// @Security     Bearer
// @Produce      application/pdf
// @Param        id    path   string  true   "ID de la LP"
// @Param        size  query  string  false  "4x6 | 4x3 | 3x2"
// @Success      200
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/license-plates/{id}/label-preview [get]
func (h *LabelHandler) Preview(c *fiber.Ctx) error {
	companyID, ok := requireCompany(c)
	if !ok {
		return nil
	}
	pdf, filename, err := h.preview.Preview(c.Context(), companyID, c.Params("id"), c.Query("size"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(pdf)
}

// parseOptionalBody acepta cuerpo vacío (todas las opciones por defecto).
// Si el cuerpo no parsea responde 400 y devuelve false.
func parseOptionalBody(c *fiber.Ctx, out interface{}) bool {
	if len(c.Body()) == 0 {
		return true
	}
	if err := c.BodyParser(out); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		return false
	}
	return true
}

func sendZPL(c *fiber.Ctx, filename, zpl string) error {
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.SendString(zpl)
}
