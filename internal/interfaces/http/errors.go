package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/lp-label-api/internal/application/dto"
	"github.com/jhoicas/lp-label-api/internal/domain"
	"github.com/jhoicas/lp-label-api/internal/domain/label"
)

// respondError traduce errores de dominio a status HTTP + dto.ErrorResponse.
func respondError(c *fiber.Ctx, log zerolog.Logger, err error) error {
	var cfgErr *label.ConfigError
	switch {
	case errors.As(err, &cfgErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: cfgErr.Code, Message: cfgErr.Message})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrPrinterNotConfigured):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRINTER_NOT_CONFIGURED", Message: domain.ErrPrinterNotConfigured.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.Is(err, domain.ErrPrinterOffline):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "PRINTER_OFFLINE", Message: err.Error()})
	case errors.Is(err, domain.ErrPrinterTimeout):
		return c.Status(fiber.StatusGatewayTimeout).JSON(dto.ErrorResponse{Code: "PRINTER_TIMEOUT", Message: err.Error()})
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

// requireCompany responde 401 si el token no trae empresa.
func requireCompany(c *fiber.Ctx) (string, bool) {
	companyID := GetCompanyID(c)
	if companyID == "" {
		_ = c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
		return "", false
	}
	return companyID, true
}
