package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrForbidden    = errors.New("acceso denegado")

	// Errores de despacho a impresora (puerto RAW 9100).
	ErrPrinterNotConfigured = errors.New("No printer configured")
	ErrPrinterOffline       = errors.New("impresora fuera de línea")
	ErrPrinterTimeout       = errors.New("tiempo de espera agotado con la impresora")
)
