package labels

import (
	"context"

	"github.com/jhoicas/lp-label-api/internal/domain/entity"
	"github.com/jhoicas/lp-label-api/internal/domain/label"
)

// PreviewGenerator genera la vista previa (PDF) de una etiqueta a tamaño real.
type PreviewGenerator interface {
	GenerateLabelPreview(ctx context.Context, lp *entity.LicensePlate, cfg label.PrintConfig) ([]byte, error)
}

// PrinterClient envía un documento ZPL a una impresora por RAW TCP.
// Devuelve los bytes escritos; los errores envuelven domain.ErrPrinterOffline o domain.ErrPrinterTimeout.
type PrinterClient interface {
	Send(ctx context.Context, addr, zpl string) (int, error)
}
