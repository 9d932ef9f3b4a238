package labels

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/lp-label-api/internal/application/dto"
	"github.com/jhoicas/lp-label-api/internal/domain"
	"github.com/jhoicas/lp-label-api/internal/domain/label"
)

// DispatchUseCase envía documentos ZPL ya generados a las impresoras configuradas.
type DispatchUseCase struct {
	client    PrinterClient
	printers  map[string]string // id → host:port
	defaultID string
	log       zerolog.Logger
	now       func() time.Time
}

// NewDispatchUseCase construye el caso de uso. printers puede estar vacío.
func NewDispatchUseCase(client PrinterClient, printers map[string]string, defaultID string, log zerolog.Logger) *DispatchUseCase {
	return &DispatchUseCase{
		client:    client,
		printers:  printers,
		defaultID: defaultID,
		log:       log,
		now:       time.Now,
	}
}

// Send valida que el documento sea una secuencia de bloques completos y lo envía.
//
// Retorna:
//   - domain.ErrInvalidInput          documento vacío o mal formado.
//   - domain.ErrPrinterNotConfigured  sin impresora por defecto o id desconocido.
//   - domain.ErrPrinterOffline        conexión rechazada.
//   - domain.ErrPrinterTimeout        la impresora no respondió a tiempo.
func (uc *DispatchUseCase) Send(ctx context.Context, in dto.PrintJobRequest) (*dto.PrintJobResponse, error) {
	if strings.TrimSpace(in.ZPL) == "" {
		return nil, fmt.Errorf("%w: zpl es requerido", domain.ErrInvalidInput)
	}
	blocks, err := label.SplitDocument(in.ZPL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	printerID := strings.TrimSpace(in.PrinterID)
	if printerID == "" {
		printerID = uc.defaultID
	}
	if printerID == "" {
		return nil, domain.ErrPrinterNotConfigured
	}
	addr, ok := uc.printers[printerID]
	if !ok {
		return nil, fmt.Errorf("%w: impresora %q desconocida", domain.ErrPrinterNotConfigured, printerID)
	}

	n, err := uc.client.Send(ctx, addr, in.ZPL)
	if err != nil {
		uc.log.Warn().Err(err).Str("printer_id", printerID).Msg("envío a impresora fallido")
		return nil, fmt.Errorf("impresora %s: %w", printerID, err)
	}

	uc.log.Info().
		Str("printer_id", printerID).
		Int("labels", len(blocks)).
		Int("bytes", n).
		Msg("documento enviado a impresora")

	return &dto.PrintJobResponse{
		PrinterID: printerID,
		Labels:    len(blocks),
		Bytes:     n,
		SentAt:    uc.now().UTC(),
	}, nil
}
