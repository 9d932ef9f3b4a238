package labels

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/lp-label-api/internal/application/dto"
	"github.com/jhoicas/lp-label-api/internal/domain"
	"github.com/jhoicas/lp-label-api/internal/domain/label"
	"github.com/jhoicas/lp-label-api/internal/domain/repository"
)

// PreviewUseCase genera la vista previa PDF de la etiqueta de una LP.
type PreviewUseCase struct {
	repo      repository.LicensePlateRepository
	gen       *label.ZPLGenerator
	generator PreviewGenerator
	defaults  Defaults
	log       zerolog.Logger
}

// NewPreviewUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPreviewUseCase(
	repo repository.LicensePlateRepository,
	gen *label.ZPLGenerator,
	generator PreviewGenerator,
	defaults Defaults,
	log zerolog.Logger,
) *PreviewUseCase {
	return &PreviewUseCase{repo: repo, gen: gen, generator: generator, defaults: defaults, log: log}
}

// Preview devuelve (pdfBytes, filename). size vacío toma el tamaño por defecto.
func (uc *PreviewUseCase) Preview(ctx context.Context, companyID, lpID, size string) ([]byte, string, error) {
	id, err := normalizeID(lpID)
	if err != nil {
		return nil, "", err
	}
	opts := dto.PrintOptions{}
	if size != "" {
		opts.LabelSize = &size
	}
	cfg := resolveConfig(opts, uc.defaults)
	if err := uc.gen.Validate(cfg); err != nil {
		return nil, "", err
	}

	lp, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, "", fmt.Errorf("preview: obtener LP: %w", err)
	}
	if lp == nil {
		return nil, "", domain.ErrNotFound
	}

	pdf, err := uc.generator.GenerateLabelPreview(ctx, lp, cfg)
	if err != nil {
		return nil, "", fmt.Errorf("preview: generación fallida: %w", err)
	}

	uc.log.Debug().
		Str("lp_number", lp.LPNumber).
		Str("label_size", string(cfg.Size)).
		Int("bytes", len(pdf)).
		Msg("vista previa generada")

	return pdf, safeFilename(lp.LPNumber) + "-preview.pdf", nil
}
