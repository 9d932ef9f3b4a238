package labels

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/lp-label-api/internal/application/dto"
	"github.com/jhoicas/lp-label-api/internal/domain"
	"github.com/jhoicas/lp-label-api/internal/domain/entity"
	"github.com/jhoicas/lp-label-api/internal/domain/label"
	"github.com/jhoicas/lp-label-api/internal/domain/repository"
)

// Defaults valores que aplica la API cuando la petición no trae tamaño o QR.
type Defaults struct {
	Size      label.LabelSize
	IncludeQR bool
}

// PrintUseCase genera documentos ZPL para una o varias LPs de la empresa.
type PrintUseCase struct {
	repo     repository.LicensePlateRepository
	gen      *label.ZPLGenerator
	defaults Defaults
	log      zerolog.Logger
	now      func() time.Time
}

// NewPrintUseCase construye el caso de uso.
func NewPrintUseCase(
	repo repository.LicensePlateRepository,
	gen *label.ZPLGenerator,
	defaults Defaults,
	log zerolog.Logger,
) *PrintUseCase {
	return &PrintUseCase{repo: repo, gen: gen, defaults: defaults, log: log, now: time.Now}
}

// PrintLabel genera la etiqueta de una LP.
//
// Retorna:
//   - *label.ConfigError      si tamaño o copias son inválidos (antes de tocar la BD).
//   - domain.ErrInvalidInput  si el id no es un UUID.
//   - domain.ErrNotFound      si la LP no existe en la empresa.
func (uc *PrintUseCase) PrintLabel(ctx context.Context, companyID, lpID string, in dto.PrintLabelRequest) (*dto.PrintLabelResponse, error) {
	id, err := normalizeID(lpID)
	if err != nil {
		return nil, err
	}
	cfg := resolveConfig(in.PrintOptions, uc.defaults)
	if err := uc.gen.Validate(cfg); err != nil {
		return nil, err
	}

	lp, err := uc.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, fmt.Errorf("labels: obtener LP: %w", err)
	}
	if lp == nil {
		return nil, domain.ErrNotFound
	}

	zpl, err := uc.gen.Generate(lp, cfg)
	if err != nil {
		return nil, fmt.Errorf("labels: generar ZPL: %w", err)
	}

	uc.log.Info().
		Str("company_id", companyID).
		Str("lp_number", lp.LPNumber).
		Str("label_size", string(cfg.Size)).
		Int("copies", cfg.Copies).
		Bool("include_qr", cfg.IncludeQR).
		Msg("etiqueta generada")

	return &dto.PrintLabelResponse{
		ZPL:              zpl,
		LPNumber:         lp.LPNumber,
		ProductName:      lp.DisplayName(),
		Copies:           cfg.Copies,
		LabelSize:        string(cfg.Size),
		IncludeQR:        cfg.IncludeQR,
		GeneratedAt:      uc.now().UTC(),
		DownloadFilename: safeFilename(lp.LPNumber) + ".zpl",
	}, nil
}

// PrintBulk genera un documento con un bloque por LP, en el orden de la petición.
// La cantidad se valida antes de cualquier consulta; si falta una sola LP falla todo el lote.
func (uc *PrintUseCase) PrintBulk(ctx context.Context, companyID string, in dto.BulkPrintRequest) (*dto.BulkPrintResponse, error) {
	if err := label.ValidateCount(len(in.LPIDs)); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(in.LPIDs))
	seen := make(map[string]bool, len(in.LPIDs))
	for _, raw := range in.LPIDs {
		id, err := normalizeID(raw)
		if err != nil {
			return nil, err
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: lp_id duplicado %s", domain.ErrInvalidInput, id)
		}
		seen[id] = true
		ids = append(ids, id)
	}
	cfg := resolveConfig(in.PrintOptions, uc.defaults)
	if err := uc.gen.Validate(cfg); err != nil {
		return nil, err
	}

	found, err := uc.repo.ListByIDs(ctx, companyID, ids)
	if err != nil {
		return nil, fmt.Errorf("labels: listar LPs: %w", err)
	}
	byID := make(map[string]*entity.LicensePlate, len(found))
	for _, lp := range found {
		byID[strings.ToLower(lp.ID)] = lp
	}

	ordered := make([]*entity.LicensePlate, 0, len(ids))
	numbers := make([]string, 0, len(ids))
	var missing []string
	for _, id := range ids {
		lp, ok := byID[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		ordered = append(ordered, lp)
		numbers = append(numbers, lp.LPNumber)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: LPs no encontradas: %s", domain.ErrNotFound, strings.Join(missing, ", "))
	}

	zpl, err := uc.gen.GenerateBulk(ordered, cfg)
	if err != nil {
		return nil, fmt.Errorf("labels: generar ZPL masivo: %w", err)
	}

	now := uc.now().UTC()
	uc.log.Info().
		Str("company_id", companyID).
		Int("label_count", len(ordered)).
		Int("copies", cfg.Copies).
		Str("label_size", string(cfg.Size)).
		Msg("etiquetas masivas generadas")

	return &dto.BulkPrintResponse{
		ZPL:              zpl,
		LPNumbers:        numbers,
		LabelCount:       len(ordered),
		Copies:           cfg.Copies,
		TotalLabels:      len(ordered) * cfg.Copies,
		LabelSize:        string(cfg.Size),
		IncludeQR:        cfg.IncludeQR,
		GeneratedAt:      now,
		DownloadFilename: "labels-" + now.Format("20060102-150405") + ".zpl",
	}, nil
}

// Validate verifica las opciones sin generar nada.
func (uc *PrintUseCase) Validate(in dto.PrintOptions) (*dto.ValidatePrintResponse, error) {
	cfg := resolveConfig(in, uc.defaults)
	if err := uc.gen.Validate(cfg); err != nil {
		return nil, err
	}
	return &dto.ValidatePrintResponse{
		Valid:     true,
		LabelSize: string(cfg.Size),
		Copies:    cfg.Copies,
		IncludeQR: cfg.IncludeQR,
	}, nil
}

// Sizes catálogo de tamaños soportados.
func (uc *PrintUseCase) Sizes() []dto.LabelSizeDTO {
	sizes := label.SupportedSizes()
	out := make([]dto.LabelSizeDTO, 0, len(sizes))
	for _, s := range sizes {
		out = append(out, dto.LabelSizeDTO{
			Size:       string(s.Size),
			WidthInch:  s.WidthInch,
			HeightInch: s.HeightInch,
			WidthDots:  s.Dots.Width,
			HeightDots: s.Dots.Height,
		})
	}
	return out
}

// resolveConfig aplica los valores por defecto; no valida.
func resolveConfig(o dto.PrintOptions, d Defaults) label.PrintConfig {
	cfg := label.PrintConfig{Size: d.Size, Copies: 1, IncludeQR: d.IncludeQR}
	if o.LabelSize != nil {
		cfg.Size = label.LabelSize(strings.TrimSpace(*o.LabelSize))
	}
	if o.Copies != nil {
		cfg.Copies = *o.Copies
	}
	if o.IncludeQR != nil {
		cfg.IncludeQR = *o.IncludeQR
	}
	return cfg
}

// normalizeID valida el UUID y lo devuelve en forma canónica (minúsculas).
func normalizeID(raw string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: id de LP inválido %q", domain.ErrInvalidInput, raw)
	}
	return id.String(), nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func safeFilename(s string) string {
	s = unsafeFilenameChars.ReplaceAllString(s, "_")
	if s == "" {
		return "label"
	}
	return s
}
