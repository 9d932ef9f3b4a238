// Package pdf genera la vista previa de una etiqueta de LP a tamaño real.
//
// La página tiene exactamente las dimensiones de la etiqueta:
//
//	┌──────────────────────────────┐
//	│  Producto (título)           │
//	│  Lote / Vence / Fabricación  │
//	│  Cantidad / Bodega - Ubic.   │
//	│  ───────────────────────     │
//	│  ║║│║║│║║ CODE128            │
//	│     LP NUMBER                │
//	│  [QR]   (opcional)           │
//	└──────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/lp-label-api/internal/domain/entity"
	"github.com/jhoicas/lp-label-api/internal/domain/label"
)

const mmPerInch = 25.4

var colorGray = &props.Color{Red: 90, Green: 90, Blue: 90}

// previewStyle tamaños en puntos / mm por tamaño de etiqueta.
type previewStyle struct {
	Margin     float64
	TitleSize  float64
	BodySize   float64
	TitleRow   float64
	BodyRow    float64
	BarcodeRow float64
	QRRow      float64
}

var styles = map[label.LabelSize]previewStyle{
	label.Size4x6: {Margin: 5, TitleSize: 20, BodySize: 12, TitleRow: 10, BodyRow: 6.5, BarcodeRow: 22, QRRow: 40},
	label.Size4x3: {Margin: 4, TitleSize: 14, BodySize: 9, TitleRow: 7, BodyRow: 4.5, BarcodeRow: 13, QRRow: 0},
	label.Size3x2: {Margin: 3, TitleSize: 10, BodySize: 7, TitleRow: 5, BodyRow: 3.5, BarcodeRow: 9, QRRow: 0},
}

// MarotoLabelPreview implementa labels.PreviewGenerator usando Maroto v2.
type MarotoLabelPreview struct{}

// NewMarotoLabelPreview construye el generador.
func NewMarotoLabelPreview() *MarotoLabelPreview { return &MarotoLabelPreview{} }

// GenerateLabelPreview genera un PDF de una página con el contenido de la etiqueta.
// El texto es el mismo que imprime el ZPL (incluidos placeholders y truncado).
func (g *MarotoLabelPreview) GenerateLabelPreview(_ context.Context, lp *entity.LicensePlate, cfg label.PrintConfig) ([]byte, error) {
	if lp == nil {
		return nil, fmt.Errorf("pdf: license plate nil")
	}
	info, ok := sizeInfo(cfg.Size)
	if !ok {
		return nil, label.ErrInvalidSize
	}
	st := styles[cfg.Size]

	mcfg := config.NewBuilder().
		WithDimensions(info.WidthInch*mmPerInch, info.HeightInch*mmPerInch).
		WithLeftMargin(st.Margin).WithRightMargin(st.Margin).
		WithTopMargin(st.Margin).WithBottomMargin(st.Margin).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: st.BodySize}).
		WithTitle("Etiqueta "+lp.LPNumber, true).
		Build()

	m := maroto.New(mcfg)
	m.AddRows(textRows(lp, st)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(barcodeRows(lp, st)...)

	if cfg.IncludeQR {
		qr, err := qrRow(lp, st)
		if err != nil {
			return nil, err
		}
		m.AddRows(qr)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar vista previa: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func textRows(lp *entity.LicensePlate, st previewStyle) []core.Row {
	lines := label.Lines(lp)
	rows := make([]core.Row, 0, len(lines))
	for i, l := range lines {
		if i == 0 {
			rows = append(rows, row.New(st.TitleRow).Add(col.New(12).Add(
				text.New(l, props.Text{Style: fontstyle.Bold, Size: st.TitleSize}),
			)))
			continue
		}
		rows = append(rows, row.New(st.BodyRow).Add(col.New(12).Add(
			text.New(l, props.Text{Size: st.BodySize}),
		)))
	}
	return rows
}

// barcodeRows CODE128 con su línea de interpretación, como ^BCN,...,Y.
func barcodeRows(lp *entity.LicensePlate, st previewStyle) []core.Row {
	return []core.Row{
		row.New(st.BarcodeRow).Add(col.New(12).Add(
			code.NewBar(lp.LPNumber, props.Barcode{Percent: 90, Center: true}),
		)),
		row.New(st.BodyRow).Add(col.New(12).Add(
			text.New(lp.LPNumber, props.Text{Size: st.BodySize, Align: align.Center}),
		)),
	}
}

// qrRow en tamaños pequeños la altura se deriva de la del código de barras.
func qrRow(lp *entity.LicensePlate, st previewStyle) (core.Row, error) {
	payload, err := label.NewQRPayload(lp).JSON()
	if err != nil {
		return nil, fmt.Errorf("pdf: payload QR: %w", err)
	}
	height := st.QRRow
	if height == 0 {
		height = st.BarcodeRow * 2
	}
	return row.New(height).Add(
		col.New(4).Add(code.NewQr(payload, props.Rect{Percent: 95, Center: true})),
		col.New(8),
	), nil
}

func sizeInfo(s label.LabelSize) (label.SizeInfo, bool) {
	for _, info := range label.SupportedSizes() {
		if info.Size == s {
			return info, true
		}
	}
	return label.SizeInfo{}, false
}
