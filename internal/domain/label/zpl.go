// Package label genera etiquetas ZPL II para license plates (impresoras Zebra 203 dpi).
//
// Estructura de un bloque (una etiqueta):
//
//	^XA                         inicio de formato
//	^PW<ancho> ^LL<alto>        área de impresión en dots
//	^FO^A0N^FD^FS  × n          producto, lote, vencimiento, fabricación, cantidad, bodega/ubicación
//	^FO^BY^BCN^FD^FS            CODE128 con el lp_number
//	^FO^BQN^FDQA,<json>^FS      QR opcional
//	^PQ<copias>
//	^XZ                         fin de formato
//
// Un documento masivo es la concatenación de bloques completos; nunca se anidan.
// El generador es una función pura: misma entrada, mismos bytes.
package label

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/lp-label-api/internal/domain/entity"
)

// Marcadores de formato.
const (
	StartMarker = "^XA"
	EndMarker   = "^XZ"
)

// ZPLGenerator genera documentos ZPL. No tiene estado; es seguro para uso concurrente.
type ZPLGenerator struct{}

// NewZPLGenerator crea el generador.
func NewZPLGenerator() *ZPLGenerator {
	return &ZPLGenerator{}
}

// Validate verifica la configuración antes de cualquier trabajo de layout.
func (g *ZPLGenerator) Validate(cfg PrintConfig) error {
	return validateConfig(cfg)
}

// Generate genera el bloque de una sola etiqueta.
func (g *ZPLGenerator) Generate(lp *entity.LicensePlate, cfg PrintConfig) (string, error) {
	if err := validateConfig(cfg); err != nil {
		return "", err
	}
	if lp == nil {
		return "", fmt.Errorf("%w: license plate nula", ErrNoRecords)
	}
	var b strings.Builder
	if err := writeBlock(&b, lp, cfg); err != nil {
		return "", err
	}
	return b.String(), nil
}

// GenerateBulk genera un bloque por LP, en orden, con la misma configuración.
// Falla completo (sin salida parcial) si la cantidad o la configuración son inválidas.
func (g *ZPLGenerator) GenerateBulk(lps []*entity.LicensePlate, cfg PrintConfig) (string, error) {
	if err := ValidateCount(len(lps)); err != nil {
		return "", err
	}
	if err := validateConfig(cfg); err != nil {
		return "", err
	}
	for i, lp := range lps {
		if lp == nil {
			return "", fmt.Errorf("%w: license plate nula en posición %d", ErrNoRecords, i)
		}
	}

	var b strings.Builder
	b.Grow(len(lps) * 512)
	for _, lp := range lps {
		if err := writeBlock(&b, lp, cfg); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// Lines devuelve las líneas de texto legibles tal como se imprimen (sin escapes ZPL).
func Lines(lp *entity.LicensePlate) []string {
	tl := textLines(lp)
	out := make([]string, len(tl))
	for i, l := range tl {
		out[i] = l.Text
	}
	return out
}

func writeBlock(b *strings.Builder, lp *entity.LicensePlate, cfg PrintConfig) error {
	l := layouts[cfg.Size]

	b.WriteString(StartMarker + "\n")
	fmt.Fprintf(b, "^PW%d\n", l.Width)
	fmt.Fprintf(b, "^LL%d\n", l.Height)

	y := l.Margin
	for _, line := range textLines(lp) {
		font := l.BodyFont
		if line.Title {
			font = l.TitleFont
		}
		fmt.Fprintf(b, "^FO%d,%d^A0N,%d,%d%s\n", l.Margin, y, font, font, fieldData(line.Text))
		y += font + l.LineGap
	}

	barcodeY := y + l.LineGap
	fmt.Fprintf(b, "^FO%d,%d^BY%d^BCN,%d,Y,N,N%s\n",
		l.Margin, barcodeY, l.ModuleWidth, l.BarcodeHeight, fieldData(clean(lp.LPNumber)))

	if cfg.IncludeQR {
		payload, err := NewQRPayload(lp).JSON()
		if err != nil {
			return err
		}
		x, qy := l.QRX, barcodeY
		if l.QRBelow {
			x, qy = l.Margin, barcodeY+l.BarcodeHeight+l.BarcodeGap
		}
		fmt.Fprintf(b, "^FO%d,%d^BQN,2,%d%s\n", x, qy, l.QRMag, fieldData("QA,"+payload))
	}

	fmt.Fprintf(b, "^PQ%d\n", cfg.Copies)
	b.WriteString(EndMarker + "\n")
	return nil
}

// ErrMalformedDocument el documento no es una secuencia de bloques ^XA…^XZ completos.
var ErrMalformedDocument = errors.New("documento ZPL mal formado")

// SplitDocument corta un documento en sus bloques completos. Concatenar el
// resultado reproduce el documento original (salvo espacios entre bloques).
func SplitDocument(doc string) ([]string, error) {
	var blocks []string
	rest := doc
	for {
		trimmed := strings.TrimLeft(rest, " \t\r\n")
		if trimmed == "" {
			break
		}
		if !strings.HasPrefix(trimmed, StartMarker) {
			return nil, fmt.Errorf("%w: se esperaba %s", ErrMalformedDocument, StartMarker)
		}
		end := strings.Index(trimmed, EndMarker)
		if end < 0 {
			return nil, fmt.Errorf("%w: falta %s", ErrMalformedDocument, EndMarker)
		}
		if strings.Contains(trimmed[len(StartMarker):end], StartMarker) {
			return nil, fmt.Errorf("%w: %s anidado", ErrMalformedDocument, StartMarker)
		}
		end += len(EndMarker)
		if strings.HasPrefix(trimmed[end:], "\n") {
			end++
		}
		blocks = append(blocks, trimmed[:end])
		rest = trimmed[end:]
	}
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%w: documento vacío", ErrMalformedDocument)
	}
	return blocks, nil
}
