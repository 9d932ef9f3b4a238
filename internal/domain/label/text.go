package label

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

// MaxProductNameChars corte duro del nombre de producto (ancho físico de la etiqueta).
const MaxProductNameChars = 40

// dateLayout formato de fechas impresas y del payload QR.
const dateLayout = "2006-01-02"

// hexIndicators candidatos para ^FH, en orden de preferencia. '_' es el
// valor por defecto de la impresora y se emite como ^FH sin parámetro.
const hexIndicators = "_\\|#"

// clean normaliza a NFC y reemplaza caracteres de control por espacios,
// para que un salto de línea en los datos no rompa el bloque ZPL.
func clean(s string) string {
	s = norm.NFC.String(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}

// truncate corta s a max caracteres (runas), sin elipsis ni respeto de palabras.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

// needsHex indica si s contiene caracteres que ZPL interpretaría como comandos.
func needsHex(s string) bool {
	return strings.ContainsAny(s, "^~")
}

// pickIndicator elige el primer indicador que no aparece en s. Si todos
// aparecen se usa '_' y el propio indicador también se codifica.
func pickIndicator(s string) rune {
	for _, r := range hexIndicators {
		if !strings.ContainsRune(s, r) {
			return r
		}
	}
	return '_'
}

// escapeHex codifica ^, ~ y el indicador como <ind><hex> (p. ej. _5E, \7E).
func escapeHex(s string, ind rune) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, r := range s {
		switch r {
		case '^', '~', ind:
			fmt.Fprintf(&b, "%c%02X", ind, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// fieldData arma ^FD…^FS. ^FH solo se antepone cuando hay ^ o ~; el resto
// de los datos (incluido '_') viaja literal.
func fieldData(s string) string {
	if !needsHex(s) {
		return "^FD" + s + "^FS"
	}
	ind := pickIndicator(s)
	fh := "^FH"
	if ind != '_' {
		fh += string(ind)
	}
	return fh + "^FD" + escapeHex(s, ind) + "^FS"
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// formatQuantity usa siempre un decimal para que las etiquetas queden alineadas.
func formatQuantity(q decimal.Decimal) string {
	return q.StringFixed(1)
}
