package label

import (
	"github.com/jhoicas/lp-label-api/internal/domain/entity"
)

// absentMode qué hacer cuando el dato opcional no viene.
type absentMode int

const (
	absentPlaceholder absentMode = iota // imprimir el placeholder
	absentOmit                          // no emitir la línea
)

// fieldRule regla de render de una línea de texto.
//
//	presente               → Prefix + valor
//	ausente + placeholder  → Prefix + Placeholder
//	ausente + omit         → sin línea
type fieldRule struct {
	Name        string
	Prefix      string
	Placeholder string
	Absent      absentMode
	MaxChars    int // 0 = sin límite
}

// optional valor de un campo opcional ya formateado.
type optional struct {
	Value   string
	Present bool
}

func some(v string) optional { return optional{Value: v, Present: true} }

func none() optional { return optional{} }

func str(p *string) optional {
	if p == nil {
		return none()
	}
	return some(*p)
}

// render devuelve el texto de la línea y si debe emitirse.
func (r fieldRule) render(v optional) (string, bool) {
	var val string
	switch {
	case v.Present:
		val = clean(v.Value)
		if r.MaxChars > 0 {
			val = truncate(val, r.MaxChars)
		}
	case r.Absent == absentPlaceholder:
		val = r.Placeholder
	default:
		return "", false
	}
	return r.Prefix + val, true
}

// Reglas por línea, en el orden de impresión.
var (
	ruleProduct     = fieldRule{Name: "product", Placeholder: "--", MaxChars: MaxProductNameChars}
	ruleBatch       = fieldRule{Name: "batch", Prefix: "Batch: ", Placeholder: "--"}
	ruleExpiry      = fieldRule{Name: "expiry", Prefix: "Exp: ", Placeholder: "N/A"}
	ruleManufacture = fieldRule{Name: "manufacture", Prefix: "Mfg: ", Absent: absentOmit}
	ruleQuantity    = fieldRule{Name: "quantity", Placeholder: "--"}
	ruleWarehouse   = fieldRule{Name: "warehouse", Placeholder: "--"}
	ruleLocation    = fieldRule{Name: "location", Placeholder: "Unassigned"}
)

// textLine línea de texto resuelta con su fuente.
type textLine struct {
	Text  string
	Title bool
}

// textLines resuelve las líneas de texto de la LP en orden de arriba hacia abajo.
func textLines(lp *entity.LicensePlate) []textLine {
	lines := make([]textLine, 0, 6)
	add := func(r fieldRule, v optional, title bool) {
		if s, ok := r.render(v); ok {
			lines = append(lines, textLine{Text: s, Title: title})
		}
	}

	add(ruleProduct, str(lp.ProductName), true)
	add(ruleBatch, str(lp.BatchNumber), false)
	add(ruleExpiry, dateOpt(lp), false)
	add(ruleManufacture, mfgOpt(lp), false)
	add(ruleQuantity, quantityOpt(lp), false)

	wh, _ := ruleWarehouse.render(str(lp.WarehouseCode))
	loc, _ := ruleLocation.render(str(lp.LocationName))
	lines = append(lines, textLine{Text: wh + " / " + loc})
	return lines
}

func dateOpt(lp *entity.LicensePlate) optional {
	if lp.ExpiryDate == nil {
		return none()
	}
	return some(formatDate(*lp.ExpiryDate))
}

func mfgOpt(lp *entity.LicensePlate) optional {
	if lp.ManufactureDate == nil {
		return none()
	}
	return some(formatDate(*lp.ManufactureDate))
}

func quantityOpt(lp *entity.LicensePlate) optional {
	if !lp.Quantity.Valid {
		return none()
	}
	q := formatQuantity(lp.Quantity.Decimal)
	if lp.UoM != nil && *lp.UoM != "" {
		q += " " + *lp.UoM
	}
	return some(q)
}
