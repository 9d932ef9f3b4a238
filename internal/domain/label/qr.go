package label

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/lp-label-api/internal/domain/entity"
)

// QRPayload datos para el escáner. Solo estas seis claves y en este orden;
// bodega, ubicación y estados ya van en texto legible.
type QRPayload struct {
	LPNumber    string       `json:"lp_number"`
	ProductCode *string      `json:"product_code"`
	Batch       *string      `json:"batch"`
	Expiry      *string      `json:"expiry"`
	Quantity    *json.Number `json:"quantity"`
	UoM         *string      `json:"uom"`
}

// NewQRPayload toma los valores de la LP tal cual (cantidad como número JSON).
func NewQRPayload(lp *entity.LicensePlate) QRPayload {
	p := QRPayload{
		LPNumber:    lp.LPNumber,
		ProductCode: lp.ProductCode,
		Batch:       lp.BatchNumber,
		UoM:         lp.UoM,
	}
	if lp.ExpiryDate != nil {
		s := formatDate(*lp.ExpiryDate)
		p.Expiry = &s
	}
	if lp.Quantity.Valid {
		n := json.Number(lp.Quantity.Decimal.String())
		p.Quantity = &n
	}
	return p
}

// JSON serializa el payload en una sola línea.
func (p QRPayload) JSON() (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("label: serializar payload QR: %w", err)
	}
	return string(b), nil
}
