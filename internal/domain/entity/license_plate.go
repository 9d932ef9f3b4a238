package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LPStatus estado del ciclo de vida de una license plate.
type LPStatus string

const (
	LPStatusAvailable LPStatus = "available"
	LPStatusReserved  LPStatus = "reserved"
	LPStatusConsumed  LPStatus = "consumed"
	LPStatusBlocked   LPStatus = "blocked"
)

// QAStatus disposición de calidad. Viaja con la LP pero la etiqueta no la usa.
type QAStatus string

const (
	QAStatusPending    QAStatus = "pending"
	QAStatusPassed     QAStatus = "passed"
	QAStatusFailed     QAStatus = "failed"
	QAStatusQuarantine QAStatus = "quarantine"
)

// LicensePlate representa una unidad de carga (pallet/contenedor) identificada
// por su lp_number, ya enriquecida con producto, ubicación y bodega.
// Todos los campos salvo ID y LPNumber pueden venir vacíos (nil / Valid=false).
type LicensePlate struct {
	ID        string
	CompanyID string
	LPNumber  string

	ProductCode *string
	ProductName *string

	Quantity decimal.NullDecimal
	UoM      *string

	BatchNumber     *string
	ExpiryDate      *time.Time
	ManufactureDate *time.Time

	LocationCode  *string
	LocationName  *string
	WarehouseCode *string
	WarehouseName *string

	Status   LPStatus
	QAStatus QAStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayName devuelve el nombre del producto o "" si la LP no tiene producto.
func (lp *LicensePlate) DisplayName() string {
	if lp == nil || lp.ProductName == nil {
		return ""
	}
	return *lp.ProductName
}
