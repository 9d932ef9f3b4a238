package repository

import (
	"context"

	"github.com/jhoicas/lp-label-api/internal/domain/entity"
)

// LicensePlateRepository puerto de lectura de license plates para etiquetas (DIP).
// Todas las consultas van acotadas a la empresa (multi-tenant).
type LicensePlateRepository interface {
	// GetByID devuelve (nil, nil) si la LP no existe en la empresa.
	GetByID(ctx context.Context, companyID, id string) (*entity.LicensePlate, error)
	// ListByIDs devuelve las LPs encontradas, sin orden garantizado.
	ListByIDs(ctx context.Context, companyID string, ids []string) ([]*entity.LicensePlate, error)
}
