package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/lp-label-api/internal/domain/entity"
	"github.com/jhoicas/lp-label-api/internal/domain/repository"
)

var _ repository.LicensePlateRepository = (*LicensePlateRepo)(nil)

// LicensePlateRepo implementación del puerto LicensePlateRepository sobre PostgreSQL.
type LicensePlateRepo struct {
	db Querier
}

// NewLicensePlateRepository construye el adaptador de lectura de LPs.
func NewLicensePlateRepository(db Querier) *LicensePlateRepo {
	return &LicensePlateRepo{db: db}
}

// selectLabelData une producto, ubicación y bodega; los LEFT JOIN dejan NULL lo que falte.
const selectLabelData = `
	SELECT lp.id, lp.company_id, lp.lp_number,
	       p.code, p.name,
	       lp.quantity, lp.uom, lp.batch_number, lp.expiry_date, lp.manufacture_date,
	       l.code, l.name, w.code, w.name,
	       COALESCE(lp.status::text, ''), COALESCE(lp.qa_status::text, ''),
	       lp.created_at, lp.updated_at
	FROM license_plates lp
	LEFT JOIN products   p ON p.id = lp.product_id
	LEFT JOIN locations  l ON l.id = lp.location_id
	LEFT JOIN warehouses w ON w.id = lp.warehouse_id`

// GetByID obtiene una LP por ID dentro de la empresa.
func (r *LicensePlateRepo) GetByID(ctx context.Context, companyID, id string) (*entity.LicensePlate, error) {
	query := selectLabelData + `
	WHERE lp.company_id = $1 AND lp.id = $2`
	lp, err := scanLicensePlate(r.db.QueryRow(ctx, query, companyID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isInvalidText(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get license plate: %w", err)
	}
	return lp, nil
}

// ListByIDs obtiene varias LPs de la empresa en una sola consulta.
func (r *LicensePlateRepo) ListByIDs(ctx context.Context, companyID string, ids []string) ([]*entity.LicensePlate, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := selectLabelData + `
	WHERE lp.company_id = $1 AND lp.id = ANY($2::uuid[])`
	rows, err := r.db.Query(ctx, query, companyID, ids)
	if err != nil {
		return nil, fmt.Errorf("list license plates: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.LicensePlate, 0, len(ids))
	for rows.Next() {
		lp, err := scanLicensePlate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan license plate: %w", err)
		}
		list = append(list, lp)
	}
	return list, rows.Err()
}

func scanLicensePlate(row pgx.Row) (*entity.LicensePlate, error) {
	var (
		lp               entity.LicensePlate
		status, qaStatus string
	)
	err := row.Scan(
		&lp.ID, &lp.CompanyID, &lp.LPNumber,
		&lp.ProductCode, &lp.ProductName,
		&lp.Quantity, &lp.UoM, &lp.BatchNumber, &lp.ExpiryDate, &lp.ManufactureDate,
		&lp.LocationCode, &lp.LocationName, &lp.WarehouseCode, &lp.WarehouseName,
		&status, &qaStatus,
		&lp.CreatedAt, &lp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	lp.Status = entity.LPStatus(status)
	lp.QAStatus = entity.QAStatus(qaStatus)
	return &lp, nil
}
