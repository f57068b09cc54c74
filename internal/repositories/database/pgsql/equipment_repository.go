package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	portsrepo "github.com/SscSPs/treeservice_ops/internal/core/ports/repositories"
	"github.com/SscSPs/treeservice_ops/internal/models"
	"github.com/SscSPs/treeservice_ops/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEquipmentRepository struct {
	BaseRepository
}

func newPgxEquipmentRepository(pool *pgxpool.Pool) portsrepo.EquipmentRepositoryFacade {
	return &PgxEquipmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EquipmentRepositoryFacade = (*PgxEquipmentRepository)(nil)

const (
	selectEquipmentFields = `
		equipment_id, company_id, name, category, make, model, year, purchase_price,
		useful_life_years, salvage_value, annual_operating_hours, fuel_consumption_per_hour,
		fuel_price_per_gallon, annual_maintenance_cost, annual_other_costs, overhead_multiplier,
		hourly_cost, status, created_at, created_by, last_updated_at, last_updated_by`

	insertEquipmentQuery = `
		INSERT INTO equipment (` + selectEquipmentFields + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22)`

	updateEquipmentQuery = `
		UPDATE equipment
		SET name = $2, category = $3, make = $4, model = $5, year = $6, purchase_price = $7,
			useful_life_years = $8, salvage_value = $9, annual_operating_hours = $10,
			fuel_consumption_per_hour = $11, fuel_price_per_gallon = $12,
			annual_maintenance_cost = $13, annual_other_costs = $14, overhead_multiplier = $15,
			hourly_cost = $16, status = $17, last_updated_at = $18, last_updated_by = $19
		WHERE equipment_id = $1`
)

func scanEquipment(row pgx.Row) (domain.Equipment, error) {
	var m models.Equipment
	err := row.Scan(
		&m.EquipmentID, &m.CompanyID, &m.Name, &m.Category, &m.Make, &m.Model, &m.Year, &m.PurchasePrice,
		&m.UsefulLifeYears, &m.SalvageValue, &m.AnnualOperatingHours, &m.FuelConsumptionPerHour,
		&m.FuelPricePerGallon, &m.AnnualMaintenanceCost, &m.AnnualOtherCosts, &m.OverheadMultiplier,
		&m.HourlyCost, &m.Status, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return domain.Equipment{}, err
	}
	return mapping.ToDomainEquipment(m), nil
}

// SaveEquipment inserts a new machine with its computed hourly cost.
func (r *PgxEquipmentRepository) SaveEquipment(ctx context.Context, equipment domain.Equipment) error {
	m := mapping.ToModelEquipment(equipment)
	_, err := r.Pool.Exec(ctx, insertEquipmentQuery,
		m.EquipmentID, m.CompanyID, m.Name, m.Category, m.Make, m.Model, m.Year, m.PurchasePrice,
		m.UsefulLifeYears, m.SalvageValue, m.AnnualOperatingHours, m.FuelConsumptionPerHour,
		m.FuelPricePerGallon, m.AnnualMaintenanceCost, m.AnnualOtherCosts, m.OverheadMultiplier,
		m.HourlyCost, m.Status, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save equipment %s: %w", m.EquipmentID, err)
	}
	return nil
}

// UpdateEquipment rewrites the machine and refreshes every loadout containing it.
func (r *PgxEquipmentRepository) UpdateEquipment(ctx context.Context, equipment domain.Equipment) error {
	m := mapping.ToModelEquipment(equipment)
	return r.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, updateEquipmentQuery,
			m.EquipmentID, m.Name, m.Category, m.Make, m.Model, m.Year, m.PurchasePrice,
			m.UsefulLifeYears, m.SalvageValue, m.AnnualOperatingHours, m.FuelConsumptionPerHour,
			m.FuelPricePerGallon, m.AnnualMaintenanceCost, m.AnnualOtherCosts, m.OverheadMultiplier,
			m.HourlyCost, m.Status, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to update equipment %s: %w", m.EquipmentID, err)
		}
		if err := expectOneRow(tag, "equipment", m.EquipmentID); err != nil {
			return err
		}
		return refreshLoadoutCosts(ctx, tx, "equipment_ids", m.EquipmentID, m.LastUpdatedBy, m.LastUpdatedAt)
	})
}

// FindEquipmentByID retrieves a machine by its ID.
func (r *PgxEquipmentRepository) FindEquipmentByID(ctx context.Context, equipmentID string) (*domain.Equipment, error) {
	e, err := scanEquipment(r.Pool.QueryRow(ctx,
		`SELECT `+selectEquipmentFields+` FROM equipment WHERE equipment_id = $1`, equipmentID))
	if err != nil {
		return nil, notFoundOr(err, "equipment", equipmentID)
	}
	return &e, nil
}

// FindEquipmentByIDs retrieves several machines keyed by ID.
func (r *PgxEquipmentRepository) FindEquipmentByIDs(ctx context.Context, equipmentIDs []string) (map[string]domain.Equipment, error) {
	out := make(map[string]domain.Equipment, len(equipmentIDs))
	if len(equipmentIDs) == 0 {
		return out, nil
	}
	rows, err := r.Pool.Query(ctx, `SELECT `+selectEquipmentFields+` FROM equipment WHERE equipment_id = ANY($1)`, equipmentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to find equipment: %w", err)
	}
	machines, err := collectRows(rows, scanEquipment)
	if err != nil {
		return nil, fmt.Errorf("failed to scan equipment: %w", err)
	}
	for _, e := range machines {
		out[e.EquipmentID] = e
	}
	return out, nil
}

// ListEquipment retrieves an organization's machines, optionally by status.
func (r *PgxEquipmentRepository) ListEquipment(ctx context.Context, companyID string, status domain.EquipmentStatus, page portsrepo.Page) ([]domain.Equipment, error) {
	query := `SELECT ` + selectEquipmentFields + ` FROM equipment WHERE company_id = $1`
	args := []any{companyID}
	if status != "" {
		args = append(args, string(status))
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	query += ` ORDER BY name, equipment_id`
	clause, args := pageClause(page, args)
	query += clause

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	machines, err := collectRows(rows, scanEquipment)
	if err != nil {
		return nil, fmt.Errorf("failed to scan equipment: %w", err)
	}
	return machines, nil
}
