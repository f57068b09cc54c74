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

type PgxLoadoutRepository struct {
	BaseRepository
}

func newPgxLoadoutRepository(pool *pgxpool.Pool) portsrepo.LoadoutRepositoryFacade {
	return &PgxLoadoutRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LoadoutRepositoryFacade = (*PgxLoadoutRepository)(nil)

const (
	selectLoadoutFields = `
		loadout_id, company_id, name, description, employee_ids, equipment_ids, production_rates,
		total_hourly_cost, created_at, created_by, last_updated_at, last_updated_by`

	insertLoadoutQuery = `
		INSERT INTO loadouts (` + selectLoadoutFields + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	updateLoadoutQuery = `
		UPDATE loadouts
		SET name = $2, description = $3, employee_ids = $4, equipment_ids = $5, production_rates = $6,
			total_hourly_cost = $7, last_updated_at = $8, last_updated_by = $9
		WHERE loadout_id = $1`
)

func scanLoadout(row pgx.Row) (domain.Loadout, error) {
	var m models.Loadout
	err := row.Scan(
		&m.LoadoutID, &m.CompanyID, &m.Name, &m.Description, &m.EmployeeIDs, &m.EquipmentIDs,
		&m.ProductionRates, &m.TotalHourlyCost, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return domain.Loadout{}, err
	}
	return mapping.ToDomainLoadout(m)
}

// SaveLoadout inserts a new loadout.
func (r *PgxLoadoutRepository) SaveLoadout(ctx context.Context, loadout domain.Loadout) error {
	m, err := mapping.ToModelLoadout(loadout)
	if err != nil {
		return err
	}
	_, err = r.Pool.Exec(ctx, insertLoadoutQuery,
		m.LoadoutID, m.CompanyID, m.Name, m.Description, m.EmployeeIDs, m.EquipmentIDs,
		m.ProductionRates, m.TotalHourlyCost, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save loadout %s: %w", m.LoadoutID, err)
	}
	return nil
}

// UpdateLoadout rewrites a loadout's members, rates and cached hourly cost.
func (r *PgxLoadoutRepository) UpdateLoadout(ctx context.Context, loadout domain.Loadout) error {
	m, err := mapping.ToModelLoadout(loadout)
	if err != nil {
		return err
	}
	tag, err := r.Pool.Exec(ctx, updateLoadoutQuery,
		m.LoadoutID, m.Name, m.Description, m.EmployeeIDs, m.EquipmentIDs,
		m.ProductionRates, m.TotalHourlyCost, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update loadout %s: %w", m.LoadoutID, err)
	}
	return expectOneRow(tag, "loadout", m.LoadoutID)
}

// DeleteLoadout removes a loadout. Callers check for referencing line items first.
func (r *PgxLoadoutRepository) DeleteLoadout(ctx context.Context, loadoutID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM loadouts WHERE loadout_id = $1`, loadoutID)
	if err != nil {
		return fmt.Errorf("failed to delete loadout %s: %w", loadoutID, err)
	}
	return expectOneRow(tag, "loadout", loadoutID)
}

// FindLoadoutByID retrieves a loadout by its ID.
func (r *PgxLoadoutRepository) FindLoadoutByID(ctx context.Context, loadoutID string) (*domain.Loadout, error) {
	l, err := scanLoadout(r.Pool.QueryRow(ctx,
		`SELECT `+selectLoadoutFields+` FROM loadouts WHERE loadout_id = $1`, loadoutID))
	if err != nil {
		return nil, notFoundOr(err, "loadout", loadoutID)
	}
	return &l, nil
}

// ListLoadouts retrieves an organization's loadouts by name.
func (r *PgxLoadoutRepository) ListLoadouts(ctx context.Context, companyID string, page portsrepo.Page) ([]domain.Loadout, error) {
	query := `SELECT ` + selectLoadoutFields + ` FROM loadouts WHERE company_id = $1 ORDER BY name, loadout_id`
	clause, args := pageClause(page, []any{companyID})
	rows, err := r.Pool.Query(ctx, query+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list loadouts: %w", err)
	}
	loadouts, err := collectRows(rows, scanLoadout)
	if err != nil {
		return nil, fmt.Errorf("failed to scan loadouts: %w", err)
	}
	return loadouts, nil
}

// CountLineItemsForLoadout counts line items priced from the loadout.
func (r *PgxLoadoutRepository) CountLineItemsForLoadout(ctx context.Context, loadoutID string) (int, error) {
	n, err := countQuery(ctx, r.Pool, `SELECT COUNT(*) FROM job_line_items WHERE loadout_id = $1`, loadoutID)
	if err != nil {
		return 0, fmt.Errorf("failed to count line items for loadout %s: %w", loadoutID, err)
	}
	return n, nil
}
