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

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const (
	selectEmployeeFields = `
		employee_id, company_id, first_name, last_name, email, phone, position, pay_type,
		base_hourly_rate, annual_salary, expected_annual_hours, workers_comp_rate, payroll_tax_rate,
		health_insurance_monthly, pto_days, holiday_days, phone_allowance_monthly,
		vehicle_allowance_monthly, management_level_id, effective_rate, burden_percentage, is_active,
		created_at, created_by, last_updated_at, last_updated_by`

	insertEmployeeQuery = `
		INSERT INTO employees (` + selectEmployeeFields + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19,
			$20, $21, $22, $23, $24, $25, $26)`

	updateEmployeeQuery = `
		UPDATE employees
		SET first_name = $2, last_name = $3, email = $4, phone = $5, position = $6, pay_type = $7,
			base_hourly_rate = $8, annual_salary = $9, expected_annual_hours = $10,
			workers_comp_rate = $11, payroll_tax_rate = $12, health_insurance_monthly = $13,
			pto_days = $14, holiday_days = $15, phone_allowance_monthly = $16,
			vehicle_allowance_monthly = $17, management_level_id = $18, effective_rate = $19,
			burden_percentage = $20, is_active = $21, last_updated_at = $22, last_updated_by = $23
		WHERE employee_id = $1`
)

func scanEmployee(row pgx.Row) (domain.Employee, error) {
	var m models.Employee
	err := row.Scan(
		&m.EmployeeID, &m.CompanyID, &m.FirstName, &m.LastName, &m.Email, &m.Phone, &m.Position, &m.PayType,
		&m.BaseHourlyRate, &m.AnnualSalary, &m.ExpectedAnnualHours, &m.WorkersCompRate, &m.PayrollTaxRate,
		&m.HealthInsuranceMonthly, &m.PTODays, &m.HolidayDays, &m.PhoneAllowanceMonthly,
		&m.VehicleAllowanceMonthly, &m.ManagementLevelID, &m.EffectiveRate, &m.BurdenPercentage, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return domain.Employee{}, err
	}
	return mapping.ToDomainEmployee(m), nil
}

// SaveEmployee inserts a new employee with its computed rate.
func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	_, err := r.Pool.Exec(ctx, insertEmployeeQuery,
		m.EmployeeID, m.CompanyID, m.FirstName, m.LastName, m.Email, m.Phone, m.Position, m.PayType,
		m.BaseHourlyRate, m.AnnualSalary, m.ExpectedAnnualHours, m.WorkersCompRate, m.PayrollTaxRate,
		m.HealthInsuranceMonthly, m.PTODays, m.HolidayDays, m.PhoneAllowanceMonthly,
		m.VehicleAllowanceMonthly, m.ManagementLevelID, m.EffectiveRate, m.BurdenPercentage, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save employee %s: %w", m.EmployeeID, err)
	}
	return nil
}

// UpdateEmployee rewrites the employee and refreshes the hourly cost of every
// loadout the employee belongs to.
func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	return r.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, updateEmployeeQuery,
			m.EmployeeID, m.FirstName, m.LastName, m.Email, m.Phone, m.Position, m.PayType,
			m.BaseHourlyRate, m.AnnualSalary, m.ExpectedAnnualHours, m.WorkersCompRate, m.PayrollTaxRate,
			m.HealthInsuranceMonthly, m.PTODays, m.HolidayDays, m.PhoneAllowanceMonthly,
			m.VehicleAllowanceMonthly, m.ManagementLevelID, m.EffectiveRate, m.BurdenPercentage, m.IsActive,
			m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to update employee %s: %w", m.EmployeeID, err)
		}
		if err := expectOneRow(tag, "employee", m.EmployeeID); err != nil {
			return err
		}
		return refreshLoadoutCosts(ctx, tx, "employee_ids", m.EmployeeID, m.LastUpdatedBy, m.LastUpdatedAt)
	})
}

// FindEmployeeByID retrieves an employee by its ID.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	e, err := scanEmployee(r.Pool.QueryRow(ctx,
		`SELECT `+selectEmployeeFields+` FROM employees WHERE employee_id = $1`, employeeID))
	if err != nil {
		return nil, notFoundOr(err, "employee", employeeID)
	}
	return &e, nil
}

// FindEmployeesByIDs retrieves several employees keyed by ID.
func (r *PgxEmployeeRepository) FindEmployeesByIDs(ctx context.Context, employeeIDs []string) (map[string]domain.Employee, error) {
	return findEmployeesByIDs(ctx, r.Pool, employeeIDs)
}

func findEmployeesByIDs(ctx context.Context, q querier, employeeIDs []string) (map[string]domain.Employee, error) {
	out := make(map[string]domain.Employee, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return out, nil
	}
	rows, err := q.Query(ctx, `SELECT `+selectEmployeeFields+` FROM employees WHERE employee_id = ANY($1)`, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to find employees: %w", err)
	}
	employees, err := collectRows(rows, scanEmployee)
	if err != nil {
		return nil, fmt.Errorf("failed to scan employees: %w", err)
	}
	for _, e := range employees {
		out[e.EmployeeID] = e
	}
	return out, nil
}

// ListEmployees retrieves an organization's employees by name.
func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, companyID string, activeOnly bool, page portsrepo.Page) ([]domain.Employee, error) {
	query := `SELECT ` + selectEmployeeFields + ` FROM employees WHERE company_id = $1`
	if activeOnly {
		query += ` AND is_active`
	}
	query += ` ORDER BY last_name, first_name, employee_id`
	clause, args := pageClause(page, []any{companyID})
	query += clause

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	employees, err := collectRows(rows, scanEmployee)
	if err != nil {
		return nil, fmt.Errorf("failed to scan employees: %w", err)
	}
	return employees, nil
}
