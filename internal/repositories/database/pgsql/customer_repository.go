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

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

const (
	selectCustomerFields = `
		customer_id, company_id, name, business_name, email, phone, address, city, state,
		postal_code, notes, created_at, created_by, last_updated_at, last_updated_by`

	insertCustomerQuery = `
		INSERT INTO customers (` + selectCustomerFields + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	updateCustomerQuery = `
		UPDATE customers
		SET name = $2, business_name = $3, email = $4, phone = $5, address = $6, city = $7,
			state = $8, postal_code = $9, notes = $10, last_updated_at = $11, last_updated_by = $12
		WHERE customer_id = $1`

	findCustomerByIDQuery = `SELECT ` + selectCustomerFields + ` FROM customers WHERE customer_id = $1`

	countJobsForCustomerQuery = `SELECT COUNT(*) FROM jobs WHERE customer_id = $1`
)

func scanCustomer(row pgx.Row) (domain.Customer, error) {
	var m models.Customer
	err := row.Scan(
		&m.CustomerID, &m.CompanyID, &m.Name, &m.BusinessName, &m.Email, &m.Phone, &m.Address,
		&m.City, &m.State, &m.PostalCode, &m.Notes,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return domain.Customer{}, err
	}
	return mapping.ToDomainCustomer(m), nil
}

// SaveCustomer inserts a new customer.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	_, err := r.Pool.Exec(ctx, insertCustomerQuery,
		m.CustomerID, m.CompanyID, m.Name, m.BusinessName, m.Email, m.Phone, m.Address,
		m.City, m.State, m.PostalCode, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save customer %s: %w", m.CustomerID, err)
	}
	return nil
}

// UpdateCustomer rewrites a customer's contact details.
func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	tag, err := r.Pool.Exec(ctx, updateCustomerQuery,
		m.CustomerID, m.Name, m.BusinessName, m.Email, m.Phone, m.Address,
		m.City, m.State, m.PostalCode, m.Notes, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer %s: %w", m.CustomerID, err)
	}
	return expectOneRow(tag, "customer", m.CustomerID)
}

// DeleteCustomer removes a customer. Callers check for referencing jobs first.
func (r *PgxCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM customers WHERE customer_id = $1`, customerID)
	if err != nil {
		return fmt.Errorf("failed to delete customer %s: %w", customerID, err)
	}
	return expectOneRow(tag, "customer", customerID)
}

// FindCustomerByID retrieves a customer by its ID.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	c, err := scanCustomer(r.Pool.QueryRow(ctx, findCustomerByIDQuery, customerID))
	if err != nil {
		return nil, notFoundOr(err, "customer", customerID)
	}
	return &c, nil
}

// ListCustomers retrieves an organization's customers by name. A non-empty
// search matches name, business name or email case-insensitively.
func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, companyID string, search string, page portsrepo.Page) ([]domain.Customer, error) {
	query := `SELECT ` + selectCustomerFields + ` FROM customers WHERE company_id = $1`
	args := []any{companyID}
	if search != "" {
		args = append(args, "%"+search+"%")
		query += fmt.Sprintf(` AND (name ILIKE $%[1]d OR business_name ILIKE $%[1]d OR email ILIKE $%[1]d)`, len(args))
	}
	query += ` ORDER BY name, customer_id`
	clause, args := pageClause(page, args)
	query += clause

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	customers, err := collectRows(rows, scanCustomer)
	if err != nil {
		return nil, fmt.Errorf("failed to scan customers: %w", err)
	}
	return customers, nil
}

// CountJobsForCustomer counts jobs that reference the customer.
func (r *PgxCustomerRepository) CountJobsForCustomer(ctx context.Context, customerID string) (int, error) {
	n, err := countQuery(ctx, r.Pool, countJobsForCustomerQuery, customerID)
	if err != nil {
		return 0, fmt.Errorf("failed to count jobs for customer %s: %w", customerID, err)
	}
	return n, nil
}
