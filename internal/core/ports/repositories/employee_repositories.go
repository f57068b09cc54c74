package repositories

import (
	"context"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// FindEmployeeByID retrieves an employee regardless of organization; callers check ownership.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// FindEmployeesByIDs retrieves several employees keyed by ID. Missing IDs are absent from the map.
	FindEmployeesByIDs(ctx context.Context, employeeIDs []string) (map[string]domain.Employee, error)

	// ListEmployees retrieves an organization's employees.
	ListEmployees(ctx context.Context, companyID string, activeOnly bool, page Page) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee data.
// Writes that change an employee's rate refresh every loadout containing them
// in the same transaction.
type EmployeeWriter interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) error
	UpdateEmployee(ctx context.Context, employee domain.Employee) error
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
