package services

import (
	"context"

	"github.com/SscSPs/treeservice_ops/internal/core/costing"
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/SscSPs/treeservice_ops/internal/dto"
)

// EmployeeReaderSvc defines read operations for employee data
type EmployeeReaderSvc interface {
	GetEmployeeByID(ctx context.Context, companyID string, employeeID string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, companyID string, params dto.ListEmployeesParams) ([]domain.Employee, error)

	// GetBurdenBreakdown recomputes the burden components of a stored employee.
	GetBurdenBreakdown(ctx context.Context, companyID string, employeeID string) (*costing.BurdenBreakdown, error)
}

// EmployeeWriterSvc defines write operations for employee data.
// Creates and updates recompute the effective rate before saving.
type EmployeeWriterSvc interface {
	CreateEmployee(ctx context.Context, companyID string, req dto.CreateEmployeeRequest, userID string) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, companyID string, employeeID string, req dto.UpdateEmployeeRequest, userID string) (*domain.Employee, error)
	DeactivateEmployee(ctx context.Context, companyID string, employeeID string, userID string) error
}

// EmployeeSvcFacade combines all employee-related service interfaces
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
}
