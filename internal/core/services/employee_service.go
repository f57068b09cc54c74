package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/treeservice_ops/internal/core/costing"
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	portsrepo "github.com/SscSPs/treeservice_ops/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/treeservice_ops/internal/core/ports/services"
	"github.com/SscSPs/treeservice_ops/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type employeeService struct {
	BaseService
	employeeRepo       portsrepo.EmployeeRepositoryFacade
	levelRepo          portsrepo.ManagementLevelRepository
	defaultAnnualHours decimal.Decimal
}

// NewEmployeeService creates a new EmployeeService. defaultAnnualHours is used
// for employees without expected annual hours.
func NewEmployeeService(repo portsrepo.EmployeeRepositoryFacade, levelRepo portsrepo.ManagementLevelRepository, defaultAnnualHours decimal.Decimal, opts ...Option) portssvc.EmployeeSvcFacade {
	return &employeeService{
		BaseService:        newBaseService(opts),
		employeeRepo:       repo,
		levelRepo:          levelRepo,
		defaultAnnualHours: defaultAnnualHours,
	}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) CreateEmployee(ctx context.Context, companyID string, req dto.CreateEmployeeRequest, userID string) (*domain.Employee, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}

	levelID := ""
	if req.ManagementLevelID != nil {
		levelID = *req.ManagementLevelID
	}
	if err := s.checkLevel(ctx, companyID, levelID); err != nil {
		return nil, err
	}

	employee := domain.Employee{
		EmployeeID:              uuid.NewString(),
		CompanyID:               companyID,
		FirstName:               req.FirstName,
		LastName:                req.LastName,
		Email:                   req.Email,
		Phone:                   req.Phone,
		Position:                req.Position,
		PayType:                 req.PayType,
		BaseHourlyRate:          req.BaseHourlyRate,
		AnnualSalary:            req.AnnualSalary,
		ExpectedAnnualHours:     req.ExpectedAnnualHours,
		WorkersCompRate:         req.WorkersCompRate,
		PayrollTaxRate:          req.PayrollTaxRate,
		HealthInsuranceMonthly:  req.HealthInsuranceMonthly,
		PTODays:                 req.PTODays,
		HolidayDays:             req.HolidayDays,
		PhoneAllowanceMonthly:   req.PhoneAllowanceMonthly,
		VehicleAllowanceMonthly: req.VehicleAllowanceMonthly,
		ManagementLevelID:       levelID,
		IsActive:                true,
		AuditFields:             domain.NewAuditFields(userID, s.Now()),
	}
	costing.ApplyEmployeeBurden(&employee, s.defaultAnnualHours)

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "Failed to save employee",
			slog.String("employee_id", employee.EmployeeID),
			slog.String("company_id", companyID))
		return nil, err
	}

	s.LogInfo(ctx, "Employee created successfully",
		slog.String("employee_id", employee.EmployeeID),
		slog.String("effective_rate", employee.EffectiveRate.StringFixed(2)))
	return &employee, nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, companyID string, employeeID string) (*domain.Employee, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		s.logUnlessExpected(ctx, err, "Failed to find employee by ID", slog.String("employee_id", employeeID))
		return nil, err
	}
	if err := s.CheckOwner(ctx, companyID, employee.CompanyID, "employee", employeeID); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) ListEmployees(ctx context.Context, companyID string, params dto.ListEmployeesParams) ([]domain.Employee, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}
	employees, err := s.employeeRepo.ListEmployees(ctx, companyID, params.ActiveOnly,
		portsrepo.Page{Limit: params.Limit, Offset: params.Offset})
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	if employees == nil {
		return []domain.Employee{}, nil
	}
	return employees, nil
}

func (s *employeeService) GetBurdenBreakdown(ctx context.Context, companyID string, employeeID string) (*costing.BurdenBreakdown, error) {
	employee, err := s.GetEmployeeByID(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}
	breakdown := costing.CalculateEmployeeBurden(costing.BurdenInputFrom(*employee), s.defaultAnnualHours)
	return &breakdown, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, companyID string, employeeID string, req dto.UpdateEmployeeRequest, userID string) (*domain.Employee, error) {
	employee, err := s.GetEmployeeByID(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}

	mergeString(&employee.FirstName, req.FirstName)
	mergeString(&employee.LastName, req.LastName)
	mergeString(&employee.Email, req.Email)
	mergeString(&employee.Phone, req.Phone)
	mergeString(&employee.Position, req.Position)
	if req.PayType != nil {
		employee.PayType = *req.PayType
	}
	mergeDecimal(&employee.BaseHourlyRate, req.BaseHourlyRate)
	mergeDecimal(&employee.AnnualSalary, req.AnnualSalary)
	mergeDecimal(&employee.ExpectedAnnualHours, req.ExpectedAnnualHours)
	mergeDecimal(&employee.WorkersCompRate, req.WorkersCompRate)
	mergeDecimal(&employee.PayrollTaxRate, req.PayrollTaxRate)
	mergeDecimal(&employee.HealthInsuranceMonthly, req.HealthInsuranceMonthly)
	mergeInt(&employee.PTODays, req.PTODays)
	mergeInt(&employee.HolidayDays, req.HolidayDays)
	mergeDecimal(&employee.PhoneAllowanceMonthly, req.PhoneAllowanceMonthly)
	mergeDecimal(&employee.VehicleAllowanceMonthly, req.VehicleAllowanceMonthly)
	if req.ManagementLevelID != nil {
		if err := s.checkLevel(ctx, companyID, *req.ManagementLevelID); err != nil {
			return nil, err
		}
		employee.ManagementLevelID = *req.ManagementLevelID
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}

	// Derived rates always follow the merged inputs.
	costing.ApplyEmployeeBurden(employee, s.defaultAnnualHours)
	employee.Touch(userID, s.Now())

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		s.LogError(ctx, err, "Failed to update employee", slog.String("employee_id", employeeID))
		return nil, err
	}

	s.LogInfo(ctx, "Employee updated successfully",
		slog.String("employee_id", employeeID),
		slog.String("effective_rate", employee.EffectiveRate.StringFixed(2)))
	return employee, nil
}

func (s *employeeService) DeactivateEmployee(ctx context.Context, companyID string, employeeID string, userID string) error {
	employee, err := s.GetEmployeeByID(ctx, companyID, employeeID)
	if err != nil {
		return err
	}
	if !employee.IsActive {
		return nil
	}

	employee.IsActive = false
	employee.Touch(userID, s.Now())
	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		s.LogError(ctx, err, "Failed to deactivate employee", slog.String("employee_id", employeeID))
		return err
	}

	s.LogInfo(ctx, "Employee deactivated successfully", slog.String("employee_id", employeeID))
	return nil
}

// checkLevel verifies that a management level, when given, belongs to the organization.
func (s *employeeService) checkLevel(ctx context.Context, companyID, levelID string) error {
	if levelID == "" || s.levelRepo == nil {
		return nil
	}
	level, err := s.levelRepo.FindManagementLevelByID(ctx, levelID)
	if err != nil {
		return err
	}
	return s.CheckOwner(ctx, companyID, level.CompanyID, "management level", levelID)
}
