package dto

import (
	"time"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest defines the data needed to create a new employee.
type CreateEmployeeRequest struct {
	FirstName               string          `json:"firstName" binding:"required,max=100"`
	LastName                string          `json:"lastName" binding:"max=100"`
	Email                   string          `json:"email" binding:"omitempty,email"`
	Phone                   string          `json:"phone"`
	Position                string          `json:"position"`
	PayType                 domain.PayType  `json:"payType" binding:"required,oneof=hourly salary"`
	BaseHourlyRate          decimal.Decimal `json:"baseHourlyRate" binding:"gte=0"`
	AnnualSalary            decimal.Decimal `json:"annualSalary" binding:"gte=0"`
	ExpectedAnnualHours     decimal.Decimal `json:"expectedAnnualHours" binding:"gte=0"`
	WorkersCompRate         decimal.Decimal `json:"workersCompRate" binding:"gte=0,lte=100"`
	PayrollTaxRate          decimal.Decimal `json:"payrollTaxRate" binding:"gte=0,lte=100"`
	HealthInsuranceMonthly  decimal.Decimal `json:"healthInsuranceMonthly" binding:"gte=0"`
	PTODays                 int             `json:"ptoDays" binding:"gte=0,lte=365"`
	HolidayDays             int             `json:"holidayDays" binding:"gte=0,lte=365"`
	PhoneAllowanceMonthly   decimal.Decimal `json:"phoneAllowanceMonthly" binding:"gte=0"`
	VehicleAllowanceMonthly decimal.Decimal `json:"vehicleAllowanceMonthly" binding:"gte=0"`
	ManagementLevelID       *string         `json:"managementLevelID"`
}

// UpdateEmployeeRequest defines the data allowed for updating an employee.
// Provided fields are merged onto the stored record before the rate is recomputed.
type UpdateEmployeeRequest struct {
	FirstName               *string          `json:"firstName" binding:"omitempty,min=1,max=100"`
	LastName                *string          `json:"lastName" binding:"omitempty,max=100"`
	Email                   *string          `json:"email" binding:"omitempty,email"`
	Phone                   *string          `json:"phone"`
	Position                *string          `json:"position"`
	PayType                 *domain.PayType  `json:"payType" binding:"omitempty,oneof=hourly salary"`
	BaseHourlyRate          *decimal.Decimal `json:"baseHourlyRate" binding:"omitempty,gte=0"`
	AnnualSalary            *decimal.Decimal `json:"annualSalary" binding:"omitempty,gte=0"`
	ExpectedAnnualHours     *decimal.Decimal `json:"expectedAnnualHours" binding:"omitempty,gte=0"`
	WorkersCompRate         *decimal.Decimal `json:"workersCompRate" binding:"omitempty,gte=0,lte=100"`
	PayrollTaxRate          *decimal.Decimal `json:"payrollTaxRate" binding:"omitempty,gte=0,lte=100"`
	HealthInsuranceMonthly  *decimal.Decimal `json:"healthInsuranceMonthly" binding:"omitempty,gte=0"`
	PTODays                 *int             `json:"ptoDays" binding:"omitempty,gte=0,lte=365"`
	HolidayDays             *int             `json:"holidayDays" binding:"omitempty,gte=0,lte=365"`
	PhoneAllowanceMonthly   *decimal.Decimal `json:"phoneAllowanceMonthly" binding:"omitempty,gte=0"`
	VehicleAllowanceMonthly *decimal.Decimal `json:"vehicleAllowanceMonthly" binding:"omitempty,gte=0"`
	ManagementLevelID       *string          `json:"managementLevelID"`
	IsActive                *bool            `json:"isActive"`
}

// ListEmployeesParams defines query parameters for listing employees.
type ListEmployeesParams struct {
	ListParams
	ActiveOnly bool `form:"activeOnly"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	EmployeeID              string          `json:"employeeID"`
	FirstName               string          `json:"firstName"`
	LastName                string          `json:"lastName"`
	FullName                string          `json:"fullName"`
	Email                   string          `json:"email"`
	Phone                   string          `json:"phone"`
	Position                string          `json:"position"`
	PayType                 domain.PayType  `json:"payType"`
	BaseHourlyRate          decimal.Decimal `json:"baseHourlyRate"`
	AnnualSalary            decimal.Decimal `json:"annualSalary"`
	ExpectedAnnualHours     decimal.Decimal `json:"expectedAnnualHours"`
	WorkersCompRate         decimal.Decimal `json:"workersCompRate"`
	PayrollTaxRate          decimal.Decimal `json:"payrollTaxRate"`
	HealthInsuranceMonthly  decimal.Decimal `json:"healthInsuranceMonthly"`
	PTODays                 int             `json:"ptoDays"`
	HolidayDays             int             `json:"holidayDays"`
	PhoneAllowanceMonthly   decimal.Decimal `json:"phoneAllowanceMonthly"`
	VehicleAllowanceMonthly decimal.Decimal `json:"vehicleAllowanceMonthly"`
	ManagementLevelID       string          `json:"managementLevelID,omitempty"`
	EffectiveRate           decimal.Decimal `json:"effectiveRate"`
	BurdenPercentage        decimal.Decimal `json:"burdenPercentage"`
	IsActive                bool            `json:"isActive"`
	CreatedAt               time.Time       `json:"createdAt"`
	LastUpdatedAt           time.Time       `json:"lastUpdatedAt"`
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse DTO
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:              e.EmployeeID,
		FirstName:               e.FirstName,
		LastName:                e.LastName,
		FullName:                e.FullName(),
		Email:                   e.Email,
		Phone:                   e.Phone,
		Position:                e.Position,
		PayType:                 e.PayType,
		BaseHourlyRate:          e.BaseHourlyRate,
		AnnualSalary:            e.AnnualSalary,
		ExpectedAnnualHours:     e.ExpectedAnnualHours,
		WorkersCompRate:         e.WorkersCompRate,
		PayrollTaxRate:          e.PayrollTaxRate,
		HealthInsuranceMonthly:  e.HealthInsuranceMonthly,
		PTODays:                 e.PTODays,
		HolidayDays:             e.HolidayDays,
		PhoneAllowanceMonthly:   e.PhoneAllowanceMonthly,
		VehicleAllowanceMonthly: e.VehicleAllowanceMonthly,
		ManagementLevelID:       e.ManagementLevelID,
		EffectiveRate:           e.EffectiveRate,
		BurdenPercentage:        e.BurdenPercentage,
		IsActive:                e.IsActive,
		CreatedAt:               e.CreatedAt,
		LastUpdatedAt:           e.LastUpdatedAt,
	}
}

// ToListEmployeeResponse converts a slice of domain.Employee to a slice of EmployeeResponse DTOs
func ToListEmployeeResponse(employees []domain.Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i := range employees {
		res[i] = ToEmployeeResponse(&employees[i])
	}
	return res
}
