package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PayType describes how an employee is compensated.
type PayType string

const (
	PayTypeHourly PayType = "hourly"
	PayTypeSalary PayType = "salary"
)

// IsValid reports whether p is a known pay type.
func (p PayType) IsValid() bool {
	return p == PayTypeHourly || p == PayTypeSalary
}

// Employee is a crew member together with the inputs of their burdened rate.
// EffectiveRate and BurdenPercentage are derived and rewritten on every save.
type Employee struct {
	EmployeeID              string          `json:"employeeID"`
	CompanyID               string          `json:"companyID"`
	FirstName               string          `json:"firstName"`
	LastName                string          `json:"lastName"`
	Email                   string          `json:"email"`
	Phone                   string          `json:"phone"`
	Position                string          `json:"position"`
	PayType                 PayType         `json:"payType"`
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
	AuditFields
}

// FullName joins first and last name.
func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}
