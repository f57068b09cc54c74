package models

import "github.com/shopspring/decimal"

// Employee represents a row of the employees table. EffectiveRate and
// BurdenPercentage are stored so loadouts and time logs can read them directly.
type Employee struct {
	EmployeeID              string          `db:"employee_id"`
	CompanyID               string          `db:"company_id"`
	FirstName               string          `db:"first_name"`
	LastName                string          `db:"last_name"`
	Email                   string          `db:"email"`
	Phone                   string          `db:"phone"`
	Position                string          `db:"position"`
	PayType                 string          `db:"pay_type"`
	BaseHourlyRate          decimal.Decimal `db:"base_hourly_rate"`
	AnnualSalary            decimal.Decimal `db:"annual_salary"`
	ExpectedAnnualHours     decimal.Decimal `db:"expected_annual_hours"`
	WorkersCompRate         decimal.Decimal `db:"workers_comp_rate"`
	PayrollTaxRate          decimal.Decimal `db:"payroll_tax_rate"`
	HealthInsuranceMonthly  decimal.Decimal `db:"health_insurance_monthly"`
	PTODays                 int             `db:"pto_days"`
	HolidayDays             int             `db:"holiday_days"`
	PhoneAllowanceMonthly   decimal.Decimal `db:"phone_allowance_monthly"`
	VehicleAllowanceMonthly decimal.Decimal `db:"vehicle_allowance_monthly"`
	ManagementLevelID       *string         `db:"management_level_id"` // Nullable
	EffectiveRate           decimal.Decimal `db:"effective_rate"`
	BurdenPercentage        decimal.Decimal `db:"burden_percentage"`
	IsActive                bool            `db:"is_active"`
	AuditFields
}
