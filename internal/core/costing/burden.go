package costing

import (
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultAnnualHours is used when an employee has no expected annual hours.
var DefaultAnnualHours = decimal.NewFromInt(2080)

var hoursPerDay = decimal.NewFromInt(8)

// BurdenInput holds an employee's pay structure and burden inputs.
type BurdenInput struct {
	PayType                 domain.PayType
	BaseHourlyRate          decimal.Decimal
	AnnualSalary            decimal.Decimal
	ExpectedAnnualHours     decimal.Decimal
	WorkersCompRate         decimal.Decimal
	PayrollTaxRate          decimal.Decimal
	HealthInsuranceMonthly  decimal.Decimal
	PTODays                 int
	HolidayDays             int
	PhoneAllowanceMonthly   decimal.Decimal
	VehicleAllowanceMonthly decimal.Decimal
}

// BurdenBreakdown is the fully burdened hourly rate split by component.
type BurdenBreakdown struct {
	HourlyRate          decimal.Decimal `json:"hourlyRate"`
	AnnualHours         decimal.Decimal `json:"annualHours"`
	WorkersComp         decimal.Decimal `json:"workersComp"`
	PayrollTax          decimal.Decimal `json:"payrollTax"`
	HealthHourly        decimal.Decimal `json:"healthHourly"`
	PTOHolidayCost      decimal.Decimal `json:"ptoHolidayCost"`
	PhoneHourly         decimal.Decimal `json:"phoneHourly"`
	VehicleHourly       decimal.Decimal `json:"vehicleHourly"`
	TotalBurdenedHourly decimal.Decimal `json:"totalBurdenedHourly"`
	BurdenPercentage    decimal.Decimal `json:"burdenPercentage"`
}

// BurdenInputFrom copies the burden inputs off a stored employee.
func BurdenInputFrom(e domain.Employee) BurdenInput {
	return BurdenInput{
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
	}
}

// CalculateEmployeeBurden normalizes pay to an hourly rate and adds every
// burden component spread over the annual hours. Annual hours of zero or less
// fall back to defaultAnnualHours (DefaultAnnualHours when that is also unset).
func CalculateEmployeeBurden(in BurdenInput, defaultAnnualHours decimal.Decimal) BurdenBreakdown {
	annualHours := positiveOr(in.ExpectedAnnualHours, positiveOr(defaultAnnualHours, DefaultAnnualHours))

	hourlyRate := in.BaseHourlyRate
	if in.PayType == domain.PayTypeSalary {
		hourlyRate = in.AnnualSalary.Div(annualHours)
	}

	workersComp := hourlyRate.Mul(in.WorkersCompRate.Div(hundred))
	payrollTax := hourlyRate.Mul(in.PayrollTaxRate.Div(hundred))
	health := in.HealthInsuranceMonthly.Mul(twelve).Div(annualHours)
	paidDaysOff := decimal.NewFromInt(int64(in.PTODays + in.HolidayDays))
	ptoHoliday := hourlyRate.Mul(paidDaysOff.Mul(hoursPerDay)).Div(annualHours)
	phone := in.PhoneAllowanceMonthly.Mul(twelve).Div(annualHours)
	vehicle := in.VehicleAllowanceMonthly.Mul(twelve).Div(annualHours)

	total := Sum(hourlyRate, workersComp, payrollTax, health, ptoHoliday, phone, vehicle)

	burdenPct := decimal.Zero
	if !hourlyRate.IsZero() {
		burdenPct = total.Sub(hourlyRate).Div(hourlyRate).Mul(hundred)
	}

	return BurdenBreakdown{
		HourlyRate:          hourlyRate,
		AnnualHours:         annualHours,
		WorkersComp:         workersComp,
		PayrollTax:          payrollTax,
		HealthHourly:        health,
		PTOHolidayCost:      ptoHoliday,
		PhoneHourly:         phone,
		VehicleHourly:       vehicle,
		TotalBurdenedHourly: total,
		BurdenPercentage:    burdenPct,
	}
}

// ApplyEmployeeBurden recomputes the derived fields of e from its own inputs.
func ApplyEmployeeBurden(e *domain.Employee, defaultAnnualHours decimal.Decimal) BurdenBreakdown {
	b := CalculateEmployeeBurden(BurdenInputFrom(*e), defaultAnnualHours)
	e.EffectiveRate = b.TotalBurdenedHourly
	e.BurdenPercentage = b.BurdenPercentage
	return b
}
