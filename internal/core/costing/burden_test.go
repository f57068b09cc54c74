package costing_test

import (
	"testing"

	"github.com/SscSPs/treeservice_ops/internal/core/costing"
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func groundsmanInput() costing.BurdenInput {
	return costing.BurdenInput{
		PayType:                domain.PayTypeHourly,
		BaseHourlyRate:         d("20"),
		ExpectedAnnualHours:    d("2000"),
		WorkersCompRate:        d("28"),
		PayrollTaxRate:         d("12"),
		HealthInsuranceMonthly: d("400"),
		PTODays:                10,
		HolidayDays:            6,
	}
}

func TestCalculateEmployeeBurden_Hourly(t *testing.T) {
	b := costing.CalculateEmployeeBurden(groundsmanInput(), costing.DefaultAnnualHours)

	assertDecimal(t, "20", b.HourlyRate)
	assertDecimal(t, "5.6", b.WorkersComp)
	assertDecimal(t, "2.4", b.PayrollTax)
	assertDecimal(t, "2.4", b.HealthHourly)
	assertDecimal(t, "1.28", b.PTOHolidayCost)
	assertDecimal(t, "0", b.PhoneHourly)
	assertDecimal(t, "0", b.VehicleHourly)
	assertDecimal(t, "31.68", b.TotalBurdenedHourly)
	assertDecimal(t, "58.4", b.BurdenPercentage)
}

func TestCalculateEmployeeBurden_Salary(t *testing.T) {
	in := costing.BurdenInput{
		PayType:                 domain.PayTypeSalary,
		AnnualSalary:            d("52000"),
		ExpectedAnnualHours:     d("2080"),
		PayrollTaxRate:          d("10"),
		PhoneAllowanceMonthly:   d("52"),
		VehicleAllowanceMonthly: d("104"),
	}

	b := costing.CalculateEmployeeBurden(in, costing.DefaultAnnualHours)

	assertDecimal(t, "25", b.HourlyRate)
	assertDecimal(t, "2.5", b.PayrollTax)
	assertDecimal(t, "0.3", b.PhoneHourly)
	assertDecimal(t, "0.6", b.VehicleHourly)
	assertDecimal(t, "28.4", b.TotalBurdenedHourly)
	assertDecimal(t, "13.6", b.BurdenPercentage)
}

func TestCalculateEmployeeBurden_DefaultsAnnualHours(t *testing.T) {
	in := groundsmanInput()
	in.ExpectedAnnualHours = decimal.Zero

	b := costing.CalculateEmployeeBurden(in, decimal.Zero)

	assertDecimal(t, "2080", b.AnnualHours)
}

func TestCalculateEmployeeBurden_ZeroRateReportsZeroPercent(t *testing.T) {
	in := groundsmanInput()
	in.BaseHourlyRate = decimal.Zero

	b := costing.CalculateEmployeeBurden(in, costing.DefaultAnnualHours)

	assertDecimal(t, "0", b.BurdenPercentage)
	assertDecimal(t, "2.4", b.TotalBurdenedHourly)
}

func TestCalculateEmployeeBurden_TotalNeverBelowBase(t *testing.T) {
	for _, rate := range []string{"0", "15", "18.75", "42"} {
		in := groundsmanInput()
		in.BaseHourlyRate = d(rate)
		b := costing.CalculateEmployeeBurden(in, costing.DefaultAnnualHours)

		assert.True(t, b.TotalBurdenedHourly.GreaterThanOrEqual(b.HourlyRate), rate)
		if !b.HourlyRate.IsZero() {
			expected := b.TotalBurdenedHourly.Div(b.HourlyRate).Sub(decimal.NewFromInt(1)).Mul(decimal.NewFromInt(100))
			assert.True(t, expected.Sub(b.BurdenPercentage).Abs().LessThan(d("0.000000001")), rate)
		}
	}
}

func TestApplyEmployeeBurden_WritesDerivedFields(t *testing.T) {
	in := groundsmanInput()
	emp := domain.Employee{
		PayType:                in.PayType,
		BaseHourlyRate:         in.BaseHourlyRate,
		ExpectedAnnualHours:    in.ExpectedAnnualHours,
		WorkersCompRate:        in.WorkersCompRate,
		PayrollTaxRate:         in.PayrollTaxRate,
		HealthInsuranceMonthly: in.HealthInsuranceMonthly,
		PTODays:                in.PTODays,
		HolidayDays:            in.HolidayDays,
	}

	costing.ApplyEmployeeBurden(&emp, costing.DefaultAnnualHours)

	assertDecimal(t, "31.68", emp.EffectiveRate)
	assertDecimal(t, "58.4", emp.BurdenPercentage)
}
