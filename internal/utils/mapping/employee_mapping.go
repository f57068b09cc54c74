package mapping

import (
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/SscSPs/treeservice_ops/internal/models"
)

// ToModelEmployee converts a domain Employee to a model Employee
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:              d.EmployeeID,
		CompanyID:               d.CompanyID,
		FirstName:               d.FirstName,
		LastName:                d.LastName,
		Email:                   d.Email,
		Phone:                   d.Phone,
		Position:                d.Position,
		PayType:                 string(d.PayType),
		BaseHourlyRate:          d.BaseHourlyRate,
		AnnualSalary:            d.AnnualSalary,
		ExpectedAnnualHours:     d.ExpectedAnnualHours,
		WorkersCompRate:         d.WorkersCompRate,
		PayrollTaxRate:          d.PayrollTaxRate,
		HealthInsuranceMonthly:  d.HealthInsuranceMonthly,
		PTODays:                 d.PTODays,
		HolidayDays:             d.HolidayDays,
		PhoneAllowanceMonthly:   d.PhoneAllowanceMonthly,
		VehicleAllowanceMonthly: d.VehicleAllowanceMonthly,
		ManagementLevelID:       NullableID(d.ManagementLevelID),
		EffectiveRate:           d.EffectiveRate,
		BurdenPercentage:        d.BurdenPercentage,
		IsActive:                d.IsActive,
		AuditFields:             ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:              m.EmployeeID,
		CompanyID:               m.CompanyID,
		FirstName:               m.FirstName,
		LastName:                m.LastName,
		Email:                   m.Email,
		Phone:                   m.Phone,
		Position:                m.Position,
		PayType:                 domain.PayType(m.PayType),
		BaseHourlyRate:          m.BaseHourlyRate,
		AnnualSalary:            m.AnnualSalary,
		ExpectedAnnualHours:     m.ExpectedAnnualHours,
		WorkersCompRate:         m.WorkersCompRate,
		PayrollTaxRate:          m.PayrollTaxRate,
		HealthInsuranceMonthly:  m.HealthInsuranceMonthly,
		PTODays:                 m.PTODays,
		HolidayDays:             m.HolidayDays,
		PhoneAllowanceMonthly:   m.PhoneAllowanceMonthly,
		VehicleAllowanceMonthly: m.VehicleAllowanceMonthly,
		ManagementLevelID:       FromNullableID(m.ManagementLevelID),
		EffectiveRate:           m.EffectiveRate,
		BurdenPercentage:        m.BurdenPercentage,
		IsActive:                m.IsActive,
		AuditFields:             ToDomainAuditFields(m.AuditFields),
	}
}
