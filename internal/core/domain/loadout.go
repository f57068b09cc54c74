package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ProductionUnit is the scope unit a production rate is expressed in.
type ProductionUnit string

const (
	UnitPoints ProductionUnit = "points"
	UnitAcres  ProductionUnit = "acres"
	UnitUnits  ProductionUnit = "units"
)

// IsValid reports whether u is a known production unit.
func (u ProductionUnit) IsValid() bool {
	switch u {
	case UnitPoints, UnitAcres, UnitUnits:
		return true
	}
	return false
}

// ProductionRate is the expected throughput of a loadout for one service type.
type ProductionRate struct {
	ServiceType string          `json:"serviceType"`
	Rate        decimal.Decimal `json:"rate"`
	Unit        ProductionUnit  `json:"unit"`
}

// Loadout is a named crew and equipment bundle. TotalHourlyCost is the sum of
// member effective rates and equipment hourly costs at the time of the last write.
type Loadout struct {
	LoadoutID       string           `json:"loadoutID"`
	CompanyID       string           `json:"companyID"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	EmployeeIDs     []string         `json:"employeeIDs"`
	EquipmentIDs    []string         `json:"equipmentIDs"`
	ProductionRates []ProductionRate `json:"productionRates"`
	TotalHourlyCost decimal.Decimal  `json:"totalHourlyCost"`
	AuditFields
}

// ProductionRateFor returns the rate configured for serviceType, if any.
func (l Loadout) ProductionRateFor(serviceType string) (decimal.Decimal, bool) {
	for _, pr := range l.ProductionRates {
		if strings.EqualFold(pr.ServiceType, serviceType) {
			return pr.Rate, true
		}
	}
	return decimal.Zero, false
}

// HasResources reports whether the loadout contains at least one employee or machine.
func (l Loadout) HasResources() bool {
	return len(l.EmployeeIDs) > 0 || len(l.EquipmentIDs) > 0
}
