package mapping

import (
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/SscSPs/treeservice_ops/internal/models"
)

// ToModelEquipment converts a domain Equipment to a model Equipment
func ToModelEquipment(d domain.Equipment) models.Equipment {
	return models.Equipment{
		EquipmentID:            d.EquipmentID,
		CompanyID:              d.CompanyID,
		Name:                   d.Name,
		Category:               d.Category,
		Make:                   d.Make,
		Model:                  d.Model,
		Year:                   d.Year,
		PurchasePrice:          d.PurchasePrice,
		UsefulLifeYears:        d.UsefulLifeYears,
		SalvageValue:           d.SalvageValue,
		AnnualOperatingHours:   d.AnnualOperatingHours,
		FuelConsumptionPerHour: d.FuelConsumptionPerHour,
		FuelPricePerGallon:     d.FuelPricePerGallon,
		AnnualMaintenanceCost:  d.AnnualMaintenanceCost,
		AnnualOtherCosts:       d.AnnualOtherCosts,
		OverheadMultiplier:     d.OverheadMultiplier,
		HourlyCost:             d.HourlyCost,
		Status:                 string(d.Status),
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEquipment converts a model Equipment to a domain Equipment
func ToDomainEquipment(m models.Equipment) domain.Equipment {
	return domain.Equipment{
		EquipmentID:            m.EquipmentID,
		CompanyID:              m.CompanyID,
		Name:                   m.Name,
		Category:               m.Category,
		Make:                   m.Make,
		Model:                  m.Model,
		Year:                   m.Year,
		PurchasePrice:          m.PurchasePrice,
		UsefulLifeYears:        m.UsefulLifeYears,
		SalvageValue:           m.SalvageValue,
		AnnualOperatingHours:   m.AnnualOperatingHours,
		FuelConsumptionPerHour: m.FuelConsumptionPerHour,
		FuelPricePerGallon:     m.FuelPricePerGallon,
		AnnualMaintenanceCost:  m.AnnualMaintenanceCost,
		AnnualOtherCosts:       m.AnnualOtherCosts,
		OverheadMultiplier:     m.OverheadMultiplier,
		HourlyCost:             m.HourlyCost,
		Status:                 domain.EquipmentStatus(m.Status),
		AuditFields:            ToDomainAuditFields(m.AuditFields),
	}
}
