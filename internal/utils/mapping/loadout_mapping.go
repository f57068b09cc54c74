package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/SscSPs/treeservice_ops/internal/models"
)

// ToModelLoadout converts a domain Loadout to a model Loadout
func ToModelLoadout(d domain.Loadout) (models.Loadout, error) {
	rates := d.ProductionRates
	if rates == nil {
		rates = []domain.ProductionRate{}
	}
	ratesJSON, err := json.Marshal(rates)
	if err != nil {
		return models.Loadout{}, fmt.Errorf("failed to encode production rates: %w", err)
	}
	return models.Loadout{
		LoadoutID:       d.LoadoutID,
		CompanyID:       d.CompanyID,
		Name:            d.Name,
		Description:     d.Description,
		EmployeeIDs:     StringArray(d.EmployeeIDs),
		EquipmentIDs:    StringArray(d.EquipmentIDs),
		ProductionRates: ratesJSON,
		TotalHourlyCost: d.TotalHourlyCost,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainLoadout converts a model Loadout to a domain Loadout
func ToDomainLoadout(m models.Loadout) (domain.Loadout, error) {
	rates := []domain.ProductionRate{}
	if len(m.ProductionRates) > 0 {
		if err := json.Unmarshal(m.ProductionRates, &rates); err != nil {
			return domain.Loadout{}, fmt.Errorf("failed to decode production rates of loadout %s: %w", m.LoadoutID, err)
		}
	}
	return domain.Loadout{
		LoadoutID:       m.LoadoutID,
		CompanyID:       m.CompanyID,
		Name:            m.Name,
		Description:     m.Description,
		EmployeeIDs:     m.EmployeeIDs,
		EquipmentIDs:    m.EquipmentIDs,
		ProductionRates: rates,
		TotalHourlyCost: m.TotalHourlyCost,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}, nil
}
