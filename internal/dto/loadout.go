package dto

import (
	"time"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProductionRateRequest is one service type's expected throughput for a loadout.
type ProductionRateRequest struct {
	ServiceType string                `json:"serviceType" binding:"required"`
	Rate        decimal.Decimal       `json:"rate" binding:"gt=0"`
	Unit        domain.ProductionUnit `json:"unit" binding:"required,oneof=points acres units"`
}

// CreateLoadoutRequest defines the data needed to create a crew loadout.
type CreateLoadoutRequest struct {
	Name            string                  `json:"name" binding:"required,max=200"`
	Description     string                  `json:"description"`
	EmployeeIDs     []string                `json:"employeeIDs" binding:"dive,required"`
	EquipmentIDs    []string                `json:"equipmentIDs" binding:"dive,required"`
	ProductionRates []ProductionRateRequest `json:"productionRates" binding:"dive"`
}

// UpdateLoadoutRequest replaces the provided parts of a loadout.
type UpdateLoadoutRequest struct {
	Name            *string                  `json:"name" binding:"omitempty,min=1,max=200"`
	Description     *string                  `json:"description"`
	EmployeeIDs     *[]string                `json:"employeeIDs"`
	EquipmentIDs    *[]string                `json:"equipmentIDs"`
	ProductionRates *[]ProductionRateRequest `json:"productionRates"`
}

// LoadoutResponse defines the data returned for a loadout.
type LoadoutResponse struct {
	LoadoutID       string                  `json:"loadoutID"`
	Name            string                  `json:"name"`
	Description     string                  `json:"description"`
	EmployeeIDs     []string                `json:"employeeIDs"`
	EquipmentIDs    []string                `json:"equipmentIDs"`
	ProductionRates []domain.ProductionRate `json:"productionRates"`
	TotalHourlyCost decimal.Decimal         `json:"totalHourlyCost"`
	CreatedAt       time.Time               `json:"createdAt"`
	LastUpdatedAt   time.Time               `json:"lastUpdatedAt"`
}

// ToProductionRates converts request rates into domain rates.
func ToProductionRates(reqs []ProductionRateRequest) []domain.ProductionRate {
	rates := make([]domain.ProductionRate, len(reqs))
	for i, r := range reqs {
		rates[i] = domain.ProductionRate{ServiceType: r.ServiceType, Rate: r.Rate, Unit: r.Unit}
	}
	return rates
}

// ToLoadoutResponse converts a domain.Loadout to LoadoutResponse DTO
func ToLoadoutResponse(l *domain.Loadout) LoadoutResponse {
	return LoadoutResponse{
		LoadoutID:       l.LoadoutID,
		Name:            l.Name,
		Description:     l.Description,
		EmployeeIDs:     nonNil(l.EmployeeIDs),
		EquipmentIDs:    nonNil(l.EquipmentIDs),
		ProductionRates: l.ProductionRates,
		TotalHourlyCost: l.TotalHourlyCost,
		CreatedAt:       l.CreatedAt,
		LastUpdatedAt:   l.LastUpdatedAt,
	}
}

// ToListLoadoutResponse converts a slice of domain.Loadout to a slice of LoadoutResponse DTOs
func ToListLoadoutResponse(loadouts []domain.Loadout) []LoadoutResponse {
	res := make([]LoadoutResponse, len(loadouts))
	for i := range loadouts {
		res[i] = ToLoadoutResponse(&loadouts[i])
	}
	return res
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
