package dto

import (
	"time"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEquipmentRequest defines the data needed to register a machine.
type CreateEquipmentRequest struct {
	Name                   string          `json:"name" binding:"required,max=200"`
	Category               string          `json:"category"`
	Make                   string          `json:"make"`
	Model                  string          `json:"model"`
	Year                   int             `json:"year" binding:"gte=0"`
	PurchasePrice          decimal.Decimal `json:"purchasePrice" binding:"gte=0"`
	UsefulLifeYears        decimal.Decimal `json:"usefulLifeYears" binding:"gte=0"`
	SalvageValue           decimal.Decimal `json:"salvageValue" binding:"gte=0"`
	AnnualOperatingHours   decimal.Decimal `json:"annualOperatingHours" binding:"gte=0"`
	FuelConsumptionPerHour decimal.Decimal `json:"fuelConsumptionPerHour" binding:"gte=0"`
	FuelPricePerGallon     decimal.Decimal `json:"fuelPricePerGallon" binding:"gte=0"`
	AnnualMaintenanceCost  decimal.Decimal `json:"annualMaintenanceCost" binding:"gte=0"`
	AnnualOtherCosts       decimal.Decimal `json:"annualOtherCosts" binding:"gte=0"`
	OverheadMultiplier     decimal.Decimal `json:"overheadMultiplier" binding:"gte=0"`
}

// UpdateEquipmentRequest defines the data allowed for updating a machine.
type UpdateEquipmentRequest struct {
	Name                   *string                 `json:"name" binding:"omitempty,min=1,max=200"`
	Category               *string                 `json:"category"`
	Make                   *string                 `json:"make"`
	Model                  *string                 `json:"model"`
	Year                   *int                    `json:"year" binding:"omitempty,gte=0"`
	PurchasePrice          *decimal.Decimal        `json:"purchasePrice" binding:"omitempty,gte=0"`
	UsefulLifeYears        *decimal.Decimal        `json:"usefulLifeYears" binding:"omitempty,gte=0"`
	SalvageValue           *decimal.Decimal        `json:"salvageValue" binding:"omitempty,gte=0"`
	AnnualOperatingHours   *decimal.Decimal        `json:"annualOperatingHours" binding:"omitempty,gte=0"`
	FuelConsumptionPerHour *decimal.Decimal        `json:"fuelConsumptionPerHour" binding:"omitempty,gte=0"`
	FuelPricePerGallon     *decimal.Decimal        `json:"fuelPricePerGallon" binding:"omitempty,gte=0"`
	AnnualMaintenanceCost  *decimal.Decimal        `json:"annualMaintenanceCost" binding:"omitempty,gte=0"`
	AnnualOtherCosts       *decimal.Decimal        `json:"annualOtherCosts" binding:"omitempty,gte=0"`
	OverheadMultiplier     *decimal.Decimal        `json:"overheadMultiplier" binding:"omitempty,gte=0"`
	Status                 *domain.EquipmentStatus `json:"status" binding:"omitempty,oneof=active maintenance retired"`
}

// ListEquipmentParams defines query parameters for listing equipment.
type ListEquipmentParams struct {
	ListParams
	Status domain.EquipmentStatus `form:"status" binding:"omitempty,oneof=active maintenance retired"`
}

// EquipmentResponse defines the data returned for a machine.
type EquipmentResponse struct {
	EquipmentID            string                 `json:"equipmentID"`
	Name                   string                 `json:"name"`
	Category               string                 `json:"category"`
	Make                   string                 `json:"make"`
	Model                  string                 `json:"model"`
	Year                   int                    `json:"year"`
	PurchasePrice          decimal.Decimal        `json:"purchasePrice"`
	UsefulLifeYears        decimal.Decimal        `json:"usefulLifeYears"`
	SalvageValue           decimal.Decimal        `json:"salvageValue"`
	AnnualOperatingHours   decimal.Decimal        `json:"annualOperatingHours"`
	FuelConsumptionPerHour decimal.Decimal        `json:"fuelConsumptionPerHour"`
	FuelPricePerGallon     decimal.Decimal        `json:"fuelPricePerGallon"`
	AnnualMaintenanceCost  decimal.Decimal        `json:"annualMaintenanceCost"`
	AnnualOtherCosts       decimal.Decimal        `json:"annualOtherCosts"`
	OverheadMultiplier     decimal.Decimal        `json:"overheadMultiplier"`
	HourlyCost             decimal.Decimal        `json:"hourlyCost"`
	Status                 domain.EquipmentStatus `json:"status"`
	CreatedAt              time.Time              `json:"createdAt"`
	LastUpdatedAt          time.Time              `json:"lastUpdatedAt"`
}

// ToEquipmentResponse converts a domain.Equipment to EquipmentResponse DTO
func ToEquipmentResponse(e *domain.Equipment) EquipmentResponse {
	return EquipmentResponse{
		EquipmentID:            e.EquipmentID,
		Name:                   e.Name,
		Category:               e.Category,
		Make:                   e.Make,
		Model:                  e.Model,
		Year:                   e.Year,
		PurchasePrice:          e.PurchasePrice,
		UsefulLifeYears:        e.UsefulLifeYears,
		SalvageValue:           e.SalvageValue,
		AnnualOperatingHours:   e.AnnualOperatingHours,
		FuelConsumptionPerHour: e.FuelConsumptionPerHour,
		FuelPricePerGallon:     e.FuelPricePerGallon,
		AnnualMaintenanceCost:  e.AnnualMaintenanceCost,
		AnnualOtherCosts:       e.AnnualOtherCosts,
		OverheadMultiplier:     e.OverheadMultiplier,
		HourlyCost:             e.HourlyCost,
		Status:                 e.Status,
		CreatedAt:              e.CreatedAt,
		LastUpdatedAt:          e.LastUpdatedAt,
	}
}

// ToListEquipmentResponse converts a slice of domain.Equipment to a slice of EquipmentResponse DTOs
func ToListEquipmentResponse(items []domain.Equipment) []EquipmentResponse {
	res := make([]EquipmentResponse, len(items))
	for i := range items {
		res[i] = ToEquipmentResponse(&items[i])
	}
	return res
}
