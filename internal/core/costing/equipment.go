package costing

import (
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EquipmentCostInput holds the acquisition and operating parameters of a machine.
type EquipmentCostInput struct {
	PurchasePrice          decimal.Decimal
	UsefulLifeYears        decimal.Decimal
	SalvageValue           decimal.Decimal
	AnnualOperatingHours   decimal.Decimal
	FuelConsumptionPerHour decimal.Decimal
	FuelPricePerGallon     decimal.Decimal
	AnnualMaintenanceCost  decimal.Decimal
	AnnualOtherCosts       decimal.Decimal
	OverheadMultiplier     decimal.Decimal
}

// EquipmentCostBreakdown is the hourly cost of a machine split by component.
type EquipmentCostBreakdown struct {
	HourlyDepreciation       decimal.Decimal `json:"hourlyDepreciation"`
	HourlyFuel               decimal.Decimal `json:"hourlyFuel"`
	HourlyMaintenance        decimal.Decimal `json:"hourlyMaintenance"`
	HourlyOther              decimal.Decimal `json:"hourlyOther"`
	HourlyCostBeforeOverhead decimal.Decimal `json:"hourlyCostBeforeOverhead"`
	OverheadMultiplier       decimal.Decimal `json:"overheadMultiplier"`
	HourlyCost               decimal.Decimal `json:"hourlyCost"`
}

// EquipmentInputFrom copies the cost inputs off a stored machine.
func EquipmentInputFrom(e domain.Equipment) EquipmentCostInput {
	return EquipmentCostInput{
		PurchasePrice:          e.PurchasePrice,
		UsefulLifeYears:        e.UsefulLifeYears,
		SalvageValue:           e.SalvageValue,
		AnnualOperatingHours:   e.AnnualOperatingHours,
		FuelConsumptionPerHour: e.FuelConsumptionPerHour,
		FuelPricePerGallon:     e.FuelPricePerGallon,
		AnnualMaintenanceCost:  e.AnnualMaintenanceCost,
		AnnualOtherCosts:       e.AnnualOtherCosts,
		OverheadMultiplier:     e.OverheadMultiplier,
	}
}

// CalculateEquipmentCost converts acquisition and operating parameters into an
// hourly cost. Zero or negative operating hours and useful life are treated as 1;
// a missing overhead multiplier falls back to domain.DefaultOverheadMultiplier.
// Negative prices are not checked here.
func CalculateEquipmentCost(in EquipmentCostInput) EquipmentCostBreakdown {
	hours := positiveOr(in.AnnualOperatingHours, one)
	life := positiveOr(in.UsefulLifeYears, one)
	multiplier := positiveOr(in.OverheadMultiplier, domain.DefaultOverheadMultiplier)

	depreciation := in.PurchasePrice.Sub(in.SalvageValue).Div(life).Div(hours)
	fuel := in.FuelConsumptionPerHour.Mul(in.FuelPricePerGallon)
	maintenance := in.AnnualMaintenanceCost.Div(hours)
	other := in.AnnualOtherCosts.Div(hours)

	subtotal := Sum(depreciation, fuel, maintenance, other)

	return EquipmentCostBreakdown{
		HourlyDepreciation:       depreciation,
		HourlyFuel:               fuel,
		HourlyMaintenance:        maintenance,
		HourlyOther:              other,
		HourlyCostBeforeOverhead: subtotal,
		OverheadMultiplier:       multiplier,
		HourlyCost:               subtotal.Mul(multiplier),
	}
}

// ApplyEquipmentCost recomputes the derived fields of e from its own inputs.
func ApplyEquipmentCost(e *domain.Equipment) EquipmentCostBreakdown {
	b := CalculateEquipmentCost(EquipmentInputFrom(*e))
	e.OverheadMultiplier = b.OverheadMultiplier
	e.HourlyCost = b.HourlyCost
	return b
}
