package costing_test

import (
	"testing"

	"github.com/SscSPs/treeservice_ops/internal/core/costing"
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func mulcherInput() costing.EquipmentCostInput {
	return costing.EquipmentCostInput{
		PurchasePrice:          d("165000"),
		UsefulLifeYears:        d("5"),
		SalvageValue:           d("33000"),
		AnnualOperatingHours:   d("1500"),
		FuelConsumptionPerHour: d("4.5"),
		FuelPricePerGallon:     d("3.50"),
		AnnualMaintenanceCost:  d("6750"),
		AnnualOtherCosts:       d("1500"),
		OverheadMultiplier:     d("1.15"),
	}
}

func TestCalculateEquipmentCost_Mulcher(t *testing.T) {
	b := costing.CalculateEquipmentCost(mulcherInput())

	assertDecimal(t, "17.6", b.HourlyDepreciation)
	assertDecimal(t, "15.75", b.HourlyFuel)
	assertDecimal(t, "4.5", b.HourlyMaintenance)
	assertDecimal(t, "1", b.HourlyOther)
	assertDecimal(t, "38.85", b.HourlyCostBeforeOverhead)
	assertDecimal(t, "44.6775", b.HourlyCost)
}

func TestCalculateEquipmentCost_HourlyCostIsSubtotalTimesMultiplier(t *testing.T) {
	inputs := []costing.EquipmentCostInput{
		mulcherInput(),
		{PurchasePrice: d("42000"), UsefulLifeYears: d("7"), SalvageValue: d("5000"), AnnualOperatingHours: d("900"), FuelConsumptionPerHour: d("1.2"), FuelPricePerGallon: d("4.1"), AnnualMaintenanceCost: d("2100"), OverheadMultiplier: d("1.3")},
		{PurchasePrice: d("8000"), UsefulLifeYears: d("3"), AnnualOperatingHours: d("400")},
	}

	for i, in := range inputs {
		b := costing.CalculateEquipmentCost(in)
		sum := b.HourlyDepreciation.Add(b.HourlyFuel).Add(b.HourlyMaintenance).Add(b.HourlyOther)
		assert.True(t, sum.Equal(b.HourlyCostBeforeOverhead), "case %d", i)
		assert.True(t, sum.Mul(b.OverheadMultiplier).Equal(b.HourlyCost), "case %d", i)
	}
}

func TestCalculateEquipmentCost_Guards(t *testing.T) {
	in := mulcherInput()
	in.AnnualOperatingHours = decimal.Zero
	in.UsefulLifeYears = decimal.Zero
	in.OverheadMultiplier = decimal.Zero

	b := costing.CalculateEquipmentCost(in)

	// 132000 / 1 / 1
	assertDecimal(t, "132000", b.HourlyDepreciation)
	assertDecimal(t, "6750", b.HourlyMaintenance)
	assertDecimal(t, "1.15", b.OverheadMultiplier)
}

func TestApplyEquipmentCost_WritesDerivedFields(t *testing.T) {
	in := mulcherInput()
	eq := domain.Equipment{
		PurchasePrice:          in.PurchasePrice,
		UsefulLifeYears:        in.UsefulLifeYears,
		SalvageValue:           in.SalvageValue,
		AnnualOperatingHours:   in.AnnualOperatingHours,
		FuelConsumptionPerHour: in.FuelConsumptionPerHour,
		FuelPricePerGallon:     in.FuelPricePerGallon,
		AnnualMaintenanceCost:  in.AnnualMaintenanceCost,
		AnnualOtherCosts:       in.AnnualOtherCosts,
	}

	costing.ApplyEquipmentCost(&eq)

	assertDecimal(t, "1.15", eq.OverheadMultiplier)
	assertDecimal(t, "44.6775", eq.HourlyCost)
}
