package models

import "github.com/shopspring/decimal"

// Equipment represents a row of the equipment table.
type Equipment struct {
	EquipmentID            string          `db:"equipment_id"`
	CompanyID              string          `db:"company_id"`
	Name                   string          `db:"name"`
	Category               string          `db:"category"`
	Make                   string          `db:"make"`
	Model                  string          `db:"model"`
	Year                   int             `db:"year"`
	PurchasePrice          decimal.Decimal `db:"purchase_price"`
	UsefulLifeYears        decimal.Decimal `db:"useful_life_years"`
	SalvageValue           decimal.Decimal `db:"salvage_value"`
	AnnualOperatingHours   decimal.Decimal `db:"annual_operating_hours"`
	FuelConsumptionPerHour decimal.Decimal `db:"fuel_consumption_per_hour"`
	FuelPricePerGallon     decimal.Decimal `db:"fuel_price_per_gallon"`
	AnnualMaintenanceCost  decimal.Decimal `db:"annual_maintenance_cost"`
	AnnualOtherCosts       decimal.Decimal `db:"annual_other_costs"`
	OverheadMultiplier     decimal.Decimal `db:"overhead_multiplier"`
	HourlyCost             decimal.Decimal `db:"hourly_cost"`
	Status                 string          `db:"status"`
	AuditFields
}
