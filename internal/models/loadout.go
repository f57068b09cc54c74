package models

import "github.com/shopspring/decimal"

// Loadout represents a row of the loadouts table. Members are TEXT[] columns
// and production rates a JSONB array.
type Loadout struct {
	LoadoutID       string          `db:"loadout_id"`
	CompanyID       string          `db:"company_id"`
	Name            string          `db:"name"`
	Description     string          `db:"description"`
	EmployeeIDs     []string        `db:"employee_ids"`
	EquipmentIDs    []string        `db:"equipment_ids"`
	ProductionRates []byte          `db:"production_rates"`
	TotalHourlyCost decimal.Decimal `db:"total_hourly_cost"`
	AuditFields
}
