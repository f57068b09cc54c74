package domain

import "github.com/shopspring/decimal"

// EquipmentStatus tracks whether a machine can be put on jobs.
type EquipmentStatus string

const (
	EquipmentActive      EquipmentStatus = "active"
	EquipmentMaintenance EquipmentStatus = "maintenance"
	EquipmentRetired     EquipmentStatus = "retired"
)

// IsValid reports whether s is a known equipment status.
func (s EquipmentStatus) IsValid() bool {
	switch s {
	case EquipmentActive, EquipmentMaintenance, EquipmentRetired:
		return true
	}
	return false
}

// DefaultOverheadMultiplier applies when a machine has no multiplier set.
var DefaultOverheadMultiplier = decimal.RequireFromString("1.15")

// Equipment is a machine owned by the organization along with its cost inputs.
// HourlyCost is derived and rewritten on every save.
type Equipment struct {
	EquipmentID            string          `json:"equipmentID"`
	CompanyID              string          `json:"companyID"`
	Name                   string          `json:"name"`
	Category               string          `json:"category"`
	Make                   string          `json:"make"`
	Model                  string          `json:"model"`
	Year                   int             `json:"year"`
	PurchasePrice          decimal.Decimal `json:"purchasePrice"`
	UsefulLifeYears        decimal.Decimal `json:"usefulLifeYears"`
	SalvageValue           decimal.Decimal `json:"salvageValue"`
	AnnualOperatingHours   decimal.Decimal `json:"annualOperatingHours"`
	FuelConsumptionPerHour decimal.Decimal `json:"fuelConsumptionPerHour"`
	FuelPricePerGallon     decimal.Decimal `json:"fuelPricePerGallon"`
	AnnualMaintenanceCost  decimal.Decimal `json:"annualMaintenanceCost"`
	AnnualOtherCosts       decimal.Decimal `json:"annualOtherCosts"`
	OverheadMultiplier     decimal.Decimal `json:"overheadMultiplier"`
	HourlyCost             decimal.Decimal `json:"hourlyCost"`
	Status                 EquipmentStatus `json:"status"`
	AuditFields
}
