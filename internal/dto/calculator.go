package dto

import (
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EquipmentCostPreviewRequest runs the equipment cost calculator on unsaved inputs.
type EquipmentCostPreviewRequest struct {
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

// EmployeeBurdenPreviewRequest runs the burden calculator on unsaved inputs.
type EmployeeBurdenPreviewRequest struct {
	PayType                 domain.PayType  `json:"payType" binding:"required,oneof=hourly salary"`
	BaseHourlyRate          decimal.Decimal `json:"baseHourlyRate" binding:"gte=0"`
	AnnualSalary            decimal.Decimal `json:"annualSalary" binding:"gte=0"`
	ExpectedAnnualHours     decimal.Decimal `json:"expectedAnnualHours" binding:"gte=0"`
	WorkersCompRate         decimal.Decimal `json:"workersCompRate" binding:"gte=0,lte=100"`
	PayrollTaxRate          decimal.Decimal `json:"payrollTaxRate" binding:"gte=0,lte=100"`
	HealthInsuranceMonthly  decimal.Decimal `json:"healthInsuranceMonthly" binding:"gte=0"`
	PTODays                 int             `json:"ptoDays" binding:"gte=0,lte=365"`
	HolidayDays             int             `json:"holidayDays" binding:"gte=0,lte=365"`
	PhoneAllowanceMonthly   decimal.Decimal `json:"phoneAllowanceMonthly" binding:"gte=0"`
	VehicleAllowanceMonthly decimal.Decimal `json:"vehicleAllowanceMonthly" binding:"gte=0"`
}

// LineItemPricePreviewRequest prices a line item without saving it.
type LineItemPricePreviewRequest struct {
	ServiceType      string           `json:"serviceType"`
	Quantity         decimal.Decimal  `json:"quantity" binding:"gt=0"`
	DifficultyFactor decimal.Decimal  `json:"difficultyFactor" binding:"gte=0"`
	ProductionRate   *decimal.Decimal `json:"productionRate" binding:"omitempty,gt=0"`
	MarginPercent    decimal.Decimal  `json:"marginPercent" binding:"gte=0"`
	LineItemResources
}
