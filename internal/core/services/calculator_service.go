package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/treeservice_ops/internal/core/costing"
	portsrepo "github.com/SscSPs/treeservice_ops/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/treeservice_ops/internal/core/ports/services"
	"github.com/SscSPs/treeservice_ops/internal/dto"
	"github.com/shopspring/decimal"
)

type calculatorService struct {
	BaseService
	resources          *resourceResolver
	overheadMultiplier decimal.Decimal
	annualHours        decimal.Decimal
}

// NewCalculatorService creates the preview calculators. The multiplier and
// annual hours fill in inputs left at zero.
func NewCalculatorService(
	employees portsrepo.EmployeeReader,
	equipment portsrepo.EquipmentReader,
	loadouts portsrepo.LoadoutReader,
	overheadMultiplier, annualHours decimal.Decimal,
	opts ...Option,
) portssvc.CalculatorSvc {
	s := &calculatorService{
		BaseService:        newBaseService(opts),
		overheadMultiplier: overheadMultiplier,
		annualHours:        annualHours,
	}
	s.resources = newResourceResolver(&s.BaseService, employees, equipment, loadouts)
	return s
}

var _ portssvc.CalculatorSvc = (*calculatorService)(nil)

func (s *calculatorService) PreviewEquipmentCost(_ context.Context, req dto.EquipmentCostPreviewRequest) costing.EquipmentCostBreakdown {
	multiplier := req.OverheadMultiplier
	if !multiplier.IsPositive() {
		multiplier = s.overheadMultiplier
	}
	return costing.CalculateEquipmentCost(costing.EquipmentCostInput{
		PurchasePrice:          req.PurchasePrice,
		UsefulLifeYears:        req.UsefulLifeYears,
		SalvageValue:           req.SalvageValue,
		AnnualOperatingHours:   req.AnnualOperatingHours,
		FuelConsumptionPerHour: req.FuelConsumptionPerHour,
		FuelPricePerGallon:     req.FuelPricePerGallon,
		AnnualMaintenanceCost:  req.AnnualMaintenanceCost,
		AnnualOtherCosts:       req.AnnualOtherCosts,
		OverheadMultiplier:     multiplier,
	})
}

func (s *calculatorService) PreviewEmployeeBurden(_ context.Context, req dto.EmployeeBurdenPreviewRequest) costing.BurdenBreakdown {
	return costing.CalculateEmployeeBurden(costing.BurdenInput{
		PayType:                 req.PayType,
		BaseHourlyRate:          req.BaseHourlyRate,
		AnnualSalary:            req.AnnualSalary,
		ExpectedAnnualHours:     req.ExpectedAnnualHours,
		WorkersCompRate:         req.WorkersCompRate,
		PayrollTaxRate:          req.PayrollTaxRate,
		HealthInsuranceMonthly:  req.HealthInsuranceMonthly,
		PTODays:                 req.PTODays,
		HolidayDays:             req.HolidayDays,
		PhoneAllowanceMonthly:   req.PhoneAllowanceMonthly,
		VehicleAllowanceMonthly: req.VehicleAllowanceMonthly,
	}, s.annualHours)
}

// PreviewLineItemPrice prices unsaved line item input at the current rates
// of the selected resources.
func (s *calculatorService) PreviewLineItemPrice(ctx context.Context, companyID string, req dto.LineItemPricePreviewRequest) (*costing.PricingResult, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}
	loadoutID := ""
	if req.LoadoutID != nil {
		loadoutID = *req.LoadoutID
	}
	set, err := s.resources.resolve(ctx, companyID, loadoutID, req.EmployeeIDs, req.EquipmentIDs, req.ServiceType)
	if err != nil {
		s.logUnlessExpected(ctx, err, "Failed to resolve preview resources", slog.String("loadout_id", loadoutID))
		return nil, err
	}

	rate := decimal.Zero
	switch {
	case req.ProductionRate != nil:
		rate = *req.ProductionRate
	case set.HasLoadoutRate:
		rate = set.LoadoutRate
	}
	result, err := costing.CalculateLineItemPrice(costing.PricingInput{
		Quantity:         req.Quantity,
		DifficultyFactor: req.DifficultyFactor,
		ProductionRate:   rate,
		MarginPercent:    req.MarginPercent,
		CostPerHour:      set.CostPerHour,
		HasResources:     set.HasResources,
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
