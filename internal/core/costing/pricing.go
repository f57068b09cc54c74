package costing

import (
	"fmt"

	"github.com/SscSPs/treeservice_ops/internal/apperrors"
	"github.com/shopspring/decimal"
)

// PricingInput describes the scope of one billable line item and the
// resources chosen to perform it.
type PricingInput struct {
	Quantity         decimal.Decimal
	DifficultyFactor decimal.Decimal
	ProductionRate   decimal.Decimal
	MarginPercent    decimal.Decimal
	// CostPerHour is the loadout's total or the sum of the selected resources.
	CostPerHour decimal.Decimal
	// HasResources is false when neither a loadout nor any employee or
	// machine was selected.
	HasResources bool
}

// PricingResult is the estimate and customer price of a line item.
type PricingResult struct {
	BaseScore        decimal.Decimal `json:"baseScore"`
	ProductionRate   decimal.Decimal `json:"productionRate"`
	EstimatedHours   decimal.Decimal `json:"estimatedHours"`
	TotalCostPerHour decimal.Decimal `json:"totalCostPerHour"`
	BillingRate      decimal.Decimal `json:"billingRate"`
	TotalCost        decimal.Decimal `json:"totalCost"`
	LineItemTotal    decimal.Decimal `json:"lineItemTotal"`
	Profit           decimal.Decimal `json:"profit"`
}

// CalculateLineItemPrice turns scope and resources into hours, cost and price.
// Margin is applied to the hourly cost, so LineItemTotal - TotalCost is always
// TotalCost * margin / 100.
func CalculateLineItemPrice(in PricingInput) (PricingResult, error) {
	if !in.HasResources {
		return PricingResult{}, fmt.Errorf("%w: select a loadout or at least one employee or machine", apperrors.ErrValidation)
	}
	if in.Quantity.LessThanOrEqual(decimal.Zero) {
		return PricingResult{}, fmt.Errorf("%w: quantity must be greater than zero", apperrors.ErrValidation)
	}
	if in.MarginPercent.IsNegative() {
		return PricingResult{}, fmt.Errorf("%w: margin cannot be negative", apperrors.ErrValidation)
	}

	score := in.Quantity.Mul(positiveOr(in.DifficultyFactor, one))
	rate := positiveOr(in.ProductionRate, one)
	hours := score.Div(rate)

	billingRate := in.CostPerHour.Mul(one.Add(in.MarginPercent.Div(hundred)))
	totalCost := in.CostPerHour.Mul(hours)
	total := billingRate.Mul(hours)

	return PricingResult{
		BaseScore:        score,
		ProductionRate:   rate,
		EstimatedHours:   hours,
		TotalCostPerHour: in.CostPerHour,
		BillingRate:      billingRate,
		TotalCost:        totalCost,
		LineItemTotal:    total,
		Profit:           total.Sub(totalCost),
	}, nil
}

// SumResourceRates totals employee effective rates and machine hourly costs.
func SumResourceRates(employeeRates, equipmentCosts []decimal.Decimal) decimal.Decimal {
	return Sum(employeeRates...).Add(Sum(equipmentCosts...))
}
