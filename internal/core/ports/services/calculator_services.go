package services

import (
	"context"

	"github.com/SscSPs/treeservice_ops/internal/core/costing"
	"github.com/SscSPs/treeservice_ops/internal/dto"
)

// CalculatorSvc runs the cost calculators on unsaved form input.
type CalculatorSvc interface {
	PreviewEquipmentCost(ctx context.Context, req dto.EquipmentCostPreviewRequest) costing.EquipmentCostBreakdown
	PreviewEmployeeBurden(ctx context.Context, req dto.EmployeeBurdenPreviewRequest) costing.BurdenBreakdown

	// PreviewLineItemPrice resolves the selected resources inside the organization before pricing.
	PreviewLineItemPrice(ctx context.Context, companyID string, req dto.LineItemPricePreviewRequest) (*costing.PricingResult, error)
}
