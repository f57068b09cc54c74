package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/treeservice_ops/internal/core/ports/services"
	"github.com/SscSPs/treeservice_ops/internal/dto"
	"github.com/gin-gonic/gin"
)

type calculatorHandler struct {
	calculatorService portssvc.CalculatorSvc
}

func registerCalculatorRoutes(rg *gin.RouterGroup, calculatorService portssvc.CalculatorSvc) {
	h := &calculatorHandler{calculatorService: calculatorService}

	calc := rg.Group("/calculators")
	{
		calc.POST("/equipment-cost", h.equipmentCost)
		calc.POST("/employee-burden", h.employeeBurden)
		calc.POST("/line-item-price", h.lineItemPrice)
	}
}

// equipmentCost godoc
// @Summary Preview an equipment hourly cost
// @Tags calculators
// @Accept  json
// @Produce  json
// @Param   inputs body dto.EquipmentCostPreviewRequest true "Cost inputs"
// @Success 200 {object} costing.EquipmentCostBreakdown
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /calculators/equipment-cost [post]
func (h *calculatorHandler) equipmentCost(c *gin.Context) {
	if _, _, ok := caller(c); !ok {
		return
	}
	var req dto.EquipmentCostPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}
	c.JSON(http.StatusOK, h.calculatorService.PreviewEquipmentCost(c.Request.Context(), req))
}

// employeeBurden godoc
// @Summary Preview an employee burden
// @Tags calculators
// @Accept  json
// @Produce  json
// @Param   inputs body dto.EmployeeBurdenPreviewRequest true "Burden inputs"
// @Success 200 {object} costing.BurdenBreakdown
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /calculators/employee-burden [post]
func (h *calculatorHandler) employeeBurden(c *gin.Context) {
	if _, _, ok := caller(c); !ok {
		return
	}
	var req dto.EmployeeBurdenPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}
	c.JSON(http.StatusOK, h.calculatorService.PreviewEmployeeBurden(c.Request.Context(), req))
}

// lineItemPrice godoc
// @Summary Preview a line item price
// @Description Prices work from a loadout or crew without saving anything
// @Tags calculators
// @Accept  json
// @Produce  json
// @Param   inputs body dto.LineItemPricePreviewRequest true "Pricing inputs"
// @Success 200 {object} costing.PricingResult
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Security BearerAuth
// @Router /calculators/line-item-price [post]
func (h *calculatorHandler) lineItemPrice(c *gin.Context) {
	_, companyID, ok := caller(c)
	if !ok {
		return
	}
	var req dto.LineItemPricePreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}
	result, err := h.calculatorService.PreviewLineItemPrice(c.Request.Context(), companyID, req)
	if err != nil {
		respondError(c, err, "Failed to price line item")
		return
	}
	c.JSON(http.StatusOK, result)
}
