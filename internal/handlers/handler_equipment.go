package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/treeservice_ops/internal/core/ports/services"
	"github.com/SscSPs/treeservice_ops/internal/dto"
	"github.com/SscSPs/treeservice_ops/internal/middleware"
	"github.com/gin-gonic/gin"
)

type equipmentHandler struct {
	equipmentService portssvc.EquipmentSvcFacade
}

func registerEquipmentRoutes(rg *gin.RouterGroup, equipmentService portssvc.EquipmentSvcFacade) {
	h := &equipmentHandler{equipmentService: equipmentService}

	equipment := rg.Group("/equipment")
	{
		equipment.POST("", h.createEquipment)
		equipment.GET("", h.listEquipment)
		equipment.GET("/:id", h.getEquipment)
		equipment.PUT("/:id", h.updateEquipment)
		equipment.DELETE("/:id", h.retireEquipment)
		equipment.GET("/:id/cost", h.getCostBreakdown)
	}
}

// createEquipment godoc
// @Summary Create a machine
// @Description Creates equipment and derives its hourly cost
// @Tags equipment
// @Accept  json
// @Produce  json
// @Param   equipment body dto.CreateEquipmentRequest true "Equipment details"
// @Success 201 {object} dto.EquipmentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /equipment [post]
func (h *equipmentHandler) createEquipment(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	var req dto.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}

	equipment, err := h.equipmentService.CreateEquipment(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create equipment")
		return
	}
	middleware.GetLoggerFromContext(c).Info("Equipment created",
		slog.String("equipment_id", equipment.EquipmentID),
		slog.String("hourly_cost", equipment.HourlyCost.StringFixed(2)))
	c.JSON(http.StatusCreated, dto.ToEquipmentResponse(equipment))
}

// listEquipment godoc
// @Summary List equipment
// @Tags equipment
// @Produce  json
// @Param   limit query int false "Limit number of results" default(50)
// @Param   offset query int false "Offset for pagination" default(0)
// @Param   status query string false "Filter by status" Enums(active, maintenance, retired)
// @Success 200 {array} dto.EquipmentResponse
// @Security BearerAuth
// @Router /equipment [get]
func (h *equipmentHandler) listEquipment(c *gin.Context) {
	_, companyID, ok := caller(c)
	if !ok {
		return
	}
	var params dto.ListEquipmentParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "query parameters", err)
		return
	}

	items, err := h.equipmentService.ListEquipment(c.Request.Context(), companyID, params)
	if err != nil {
		respondError(c, err, "Failed to list equipment")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEquipmentResponse(items))
}

// getEquipment godoc
// @Summary Get a machine by ID
// @Tags equipment
// @Produce  json
// @Param   id path string true "Equipment ID"
// @Success 200 {object} dto.EquipmentResponse
// @Failure 404 {object} dto.ErrorResponse "Equipment not found"
// @Security BearerAuth
// @Router /equipment/{id} [get]
func (h *equipmentHandler) getEquipment(c *gin.Context) {
	_, companyID, ok := caller(c)
	if !ok {
		return
	}
	equipment, err := h.equipmentService.GetEquipmentByID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve equipment")
		return
	}
	c.JSON(http.StatusOK, dto.ToEquipmentResponse(equipment))
}

// updateEquipment godoc
// @Summary Update a machine
// @Tags equipment
// @Accept  json
// @Produce  json
// @Param   id path string true "Equipment ID"
// @Param   equipment body dto.UpdateEquipmentRequest true "Fields to change"
// @Success 200 {object} dto.EquipmentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Equipment not found"
// @Security BearerAuth
// @Router /equipment/{id} [put]
func (h *equipmentHandler) updateEquipment(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	var req dto.UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}

	equipment, err := h.equipmentService.UpdateEquipment(c.Request.Context(), companyID, c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update equipment")
		return
	}
	c.JSON(http.StatusOK, dto.ToEquipmentResponse(equipment))
}

// retireEquipment godoc
// @Summary Retire a machine
// @Tags equipment
// @Param   id path string true "Equipment ID"
// @Success 204 "Equipment retired"
// @Failure 404 {object} dto.ErrorResponse "Equipment not found"
// @Security BearerAuth
// @Router /equipment/{id} [delete]
func (h *equipmentHandler) retireEquipment(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	if err := h.equipmentService.RetireEquipment(c.Request.Context(), companyID, c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to retire equipment")
		return
	}
	c.Status(http.StatusNoContent)
}

// getCostBreakdown godoc
// @Summary Get a machine's hourly cost breakdown
// @Tags equipment
// @Produce  json
// @Param   id path string true "Equipment ID"
// @Success 200 {object} costing.EquipmentCostBreakdown
// @Security BearerAuth
// @Router /equipment/{id}/cost [get]
func (h *equipmentHandler) getCostBreakdown(c *gin.Context) {
	_, companyID, ok := caller(c)
	if !ok {
		return
	}
	breakdown, err := h.equipmentService.GetCostBreakdown(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to compute equipment cost")
		return
	}
	c.JSON(http.StatusOK, breakdown)
}
