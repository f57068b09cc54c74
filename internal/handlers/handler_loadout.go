package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/treeservice_ops/internal/core/ports/services"
	"github.com/SscSPs/treeservice_ops/internal/dto"
	"github.com/gin-gonic/gin"
)

type loadoutHandler struct {
	loadoutService portssvc.LoadoutSvcFacade
}

func registerLoadoutRoutes(rg *gin.RouterGroup, loadoutService portssvc.LoadoutSvcFacade) {
	h := &loadoutHandler{loadoutService: loadoutService}

	loadouts := rg.Group("/loadouts")
	{
		loadouts.POST("", h.createLoadout)
		loadouts.GET("", h.listLoadouts)
		loadouts.GET("/:id", h.getLoadout)
		loadouts.PUT("/:id", h.updateLoadout)
		loadouts.DELETE("/:id", h.deleteLoadout)
	}
}

// createLoadout godoc
// @Summary Create a loadout
// @Description Bundles employees and equipment into a crew with production rates per service type
// @Tags loadouts
// @Accept  json
// @Produce  json
// @Param   loadout body dto.CreateLoadoutRequest true "Loadout details"
// @Success 201 {object} dto.LoadoutResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /loadouts [post]
func (h *loadoutHandler) createLoadout(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	var req dto.CreateLoadoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}
	loadout, err := h.loadoutService.CreateLoadout(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create loadout")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLoadoutResponse(loadout))
}

// listLoadouts godoc
// @Summary List loadouts
// @Tags loadouts
// @Produce  json
// @Param   limit query int false "Limit number of results" default(50)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {array} dto.LoadoutResponse
// @Security BearerAuth
// @Router /loadouts [get]
func (h *loadoutHandler) listLoadouts(c *gin.Context) {
	_, companyID, ok := caller(c)
	if !ok {
		return
	}
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "query parameters", err)
		return
	}
	loadouts, err := h.loadoutService.ListLoadouts(c.Request.Context(), companyID, params)
	if err != nil {
		respondError(c, err, "Failed to list loadouts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLoadoutResponse(loadouts))
}

// getLoadout godoc
// @Summary Get a loadout by ID
// @Tags loadouts
// @Produce  json
// @Param   id path string true "Loadout ID"
// @Success 200 {object} dto.LoadoutResponse
// @Failure 404 {object} dto.ErrorResponse "Loadout not found"
// @Security BearerAuth
// @Router /loadouts/{id} [get]
func (h *loadoutHandler) getLoadout(c *gin.Context) {
	_, companyID, ok := caller(c)
	if !ok {
		return
	}
	loadout, err := h.loadoutService.GetLoadoutByID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve loadout")
		return
	}
	c.JSON(http.StatusOK, dto.ToLoadoutResponse(loadout))
}

// updateLoadout godoc
// @Summary Update a loadout
// @Description Replaces the provided parts and recomputes the hourly total
// @Tags loadouts
// @Accept  json
// @Produce  json
// @Param   id path string true "Loadout ID"
// @Param   loadout body dto.UpdateLoadoutRequest true "Fields to change"
// @Success 200 {object} dto.LoadoutResponse
// @Security BearerAuth
// @Router /loadouts/{id} [put]
func (h *loadoutHandler) updateLoadout(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	var req dto.UpdateLoadoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}
	loadout, err := h.loadoutService.UpdateLoadout(c.Request.Context(), companyID, c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update loadout")
		return
	}
	c.JSON(http.StatusOK, dto.ToLoadoutResponse(loadout))
}

// deleteLoadout godoc
// @Summary Delete a loadout
// @Description Refused while line items are priced from the loadout
// @Tags loadouts
// @Param   id path string true "Loadout ID"
// @Success 204 "Loadout deleted"
// @Failure 400 {object} dto.ErrorResponse "Loadout still referenced by line items"
// @Security BearerAuth
// @Router /loadouts/{id} [delete]
func (h *loadoutHandler) deleteLoadout(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	if err := h.loadoutService.DeleteLoadout(c.Request.Context(), companyID, c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to delete loadout")
		return
	}
	c.Status(http.StatusNoContent)
}
