package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/treeservice_ops/internal/core/ports/services"
	"github.com/SscSPs/treeservice_ops/internal/dto"
	"github.com/gin-gonic/gin"
)

// workforceHandler serves the organization's workforce catalog.
type workforceHandler struct {
	workforceService portssvc.WorkforceCatalogSvc
}

func registerWorkforceRoutes(rg *gin.RouterGroup, workforceService portssvc.WorkforceCatalogSvc) {
	h := &workforceHandler{workforceService: workforceService}

	tracks := rg.Group("/career-tracks")
	{
		tracks.GET("", h.listCareerTracks)
		tracks.POST("", h.createCareerTrack)
		tracks.DELETE("/:id", h.deleteCareerTrack)
	}

	levels := rg.Group("/management-levels")
	{
		levels.GET("", h.listManagementLevels)
		levels.POST("", h.createManagementLevel)
		levels.DELETE("/:id", h.deleteManagementLevel)
	}

	certs := rg.Group("/certifications")
	{
		certs.GET("", h.listCertifications)
		certs.POST("", h.createCertification)
		certs.DELETE("/:id", h.deleteCertification)
	}
}

// listCareerTracks godoc
// @Summary List career tracks
// @Tags workforce
// @Produce  json
// @Success 200 {array} domain.CareerTrack
// @Security BearerAuth
// @Router /career-tracks [get]
func (h *workforceHandler) listCareerTracks(c *gin.Context) {
	_, companyID, ok := caller(c)
	if !ok {
		return
	}
	tracks, err := h.workforceService.ListCareerTracks(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err, "Failed to list career tracks")
		return
	}
	c.JSON(http.StatusOK, tracks)
}

// createCareerTrack godoc
// @Summary Create a career track
// @Tags workforce
// @Accept  json
// @Produce  json
// @Param   track body dto.CreateCareerTrackRequest true "Career track"
// @Success 201 {object} domain.CareerTrack
// @Failure 409 {object} dto.ErrorResponse "Name already in use"
// @Security BearerAuth
// @Router /career-tracks [post]
func (h *workforceHandler) createCareerTrack(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	var req dto.CreateCareerTrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}
	track, err := h.workforceService.CreateCareerTrack(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create career track")
		return
	}
	c.JSON(http.StatusCreated, track)
}

// deleteCareerTrack godoc
// @Summary Delete a career track
// @Description Refused while employee skills reference the track
// @Tags workforce
// @Param   id path string true "Career track ID"
// @Success 204 "Career track deleted"
// @Failure 400 {object} dto.ErrorResponse "Career track still referenced"
// @Security BearerAuth
// @Router /career-tracks/{id} [delete]
func (h *workforceHandler) deleteCareerTrack(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	if err := h.workforceService.DeleteCareerTrack(c.Request.Context(), companyID, c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to delete career track")
		return
	}
	c.Status(http.StatusNoContent)
}

// listManagementLevels godoc
// @Summary List management levels
// @Tags workforce
// @Produce  json
// @Success 200 {array} domain.ManagementLevel
// @Security BearerAuth
// @Router /management-levels [get]
func (h *workforceHandler) listManagementLevels(c *gin.Context) {
	_, companyID, ok := caller(c)
	if !ok {
		return
	}
	levels, err := h.workforceService.ListManagementLevels(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err, "Failed to list management levels")
		return
	}
	c.JSON(http.StatusOK, levels)
}

// createManagementLevel godoc
// @Summary Create a management level
// @Tags workforce
// @Accept  json
// @Produce  json
// @Param   level body dto.CreateManagementLevelRequest true "Management level"
// @Success 201 {object} domain.ManagementLevel
// @Security BearerAuth
// @Router /management-levels [post]
func (h *workforceHandler) createManagementLevel(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	var req dto.CreateManagementLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}
	level, err := h.workforceService.CreateManagementLevel(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create management level")
		return
	}
	c.JSON(http.StatusCreated, level)
}

// deleteManagementLevel godoc
// @Summary Delete a management level
// @Description Refused while employees hold the level
// @Tags workforce
// @Param   id path string true "Management level ID"
// @Success 204 "Management level deleted"
// @Failure 400 {object} dto.ErrorResponse "Management level still referenced"
// @Security BearerAuth
// @Router /management-levels/{id} [delete]
func (h *workforceHandler) deleteManagementLevel(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	if err := h.workforceService.DeleteManagementLevel(c.Request.Context(), companyID, c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to delete management level")
		return
	}
	c.Status(http.StatusNoContent)
}

// listCertifications godoc
// @Summary List certification types
// @Tags workforce
// @Produce  json
// @Success 200 {array} domain.Certification
// @Security BearerAuth
// @Router /certifications [get]
func (h *workforceHandler) listCertifications(c *gin.Context) {
	_, companyID, ok := caller(c)
	if !ok {
		return
	}
	certs, err := h.workforceService.ListCertifications(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err, "Failed to list certifications")
		return
	}
	c.JSON(http.StatusOK, certs)
}

// createCertification godoc
// @Summary Create a certification type
// @Tags workforce
// @Accept  json
// @Produce  json
// @Param   certification body dto.CreateCertificationRequest true "Certification"
// @Success 201 {object} domain.Certification
// @Security BearerAuth
// @Router /certifications [post]
func (h *workforceHandler) createCertification(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	var req dto.CreateCertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}
	cert, err := h.workforceService.CreateCertification(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create certification")
		return
	}
	c.JSON(http.StatusCreated, cert)
}

// deleteCertification godoc
// @Summary Delete a certification type
// @Description Refused while employees hold an active assignment of it
// @Tags workforce
// @Param   id path string true "Certification ID"
// @Success 204 "Certification deleted"
// @Failure 400 {object} dto.ErrorResponse "Certification still held"
// @Security BearerAuth
// @Router /certifications/{id} [delete]
func (h *workforceHandler) deleteCertification(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	if err := h.workforceService.DeleteCertification(c.Request.Context(), companyID, c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to delete certification")
		return
	}
	c.Status(http.StatusNoContent)
}
