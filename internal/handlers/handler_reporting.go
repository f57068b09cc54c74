package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/treeservice_ops/internal/core/ports/services"
	"github.com/SscSPs/treeservice_ops/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler serves project reports across jobs and the dashboard.
type reportingHandler struct {
	reportService    portssvc.ProjectReportSvcFacade
	analyticsService portssvc.AnalyticsSvc
}

func registerReportingRoutes(rg *gin.RouterGroup, reportService portssvc.ProjectReportSvcFacade, analyticsService portssvc.AnalyticsSvc) {
	h := &reportingHandler{reportService: reportService, analyticsService: analyticsService}

	rg.GET("/reports", h.listReports)
	rg.GET("/analytics/dashboard", h.getDashboard)
}

// listReports godoc
// @Summary List project reports
// @Tags reports
// @Produce  json
// @Param   limit query int false "Limit number of results" default(50)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {array} domain.ProjectReport
// @Security BearerAuth
// @Router /reports [get]
func (h *reportingHandler) listReports(c *gin.Context) {
	_, companyID, ok := caller(c)
	if !ok {
		return
	}
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "query parameters", err)
		return
	}
	reports, err := h.reportService.ListReports(c.Request.Context(), companyID, params)
	if err != nil {
		respondError(c, err, "Failed to list reports")
		return
	}
	c.JSON(http.StatusOK, reports)
}

// getDashboard godoc
// @Summary Profitability dashboard
// @Description Aggregates jobs created in the range into totals, top performers and equipment utilization
// @Tags reports
// @Produce  json
// @Param   from query string false "Start of range (RFC3339)"
// @Param   to query string false "End of range (RFC3339)"
// @Param   topN query int false "Entries per leaderboard"
// @Success 200 {object} domain.Dashboard
// @Failure 400 {object} dto.ErrorResponse "Invalid range"
// @Security BearerAuth
// @Router /analytics/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	_, companyID, ok := caller(c)
	if !ok {
		return
	}
	var params dto.DashboardParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "query parameters", err)
		return
	}
	dashboard, err := h.analyticsService.GetDashboard(c.Request.Context(), companyID, params)
	if err != nil {
		respondError(c, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
