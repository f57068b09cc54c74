package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/treeservice_ops/internal/core/ports/services"
	"github.com/SscSPs/treeservice_ops/internal/dto"
	"github.com/SscSPs/treeservice_ops/internal/middleware"
	"github.com/gin-gonic/gin"
)

type timeLogHandler struct {
	timeLogService portssvc.TimeLogSvcFacade
}

func registerTimeLogRoutes(rg *gin.RouterGroup, timeLogService portssvc.TimeLogSvcFacade) {
	h := &timeLogHandler{timeLogService: timeLogService}

	logs := rg.Group("/time-logs")
	{
		logs.GET("", h.listTimeLogs)
		logs.POST("", h.createTimeLog)
		logs.POST("/start", h.startTimer)
		logs.GET("/active", h.getActiveTimer)
		logs.GET("/:id", h.getTimeLog)
		logs.PUT("/:id", h.updateTimeLog)
		logs.DELETE("/:id", h.deleteTimeLog)
		logs.POST("/:id/stop", h.stopTimer)
	}
}

// listTimeLogs godoc
// @Summary List time logs
// @Tags time-logs
// @Produce  json
// @Param   limit query int false "Limit number of results" default(50)
// @Param   offset query int false "Offset for pagination" default(0)
// @Param   jobID query string false "Filter by job"
// @Param   employeeID query string false "Filter by employee"
// @Param   from query string false "Start of range (RFC3339)"
// @Param   to query string false "End of range (RFC3339)"
// @Success 200 {array} dto.TimeLogResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Security BearerAuth
// @Router /time-logs [get]
func (h *timeLogHandler) listTimeLogs(c *gin.Context) {
	_, companyID, ok := caller(c)
	if !ok {
		return
	}
	var params dto.ListTimeLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "query parameters", err)
		return
	}
	logs, err := h.timeLogService.ListTimeLogs(c.Request.Context(), companyID, params)
	if err != nil {
		respondError(c, err, "Failed to list time logs")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTimeLogResponse(logs))
}

// createTimeLog godoc
// @Summary Record a closed time entry
// @Tags time-logs
// @Accept  json
// @Produce  json
// @Param   timeLog body dto.CreateTimeLogRequest true "Time entry"
// @Success 201 {object} dto.TimeLogResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or job closed"
// @Security BearerAuth
// @Router /time-logs [post]
func (h *timeLogHandler) createTimeLog(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	var req dto.CreateTimeLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}
	log, err := h.timeLogService.CreateTimeLog(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create time log")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTimeLogResponse(log))
}

// startTimer godoc
// @Summary Start a timer
// @Description Opens a running time log for an employee. An employee can only run one timer at a time.
// @Tags time-logs
// @Accept  json
// @Produce  json
// @Param   timer body dto.StartTimerRequest true "Timer details"
// @Success 201 {object} dto.TimeLogResponse
// @Failure 400 {object} dto.ErrorResponse "Timer already running or job closed"
// @Security BearerAuth
// @Router /time-logs/start [post]
func (h *timeLogHandler) startTimer(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	var req dto.StartTimerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}
	log, err := h.timeLogService.StartTimer(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to start timer")
		return
	}
	middleware.GetLoggerFromContext(c).Info("Timer started",
		slog.String("time_log_id", log.TimeLogID),
		slog.String("employee_id", log.EmployeeID))
	c.JSON(http.StatusCreated, dto.ToTimeLogResponse(log))
}

// stopTimer godoc
// @Summary Stop a running timer
// @Description Closes the log and captures the employee and equipment rates in force
// @Tags time-logs
// @Accept  json
// @Produce  json
// @Param   id path string true "Time log ID"
// @Param   stop body dto.StopTimerRequest false "Optional end time and notes"
// @Success 200 {object} dto.TimeLogResponse
// @Failure 400 {object} dto.ErrorResponse "Timer not running"
// @Security BearerAuth
// @Router /time-logs/{id}/stop [post]
func (h *timeLogHandler) stopTimer(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	var req dto.StopTimerRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "request format", err)
			return
		}
	}
	log, err := h.timeLogService.StopTimer(c.Request.Context(), companyID, c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to stop timer")
		return
	}
	c.JSON(http.StatusOK, dto.ToTimeLogResponse(log))
}

// getActiveTimer godoc
// @Summary Get an employee's running timer
// @Tags time-logs
// @Produce  json
// @Param   employeeID query string true "Employee ID"
// @Success 200 {object} dto.TimeLogResponse
// @Failure 404 {object} dto.ErrorResponse "No running timer"
// @Security BearerAuth
// @Router /time-logs/active [get]
func (h *timeLogHandler) getActiveTimer(c *gin.Context) {
	_, companyID, ok := caller(c)
	if !ok {
		return
	}
	employeeID := c.Query("employeeID")
	if employeeID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:     "employeeID query parameter is required",
			RequestID: c.Writer.Header().Get("X-Request-ID"),
		})
		return
	}
	log, err := h.timeLogService.GetActiveTimer(c.Request.Context(), companyID, employeeID)
	if err != nil {
		respondError(c, err, "Failed to retrieve active timer")
		return
	}
	c.JSON(http.StatusOK, dto.ToTimeLogResponse(log))
}

// getTimeLog godoc
// @Summary Get a time log by ID
// @Tags time-logs
// @Produce  json
// @Param   id path string true "Time log ID"
// @Success 200 {object} dto.TimeLogResponse
// @Failure 404 {object} dto.ErrorResponse "Time log not found"
// @Security BearerAuth
// @Router /time-logs/{id} [get]
func (h *timeLogHandler) getTimeLog(c *gin.Context) {
	_, companyID, ok := caller(c)
	if !ok {
		return
	}
	log, err := h.timeLogService.GetTimeLogByID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve time log")
		return
	}
	c.JSON(http.StatusOK, dto.ToTimeLogResponse(log))
}

// updateTimeLog godoc
// @Summary Adjust a closed time entry
// @Tags time-logs
// @Accept  json
// @Produce  json
// @Param   id path string true "Time log ID"
// @Param   timeLog body dto.UpdateTimeLogRequest true "Fields to change"
// @Success 200 {object} dto.TimeLogResponse
// @Failure 400 {object} dto.ErrorResponse "Timer still running or job closed"
// @Security BearerAuth
// @Router /time-logs/{id} [put]
func (h *timeLogHandler) updateTimeLog(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	var req dto.UpdateTimeLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}
	log, err := h.timeLogService.UpdateTimeLog(c.Request.Context(), companyID, c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update time log")
		return
	}
	c.JSON(http.StatusOK, dto.ToTimeLogResponse(log))
}

// deleteTimeLog godoc
// @Summary Delete a time log
// @Tags time-logs
// @Param   id path string true "Time log ID"
// @Success 204 "Time log deleted"
// @Failure 400 {object} dto.ErrorResponse "Job closed"
// @Security BearerAuth
// @Router /time-logs/{id} [delete]
func (h *timeLogHandler) deleteTimeLog(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	if err := h.timeLogService.DeleteTimeLog(c.Request.Context(), companyID, c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to delete time log")
		return
	}
	c.Status(http.StatusNoContent)
}
