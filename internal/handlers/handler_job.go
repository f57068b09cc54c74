package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/treeservice_ops/internal/core/ports/services"
	"github.com/SscSPs/treeservice_ops/internal/dto"
	"github.com/SscSPs/treeservice_ops/internal/middleware"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// jobHandler handles HTTP requests for jobs and the resources nested under a
// job: line items, time logs and the project report.
type jobHandler struct {
	jobService      portssvc.JobSvcFacade
	lineItemService portssvc.LineItemSvcFacade
	timeLogService  portssvc.TimeLogReaderSvc
	reportService   portssvc.ProjectReportSvcFacade
}

// registerJobRoutes registers routes related to jobs.
func registerJobRoutes(
	rg *gin.RouterGroup,
	jobService portssvc.JobSvcFacade,
	lineItemService portssvc.LineItemSvcFacade,
	timeLogService portssvc.TimeLogReaderSvc,
	reportService portssvc.ProjectReportSvcFacade,
) {
	h := &jobHandler{
		jobService:      jobService,
		lineItemService: lineItemService,
		timeLogService:  timeLogService,
		reportService:   reportService,
	}

	jobs := rg.Group("/jobs")
	{
		jobs.POST("", h.createJob)
		jobs.GET("", h.listJobs)
		jobs.GET("/:id", h.getJob)
		jobs.PUT("/:id", h.updateJob)
		jobs.DELETE("/:id", h.deleteJob)
		jobs.POST("/:id/status", h.transitionStatus)
		jobs.POST("/:id/paid", h.markPaid)

		lineItems := jobs.Group("/:id/line-items")
		{
			lineItems.GET("", h.listLineItems)
			lineItems.POST("", h.addLineItem)
			lineItems.PUT("/:lineItemID", h.updateLineItem)
			lineItems.DELETE("/:lineItemID", h.deleteLineItem)
		}

		jobs.GET("/:id/time-logs", h.listJobTimeLogs)

		jobs.GET("/:id/report", h.getReport)
		jobs.POST("/:id/report", h.generateReport)
		jobs.GET("/:id/report/export", h.exportReport)
	}
}

// createJob godoc
// @Summary Create a job
// @Description Opens a draft job for a customer, assigns the next work order number and seeds the phase line items
// @Tags jobs
// @Accept  json
// @Produce  json
// @Param   job body dto.CreateJobRequest true "Job details"
// @Success 201 {object} dto.JobResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Security BearerAuth
// @Router /jobs [post]
func (h *jobHandler) createJob(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create job")
		return
	}
	middleware.GetLoggerFromContext(c).Info("Job created",
		slog.String("job_id", job.JobID),
		slog.String("job_number", job.JobNumber))
	c.JSON(http.StatusCreated, dto.ToJobResponse(job))
}

// listJobs godoc
// @Summary List jobs
// @Description Lists jobs newest first using token pagination
// @Tags jobs
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Param   status query string false "Filter by status"
// @Param   customerID query string false "Filter by customer"
// @Success 200 {object} dto.ListJobsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Security BearerAuth
// @Router /jobs [get]
func (h *jobHandler) listJobs(c *gin.Context) {
	_, companyID, ok := caller(c)
	if !ok {
		return
	}
	var params dto.ListJobsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "query parameters", err)
		return
	}

	res, err := h.jobService.ListJobs(c.Request.Context(), companyID, params)
	if err != nil {
		respondError(c, err, "Failed to list jobs")
		return
	}
	c.JSON(http.StatusOK, res)
}

// getJob godoc
// @Summary Get a job by ID
// @Description Returns the job with its line items
// @Tags jobs
// @Produce  json
// @Param   id path string true "Job ID"
// @Success 200 {object} dto.JobResponse
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Security BearerAuth
// @Router /jobs/{id} [get]
func (h *jobHandler) getJob(c *gin.Context) {
	_, companyID, ok := caller(c)
	if !ok {
		return
	}
	job, err := h.jobService.GetJobByID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve job")
		return
	}
	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}

// updateJob godoc
// @Summary Update a job
// @Tags jobs
// @Accept  json
// @Produce  json
// @Param   id path string true "Job ID"
// @Param   job body dto.UpdateJobRequest true "Fields to change"
// @Success 200 {object} dto.JobResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or job closed"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Security BearerAuth
// @Router /jobs/{id} [put]
func (h *jobHandler) updateJob(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}

	job, err := h.jobService.UpdateJob(c.Request.Context(), companyID, c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update job")
		return
	}
	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}

// deleteJob godoc
// @Summary Delete a job
// @Description Only draft or cancelled jobs without logged time can be deleted
// @Tags jobs
// @Param   id path string true "Job ID"
// @Success 204 "Job deleted"
// @Failure 400 {object} dto.ErrorResponse "Job cannot be deleted"
// @Security BearerAuth
// @Router /jobs/{id} [delete]
func (h *jobHandler) deleteJob(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	if err := h.jobService.DeleteJob(c.Request.Context(), companyID, c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to delete job")
		return
	}
	c.Status(http.StatusNoContent)
}

// transitionStatus godoc
// @Summary Change a job's status
// @Description Moves the job along its workflow. Completing a job closes its line items and snapshots the project report.
// @Tags jobs
// @Accept  json
// @Produce  json
// @Param   id path string true "Job ID"
// @Param   status body dto.UpdateJobStatusRequest true "Target status"
// @Success 200 {object} dto.JobResponse
// @Failure 400 {object} dto.ErrorResponse "Transition not allowed"
// @Security BearerAuth
// @Router /jobs/{id}/status [post]
func (h *jobHandler) transitionStatus(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	var req dto.UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}

	job, err := h.jobService.TransitionStatus(c.Request.Context(), companyID, c.Param("id"), req.Status, userID)
	if err != nil {
		respondError(c, err, "Failed to change job status")
		return
	}
	middleware.GetLoggerFromContext(c).Info("Job status changed",
		slog.String("job_id", job.JobID),
		slog.String("status", string(job.Status)))
	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}

// markPaid godoc
// @Summary Mark a completed job as paid
// @Tags jobs
// @Produce  json
// @Param   id path string true "Job ID"
// @Success 200 {object} dto.JobResponse
// @Failure 400 {object} dto.ErrorResponse "Job not completed"
// @Security BearerAuth
// @Router /jobs/{id}/paid [post]
func (h *jobHandler) markPaid(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	job, err := h.jobService.MarkJobPaid(c.Request.Context(), companyID, c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "Failed to mark job paid")
		return
	}
	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}

// listLineItems godoc
// @Summary List a job's line items
// @Tags line-items
// @Produce  json
// @Param   id path string true "Job ID"
// @Success 200 {array} dto.LineItemResponse
// @Security BearerAuth
// @Router /jobs/{id}/line-items [get]
func (h *jobHandler) listLineItems(c *gin.Context) {
	_, companyID, ok := caller(c)
	if !ok {
		return
	}
	items, err := h.lineItemService.ListLineItems(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list line items")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLineItemResponse(items))
}

// addLineItem godoc
// @Summary Add a priced line item to a job
// @Description Prices the work from the selected loadout or crew and rebuilds the job totals
// @Tags line-items
// @Accept  json
// @Produce  json
// @Param   id path string true "Job ID"
// @Param   lineItem body dto.AddLineItemRequest true "Line item details"
// @Success 201 {object} dto.LineItemResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or job closed"
// @Failure 404 {object} dto.ErrorResponse "Job or resource not found"
// @Security BearerAuth
// @Router /jobs/{id}/line-items [post]
func (h *jobHandler) addLineItem(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	var req dto.AddLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}

	item, err := h.lineItemService.AddLineItem(c.Request.Context(), companyID, c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to add line item")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLineItemResponse(item))
}

// updateLineItem godoc
// @Summary Update a line item
// @Tags line-items
// @Accept  json
// @Produce  json
// @Param   id path string true "Job ID"
// @Param   lineItemID path string true "Line item ID"
// @Param   lineItem body dto.UpdateLineItemRequest true "Fields to change"
// @Success 200 {object} dto.LineItemResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or job closed"
// @Security BearerAuth
// @Router /jobs/{id}/line-items/{lineItemID} [put]
func (h *jobHandler) updateLineItem(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	var req dto.UpdateLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}

	item, err := h.lineItemService.UpdateLineItem(c.Request.Context(), companyID, c.Param("id"), c.Param("lineItemID"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update line item")
		return
	}
	c.JSON(http.StatusOK, dto.ToLineItemResponse(item))
}

// deleteLineItem godoc
// @Summary Delete a line item
// @Description Phase line items cannot be deleted
// @Tags line-items
// @Param   id path string true "Job ID"
// @Param   lineItemID path string true "Line item ID"
// @Success 204 "Line item deleted"
// @Failure 400 {object} dto.ErrorResponse "Phase item or job closed"
// @Security BearerAuth
// @Router /jobs/{id}/line-items/{lineItemID} [delete]
func (h *jobHandler) deleteLineItem(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	if err := h.lineItemService.DeleteLineItem(c.Request.Context(), companyID, c.Param("id"), c.Param("lineItemID"), userID); err != nil {
		respondError(c, err, "Failed to delete line item")
		return
	}
	c.Status(http.StatusNoContent)
}

// listJobTimeLogs godoc
// @Summary List the time logged on a job
// @Tags time-logs
// @Produce  json
// @Param   id path string true "Job ID"
// @Param   limit query int false "Limit number of results" default(50)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {array} dto.TimeLogResponse
// @Security BearerAuth
// @Router /jobs/{id}/time-logs [get]
func (h *jobHandler) listJobTimeLogs(c *gin.Context) {
	_, companyID, ok := caller(c)
	if !ok {
		return
	}
	var params dto.ListTimeLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "query parameters", err)
		return
	}
	params.JobID = c.Param("id")

	logs, err := h.timeLogService.ListTimeLogs(c.Request.Context(), companyID, params)
	if err != nil {
		respondError(c, err, "Failed to list time logs")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTimeLogResponse(logs))
}

// getReport godoc
// @Summary Get a job's project report
// @Tags reports
// @Produce  json
// @Param   id path string true "Job ID"
// @Success 200 {object} domain.ProjectReport
// @Failure 404 {object} dto.ErrorResponse "No report for this job"
// @Security BearerAuth
// @Router /jobs/{id}/report [get]
func (h *jobHandler) getReport(c *gin.Context) {
	_, companyID, ok := caller(c)
	if !ok {
		return
	}
	report, err := h.reportService.GetReportByJobID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// generateReport godoc
// @Summary Generate a job's project report
// @Description Snapshots a completed job. Returns the stored report when one already exists.
// @Tags reports
// @Produce  json
// @Param   id path string true "Job ID"
// @Success 200 {object} domain.ProjectReport
// @Failure 400 {object} dto.ErrorResponse "Job not completed"
// @Security BearerAuth
// @Router /jobs/{id}/report [post]
func (h *jobHandler) generateReport(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	report, err := h.reportService.GenerateForJob(c.Request.Context(), companyID, c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "Failed to generate report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// exportReport godoc
// @Summary Download a job's project report as a spreadsheet
// @Tags reports
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   id path string true "Job ID"
// @Success 200 {file} file "XLSX workbook"
// @Failure 404 {object} dto.ErrorResponse "No report for this job"
// @Security BearerAuth
// @Router /jobs/{id}/report/export [get]
func (h *jobHandler) exportReport(c *gin.Context) {
	_, companyID, ok := caller(c)
	if !ok {
		return
	}
	data, filename, err := h.reportService.ExportReportXLSX(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to export report")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
