package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/treeservice_ops/internal/core/ports/services"
	"github.com/SscSPs/treeservice_ops/internal/dto"
	"github.com/SscSPs/treeservice_ops/internal/middleware"
	"github.com/gin-gonic/gin"
)

// employeeHandler handles HTTP requests related to employees and the skills
// and certifications they hold.
type employeeHandler struct {
	employeeService  portssvc.EmployeeSvcFacade
	workforceService portssvc.WorkforceAssignmentSvc
}

// registerEmployeeRoutes registers routes related to employees.
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade, workforceService portssvc.WorkforceAssignmentSvc) {
	h := &employeeHandler{employeeService: employeeService, workforceService: workforceService}

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)
		employees.GET("/:id", h.getEmployee)
		employees.PUT("/:id", h.updateEmployee)
		employees.DELETE("/:id", h.deactivateEmployee)
		employees.GET("/:id/burden", h.getBurden)

		employees.GET("/:id/skills", h.listSkills)
		employees.POST("/:id/skills", h.assignSkill)
		employees.DELETE("/:id/skills/:skillID", h.removeSkill)

		employees.GET("/:id/certifications", h.listCertifications)
		employees.POST("/:id/certifications", h.assignCertification)
		employees.DELETE("/:id/certifications/:assignmentID", h.revokeCertification)
	}
}

// createEmployee godoc
// @Summary Create an employee
// @Description Creates an employee and computes the effective hourly rate from the burden inputs
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Management level not found"
// @Security BearerAuth
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create employee")
		return
	}
	middleware.GetLoggerFromContext(c).Info("Employee created",
		slog.String("employee_id", employee.EmployeeID),
		slog.String("effective_rate", employee.EffectiveRate.StringFixed(2)))
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// listEmployees godoc
// @Summary List employees
// @Tags employees
// @Produce  json
// @Param   limit query int false "Limit number of results" default(50)
// @Param   offset query int false "Offset for pagination" default(0)
// @Param   activeOnly query bool false "Only active employees"
// @Success 200 {array} dto.EmployeeResponse
// @Security BearerAuth
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	_, companyID, ok := caller(c)
	if !ok {
		return
	}
	var params dto.ListEmployeesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "query parameters", err)
		return
	}

	employees, err := h.employeeService.ListEmployees(c.Request.Context(), companyID, params)
	if err != nil {
		respondError(c, err, "Failed to list employees")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEmployeeResponse(employees))
}

// getEmployee godoc
// @Summary Get an employee by ID
// @Tags employees
// @Produce  json
// @Param   id path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	_, companyID, ok := caller(c)
	if !ok {
		return
	}
	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve employee")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// updateEmployee godoc
// @Summary Update an employee
// @Description Applies the provided fields and recomputes the effective rate
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   id path string true "Employee ID"
// @Param   employee body dto.UpdateEmployeeRequest true "Fields to change"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), companyID, c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update employee")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// deactivateEmployee godoc
// @Summary Deactivate an employee
// @Tags employees
// @Param   id path string true "Employee ID"
// @Success 204 "Employee deactivated"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [delete]
func (h *employeeHandler) deactivateEmployee(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	if err := h.employeeService.DeactivateEmployee(c.Request.Context(), companyID, c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to deactivate employee")
		return
	}
	c.Status(http.StatusNoContent)
}

// getBurden godoc
// @Summary Get an employee's burden breakdown
// @Tags employees
// @Produce  json
// @Param   id path string true "Employee ID"
// @Success 200 {object} costing.BurdenBreakdown
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{id}/burden [get]
func (h *employeeHandler) getBurden(c *gin.Context) {
	_, companyID, ok := caller(c)
	if !ok {
		return
	}
	breakdown, err := h.employeeService.GetBurdenBreakdown(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to compute burden")
		return
	}
	c.JSON(http.StatusOK, breakdown)
}

// listSkills godoc
// @Summary List an employee's skills
// @Tags workforce
// @Produce  json
// @Param   id path string true "Employee ID"
// @Success 200 {array} domain.EmployeeSkill
// @Security BearerAuth
// @Router /employees/{id}/skills [get]
func (h *employeeHandler) listSkills(c *gin.Context) {
	_, companyID, ok := caller(c)
	if !ok {
		return
	}
	skills, err := h.workforceService.ListEmployeeSkills(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list skills")
		return
	}
	c.JSON(http.StatusOK, skills)
}

// assignSkill godoc
// @Summary Place an employee on a career track
// @Tags workforce
// @Accept  json
// @Produce  json
// @Param   id path string true "Employee ID"
// @Param   skill body dto.AssignSkillRequest true "Career track and level"
// @Success 201 {object} domain.EmployeeSkill
// @Failure 404 {object} dto.ErrorResponse "Employee or career track not found"
// @Security BearerAuth
// @Router /employees/{id}/skills [post]
func (h *employeeHandler) assignSkill(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	var req dto.AssignSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}
	skill, err := h.workforceService.AssignSkill(c.Request.Context(), companyID, c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to assign skill")
		return
	}
	c.JSON(http.StatusCreated, skill)
}

// removeSkill godoc
// @Summary Remove a skill from an employee
// @Tags workforce
// @Param   id path string true "Employee ID"
// @Param   skillID path string true "Skill ID"
// @Success 204 "Skill removed"
// @Security BearerAuth
// @Router /employees/{id}/skills/{skillID} [delete]
func (h *employeeHandler) removeSkill(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	if err := h.workforceService.RemoveSkill(c.Request.Context(), companyID, c.Param("id"), c.Param("skillID"), userID); err != nil {
		respondError(c, err, "Failed to remove skill")
		return
	}
	c.Status(http.StatusNoContent)
}

// listCertifications godoc
// @Summary List an employee's certifications
// @Tags workforce
// @Produce  json
// @Param   id path string true "Employee ID"
// @Success 200 {array} domain.EmployeeCertification
// @Security BearerAuth
// @Router /employees/{id}/certifications [get]
func (h *employeeHandler) listCertifications(c *gin.Context) {
	_, companyID, ok := caller(c)
	if !ok {
		return
	}
	certs, err := h.workforceService.ListEmployeeCertifications(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list certifications")
		return
	}
	c.JSON(http.StatusOK, certs)
}

// assignCertification godoc
// @Summary Record a certification held by an employee
// @Tags workforce
// @Accept  json
// @Produce  json
// @Param   id path string true "Employee ID"
// @Param   certification body dto.AssignCertificationRequest true "Certification and dates"
// @Success 201 {object} domain.EmployeeCertification
// @Failure 400 {object} dto.ErrorResponse "Expiry before issue date"
// @Security BearerAuth
// @Router /employees/{id}/certifications [post]
func (h *employeeHandler) assignCertification(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	var req dto.AssignCertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}
	assignment, err := h.workforceService.AssignCertification(c.Request.Context(), companyID, c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to assign certification")
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

// revokeCertification godoc
// @Summary Revoke an employee's certification
// @Tags workforce
// @Param   id path string true "Employee ID"
// @Param   assignmentID path string true "Certification assignment ID"
// @Success 204 "Certification revoked"
// @Security BearerAuth
// @Router /employees/{id}/certifications/{assignmentID} [delete]
func (h *employeeHandler) revokeCertification(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	if err := h.workforceService.RevokeCertification(c.Request.Context(), companyID, c.Param("id"), c.Param("assignmentID"), userID); err != nil {
		respondError(c, err, "Failed to revoke certification")
		return
	}
	c.Status(http.StatusNoContent)
}
