package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/treeservice_ops/internal/core/ports/services"
	"github.com/SscSPs/treeservice_ops/internal/dto"
	"github.com/SscSPs/treeservice_ops/internal/middleware"
	"github.com/gin-gonic/gin"
)

// customerHandler handles HTTP requests related to customers.
type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
}

// registerCustomerRoutes registers routes related to customers.
func registerCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvcFacade) {
	h := &customerHandler{customerService: customerService}

	customers := rg.Group("/customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("", h.listCustomers)
		customers.GET("/:id", h.getCustomer)
		customers.PUT("/:id", h.updateCustomer)
		customers.DELETE("/:id", h.deleteCustomer)
	}
}

// createCustomer godoc
// @Summary Create a customer
// @Description Creates a customer in the caller's organization
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create customer"
// @Security BearerAuth
// @Router /customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create customer")
		return
	}
	middleware.GetLoggerFromContext(c).Info("Customer created", slog.String("customer_id", customer.CustomerID))
	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// listCustomers godoc
// @Summary List customers
// @Tags customers
// @Produce  json
// @Param   limit query int false "Limit number of results" default(50)
// @Param   offset query int false "Offset for pagination" default(0)
// @Param   search query string false "Filter by name, business name or email"
// @Success 200 {array} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to list customers"
// @Security BearerAuth
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	_, companyID, ok := caller(c)
	if !ok {
		return
	}
	var params dto.ListCustomersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "query parameters", err)
		return
	}

	customers, err := h.customerService.ListCustomers(c.Request.Context(), companyID, params)
	if err != nil {
		respondError(c, err, "Failed to list customers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCustomerResponse(customers))
}

// getCustomer godoc
// @Summary Get a customer by ID
// @Tags customers
// @Produce  json
// @Param   id path string true "Customer ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 403 {object} dto.ErrorResponse "Customer belongs to another organization"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Security BearerAuth
// @Router /customers/{id} [get]
func (h *customerHandler) getCustomer(c *gin.Context) {
	_, companyID, ok := caller(c)
	if !ok {
		return
	}
	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve customer")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// updateCustomer godoc
// @Summary Update a customer
// @Description Applies the provided fields to a customer
// @Tags customers
// @Accept  json
// @Produce  json
// @Param   id path string true "Customer ID"
// @Param   customer body dto.UpdateCustomerRequest true "Fields to change"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Security BearerAuth
// @Router /customers/{id} [put]
func (h *customerHandler) updateCustomer(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request format", err)
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), companyID, c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update customer")
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// deleteCustomer godoc
// @Summary Delete a customer
// @Description Refused while jobs still reference the customer
// @Tags customers
// @Param   id path string true "Customer ID"
// @Success 204 "Customer deleted"
// @Failure 400 {object} dto.ErrorResponse "Customer still referenced by jobs"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Security BearerAuth
// @Router /customers/{id} [delete]
func (h *customerHandler) deleteCustomer(c *gin.Context) {
	userID, companyID, ok := caller(c)
	if !ok {
		return
	}
	if err := h.customerService.DeleteCustomer(c.Request.Context(), companyID, c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to delete customer")
		return
	}
	c.Status(http.StatusNoContent)
}
