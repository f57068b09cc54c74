package services

import (
	"context"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/SscSPs/treeservice_ops/internal/dto"
)

// CustomerReaderSvc defines read operations for customer data
type CustomerReaderSvc interface {
	// GetCustomerByID retrieves a customer owned by the organization.
	GetCustomerByID(ctx context.Context, companyID string, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves a page of the organization's customers.
	ListCustomers(ctx context.Context, companyID string, params dto.ListCustomersParams) ([]domain.Customer, error)
}

// CustomerWriterSvc defines write operations for customer data
type CustomerWriterSvc interface {
	CreateCustomer(ctx context.Context, companyID string, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, companyID string, customerID string, req dto.UpdateCustomerRequest, userID string) (*domain.Customer, error)

	// DeleteCustomer removes a customer. It is refused while jobs reference the customer.
	DeleteCustomer(ctx context.Context, companyID string, customerID string, userID string) error
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}
