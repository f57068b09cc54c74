package repositories

import (
	"context"

	"github.com/SscSPs/treeservice_ops/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a customer regardless of organization; callers check ownership.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves an organization's customers, optionally filtered by a name search.
	ListCustomers(ctx context.Context, companyID string, search string, page Page) ([]domain.Customer, error)

	// CountJobsForCustomer counts jobs that reference the customer.
	CountJobsForCustomer(ctx context.Context, customerID string) (int, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
	DeleteCustomer(ctx context.Context, customerID string) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
