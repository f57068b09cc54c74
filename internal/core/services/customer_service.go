package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/treeservice_ops/internal/apperrors"
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	portsrepo "github.com/SscSPs/treeservice_ops/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/treeservice_ops/internal/core/ports/services"
	"github.com/SscSPs/treeservice_ops/internal/dto"
	"github.com/google/uuid"
)

type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(repo portsrepo.CustomerRepositoryFacade, opts ...Option) portssvc.CustomerSvcFacade {
	return &customerService{
		BaseService:  newBaseService(opts),
		customerRepo: repo,
	}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) CreateCustomer(ctx context.Context, companyID string, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}

	customer := domain.Customer{
		CustomerID:   uuid.NewString(),
		CompanyID:    companyID,
		Name:         req.Name,
		BusinessName: req.BusinessName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Notes:        req.Notes,
		AuditFields:  domain.NewAuditFields(userID, s.Now()),
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer",
			slog.String("customer_id", customer.CustomerID),
			slog.String("company_id", companyID))
		return nil, err
	}

	s.LogInfo(ctx, "Customer created successfully",
		slog.String("customer_id", customer.CustomerID),
		slog.String("company_id", companyID))
	return &customer, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, companyID string, customerID string) (*domain.Customer, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		s.logUnlessExpected(ctx, err, "Failed to find customer by ID", slog.String("customer_id", customerID))
		return nil, err
	}
	if err := s.CheckOwner(ctx, companyID, customer.CompanyID, "customer", customerID); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context, companyID string, params dto.ListCustomersParams) ([]domain.Customer, error) {
	if err := s.RequireTenant(ctx, companyID); err != nil {
		return nil, err
	}
	customers, err := s.customerRepo.ListCustomers(ctx, companyID, params.Search,
		portsrepo.Page{Limit: params.Limit, Offset: params.Offset})
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers",
			slog.String("company_id", companyID),
			slog.Int("limit", params.Limit),
			slog.Int("offset", params.Offset))
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	if customers == nil {
		return []domain.Customer{}, nil
	}
	return customers, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, companyID string, customerID string, req dto.UpdateCustomerRequest, userID string) (*domain.Customer, error) {
	customer, err := s.GetCustomerByID(ctx, companyID, customerID)
	if err != nil {
		return nil, err
	}

	updated := false
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
			updated = true
		}
	}
	set(&customer.Name, req.Name)
	set(&customer.BusinessName, req.BusinessName)
	set(&customer.Email, req.Email)
	set(&customer.Phone, req.Phone)
	set(&customer.Address, req.Address)
	set(&customer.City, req.City)
	set(&customer.State, req.State)
	set(&customer.PostalCode, req.PostalCode)
	set(&customer.Notes, req.Notes)
	if !updated {
		s.LogDebug(ctx, "No fields provided for customer update", slog.String("customer_id", customerID))
		return customer, nil
	}

	customer.Touch(userID, s.Now())
	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		s.LogError(ctx, err, "Failed to update customer", slog.String("customer_id", customerID))
		return nil, err
	}

	s.LogInfo(ctx, "Customer updated successfully", slog.String("customer_id", customerID))
	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, companyID string, customerID string, userID string) error {
	if _, err := s.GetCustomerByID(ctx, companyID, customerID); err != nil {
		return err
	}

	jobs, err := s.customerRepo.CountJobsForCustomer(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count jobs for customer", slog.String("customer_id", customerID))
		return err
	}
	if jobs > 0 {
		return apperrors.Blocked("customer", jobs, "jobs")
	}

	if err := s.customerRepo.DeleteCustomer(ctx, customerID); err != nil {
		s.LogError(ctx, err, "Failed to delete customer", slog.String("customer_id", customerID))
		return err
	}

	s.LogInfo(ctx, "Customer deleted successfully",
		slog.String("customer_id", customerID),
		slog.String("user_id", userID))
	return nil
}
