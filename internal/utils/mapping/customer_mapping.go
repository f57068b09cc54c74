package mapping

import (
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/SscSPs/treeservice_ops/internal/models"
)

// ToModelCustomer converts a domain Customer to a model Customer
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:   d.CustomerID,
		CompanyID:    d.CompanyID,
		Name:         d.Name,
		BusinessName: d.BusinessName,
		Email:        d.Email,
		Phone:        d.Phone,
		Address:      d.Address,
		City:         d.City,
		State:        d.State,
		PostalCode:   d.PostalCode,
		Notes:        d.Notes,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:   m.CustomerID,
		CompanyID:    m.CompanyID,
		Name:         m.Name,
		BusinessName: m.BusinessName,
		Email:        m.Email,
		Phone:        m.Phone,
		Address:      m.Address,
		City:         m.City,
		State:        m.State,
		PostalCode:   m.PostalCode,
		Notes:        m.Notes,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
