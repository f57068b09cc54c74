package domain

// Customer is a client of the organization. Jobs reference customers.
type Customer struct {
	CustomerID   string `json:"customerID"`
	CompanyID    string `json:"companyID"`
	Name         string `json:"name"`
	BusinessName string `json:"businessName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	Notes        string `json:"notes"`
	AuditFields
}

// DisplayName prefers the business name when one is set.
func (c Customer) DisplayName() string {
	if c.BusinessName != "" {
		return c.BusinessName
	}
	return c.Name
}
