package models

// Customer represents a row of the customers table.
type Customer struct {
	CustomerID   string `db:"customer_id"`
	CompanyID    string `db:"company_id"`
	Name         string `db:"name"`
	BusinessName string `db:"business_name"`
	Email        string `db:"email"`
	Phone        string `db:"phone"`
	Address      string `db:"address"`
	City         string `db:"city"`
	State        string `db:"state"`
	PostalCode   string `db:"postal_code"`
	Notes        string `db:"notes"`
	AuditFields
}
