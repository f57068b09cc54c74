package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectReport represents a row of the project_reports table. Nested
// records are JSONB columns holding the typed snapshot slices.
type ProjectReport struct {
	ReportID              string          `db:"report_id"`
	CompanyID             string          `db:"company_id"`
	JobID                 string          `db:"job_id"`
	JobNumber             string          `db:"job_number"`
	JobTitle              string          `db:"job_title"`
	CustomerID            string          `db:"customer_id"`
	CustomerName          string          `db:"customer_name"`
	CompletedAt           time.Time       `db:"completed_at"`
	LineItems             []byte          `db:"line_items"`
	EmployeeLogs          []byte          `db:"employee_logs"`
	Crew                  []byte          `db:"crew"`
	Revenue               decimal.Decimal `db:"revenue"`
	TotalCost             decimal.Decimal `db:"total_cost"`
	Profit                decimal.Decimal `db:"profit"`
	ProfitMargin          decimal.Decimal `db:"profit_margin"`
	EstimatedHours        decimal.Decimal `db:"estimated_hours"`
	ActualProductiveHours decimal.Decimal `db:"actual_productive_hours"`
	ActualSupportHours    decimal.Decimal `db:"actual_support_hours"`
	ActualTotalHours      decimal.Decimal `db:"actual_total_hours"`
	GeneratedAt           time.Time       `db:"generated_at"`
	GeneratedBy           string          `db:"generated_by"`
}
