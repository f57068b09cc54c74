package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Job represents a row of the jobs table.
type Job struct {
	JobID                 string          `db:"job_id"`
	CompanyID             string          `db:"company_id"`
	CustomerID            string          `db:"customer_id"`
	Sequence              int             `db:"sequence"`
	JobNumber             string          `db:"job_number"`
	Title                 string          `db:"title"`
	Description           string          `db:"description"`
	SiteAddress           string          `db:"site_address"`
	Status                string          `db:"status"`
	ScheduledStart        *time.Time      `db:"scheduled_start"`
	ScheduledEnd          *time.Time      `db:"scheduled_end"`
	CompletedAt           *time.Time      `db:"completed_at"`
	PaidAt                *time.Time      `db:"paid_at"`
	EstimatedTotalHours   decimal.Decimal `db:"estimated_total_hours"`
	TotalInvestment       decimal.Decimal `db:"total_investment"`
	ActualProductiveHours decimal.Decimal `db:"actual_productive_hours"`
	ActualSupportHours    decimal.Decimal `db:"actual_support_hours"`
	ActualTotalCost       decimal.Decimal `db:"actual_total_cost"`
	AuditFields
}

// JobLineItem represents a row of the job_line_items table.
type JobLineItem struct {
	LineItemID            string          `db:"line_item_id"`
	JobID                 string          `db:"job_id"`
	CompanyID             string          `db:"company_id"`
	IsBillable            bool            `db:"is_billable"`
	ServiceType           string          `db:"service_type"`
	DisplayName           string          `db:"display_name"`
	SortOrder             int             `db:"sort_order"`
	Quantity              decimal.Decimal `db:"quantity"`
	DifficultyFactor      decimal.Decimal `db:"difficulty_factor"`
	Score                 decimal.Decimal `db:"score"`
	ProductionRate        decimal.Decimal `db:"production_rate"`
	LoadoutID             *string         `db:"loadout_id"` // Nullable
	EmployeeIDs           []string        `db:"employee_ids"`
	EquipmentIDs          []string        `db:"equipment_ids"`
	TotalCostPerHour      decimal.Decimal `db:"total_cost_per_hour"`
	MarginPercent         decimal.Decimal `db:"margin_percent"`
	BillingRate           decimal.Decimal `db:"billing_rate"`
	EstimatedHours        decimal.Decimal `db:"estimated_hours"`
	TotalCost             decimal.Decimal `db:"total_cost"`
	LineItemTotal         decimal.Decimal `db:"line_item_total"`
	Status                string          `db:"status"`
	ActualProductiveHours decimal.Decimal `db:"actual_productive_hours"`
	VarianceHours         decimal.Decimal `db:"variance_hours"`
	AuditFields
}
