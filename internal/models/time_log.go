package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeLog represents a row of the time_logs table. An open log has a NULL end_time.
type TimeLog struct {
	TimeLogID     string          `db:"time_log_id"`
	CompanyID     string          `db:"company_id"`
	JobID         string          `db:"job_id"`
	LineItemID    *string         `db:"line_item_id"` // Nullable
	EmployeeID    string          `db:"employee_id"`
	EquipmentIDs  []string        `db:"equipment_ids"`
	StartTime     time.Time       `db:"start_time"`
	EndTime       *time.Time      `db:"end_time"`
	EmployeeRate  decimal.Decimal `db:"employee_rate"`
	EquipmentCost decimal.Decimal `db:"equipment_cost"`
	DurationHours decimal.Decimal `db:"duration_hours"`
	TotalCost     decimal.Decimal `db:"total_cost"`
	Notes         string          `db:"notes"`
	AuditFields
}
