package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeLog is one employee's time on one job. EmployeeRate and EquipmentCost
// are copied when the log is closed so later rate edits never change it.
type TimeLog struct {
	TimeLogID     string          `json:"timeLogID"`
	CompanyID     string          `json:"companyID"`
	JobID         string          `json:"jobID"`
	LineItemID    string          `json:"lineItemID,omitempty"`
	EmployeeID    string          `json:"employeeID"`
	EquipmentIDs  []string        `json:"equipmentIDs"`
	StartTime     time.Time       `json:"startTime"`
	EndTime       *time.Time      `json:"endTime,omitempty"`
	EmployeeRate  decimal.Decimal `json:"employeeRate"`
	EquipmentCost decimal.Decimal `json:"equipmentCost"`
	DurationHours decimal.Decimal `json:"durationHours"`
	TotalCost     decimal.Decimal `json:"totalCost"`
	Notes         string          `json:"notes"`
	AuditFields
}

// IsActive reports whether the timer is still running.
func (t TimeLog) IsActive() bool {
	return t.EndTime == nil
}
