package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectReport is the snapshot written when a job completes. It copies values
// rather than referencing live rows and is never updated after insert.
type ProjectReport struct {
	ReportID              string               `json:"reportID"`
	CompanyID             string               `json:"companyID"`
	JobID                 string               `json:"jobID"`
	JobNumber             string               `json:"jobNumber"`
	JobTitle              string               `json:"jobTitle"`
	CustomerID            string               `json:"customerID"`
	CustomerName          string               `json:"customerName"`
	CompletedAt           time.Time            `json:"completedAt"`
	LineItems             []ReportLineItem     `json:"lineItems"`
	EmployeeLogs          []ReportEmployeeLogs `json:"employeeLogs"`
	Crew                  []ReportCrewMember   `json:"crew"`
	Revenue               decimal.Decimal      `json:"revenue"`
	TotalCost             decimal.Decimal      `json:"totalCost"`
	Profit                decimal.Decimal      `json:"profit"`
	ProfitMargin          decimal.Decimal      `json:"profitMargin"`
	EstimatedHours        decimal.Decimal      `json:"estimatedHours"`
	ActualProductiveHours decimal.Decimal      `json:"actualProductiveHours"`
	ActualSupportHours    decimal.Decimal      `json:"actualSupportHours"`
	ActualTotalHours      decimal.Decimal      `json:"actualTotalHours"`
	GeneratedAt           time.Time            `json:"generatedAt"`
	GeneratedBy           string               `json:"generatedBy"`
}

// ReportLineItem is a line item as it stood at completion.
type ReportLineItem struct {
	LineItemID     string          `json:"lineItemID"`
	DisplayName    string          `json:"displayName"`
	ServiceType    string          `json:"serviceType"`
	IsBillable     bool            `json:"isBillable"`
	SortOrder      int             `json:"sortOrder"`
	EstimatedHours decimal.Decimal `json:"estimatedHours"`
	ActualHours    decimal.Decimal `json:"actualHours"`
	VarianceHours  decimal.Decimal `json:"varianceHours"`
	TotalCost      decimal.Decimal `json:"totalCost"`
	LineItemTotal  decimal.Decimal `json:"lineItemTotal"`
}

// ReportEmployeeLogs groups one employee's closed time entries.
type ReportEmployeeLogs struct {
	EmployeeID   string            `json:"employeeID"`
	EmployeeName string            `json:"employeeName"`
	TotalHours   decimal.Decimal   `json:"totalHours"`
	TotalCost    decimal.Decimal   `json:"totalCost"`
	Entries      []ReportTimeEntry `json:"entries"`
}

// ReportTimeEntry is a single closed time log.
type ReportTimeEntry struct {
	TimeLogID     string          `json:"timeLogID"`
	LineItemID    string          `json:"lineItemID,omitempty"`
	StartTime     time.Time       `json:"startTime"`
	EndTime       time.Time       `json:"endTime"`
	DurationHours decimal.Decimal `json:"durationHours"`
	EmployeeRate  decimal.Decimal `json:"employeeRate"`
	EquipmentCost decimal.Decimal `json:"equipmentCost"`
	TotalCost     decimal.Decimal `json:"totalCost"`
}

// ReportCrewMember is an employee who logged time on the job.
type ReportCrewMember struct {
	EmployeeID    string          `json:"employeeID"`
	Name          string          `json:"name"`
	Position      string          `json:"position"`
	EffectiveRate decimal.Decimal `json:"effectiveRate"`
}
