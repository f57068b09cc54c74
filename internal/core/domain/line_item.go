package domain

import "github.com/shopspring/decimal"

// LineItemStatus tracks progress of a single task within a job.
type LineItemStatus string

const (
	LineItemPending    LineItemStatus = "pending"
	LineItemInProgress LineItemStatus = "in_progress"
	LineItemCompleted  LineItemStatus = "completed"
)

// IsValid reports whether s is a known line item status.
func (s LineItemStatus) IsValid() bool {
	switch s {
	case LineItemPending, LineItemInProgress, LineItemCompleted:
		return true
	}
	return false
}

// Phase service types seeded on every job.
const (
	ServiceTransportToSite   = "transport_to_site"
	ServiceSiteSetup         = "site_setup"
	ServiceSiteCleanup       = "site_cleanup"
	ServiceTransportFromSite = "transport_from_site"
)

// Billable items live between the leading and trailing phase items.
const (
	MinBillableSortOrder = 3
	MaxBillableSortOrder = 97
)

// PhaseTemplate describes one of the fixed non-billable phases of a job.
type PhaseTemplate struct {
	ServiceType string
	DisplayName string
	SortOrder   int
}

// DefaultPhases are seeded on job creation.
var DefaultPhases = []PhaseTemplate{
	{ServiceType: ServiceTransportToSite, DisplayName: "Transport to Site", SortOrder: 1},
	{ServiceType: ServiceSiteSetup, DisplayName: "Site Setup", SortOrder: 2},
	{ServiceType: ServiceSiteCleanup, DisplayName: "Site Cleanup", SortOrder: 98},
	{ServiceType: ServiceTransportFromSite, DisplayName: "Transport from Site", SortOrder: 99},
}

// JobLineItem is one phase or billable task of a job.
type JobLineItem struct {
	LineItemID            string          `json:"lineItemID"`
	JobID                 string          `json:"jobID"`
	CompanyID             string          `json:"companyID"`
	IsBillable            bool            `json:"isBillable"`
	ServiceType           string          `json:"serviceType"`
	DisplayName           string          `json:"displayName"`
	SortOrder             int             `json:"sortOrder"`
	Quantity              decimal.Decimal `json:"quantity"`
	DifficultyFactor      decimal.Decimal `json:"difficultyFactor"`
	Score                 decimal.Decimal `json:"score"`
	ProductionRate        decimal.Decimal `json:"productionRate"`
	LoadoutID             string          `json:"loadoutID,omitempty"`
	EmployeeIDs           []string        `json:"employeeIDs"`
	EquipmentIDs          []string        `json:"equipmentIDs"`
	TotalCostPerHour      decimal.Decimal `json:"totalCostPerHour"`
	MarginPercent         decimal.Decimal `json:"marginPercent"`
	BillingRate           decimal.Decimal `json:"billingRate"`
	EstimatedHours        decimal.Decimal `json:"estimatedHours"`
	TotalCost             decimal.Decimal `json:"totalCost"`
	LineItemTotal         decimal.Decimal `json:"lineItemTotal"`
	Status                LineItemStatus  `json:"status"`
	ActualProductiveHours decimal.Decimal `json:"actualProductiveHours"`
	VarianceHours         decimal.Decimal `json:"varianceHours"`
	AuditFields
}
