package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dashboard is the derived profitability view for a date range.
type Dashboard struct {
	From                 *time.Time        `json:"from,omitempty"`
	To                   *time.Time        `json:"to,omitempty"`
	TotalRevenue         decimal.Decimal   `json:"totalRevenue"`
	TotalCost            decimal.Decimal   `json:"totalCost"`
	Profit               decimal.Decimal   `json:"profit"`
	ProfitMargin         decimal.Decimal   `json:"profitMargin"`
	TotalHours           decimal.Decimal   `json:"totalHours"`
	TotalProjects        int               `json:"totalProjects"`
	ProjectsByStatus     map[JobStatus]int `json:"projectsByStatus"`
	TopEmployees         []EmployeeMetric  `json:"topEmployees"`
	TopCustomers         []CustomerMetric  `json:"topCustomers"`
	EquipmentUtilization []EquipmentMetric `json:"equipmentUtilization"`
}

// EmployeeMetric ranks an employee by logged hours.
type EmployeeMetric struct {
	EmployeeID string          `json:"employeeID"`
	Name       string          `json:"name"`
	Hours      decimal.Decimal `json:"hours"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// CustomerMetric ranks a customer by revenue.
type CustomerMetric struct {
	CustomerID   string          `json:"customerID"`
	Name         string          `json:"name"`
	Revenue      decimal.Decimal `json:"revenue"`
	ProjectCount int             `json:"projectCount"`
}

// EquipmentMetric reports how much of a machine's available time was used.
type EquipmentMetric struct {
	EquipmentID        string          `json:"equipmentID"`
	Name               string          `json:"name"`
	ActualHours        decimal.Decimal `json:"actualHours"`
	AvailableHours     decimal.Decimal `json:"availableHours"`
	UtilizationPercent decimal.Decimal `json:"utilizationPercent"`
	CostPerHour        decimal.Decimal `json:"costPerHour"`
	TotalCost          decimal.Decimal `json:"totalCost"`
}
