package costing_test

import (
	"testing"
	"time"

	"github.com/SscSPs/treeservice_ops/internal/core/costing"
	"github.com/SscSPs/treeservice_ops/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dashboardFixture() costing.DashboardInput {
	jan := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	jobs := []domain.Job{
		{JobID: "j1", CustomerID: "c1", Status: domain.JobCompleted, TotalInvestment: d("1000"), ActualTotalCost: d("600"), AuditFields: domain.AuditFields{CreatedAt: jan}},
		{JobID: "j2", CustomerID: "c2", Status: domain.JobInProgress, TotalInvestment: d("3000"), ActualTotalCost: d("1000"), AuditFields: domain.AuditFields{CreatedAt: jan}},
		{JobID: "j3", CustomerID: "c1", Status: domain.JobCancelled, TotalInvestment: d("5000"), ActualTotalCost: d("50"), AuditFields: domain.AuditFields{CreatedAt: jan}},
		{JobID: "j4", CustomerID: "c2", Status: domain.JobCompleted, TotalInvestment: d("9999"), AuditFields: domain.AuditFields{CreatedAt: feb}},
	}
	end := jan.Add(time.Hour)
	logs := []domain.TimeLog{
		{JobID: "j1", EmployeeID: "e1", EquipmentIDs: []string{"m1"}, EndTime: &end, DurationHours: d("6")},
		{JobID: "j1", EmployeeID: "e2", EndTime: &end, DurationHours: d("2")},
		{JobID: "j2", EmployeeID: "e2", EquipmentIDs: []string{"m1"}, EndTime: &end, DurationHours: d("10")},
		{JobID: "j4", EmployeeID: "e1", EndTime: &end, DurationHours: d("50")},
		{JobID: "j2", EmployeeID: "e1", DurationHours: d("3")},
	}
	return costing.DashboardInput{
		From:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:        time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
		TopN:      5,
		Jobs:      jobs,
		TimeLogs:  logs,
		Employees: []domain.Employee{{EmployeeID: "e1", FirstName: "Ana"}, {EmployeeID: "e2", FirstName: "Ben"}},
		Customers: []domain.Customer{{CustomerID: "c1", Name: "Oak Ridge HOA"}, {CustomerID: "c2", Name: "Pine Co", BusinessName: "Pine Company LLC"}},
		Equipment: []domain.Equipment{
			{EquipmentID: "m1", Name: "Mulcher", AnnualOperatingHours: d("365"), HourlyCost: d("44.6775")},
			{EquipmentID: "m2", Name: "Chipper", AnnualOperatingHours: d("0"), HourlyCost: d("20")},
		},
	}
}

func TestBuildDashboard_Totals(t *testing.T) {
	dash := costing.BuildDashboard(dashboardFixture())

	assertDecimal(t, "4000", dash.TotalRevenue)
	assertDecimal(t, "1600", dash.TotalCost)
	assertDecimal(t, "2400", dash.Profit)
	assertDecimal(t, "60", dash.ProfitMargin)
	assertDecimal(t, "18", dash.TotalHours)
	assert.Equal(t, 3, dash.TotalProjects)
	assert.Equal(t, 1, dash.ProjectsByStatus[domain.JobCompleted])
	assert.Equal(t, 1, dash.ProjectsByStatus[domain.JobCancelled])
	assert.Equal(t, 0, dash.ProjectsByStatus[domain.JobDraft])
}

func TestBuildDashboard_Rankings(t *testing.T) {
	dash := costing.BuildDashboard(dashboardFixture())

	require.Len(t, dash.TopEmployees, 2)
	assert.Equal(t, "e2", dash.TopEmployees[0].EmployeeID)
	assertDecimal(t, "12", dash.TopEmployees[0].Hours)
	// 1000*2/8 + 3000*10/10
	assertDecimal(t, "3250", dash.TopEmployees[0].Revenue)
	assertDecimal(t, "750", dash.TopEmployees[1].Revenue)

	require.Len(t, dash.TopCustomers, 2)
	assert.Equal(t, "c2", dash.TopCustomers[0].CustomerID)
	assert.Equal(t, "Pine Company LLC", dash.TopCustomers[0].Name)
	assert.Equal(t, 2, dash.TopCustomers[1].ProjectCount)
	assertDecimal(t, "1000", dash.TopCustomers[1].Revenue)
}

func TestBuildDashboard_EquipmentUtilization(t *testing.T) {
	dash := costing.BuildDashboard(dashboardFixture())

	require.Len(t, dash.EquipmentUtilization, 2)
	m1 := dash.EquipmentUtilization[0]
	assert.Equal(t, "m1", m1.EquipmentID)
	assertDecimal(t, "16", m1.ActualHours)
	// 365 annual hours over a 30 day window
	assertDecimal(t, "30", m1.AvailableHours)
	assertDecimal(t, "44.6775", m1.CostPerHour)
	assert.True(t, m1.UtilizationPercent.GreaterThan(d("53.33")))
	assert.True(t, m1.UtilizationPercent.LessThan(d("53.34")))

	assertDecimal(t, "0", dash.EquipmentUtilization[1].UtilizationPercent)
}

func TestBuildDashboard_SameDayRangeCountsOneDay(t *testing.T) {
	in := dashboardFixture()
	day := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	end := day.Add(30 * time.Minute)
	in.From, in.To = day, day
	in.TimeLogs = []domain.TimeLog{{JobID: "j1", EmployeeID: "e1", EquipmentIDs: []string{"m1"}, EndTime: &end, DurationHours: d("0.5")}}

	dash := costing.BuildDashboard(in)

	m1 := dash.EquipmentUtilization[0]
	// 365 annual hours spread over one day
	assertDecimal(t, "1", m1.AvailableHours)
	assertDecimal(t, "50", m1.UtilizationPercent)
}

func TestBuildDashboard_UtilizationCappedAt100(t *testing.T) {
	in := dashboardFixture()
	in.Equipment = []domain.Equipment{{EquipmentID: "m1", AnnualOperatingHours: d("10")}}

	dash := costing.BuildDashboard(in)

	assertDecimal(t, "100", dash.EquipmentUtilization[0].UtilizationPercent)
}

func TestBuildDashboard_TopNAndEmptyRevenue(t *testing.T) {
	in := dashboardFixture()
	in.TopN = 1
	in.From = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	in.To = time.Time{}

	dash := costing.BuildDashboard(in)

	assert.Equal(t, 0, dash.TotalProjects)
	assertDecimal(t, "0", dash.ProfitMargin)
	assert.Empty(t, dash.TopEmployees)

	in = dashboardFixture()
	in.TopN = 1
	dash = costing.BuildDashboard(in)
	assert.Len(t, dash.TopEmployees, 1)
	assert.Len(t, dash.TopCustomers, 1)
}
